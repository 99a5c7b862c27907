// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const (
	ShopEventName        = "shop_events"
	shopEventTypeDeleted = "deleted"
	groupID              = "product"
)

type ShopEvent struct {
	Type   string `json:"type"`
	ShopID int64  `json:"shopId"`
}

type ShopProductCleaner interface {
	DeleteByShop(ctx context.Context, shopID int64) (int, error)
}

// ShopEventConsumer 店铺被删除后下架它的全部商品
type ShopEventConsumer struct {
	svc      ShopProductCleaner
	consumer mq.Consumer
	logger   *elog.Component
}

func NewShopEventConsumer(svc ShopProductCleaner, q mq.MQ) (*ShopEventConsumer, error) {
	consumer, err := q.Consumer(ShopEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &ShopEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start ctx 结束之后退出
func (c *ShopEventConsumer) Start(ctx context.Context) {
	go func() {
		for ctx.Err() == nil {
			if err := c.Consume(ctx); err != nil {
				c.logger.Error("消费店铺事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *ShopEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt ShopEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if evt.Type != shopEventTypeDeleted {
		return nil
	}
	cnt, err := c.svc.DeleteByShop(ctx, evt.ShopID)
	if err != nil {
		return err
	}
	c.logger.Info("已清理被删除店铺的商品",
		elog.Int64("shopID", evt.ShopID),
		elog.Int("count", cnt))
	return nil
}
