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

	"github.com/ecodeclub/emall/internal/notification/internal/domain"
	"github.com/ecodeclub/emall/internal/notification/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const groupID = "notification"

// Consumer 把一个 topic 上的事件转成邮件
type Consumer struct {
	topic    string
	consumer mq.Consumer
	handle   func(ctx context.Context, msg *mq.Message) error
	logger   *elog.Component
}

func newConsumer[T any](q mq.MQ, topic string, handle func(ctx context.Context, evt T) error) (*Consumer, error) {
	consumer, err := q.Consumer(topic, groupID)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		topic:    topic,
		consumer: consumer,
		handle: func(ctx context.Context, msg *mq.Message) error {
			var evt T
			if err := json.Unmarshal(msg.Value, &evt); err != nil {
				return fmt.Errorf("解析消息失败: %w", err)
			}
			return handle(ctx, evt)
		},
		logger: elog.DefaultLogger,
	}, nil
}

// Start ctx 结束之后退出
func (c *Consumer) Start(ctx context.Context) {
	go func() {
		for ctx.Err() == nil {
			if err := c.Consume(ctx); err != nil {
				c.logger.Error("消费通知事件失败",
					elog.String("topic", c.topic),
					elog.FieldErr(err))
			}
		}
	}()
}

func (c *Consumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	return c.handle(ctx, msg)
}

func NewOrderEventConsumer(svc service.Service, q mq.MQ) (*Consumer, error) {
	return newConsumer(q, OrderEventName, func(ctx context.Context, evt OrderEvent) error {
		o := evt.toDomain()
		switch evt.Type {
		case orderEventTypeCreated:
			return svc.OrderCreated(ctx, o)
		case orderEventTypeCheckout:
			return svc.OrderCheckout(ctx, o)
		case orderEventTypeStatusChanged:
			return svc.OrderStatusChanged(ctx, o)
		}
		return nil
	})
}

func NewWithdrawEventConsumer(svc service.Service, q mq.MQ) (*Consumer, error) {
	return newConsumer(q, WithdrawEventName, func(ctx context.Context, evt WithdrawEvent) error {
		switch evt.Type {
		case withdrawEventTypeCreated:
			return svc.WithdrawCreated(ctx, evt.toDomain())
		case withdrawEventTypeApproved:
			return svc.WithdrawApproved(ctx, evt.toDomain())
		}
		return nil
	})
}

func NewShopEventConsumer(svc service.Service, q mq.MQ) (*Consumer, error) {
	return newConsumer(q, ShopEventName, func(ctx context.Context, evt ShopEvent) error {
		if evt.Type != shopEventTypeRegistered {
			return nil
		}
		return svc.ShopRegistered(ctx, domain.Account{
			ID:    evt.ShopID,
			Name:  evt.Name,
			Email: evt.Email,
			Token: evt.Token,
		})
	})
}

func NewProductEventConsumer(svc service.Service, q mq.MQ) (*Consumer, error) {
	return newConsumer(q, ProductEventName, func(ctx context.Context, evt ProductEvent) error {
		if evt.Type != productEventTypeDeleted {
			return nil
		}
		return svc.ProductDeleted(ctx, domain.Product{
			ID:     evt.ProductID,
			Name:   evt.ProductName,
			ShopID: evt.ShopID,
		})
	})
}

func NewUserEventConsumer(svc service.Service, q mq.MQ) (*Consumer, error) {
	return newConsumer(q, UserEventName, func(ctx context.Context, evt UserEvent) error {
		a := domain.Account{
			ID:    evt.UserID,
			Name:  evt.Name,
			Email: evt.Email,
		}
		switch evt.Type {
		case userEventTypeRegistered:
			return svc.UserRegistered(ctx, a)
		case userEventTypePasswordUpdated:
			return svc.PasswordUpdated(ctx, a)
		}
		return nil
	})
}
