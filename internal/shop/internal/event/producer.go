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

	"github.com/ecodeclub/emall/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const ShopEventName = "shop_events"

const (
	ShopEventTypeRegistered = "registered"
	// ShopEventTypeDeleted 店铺被管理员删除，商品模块据此下架该店铺的商品
	ShopEventTypeDeleted = "deleted"
)

type ShopEvent struct {
	Type   string `json:"type"`
	ShopID int64  `json:"shopId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	// Token 激活令牌
	Token string `json:"token"`
}

//go:generate mockgen -source=./producer.go -destination=./mocks/producer.mock.go -package=evtmocks ShopEventProducer
type ShopEventProducer interface {
	Produce(ctx context.Context, evt ShopEvent) error
}

func NewShopEventProducer(q mq.MQ) (ShopEventProducer, error) {
	return mqx.NewKeyedProducer[ShopEvent](q, ShopEventName, func(evt ShopEvent) string {
		return evt.Email
	})
}
