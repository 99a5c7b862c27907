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
	"strconv"

	"github.com/ecodeclub/emall/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const OrderEventName = "order_events"

const (
	// OrderEventTypeCreated 单个卖家订单创建，通知卖家
	OrderEventTypeCreated = "created"
	// OrderEventTypeCheckout 一次下单的汇总，通知买家和运营
	OrderEventTypeCheckout      = "checkout"
	OrderEventTypeStatusChanged = "status_changed"
)

type Address struct {
	Country     string `json:"country"`
	City        string `json:"city"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	ZipCode     string `json:"zipCode"`
	AddressType string `json:"addressType"`
	Phone       string `json:"phone"`
}

type OrderEvent struct {
	Type       string  `json:"type"`
	OrderID    int64   `json:"orderId"`
	OrderSN    string  `json:"orderSn"`
	OrderIDs   []int64 `json:"orderIds,omitempty"`
	BuyerID    int64   `json:"buyerId"`
	ShopID     int64   `json:"shopId"`
	TotalPrice int64   `json:"totalPrice"`
	Status     string  `json:"status"`
	PrevStatus string  `json:"prevStatus,omitempty"`
	Address    Address `json:"address"`
	Ctime      int64   `json:"ctime"`
}

// Key 同一个订单的事件有序，汇总事件按买家
func (evt OrderEvent) Key() string {
	if evt.Type == OrderEventTypeCheckout {
		return "buyer:" + strconv.FormatInt(evt.BuyerID, 10)
	}
	return "order:" + strconv.FormatInt(evt.OrderID, 10)
}

//go:generate mockgen -source=./producer.go -destination=./mocks/producer.mock.go -package=evtmocks OrderEventProducer
type OrderEventProducer interface {
	Produce(ctx context.Context, evt OrderEvent) error
}

func NewOrderEventProducer(q mq.MQ) (OrderEventProducer, error) {
	return mqx.NewKeyedProducer[OrderEvent](q, OrderEventName, OrderEvent.Key)
}
