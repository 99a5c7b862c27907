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

const ProductEventName = "product_events"

const (
	ProductEventTypeDeleted = "deleted"
)

type ProductEvent struct {
	Type        string `json:"type"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	ShopID      int64  `json:"shopId"`
	Ctime       int64  `json:"ctime"`
}

//go:generate mockgen -source=./producer.go -destination=./mocks/producer.mock.go -package=evtmocks ProductEventProducer
type ProductEventProducer interface {
	Produce(ctx context.Context, evt ProductEvent) error
}

func NewProductEventProducer(q mq.MQ) (ProductEventProducer, error) {
	return mqx.NewKeyedProducer[ProductEvent](q, ProductEventName, func(evt ProductEvent) string {
		return strconv.FormatInt(evt.ShopID, 10)
	})
}
