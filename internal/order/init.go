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

package order

import (
	"sync"

	"github.com/ecodeclub/emall/internal/order/internal/event"
	"github.com/ecodeclub/emall/internal/order/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/order/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/shopspring/decimal"
)

var daoOnce = &sync.Once{}

func initDAO(db *egorm.Component) dao.OrderDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewOrderGORMDAO(db)
}

func initOrderEventProducer(q mq.MQ) event.OrderEventProducer {
	p, err := event.NewOrderEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

// initServiceChargeRate 没有配置时不抽成
func initServiceChargeRate() service.ServiceChargeRate {
	raw := econf.GetString("order.serviceChargeRate")
	if raw == "" {
		return service.ServiceChargeRate(decimal.Zero)
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		panic(err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		panic("order.serviceChargeRate 必须在 0 到 1 之间")
	}
	return service.ServiceChargeRate(rate)
}
