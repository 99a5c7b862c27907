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

package product

import (
	"sync"

	"github.com/ecodeclub/emall/internal/product/internal/event"
	"github.com/ecodeclub/emall/internal/product/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/product/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/olivere/elastic/v7"
)

var (
	daoOnce   = &sync.Once{}
	indexOnce = &sync.Once{}
)

func initDAO(db *egorm.Component) dao.ProductDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewProductGORMDAO(db)
}

// initSearchDAO 没有配置搜索引擎时返回 nil
func initSearchDAO(es *elastic.Client) dao.ProductSearchDAO {
	if es == nil {
		return nil
	}
	indexOnce.Do(func() {
		err := dao.InitES(es)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewProductElasticDAO(es)
}

func initProductEventProducer(q mq.MQ) event.ProductEventProducer {
	p, err := event.NewProductEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

func initShopEventConsumer(svc service.Service, q mq.MQ) *event.ShopEventConsumer {
	c, err := event.NewShopEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	return c
}
