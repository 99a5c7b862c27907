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

package dao

import (
	"context"
	_ "embed"
	"encoding/json"
	"strconv"
	"time"

	"github.com/olivere/elastic/v7"
)

const ProductIndexName = "product_index"

//go:embed product_index.json
var productIndex string

// ProductDoc 只索引参与关键词匹配的字段，价格和库存以数据库为准
type ProductDoc struct {
	Id          int64    `json:"id"`
	ShopId      int64    `json:"shop_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Ctime       int64    `json:"ctime"`
}

//go:generate mockgen -source=./search.go -destination=./mocks/search.mock.go -package=daomocks ProductSearchDAO
type ProductSearchDAO interface {
	Input(ctx context.Context, doc ProductDoc) error
	Delete(ctx context.Context, id int64) error
	// Search 按相关度返回命中的商品 ID
	Search(ctx context.Context, keyword string, limit int) ([]int64, error)
}

type ProductElasticDAO struct {
	client *elastic.Client
	index  string
}

func NewProductElasticDAO(client *elastic.Client) *ProductElasticDAO {
	return &ProductElasticDAO{
		client: client,
		index:  ProductIndexName,
	}
}

func (d *ProductElasticDAO) Input(ctx context.Context, doc ProductDoc) error {
	_, err := d.client.Index().
		Index(d.index).
		Id(strconv.FormatInt(doc.Id, 10)).
		BodyJson(doc).
		Do(ctx)
	return err
}

func (d *ProductElasticDAO) Delete(ctx context.Context, id int64) error {
	_, err := d.client.Delete().
		Index(d.index).
		Id(strconv.FormatInt(id, 10)).
		Do(ctx)
	if elastic.IsNotFound(err) {
		return nil
	}
	return err
}

func (d *ProductElasticDAO) Search(ctx context.Context, keyword string, limit int) ([]int64, error) {
	query := elastic.NewBoolQuery().Should(
		elastic.NewMatchQuery("name", keyword).Boost(3),
		elastic.NewMatchQuery("tags", keyword).Boost(2),
		elastic.NewMatchQuery("category", keyword).Boost(2),
		elastic.NewMatchQuery("description", keyword),
	).MinimumNumberShouldMatch(1)
	resp, err := d.client.Search(d.index).
		Size(limit).
		Query(query).
		FetchSourceContext(elastic.NewFetchSourceContext(true).Include("id")).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]int64, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var ele ProductDoc
		err = json.Unmarshal(hit.Source, &ele)
		if err != nil {
			return nil, err
		}
		res = append(res, ele.Id)
	}
	return res, nil
}

// InitES 创建商品索引
func InitES(client *elastic.Client) error {
	const timeout = time.Second * 10
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return tryCreateIndex(ctx, client, ProductIndexName, productIndex)
}

func tryCreateIndex(ctx context.Context, client *elastic.Client, idxName, idxCfg string) error {
	// 索引可能已经建好了
	ok, err := client.IndexExists(idxName).Do(ctx)
	if err != nil || ok {
		return err
	}
	_, err = client.CreateIndex(idxName).Body(idxCfg).Do(ctx)
	return err
}
