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

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
)

const requestKeyExpiration = 10 * time.Minute

//go:generate mockgen -source=./order.go -destination=../../../mocks/cache.mock.go -package=ordermocks OrderCache
type OrderCache interface {
	// SetNXRequestKey 第一次设置返回 true
	SetNXRequestKey(ctx context.Context, buyerID int64, requestID string) (bool, error)
	DelRequestKey(ctx context.Context, buyerID int64, requestID string) error
}

type OrderECache struct {
	ec ecache.Cache
}

func NewOrderECache(ec ecache.Cache) OrderCache {
	return &OrderECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "order:",
		},
	}
}

func (c *OrderECache) SetNXRequestKey(ctx context.Context, buyerID int64, requestID string) (bool, error) {
	return c.ec.SetNX(ctx, c.requestKey(buyerID, requestID), "1", requestKeyExpiration)
}

func (c *OrderECache) DelRequestKey(ctx context.Context, buyerID int64, requestID string) error {
	_, err := c.ec.Delete(ctx, c.requestKey(buyerID, requestID))
	return err
}

func (c *OrderECache) requestKey(buyerID int64, requestID string) string {
	return fmt.Sprintf("request:%d:%s", buyerID, requestID)
}
