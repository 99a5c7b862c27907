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
	"strconv"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

var ErrKeyNotFound = errors.New("key不存在")

const activationTokenExpiration = 5 * time.Minute

//go:generate mockgen -source=./shop.go -destination=../../../mocks/cache.mock.go -package=shopmocks ShopCache
type ShopCache interface {
	SetActivationToken(ctx context.Context, token string, shopID int64) error
	// GetActivationToken 不存在或者过期返回 ErrKeyNotFound
	GetActivationToken(ctx context.Context, token string) (int64, error)
	DelActivationToken(ctx context.Context, token string) error
}

type ShopECache struct {
	ec ecache.Cache
}

func NewShopECache(ec ecache.Cache) ShopCache {
	return &ShopECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "shop:",
		},
	}
}

func (c *ShopECache) SetActivationToken(ctx context.Context, token string, shopID int64) error {
	return c.ec.Set(ctx, c.activationKey(token), strconv.FormatInt(shopID, 10), activationTokenExpiration)
}

func (c *ShopECache) GetActivationToken(ctx context.Context, token string) (int64, error) {
	val := c.ec.Get(ctx, c.activationKey(token))
	if val.KeyNotFound() {
		return 0, ErrKeyNotFound
	}
	str, err := val.AsString()
	if err != nil {
		return 0, errors.Wrap(err, "查询缓存出错")
	}
	id, err := strconv.ParseInt(str, 10, 64)
	return id, errors.Wrap(err, "解析激活令牌失败")
}

func (c *ShopECache) DelActivationToken(ctx context.Context, token string) error {
	_, err := c.ec.Delete(ctx, c.activationKey(token))
	return err
}

func (c *ShopECache) activationKey(token string) string {
	return fmt.Sprintf("activation:%s", token)
}
