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
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/emall/internal/user/internal/domain"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=./user.go -destination=../../../mocks/cache.mock.go -package=usermocks UserCache
type UserCache interface {
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (domain.User, error)
	Set(ctx context.Context, u domain.User) error
}

type UserECache struct {
	cache ecache.Cache
	// 过期时间
	expiration time.Duration
}

// NewUserECache 注意缓存前缀
func NewUserECache(c ecache.Cache) UserCache {
	return &UserECache{
		cache: &ecache.NamespaceCache{
			Namespace: "user:",
			C:         c,
		},
		expiration: time.Minute * 15,
	}
}

func (c *UserECache) Delete(ctx context.Context, id int64) error {
	_, err := c.cache.Delete(ctx, c.key(id))
	return err
}

func (c *UserECache) Get(ctx context.Context, id int64) (domain.User, error) {
	val := c.cache.Get(ctx, c.key(id))
	if val.Err != nil {
		return domain.User{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var u domain.User
	err := val.JSONScan(&u)
	return u, errors.Wrap(err, "反序列化用户失败")
}

func (c *UserECache) Set(ctx context.Context, u domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return errors.Wrap(err, "序列化用户失败")
	}
	return c.cache.Set(ctx, c.key(u.ID), string(data), c.expiration)
}

func (c *UserECache) key(id int64) string {
	return fmt.Sprintf("info:%d", id)
}
