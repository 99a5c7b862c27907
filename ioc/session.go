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

package ioc

import (
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/ginx/session/cookie"
	"github.com/ecodeclub/ginx/session/header"
	"github.com/ecodeclub/ginx/session/mixin"
	redis2 "github.com/ecodeclub/ginx/session/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

// InitSession 买家、卖家和管理员共用一套会话，角色放在 jwt 里
func InitSession(cmd redis.Cmdable) session.Provider {
	type Config struct {
		SessionEncryptedKey string `yaml:"sessionEncryptedKey"`
		// 会话有效期，单位小时，默认一天
		ExpireHours int `yaml:"expireHours"`
		Cookie      struct {
			Name   string `yaml:"name"`
			Domain string `yaml:"domain"`
			// 本地调试时可以关闭
			Insecure bool `yaml:"insecure"`
		} `yaml:"cookie"`
	}
	var cfg Config
	err := econf.UnmarshalKey("session", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.ExpireHours <= 0 {
		cfg.ExpireHours = 24
	}
	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = "emall_ssid"
	}
	expiration := time.Duration(cfg.ExpireHours) * time.Hour
	sp := redis2.NewSessionProvider(cmd, cfg.SessionEncryptedKey, expiration)
	cookieC := &cookie.TokenCarrier{
		MaxAge:   int(expiration.Seconds()),
		Name:     cfg.Cookie.Name,
		Secure:   !cfg.Cookie.Insecure,
		HttpOnly: true,
		Domain:   cfg.Cookie.Domain,
	}
	sp.TokenCarrier = mixin.NewTokenCarrier(header.NewTokenCarrier(), cookieC)
	return sp
}
