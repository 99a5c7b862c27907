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

package notification

import (
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/emall/internal/notification/internal/event"
	"github.com/ecodeclub/emall/internal/notification/internal/service"
	"github.com/ecodeclub/emall/internal/notification/internal/service/mail"
	"github.com/ecodeclub/emall/internal/notification/internal/service/mail/goemail"
	mailretry "github.com/ecodeclub/emall/internal/notification/internal/service/mail/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/gomail.v2"
)

func initConfig() service.Config {
	var cfg service.Config
	err := econf.UnmarshalKey("notification", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initMailService() mail.Service {
	type Config struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
	}
	var cfg Config
	err := econf.UnmarshalKey("email", &cfg)
	if err != nil {
		panic(err)
	}
	// 本地开发不配置邮件服务器
	if cfg.Host == "" {
		return mail.NewLogService()
	}
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return mailretry.NewService(goemail.NewService(cfg.From, d), func() retry.Strategy {
		const maxRetries = 3
		s, er := retry.NewExponentialBackoffRetryStrategy(time.Second, 10*time.Second, maxRetries)
		if er != nil {
			panic(er)
		}
		return s
	})
}

func initConsumers(svc service.Service, q mq.MQ) []*Consumer {
	constructors := []func(svc service.Service, q mq.MQ) (*event.Consumer, error){
		event.NewOrderEventConsumer,
		event.NewWithdrawEventConsumer,
		event.NewShopEventConsumer,
		event.NewProductEventConsumer,
		event.NewUserEventConsumer,
	}
	res := make([]*Consumer, 0, len(constructors))
	for _, newConsumer := range constructors {
		c, err := newConsumer(svc, q)
		if err != nil {
			panic(err)
		}
		res = append(res, c)
	}
	return res
}
