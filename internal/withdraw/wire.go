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

//go:build wireinject

package withdraw

import (
	"github.com/ecodeclub/emall/internal/shop"
	"github.com/ecodeclub/emall/internal/withdraw/internal/repository"
	"github.com/ecodeclub/emall/internal/withdraw/internal/service"
	"github.com/ecodeclub/emall/internal/withdraw/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	initDAO,
	repository.NewWithdrawRepository,
	initWithdrawEventProducer,
	service.NewService,
)

func InitModule(db *egorm.Component, q mq.MQ, shopModule *shop.Module) *Module {
	wire.Build(
		ProviderSet,
		wire.FieldsOf(new(*shop.Module), "Svc"),
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
