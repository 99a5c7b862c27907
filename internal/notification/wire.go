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

package notification

import (
	"github.com/ecodeclub/emall/internal/notification/internal/service"
	"github.com/ecodeclub/emall/internal/shop"
	"github.com/ecodeclub/emall/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	initConfig,
	initMailService,
	service.NewService,
	initConsumers,
)

func InitModule(q mq.MQ, shopModule *shop.Module, userModule *user.Module) *Module {
	wire.Build(
		ProviderSet,
		wire.FieldsOf(new(*shop.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
