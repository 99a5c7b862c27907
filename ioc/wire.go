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

package ioc

import (
	"github.com/ecodeclub/emall/internal/image"
	"github.com/ecodeclub/emall/internal/notification"
	"github.com/ecodeclub/emall/internal/order"
	"github.com/ecodeclub/emall/internal/product"
	"github.com/ecodeclub/emall/internal/quicksell"
	"github.com/ecodeclub/emall/internal/shop"
	"github.com/ecodeclub/emall/internal/user"
	"github.com/ecodeclub/emall/internal/withdraw"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitCloudinary, InitSession, InitES)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		image.InitModule,
		user.InitModule,
		shop.InitModule,
		product.InitModule,
		order.InitModule,
		withdraw.InitModule,
		quicksell.InitModule,
		notification.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*shop.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*product.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*withdraw.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*quicksell.Module), "Hdl"),
		initMQConsumers,
		initGinxServer,
		InitAdminServer,
	)
	return new(App), nil
}
