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
	"net/http"

	"github.com/ecodeclub/emall/internal/order"
	"github.com/ecodeclub/emall/internal/pkg/middleware"
	"github.com/ecodeclub/emall/internal/product"
	"github.com/ecodeclub/emall/internal/shop"
	"github.com/ecodeclub/emall/internal/user"
	"github.com/ecodeclub/emall/internal/withdraw"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

// InitAdminServer 管理后台单独一个端口，只有管理员能访问
func InitAdminServer(orderHdl *order.AdminHandler,
	withdrawHdl *withdraw.AdminHandler,
	userHdl *user.AdminHandler,
	shopHdl *shop.AdminHandler,
	productHdl *product.AdminHandler,
) AdminServer {
	res := egin.Load("server.admin").Build()
	res.Use(newCORS(), httpMetrics.Build("admin"))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	res.Use(session.CheckLoginMiddleware())
	res.Use(middleware.NewCheckRoleMiddlewareBuilder(middleware.RoleAdmin).Build())
	orderHdl.PrivateRoutes(res.Engine)
	withdrawHdl.PrivateRoutes(res.Engine)
	userHdl.PrivateRoutes(res.Engine)
	shopHdl.PrivateRoutes(res.Engine)
	productHdl.PrivateRoutes(res.Engine)
	return res
}
