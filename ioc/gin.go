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
	"strings"

	"github.com/ecodeclub/emall/internal/order"
	"github.com/ecodeclub/emall/internal/pkg/middleware"
	"github.com/ecodeclub/emall/internal/product"
	"github.com/ecodeclub/emall/internal/quicksell"
	"github.com/ecodeclub/emall/internal/shop"
	"github.com/ecodeclub/emall/internal/user"
	"github.com/ecodeclub/emall/internal/withdraw"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

var httpMetrics = middleware.NewMetricsBuilder(prometheus.DefaultRegisterer)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	shopHdl *shop.Handler,
	productHdl *product.Handler,
	orderHdl *order.Handler,
	withdrawHdl *withdraw.Handler,
	quicksellHdl *quicksell.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("server.http").Build()
	res.Use(newCORS(), httpMetrics.Build("web"))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	shopHdl.PublicRoutes(res.Engine)
	productHdl.PublicRoutes(res.Engine)
	orderHdl.PublicRoutes(res.Engine)
	withdrawHdl.PublicRoutes(res.Engine)
	quicksellHdl.PublicRoutes(res.Engine)
	// 登录校验，角色校验在各个模块的路由分组上
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	shopHdl.PrivateRoutes(res.Engine)
	productHdl.PrivateRoutes(res.Engine)
	orderHdl.PrivateRoutes(res.Engine)
	withdrawHdl.PrivateRoutes(res.Engine)
	quicksellHdl.PrivateRoutes(res.Engine)
	return res
}

func newCORS() gin.HandlerFunc {
	origins := econf.GetStringSlice("server.allowOrigins")
	return cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range origins {
				if strings.Contains(origin, o) {
					return true
				}
			}
			return false
		},
	})
}
