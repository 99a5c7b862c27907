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

package web

import (
	"github.com/ecodeclub/emall/internal/image"
	"github.com/ecodeclub/emall/internal/pkg/middleware"
	"github.com/ecodeclub/emall/internal/pkg/webx"
	"github.com/ecodeclub/emall/internal/shop/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc      service.Service
	imageSvc image.Service
}

func NewAdminHandler(svc service.Service, imageSvc image.Service) *AdminHandler {
	return &AdminHandler{svc: svc, imageSvc: imageSvc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/shop", middleware.NewCheckRoleMiddlewareBuilder(middleware.RoleAdmin).Build())
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/delete", ginx.B[IDReq](h.Delete))
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	ss, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newShopList(ss, total)}, nil
}

// Delete 店铺的商品由商品模块消费删除事件后清理
func (h *AdminHandler) Delete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	shop, err := h.svc.Delete(ctx.Request.Context(), req.ID)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	if shop.Avatar.PublicID != "" {
		h.imageSvc.DeleteAll(ctx.Request.Context(), []image.Image{shop.Avatar})
	}
	return ginx.Result{Msg: "OK"}, nil
}
