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
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/service"
	"github.com/ecodeclub/emall/internal/pkg/middleware"
	"github.com/ecodeclub/emall/internal/pkg/webx"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

// AdminHandler 挂在管理后台上
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order", middleware.NewCheckRoleMiddlewareBuilder(middleware.RoleAdmin).Build())
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/status", ginx.BS[UpdateStatusReq](h.UpdateStatus))
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	os, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrderList(os, total)}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Detail(ctx.Request.Context(), req.ID, h.operator(sess))
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.UpdateStatus(ctx.Request.Context(), req.ID, req.Status, h.operator(sess))
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *AdminHandler) operator(sess session.Session) domain.Operator {
	return domain.Operator{Role: domain.OperatorAdmin, ID: sess.Claims().Uid}
}
