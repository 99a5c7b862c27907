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
	"github.com/ecodeclub/emall/internal/pkg/middleware"
	"github.com/ecodeclub/emall/internal/pkg/webx"
	"github.com/ecodeclub/emall/internal/withdraw/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/withdraw", middleware.NewCheckRoleMiddlewareBuilder(middleware.RoleAdmin).Build())
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/approve", ginx.B[IDReq](h.Approve))
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	ws, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newWithdrawList(ws, total)}, nil
}

func (h *AdminHandler) Approve(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	w, err := h.svc.Approve(ctx.Request.Context(), req.ID)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return webx.Created(ctx, newWithdraw(w))
}
