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

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	buyer := server.Group("/order",
		middleware.NewCheckRoleMiddlewareBuilder(middleware.RoleUser, middleware.RoleAdmin).Build())
	buyer.POST("/create", ginx.BS[CreateOrderReq](h.Create))
	buyer.POST("/list", ginx.BS[Page](h.ListMine))
	buyer.POST("/detail", ginx.BS[IDReq](h.Detail))

	seller := server.Group("/shop/order",
		middleware.NewCheckRoleMiddlewareBuilder(middleware.RoleSeller).Build())
	seller.POST("/list", ginx.BS[Page](h.ListByShop))
	seller.POST("/detail", ginx.BS[IDReq](h.Detail))
	seller.POST("/status", ginx.BS[UpdateStatusReq](h.UpdateStatus))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	orders, err := h.svc.CreateOrders(ctx.Request.Context(), req.toDomain(sess.Claims().Uid))
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return webx.Created(ctx, newOrderList(orders, int64(len(orders))))
}

func (h *Handler) ListMine(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	os, total, err := h.svc.ListByBuyer(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrderList(os, total)}, nil
}

func (h *Handler) ListByShop(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	os, total, err := h.svc.ListByShop(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrderList(os, total)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Detail(ctx.Request.Context(), req.ID, operator(sess))
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *Handler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.UpdateStatus(ctx.Request.Context(), req.ID, req.Status, operator(sess))
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

// operator 卖家登录态里的 Uid 是店铺 ID
func operator(sess session.Session) domain.Operator {
	claims := sess.Claims()
	op := domain.Operator{ID: claims.Uid, Role: domain.OperatorBuyer}
	switch claims.Get(middleware.ClaimRole).StringOrDefault("") {
	case middleware.RoleSeller:
		op.Role = domain.OperatorSeller
	case middleware.RoleAdmin:
		op.Role = domain.OperatorAdmin
	}
	return op
}
