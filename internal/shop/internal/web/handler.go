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
	"github.com/ecodeclub/emall/internal/shop/internal/domain"
	"github.com/ecodeclub/emall/internal/shop/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const avatarFolder = "avatars"

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.Service
	imageSvc image.Service
	logger   *elog.Component
}

func NewHandler(svc service.Service, imageSvc image.Service) *Handler {
	return &Handler{
		svc:      svc,
		imageSvc: imageSvc,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/shop")
	g.POST("/register", ginx.B[RegisterReq](h.Register))
	g.POST("/activate", ginx.B[ActivateReq](h.Activate))
	g.POST("/login", ginx.B[LoginReq](h.Login))
	g.POST("/info", ginx.B[IDReq](h.Info))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/shop", middleware.NewCheckRoleMiddlewareBuilder(middleware.RoleSeller).Build())
	g.POST("/profile", ginx.S(h.Profile))
	g.POST("/profile/update", ginx.BS[UpdateProfileReq](h.UpdateProfile))
	g.POST("/withdraw-method/update", ginx.BS[WithdrawMethod](h.UpdateWithdrawMethod))
	g.POST("/withdraw-method/delete", ginx.S(h.DeleteWithdrawMethod))
	g.POST("/logout", ginx.S(h.Logout))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	shop := domain.Shop{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		ZipCode:     req.ZipCode,
	}
	if req.Avatar != "" {
		shop.Avatar = h.imageSvc.UploadAll(ctx.Request.Context(), []string{req.Avatar}, avatarFolder)[0]
	}
	shop, err := h.svc.Register(ctx.Request.Context(), shop, req.Password)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return webx.Created(ctx, newShop(shop))
}

func (h *Handler) Activate(ctx *ginx.Context, req ActivateReq) (ginx.Result, error) {
	shop, err := h.svc.Activate(ctx.Request.Context(), req.Token)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Msg: "OK", Data: newShop(shop)}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	shop, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	_, err = session.NewSessionBuilder(ctx, shop.ID).
		SetJwtData(map[string]string{
			middleware.ClaimRole: middleware.RoleSeller,
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newShop(shop)}, nil
}

func (h *Handler) Info(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	shop, err := h.svc.FindByID(ctx.Request.Context(), req.ID)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Data: newShopInfo(shop)}, nil
}

func (h *Handler) Logout(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	if err := session.DefaultProvider().Destroy(ctx); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	shop, err := h.svc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Data: newShop(shop)}, nil
}

func (h *Handler) UpdateProfile(ctx *ginx.Context, req UpdateProfileReq, sess session.Session) (ginx.Result, error) {
	shopID := sess.Claims().Uid
	old, err := h.svc.FindByID(ctx.Request.Context(), shopID)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	shop := domain.Shop{
		ID:          shopID,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		ZipCode:     req.ZipCode,
		Description: req.Description,
		Avatar:      old.Avatar,
	}
	if req.Avatar != "" {
		shop.Avatar = h.imageSvc.UploadAll(ctx.Request.Context(), []string{req.Avatar}, avatarFolder)[0]
	}
	if err = h.svc.UpdateProfile(ctx.Request.Context(), shop); err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	if req.Avatar != "" {
		h.imageSvc.DeleteAll(ctx.Request.Context(), []image.Image{old.Avatar})
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) UpdateWithdrawMethod(ctx *ginx.Context, req WithdrawMethod, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateWithdrawMethod(ctx.Request.Context(), sess.Claims().Uid, req.toDomain())
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) DeleteWithdrawMethod(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.DeleteWithdrawMethod(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
