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
	"github.com/ecodeclub/emall/internal/user/internal/domain"
	"github.com/ecodeclub/emall/internal/user/internal/errs"
	"github.com/ecodeclub/emall/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const avatarFolder = "avatars"

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.UserService
	imageSvc image.Service
}

func NewHandler(svc service.UserService, imageSvc image.Service) *Handler {
	return &Handler{
		svc:      svc,
		imageSvc: imageSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/user")
	g.POST("/register", ginx.B[RegisterReq](h.Register))
	g.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/user",
		middleware.NewCheckRoleMiddlewareBuilder(middleware.RoleUser, middleware.RoleAdmin).Build())
	g.POST("/profile", ginx.S(h.Profile))
	g.POST("/profile/update", ginx.BS[UpdateProfileReq](h.UpdateProfile))
	g.POST("/password/update", ginx.BS[UpdatePasswordReq](h.UpdatePassword))
	g.POST("/address/save", ginx.BS[Address](h.SaveAddress))
	g.POST("/address/delete", ginx.BS[AddressIDReq](h.DeleteAddress))
	g.POST("/logout", ginx.S(h.Logout))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	u := domain.User{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if req.Avatar != "" {
		u.Avatar = h.imageSvc.UploadAll(ctx.Request.Context(), []string{req.Avatar}, avatarFolder)[0]
	}
	u, err := h.svc.Register(ctx.Request.Context(), u, req.Password)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return webx.Created(ctx, newProfile(u))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	role := middleware.RoleUser
	if u.Role == domain.RoleAdmin {
		role = middleware.RoleAdmin
	}
	_, err = session.NewSessionBuilder(ctx, u.ID).
		SetJwtData(map[string]string{
			middleware.ClaimRole: role,
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *Handler) UpdateProfile(ctx *ginx.Context, req UpdateProfileReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	u := domain.User{
		ID:          uid,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	}
	var old domain.User
	if req.Avatar != "" {
		var err error
		old, err = h.svc.Profile(ctx.Request.Context(), uid)
		if err != nil {
			return webx.Render(ctx, systemErrorResult, err)
		}
		u.Avatar = h.imageSvc.UploadAll(ctx.Request.Context(), []string{req.Avatar}, avatarFolder)[0]
	}
	if err := h.svc.UpdateProfile(ctx.Request.Context(), u); err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	if req.Avatar != "" && !old.Avatar.IsZero() {
		h.imageSvc.DeleteAll(ctx.Request.Context(), []image.Image{old.Avatar})
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) UpdatePassword(ctx *ginx.Context, req UpdatePasswordReq, sess session.Session) (ginx.Result, error) {
	if req.NewPassword != req.ConfirmPassword {
		return webx.Render(ctx, systemErrorResult, errs.ErrInvalidParam)
	}
	err := h.svc.UpdatePassword(ctx.Request.Context(), sess.Claims().Uid, req.OldPassword, req.NewPassword)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) SaveAddress(ctx *ginx.Context, req Address, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.SaveAddress(ctx.Request.Context(), sess.Claims().Uid, domain.Address(req))
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *Handler) DeleteAddress(ctx *ginx.Context, req AddressIDReq, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.DeleteAddress(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *Handler) Logout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := session.DefaultProvider().Destroy(ctx); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
