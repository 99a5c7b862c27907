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
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/image"
	"github.com/ecodeclub/emall/internal/pkg/middleware"
	"github.com/ecodeclub/emall/internal/pkg/webx"
	"github.com/ecodeclub/emall/internal/quicksell/internal/domain"
	"github.com/ecodeclub/emall/internal/quicksell/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const quickSellFolder = "quicksell"

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.Service
	imageSvc image.Service
}

func NewHandler(svc service.Service, imageSvc image.Service) *Handler {
	return &Handler{
		svc:      svc,
		imageSvc: imageSvc,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/quicksell", middleware.NewCheckRoleMiddlewareBuilder(middleware.RoleUser).Build())
	g.POST("/create", ginx.BS[SaveReq](h.Create))
	g.POST("/list", ginx.S(h.ListMine))
	g.POST("/sell", ginx.BS[IDReq](h.Sell))
	g.POST("/update", ginx.BS[SaveReq](h.Update))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))
}

func (h *Handler) Create(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	l, err := h.svc.Create(ctx.Request.Context(), h.toDomain(ctx.Request.Context(), req, sess.Claims().Uid))
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return webx.Created(ctx, newListing(l))
}

func (h *Handler) ListMine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	ls, err := h.svc.ListMine(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ListingList{
		Listings: slice.Map(ls, func(idx int, src domain.Listing) Listing {
			return newListing(src)
		}),
	}}, nil
}

func (h *Handler) Sell(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	l, err := h.svc.Sell(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Data: newListing(l)}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	l, err := h.svc.Update(ctx.Request.Context(), h.toDomain(ctx.Request.Context(), req, sess.Claims().Uid))
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Data: newListing(l)}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) toDomain(ctx context.Context, req SaveReq, ownerID int64) domain.Listing {
	l := domain.Listing{
		ID:          req.ID,
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Condition:   req.Condition,
		Price:       req.Price,
	}
	if len(req.Images) > 0 {
		l.Images = h.imageSvc.UploadAll(ctx, req.Images, quickSellFolder)
	}
	return l
}
