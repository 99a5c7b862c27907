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
	"github.com/ecodeclub/emall/internal/product/internal/domain"
	"github.com/ecodeclub/emall/internal/product/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const productFolder = "products"

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

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/shop/list", ginx.B[ListByShopReq](h.ListByShop))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/shop/product", middleware.NewCheckRoleMiddlewareBuilder(middleware.RoleSeller).Build())
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/stock/update", ginx.BS[UpdateStockReq](h.UpdateStock))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))
	g.POST("/list", ginx.BS[Page](h.ListMine))
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx.Request.Context(), req.ID)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Data: newProduct(p)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	ps, err := h.svc.List(ctx.Request.Context(), domain.ListQuery{
		Keyword: req.Keyword,
		SortBy:  domain.SortBy(req.SortBy),
		Offset:  req.Offset,
		Limit:   req.Limit,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProductList(ps)}, nil
}

func (h *Handler) ListByShop(ctx *ginx.Context, req ListByShopReq) (ginx.Result, error) {
	ps, err := h.svc.ListByShop(ctx.Request.Context(), req.ShopID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProductList(ps)}, nil
}

func (h *Handler) ListMine(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	ps, err := h.svc.ListByShop(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProductList(ps)}, nil
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	p := h.toDomain(ctx.Request.Context(), req)
	p.ShopID = sess.Claims().Uid
	id, err := h.svc.Save(ctx.Request.Context(), p)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	if req.ID == 0 {
		return webx.Created(ctx, id)
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) toDomain(ctx context.Context, req SaveReq) domain.Product {
	p := domain.Product{
		ID:            req.ID,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Tags:          req.Tags,
		OriginalPrice: req.OriginalPrice,
		DiscountPrice: req.DiscountPrice,
		Stock:         req.Stock,
	}
	if len(req.Images) > 0 {
		p.Images = h.imageSvc.UploadAll(ctx, req.Images, productFolder)
	}
	p.Colors = slice.Map(req.Colors, func(idx int, src ColorReq) domain.Color {
		c := domain.Color{
			Color: src.Color,
			Stock: src.Stock,
			Index: src.Index,
		}
		if len(src.Images) > 0 {
			c.Images = h.imageSvc.UploadAll(ctx, src.Images, productFolder)
		}
		return c
	})
	return p
}

func (h *Handler) UpdateStock(ctx *ginx.Context, req UpdateStockReq, sess session.Session) (ginx.Result, error) {
	colors := slice.Map(req.Colors, func(idx int, src ColorStock) domain.Color {
		return domain.Color{Color: src.Color, Stock: src.Stock}
	})
	err := h.svc.UpdateStock(ctx.Request.Context(), sess.Claims().Uid, req.ID, req.Stock, colors)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return webx.Render(ctx, systemErrorResult, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
