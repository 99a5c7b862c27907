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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/emall/internal/image"
	"github.com/ecodeclub/emall/internal/product/internal/domain"
	"github.com/ecodeclub/emall/internal/product/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// maxSearchHits 关键词搜索最多取这么多条命中，再交给数据库排序分页
const maxSearchHits = 1000

var (
	ErrDuplicatedStockLog = dao.ErrDuplicatedStockLog
	ErrColorNotFound      = dao.ErrColorNotFound
	ErrInsufficientStock  = dao.ErrInsufficientStock
)

type ProductRepository interface {
	Create(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) error
	// FindByID 包含颜色
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindByShopID(ctx context.Context, shopID int64, offset, limit int) ([]domain.Product, error)
	List(ctx context.Context, q domain.ListQuery) ([]domain.Product, error)
	// ListAll 按创建时间倒序，同时返回总数
	ListAll(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	UpdateStock(ctx context.Context, id, stock int64, colors []domain.Color) error
	Delete(ctx context.Context, id int64) error
	ApplyStock(ctx context.Context, bizKey string, deductions []domain.StockDeduction) error
}

type productRepository struct {
	dao    dao.ProductDAO
	search dao.ProductSearchDAO
	logger *elog.Component
}

// NewProductRepository search 为 nil 时关键词搜索走数据库模糊匹配
func NewProductRepository(d dao.ProductDAO, search dao.ProductSearchDAO) ProductRepository {
	return &productRepository{
		dao:    d,
		search: search,
		logger: elog.DefaultLogger,
	}
}

func (r *productRepository) Create(ctx context.Context, p domain.Product) (int64, error) {
	id, err := r.dao.Create(ctx, r.toEntity(p), r.toColorEntities(p.Colors))
	if err != nil {
		return 0, err
	}
	p.ID = id
	p.Ctime = time.Now().UnixMilli()
	r.syncIndex(ctx, p)
	return id, nil
}

func (r *productRepository) Update(ctx context.Context, p domain.Product) error {
	err := r.dao.Update(ctx, r.toEntity(p), r.toColorEntities(p.Colors))
	if err != nil {
		return err
	}
	r.syncIndex(ctx, p)
	return nil
}

// syncIndex 索引写失败不影响主流程，下次保存时会覆盖
func (r *productRepository) syncIndex(ctx context.Context, p domain.Product) {
	if r.search == nil {
		return
	}
	err := r.search.Input(ctx, dao.ProductDoc{
		Id:          p.ID,
		ShopId:      p.ShopID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Tags:        p.Tags,
		Ctime:       p.Ctime,
	})
	if err != nil {
		r.logger.Error("同步商品索引失败",
			elog.Int64("productID", p.ID),
			elog.FieldErr(err))
	}
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	colors, err := r.dao.FindColors(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	res := r.toDomain(p)
	res.Colors = slice.Map(colors, func(idx int, src dao.Color) domain.Color {
		return domain.Color{
			Color:  src.Color,
			Stock:  src.Stock,
			Images: toImages(src.Images),
			Index:  src.Idx,
		}
	})
	return res, nil
}

func (r *productRepository) FindByShopID(ctx context.Context, shopID int64, offset, limit int) ([]domain.Product, error) {
	ps, err := r.dao.FindByShopID(ctx, shopID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	}), nil
}

func (r *productRepository) List(ctx context.Context, q domain.ListQuery) ([]domain.Product, error) {
	ps, err := r.list(ctx, q)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	}), nil
}

func (r *productRepository) list(ctx context.Context, q domain.ListQuery) ([]dao.Product, error) {
	sortBy := uint8(q.SortBy)
	if q.Keyword == "" || r.search == nil {
		return r.dao.List(ctx, q.Keyword, sortBy, q.Offset, q.Limit)
	}
	ids, err := r.search.Search(ctx, q.Keyword, maxSearchHits)
	if err != nil {
		r.logger.Warn("搜索引擎查询失败，改用数据库匹配",
			elog.String("keyword", q.Keyword),
			elog.FieldErr(err))
		return r.dao.List(ctx, q.Keyword, sortBy, q.Offset, q.Limit)
	}
	return r.dao.ListByIDs(ctx, ids, sortBy, q.Offset, q.Limit)
}

func (r *productRepository) ListAll(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg    errgroup.Group
		ps    []dao.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = r.dao.List(ctx, "", dao.SortByNewest, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	}), total, nil
}

func (r *productRepository) UpdateStock(ctx context.Context, id, stock int64, colors []domain.Color) error {
	colorStocks := make(map[string]int64, len(colors))
	for _, c := range colors {
		colorStocks[c.Color] = c.Stock
	}
	return r.dao.UpdateStock(ctx, id, stock, colorStocks)
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return err
	}
	if r.search == nil {
		return nil
	}
	if err := r.search.Delete(ctx, id); err != nil {
		r.logger.Error("删除商品索引失败",
			elog.Int64("productID", id),
			elog.FieldErr(err))
	}
	return nil
}

func (r *productRepository) ApplyStock(ctx context.Context, bizKey string, deductions []domain.StockDeduction) error {
	return r.dao.ApplyStock(ctx, bizKey, slice.Map(deductions, func(idx int, src domain.StockDeduction) dao.StockDeduction {
		return dao.StockDeduction{
			ProductId: src.ProductID,
			Color:     src.Color,
			Qty:       src.Qty,
		}
	}))
}

func (r *productRepository) toEntity(p domain.Product) dao.Product {
	return dao.Product{
		Id:            p.ID,
		ShopId:        p.ShopID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Tags:          sqlx.JsonColumn[[]string]{Val: p.Tags, Valid: len(p.Tags) > 0},
		OriginalPrice: p.OriginalPrice,
		DiscountPrice: p.DiscountPrice,
		Stock:         p.Stock,
		SoldOut:       p.SoldOut,
		Images:        toImageColumn(p.Images),
	}
}

func (r *productRepository) toColorEntities(colors []domain.Color) []dao.Color {
	return slice.Map(colors, func(idx int, src domain.Color) dao.Color {
		return dao.Color{
			Color:  src.Color,
			Stock:  src.Stock,
			Images: toImageColumn(src.Images),
			Idx:    src.Index,
		}
	})
}

func (r *productRepository) toDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:            p.Id,
		ShopID:        p.ShopId,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Tags:          p.Tags.Val,
		OriginalPrice: p.OriginalPrice,
		DiscountPrice: p.DiscountPrice,
		Stock:         p.Stock,
		SoldOut:       p.SoldOut,
		Images:        toImages(p.Images),
		Ctime:         p.Ctime,
		Utime:         p.Utime,
	}
}

func toImageColumn(images []image.Image) sqlx.JsonColumn[[]dao.Image] {
	return sqlx.JsonColumn[[]dao.Image]{
		Valid: len(images) > 0,
		Val: slice.Map(images, func(idx int, src image.Image) dao.Image {
			return dao.Image{PublicID: src.PublicID, URL: src.URL}
		}),
	}
}

func toImages(col sqlx.JsonColumn[[]dao.Image]) []image.Image {
	return slice.Map(col.Val, func(idx int, src dao.Image) image.Image {
		return image.Image{PublicID: src.PublicID, URL: src.URL}
	})
}
