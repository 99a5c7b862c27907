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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/emall/internal/image"
	"github.com/ecodeclub/emall/internal/product/internal/domain"
	"github.com/ecodeclub/emall/internal/product/internal/errs"
	"github.com/ecodeclub/emall/internal/product/internal/event"
	"github.com/ecodeclub/emall/internal/product/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

//go:generate mockgen -source=./service.go -destination=../../mocks/product.mock.go -package=productmocks Service
type Service interface {
	// Save ID 为 0 时创建，否则更新，只能操作自己店铺的商品
	Save(ctx context.Context, p domain.Product) (int64, error)
	UpdateStock(ctx context.Context, shopID, id, stock int64, colors []domain.Color) error
	Delete(ctx context.Context, shopID, id int64) error
	Detail(ctx context.Context, id int64) (domain.Product, error)
	ListByShop(ctx context.Context, shopID int64, offset, limit int) ([]domain.Product, error)
	List(ctx context.Context, q domain.ListQuery) ([]domain.Product, error)
	// ListAll 管理后台使用，同时返回总数
	ListAll(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	// DeleteByShop 店铺被删除后清理它的全部商品，返回删除的数量
	DeleteByShop(ctx context.Context, shopID int64) (int, error)

	// ApplyStock 扣减库存并累加销量，任何一项失败全部回滚
	// 同一个 bizKey 只生效一次，重复调用返回 errs.ErrStockAlreadyApplied
	ApplyStock(ctx context.Context, bizKey string, deductions []domain.StockDeduction) error
}

type service struct {
	repo     repository.ProductRepository
	imageSvc image.Service
	producer event.ProductEventProducer
	logger   *elog.Component
}

func NewService(repo repository.ProductRepository, imageSvc image.Service, producer event.ProductEventProducer) Service {
	return &service{
		repo:     repo,
		imageSvc: imageSvc,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Save(ctx context.Context, p domain.Product) (int64, error) {
	if err := s.validate(p); err != nil {
		return 0, err
	}
	if p.ID == 0 {
		return s.create(ctx, p)
	}
	return p.ID, s.update(ctx, p)
}

func (s *service) validate(p domain.Product) error {
	if p.ShopID <= 0 || p.Name == "" || p.OriginalPrice < 0 || p.DiscountPrice < 0 || p.Stock < 0 {
		return errs.ErrInvalidParam
	}
	seen := make(map[string]struct{}, len(p.Colors))
	for _, c := range p.Colors {
		if c.Color == "" || c.Stock < 0 {
			return errs.ErrInvalidParam
		}
		if _, ok := seen[c.Color]; ok {
			return errs.ErrInvalidParam
		}
		seen[c.Color] = struct{}{}
	}
	return nil
}

func (s *service) create(ctx context.Context, p domain.Product) (int64, error) {
	if len(p.AllImages()) == 0 {
		p.Images = []image.Image{s.imageSvc.Placeholder()}
	}
	p.SoldOut = 0
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("创建商品失败: %w", err)
	}
	return id, nil
}

// update 没有上传新图片时沿用旧图片，被替换的旧图片删除
func (s *service) update(ctx context.Context, p domain.Product) error {
	old, err := s.findOwned(ctx, p.ShopID, p.ID)
	if err != nil {
		return err
	}
	if len(p.Images) == 0 {
		p.Images = old.Images
	}
	p.Ctime = old.Ctime
	oldColors := make(map[string]domain.Color, len(old.Colors))
	for _, c := range old.Colors {
		oldColors[c.Color] = c
	}
	for i := range p.Colors {
		if len(p.Colors[i].Images) == 0 {
			p.Colors[i].Images = oldColors[p.Colors[i].Color].Images
		}
	}
	if err = s.repo.Update(ctx, p); err != nil {
		return s.wrapNotFound(err, "更新商品失败")
	}
	s.imageSvc.DeleteAll(ctx, diffImages(old.AllImages(), p.AllImages()))
	return nil
}

func (s *service) UpdateStock(ctx context.Context, shopID, id, stock int64, colors []domain.Color) error {
	if stock < 0 {
		return errs.ErrInvalidParam
	}
	for _, c := range colors {
		if c.Stock < 0 {
			return errs.ErrInvalidParam
		}
	}
	if _, err := s.findOwned(ctx, shopID, id); err != nil {
		return err
	}
	err := s.repo.UpdateStock(ctx, id, stock, colors)
	if errors.Is(err, repository.ErrColorNotFound) {
		return errs.ErrColorNotFound
	}
	return s.wrapNotFound(err, "更新库存失败")
}

func (s *service) Delete(ctx context.Context, shopID, id int64) error {
	p, err := s.findOwned(ctx, shopID, id)
	if err != nil {
		return err
	}
	if err = s.repo.Delete(ctx, id); err != nil {
		return s.wrapNotFound(err, "删除商品失败")
	}
	s.imageSvc.DeleteAll(ctx, p.AllImages())
	evt := event.ProductEvent{
		Type:        event.ProductEventTypeDeleted,
		ProductID:   p.ID,
		ProductName: p.Name,
		ShopID:      p.ShopID,
		Ctime:       time.Now().UnixMilli(),
	}
	if er := s.producer.Produce(ctx, evt); er != nil {
		s.logger.Error("发送商品删除事件失败",
			elog.Int64("productID", id),
			elog.FieldErr(er))
	}
	return nil
}

// DeleteByShop 不发送商品删除事件，卖家已经不存在了
func (s *service) DeleteByShop(ctx context.Context, shopID int64) (int, error) {
	cnt := 0
	for {
		ps, err := s.repo.FindByShopID(ctx, shopID, 0, maxLimit)
		if err != nil {
			return cnt, fmt.Errorf("查找店铺 %d 的商品失败: %w", shopID, err)
		}
		if len(ps) == 0 {
			return cnt, nil
		}
		for _, p := range ps {
			// 列表里没有颜色图片
			full, err := s.repo.FindByID(ctx, p.ID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return cnt, fmt.Errorf("查找商品 %d 失败: %w", p.ID, err)
			}
			err = s.repo.Delete(ctx, p.ID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return cnt, fmt.Errorf("删除商品 %d 失败: %w", p.ID, err)
			}
			s.imageSvc.DeleteAll(ctx, full.AllImages())
			cnt++
		}
	}
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, s.wrapNotFound(err, "查找商品失败")
	}
	return p, nil
}

func (s *service) findOwned(ctx context.Context, shopID, id int64) (domain.Product, error) {
	p, err := s.Detail(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	if p.ShopID != shopID {
		return domain.Product{}, errs.ErrPermissionDenied
	}
	return p, nil
}

func (s *service) ListByShop(ctx context.Context, shopID int64, offset, limit int) ([]domain.Product, error) {
	offset, limit = normalizePage(offset, limit)
	return s.repo.FindByShopID(ctx, shopID, offset, limit)
}

func (s *service) List(ctx context.Context, q domain.ListQuery) ([]domain.Product, error) {
	q.Offset, q.Limit = normalizePage(q.Offset, q.Limit)
	return s.repo.List(ctx, q)
}

func (s *service) ListAll(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	offset, limit = normalizePage(offset, limit)
	ps, total, err := s.repo.ListAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("查找商品列表失败: %w", err)
	}
	return ps, total, nil
}

func (s *service) ApplyStock(ctx context.Context, bizKey string, deductions []domain.StockDeduction) error {
	if bizKey == "" {
		return errs.ErrInvalidParam
	}
	for _, d := range deductions {
		if d.Qty < 1 {
			return errs.ErrInvalidParam
		}
	}
	err := s.repo.ApplyStock(ctx, bizKey, deductions)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDuplicatedStockLog):
		return errs.ErrStockAlreadyApplied
	case errors.Is(err, repository.ErrColorNotFound):
		return fmt.Errorf("业务 %s 扣减库存失败: %w", bizKey, errs.ErrColorNotFound)
	case errors.Is(err, repository.ErrInsufficientStock):
		return fmt.Errorf("业务 %s 扣减库存失败: %w", bizKey, errs.ErrInsufficientStock)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("业务 %s 扣减库存失败: %w", bizKey, errs.ErrProductUnavailable)
	default:
		return fmt.Errorf("业务 %s 扣减库存失败: %w", bizKey, err)
	}
}

func (s *service) wrapNotFound(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", msg, errs.ErrProductNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func normalizePage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return offset, limit
}

// diffImages 在 old 中但是不在 cur 中的图片
func diffImages(old, cur []image.Image) []image.Image {
	kept := make(map[string]struct{}, len(cur))
	for _, img := range cur {
		kept[img.PublicID] = struct{}{}
	}
	res := make([]image.Image, 0, len(old))
	for _, img := range old {
		if _, ok := kept[img.PublicID]; !ok {
			res = append(res, img)
		}
	}
	return res
}
