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

	"github.com/ecodeclub/ekit/mapx"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/repository/cache"
	"github.com/ecodeclub/emall/internal/order/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var ErrVersionConflict = dao.ErrVersionConflict

type OrderRepository interface {
	// CreateOrders 全部成功或者全部失败，返回的订单带上 ID
	CreateOrders(ctx context.Context, orders []domain.Order) ([]domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	UpdateStatus(ctx context.Context, o domain.Order) error
	// MarkSettled 已经入账过返回 false
	MarkSettled(ctx context.Context, id int64) (bool, error)

	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)
	ListByShop(ctx context.Context, shopID int64, offset, limit int) ([]domain.Order, int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)

	SetNXRequestKey(ctx context.Context, buyerID int64, requestID string) (bool, error)
	DelRequestKey(ctx context.Context, buyerID int64, requestID string) error
}

type orderRepository struct {
	dao   dao.OrderDAO
	cache cache.OrderCache
}

func NewOrderRepository(d dao.OrderDAO, c cache.OrderCache) OrderRepository {
	return &orderRepository{dao: d, cache: c}
}

func (r *orderRepository) CreateOrders(ctx context.Context, orders []domain.Order) ([]domain.Order, error) {
	entities := make([]dao.Order, 0, len(orders))
	items := make([][]dao.OrderItem, 0, len(orders))
	for _, o := range orders {
		entities = append(entities, r.toEntity(o))
		items = append(items, slice.Map(o.Items, func(idx int, src domain.Item) dao.OrderItem {
			return r.toItemEntity(src)
		}))
	}
	ids, err := r.dao.Create(ctx, entities, items)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Order, len(orders))
	copy(res, orders)
	for i := range res {
		res[i].ID = ids[i]
		res[i].Version = 1
	}
	return res, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	res, err := r.withItems(ctx, []dao.Order{o})
	if err != nil {
		return domain.Order{}, err
	}
	return res[0], nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, o domain.Order) error {
	return r.dao.UpdateStatus(ctx, r.toEntity(o))
}

func (r *orderRepository) MarkSettled(ctx context.Context, id int64) (bool, error) {
	return r.dao.MarkSettled(ctx, id)
}

func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	return r.list(ctx,
		func() ([]dao.Order, error) { return r.dao.ListByBuyer(ctx, buyerID, offset, limit) },
		func() (int64, error) { return r.dao.CountByBuyer(ctx, buyerID) })
}

func (r *orderRepository) ListByShop(ctx context.Context, shopID int64, offset, limit int) ([]domain.Order, int64, error) {
	return r.list(ctx,
		func() ([]dao.Order, error) { return r.dao.ListByShop(ctx, shopID, offset, limit) },
		func() (int64, error) { return r.dao.CountByShop(ctx, shopID) })
}

func (r *orderRepository) List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	return r.list(ctx,
		func() ([]dao.Order, error) { return r.dao.List(ctx, offset, limit) },
		func() (int64, error) { return r.dao.Count(ctx) })
}

func (r *orderRepository) list(ctx context.Context,
	find func() ([]dao.Order, error),
	count func() (int64, error)) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		found []dao.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		found, err = find()
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = count()
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	res, err := r.withItems(ctx, found)
	return res, total, err
}

// withItems 一次查出全部订单项再按订单分组
func (r *orderRepository) withItems(ctx context.Context, orders []dao.Order) ([]domain.Order, error) {
	ids := slice.Map(orders, func(idx int, src dao.Order) int64 {
		return src.Id
	})
	items, err := r.dao.FindItemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	grouped := mapx.NewMultiBuiltinMap[int64, domain.Item](len(orders))
	for _, item := range items {
		_ = grouped.Put(item.OrderId, r.toItemDomain(item))
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		o := r.toDomain(src)
		o.Items, _ = grouped.Get(src.Id)
		return o
	}), nil
}

func (r *orderRepository) SetNXRequestKey(ctx context.Context, buyerID int64, requestID string) (bool, error) {
	return r.cache.SetNXRequestKey(ctx, buyerID, requestID)
}

func (r *orderRepository) DelRequestKey(ctx context.Context, buyerID int64, requestID string) error {
	return r.cache.DelRequestKey(ctx, buyerID, requestID)
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:      o.ID,
		SN:      o.SN,
		BuyerId: o.BuyerID,
		ShopId:  o.ShopID,
		ShippingAddress: sqlx.JsonColumn[dao.Address]{
			Val:   dao.Address(o.ShippingAddress),
			Valid: true,
		},
		TotalPrice:    o.TotalPrice,
		PaymentId:     o.Payment.ID,
		PaymentMethod: o.Payment.Method,
		PaymentStatus: string(o.Payment.Status),
		Status:        o.Status.String(),
		StockApplied:  o.StockApplied,
		Settled:       o.Settled,
		Version:       o.Version,
		DeliveredAt:   o.DeliveredAt,
	}
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:              o.Id,
		SN:              o.SN,
		BuyerID:         o.BuyerId,
		ShopID:          o.ShopId,
		ShippingAddress: domain.Address(o.ShippingAddress.Val),
		TotalPrice:      o.TotalPrice,
		Payment: domain.Payment{
			ID:     o.PaymentId,
			Method: o.PaymentMethod,
			Status: domain.PaymentStatus(o.PaymentStatus),
		},
		Status:       domain.Status(o.Status),
		StockApplied: o.StockApplied,
		Settled:      o.Settled,
		Version:      o.Version,
		DeliveredAt:  o.DeliveredAt,
		Ctime:        o.Ctime,
		Utime:        o.Utime,
	}
}

func (r *orderRepository) toItemEntity(item domain.Item) dao.OrderItem {
	return dao.OrderItem{
		ProductId:     item.ProductID,
		ShopId:        item.ShopID,
		Name:          item.Name,
		Image:         item.Image,
		Color:         item.Color,
		Qty:           item.Qty,
		OriginalPrice: item.OriginalPrice,
		DiscountPrice: item.DiscountPrice,
	}
}

func (r *orderRepository) toItemDomain(item dao.OrderItem) domain.Item {
	return domain.Item{
		ProductID:     item.ProductId,
		ShopID:        item.ShopId,
		Name:          item.Name,
		Image:         item.Image,
		Color:         item.Color,
		Qty:           item.Qty,
		OriginalPrice: item.OriginalPrice,
		DiscountPrice: item.DiscountPrice,
	}
}
