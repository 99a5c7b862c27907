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
	"strconv"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/errs"
	"github.com/ecodeclub/emall/internal/order/internal/event"
	"github.com/ecodeclub/emall/internal/order/internal/repository"
	"github.com/ecodeclub/emall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/emall/internal/product"
	"github.com/ecodeclub/emall/internal/shop"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	orderSNPrefix = "OD"
)

// ServiceChargeRate 平台抽成比例，0.05 表示 5%
type ServiceChargeRate decimal.Decimal

//go:generate mockgen -source=./service.go -destination=../../mocks/order.mock.go -package=ordermocks Service
type Service interface {
	// CreateOrders 按卖家拆单，全部订单在一个事务里创建
	CreateOrders(ctx context.Context, cart domain.Cart) ([]domain.Order, error)
	// UpdateStatus 第一次进入履约阶段时扣减库存，第一次送达时给卖家入账
	UpdateStatus(ctx context.Context, id int64, target string, op domain.Operator) (domain.Order, error)
	Detail(ctx context.Context, id int64, op domain.Operator) (domain.Order, error)

	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)
	ListByShop(ctx context.Context, shopID int64, offset, limit int) ([]domain.Order, int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
}

type service struct {
	repo       repository.OrderRepository
	productSvc product.Service
	shopSvc    shop.Service
	producer   event.OrderEventProducer
	snGen      *sequencenumber.Generator
	chargeRate decimal.Decimal
	logger     *elog.Component
}

func NewService(repo repository.OrderRepository,
	productSvc product.Service,
	shopSvc shop.Service,
	producer event.OrderEventProducer,
	rate ServiceChargeRate) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
		shopSvc:    shopSvc,
		producer:   producer,
		snGen:      sequencenumber.NewGenerator(),
		chargeRate: decimal.Decimal(rate),
		logger:     elog.DefaultLogger,
	}
}

func (s *service) CreateOrders(ctx context.Context, cart domain.Cart) ([]domain.Order, error) {
	if err := s.validate(cart); err != nil {
		return nil, err
	}
	if cart.RequestID != "" {
		ok, err := s.repo.SetNXRequestKey(ctx, cart.BuyerID, cart.RequestID)
		if err != nil {
			// 缓存不可用时放行，不影响下单
			s.logger.Warn("设置下单请求ID失败",
				elog.Int64("buyerID", cart.BuyerID),
				elog.FieldErr(err))
		} else if !ok {
			return nil, errs.ErrDuplicateRequest
		}
	}

	orders := cart.Split()
	for i := range orders {
		orders[i].SN = s.snGen.Generate(orderSNPrefix, cart.BuyerID)
	}
	created, err := s.repo.CreateOrders(ctx, orders)
	if err != nil {
		if cart.RequestID != "" {
			if er := s.repo.DelRequestKey(ctx, cart.BuyerID, cart.RequestID); er != nil {
				s.logger.Warn("删除下单请求ID失败", elog.FieldErr(er))
			}
		}
		return nil, fmt.Errorf("%w: %w", errs.ErrSaveFailed, err)
	}
	s.sendCreatedEvents(ctx, created)
	return created, nil
}

func (s *service) validate(cart domain.Cart) error {
	if len(cart.Items) == 0 {
		return errs.ErrEmptyCart
	}
	if cart.BuyerID <= 0 {
		return errs.ErrInvalidParam
	}
	for _, item := range cart.Items {
		if item.ProductID <= 0 || item.ShopID <= 0 || item.Qty < 1 ||
			item.OriginalPrice < 0 || item.DiscountPrice < 0 {
			return errs.ErrInvalidParam
		}
	}
	return nil
}

// sendCreatedEvents 通知发送失败只记录日志
func (s *service) sendCreatedEvents(ctx context.Context, orders []domain.Order) {
	now := time.Now().UnixMilli()
	var total int64
	for _, o := range orders {
		total += o.TotalPrice
		evt := s.newEvent(event.OrderEventTypeCreated, o, now)
		if err := s.producer.Produce(ctx, evt); err != nil {
			s.logger.Error("发送订单创建事件失败",
				elog.Int64("orderID", o.ID),
				elog.FieldErr(err))
		}
	}
	first := orders[0]
	checkout := s.newEvent(event.OrderEventTypeCheckout, first, now)
	checkout.OrderID = 0
	checkout.OrderSN = ""
	checkout.ShopID = 0
	checkout.Status = ""
	checkout.TotalPrice = total
	checkout.OrderIDs = slice.Map(orders, func(idx int, src domain.Order) int64 {
		return src.ID
	})
	if err := s.producer.Produce(ctx, checkout); err != nil {
		s.logger.Error("发送下单汇总事件失败",
			elog.Int64("buyerID", first.BuyerID),
			elog.FieldErr(err))
	}
}

func (s *service) UpdateStatus(ctx context.Context, id int64, target string, op domain.Operator) (domain.Order, error) {
	status, ok := domain.ParseStatus(target)
	if !ok {
		return domain.Order{}, errs.ErrInvalidStatus
	}
	o, err := s.find(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if !op.CanUpdateStatus(o) {
		return domain.Order{}, errs.ErrPermissionDenied
	}
	if o.Status == status {
		// 上一次送达后入账失败，这里补上
		if status == domain.StatusDelivered && !o.Settled {
			return s.settle(ctx, o)
		}
		return o, nil
	}
	if !o.Status.CanTransitTo(status) {
		return domain.Order{}, errs.ErrInvalidTransition
	}

	prev := o.Status
	// 扣减库存按订单幂等，抢占失败后重试不会重复扣减
	if status.IsFulfillment() && !o.StockApplied {
		if err = s.applyStock(ctx, o); err != nil {
			return domain.Order{}, err
		}
		o.StockApplied = true
	}
	if status == domain.StatusDelivered {
		o.DeliveredAt = time.Now().UnixMilli()
		o.Payment.Status = domain.PaymentStatusSucceeded
	}
	o.Status = status
	// 先抢占状态变更，成功之后才给卖家入账
	err = s.repo.UpdateStatus(ctx, o)
	if errors.Is(err, repository.ErrVersionConflict) {
		return domain.Order{}, errs.ErrConcurrentModified
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("更新订单状态失败: %w", err)
	}
	o.Version++

	evt := s.newEvent(event.OrderEventTypeStatusChanged, o, time.Now().UnixMilli())
	evt.PrevStatus = prev.String()
	if er := s.producer.Produce(ctx, evt); er != nil {
		s.logger.Error("发送订单状态变更事件失败",
			elog.Int64("orderID", o.ID),
			elog.FieldErr(er))
	}
	if status == domain.StatusDelivered && !o.Settled {
		return s.settle(ctx, o)
	}
	return o, nil
}

// applyStock 同一个订单只扣减一次，重复扣减视为成功
func (s *service) applyStock(ctx context.Context, o domain.Order) error {
	deductions := slice.Map(o.Items, func(idx int, src domain.Item) product.StockDeduction {
		return product.StockDeduction{
			ProductID: src.ProductID,
			Color:     src.Color,
			Qty:       src.Qty,
		}
	})
	err := s.productSvc.ApplyStock(ctx, bizKey(o.ID), deductions)
	if errors.Is(err, product.ErrStockAlreadyApplied) {
		s.logger.Warn("订单库存已经扣减过",
			elog.Int64("orderID", o.ID))
		return nil
	}
	return err
}

// settle 扣除平台抽成后给卖家入账，入账按订单幂等
func (s *service) settle(ctx context.Context, o domain.Order) (domain.Order, error) {
	err := s.shopSvc.Credit(ctx, o.ShopID, s.netAmount(o.TotalPrice), bizKey(o.ID))
	if err != nil {
		s.logger.Error("订单入账失败",
			elog.Int64("orderID", o.ID),
			elog.FieldErr(err))
		return domain.Order{}, fmt.Errorf("%w: %w", errs.ErrSettleFailed, err)
	}
	ok, err := s.repo.MarkSettled(ctx, o.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: %w", errs.ErrSettleFailed, err)
	}
	o.Settled = true
	if ok {
		o.Version++
	}
	return o, nil
}

func (s *service) netAmount(total int64) int64 {
	charge := decimal.NewFromInt(total).Mul(s.chargeRate).Round(0).IntPart()
	return total - charge
}

func (s *service) Detail(ctx context.Context, id int64, op domain.Operator) (domain.Order, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if !op.CanView(o) {
		return domain.Order{}, errs.ErrPermissionDenied
	}
	return o, nil
}

func (s *service) find(ctx context.Context, id int64) (domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, errs.ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找订单失败: %w", err)
	}
	return o, nil
}

func (s *service) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	offset, limit = normalizePage(offset, limit)
	return s.repo.ListByBuyer(ctx, buyerID, offset, limit)
}

func (s *service) ListByShop(ctx context.Context, shopID int64, offset, limit int) ([]domain.Order, int64, error) {
	offset, limit = normalizePage(offset, limit)
	return s.repo.ListByShop(ctx, shopID, offset, limit)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	offset, limit = normalizePage(offset, limit)
	return s.repo.List(ctx, offset, limit)
}

func (s *service) newEvent(typ string, o domain.Order, ctime int64) event.OrderEvent {
	return event.OrderEvent{
		Type:       typ,
		OrderID:    o.ID,
		OrderSN:    o.SN,
		BuyerID:    o.BuyerID,
		ShopID:     o.ShopID,
		TotalPrice: o.TotalPrice,
		Status:     o.Status.String(),
		Address:    event.Address(o.ShippingAddress),
		Ctime:      ctime,
	}
}

func bizKey(orderID int64) string {
	return "order:" + strconv.FormatInt(orderID, 10)
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
