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

	"github.com/ecodeclub/emall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/emall/internal/shop"
	"github.com/ecodeclub/emall/internal/withdraw/internal/domain"
	"github.com/ecodeclub/emall/internal/withdraw/internal/errs"
	"github.com/ecodeclub/emall/internal/withdraw/internal/event"
	"github.com/ecodeclub/emall/internal/withdraw/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	withdrawSNPrefix = "WD"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/withdraw.mock.go -package=withdrawmocks Service
type Service interface {
	// Create 先扣余额再落库，落库失败时把钱退回去
	Create(ctx context.Context, shopID, amount int64) (domain.Withdraw, error)
	// Approve 只能从 pending 变成 succeeded，同时给店铺追加结算记录
	Approve(ctx context.Context, id int64) (domain.Withdraw, error)
	List(ctx context.Context, offset, limit int) ([]domain.Withdraw, int64, error)
	ListByShop(ctx context.Context, shopID int64, offset, limit int) ([]domain.Withdraw, int64, error)
}

type service struct {
	repo     repository.WithdrawRepository
	shopSvc  shop.Service
	producer event.WithdrawEventProducer
	snGen    *sequencenumber.Generator
	logger   *elog.Component
}

func NewService(repo repository.WithdrawRepository, shopSvc shop.Service, producer event.WithdrawEventProducer) Service {
	return &service{
		repo:     repo,
		shopSvc:  shopSvc,
		producer: producer,
		snGen:    sequencenumber.NewGenerator(),
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, shopID, amount int64) (domain.Withdraw, error) {
	if amount <= 0 {
		return domain.Withdraw{}, errs.ErrInvalidAmount
	}
	sp, err := s.shopSvc.FindByID(ctx, shopID)
	if err != nil {
		return domain.Withdraw{}, err
	}
	if sp.WithdrawMethod.IsZero() {
		return domain.Withdraw{}, errs.ErrNoWithdrawMethod
	}

	w := domain.Withdraw{
		SN:     s.snGen.Generate(withdrawSNPrefix, shopID),
		ShopID: shopID,
		Amount: amount,
		Status: domain.StatusPending,
	}
	// 余额不足直接返回店铺模块的错误
	if err = s.shopSvc.Debit(ctx, shopID, amount, "withdraw:"+w.SN); err != nil {
		return domain.Withdraw{}, err
	}
	created, err := s.repo.Create(ctx, w)
	if err != nil {
		s.refund(ctx, w)
		return domain.Withdraw{}, fmt.Errorf("%w: %w", errs.ErrSaveFailed, err)
	}
	s.produce(ctx, event.WithdrawEventTypeCreated, created)
	return created, nil
}

func (s *service) refund(ctx context.Context, w domain.Withdraw) {
	err := s.shopSvc.Credit(ctx, w.ShopID, w.Amount, "withdraw-refund:"+w.SN)
	if err != nil {
		// 需要人工处理
		s.logger.Error("提现申请保存失败后退款失败",
			elog.String("sn", w.SN),
			elog.Int64("shopID", w.ShopID),
			elog.Int64("amount", w.Amount),
			elog.FieldErr(err))
	}
}

func (s *service) Approve(ctx context.Context, id int64) (domain.Withdraw, error) {
	w, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Withdraw{}, errs.ErrWithdrawNotFound
	}
	if err != nil {
		return domain.Withdraw{}, fmt.Errorf("查找提现申请失败: %w", err)
	}
	if w.Status != domain.StatusPending {
		return domain.Withdraw{}, errs.ErrAlreadyApproved
	}
	now := time.Now().UnixMilli()
	// 结算记录按提现 ID 去重，先追加再改状态
	err = s.shopSvc.AppendTransaction(ctx, w.ShopID, shop.Transaction{
		WithdrawID: w.ID,
		Amount:     w.Amount,
		Status:     shop.TransactionStatusSucceeded,
		Utime:      now,
	})
	if err != nil {
		return domain.Withdraw{}, err
	}
	err = s.repo.UpdateStatus(ctx, id, domain.StatusPending, domain.StatusSucceeded)
	if errors.Is(err, repository.ErrStatusConflict) {
		return domain.Withdraw{}, errs.ErrAlreadyApproved
	}
	if err != nil {
		return domain.Withdraw{}, fmt.Errorf("审核提现申请失败: %w", err)
	}
	w.Status = domain.StatusSucceeded
	w.Utime = now
	s.produce(ctx, event.WithdrawEventTypeApproved, w)
	return w, nil
}

func (s *service) produce(ctx context.Context, typ string, w domain.Withdraw) {
	err := s.producer.Produce(ctx, event.WithdrawEvent{
		Type:       typ,
		WithdrawID: w.ID,
		SN:         w.SN,
		ShopID:     w.ShopID,
		Amount:     w.Amount,
		Ctime:      time.Now().UnixMilli(),
	})
	if err != nil {
		s.logger.Error("发送提现事件失败",
			elog.String("type", typ),
			elog.Int64("withdrawID", w.ID),
			elog.FieldErr(err))
	}
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Withdraw, int64, error) {
	offset, limit = normalizePage(offset, limit)
	return s.repo.List(ctx, offset, limit)
}

func (s *service) ListByShop(ctx context.Context, shopID int64, offset, limit int) ([]domain.Withdraw, int64, error) {
	offset, limit = normalizePage(offset, limit)
	return s.repo.ListByShop(ctx, shopID, offset, limit)
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
