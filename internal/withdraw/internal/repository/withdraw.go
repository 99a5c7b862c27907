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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/withdraw/internal/domain"
	"github.com/ecodeclub/emall/internal/withdraw/internal/repository/dao"
)

var ErrStatusConflict = dao.ErrStatusConflict

//go:generate mockgen -source=./withdraw.go -destination=../../mocks/repository.mock.go -package=withdrawmocks WithdrawRepository
type WithdrawRepository interface {
	// Create 返回带有 ID 和创建时间的提现申请
	Create(ctx context.Context, w domain.Withdraw) (domain.Withdraw, error)
	FindByID(ctx context.Context, id int64) (domain.Withdraw, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error
	List(ctx context.Context, offset, limit int) ([]domain.Withdraw, int64, error)
	ListByShop(ctx context.Context, shopID int64, offset, limit int) ([]domain.Withdraw, int64, error)
}

type withdrawRepository struct {
	dao dao.WithdrawDAO
}

func NewWithdrawRepository(d dao.WithdrawDAO) WithdrawRepository {
	return &withdrawRepository{dao: d}
}

func (r *withdrawRepository) Create(ctx context.Context, w domain.Withdraw) (domain.Withdraw, error) {
	entity, err := r.dao.Insert(ctx, dao.Withdraw{
		SN:     w.SN,
		ShopId: w.ShopID,
		Amount: w.Amount,
		Status: w.Status.String(),
	})
	if err != nil {
		return domain.Withdraw{}, err
	}
	return r.toDomain(entity), nil
}

func (r *withdrawRepository) FindByID(ctx context.Context, id int64) (domain.Withdraw, error) {
	w, err := r.dao.FindByID(ctx, id)
	return r.toDomain(w), err
}

func (r *withdrawRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, from.String(), to.String())
}

func (r *withdrawRepository) List(ctx context.Context, offset, limit int) ([]domain.Withdraw, int64, error) {
	ws, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.dao.Count(ctx)
	return r.toDomains(ws), total, err
}

func (r *withdrawRepository) ListByShop(ctx context.Context, shopID int64, offset, limit int) ([]domain.Withdraw, int64, error) {
	ws, err := r.dao.ListByShop(ctx, shopID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.dao.CountByShop(ctx, shopID)
	return r.toDomains(ws), total, err
}

func (r *withdrawRepository) toDomains(ws []dao.Withdraw) []domain.Withdraw {
	return slice.Map(ws, func(idx int, src dao.Withdraw) domain.Withdraw {
		return r.toDomain(src)
	})
}

func (r *withdrawRepository) toDomain(w dao.Withdraw) domain.Withdraw {
	return domain.Withdraw{
		ID:     w.Id,
		SN:     w.SN,
		ShopID: w.ShopId,
		Amount: w.Amount,
		Status: domain.Status(w.Status),
		Ctime:  w.Ctime,
		Utime:  w.Utime,
	}
}
