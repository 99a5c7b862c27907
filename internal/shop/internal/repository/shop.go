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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/emall/internal/image"
	"github.com/ecodeclub/emall/internal/shop/internal/domain"
	"github.com/ecodeclub/emall/internal/shop/internal/repository/cache"
	"github.com/ecodeclub/emall/internal/shop/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDuplicatedEmail      = dao.ErrDuplicatedEmail
	ErrDuplicatedBalanceLog = dao.ErrDuplicatedBalanceLog
	ErrInsufficientBalance  = dao.ErrInsufficientBalance
	ErrBalanceNotEmpty      = dao.ErrBalanceNotEmpty
	ErrKeyNotFound          = cache.ErrKeyNotFound
)

type ShopRepository interface {
	Create(ctx context.Context, s domain.Shop, hashedPassword string) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Shop, error)
	// FindByEmail 同时返回加密后的密码
	FindByEmail(ctx context.Context, email string) (domain.Shop, string, error)
	FindTransactions(ctx context.Context, shopID int64) ([]domain.Transaction, error)
	Activate(ctx context.Context, id int64) error
	UpdateProfile(ctx context.Context, s domain.Shop) error
	UpdateWithdrawMethod(ctx context.Context, id int64, wm domain.WithdrawMethod) error
	List(ctx context.Context, offset, limit int) ([]domain.Shop, int64, error)
	Delete(ctx context.Context, id int64) error

	Credit(ctx context.Context, id, amount int64, bizKey string) error
	Debit(ctx context.Context, id, amount int64, bizKey string) error
	AppendTransaction(ctx context.Context, shopID int64, t domain.Transaction) error

	SetActivationToken(ctx context.Context, token string, shopID int64) error
	ConsumeActivationToken(ctx context.Context, token string) (int64, error)
}

type shopRepository struct {
	dao   dao.ShopDAO
	cache cache.ShopCache
}

func NewShopRepository(d dao.ShopDAO, c cache.ShopCache) ShopRepository {
	return &shopRepository{dao: d, cache: c}
}

func (r *shopRepository) Create(ctx context.Context, s domain.Shop, hashedPassword string) (int64, error) {
	entity := r.toEntity(s)
	entity.Password = hashedPassword
	return r.dao.Insert(ctx, entity)
}

func (r *shopRepository) FindByID(ctx context.Context, id int64) (domain.Shop, error) {
	s, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Shop{}, err
	}
	return r.toDomain(s), nil
}

func (r *shopRepository) FindByEmail(ctx context.Context, email string) (domain.Shop, string, error) {
	s, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Shop{}, "", err
	}
	return r.toDomain(s), s.Password, nil
}

func (r *shopRepository) FindTransactions(ctx context.Context, shopID int64) ([]domain.Transaction, error) {
	ts, err := r.dao.FindTransactions(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return slice.Map(ts, func(idx int, src dao.Transaction) domain.Transaction {
		return domain.Transaction{
			ID:         src.Id,
			WithdrawID: src.WithdrawId,
			Amount:     src.Amount,
			Status:     src.Status,
			Utime:      src.Utime,
		}
	}), nil
}

func (r *shopRepository) Activate(ctx context.Context, id int64) error {
	return r.dao.UpdateStatus(ctx, id, domain.StatusActive.ToUint8())
}

func (r *shopRepository) UpdateProfile(ctx context.Context, s domain.Shop) error {
	return r.dao.UpdateProfile(ctx, r.toEntity(s))
}

func (r *shopRepository) UpdateWithdrawMethod(ctx context.Context, id int64, wm domain.WithdrawMethod) error {
	return r.dao.UpdateWithdrawMethod(ctx, id, r.toWithdrawMethodColumn(wm))
}

func (r *shopRepository) List(ctx context.Context, offset, limit int) ([]domain.Shop, int64, error) {
	var (
		eg    errgroup.Group
		ss    []dao.Shop
		total int64
	)
	eg.Go(func() error {
		var err error
		ss, err = r.dao.List(ctx, offset, limit)
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
	return slice.Map(ss, func(idx int, src dao.Shop) domain.Shop {
		return r.toDomain(src)
	}), total, nil
}

func (r *shopRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *shopRepository) Credit(ctx context.Context, id, amount int64, bizKey string) error {
	return r.dao.Credit(ctx, id, amount, bizKey)
}

func (r *shopRepository) Debit(ctx context.Context, id, amount int64, bizKey string) error {
	return r.dao.Debit(ctx, id, amount, bizKey)
}

func (r *shopRepository) AppendTransaction(ctx context.Context, shopID int64, t domain.Transaction) error {
	return r.dao.AppendTransaction(ctx, dao.Transaction{
		ShopId:     shopID,
		WithdrawId: t.WithdrawID,
		Amount:     t.Amount,
		Status:     t.Status,
		Utime:      t.Utime,
	})
}

func (r *shopRepository) SetActivationToken(ctx context.Context, token string, shopID int64) error {
	return r.cache.SetActivationToken(ctx, token, shopID)
}

// ConsumeActivationToken 激活链接只能使用一次
func (r *shopRepository) ConsumeActivationToken(ctx context.Context, token string) (int64, error) {
	id, err := r.cache.GetActivationToken(ctx, token)
	if err != nil {
		return 0, err
	}
	return id, r.cache.DelActivationToken(ctx, token)
}

func (r *shopRepository) toWithdrawMethodColumn(wm domain.WithdrawMethod) sqlx.JsonColumn[dao.WithdrawMethod] {
	if wm.IsZero() {
		return sqlx.JsonColumn[dao.WithdrawMethod]{}
	}
	return sqlx.JsonColumn[dao.WithdrawMethod]{
		Valid: true,
		Val: dao.WithdrawMethod{
			BankName:          wm.BankName,
			BankCountry:       wm.BankCountry,
			BankSwiftCode:     wm.BankSwiftCode,
			BankAccountNumber: wm.BankAccountNumber,
			BankHolderName:    wm.BankHolderName,
			BankAddress:       wm.BankAddress,
		},
	}
}

func (r *shopRepository) toEntity(s domain.Shop) dao.Shop {
	return dao.Shop{
		Id:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		PhoneNumber: s.PhoneNumber,
		Address:     s.Address,
		ZipCode:     s.ZipCode,
		Description: s.Description,
		Avatar: sqlx.JsonColumn[dao.Image]{
			Valid: !s.Avatar.IsZero(),
			Val:   dao.Image{PublicID: s.Avatar.PublicID, URL: s.Avatar.URL},
		},
		Status:           s.Status.ToUint8(),
		AvailableBalance: s.AvailableBalance,
		WithdrawMethod:   r.toWithdrawMethodColumn(s.WithdrawMethod),
	}
}

func (r *shopRepository) toDomain(s dao.Shop) domain.Shop {
	wm := s.WithdrawMethod.Val
	return domain.Shop{
		ID:          s.Id,
		Name:        s.Name,
		Email:       s.Email,
		PhoneNumber: s.PhoneNumber,
		Address:     s.Address,
		ZipCode:     s.ZipCode,
		Description: s.Description,
		Avatar: image.Image{
			PublicID: s.Avatar.Val.PublicID,
			URL:      s.Avatar.Val.URL,
		},
		Status:           domain.Status(s.Status),
		AvailableBalance: s.AvailableBalance,
		WithdrawMethod: domain.WithdrawMethod{
			BankName:          wm.BankName,
			BankCountry:       wm.BankCountry,
			BankSwiftCode:     wm.BankSwiftCode,
			BankAccountNumber: wm.BankAccountNumber,
			BankHolderName:    wm.BankHolderName,
			BankAddress:       wm.BankAddress,
		},
		Ctime: s.Ctime,
		Utime: s.Utime,
	}
}
