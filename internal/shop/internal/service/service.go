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
	"strings"

	"github.com/ecodeclub/emall/internal/shop/internal/domain"
	"github.com/ecodeclub/emall/internal/shop/internal/errs"
	"github.com/ecodeclub/emall/internal/shop/internal/event"
	"github.com/ecodeclub/emall/internal/shop/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/shop.mock.go -package=shopmocks Service
type Service interface {
	// Register 注册后处于待激活状态，激活邮件异步发送
	Register(ctx context.Context, s domain.Shop, password string) (domain.Shop, error)
	Activate(ctx context.Context, token string) (domain.Shop, error)
	Login(ctx context.Context, email, password string) (domain.Shop, error)
	FindByID(ctx context.Context, id int64) (domain.Shop, error)
	// Profile 包含结算记录
	Profile(ctx context.Context, id int64) (domain.Shop, error)
	UpdateProfile(ctx context.Context, s domain.Shop) error
	UpdateWithdrawMethod(ctx context.Context, id int64, wm domain.WithdrawMethod) error
	DeleteWithdrawMethod(ctx context.Context, id int64) error
	// List 按注册时间倒序，同时返回总数
	List(ctx context.Context, offset, limit int) ([]domain.Shop, int64, error)
	// Delete 余额未提现完的店铺不能删除，删除成功后发送 deleted 事件
	Delete(ctx context.Context, id int64) (domain.Shop, error)

	// Credit 给卖家入账，bizKey 相同的重复调用直接返回成功
	Credit(ctx context.Context, shopID, amount int64, bizKey string) error
	// Debit 从可用余额中扣减，余额不足返回 errs.ErrInsufficientBalance
	Debit(ctx context.Context, shopID, amount int64, bizKey string) error
	AppendTransaction(ctx context.Context, shopID int64, t domain.Transaction) error
}

type service struct {
	repo     repository.ShopRepository
	producer event.ShopEventProducer
	logger   *elog.Component
}

func NewService(repo repository.ShopRepository, producer event.ShopEventProducer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Register(ctx context.Context, shop domain.Shop, password string) (domain.Shop, error) {
	shop.Email = strings.TrimSpace(strings.ToLower(shop.Email))
	if shop.Name == "" || shop.Email == "" || len(password) < 6 {
		return domain.Shop{}, errs.ErrInvalidParam
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("加密密码失败: %w", err)
	}
	shop.Status = domain.StatusPending
	shop.AvailableBalance = 0
	id, err := s.repo.Create(ctx, shop, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatedEmail) {
			return domain.Shop{}, errs.ErrEmailExists
		}
		return domain.Shop{}, fmt.Errorf("创建店铺失败: %w", err)
	}
	shop.ID = id

	token := shortuuid.New()
	if err = s.repo.SetActivationToken(ctx, token, id); err != nil {
		return domain.Shop{}, fmt.Errorf("保存激活令牌失败: %w", err)
	}
	evt := event.ShopEvent{
		Type:   event.ShopEventTypeRegistered,
		ShopID: id,
		Name:   shop.Name,
		Email:  shop.Email,
		Token:  token,
	}
	if er := s.producer.Produce(ctx, evt); er != nil {
		s.logger.Error("发送店铺注册事件失败",
			elog.Int64("shopID", id),
			elog.FieldErr(er))
	}
	return shop, nil
}

func (s *service) Activate(ctx context.Context, token string) (domain.Shop, error) {
	id, err := s.repo.ConsumeActivationToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return domain.Shop{}, errs.ErrInvalidToken
		}
		return domain.Shop{}, fmt.Errorf("读取激活令牌失败: %w", err)
	}
	if err = s.repo.Activate(ctx, id); err != nil {
		return domain.Shop{}, s.wrapNotFound(err, "激活店铺失败")
	}
	return s.FindByID(ctx, id)
}

func (s *service) Login(ctx context.Context, email, password string) (domain.Shop, error) {
	shop, hash, err := s.repo.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Shop{}, errs.ErrInvalidCredential
		}
		return domain.Shop{}, fmt.Errorf("查找店铺失败: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return domain.Shop{}, errs.ErrInvalidCredential
	}
	if shop.Status != domain.StatusActive {
		return domain.Shop{}, errs.ErrShopNotActivated
	}
	return shop, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Shop, error) {
	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Shop{}, s.wrapNotFound(err, "查找店铺失败")
	}
	return shop, nil
}

func (s *service) Profile(ctx context.Context, id int64) (domain.Shop, error) {
	shop, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.Shop{}, err
	}
	shop.Transactions, err = s.repo.FindTransactions(ctx, id)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("查找结算记录失败: %w", err)
	}
	return shop, nil
}

func (s *service) UpdateProfile(ctx context.Context, shop domain.Shop) error {
	if shop.Name == "" {
		return errs.ErrInvalidParam
	}
	return s.wrapNotFound(s.repo.UpdateProfile(ctx, shop), "更新店铺信息失败")
}

func (s *service) UpdateWithdrawMethod(ctx context.Context, id int64, wm domain.WithdrawMethod) error {
	if wm.BankName == "" || wm.BankAccountNumber == "" || wm.BankHolderName == "" {
		return errs.ErrInvalidParam
	}
	return s.wrapNotFound(s.repo.UpdateWithdrawMethod(ctx, id, wm), "更新提现账户失败")
}

func (s *service) DeleteWithdrawMethod(ctx context.Context, id int64) error {
	return s.wrapNotFound(s.repo.UpdateWithdrawMethod(ctx, id, domain.WithdrawMethod{}), "删除提现账户失败")
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Shop, int64, error) {
	shops, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("查找店铺列表失败: %w", err)
	}
	return shops, total, nil
}

func (s *service) Delete(ctx context.Context, id int64) (domain.Shop, error) {
	shop, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.Shop{}, err
	}
	err = s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrBalanceNotEmpty) {
		return domain.Shop{}, errs.ErrBalanceNotEmpty
	}
	if err != nil {
		return domain.Shop{}, s.wrapNotFound(err, "删除店铺失败")
	}
	evt := event.ShopEvent{
		Type:   event.ShopEventTypeDeleted,
		ShopID: id,
		Name:   shop.Name,
		Email:  shop.Email,
	}
	if er := s.producer.Produce(ctx, evt); er != nil {
		s.logger.Error("发送店铺删除事件失败",
			elog.Int64("shopID", id),
			elog.FieldErr(er))
	}
	return shop, nil
}

func (s *service) Credit(ctx context.Context, shopID, amount int64, bizKey string) error {
	if amount < 0 {
		return errs.ErrInvalidAmount
	}
	err := s.repo.Credit(ctx, shopID, amount, bizKey)
	if errors.Is(err, repository.ErrDuplicatedBalanceLog) {
		s.logger.Warn("重复入账，忽略",
			elog.Int64("shopID", shopID),
			elog.String("bizKey", bizKey))
		return nil
	}
	return s.wrapNotFound(err, "入账失败")
}

func (s *service) Debit(ctx context.Context, shopID, amount int64, bizKey string) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	err := s.repo.Debit(ctx, shopID, amount, bizKey)
	switch {
	case errors.Is(err, repository.ErrDuplicatedBalanceLog):
		s.logger.Warn("重复扣减，忽略",
			elog.Int64("shopID", shopID),
			elog.String("bizKey", bizKey))
		return nil
	case errors.Is(err, repository.ErrInsufficientBalance):
		return errs.ErrInsufficientBalance
	default:
		return s.wrapNotFound(err, "扣减余额失败")
	}
}

func (s *service) AppendTransaction(ctx context.Context, shopID int64, t domain.Transaction) error {
	if err := s.repo.AppendTransaction(ctx, shopID, t); err != nil {
		return fmt.Errorf("追加结算记录失败: %w", err)
	}
	return nil
}

func (s *service) wrapNotFound(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", msg, errs.ErrShopNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
