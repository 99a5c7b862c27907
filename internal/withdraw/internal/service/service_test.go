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
	"strings"
	"testing"

	"github.com/ecodeclub/emall/internal/shop"
	shopmocks "github.com/ecodeclub/emall/internal/shop/mocks"
	"github.com/ecodeclub/emall/internal/withdraw/internal/domain"
	"github.com/ecodeclub/emall/internal/withdraw/internal/errs"
	"github.com/ecodeclub/emall/internal/withdraw/internal/event"
	evtmocks "github.com/ecodeclub/emall/internal/withdraw/internal/event/mocks"
	"github.com/ecodeclub/emall/internal/withdraw/internal/repository"
	withdrawmocks "github.com/ecodeclub/emall/internal/withdraw/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var bank = shop.WithdrawMethod{BankName: "GTBank", BankAccountNumber: "0123456789"}

func TestService_Create(t *testing.T) {
	testCases := []struct {
		name    string
		amount  int64
		mock    func(ctrl *gomock.Controller) (repository.WithdrawRepository, shop.Service, event.WithdrawEventProducer)
		wantErr error
		wantID  int64
	}{
		{
			name:   "创建成功",
			amount: 60,
			mock: func(ctrl *gomock.Controller) (repository.WithdrawRepository, shop.Service, event.WithdrawEventProducer) {
				repo := withdrawmocks.NewMockWithdrawRepository(ctrl)
				shopSvc := shopmocks.NewMockService(ctrl)
				producer := evtmocks.NewMockWithdrawEventProducer(ctrl)
				shopSvc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(shop.Shop{ID: 1, WithdrawMethod: bank}, nil)
				shopSvc.EXPECT().Debit(gomock.Any(), int64(1), int64(60), gomock.Any()).
					DoAndReturn(func(ctx context.Context, shopID, amount int64, bizKey string) error {
						assert.True(t, strings.HasPrefix(bizKey, "withdraw:WD"))
						return nil
					})
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, w domain.Withdraw) (domain.Withdraw, error) {
						w.ID, w.Ctime, w.Utime = 11, 1700000000000, 1700000000000
						return w, nil
					})
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.WithdrawEvent) error {
						assert.Equal(t, event.WithdrawEventTypeCreated, evt.Type)
						assert.Equal(t, int64(11), evt.WithdrawID)
						return errors.New("mock mq error")
					})
				return repo, shopSvc, producer
			},
			wantID: 11,
		},
		{
			name:   "金额非法",
			amount: 0,
			mock: func(ctrl *gomock.Controller) (repository.WithdrawRepository, shop.Service, event.WithdrawEventProducer) {
				return withdrawmocks.NewMockWithdrawRepository(ctrl), shopmocks.NewMockService(ctrl), evtmocks.NewMockWithdrawEventProducer(ctrl)
			},
			wantErr: errs.ErrInvalidAmount,
		},
		{
			name:   "没有提现账户",
			amount: 60,
			mock: func(ctrl *gomock.Controller) (repository.WithdrawRepository, shop.Service, event.WithdrawEventProducer) {
				shopSvc := shopmocks.NewMockService(ctrl)
				shopSvc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(shop.Shop{ID: 1}, nil)
				return withdrawmocks.NewMockWithdrawRepository(ctrl), shopSvc, evtmocks.NewMockWithdrawEventProducer(ctrl)
			},
			wantErr: errs.ErrNoWithdrawMethod,
		},
		{
			name:   "余额不足",
			amount: 60,
			mock: func(ctrl *gomock.Controller) (repository.WithdrawRepository, shop.Service, event.WithdrawEventProducer) {
				shopSvc := shopmocks.NewMockService(ctrl)
				shopSvc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(shop.Shop{ID: 1, WithdrawMethod: bank}, nil)
				shopSvc.EXPECT().Debit(gomock.Any(), int64(1), int64(60), gomock.Any()).Return(shop.ErrInsufficientBalance)
				return withdrawmocks.NewMockWithdrawRepository(ctrl), shopSvc, evtmocks.NewMockWithdrawEventProducer(ctrl)
			},
			wantErr: shop.ErrInsufficientBalance,
		},
		{
			name:   "保存失败退款",
			amount: 60,
			mock: func(ctrl *gomock.Controller) (repository.WithdrawRepository, shop.Service, event.WithdrawEventProducer) {
				repo := withdrawmocks.NewMockWithdrawRepository(ctrl)
				shopSvc := shopmocks.NewMockService(ctrl)
				var debitKey string
				shopSvc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(shop.Shop{ID: 1, WithdrawMethod: bank}, nil)
				shopSvc.EXPECT().Debit(gomock.Any(), int64(1), int64(60), gomock.Any()).
					DoAndReturn(func(ctx context.Context, shopID, amount int64, bizKey string) error {
						debitKey = bizKey
						return nil
					})
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.Withdraw{}, errors.New("mock db error"))
				shopSvc.EXPECT().Credit(gomock.Any(), int64(1), int64(60), gomock.Any()).
					DoAndReturn(func(ctx context.Context, shopID, amount int64, bizKey string) error {
						assert.Equal(t, "withdraw-refund:"+strings.TrimPrefix(debitKey, "withdraw:"), bizKey)
						return nil
					})
				return repo, shopSvc, evtmocks.NewMockWithdrawEventProducer(ctrl)
			},
			wantErr: errs.ErrSaveFailed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			w, err := svc.Create(context.Background(), 1, tc.amount)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantID, w.ID)
			// 使用落库时的创建时间
			assert.Equal(t, int64(1700000000000), w.Ctime)
			assert.Equal(t, domain.StatusPending, w.Status)
			assert.Equal(t, int64(60), w.Amount)
		})
	}
}

func TestService_Approve(t *testing.T) {
	pending := domain.Withdraw{ID: 11, SN: "WD1", ShopID: 1, Amount: 60, Status: domain.StatusPending}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.WithdrawRepository, shop.Service, event.WithdrawEventProducer)
		wantErr error
	}{
		{
			name: "审核通过",
			mock: func(ctrl *gomock.Controller) (repository.WithdrawRepository, shop.Service, event.WithdrawEventProducer) {
				repo := withdrawmocks.NewMockWithdrawRepository(ctrl)
				shopSvc := shopmocks.NewMockService(ctrl)
				producer := evtmocks.NewMockWithdrawEventProducer(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(pending, nil)
				shopSvc.EXPECT().AppendTransaction(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(ctx context.Context, shopID int64, tx shop.Transaction) error {
						assert.Equal(t, int64(11), tx.WithdrawID)
						assert.Equal(t, int64(60), tx.Amount)
						assert.Equal(t, shop.TransactionStatusSucceeded, tx.Status)
						return nil
					})
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(11), domain.StatusPending, domain.StatusSucceeded).Return(nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return repo, shopSvc, producer
			},
		},
		{
			name: "不存在",
			mock: func(ctrl *gomock.Controller) (repository.WithdrawRepository, shop.Service, event.WithdrawEventProducer) {
				repo := withdrawmocks.NewMockWithdrawRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(domain.Withdraw{}, gorm.ErrRecordNotFound)
				return repo, shopmocks.NewMockService(ctrl), evtmocks.NewMockWithdrawEventProducer(ctrl)
			},
			wantErr: errs.ErrWithdrawNotFound,
		},
		{
			name: "已经审核过",
			mock: func(ctrl *gomock.Controller) (repository.WithdrawRepository, shop.Service, event.WithdrawEventProducer) {
				repo := withdrawmocks.NewMockWithdrawRepository(ctrl)
				approved := pending
				approved.Status = domain.StatusSucceeded
				repo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(approved, nil)
				return repo, shopmocks.NewMockService(ctrl), evtmocks.NewMockWithdrawEventProducer(ctrl)
			},
			wantErr: errs.ErrAlreadyApproved,
		},
		{
			name: "并发审核",
			mock: func(ctrl *gomock.Controller) (repository.WithdrawRepository, shop.Service, event.WithdrawEventProducer) {
				repo := withdrawmocks.NewMockWithdrawRepository(ctrl)
				shopSvc := shopmocks.NewMockService(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(pending, nil)
				shopSvc.EXPECT().AppendTransaction(gomock.Any(), int64(1), gomock.Any()).Return(nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(11), domain.StatusPending, domain.StatusSucceeded).
					Return(repository.ErrStatusConflict)
				return repo, shopSvc, evtmocks.NewMockWithdrawEventProducer(ctrl)
			},
			wantErr: errs.ErrAlreadyApproved,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			w, err := svc.Approve(context.Background(), 11)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			require.Equal(t, domain.StatusSucceeded, w.Status)
		})
	}
}
