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

package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/emall/internal/image"
	imagemocks "github.com/ecodeclub/emall/internal/image/mocks"
	"github.com/ecodeclub/emall/internal/shop"
	testioc "github.com/ecodeclub/emall/internal/test/ioc"
	"github.com/ecodeclub/emall/internal/withdraw/internal/domain"
	"github.com/ecodeclub/emall/internal/withdraw/internal/errs"
	"github.com/ecodeclub/emall/internal/withdraw/internal/event"
	evtmocks "github.com/ecodeclub/emall/internal/withdraw/internal/event/mocks"
	"github.com/ecodeclub/emall/internal/withdraw/internal/repository"
	"github.com/ecodeclub/emall/internal/withdraw/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/withdraw/internal/service"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestWithdrawService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

type ServiceTestSuite struct {
	suite.Suite
	env
}

func (s *ServiceTestSuite) SetupSuite() {
	s.env = newEnv(s.T())
}

func (s *ServiceTestSuite) TearDownTest() {
	cleanTables(s.T(), s.db)
}

func (s *ServiceTestSuite) newService(ctrl *gomock.Controller) (service.Service, *evtmocks.MockWithdrawEventProducer) {
	p := evtmocks.NewMockWithdrawEventProducer(ctrl)
	return service.NewService(repository.NewWithdrawRepository(s.dao), s.shopSvc, p), p
}

func (s *ServiceTestSuite) TestCreate() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, p := s.newService(ctrl)
	shopID := s.createShop(t, "create@example.com", 100, true)

	p.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, evt event.WithdrawEvent) error {
		assert.Equal(t, event.WithdrawEventTypeCreated, evt.Type)
		assert.Equal(t, shopID, evt.ShopID)
		assert.Equal(t, int64(60), evt.Amount)
		return nil
	})
	w, err := svc.Create(context.Background(), shopID, 60)
	require.NoError(t, err)
	assert.NotZero(t, w.ID)
	assert.NotEmpty(t, w.SN)
	assert.Equal(t, domain.StatusPending, w.Status)
	s.assertBalance(t, shopID, 40)

	found, err := s.dao.FindByID(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Equal(t, w.SN, found.SN)
	assert.Equal(t, int64(60), found.Amount)
	assert.Equal(t, domain.StatusPending.String(), found.Status)
	assert.Equal(t, found.Ctime, w.Ctime)
	assert.Equal(t, found.Utime, w.Utime)
}

func (s *ServiceTestSuite) TestCreate_Failed() {
	testCases := []struct {
		name     string
		balance  int64
		hasBank  bool
		amount   int64
		wantErr  error
		wantLeft int64
	}{
		{
			name:     "金额为零",
			balance:  100,
			hasBank:  true,
			amount:   0,
			wantErr:  errs.ErrInvalidAmount,
			wantLeft: 100,
		},
		{
			name:     "没有提现账户",
			balance:  100,
			amount:   10,
			wantErr:  errs.ErrNoWithdrawMethod,
			wantLeft: 100,
		},
		{
			name:     "余额不足",
			balance:  100,
			hasBank:  true,
			amount:   101,
			wantErr:  shop.ErrInsufficientBalance,
			wantLeft: 100,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			defer cleanTables(t, s.db)
			svc, _ := s.newService(ctrl)
			shopID := s.createShop(t, "failed@example.com", tc.balance, tc.hasBank)

			_, err := svc.Create(context.Background(), shopID, tc.amount)
			assert.ErrorIs(t, err, tc.wantErr)
			s.assertBalance(t, shopID, tc.wantLeft)
			cnt, err := s.dao.CountByShop(context.Background(), shopID)
			require.NoError(t, err)
			assert.Zero(t, cnt)
		})
	}
}

func (s *ServiceTestSuite) TestCreate_ShopNotFound() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := s.newService(ctrl)
	_, err := svc.Create(context.Background(), 404, 10)
	assert.ErrorIs(t, err, shop.ErrShopNotFound)
}

// 两个并发请求只能有一个扣款成功
func (s *ServiceTestSuite) TestCreate_Concurrent() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, p := s.newService(ctrl)
	p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	shopID := s.createShop(t, "concurrent@example.com", 100, true)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Create(context.Background(), shopID, 60)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, shop.ErrInsufficientBalance)
	}
	assert.Equal(t, 1, succeeded)
	s.assertBalance(t, shopID, 40)
	cnt, err := s.dao.CountByShop(context.Background(), shopID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func (s *ServiceTestSuite) TestApprove() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, p := s.newService(ctrl)
	p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	shopID := s.createShop(t, "approve@example.com", 100, true)

	w, err := svc.Create(context.Background(), shopID, 30)
	require.NoError(t, err)

	approved, err := svc.Approve(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSucceeded, approved.Status)

	found, err := s.dao.FindByID(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSucceeded.String(), found.Status)

	profile, err := s.shopSvc.Profile(context.Background(), shopID)
	require.NoError(t, err)
	require.Len(t, profile.Transactions, 1)
	assert.Equal(t, w.ID, profile.Transactions[0].WithdrawID)
	assert.Equal(t, int64(30), profile.Transactions[0].Amount)
	assert.Equal(t, shop.TransactionStatusSucceeded, profile.Transactions[0].Status)
	// 审核不影响余额
	assert.Equal(t, int64(70), profile.AvailableBalance)

	_, err = svc.Approve(context.Background(), w.ID)
	assert.ErrorIs(t, err, errs.ErrAlreadyApproved)
	profile, err = s.shopSvc.Profile(context.Background(), shopID)
	require.NoError(t, err)
	assert.Len(t, profile.Transactions, 1)

	_, err = svc.Approve(context.Background(), w.ID+1000)
	assert.ErrorIs(t, err, errs.ErrWithdrawNotFound)
}

func (s *ServiceTestSuite) TestList() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, p := s.newService(ctrl)
	p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	shopA := s.createShop(t, "a@example.com", 100, true)
	shopB := s.createShop(t, "b@example.com", 100, true)

	for _, amount := range []int64{10, 20} {
		_, err := svc.Create(context.Background(), shopA, amount)
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), shopB, 30)
	require.NoError(t, err)

	ws, total, err := svc.ListByShop(context.Background(), shopA, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, ws, 2)
	// 新的在前
	assert.Equal(t, int64(20), ws[0].Amount)
	assert.Equal(t, int64(10), ws[1].Amount)

	ws, total, err = svc.List(context.Background(), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, ws, 1)
	assert.Equal(t, shopB, ws[0].ShopID)
}

func (s *ServiceTestSuite) assertBalance(t *testing.T, shopID, balance int64) {
	sp, err := s.shopSvc.FindByID(context.Background(), shopID)
	require.NoError(t, err)
	assert.Equal(t, balance, sp.AvailableBalance)
}

// env 提现依赖真实的店铺模块做扣款
type env struct {
	db      *egorm.Component
	dao     dao.WithdrawDAO
	shopSvc shop.Service
}

func newEnv(t *testing.T) env {
	db := testioc.InitDB()
	require.NoError(t, dao.InitTables(db))

	ctrl := gomock.NewController(t)
	imgSvc := imagemocks.NewMockService(ctrl)
	imgSvc.EXPECT().Placeholder().Return(image.Image{PublicID: "placeholder", URL: "https://img/placeholder.png"}).AnyTimes()

	shopModule := shop.InitModule(db, nil, testioc.InitMQ(), &image.Module{Svc: imgSvc})
	return env{
		db:      db,
		dao:     dao.NewWithdrawGORMDAO(db),
		shopSvc: shopModule.Svc,
	}
}

func (e env) createShop(t *testing.T, email string, balance int64, hasBank bool) int64 {
	now := time.Now().UnixMilli()
	res := e.db.Exec("INSERT INTO `shops` (`name`, `email`, `password`, `status`, `available_balance`, `ctime`, `utime`) VALUES (?, ?, ?, ?, ?, ?, ?)",
		"店铺-"+email, email, "hash", 2, balance, now, now)
	require.NoError(t, res.Error)
	var id int64
	require.NoError(t, e.db.Raw("SELECT `id` FROM `shops` WHERE `email` = ?", email).Scan(&id).Error)
	if hasBank {
		require.NoError(t, e.shopSvc.UpdateWithdrawMethod(context.Background(), id, shop.WithdrawMethod{
			BankName:          "GTBank",
			BankCountry:       "NG",
			BankAccountNumber: "0123456789",
			BankHolderName:    "Ada",
		}))
	}
	return id
}

func cleanTables(t *testing.T, db *egorm.Component) {
	for _, table := range []string{"withdraws", "shops", "balance_logs", "shop_transactions"} {
		require.NoError(t, db.Exec("DELETE FROM `"+table+"`").Error)
	}
}
