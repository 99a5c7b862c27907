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
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/emall/internal/pkg/middleware"
	"github.com/ecodeclub/emall/internal/test"
	evtmocks "github.com/ecodeclub/emall/internal/withdraw/internal/event/mocks"
	"github.com/ecodeclub/emall/internal/withdraw/internal/repository"
	"github.com/ecodeclub/emall/internal/withdraw/internal/service"
	"github.com/ecodeclub/emall/internal/withdraw/internal/web"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestWithdrawHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	env
}

func (s *HandlerTestSuite) SetupSuite() {
	s.env = newEnv(s.T())
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
}

func (s *HandlerTestSuite) TearDownTest() {
	cleanTables(s.T(), s.db)
}

func (s *HandlerTestSuite) newServer(ctrl *gomock.Controller, uid int64, role string) (*egin.Component, *egin.Component) {
	p := evtmocks.NewMockWithdrawEventProducer(ctrl)
	p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	svc := service.NewService(repository.NewWithdrawRepository(s.dao), s.shopSvc, p)

	sess := func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{middleware.ClaimRole: role},
		}))
	}
	server := egin.Load("server").Build()
	server.Use(sess)
	web.NewHandler(svc).PrivateRoutes(server.Engine)

	admin := egin.Load("server").Build()
	admin.Use(sess)
	web.NewAdminHandler(svc).PrivateRoutes(admin.Engine)
	return server, admin
}

func (s *HandlerTestSuite) TestCreateAndApprove() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	shopID := s.createShop(t, "handler@example.com", 100, true)
	server, _ := s.newServer(ctrl, shopID, middleware.RoleSeller)

	req, err := http.NewRequest(http.MethodPost, "/shop/withdraw/create", iox.NewJSONReader(web.CreateReq{Amount: 60}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	created := test.NewJSONResponseRecorder[web.Withdraw]()
	server.ServeHTTP(created, req)
	require.Equal(t, http.StatusCreated, created.Code)
	w := created.MustScan().Data
	assert.Equal(t, "pending", w.Status)
	assert.Equal(t, shopID, w.ShopID)

	req, err = http.NewRequest(http.MethodPost, "/shop/withdraw/create", iox.NewJSONReader(web.CreateReq{Amount: 60}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	insufficient := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(insufficient, req)
	require.Equal(t, http.StatusBadRequest, insufficient.Code)
	assert.Equal(t, 503008, insufficient.MustScan().Code)

	req, err = http.NewRequest(http.MethodPost, "/shop/withdraw/list", iox.NewJSONReader(web.Page{Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	list := test.NewJSONResponseRecorder[web.WithdrawList]()
	server.ServeHTTP(list, req)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Equal(t, int64(1), list.MustScan().Data.Total)

	_, admin := s.newServer(ctrl, 1, middleware.RoleAdmin)
	req, err = http.NewRequest(http.MethodPost, "/withdraw/approve", iox.NewJSONReader(web.IDReq{ID: w.ID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	approved := test.NewJSONResponseRecorder[web.Withdraw]()
	admin.ServeHTTP(approved, req)
	require.Equal(t, http.StatusCreated, approved.Code)
	assert.Equal(t, "succeeded", approved.MustScan().Data.Status)

	req, err = http.NewRequest(http.MethodPost, "/withdraw/approve", iox.NewJSONReader(web.IDReq{ID: w.ID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	again := test.NewJSONResponseRecorder[any]()
	admin.ServeHTTP(again, req)
	require.Equal(t, http.StatusBadRequest, again.Code)
	assert.Equal(t, 404005, again.MustScan().Code)
}

func (s *HandlerTestSuite) TestCreate_Failed() {
	testCases := []struct {
		name     string
		role     string
		hasBank  bool
		amount   int64
		wantCode int
		wantBiz  int
	}{
		{
			name:     "普通用户不能提现",
			role:     middleware.RoleUser,
			hasBank:  true,
			amount:   10,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "金额非法",
			role:     middleware.RoleSeller,
			hasBank:  true,
			amount:   -1,
			wantCode: http.StatusBadRequest,
			wantBiz:  404002,
		},
		{
			name:     "没有提现账户",
			role:     middleware.RoleSeller,
			amount:   10,
			wantCode: http.StatusBadRequest,
			wantBiz:  404003,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			defer cleanTables(t, s.db)
			shopID := s.createShop(t, "failed@example.com", 100, tc.hasBank)
			server, _ := s.newServer(ctrl, shopID, tc.role)

			req, err := http.NewRequest(http.MethodPost, "/shop/withdraw/create", iox.NewJSONReader(web.CreateReq{Amount: tc.amount}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantBiz != 0 {
				assert.Equal(t, tc.wantBiz, recorder.MustScan().Code)
			}
			s.assertBalance(t, shopID, 100)
		})
	}
}

func (s *HandlerTestSuite) assertBalance(t *testing.T, shopID, balance int64) {
	sp, err := s.shopSvc.FindByID(context.Background(), shopID)
	require.NoError(t, err)
	assert.Equal(t, balance, sp.AvailableBalance)
}
