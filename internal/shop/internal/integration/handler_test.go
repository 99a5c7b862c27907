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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/emall/internal/image"
	imagemocks "github.com/ecodeclub/emall/internal/image/mocks"
	"github.com/ecodeclub/emall/internal/pkg/middleware"
	"github.com/ecodeclub/emall/internal/shop/internal/domain"
	evtmocks "github.com/ecodeclub/emall/internal/shop/internal/event/mocks"
	"github.com/ecodeclub/emall/internal/shop/internal/repository"
	"github.com/ecodeclub/emall/internal/shop/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/shop/internal/service"
	"github.com/ecodeclub/emall/internal/shop/internal/web"
	shopmocks "github.com/ecodeclub/emall/internal/shop/mocks"
	"github.com/ecodeclub/emall/internal/test"
	testioc "github.com/ecodeclub/emall/internal/test/ioc"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestShopHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.ShopDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewGORMShopDAO(s.db)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
}

func (s *HandlerTestSuite) TearDownTest() {
	cleanTables(s.T(), s.db)
}

func (s *HandlerTestSuite) newServer(ctrl *gomock.Controller, uid int64, role string) (*egin.Component, *imagemocks.MockService) {
	imgSvc := imagemocks.NewMockService(ctrl)
	c := shopmocks.NewMockShopCache(ctrl)
	c.EXPECT().SetActivationToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	p := evtmocks.NewMockShopEventProducer(ctrl)
	p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	svc := service.NewService(repository.NewShopRepository(s.dao, c), p)
	hdl := web.NewHandler(svc, imgSvc)
	adminHdl := web.NewAdminHandler(svc, imgSvc)

	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{middleware.ClaimRole: role},
		}))
	})
	hdl.PublicRoutes(server.Engine)
	hdl.PrivateRoutes(server.Engine)
	adminHdl.PrivateRoutes(server.Engine)
	return server, imgSvc
}

func (s *HandlerTestSuite) TestRegister() {
	testCases := []struct {
		name     string
		before   func(t *testing.T, imgSvc *imagemocks.MockService)
		req      web.RegisterReq
		wantCode int
		wantBiz  int
		after    func(t *testing.T, resp test.Result[web.Shop])
	}{
		{
			name: "注册成功",
			before: func(t *testing.T, imgSvc *imagemocks.MockService) {
				imgSvc.EXPECT().UploadAll(gomock.Any(), []string{"data:image/png;base64,AAAA"}, "avatars").
					Return([]image.Image{{PublicID: "avatars/1", URL: "https://img/1.png"}})
			},
			req: web.RegisterReq{
				Name:     "Sunny",
				Email:    "sunny@example.com",
				Password: "123456",
				Avatar:   "data:image/png;base64,AAAA",
			},
			wantCode: http.StatusCreated,
			after: func(t *testing.T, resp test.Result[web.Shop]) {
				assert.NotZero(t, resp.Data.ID)
				assert.Equal(t, "https://img/1.png", resp.Data.AvatarURL)
				assert.False(t, resp.Data.Activated)
				shop, err := s.dao.FindByEmail(context.Background(), "sunny@example.com")
				require.NoError(t, err)
				assert.Equal(t, domain.StatusPending.ToUint8(), shop.Status)
				assert.NotEqual(t, "123456", shop.Password)
			},
		},
		{
			name: "邮箱已注册",
			before: func(t *testing.T, imgSvc *imagemocks.MockService) {
				_, err := s.dao.Insert(context.Background(), dao.Shop{Name: "old", Email: "old@example.com", Password: "x"})
				require.NoError(t, err)
			},
			req: web.RegisterReq{
				Name:     "old",
				Email:    "old@example.com",
				Password: "123456",
			},
			wantCode: http.StatusBadRequest,
			wantBiz:  503003,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server, imgSvc := s.newServer(ctrl, 0, "")
			tc.before(t, imgSvc)

			req, err := http.NewRequest(http.MethodPost, "/shop/register", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.Shop]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			resp := recorder.MustScan()
			assert.Equal(t, tc.wantBiz, resp.Code)
			if tc.after != nil {
				tc.after(t, resp)
			}
			cleanTables(t, s.db)
		})
	}
}

func (s *HandlerTestSuite) TestLogin_NotActivated() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server, _ := s.newServer(ctrl, 0, "")

	req, err := http.NewRequest(http.MethodPost, "/shop/register", iox.NewJSONReader(web.RegisterReq{
		Name:     "pending",
		Email:    "pending@example.com",
		Password: "123456",
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Shop]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusCreated, recorder.Code)

	req, err = http.NewRequest(http.MethodPost, "/shop/login", iox.NewJSONReader(web.LoginReq{
		Email:    "pending@example.com",
		Password: "123456",
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	loginRecorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(loginRecorder, req)
	require.Equal(t, http.StatusForbidden, loginRecorder.Code)
	assert.Equal(t, 503006, loginRecorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestWithdrawMethod() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	id, err := s.dao.Insert(context.Background(), dao.Shop{
		Name:             "seller",
		Email:            "seller@example.com",
		Password:         "x",
		Status:           domain.StatusActive.ToUint8(),
		AvailableBalance: 1000,
	})
	require.NoError(t, err)
	server, _ := s.newServer(ctrl, id, middleware.RoleSeller)

	wm := web.WithdrawMethod{
		BankName:          "ABC",
		BankCountry:       "CN",
		BankAccountNumber: "6222",
		BankHolderName:    "Sunny",
	}
	req, err := http.NewRequest(http.MethodPost, "/shop/withdraw-method/update", iox.NewJSONReader(wm))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	req, err = http.NewRequest(http.MethodPost, "/shop/profile", iox.NewJSONReader(nil))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	profileRecorder := test.NewJSONResponseRecorder[web.Shop]()
	server.ServeHTTP(profileRecorder, req)
	require.Equal(t, http.StatusOK, profileRecorder.Code)
	profile := profileRecorder.MustScan().Data
	assert.Equal(t, int64(1000), profile.AvailableBalance)
	require.NotNil(t, profile.WithdrawMethod)
	assert.Equal(t, wm, *profile.WithdrawMethod)
}

func (s *HandlerTestSuite) TestPrivateRoutes_RoleChecked() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server, _ := s.newServer(ctrl, 1, middleware.RoleUser)

	req, err := http.NewRequest(http.MethodPost, "/shop/profile", iox.NewJSONReader(nil))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func (s *HandlerTestSuite) TestInfo() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	id, err := s.dao.Insert(context.Background(), dao.Shop{
		Name:             "public",
		Email:            "public@example.com",
		Password:         "x",
		Description:      "好店",
		Status:           domain.StatusActive.ToUint8(),
		AvailableBalance: 1000,
	})
	require.NoError(t, err)
	server, _ := s.newServer(ctrl, 0, "")

	req, err := http.NewRequest(http.MethodPost, "/shop/info", iox.NewJSONReader(web.IDReq{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[map[string]any]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	info := recorder.MustScan().Data
	assert.Equal(t, "public", info["name"])
	assert.Equal(t, "好店", info["description"])
	assert.NotContains(t, info, "availableBalance")
	assert.NotContains(t, info, "email")
	assert.NotContains(t, info, "withdrawMethod")

	req, err = http.NewRequest(http.MethodPost, "/shop/info", iox.NewJSONReader(web.IDReq{ID: id + 100}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[map[string]any]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, 503007, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestLogout() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	var destroyed bool
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid:  1,
			Data: map[string]string{middleware.ClaimRole: middleware.RoleSeller},
		}))
		ctx.Next()
		_, ok := ctx.Get(session.CtxSessionKey)
		destroyed = !ok
	})
	web.NewHandler(nil, imagemocks.NewMockService(ctrl)).PrivateRoutes(server.Engine)

	req, err := http.NewRequest(http.MethodPost, "/shop/logout", iox.NewJSONReader(nil))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, destroyed)
}

func (s *HandlerTestSuite) TestAdminList() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := s.dao.Insert(context.Background(), dao.Shop{Name: email, Email: email, Password: "x"})
		require.NoError(t, err)
	}
	server, _ := s.newServer(ctrl, 1, middleware.RoleAdmin)

	req, err := http.NewRequest(http.MethodPost, "/shop/list", iox.NewJSONReader(web.Page{Offset: 0, Limit: 2}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ShopList]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	list := recorder.MustScan().Data
	assert.Equal(t, int64(3), list.Total)
	require.Len(t, list.Shops, 2)
	assert.Equal(t, "c@example.com", list.Shops[0].Email)

	seller, _ := s.newServer(ctrl, 1, middleware.RoleSeller)
	req, err = http.NewRequest(http.MethodPost, "/shop/list", iox.NewJSONReader(web.Page{Limit: 2}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.ShopList]()
	seller.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func (s *HandlerTestSuite) TestAdminDelete() {
	testCases := []struct {
		name     string
		before   func(t *testing.T, imgSvc *imagemocks.MockService) int64
		wantCode int
		wantBiz  int
	}{
		{
			name: "删除成功并清理头像",
			before: func(t *testing.T, imgSvc *imagemocks.MockService) int64 {
				id, err := s.dao.Insert(context.Background(), dao.Shop{
					Name:     "gone",
					Email:    "gone@example.com",
					Password: "x",
					Avatar:   sqlx.JsonColumn[dao.Image]{Val: dao.Image{PublicID: "avatars/9", URL: "https://img/9.png"}, Valid: true},
				})
				require.NoError(t, err)
				imgSvc.EXPECT().DeleteAll(gomock.Any(), []image.Image{{PublicID: "avatars/9", URL: "https://img/9.png"}})
				return id
			},
			wantCode: http.StatusOK,
		},
		{
			name: "余额未提现",
			before: func(t *testing.T, imgSvc *imagemocks.MockService) int64 {
				id, err := s.dao.Insert(context.Background(), dao.Shop{
					Name:             "rich",
					Email:            "rich@example.com",
					Password:         "x",
					AvailableBalance: 1,
				})
				require.NoError(t, err)
				return id
			},
			wantCode: http.StatusBadRequest,
			wantBiz:  503010,
		},
		{
			name: "店铺不存在",
			before: func(t *testing.T, imgSvc *imagemocks.MockService) int64 {
				return 404
			},
			wantCode: http.StatusNotFound,
			wantBiz:  503007,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server, imgSvc := s.newServer(ctrl, 1, middleware.RoleAdmin)
			id := tc.before(t, imgSvc)

			req, err := http.NewRequest(http.MethodPost, "/shop/delete", iox.NewJSONReader(web.IDReq{ID: id}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantBiz, recorder.MustScan().Code)
			cleanTables(t, s.db)
		})
	}
}
