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
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/emall/internal/image"
	imagemocks "github.com/ecodeclub/emall/internal/image/mocks"
	"github.com/ecodeclub/emall/internal/pkg/middleware"
	"github.com/ecodeclub/emall/internal/test"
	testioc "github.com/ecodeclub/emall/internal/test/ioc"
	"github.com/ecodeclub/emall/internal/user/internal/domain"
	evtmocks "github.com/ecodeclub/emall/internal/user/internal/event/mocks"
	"github.com/ecodeclub/emall/internal/user/internal/repository"
	"github.com/ecodeclub/emall/internal/user/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/user/internal/service"
	"github.com/ecodeclub/emall/internal/user/internal/web"
	usermocks "github.com/ecodeclub/emall/internal/user/mocks"
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

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.UserDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewGORMUserDAO(s.db)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
}

func (s *HandlerTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("DELETE FROM `users`").Error)
}

func (s *HandlerTestSuite) newService(ctrl *gomock.Controller) service.UserService {
	c := usermocks.NewMockUserCache(ctrl)
	c.EXPECT().Get(gomock.Any(), gomock.Any()).Return(domain.User{}, errors.New("key not found")).AnyTimes()
	c.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	c.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	p := evtmocks.NewMockUserEventProducer(ctrl)
	p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return service.NewUserService(repository.NewCachedUserRepository(s.dao, c), p, service.Admins{adminEmail})
}

// newServer uid 为 0 时不注入登录态
func (s *HandlerTestSuite) newServer(svc service.UserService, imgSvc image.Service, uid int64, role string) (*egin.Component, *egin.Component) {
	sess := func(ctx *gin.Context) {
		if uid == 0 {
			return
		}
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{middleware.ClaimRole: role},
		}))
	}
	server := egin.Load("server").Build()
	server.Use(sess)
	hdl := web.NewHandler(svc, imgSvc)
	hdl.PublicRoutes(server.Engine)
	hdl.PrivateRoutes(server.Engine)

	admin := egin.Load("server").Build()
	admin.Use(sess)
	web.NewAdminHandler(svc).PrivateRoutes(admin.Engine)
	return server, admin
}

func (s *HandlerTestSuite) TestRegisterAndLogin() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	imgSvc := imagemocks.NewMockService(ctrl)
	imgSvc.EXPECT().UploadAll(gomock.Any(), []string{"https://img/raw.png"}, "avatars").
		Return([]image.Image{{PublicID: "avatars/ada", URL: "https://img/ada.png"}})
	server, _ := s.newServer(s.newService(ctrl), imgSvc, 0, "")

	req, err := http.NewRequest(http.MethodPost, "/user/register", iox.NewJSONReader(web.RegisterReq{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "123456",
		Avatar:   "https://img/raw.png",
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	created := test.NewJSONResponseRecorder[web.Profile]()
	server.ServeHTTP(created, req)
	require.Equal(t, http.StatusCreated, created.Code)
	profile := created.MustScan().Data
	assert.Equal(t, "https://img/ada.png", profile.Avatar)
	assert.Equal(t, "user", profile.Role)

	req, err = http.NewRequest(http.MethodPost, "/user/register", iox.NewJSONReader(web.RegisterReq{
		Name: "Ada", Email: "ada@example.com", Password: "123456",
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	dup := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(dup, req)
	require.Equal(t, http.StatusBadRequest, dup.Code)
	assert.Equal(t, 406003, dup.MustScan().Code)

	req, err = http.NewRequest(http.MethodPost, "/user/login", iox.NewJSONReader(web.LoginReq{
		Email: "ada@example.com", Password: "123456",
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	logged := test.NewJSONResponseRecorder[web.Profile]()
	server.ServeHTTP(logged, req)
	require.Equal(t, http.StatusOK, logged.Code)
	assert.Equal(t, profile.ID, logged.MustScan().Data.ID)

	req, err = http.NewRequest(http.MethodPost, "/user/login", iox.NewJSONReader(web.LoginReq{
		Email: "ada@example.com", Password: "wrong-password",
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	wrong := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(wrong, req)
	require.Equal(t, http.StatusBadRequest, wrong.Code)
	assert.Equal(t, 406004, wrong.MustScan().Code)
}

func (s *HandlerTestSuite) TestProfile() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := s.newService(ctrl)
	u, err := svc.Register(context.Background(), domain.User{Name: "Ada", Email: "ada@example.com"}, "123456")
	require.NoError(t, err)

	imgSvc := imagemocks.NewMockService(ctrl)
	server, _ := s.newServer(svc, imgSvc, u.ID, middleware.RoleUser)

	req, err := http.NewRequest(http.MethodPost, "/user/profile/update", iox.NewJSONReader(web.UpdateProfileReq{
		Name: "Ada L",
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	updated := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(updated, req)
	require.Equal(t, http.StatusOK, updated.Code)

	req, err = http.NewRequest(http.MethodPost, "/user/address/save", iox.NewJSONReader(web.Address{
		Country: "NG", City: "Lagos", Address1: "1 Marina", AddressType: "home",
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	saved := test.NewJSONResponseRecorder[web.Profile]()
	server.ServeHTTP(saved, req)
	require.Equal(t, http.StatusOK, saved.Code)
	require.Len(t, saved.MustScan().Data.Addresses, 1)

	req, err = http.NewRequest(http.MethodPost, "/user/address/save", iox.NewJSONReader(web.Address{
		Country: "NG", City: "Abuja", Address1: "2 Wuse", AddressType: "home",
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	dup := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(dup, req)
	require.Equal(t, http.StatusBadRequest, dup.Code)
	assert.Equal(t, 406008, dup.MustScan().Code)

	req, err = http.NewRequest(http.MethodPost, "/user/profile", nil)
	require.NoError(t, err)
	profile := test.NewJSONResponseRecorder[web.Profile]()
	server.ServeHTTP(profile, req)
	require.Equal(t, http.StatusOK, profile.Code)
	res := profile.MustScan().Data
	assert.Equal(t, "Ada L", res.Name)
	require.Len(t, res.Addresses, 1)
	assert.Equal(t, "Lagos", res.Addresses[0].City)
	addrID := res.Addresses[0].ID

	req, err = http.NewRequest(http.MethodPost, "/user/address/delete", iox.NewJSONReader(web.AddressIDReq{ID: addrID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	deleted := test.NewJSONResponseRecorder[web.Profile]()
	server.ServeHTTP(deleted, req)
	require.Equal(t, http.StatusOK, deleted.Code)
	assert.Empty(t, deleted.MustScan().Data.Addresses)

	// 卖家不能访问用户接口
	seller, _ := s.newServer(svc, imgSvc, u.ID, middleware.RoleSeller)
	req, err = http.NewRequest(http.MethodPost, "/user/profile", nil)
	require.NoError(t, err)
	forbidden := test.NewJSONResponseRecorder[any]()
	seller.ServeHTTP(forbidden, req)
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
}

func (s *HandlerTestSuite) TestUpdatePassword() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := s.newService(ctrl)
	u, err := svc.Register(context.Background(), domain.User{Name: "Ada", Email: "ada@example.com"}, "123456")
	require.NoError(t, err)
	server, _ := s.newServer(svc, imagemocks.NewMockService(ctrl), u.ID, middleware.RoleUser)

	testCases := []struct {
		name     string
		req      web.UpdatePasswordReq
		wantCode int
		wantBiz  int
	}{
		{
			name:     "两次密码不一致",
			req:      web.UpdatePasswordReq{OldPassword: "123456", NewPassword: "abcdef", ConfirmPassword: "abcdeg"},
			wantCode: http.StatusBadRequest,
			wantBiz:  406002,
		},
		{
			name:     "旧密码错误",
			req:      web.UpdatePasswordReq{OldPassword: "654321", NewPassword: "abcdef", ConfirmPassword: "abcdef"},
			wantCode: http.StatusBadRequest,
			wantBiz:  406006,
		},
		{
			name:     "修改成功",
			req:      web.UpdatePasswordReq{OldPassword: "123456", NewPassword: "abcdef", ConfirmPassword: "abcdef"},
			wantCode: http.StatusOK,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/user/password/update", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantBiz, recorder.MustScan().Code)
		})
	}
	_, err = svc.Login(context.Background(), "ada@example.com", "abcdef")
	require.NoError(t, err)
}

func (s *HandlerTestSuite) TestLogout() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	loggedIn := true
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid:  7,
			Data: map[string]string{middleware.ClaimRole: middleware.RoleUser},
		}))
		ctx.Next()
		_, loggedIn = ctx.Get(session.CtxSessionKey)
	})
	web.NewHandler(s.newService(ctrl), imagemocks.NewMockService(ctrl)).PrivateRoutes(server.Engine)

	req, err := http.NewRequest(http.MethodPost, "/user/logout", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.MustScan().Msg)
	assert.False(t, loggedIn)
}

func (s *HandlerTestSuite) TestAdminList() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := s.newService(ctrl)
	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := svc.Register(context.Background(), domain.User{Name: email, Email: email}, "123456")
		require.NoError(t, err)
	}

	testCases := []struct {
		name     string
		role     string
		wantCode int
		wantLen  int
	}{
		{name: "管理员", role: middleware.RoleAdmin, wantCode: http.StatusOK, wantLen: 2},
		{name: "普通用户", role: middleware.RoleUser, wantCode: http.StatusForbidden},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, admin := s.newServer(svc, imagemocks.NewMockService(ctrl), 1, tc.role)
			req, err := http.NewRequest(http.MethodPost, "/user/list", iox.NewJSONReader(web.Page{Limit: 10}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.ProfileList]()
			admin.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			res := recorder.MustScan().Data
			assert.Equal(t, int64(2), res.Total)
			assert.Len(t, res.Users, tc.wantLen)
		})
	}
}
