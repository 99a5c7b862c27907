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
	"github.com/ecodeclub/emall/internal/image"
	imagemocks "github.com/ecodeclub/emall/internal/image/mocks"
	"github.com/ecodeclub/emall/internal/pkg/middleware"
	evtmocks "github.com/ecodeclub/emall/internal/product/internal/event/mocks"
	"github.com/ecodeclub/emall/internal/product/internal/repository"
	"github.com/ecodeclub/emall/internal/product/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/product/internal/service"
	"github.com/ecodeclub/emall/internal/product/internal/web"
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

func TestProductHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.ProductDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewProductGORMDAO(s.db)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
}

func (s *HandlerTestSuite) TearDownTest() {
	cleanTables(s.T(), s.db)
}

func (s *HandlerTestSuite) newServer(ctrl *gomock.Controller, shopID int64) (*egin.Component, *imagemocks.MockService) {
	imgSvc := imagemocks.NewMockService(ctrl)
	producer := evtmocks.NewMockProductEventProducer(ctrl)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	svc := service.NewService(repository.NewProductRepository(s.dao, nil), imgSvc, producer)
	hdl := web.NewHandler(svc, imgSvc)

	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid:  shopID,
			Data: map[string]string{middleware.ClaimRole: middleware.RoleSeller},
		}))
	})
	hdl.PublicRoutes(server.Engine)
	hdl.PrivateRoutes(server.Engine)
	return server, imgSvc
}

func (s *HandlerTestSuite) TestSaveAndDetail() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server, imgSvc := s.newServer(ctrl, testShopID)

	redImg := image.Image{PublicID: "products/red", URL: "https://img/red.jpg"}
	imgSvc.EXPECT().UploadAll(gomock.Any(), []string{"data:red"}, "products").Return([]image.Image{redImg})

	req, err := http.NewRequest(http.MethodPost, "/shop/product/save", iox.NewJSONReader(web.SaveReq{
		Name:          "T-Shirt",
		OriginalPrice: 2000,
		DiscountPrice: 1500,
		Colors: []web.ColorReq{
			{Color: "red", Stock: 10, Images: []string{"data:red"}},
			{Color: "blue", Stock: 5, Index: 1},
		},
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusCreated, recorder.Code)
	id := recorder.MustScan().Data
	require.NotZero(t, id)

	req, err = http.NewRequest(http.MethodPost, "/product/detail", iox.NewJSONReader(web.IDReq{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	detailRecorder := test.NewJSONResponseRecorder[web.Product]()
	server.ServeHTTP(detailRecorder, req)
	require.Equal(t, http.StatusOK, detailRecorder.Code)
	p := detailRecorder.MustScan().Data
	assert.Equal(t, int64(testShopID), p.ShopID)
	assert.Equal(t, int64(15), p.Stock)
	require.Len(t, p.Colors, 2)
	assert.Equal(t, "red", p.Colors[0].Color)
	assert.Equal(t, []web.Image{{PublicID: redImg.PublicID, URL: redImg.URL}}, p.Colors[0].Images)
}

func (s *HandlerTestSuite) TestDetail_NotFound() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server, _ := s.newServer(ctrl, testShopID)

	req, err := http.NewRequest(http.MethodPost, "/product/detail", iox.NewJSONReader(web.IDReq{ID: 404}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, 402003, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestUpdateStock() {
	id, err := s.dao.Create(context.Background(), dao.Product{
		ShopId:        testShopID,
		Name:          "Mug",
		OriginalPrice: 500,
		Stock:         3,
	}, nil)
	require.NoError(s.T(), err)

	testCases := []struct {
		name      string
		shopID    int64
		req       web.UpdateStockReq
		wantCode  int
		wantBiz   int
		wantStock int64
	}{
		{
			name:      "修改成功",
			shopID:    testShopID,
			req:       web.UpdateStockReq{ID: id, Stock: 8},
			wantCode:  http.StatusOK,
			wantStock: 8,
		},
		{
			name:      "库存不能为负数",
			shopID:    testShopID,
			req:       web.UpdateStockReq{ID: id, Stock: -1},
			wantCode:  http.StatusBadRequest,
			wantBiz:   402002,
			wantStock: 8,
		},
		{
			name:      "不能修改别的店铺的商品",
			shopID:    testShopID + 1,
			req:       web.UpdateStockReq{ID: id, Stock: 100},
			wantCode:  http.StatusForbidden,
			wantBiz:   402004,
			wantStock: 8,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server, _ := s.newServer(ctrl, tc.shopID)

			req, err := http.NewRequest(http.MethodPost, "/shop/product/stock/update", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantBiz, recorder.MustScan().Code)

			p, err := s.dao.FindByID(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStock, p.Stock)
		})
	}
}

func (s *HandlerTestSuite) TestAdminAll() {
	ctx := context.Background()
	for _, shopID := range []int64{1, 2, 3} {
		_, err := s.dao.Create(ctx, dao.Product{ShopId: shopID, Name: "P", OriginalPrice: 100}, nil)
		require.NoError(s.T(), err)
	}
	testCases := []struct {
		name     string
		role     string
		wantCode int
		after    func(t *testing.T, resp test.Result[web.ProductList])
	}{
		{
			name:     "管理员查看全部商品",
			role:     middleware.RoleAdmin,
			wantCode: http.StatusOK,
			after: func(t *testing.T, resp test.Result[web.ProductList]) {
				assert.Equal(t, int64(3), resp.Data.Total)
				require.Len(t, resp.Data.Products, 2)
				assert.Equal(t, int64(3), resp.Data.Products[0].ShopID)
			},
		},
		{
			name:     "卖家无权查看",
			role:     middleware.RoleSeller,
			wantCode: http.StatusForbidden,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			producer := evtmocks.NewMockProductEventProducer(ctrl)
			svc := service.NewService(repository.NewProductRepository(s.dao, nil), imagemocks.NewMockService(ctrl), producer)
			server := egin.Load("server").Build()
			server.Use(func(ctx *gin.Context) {
				ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
					Uid:  1,
					Data: map[string]string{middleware.ClaimRole: tc.role},
				}))
			})
			web.NewAdminHandler(svc).PrivateRoutes(server.Engine)

			req, err := http.NewRequest(http.MethodPost, "/product/all", iox.NewJSONReader(web.Page{Limit: 2}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.ProductList]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.after != nil {
				tc.after(t, recorder.MustScan())
			}
		})
	}
}
