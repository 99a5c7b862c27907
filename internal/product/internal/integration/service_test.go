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
	"testing"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/emall/internal/image"
	imagemocks "github.com/ecodeclub/emall/internal/image/mocks"
	"github.com/ecodeclub/emall/internal/pkg/bizerr"
	"github.com/ecodeclub/emall/internal/product/internal/domain"
	"github.com/ecodeclub/emall/internal/product/internal/errs"
	"github.com/ecodeclub/emall/internal/product/internal/event"
	evtmocks "github.com/ecodeclub/emall/internal/product/internal/event/mocks"
	"github.com/ecodeclub/emall/internal/product/internal/repository"
	"github.com/ecodeclub/emall/internal/product/internal/repository/dao"
	daomocks "github.com/ecodeclub/emall/internal/product/internal/repository/dao/mocks"
	"github.com/ecodeclub/emall/internal/product/internal/service"
	testioc "github.com/ecodeclub/emall/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testShopID = 101

var placeholder = image.Image{PublicID: "avatars/placeholder", URL: "https://img/placeholder.jpg"}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

type ServiceTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.ProductDAO
}

func (s *ServiceTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewProductGORMDAO(s.db)
}

func (s *ServiceTestSuite) TearDownTest() {
	cleanTables(s.T(), s.db)
}

func (s *ServiceTestSuite) newService(ctrl *gomock.Controller) (service.Service, *imagemocks.MockService, *evtmocks.MockProductEventProducer) {
	imgSvc := imagemocks.NewMockService(ctrl)
	p := evtmocks.NewMockProductEventProducer(ctrl)
	return service.NewService(repository.NewProductRepository(s.dao, nil), imgSvc, p), imgSvc, p
}

// createColoredProduct red=10 blue=5
func (s *ServiceTestSuite) createColoredProduct() int64 {
	id, err := s.dao.Create(context.Background(), dao.Product{
		ShopId:        testShopID,
		Name:          "T-Shirt",
		OriginalPrice: 2000,
		SoldOut:       1,
	}, []dao.Color{
		{Color: "red", Stock: 10, Idx: 0},
		{Color: "blue", Stock: 5, Idx: 1},
	})
	require.NoError(s.T(), err)
	return id
}

func (s *ServiceTestSuite) createFlatProduct(stock int64) int64 {
	id, err := s.dao.Create(context.Background(), dao.Product{
		ShopId:        testShopID,
		Name:          "Mug",
		OriginalPrice: 500,
		Stock:         stock,
	}, nil)
	require.NoError(s.T(), err)
	return id
}

func (s *ServiceTestSuite) TestApplyStock_Color() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _ := s.newService(ctrl)
	id := s.createColoredProduct()

	err := svc.ApplyStock(context.Background(), "order:1", []domain.StockDeduction{
		{ProductID: id, Color: "red", Qty: 3},
	})
	require.NoError(t, err)

	p, err := svc.Detail(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(7), colorStock(p, "red"))
	assert.Equal(t, int64(5), colorStock(p, "blue"))
	assert.Equal(t, int64(12), p.Stock)
	assert.Equal(t, int64(4), p.SoldOut)

	// 同一个业务键再来一次不会重复扣减
	err = svc.ApplyStock(context.Background(), "order:1", []domain.StockDeduction{
		{ProductID: id, Color: "red", Qty: 3},
	})
	assert.ErrorIs(t, err, errs.ErrStockAlreadyApplied)
	p, err = svc.Detail(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(7), colorStock(p, "red"))
}

func (s *ServiceTestSuite) TestApplyStock_Failed() {
	testCases := []struct {
		name       string
		deductions func(colored, flat int64) []domain.StockDeduction
		wantErr    error
	}{
		{
			name: "颜色不存在",
			deductions: func(colored, flat int64) []domain.StockDeduction {
				return []domain.StockDeduction{{ProductID: colored, Color: "purple", Qty: 1}}
			},
			wantErr: errs.ErrColorNotFound,
		},
		{
			name: "无颜色商品指定了颜色",
			deductions: func(colored, flat int64) []domain.StockDeduction {
				return []domain.StockDeduction{{ProductID: flat, Color: "red", Qty: 1}}
			},
			wantErr: errs.ErrColorNotFound,
		},
		{
			name: "有颜色商品没有指定颜色",
			deductions: func(colored, flat int64) []domain.StockDeduction {
				return []domain.StockDeduction{{ProductID: colored, Qty: 1}}
			},
			wantErr: errs.ErrColorNotFound,
		},
		{
			name: "颜色库存不足",
			deductions: func(colored, flat int64) []domain.StockDeduction {
				return []domain.StockDeduction{{ProductID: colored, Color: "blue", Qty: 6}}
			},
			wantErr: errs.ErrInsufficientStock,
		},
		{
			name: "前面成功后面失败，整体回滚",
			deductions: func(colored, flat int64) []domain.StockDeduction {
				return []domain.StockDeduction{
					{ProductID: colored, Color: "red", Qty: 2},
					{ProductID: flat, Qty: 1},
					{ProductID: flat, Qty: 3},
				}
			},
			wantErr: errs.ErrInsufficientStock,
		},
		{
			name: "商品不存在",
			deductions: func(colored, flat int64) []domain.StockDeduction {
				return []domain.StockDeduction{{ProductID: flat + 1000, Qty: 1}}
			},
			wantErr: errs.ErrProductUnavailable,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, _, _ := s.newService(ctrl)
			colored := s.createColoredProduct()
			flat := s.createFlatProduct(3)

			err := svc.ApplyStock(context.Background(), "order:failed", tc.deductions(colored, flat))
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, bizerr.IsKind(err, bizerr.KindInventory))

			p, err := svc.Detail(context.Background(), colored)
			require.NoError(t, err)
			assert.Equal(t, int64(10), colorStock(p, "red"))
			assert.Equal(t, int64(5), colorStock(p, "blue"))
			assert.Equal(t, int64(15), p.Stock)
			assert.Equal(t, int64(1), p.SoldOut)
			p, err = svc.Detail(context.Background(), flat)
			require.NoError(t, err)
			assert.Equal(t, int64(3), p.Stock)
			assert.Equal(t, int64(0), p.SoldOut)

			// 失败的扣减没有留下流水，修正后可以用同一个业务键重试
			err = svc.ApplyStock(context.Background(), "order:failed", []domain.StockDeduction{
				{ProductID: flat, Qty: 1},
			})
			require.NoError(t, err)
			cleanTables(t, s.db)
		})
	}
}

func (s *ServiceTestSuite) TestApplyStock_Flat() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _ := s.newService(ctrl)
	id := s.createFlatProduct(10)

	err := svc.ApplyStock(context.Background(), "order:2", []domain.StockDeduction{
		{ProductID: id, Qty: 4},
	})
	require.NoError(t, err)
	p, err := svc.Detail(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(6), p.Stock)
	assert.Equal(t, int64(4), p.SoldOut)

	err = svc.ApplyStock(context.Background(), "order:3", []domain.StockDeduction{
		{ProductID: id, Qty: 0},
	})
	assert.ErrorIs(t, err, errs.ErrInvalidParam)
}

func (s *ServiceTestSuite) TestSave() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, imgSvc, _ := s.newService(ctrl)

	imgSvc.EXPECT().Placeholder().Return(placeholder)
	id, err := svc.Save(context.Background(), domain.Product{
		ShopID:        testShopID,
		Name:          "Mug",
		OriginalPrice: 500,
		Stock:         3,
	})
	require.NoError(t, err)
	p, err := svc.Detail(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []image.Image{placeholder}, p.Images)

	// 改成按颜色管理库存，没有上传新图片时沿用旧图片
	redImg := image.Image{PublicID: "products/red", URL: "https://img/red.jpg"}
	imgSvc.EXPECT().DeleteAll(gomock.Any(), []image.Image{})
	_, err = svc.Save(context.Background(), domain.Product{
		ID:            id,
		ShopID:        testShopID,
		Name:          "Mug v2",
		OriginalPrice: 600,
		DiscountPrice: 550,
		Colors: []domain.Color{
			{Color: "red", Stock: 4, Images: []image.Image{redImg}},
			{Color: "white", Stock: 2, Index: 1},
		},
	})
	require.NoError(t, err)
	p, err = svc.Detail(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Mug v2", p.Name)
	assert.Equal(t, int64(6), p.Stock)
	assert.Equal(t, int64(550), p.UnitPrice())
	assert.Equal(t, []image.Image{placeholder}, p.Images)
	require.Len(t, p.Colors, 2)
	assert.Equal(t, []image.Image{redImg}, p.Colors[0].Images)

	// 替换掉颜色图片，旧图片被删除
	newRed := image.Image{PublicID: "products/red2", URL: "https://img/red2.jpg"}
	imgSvc.EXPECT().DeleteAll(gomock.Any(), []image.Image{redImg})
	_, err = svc.Save(context.Background(), domain.Product{
		ID:            id,
		ShopID:        testShopID,
		Name:          "Mug v2",
		OriginalPrice: 600,
		Colors: []domain.Color{
			{Color: "red", Stock: 4, Images: []image.Image{newRed}},
		},
	})
	require.NoError(t, err)

	// 别的店铺不能修改
	_, err = svc.Save(context.Background(), domain.Product{
		ID:            id,
		ShopID:        testShopID + 1,
		Name:          "hack",
		OriginalPrice: 1,
	})
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)

	_, err = svc.Save(context.Background(), domain.Product{
		ShopID: testShopID,
		Name:   "dup colors",
		Colors: []domain.Color{{Color: "red"}, {Color: "red"}},
	})
	assert.ErrorIs(t, err, errs.ErrInvalidParam)
}

func (s *ServiceTestSuite) TestUpdateStock() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _ := s.newService(ctrl)
	colored := s.createColoredProduct()
	flat := s.createFlatProduct(3)

	require.NoError(t, svc.UpdateStock(context.Background(), testShopID, colored, 0, []domain.Color{
		{Color: "blue", Stock: 20},
	}))
	p, err := svc.Detail(context.Background(), colored)
	require.NoError(t, err)
	assert.Equal(t, int64(20), colorStock(p, "blue"))
	assert.Equal(t, int64(30), p.Stock)

	err = svc.UpdateStock(context.Background(), testShopID, colored, 0, []domain.Color{
		{Color: "purple", Stock: 1},
	})
	assert.ErrorIs(t, err, errs.ErrColorNotFound)

	require.NoError(t, svc.UpdateStock(context.Background(), testShopID, flat, 9, nil))
	p, err = svc.Detail(context.Background(), flat)
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.Stock)

	err = svc.UpdateStock(context.Background(), testShopID, flat, -1, nil)
	assert.ErrorIs(t, err, errs.ErrInvalidParam)
	err = svc.UpdateStock(context.Background(), testShopID+1, flat, 1, nil)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func (s *ServiceTestSuite) TestDelete() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, imgSvc, producer := s.newService(ctrl)
	id := s.createColoredProduct()

	err := svc.Delete(context.Background(), testShopID+1, id)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)

	imgSvc.EXPECT().DeleteAll(gomock.Any(), gomock.Any())
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.ProductEvent) error {
			assert.Equal(t, event.ProductEventTypeDeleted, evt.Type)
			assert.Equal(t, id, evt.ProductID)
			assert.Equal(t, int64(testShopID), evt.ShopID)
			assert.Equal(t, "T-Shirt", evt.ProductName)
			return nil
		})
	require.NoError(t, svc.Delete(context.Background(), testShopID, id))

	_, err = svc.Detail(context.Background(), id)
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}

func (s *ServiceTestSuite) TestList() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _ := s.newService(ctrl)
	ctx := context.Background()
	_, err := s.dao.Create(ctx, dao.Product{ShopId: 1, Name: "Red Apple", OriginalPrice: 300, DiscountPrice: 100, SoldOut: 5}, nil)
	require.NoError(t, err)
	_, err = s.dao.Create(ctx, dao.Product{ShopId: 1, Name: "Green Apple", OriginalPrice: 300, DiscountPrice: 200, SoldOut: 9}, nil)
	require.NoError(t, err)
	_, err = s.dao.Create(ctx, dao.Product{ShopId: 2, Name: "Banana", OriginalPrice: 100, DiscountPrice: 50, SoldOut: 1}, nil)
	require.NoError(t, err)

	ps, err := svc.List(ctx, domain.ListQuery{Keyword: "Apple", SortBy: domain.SortByBestSelling})
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "Green Apple", ps[0].Name)

	ps, err = svc.List(ctx, domain.ListQuery{SortBy: domain.SortByTopDeals, Limit: 1})
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "Banana", ps[0].Name)

	ps, err = svc.ListByShop(ctx, 1, 0, 0)
	require.NoError(t, err)
	assert.Len(t, ps, 2)
}

func (s *ServiceTestSuite) TestListAll() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _ := s.newService(ctrl)
	ctx := context.Background()
	for _, name := range []string{"A", "B", "C"} {
		_, err := s.dao.Create(ctx, dao.Product{ShopId: 1, Name: name, OriginalPrice: 100}, nil)
		require.NoError(t, err)
	}

	ps, total, err := svc.ListAll(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, ps, 2)
	assert.Equal(t, "C", ps[0].Name)
	assert.Equal(t, "B", ps[1].Name)

	ps, total, err = svc.ListAll(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, ps, 1)
	assert.Equal(t, "A", ps[0].Name)
}

func (s *ServiceTestSuite) TestDeleteByShop() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, imgSvc, _ := s.newService(ctrl)
	ctx := context.Background()
	colored, err := s.dao.Create(ctx, dao.Product{ShopId: testShopID, Name: "T-Shirt", OriginalPrice: 2000}, []dao.Color{
		{
			Color:  "red",
			Stock:  10,
			Images: sqlx.JsonColumn[[]dao.Image]{Val: []dao.Image{{PublicID: "products/red", URL: "https://img/red.png"}}, Valid: true},
		},
	})
	require.NoError(t, err)
	flat := s.createFlatProduct(3)
	other, err := s.dao.Create(ctx, dao.Product{ShopId: testShopID + 1, Name: "Other", OriginalPrice: 100}, nil)
	require.NoError(t, err)

	var deleted []image.Image
	imgSvc.EXPECT().DeleteAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, images []image.Image) {
			deleted = append(deleted, images...)
		}).Times(2)

	cnt, err := svc.DeleteByShop(ctx, testShopID)
	require.NoError(t, err)
	assert.Equal(t, 2, cnt)
	assert.Contains(t, deleted, image.Image{PublicID: "products/red", URL: "https://img/red.png"})

	for _, id := range []int64{colored, flat} {
		_, err = svc.Detail(ctx, id)
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	}
	var colorCnt int64
	require.NoError(t, s.db.Model(&dao.Color{}).Where("product_id = ?", colored).Count(&colorCnt).Error)
	assert.Zero(t, colorCnt)
	_, err = svc.Detail(ctx, other)
	assert.NoError(t, err)

	cnt, err = svc.DeleteByShop(ctx, testShopID)
	require.NoError(t, err)
	assert.Zero(t, cnt)
}

func (s *ServiceTestSuite) TestDeleteByShop_RemovesIndex() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, imgSvc, search := s.newSearchService(ctrl)
	id := s.createFlatProduct(1)
	imgSvc.EXPECT().DeleteAll(gomock.Any(), gomock.Any())
	search.EXPECT().Delete(gomock.Any(), id).Return(errors.New("mock es error"))

	cnt, err := svc.DeleteByShop(context.Background(), testShopID)
	require.NoError(t, err)
	assert.Equal(t, 1, cnt)
}

func (s *ServiceTestSuite) newSearchService(ctrl *gomock.Controller) (service.Service, *imagemocks.MockService, *daomocks.MockProductSearchDAO) {
	imgSvc := imagemocks.NewMockService(ctrl)
	p := evtmocks.NewMockProductEventProducer(ctrl)
	p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	search := daomocks.NewMockProductSearchDAO(ctrl)
	return service.NewService(repository.NewProductRepository(s.dao, search), imgSvc, p), imgSvc, search
}

func (s *ServiceTestSuite) TestList_Search() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, search := s.newSearchService(ctrl)
	ctx := context.Background()
	apple, err := s.dao.Create(ctx, dao.Product{ShopId: 1, Name: "Red Apple", OriginalPrice: 300, SoldOut: 5}, nil)
	require.NoError(t, err)
	banana, err := s.dao.Create(ctx, dao.Product{ShopId: 2, Name: "Banana", OriginalPrice: 100, SoldOut: 8}, nil)
	require.NoError(t, err)
	_, err = s.dao.Create(ctx, dao.Product{ShopId: 2, Name: "Fruit Knife", OriginalPrice: 100, SoldOut: 20}, nil)
	require.NoError(t, err)

	// 关键词命中由搜索引擎决定，排序分页由数据库决定
	search.EXPECT().Search(gomock.Any(), "fruit", 1000).Return([]int64{apple, banana}, nil)
	ps, err := svc.List(ctx, domain.ListQuery{Keyword: "fruit", SortBy: domain.SortByBestSelling})
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, banana, ps[0].ID)
	assert.Equal(t, apple, ps[1].ID)

	search.EXPECT().Search(gomock.Any(), "fruit", 1000).Return([]int64{apple, banana}, nil)
	ps, err = svc.List(ctx, domain.ListQuery{Keyword: "fruit", SortBy: domain.SortByBestSelling, Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, apple, ps[0].ID)

	search.EXPECT().Search(gomock.Any(), "durian", 1000).Return(nil, nil)
	ps, err = svc.List(ctx, domain.ListQuery{Keyword: "durian"})
	require.NoError(t, err)
	assert.Empty(t, ps)

	// 搜索引擎出错时退回数据库匹配
	search.EXPECT().Search(gomock.Any(), "Fruit", 1000).Return(nil, errors.New("es down"))
	ps, err = svc.List(ctx, domain.ListQuery{Keyword: "Fruit"})
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "Fruit Knife", ps[0].Name)

	// 没有关键词时不查搜索引擎
	ps, err = svc.List(ctx, domain.ListQuery{SortBy: domain.SortByBestSelling})
	require.NoError(t, err)
	assert.Len(t, ps, 3)
}

func (s *ServiceTestSuite) TestSave_SyncIndex() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, imgSvc, search := s.newSearchService(ctrl)
	ctx := context.Background()

	imgSvc.EXPECT().Placeholder().Return(placeholder)
	var indexed dao.ProductDoc
	search.EXPECT().Input(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, doc dao.ProductDoc) error {
			indexed = doc
			return nil
		})
	id, err := svc.Save(ctx, domain.Product{
		ShopID:        testShopID,
		Name:          "Mug",
		Description:   "ceramic",
		Tags:          []string{"kitchen"},
		OriginalPrice: 500,
		Stock:         3,
	})
	require.NoError(t, err)
	assert.Equal(t, id, indexed.Id)
	assert.Equal(t, int64(testShopID), indexed.ShopId)
	assert.Equal(t, "Mug", indexed.Name)
	assert.Equal(t, "ceramic", indexed.Description)
	assert.Equal(t, []string{"kitchen"}, indexed.Tags)
	assert.True(t, indexed.Ctime > 0)

	// 索引写失败不影响保存
	imgSvc.EXPECT().DeleteAll(gomock.Any(), gomock.Any())
	search.EXPECT().Input(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, doc dao.ProductDoc) error {
			indexed = doc
			return errors.New("es down")
		})
	_, err = svc.Save(ctx, domain.Product{
		ID:            id,
		ShopID:        testShopID,
		Name:          "Mug v2",
		OriginalPrice: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mug v2", indexed.Name)
	p, err := svc.Detail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Mug v2", p.Name)
	assert.Equal(t, p.Ctime, indexed.Ctime)

	imgSvc.EXPECT().DeleteAll(gomock.Any(), gomock.Any())
	search.EXPECT().Delete(gomock.Any(), id).Return(errors.New("es down"))
	require.NoError(t, svc.Delete(ctx, testShopID, id))
	_, err = svc.Detail(ctx, id)
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}

func colorStock(p domain.Product, color string) int64 {
	for _, c := range p.Colors {
		if c.Color == color {
			return c.Stock
		}
	}
	return -1
}

func cleanTables(t *testing.T, db *egorm.Component) {
	for _, table := range []string{"products", "product_colors", "stock_logs"} {
		require.NoError(t, db.Exec("DELETE FROM `"+table+"`").Error)
	}
}
