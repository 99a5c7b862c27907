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
	"database/sql"
	"testing"

	"github.com/ecodeclub/emall/internal/image"
	imagemocks "github.com/ecodeclub/emall/internal/image/mocks"
	"github.com/ecodeclub/emall/internal/quicksell/internal/domain"
	"github.com/ecodeclub/emall/internal/quicksell/internal/errs"
	"github.com/ecodeclub/emall/internal/quicksell/internal/repository"
	"github.com/ecodeclub/emall/internal/quicksell/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/quicksell/internal/service"
	testioc "github.com/ecodeclub/emall/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testOwnerID = 7
	testOtherID = 8
)

var placeholder = image.Image{PublicID: "placeholder", URL: "https://img/placeholder.png"}

func TestQuickSellService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

type ServiceTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.ListingDAO
}

func (s *ServiceTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewListingGORMDAO(s.db)
}

func (s *ServiceTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("DELETE FROM `quick_sell_listings`").Error)
}

func (s *ServiceTestSuite) newService(ctrl *gomock.Controller) (service.Service, *imagemocks.MockService) {
	imgSvc := imagemocks.NewMockService(ctrl)
	imgSvc.EXPECT().Placeholder().Return(placeholder).AnyTimes()
	return service.NewService(repository.NewListingRepository(s.dao), imgSvc), imgSvc
}

func (s *ServiceTestSuite) TestCreate_OneActiveListing() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, imgSvc := s.newService(ctrl)

	first, err := svc.Create(context.Background(), listing(testOwnerID, "Bike"))
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.False(t, first.Sold)
	assert.Equal(t, []image.Image{placeholder}, first.Images)

	second := listing(testOwnerID, "Lamp")
	second.Images = []image.Image{{PublicID: "quicksell/lamp", URL: "https://img/lamp.png"}}
	// 创建失败时上传的图片要删掉
	imgSvc.EXPECT().DeleteAll(gomock.Any(), second.Images)
	_, err = svc.Create(context.Background(), second)
	assert.ErrorIs(t, err, errs.ErrActiveListingExists)

	// 别人不受影响
	_, err = svc.Create(context.Background(), listing(testOtherID, "Desk"))
	require.NoError(t, err)

	sold, err := svc.Sell(context.Background(), testOwnerID, first.ID)
	require.NoError(t, err)
	assert.True(t, sold.Sold)

	third, err := svc.Create(context.Background(), listing(testOwnerID, "Lamp"))
	require.NoError(t, err)

	mine, err := svc.ListMine(context.Background(), testOwnerID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, third.ID, mine[0].ID)
	assert.Equal(t, "Lamp", mine[0].Name)
}

func (s *ServiceTestSuite) TestCreate_InvalidParam() {
	testCases := []struct {
		name string
		l    domain.Listing
	}{
		{
			name: "没有名称",
			l:    domain.Listing{OwnerID: testOwnerID, Category: "c", Condition: "new"},
		},
		{
			name: "没有分类",
			l:    domain.Listing{OwnerID: testOwnerID, Name: "n", Condition: "new"},
		},
		{
			name: "没有成色",
			l:    domain.Listing{OwnerID: testOwnerID, Name: "n", Category: "c"},
		},
		{
			name: "价格为负",
			l:    domain.Listing{OwnerID: testOwnerID, Name: "n", Category: "c", Condition: "new", Price: -1},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, _ := s.newService(ctrl)
			_, err := svc.Create(context.Background(), tc.l)
			assert.ErrorIs(t, err, errs.ErrInvalidParam)
		})
	}
}

// 唯一索引保证同一个用户最多一个在售
func (s *ServiceTestSuite) TestActiveOwnerUniqueIndex() {
	t := s.T()
	active := dao.Listing{OwnerId: testOwnerID, Name: "a", Category: "c", Condition: "new",
		ActiveOwner: sql.NullInt64{Int64: testOwnerID, Valid: true}}
	require.NoError(t, s.db.Create(&active).Error)
	dup := active
	dup.Id = 0
	assert.Error(t, s.db.Create(&dup).Error)

	// 已售的不占用
	for i := 0; i < 2; i++ {
		sold := dao.Listing{OwnerId: testOwnerID, Name: "s", Category: "c", Condition: "new", Sold: true}
		require.NoError(t, s.db.Create(&sold).Error)
	}
}

func (s *ServiceTestSuite) TestSell_Failed() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := s.newService(ctrl)
	l, err := svc.Create(context.Background(), listing(testOwnerID, "Bike"))
	require.NoError(t, err)

	_, err = svc.Sell(context.Background(), testOtherID, l.ID)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	_, err = svc.Sell(context.Background(), testOwnerID, l.ID+1000)
	assert.ErrorIs(t, err, errs.ErrListingNotFound)

	found, err := s.dao.FindByID(context.Background(), l.ID)
	require.NoError(t, err)
	assert.False(t, found.Sold)
	assert.Equal(t, int64(testOwnerID), found.ActiveOwner.Int64)

	// 重复售出直接返回
	_, err = svc.Sell(context.Background(), testOwnerID, l.ID)
	require.NoError(t, err)
	again, err := svc.Sell(context.Background(), testOwnerID, l.ID)
	require.NoError(t, err)
	assert.True(t, again.Sold)
	found, err = s.dao.FindByID(context.Background(), l.ID)
	require.NoError(t, err)
	assert.False(t, found.ActiveOwner.Valid)
}

func (s *ServiceTestSuite) TestUpdate() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, imgSvc := s.newService(ctrl)

	oldImages := []image.Image{{PublicID: "quicksell/old", URL: "https://img/old.png"}}
	l := listing(testOwnerID, "Bike")
	l.Images = oldImages
	created, err := svc.Create(context.Background(), l)
	require.NoError(t, err)

	// 没有新图片时沿用旧图片
	keep := listing(testOwnerID, "Red Bike")
	keep.ID = created.ID
	keep.Price = 900
	updated, err := svc.Update(context.Background(), keep)
	require.NoError(t, err)
	assert.Equal(t, oldImages, updated.Images)

	newImages := []image.Image{{PublicID: "quicksell/new", URL: "https://img/new.png"}}
	replace := keep
	replace.Images = newImages
	imgSvc.EXPECT().DeleteAll(gomock.Any(), oldImages)
	updated, err = svc.Update(context.Background(), replace)
	require.NoError(t, err)
	assert.Equal(t, newImages, updated.Images)

	found, err := s.dao.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Red Bike", found.Name)
	assert.Equal(t, int64(900), found.Price)
	require.Len(t, found.Images.Val, 1)
	assert.Equal(t, "quicksell/new", found.Images.Val[0].PublicID)

	other := keep
	other.OwnerID = testOtherID
	_, err = svc.Update(context.Background(), other)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func (s *ServiceTestSuite) TestDelete() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, imgSvc := s.newService(ctrl)

	images := []image.Image{{PublicID: "quicksell/bike", URL: "https://img/bike.png"}}
	l := listing(testOwnerID, "Bike")
	l.Images = images
	created, err := svc.Create(context.Background(), l)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), testOtherID, created.ID)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)

	imgSvc.EXPECT().DeleteAll(gomock.Any(), images)
	require.NoError(t, svc.Delete(context.Background(), testOwnerID, created.ID))
	err = svc.Delete(context.Background(), testOwnerID, created.ID)
	assert.ErrorIs(t, err, errs.ErrListingNotFound)

	// 删除后可以重新发布
	_, err = svc.Create(context.Background(), listing(testOwnerID, "Lamp"))
	require.NoError(t, err)
}

func listing(ownerID int64, name string) domain.Listing {
	return domain.Listing{
		OwnerID:     ownerID,
		Name:        name,
		Description: name + " in good shape",
		Category:    "sports",
		Condition:   "used",
		Price:       1000,
	}
}
