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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/emall/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrActiveListingExists = errors.New("已有在售的闲置")

type ListingDAO interface {
	// Create 同一个用户已有在售的闲置时返回 ErrActiveListingExists
	Create(ctx context.Context, l Listing) (int64, error)
	FindByID(ctx context.Context, id int64) (Listing, error)
	FindActiveByOwner(ctx context.Context, ownerID int64) ([]Listing, error)
	Update(ctx context.Context, l Listing) error
	// MarkSold 标记为已售，同时释放 active_owner
	MarkSold(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type ListingGORMDAO struct {
	db *egorm.Component
}

func NewListingGORMDAO(db *egorm.Component) ListingDAO {
	return &ListingGORMDAO{db: db}
}

func (d *ListingGORMDAO) Create(ctx context.Context, l Listing) (int64, error) {
	now := time.Now().UnixMilli()
	l.Ctime, l.Utime = now, now
	l.Sold = false
	l.ActiveOwner = sql.NullInt64{Int64: l.OwnerId, Valid: true}
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		err := tx.Model(&Listing{}).
			Where("owner_id = ? AND sold = ?", l.OwnerId, false).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrActiveListingExists
		}
		// 并发创建时由唯一索引兜底
		err = tx.Create(&l).Error
		if database.IsUniqueConflict(err) {
			return ErrActiveListingExists
		}
		return err
	})
	return l.Id, err
}

func (d *ListingGORMDAO) FindByID(ctx context.Context, id int64) (Listing, error) {
	var res Listing
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ListingGORMDAO) FindActiveByOwner(ctx context.Context, ownerID int64) ([]Listing, error) {
	var res []Listing
	err := d.db.WithContext(ctx).
		Where("owner_id = ? AND sold = ?", ownerID, false).
		Order("ctime DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (d *ListingGORMDAO) Update(ctx context.Context, l Listing) error {
	res := d.db.WithContext(ctx).Model(&Listing{}).
		Where("id = ?", l.Id).
		Updates(map[string]any{
			"name":        l.Name,
			"description": l.Description,
			"category":    l.Category,
			"condition":   l.Condition,
			"price":       l.Price,
			"images":      l.Images,
			"utime":       time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *ListingGORMDAO) MarkSold(ctx context.Context, id int64) error {
	res := d.db.WithContext(ctx).Model(&Listing{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sold":         true,
			"active_owner": sql.NullInt64{},
			"utime":        time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *ListingGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Listing{}).Error
}

// Listing 个人闲置
type Listing struct {
	Id          int64                    `gorm:"primaryKey;autoIncrement;comment:闲置自增ID"`
	OwnerId     int64                    `gorm:"not null;index:idx_quick_sell_owner_id;comment:发布者ID"`
	Name        string                   `gorm:"type:varchar(256);not null;comment:名称"`
	Description string                   `gorm:"type:text;comment:描述"`
	Category    string                   `gorm:"type:varchar(128);not null;comment:分类"`
	Condition   string                   `gorm:"type:varchar(64);not null;comment:成色"`
	Price       int64                    `gorm:"not null;comment:价格;单位为分"`
	Images      sqlx.JsonColumn[[]Image] `gorm:"type:json;comment:图片"`
	Sold        bool                     `gorm:"not null;default:false;comment:是否已售"`
	// ActiveOwner 在售时等于 OwnerId，售出后为 NULL
	ActiveOwner sql.NullInt64 `gorm:"uniqueIndex:uniq_quick_sell_active_owner;comment:在售发布者ID"`
	Ctime       int64
	Utime       int64
}

func (Listing) TableName() string {
	return "quick_sell_listings"
}

type Image struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Listing{})
}
