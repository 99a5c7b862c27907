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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/emall/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrDuplicatedStockLog = errors.New("库存流水重复")
	ErrColorNotFound      = errors.New("颜色不存在")
	ErrInsufficientStock  = errors.New("库存不足")
)

const (
	SortByNewest uint8 = iota
	SortByBestSelling
	SortByTopDeals
)

type ProductDAO interface {
	Create(ctx context.Context, p Product, colors []Color) (int64, error)
	// Update 更新商品信息并整体替换颜色
	Update(ctx context.Context, p Product, colors []Color) error
	FindByID(ctx context.Context, id int64) (Product, error)
	FindColors(ctx context.Context, productID int64) ([]Color, error)
	FindByShopID(ctx context.Context, shopID int64, offset, limit int) ([]Product, error)
	// List 按名称和描述模糊匹配，搜索引擎不可用时使用
	List(ctx context.Context, keyword string, sortBy uint8, offset, limit int) ([]Product, error)
	// ListByIDs 在给定的商品里排序分页
	ListByIDs(ctx context.Context, ids []int64, sortBy uint8, offset, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	// UpdateStock 卖家直接修改库存，有颜色时按颜色修改并重新汇总
	UpdateStock(ctx context.Context, id, stock int64, colorStocks map[string]int64) error
	Delete(ctx context.Context, id int64) error

	// ApplyStock 在一个事务里完成全部扣减，任何一项失败全部回滚
	ApplyStock(ctx context.Context, bizKey string, deductions []StockDeduction) error
}

type StockDeduction struct {
	ProductId int64
	Color     string
	Qty       int64
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) Create(ctx context.Context, p Product, colors []Color) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	if len(colors) > 0 {
		p.Stock = sumStock(colors)
	}
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		return d.insertColors(tx, p.Id, colors, now)
	})
	return p.Id, err
}

func (d *ProductGORMDAO) Update(ctx context.Context, p Product, colors []Color) error {
	now := time.Now().UnixMilli()
	values := map[string]any{
		"name":           p.Name,
		"description":    p.Description,
		"category":       p.Category,
		"tags":           p.Tags,
		"original_price": p.OriginalPrice,
		"discount_price": p.DiscountPrice,
		"images":         p.Images,
		"stock":          p.Stock,
		"utime":          now,
	}
	if len(colors) > 0 {
		values["stock"] = sumStock(colors)
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Product{}).Where("id = ?", p.Id).Updates(values)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("product_id = ?", p.Id).Delete(&Color{}).Error; err != nil {
			return err
		}
		return d.insertColors(tx, p.Id, colors, now)
	})
}

func (d *ProductGORMDAO) insertColors(tx *gorm.DB, productID int64, colors []Color, now int64) error {
	if len(colors) == 0 {
		return nil
	}
	for i := range colors {
		colors[i].Id = 0
		colors[i].ProductId = productID
		colors[i].Ctime, colors[i].Utime = now, now
	}
	return tx.Create(&colors).Error
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindColors(ctx context.Context, productID int64) ([]Color, error) {
	var res []Color
	err := d.db.WithContext(ctx).Where("product_id = ?", productID).
		Order("idx ASC, id ASC").Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindByShopID(ctx context.Context, shopID int64, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Where("shop_id = ?", shopID).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) List(ctx context.Context, keyword string, sortBy uint8, offset, limit int) ([]Product, error) {
	query := d.db.WithContext(ctx).Model(&Product{})
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	var res []Product
	err := d.order(query, sortBy).Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) ListByIDs(ctx context.Context, ids []int64, sortBy uint8, offset, limit int) ([]Product, error) {
	var res []Product
	if len(ids) == 0 {
		return res, nil
	}
	query := d.db.WithContext(ctx).Model(&Product{}).Where("id IN ?", ids)
	err := d.order(query, sortBy).Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Product{}).Count(&cnt).Error
	return cnt, err
}

func (d *ProductGORMDAO) order(query *gorm.DB, sortBy uint8) *gorm.DB {
	switch sortBy {
	case SortByBestSelling:
		return query.Order("sold_out DESC, id DESC")
	case SortByTopDeals:
		return query.Order("discount_price ASC, id DESC")
	default:
		return query.Order("ctime DESC, id DESC")
	}
}

func (d *ProductGORMDAO) UpdateStock(ctx context.Context, id, stock int64, colorStocks map[string]int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var colors []Color
		if err := tx.Where("product_id = ?", id).Find(&colors).Error; err != nil {
			return err
		}
		if len(colors) == 0 {
			if len(colorStocks) > 0 {
				return ErrColorNotFound
			}
			return d.setStock(tx, id, stock, now)
		}
		for i := range colors {
			s, ok := colorStocks[colors[i].Color]
			if !ok {
				continue
			}
			colors[i].Stock = s
			err := tx.Model(&Color{}).Where("id = ?", colors[i].Id).Updates(map[string]any{
				"stock": s,
				"utime": now,
			}).Error
			if err != nil {
				return err
			}
		}
		if len(colorStocks) > countMatched(colors, colorStocks) {
			return ErrColorNotFound
		}
		return d.setStock(tx, id, sumStock(colors), now)
	})
}

func (d *ProductGORMDAO) setStock(tx *gorm.DB, id, stock, now int64) error {
	res := tx.Model(&Product{}).Where("id = ?", id).Updates(map[string]any{
		"stock": stock,
		"utime": now,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *ProductGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&Color{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&Product{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (d *ProductGORMDAO) ApplyStock(ctx context.Context, bizKey string, deductions []StockDeduction) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		if err := d.insertStockLog(tx, StockLog{BizKey: bizKey, Ctime: now}); err != nil {
			return err
		}
		for _, dd := range deductions {
			if err := d.deduct(tx, dd, now); err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *ProductGORMDAO) deduct(tx *gorm.DB, dd StockDeduction, now int64) error {
	var p Product
	if err := tx.Select("id").Where("id = ?", dd.ProductId).First(&p).Error; err != nil {
		return err
	}
	var colorCnt int64
	if err := tx.Model(&Color{}).Where("product_id = ?", dd.ProductId).Count(&colorCnt).Error; err != nil {
		return err
	}
	if colorCnt == 0 {
		if dd.Color != "" {
			return ErrColorNotFound
		}
		res := tx.Model(&Product{}).
			Where("id = ? AND stock >= ?", dd.ProductId, dd.Qty).
			Updates(map[string]any{
				"stock":    gorm.Expr("stock - ?", dd.Qty),
				"sold_out": gorm.Expr("sold_out + ?", dd.Qty),
				"utime":    now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}
		return nil
	}

	res := tx.Model(&Color{}).
		Where("product_id = ? AND color = ? AND stock >= ?", dd.ProductId, dd.Color, dd.Qty).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", dd.Qty),
			"utime": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var cnt int64
		err := tx.Model(&Color{}).Where("product_id = ? AND color = ?", dd.ProductId, dd.Color).Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt == 0 {
			return ErrColorNotFound
		}
		return ErrInsufficientStock
	}
	// 汇总库存跟着颜色库存一起扣减
	return tx.Model(&Product{}).Where("id = ?", dd.ProductId).Updates(map[string]any{
		"stock":    gorm.Expr("stock - ?", dd.Qty),
		"sold_out": gorm.Expr("sold_out + ?", dd.Qty),
		"utime":    now,
	}).Error
}

func (d *ProductGORMDAO) insertStockLog(tx *gorm.DB, l StockLog) error {
	var cnt int64
	if err := tx.Model(&StockLog{}).Where("biz_key = ?", l.BizKey).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return ErrDuplicatedStockLog
	}
	err := tx.Create(&l).Error
	if database.IsUniqueConflict(err) {
		return ErrDuplicatedStockLog
	}
	return err
}

func sumStock(colors []Color) int64 {
	var total int64
	for _, c := range colors {
		total += c.Stock
	}
	return total
}

func countMatched(colors []Color, colorStocks map[string]int64) int {
	cnt := 0
	for _, c := range colors {
		if _, ok := colorStocks[c.Color]; ok {
			cnt++
		}
	}
	return cnt
}

type Product struct {
	Id            int64                     `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	ShopId        int64                     `gorm:"not null;index:idx_product_shop_id;comment:店铺ID"`
	Name          string                    `gorm:"type:varchar(256);not null;comment:商品名称"`
	Description   string                    `gorm:"type:text;comment:商品描述"`
	Category      string                    `gorm:"type:varchar(128);comment:分类"`
	Tags          sqlx.JsonColumn[[]string] `gorm:"type:json;comment:标签"`
	OriginalPrice int64                     `gorm:"not null;comment:原价;单位为分"`
	DiscountPrice int64                     `gorm:"not null;default:0;comment:折扣价;单位为分,0表示无折扣"`
	Stock         int64                     `gorm:"not null;default:0;comment:库存;有颜色时为各颜色库存之和"`
	SoldOut       int64                     `gorm:"not null;default:0;comment:已售数量"`
	Images        sqlx.JsonColumn[[]Image]  `gorm:"type:json;comment:商品图片"`
	Ctime         int64                     `gorm:"index:idx_product_ctime"`
	Utime         int64
}

type Image struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

type Color struct {
	Id        int64                    `gorm:"primaryKey;autoIncrement;comment:颜色自增ID"`
	ProductId int64                    `gorm:"not null;uniqueIndex:uniq_product_color_name,priority:1;comment:商品ID"`
	Color     string                   `gorm:"type:varchar(64);not null;uniqueIndex:uniq_product_color_name,priority:2;comment:颜色"`
	Stock     int64                    `gorm:"not null;default:0;comment:该颜色库存"`
	Images    sqlx.JsonColumn[[]Image] `gorm:"type:json;comment:该颜色的图片"`
	Idx       int                      `gorm:"not null;default:0;comment:展示顺序"`
	Ctime     int64
	Utime     int64
}

func (Color) TableName() string {
	return "product_colors"
}

// StockLog 库存扣减流水，BizKey 保证同一笔业务只扣一次
type StockLog struct {
	Id     int64  `gorm:"primaryKey;autoIncrement;comment:流水自增ID"`
	BizKey string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_stock_log_biz_key;comment:业务幂等键"`
	Ctime  int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Product{}, &Color{}, &StockLog{})
}
