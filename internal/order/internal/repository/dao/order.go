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
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrVersionConflict = errors.New("订单版本冲突")

type OrderDAO interface {
	// Create 在一个事务里创建全部订单
	Create(ctx context.Context, orders []Order, items [][]OrderItem) ([]int64, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindItemsByOrderIDs(ctx context.Context, orderIDs []int64) ([]OrderItem, error)
	// UpdateStatus 乐观锁更新，版本不一致返回 ErrVersionConflict
	UpdateStatus(ctx context.Context, o Order) error
	// MarkSettled 只修改入账标记，同时推进版本号
	MarkSettled(ctx context.Context, id int64) (bool, error)

	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error)
	CountByBuyer(ctx context.Context, buyerID int64) (int64, error)
	ListByShop(ctx context.Context, shopID int64, offset, limit int) ([]Order, error)
	CountByShop(ctx context.Context, shopID int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Order, error)
	Count(ctx context.Context) (int64, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) Create(ctx context.Context, orders []Order, items [][]OrderItem) ([]int64, error) {
	ids := make([]int64, 0, len(orders))
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		for i := range orders {
			o := orders[i]
			o.Ctime, o.Utime = now, now
			o.Version = 1
			if err := tx.Create(&o).Error; err != nil {
				return err
			}
			its := items[i]
			for j := range its {
				its[j].OrderId = o.Id
				its[j].Ctime, its[j].Utime = now, now
			}
			if len(its) > 0 {
				if err := tx.Create(&its).Error; err != nil {
					return err
				}
			}
			ids = append(ids, o.Id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (d *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindItemsByOrderIDs(ctx context.Context, orderIDs []int64) ([]OrderItem, error) {
	var res []OrderItem
	if len(orderIDs) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).Where("order_id IN ?", orderIDs).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) UpdateStatus(ctx context.Context, o Order) error {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND version = ?", o.Id, o.Version).
		Updates(map[string]any{
			"status":         o.Status,
			"payment_status": o.PaymentStatus,
			"stock_applied":  o.StockApplied,
			"settled":        o.Settled,
			"delivered_at":   o.DeliveredAt,
			"version":        gorm.Expr("version + 1"),
			"utime":          time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (d *OrderGORMDAO) MarkSettled(ctx context.Context, id int64) (bool, error) {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND settled = ?", id, false).
		Updates(map[string]any{
			"settled": true,
			"version": gorm.Expr("version + 1"),
			"utime":   time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (d *OrderGORMDAO) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error) {
	return d.list(ctx, d.db.WithContext(ctx).Where("buyer_id = ?", buyerID), offset, limit)
}

func (d *OrderGORMDAO) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	return d.count(d.db.WithContext(ctx).Where("buyer_id = ?", buyerID))
}

func (d *OrderGORMDAO) ListByShop(ctx context.Context, shopID int64, offset, limit int) ([]Order, error) {
	return d.list(ctx, d.db.WithContext(ctx).Where("shop_id = ?", shopID), offset, limit)
}

func (d *OrderGORMDAO) CountByShop(ctx context.Context, shopID int64) (int64, error) {
	return d.count(d.db.WithContext(ctx).Where("shop_id = ?", shopID))
}

func (d *OrderGORMDAO) List(ctx context.Context, offset, limit int) ([]Order, error) {
	return d.list(ctx, d.db.WithContext(ctx), offset, limit)
}

func (d *OrderGORMDAO) Count(ctx context.Context) (int64, error) {
	return d.count(d.db.WithContext(ctx))
}

func (d *OrderGORMDAO) list(_ context.Context, query *gorm.DB, offset, limit int) ([]Order, error) {
	var res []Order
	err := query.Order("ctime DESC, id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) count(query *gorm.DB) (int64, error) {
	var res int64
	err := query.Model(&Order{}).Count(&res).Error
	return res, err
}

type Order struct {
	Id              int64                    `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN              string                   `gorm:"column:sn;type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId         int64                    `gorm:"not null;index:idx_order_buyer_id;comment:购买者ID"`
	ShopId          int64                    `gorm:"not null;index:idx_order_shop_id;comment:卖家店铺ID"`
	ShippingAddress sqlx.JsonColumn[Address] `gorm:"type:json;comment:收货地址"`
	TotalPrice      int64                    `gorm:"not null;comment:订单总价;单位为分"`
	PaymentId       string                   `gorm:"type:varchar(255);comment:第三方支付流水号"`
	PaymentMethod   string                   `gorm:"type:varchar(64);comment:支付方式"`
	PaymentStatus   string                   `gorm:"type:varchar(32);not null;comment:支付状态"`
	Status          string                   `gorm:"type:varchar(32);not null;comment:订单状态 Processing/Ready To Ship/Delivered"`
	StockApplied    bool                     `gorm:"not null;default:false;comment:是否已经扣减库存"`
	Settled         bool                     `gorm:"not null;default:false;comment:是否已经给卖家入账"`
	Version         int64                    `gorm:"not null;default:1;comment:乐观锁版本号"`
	DeliveredAt     int64                    `gorm:"not null;default:0;comment:送达时间"`
	Ctime           int64                    `gorm:"index:idx_order_ctime"`
	Utime           int64
}

type Address struct {
	Country     string `json:"country"`
	City        string `json:"city"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	ZipCode     string `json:"zipCode"`
	AddressType string `json:"addressType"`
	Phone       string `json:"phone"`
}

type OrderItem struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId       int64  `gorm:"not null;index:idx_order_item_order_id;comment:订单自增ID"`
	ProductId     int64  `gorm:"not null;comment:商品ID"`
	ShopId        int64  `gorm:"not null;comment:卖家店铺ID"`
	Name          string `gorm:"type:varchar(256);not null;comment:商品名称"`
	Image         string `gorm:"type:varchar(512);comment:商品图片"`
	Color         string `gorm:"type:varchar(64);comment:颜色,空表示没有颜色维度"`
	Qty           int64  `gorm:"not null;comment:购买数量"`
	OriginalPrice int64  `gorm:"not null;comment:原价;单位为分"`
	DiscountPrice int64  `gorm:"not null;default:0;comment:折扣价;单位为分"`
	Ctime         int64
	Utime         int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{})
}
