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

	"github.com/ego-component/egorm"
)

var ErrStatusConflict = errors.New("提现状态已变更")

type WithdrawDAO interface {
	// Insert 返回落库之后的数据
	Insert(ctx context.Context, w Withdraw) (Withdraw, error)
	FindByID(ctx context.Context, id int64) (Withdraw, error)
	// UpdateStatus 只有当前状态为 from 时才更新，否则返回 ErrStatusConflict
	UpdateStatus(ctx context.Context, id int64, from, to string) error
	List(ctx context.Context, offset, limit int) ([]Withdraw, error)
	Count(ctx context.Context) (int64, error)
	ListByShop(ctx context.Context, shopID int64, offset, limit int) ([]Withdraw, error)
	CountByShop(ctx context.Context, shopID int64) (int64, error)
}

type WithdrawGORMDAO struct {
	db *egorm.Component
}

func NewWithdrawGORMDAO(db *egorm.Component) WithdrawDAO {
	return &WithdrawGORMDAO{db: db}
}

func (d *WithdrawGORMDAO) Insert(ctx context.Context, w Withdraw) (Withdraw, error) {
	now := time.Now().UnixMilli()
	w.Ctime, w.Utime = now, now
	err := d.db.WithContext(ctx).Create(&w).Error
	return w, err
}

func (d *WithdrawGORMDAO) FindByID(ctx context.Context, id int64) (Withdraw, error) {
	var res Withdraw
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *WithdrawGORMDAO) UpdateStatus(ctx context.Context, id int64, from, to string) error {
	res := d.db.WithContext(ctx).Model(&Withdraw{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (d *WithdrawGORMDAO) List(ctx context.Context, offset, limit int) ([]Withdraw, error) {
	var res []Withdraw
	err := d.db.WithContext(ctx).Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *WithdrawGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Withdraw{}).Count(&res).Error
	return res, err
}

func (d *WithdrawGORMDAO) ListByShop(ctx context.Context, shopID int64, offset, limit int) ([]Withdraw, error) {
	var res []Withdraw
	err := d.db.WithContext(ctx).Where("shop_id = ?", shopID).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *WithdrawGORMDAO) CountByShop(ctx context.Context, shopID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Withdraw{}).Where("shop_id = ?", shopID).Count(&res).Error
	return res, err
}

type Withdraw struct {
	Id     int64  `gorm:"primaryKey;autoIncrement;comment:提现自增ID"`
	SN     string `gorm:"column:sn;type:varchar(255);not null;uniqueIndex:uniq_withdraw_sn;comment:提现序列号"`
	ShopId int64  `gorm:"not null;index:idx_withdraw_shop_id;comment:店铺ID"`
	Amount int64  `gorm:"not null;comment:提现金额;单位为分"`
	Status string `gorm:"type:varchar(32);not null;comment:状态 pending/succeeded"`
	Ctime  int64  `gorm:"index:idx_withdraw_ctime"`
	Utime  int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Withdraw{})
}
