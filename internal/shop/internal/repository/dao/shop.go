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
	ErrDuplicatedEmail      = errors.New("邮箱冲突")
	ErrDuplicatedBalanceLog = errors.New("余额流水重复")
	ErrInsufficientBalance  = errors.New("可用余额不足")
	ErrBalanceNotEmpty      = errors.New("还有未提现的余额")
)

type ShopDAO interface {
	Insert(ctx context.Context, s Shop) (int64, error)
	FindByID(ctx context.Context, id int64) (Shop, error)
	FindByEmail(ctx context.Context, email string) (Shop, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	UpdateProfile(ctx context.Context, s Shop) error
	UpdateWithdrawMethod(ctx context.Context, id int64, wm sqlx.JsonColumn[WithdrawMethod]) error
	List(ctx context.Context, offset, limit int) ([]Shop, error)
	Count(ctx context.Context) (int64, error)
	// Delete 只能删除余额为 0 的店铺，否则返回 ErrBalanceNotEmpty
	Delete(ctx context.Context, id int64) error

	// Credit 增加可用余额，同一个 bizKey 只会生效一次
	Credit(ctx context.Context, id, amount int64, bizKey string) error
	// Debit 扣减可用余额，余额不足时返回 ErrInsufficientBalance
	Debit(ctx context.Context, id, amount int64, bizKey string) error
	// AppendTransaction 追加结算记录，同一个提现只会追加一次
	AppendTransaction(ctx context.Context, t Transaction) error
	FindTransactions(ctx context.Context, shopID int64) ([]Transaction, error)
}

type GORMShopDAO struct {
	db *egorm.Component
}

func NewGORMShopDAO(db *egorm.Component) ShopDAO {
	return &GORMShopDAO{db: db}
}

func (d *GORMShopDAO) Insert(ctx context.Context, s Shop) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime, s.Utime = now, now
	err := d.db.WithContext(ctx).Create(&s).Error
	if database.IsUniqueConflict(err) {
		return 0, ErrDuplicatedEmail
	}
	return s.Id, err
}

func (d *GORMShopDAO) FindByID(ctx context.Context, id int64) (Shop, error) {
	var res Shop
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *GORMShopDAO) FindByEmail(ctx context.Context, email string) (Shop, error) {
	var res Shop
	err := d.db.WithContext(ctx).Where("email = ?", email).First(&res).Error
	return res, err
}

func (d *GORMShopDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return d.updates(ctx, id, map[string]any{
		"status": status,
		"utime":  time.Now().UnixMilli(),
	})
}

func (d *GORMShopDAO) UpdateProfile(ctx context.Context, s Shop) error {
	return d.updates(ctx, s.Id, map[string]any{
		"name":         s.Name,
		"phone_number": s.PhoneNumber,
		"address":      s.Address,
		"zip_code":     s.ZipCode,
		"description":  s.Description,
		"avatar":       s.Avatar,
		"utime":        time.Now().UnixMilli(),
	})
}

func (d *GORMShopDAO) UpdateWithdrawMethod(ctx context.Context, id int64, wm sqlx.JsonColumn[WithdrawMethod]) error {
	return d.updates(ctx, id, map[string]any{
		"withdraw_method": wm,
		"utime":           time.Now().UnixMilli(),
	})
}

func (d *GORMShopDAO) List(ctx context.Context, offset, limit int) ([]Shop, error) {
	var res []Shop
	err := d.db.WithContext(ctx).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMShopDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Shop{}).Count(&cnt).Error
	return cnt, err
}

func (d *GORMShopDAO) Delete(ctx context.Context, id int64) error {
	res := d.db.WithContext(ctx).Where("id = ? AND available_balance = 0", id).Delete(&Shop{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Shop{}).Where("id = ?", id).Count(&cnt).Error
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrBalanceNotEmpty
	}
	return gorm.ErrRecordNotFound
}

func (d *GORMShopDAO) updates(ctx context.Context, id int64, values map[string]any) error {
	res := d.db.WithContext(ctx).Model(&Shop{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *GORMShopDAO) Credit(ctx context.Context, id, amount int64, bizKey string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		if err := d.insertBalanceLog(tx, BalanceLog{BizKey: bizKey, ShopId: id, Amount: amount, Ctime: now}); err != nil {
			return err
		}
		res := tx.Model(&Shop{}).Where("id = ?", id).Updates(map[string]any{
			"available_balance": gorm.Expr("available_balance + ?", amount),
			"utime":             now,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (d *GORMShopDAO) Debit(ctx context.Context, id, amount int64, bizKey string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		if err := d.insertBalanceLog(tx, BalanceLog{BizKey: bizKey, ShopId: id, Amount: -amount, Ctime: now}); err != nil {
			return err
		}
		// 条件更新，并发扣减时只有余额足够的那一次能成功
		res := tx.Model(&Shop{}).
			Where("id = ? AND available_balance >= ?", id, amount).
			Updates(map[string]any{
				"available_balance": gorm.Expr("available_balance - ?", amount),
				"utime":             now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		var cnt int64
		if err := tx.Model(&Shop{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrInsufficientBalance
	})
}

func (d *GORMShopDAO) insertBalanceLog(tx *gorm.DB, l BalanceLog) error {
	var cnt int64
	if err := tx.Model(&BalanceLog{}).Where("biz_key = ?", l.BizKey).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return ErrDuplicatedBalanceLog
	}
	err := tx.Create(&l).Error
	if database.IsUniqueConflict(err) {
		return ErrDuplicatedBalanceLog
	}
	return err
}

func (d *GORMShopDAO) AppendTransaction(ctx context.Context, t Transaction) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&Transaction{}).Where("withdraw_id = ?", t.WithdrawId).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return nil
		}
		t.Ctime = time.Now().UnixMilli()
		err := tx.Create(&t).Error
		if database.IsUniqueConflict(err) {
			return nil
		}
		return err
	})
}

func (d *GORMShopDAO) FindTransactions(ctx context.Context, shopID int64) ([]Transaction, error) {
	var res []Transaction
	err := d.db.WithContext(ctx).Where("shop_id = ?", shopID).Order("id DESC").Find(&res).Error
	return res, err
}

type Shop struct {
	Id               int64                           `gorm:"primaryKey;autoIncrement;comment:店铺自增ID"`
	Name             string                          `gorm:"type:varchar(256);not null;comment:店铺名称"`
	Email            string                          `gorm:"type:varchar(256);not null;uniqueIndex:uniq_shop_email;comment:登录邮箱"`
	Password         string                          `gorm:"type:varchar(256);not null;comment:bcrypt 加密后的密码"`
	PhoneNumber      string                          `gorm:"type:varchar(64);comment:联系电话"`
	Address          string                          `gorm:"type:varchar(512);comment:地址"`
	ZipCode          string                          `gorm:"type:varchar(32);comment:邮编"`
	Description      string                          `gorm:"type:text;comment:店铺描述"`
	Avatar           sqlx.JsonColumn[Image]          `gorm:"type:json;comment:头像"`
	Status           uint8                           `gorm:"type:tinyint unsigned;not null;default:1;comment:店铺状态 1=待激活 2=已激活"`
	AvailableBalance int64                           `gorm:"not null;default:0;comment:可用余额;单位为分"`
	WithdrawMethod   sqlx.JsonColumn[WithdrawMethod] `gorm:"type:json;comment:提现账户"`
	Ctime            int64
	Utime            int64
}

type Image struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

type WithdrawMethod struct {
	BankName          string `json:"bankName"`
	BankCountry       string `json:"bankCountry"`
	BankSwiftCode     string `json:"bankSwiftCode"`
	BankAccountNumber string `json:"bankAccountNumber"`
	BankHolderName    string `json:"bankHolderName"`
	BankAddress       string `json:"bankAddress"`
}

// BalanceLog 余额变更流水，BizKey 保证幂等
type BalanceLog struct {
	Id     int64  `gorm:"primaryKey;autoIncrement;comment:流水自增ID"`
	BizKey string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_balance_log_biz_key;comment:业务幂等键"`
	ShopId int64  `gorm:"not null;index:idx_balance_log_shop_id;comment:店铺ID"`
	Amount int64  `gorm:"not null;comment:变更金额;正数为入账,负数为出账"`
	Ctime  int64
}

// Transaction 已结清的提现记录
type Transaction struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:结算记录自增ID"`
	ShopId     int64  `gorm:"not null;index:idx_transaction_shop_id;comment:店铺ID"`
	WithdrawId int64  `gorm:"not null;uniqueIndex:uniq_transaction_withdraw_id;comment:提现ID"`
	Amount     int64  `gorm:"not null;comment:金额;单位为分"`
	Status     string `gorm:"type:varchar(32);not null;comment:状态"`
	Utime      int64  `gorm:"comment:结清时间"`
	Ctime      int64
}

func (Transaction) TableName() string {
	return "shop_transactions"
}
