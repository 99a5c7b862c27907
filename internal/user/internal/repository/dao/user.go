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
	"gorm.io/gorm/clause"
)

var (
	// ErrUserDuplicate 邮箱已经注册
	ErrUserDuplicate     = errors.New("用户已经注册")
	ErrAddressNotFound   = errors.New("地址不存在")
	ErrAddressTypeExists = errors.New("同类型地址已存在")
)

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	// UpdateNonZeroFields 只更新非零值字段
	UpdateNonZeroFields(ctx context.Context, u User) error
	FindByID(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	// AddAddress 同一个用户的地址类型不能重复
	AddAddress(ctx context.Context, uid int64, addr Address) error
	// UpdateAddress 按 Id 整体替换
	UpdateAddress(ctx context.Context, uid int64, addr Address) error
	// DeleteAddress 地址不存在时什么也不做
	DeleteAddress(ctx context.Context, uid int64, addrID string) error
	List(ctx context.Context, offset, limit int) ([]User, error)
	Count(ctx context.Context) (int64, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{db: db}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if database.IsUniqueConflict(err) {
		return 0, ErrUserDuplicate
	}
	return u.Id, err
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	res := ud.db.WithContext(ctx).Model(&User{}).Where("id = ?", u.Id).Updates(&u)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (ud *GORMUserDAO) FindByID(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) UpdatePassword(ctx context.Context, id int64, hash string) error {
	res := ud.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(map[string]any{
		"password": hash,
		"utime":    time.Now().UnixMilli(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (ud *GORMUserDAO) AddAddress(ctx context.Context, uid int64, addr Address) error {
	return ud.updateAddresses(ctx, uid, func(addrs []Address) ([]Address, error) {
		for _, a := range addrs {
			if a.AddressType == addr.AddressType {
				return nil, ErrAddressTypeExists
			}
		}
		return append(addrs, addr), nil
	})
}

func (ud *GORMUserDAO) UpdateAddress(ctx context.Context, uid int64, addr Address) error {
	return ud.updateAddresses(ctx, uid, func(addrs []Address) ([]Address, error) {
		idx := -1
		for i, a := range addrs {
			if a.Id == addr.Id {
				idx = i
				continue
			}
			if a.AddressType == addr.AddressType {
				return nil, ErrAddressTypeExists
			}
		}
		if idx < 0 {
			return nil, ErrAddressNotFound
		}
		addrs[idx] = addr
		return addrs, nil
	})
}

func (ud *GORMUserDAO) DeleteAddress(ctx context.Context, uid int64, addrID string) error {
	return ud.updateAddresses(ctx, uid, func(addrs []Address) ([]Address, error) {
		res := make([]Address, 0, len(addrs))
		for _, a := range addrs {
			if a.Id != addrID {
				res = append(res, a)
			}
		}
		return res, nil
	})
}

// updateAddresses 锁住用户这一行再改地址列表
func (ud *GORMUserDAO) updateAddresses(ctx context.Context, uid int64, fn func(addrs []Address) ([]Address, error)) error {
	return ud.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "addresses").
			First(&u, "id = ?", uid).Error
		if err != nil {
			return err
		}
		addrs, err := fn(u.Addresses.Val)
		if err != nil {
			return err
		}
		return tx.Model(&User{}).Where("id = ?", uid).Updates(map[string]any{
			"addresses": sqlx.JsonColumn[[]Address]{Val: addrs, Valid: len(addrs) > 0},
			"utime":     time.Now().UnixMilli(),
		}).Error
	})
}

func (ud *GORMUserDAO) List(ctx context.Context, offset, limit int) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&us).Error
	return us, err
}

func (ud *GORMUserDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := ud.db.WithContext(ctx).Model(&User{}).Count(&cnt).Error
	return cnt, err
}

type User struct {
	Id          int64                      `gorm:"primaryKey,autoIncrement"`
	Name        string                     `gorm:"type:varchar(128);not null"`
	Email       string                     `gorm:"type:varchar(256);not null;uniqueIndex:uniq_user_email"`
	Password    string                     `gorm:"type:varchar(256);not null"`
	PhoneNumber string                     `gorm:"type:varchar(64)"`
	Avatar      sqlx.JsonColumn[Image]     `gorm:"type:json"`
	Addresses   sqlx.JsonColumn[[]Address] `gorm:"type:json"`
	// 创建时间
	Ctime int64 `gorm:"index:idx_user_ctime"`
	// 更新时间
	Utime int64
}

type Image struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

type Address struct {
	Id          string `json:"id"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	ZipCode     string `json:"zipCode"`
	AddressType string `json:"addressType"`
}
