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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/emall/internal/image"
	"github.com/ecodeclub/emall/internal/user/internal/domain"
	"github.com/ecodeclub/emall/internal/user/internal/repository/cache"
	"github.com/ecodeclub/emall/internal/user/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUserDuplicate     = dao.ErrUserDuplicate
	ErrAddressNotFound   = dao.ErrAddressNotFound
	ErrAddressTypeExists = dao.ErrAddressTypeExists
)

//go:generate mockgen -source=./user.go -destination=../../mocks/repository.mock.go -package=usermocks UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User, passwordHash string) (int64, error)
	// Update 更新数据，只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	FindByID(ctx context.Context, id int64) (domain.User, error)
	// FindByEmail 同时返回密码哈希
	FindByEmail(ctx context.Context, email string) (domain.User, string, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
	// FindPassword 返回密码哈希
	FindPassword(ctx context.Context, id int64) (string, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	AddAddress(ctx context.Context, uid int64, addr domain.Address) error
	UpdateAddress(ctx context.Context, uid int64, addr domain.Address) error
	DeleteAddress(ctx context.Context, uid int64, addrID string) error
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao    dao.UserDAO
	cache  cache.UserCache
	logger *elog.Component
}

func NewCachedUserRepository(d dao.UserDAO, c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User, passwordHash string) (int64, error) {
	entity := ur.domainToEntity(u)
	entity.Password = passwordHash
	return ur.dao.Insert(ctx, entity)
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.ID)
}

func (ur *CachedUserRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	ue, err := ur.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	if er := ur.cache.Set(ctx, u); er != nil {
		ur.logger.Warn("回写用户缓存失败", elog.Int64("uid", id), elog.FieldErr(er))
	}
	return u, nil
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, string, error) {
	ue, err := ur.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, "", err
	}
	return ur.entityToDomain(ue), ue.Password, nil
}

func (ur *CachedUserRepository) FindPassword(ctx context.Context, id int64) (string, error) {
	ue, err := ur.dao.FindByID(ctx, id)
	return ue.Password, err
}

func (ur *CachedUserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return ur.dao.UpdatePassword(ctx, id, hash)
}

func (ur *CachedUserRepository) AddAddress(ctx context.Context, uid int64, addr domain.Address) error {
	err := ur.dao.AddAddress(ctx, uid, toAddressEntity(addr))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, uid)
}

func (ur *CachedUserRepository) UpdateAddress(ctx context.Context, uid int64, addr domain.Address) error {
	err := ur.dao.UpdateAddress(ctx, uid, toAddressEntity(addr))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, uid)
}

func (ur *CachedUserRepository) DeleteAddress(ctx context.Context, uid int64, addrID string) error {
	err := ur.dao.DeleteAddress(ctx, uid, addrID)
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, uid)
}

func (ur *CachedUserRepository) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	var (
		eg    errgroup.Group
		us    []dao.User
		total int64
	)
	eg.Go(func() error {
		var err error
		us, err = ur.dao.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = ur.dao.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), total, nil
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Avatar: sqlx.JsonColumn[dao.Image]{
			Val:   dao.Image{PublicID: u.Avatar.PublicID, URL: u.Avatar.URL},
			Valid: !u.Avatar.IsZero(),
		},
		Addresses: sqlx.JsonColumn[[]dao.Address]{
			Val: slice.Map(u.Addresses, func(idx int, src domain.Address) dao.Address {
				return toAddressEntity(src)
			}),
			Valid: len(u.Addresses) > 0,
		},
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		ID:          ue.Id,
		Name:        ue.Name,
		Email:       ue.Email,
		PhoneNumber: ue.PhoneNumber,
		Avatar:      image.Image{PublicID: ue.Avatar.Val.PublicID, URL: ue.Avatar.Val.URL},
		Addresses: slice.Map(ue.Addresses.Val, func(idx int, src dao.Address) domain.Address {
			return domain.Address{
				ID:          src.Id,
				Country:     src.Country,
				City:        src.City,
				Address1:    src.Address1,
				Address2:    src.Address2,
				ZipCode:     src.ZipCode,
				AddressType: src.AddressType,
			}
		}),
		Ctime: ue.Ctime,
		Utime: ue.Utime,
	}
}

func toAddressEntity(a domain.Address) dao.Address {
	return dao.Address{
		Id:          a.ID,
		Country:     a.Country,
		City:        a.City,
		Address1:    a.Address1,
		Address2:    a.Address2,
		ZipCode:     a.ZipCode,
		AddressType: a.AddressType,
	}
}
