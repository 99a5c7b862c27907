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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/emall/internal/user/internal/domain"
	"github.com/ecodeclub/emall/internal/user/internal/errs"
	"github.com/ecodeclub/emall/internal/user/internal/event"
	"github.com/ecodeclub/emall/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Admins 配置里的管理员邮箱
type Admins []string

//go:generate mockgen -source=./user.go -destination=../../mocks/user.mock.go -package=usermocks UserService
type UserService interface {
	Register(ctx context.Context, u domain.User, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// UpdateProfile 不能修改邮箱
	UpdateProfile(ctx context.Context, u domain.User) error
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
	// UpdatePassword 旧密码不对返回 errs.ErrWrongPassword
	UpdatePassword(ctx context.Context, id int64, oldPassword, newPassword string) error
	// SaveAddress ID 为空时新增，返回最新的用户信息
	SaveAddress(ctx context.Context, uid int64, addr domain.Address) (domain.User, error)
	DeleteAddress(ctx context.Context, uid int64, addrID string) (domain.User, error)
}

type userService struct {
	repo     repository.UserRepository
	producer event.UserEventProducer
	admins   map[string]struct{}
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, producer event.UserEventProducer, admins Admins) UserService {
	set := make(map[string]struct{}, len(admins))
	for _, email := range admins {
		set[normalizeEmail(email)] = struct{}{}
	}
	return &userService{
		repo:     repo,
		producer: producer,
		admins:   set,
		logger:   elog.DefaultLogger,
	}
}

func (s *userService) Register(ctx context.Context, u domain.User, password string) (domain.User, error) {
	u.Email = normalizeEmail(u.Email)
	if u.Name == "" || u.Email == "" || len(password) < 6 {
		return domain.User{}, errs.ErrInvalidParam
	}
	hash, err := hashPassword(password)
	if err != nil {
		return domain.User{}, err
	}
	u.ID, err = s.repo.Create(ctx, u, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUserDuplicate) {
			return domain.User{}, errs.ErrEmailExists
		}
		return domain.User{}, fmt.Errorf("创建用户失败: %w", err)
	}
	s.produce(ctx, event.UserEventTypeRegistered, u)
	return s.withRole(u), nil
}

func (s *userService) produce(ctx context.Context, typ string, u domain.User) {
	err := s.producer.Produce(ctx, event.UserEvent{
		Type:   typ,
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
	})
	if err != nil {
		s.logger.Error("发送用户事件失败",
			elog.String("type", typ),
			elog.Int64("uid", u.ID),
			elog.FieldErr(err))
	}
}

func (s *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, hash, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, errs.ErrInvalidCredential
		}
		return domain.User{}, fmt.Errorf("查找用户失败: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return domain.User{}, errs.ErrInvalidCredential
	}
	return s.withRole(u), nil
}

func (s *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, s.wrapNotFound(err, "查找用户失败")
	}
	return s.withRole(u), nil
}

func (s *userService) UpdateProfile(ctx context.Context, u domain.User) error {
	if u.ID <= 0 {
		return errs.ErrInvalidParam
	}
	u.Email = ""
	return s.wrapNotFound(s.repo.Update(ctx, u), "更新用户失败")
}

func (s *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	us, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	for i := range us {
		us[i] = s.withRole(us[i])
	}
	return us, total, nil
}

func (s *userService) UpdatePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return errs.ErrInvalidParam
	}
	old, err := s.repo.FindPassword(ctx, id)
	if err != nil {
		return s.wrapNotFound(err, "查找用户失败")
	}
	if bcrypt.CompareHashAndPassword([]byte(old), []byte(oldPassword)) != nil {
		return errs.ErrWrongPassword
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	if err = s.repo.UpdatePassword(ctx, id, hash); err != nil {
		return s.wrapNotFound(err, "修改密码失败")
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("查找用户失败，没有发送密码修改通知",
			elog.Int64("uid", id),
			elog.FieldErr(err))
		return nil
	}
	s.produce(ctx, event.UserEventTypePasswordUpdated, u)
	return nil
}

func (s *userService) SaveAddress(ctx context.Context, uid int64, addr domain.Address) (domain.User, error) {
	if addr.AddressType == "" || addr.Country == "" || addr.City == "" || addr.Address1 == "" {
		return domain.User{}, errs.ErrInvalidParam
	}
	var err error
	if addr.ID == "" {
		addr.ID = shortuuid.New()
		err = s.repo.AddAddress(ctx, uid, addr)
	} else {
		err = s.repo.UpdateAddress(ctx, uid, addr)
	}
	if err != nil {
		return domain.User{}, s.wrapAddressErr(err, "保存地址失败")
	}
	return s.Profile(ctx, uid)
}

func (s *userService) DeleteAddress(ctx context.Context, uid int64, addrID string) (domain.User, error) {
	if addrID == "" {
		return domain.User{}, errs.ErrInvalidParam
	}
	if err := s.repo.DeleteAddress(ctx, uid, addrID); err != nil {
		return domain.User{}, s.wrapAddressErr(err, "删除地址失败")
	}
	return s.Profile(ctx, uid)
}

func (s *userService) wrapAddressErr(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrAddressNotFound):
		return errs.ErrAddressNotFound
	case errors.Is(err, repository.ErrAddressTypeExists):
		return errs.ErrAddressTypeExists
	default:
		return s.wrapNotFound(err, msg)
	}
}

func (s *userService) withRole(u domain.User) domain.User {
	u.Role = domain.RoleUser
	if _, ok := s.admins[u.Email]; ok {
		u.Role = domain.RoleAdmin
	}
	return u
}

func (s *userService) wrapNotFound(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("加密密码失败: %w", err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
