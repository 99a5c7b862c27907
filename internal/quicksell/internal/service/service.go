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
	"time"

	"github.com/ecodeclub/emall/internal/image"
	"github.com/ecodeclub/emall/internal/quicksell/internal/domain"
	"github.com/ecodeclub/emall/internal/quicksell/internal/errs"
	"github.com/ecodeclub/emall/internal/quicksell/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/quicksell.mock.go -package=quicksellmocks Service
type Service interface {
	// Create 已有在售闲置时返回 errs.ErrActiveListingExists
	Create(ctx context.Context, l domain.Listing) (domain.Listing, error)
	// ListMine 只返回在售的
	ListMine(ctx context.Context, ownerID int64) ([]domain.Listing, error)
	Sell(ctx context.Context, ownerID, id int64) (domain.Listing, error)
	// Update 有新图片时整体替换，旧图片删除
	Update(ctx context.Context, l domain.Listing) (domain.Listing, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

type service struct {
	repo     repository.ListingRepository
	imageSvc image.Service
	logger   *elog.Component
}

func NewService(repo repository.ListingRepository, imageSvc image.Service) Service {
	return &service{
		repo:     repo,
		imageSvc: imageSvc,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, l domain.Listing) (domain.Listing, error) {
	if err := validate(l); err != nil {
		return domain.Listing{}, err
	}
	if len(l.Images) == 0 {
		l.Images = []image.Image{s.imageSvc.Placeholder()}
	}
	id, err := s.repo.Create(ctx, l)
	if err != nil {
		// 已经上传的图片没人用了
		s.imageSvc.DeleteAll(ctx, l.Images)
		if errors.Is(err, repository.ErrActiveListingExists) {
			return domain.Listing{}, errs.ErrActiveListingExists
		}
		return domain.Listing{}, fmt.Errorf("创建闲置失败: %w", err)
	}
	l.ID = id
	l.Sold = false
	l.Ctime = time.Now().UnixMilli()
	l.Utime = l.Ctime
	return l, nil
}

func validate(l domain.Listing) error {
	if l.OwnerID <= 0 || l.Name == "" || l.Category == "" || l.Condition == "" || l.Price < 0 {
		return errs.ErrInvalidParam
	}
	return nil
}

func (s *service) ListMine(ctx context.Context, ownerID int64) ([]domain.Listing, error) {
	return s.repo.FindActiveByOwner(ctx, ownerID)
}

func (s *service) Sell(ctx context.Context, ownerID, id int64) (domain.Listing, error) {
	l, err := s.findOwned(ctx, ownerID, id)
	if err != nil {
		return domain.Listing{}, err
	}
	if l.Sold {
		return l, nil
	}
	if err = s.repo.MarkSold(ctx, id); err != nil {
		return domain.Listing{}, s.wrapNotFound(err, "标记售出失败")
	}
	l.Sold = true
	l.Utime = time.Now().UnixMilli()
	return l, nil
}

func (s *service) Update(ctx context.Context, l domain.Listing) (domain.Listing, error) {
	if err := validate(l); err != nil {
		return domain.Listing{}, err
	}
	old, err := s.findOwned(ctx, l.OwnerID, l.ID)
	if err != nil {
		return domain.Listing{}, err
	}
	replaced := len(l.Images) > 0
	if !replaced {
		l.Images = old.Images
	}
	if err = s.repo.Update(ctx, l); err != nil {
		if replaced {
			s.imageSvc.DeleteAll(ctx, l.Images)
		}
		return domain.Listing{}, s.wrapNotFound(err, "更新闲置失败")
	}
	if replaced {
		s.imageSvc.DeleteAll(ctx, old.Images)
	}
	l.Sold = old.Sold
	l.Ctime = old.Ctime
	l.Utime = time.Now().UnixMilli()
	return l, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id int64) error {
	l, err := s.findOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除闲置失败: %w", err)
	}
	s.imageSvc.DeleteAll(ctx, l.Images)
	return nil
}

func (s *service) findOwned(ctx context.Context, ownerID, id int64) (domain.Listing, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Listing{}, s.wrapNotFound(err, "查找闲置失败")
	}
	if l.OwnerID != ownerID {
		return domain.Listing{}, errs.ErrPermissionDenied
	}
	return l, nil
}

func (s *service) wrapNotFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrListingNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
