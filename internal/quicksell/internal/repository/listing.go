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
	"github.com/ecodeclub/emall/internal/quicksell/internal/domain"
	"github.com/ecodeclub/emall/internal/quicksell/internal/repository/dao"
)

var ErrActiveListingExists = dao.ErrActiveListingExists

type ListingRepository interface {
	Create(ctx context.Context, l domain.Listing) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Listing, error)
	FindActiveByOwner(ctx context.Context, ownerID int64) ([]domain.Listing, error)
	Update(ctx context.Context, l domain.Listing) error
	MarkSold(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type listingRepository struct {
	dao dao.ListingDAO
}

func NewListingRepository(d dao.ListingDAO) ListingRepository {
	return &listingRepository{dao: d}
}

func (r *listingRepository) Create(ctx context.Context, l domain.Listing) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(l))
}

func (r *listingRepository) FindByID(ctx context.Context, id int64) (domain.Listing, error) {
	l, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Listing{}, err
	}
	return r.toDomain(l), nil
}

func (r *listingRepository) FindActiveByOwner(ctx context.Context, ownerID int64) ([]domain.Listing, error) {
	ls, err := r.dao.FindActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return slice.Map(ls, func(idx int, src dao.Listing) domain.Listing {
		return r.toDomain(src)
	}), nil
}

func (r *listingRepository) Update(ctx context.Context, l domain.Listing) error {
	return r.dao.Update(ctx, r.toEntity(l))
}

func (r *listingRepository) MarkSold(ctx context.Context, id int64) error {
	return r.dao.MarkSold(ctx, id)
}

func (r *listingRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *listingRepository) toEntity(l domain.Listing) dao.Listing {
	return dao.Listing{
		Id:          l.ID,
		OwnerId:     l.OwnerID,
		Name:        l.Name,
		Description: l.Description,
		Category:    l.Category,
		Condition:   l.Condition,
		Price:       l.Price,
		Images: sqlx.JsonColumn[[]dao.Image]{
			Val: slice.Map(l.Images, func(idx int, src image.Image) dao.Image {
				return dao.Image{PublicID: src.PublicID, URL: src.URL}
			}),
			Valid: len(l.Images) > 0,
		},
		Sold: l.Sold,
	}
}

func (r *listingRepository) toDomain(l dao.Listing) domain.Listing {
	return domain.Listing{
		ID:          l.Id,
		OwnerID:     l.OwnerId,
		Name:        l.Name,
		Description: l.Description,
		Category:    l.Category,
		Condition:   l.Condition,
		Price:       l.Price,
		Images: slice.Map(l.Images.Val, func(idx int, src dao.Image) image.Image {
			return image.Image{PublicID: src.PublicID, URL: src.URL}
		}),
		Sold:  l.Sold,
		Ctime: l.Ctime,
		Utime: l.Utime,
	}
}
