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

	"github.com/ecodeclub/emall/internal/image/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// Service 图片服务
// 上传和删除都是尽力而为，失败只记录日志，不影响主流程
//
//go:generate mockgen -source=./service.go -destination=../../mocks/image.mock.go -package=imagemocks Service
type Service interface {
	// UploadAll 并发上传，返回成功上传的图片，顺序与入参一致
	// 一张都没有成功时返回占位图
	UploadAll(ctx context.Context, data []string, folder string) []domain.Image
	// DeleteAll 删除图片，忽略占位图
	DeleteAll(ctx context.Context, images []domain.Image)
	Placeholder() domain.Image
}

type service struct {
	storage     Storage
	placeholder domain.Image
	logger      *elog.Component
}

func NewService(storage Storage, placeholder domain.Image) Service {
	return &service{
		storage:     storage,
		placeholder: placeholder,
		logger:      elog.DefaultLogger,
	}
}

func (s *service) UploadAll(ctx context.Context, data []string, folder string) []domain.Image {
	images := make([]domain.Image, len(data))
	var eg errgroup.Group
	for i := range data {
		i := i
		eg.Go(func() error {
			img, err := s.storage.Upload(ctx, data[i], folder)
			if err != nil {
				s.logger.Error("上传图片失败",
					elog.String("folder", folder),
					elog.Int64("index", int64(i)),
					elog.FieldErr(err))
				return nil
			}
			images[i] = img
			return nil
		})
	}
	_ = eg.Wait()
	res := make([]domain.Image, 0, len(images))
	for _, img := range images {
		if !img.IsZero() {
			res = append(res, img)
		}
	}
	if len(res) == 0 {
		return []domain.Image{s.placeholder}
	}
	return res
}

func (s *service) DeleteAll(ctx context.Context, images []domain.Image) {
	var eg errgroup.Group
	for _, img := range images {
		if img.PublicID == "" || img.PublicID == s.placeholder.PublicID {
			continue
		}
		publicID := img.PublicID
		eg.Go(func() error {
			if err := s.storage.Destroy(ctx, publicID); err != nil {
				s.logger.Error("删除图片失败",
					elog.String("publicID", publicID),
					elog.FieldErr(err))
			}
			return nil
		})
	}
	_ = eg.Wait()
}

func (s *service) Placeholder() domain.Image {
	return s.placeholder
}
