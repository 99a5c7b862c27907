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

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/ecodeclub/emall/internal/image/internal/domain"
)

//go:generate mockgen -source=./storage.go -destination=./mocks/storage.mock.go -package=svcmocks Storage
type Storage interface {
	// Upload data 为 data URI 或者可访问的 URL
	Upload(ctx context.Context, data, folder string) (domain.Image, error)
	Destroy(ctx context.Context, publicID string) error
}

type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStorage(cld *cloudinary.Cloudinary) Storage {
	return &CloudinaryStorage{cld: cld}
}

func (c *CloudinaryStorage) Upload(ctx context.Context, data, folder string) (domain.Image, error) {
	res, err := c.cld.Upload.Upload(ctx, data, uploader.UploadParams{Folder: folder})
	if err != nil {
		return domain.Image{}, err
	}
	if res.Error.Message != "" {
		return domain.Image{}, fmt.Errorf("上传图片失败: %s", res.Error.Message)
	}
	return domain.Image{PublicID: res.PublicID, URL: res.SecureURL}, nil
}

func (c *CloudinaryStorage) Destroy(ctx context.Context, publicID string) error {
	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if res.Error.Message != "" {
		return errors.New(res.Error.Message)
	}
	return nil
}
