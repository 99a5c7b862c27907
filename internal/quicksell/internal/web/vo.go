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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/image"
	"github.com/ecodeclub/emall/internal/quicksell/internal/domain"
)

type IDReq struct {
	ID int64 `json:"id"`
}

type SaveReq struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Condition   string `json:"condition"`
	Price       int64  `json:"price"`
	// Images base64 或者可访问的 URL，为空时更新沿用旧图片
	Images []string `json:"images"`
}

type Image struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

type Listing struct {
	ID          int64   `json:"id"`
	OwnerID     int64   `json:"ownerId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Condition   string  `json:"condition"`
	Price       int64   `json:"price"`
	Images      []Image `json:"images"`
	Sold        bool    `json:"sold"`
	Ctime       int64   `json:"ctime"`
	Utime       int64   `json:"utime"`
}

type ListingList struct {
	Listings []Listing `json:"listings"`
}

func newListing(l domain.Listing) Listing {
	return Listing{
		ID:          l.ID,
		OwnerID:     l.OwnerID,
		Name:        l.Name,
		Description: l.Description,
		Category:    l.Category,
		Condition:   l.Condition,
		Price:       l.Price,
		Images: slice.Map(l.Images, func(idx int, src image.Image) Image {
			return Image{PublicID: src.PublicID, URL: src.URL}
		}),
		Sold:  l.Sold,
		Ctime: l.Ctime,
		Utime: l.Utime,
	}
}
