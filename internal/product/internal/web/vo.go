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
	"github.com/ecodeclub/emall/internal/product/internal/domain"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Keyword string `json:"keyword"`
	// SortBy 0=最新 1=销量 2=折扣价
	SortBy uint8 `json:"sortBy"`
	Page
}

type ListByShopReq struct {
	ShopID int64 `json:"shopId"`
	Page
}

type SaveReq struct {
	ID            int64    `json:"id,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	OriginalPrice int64    `json:"originalPrice"`
	DiscountPrice int64    `json:"discountPrice"`
	Stock         int64    `json:"stock"`
	// Images data URI，更新时为空表示不修改
	Images []string   `json:"images"`
	Colors []ColorReq `json:"colors"`
}

type ColorReq struct {
	Color  string   `json:"color"`
	Stock  int64    `json:"stock"`
	Images []string `json:"images"`
	Index  int      `json:"index"`
}

type UpdateStockReq struct {
	ID     int64        `json:"id"`
	Stock  int64        `json:"stock"`
	Colors []ColorStock `json:"colors"`
}

type ColorStock struct {
	Color string `json:"color"`
	Stock int64  `json:"stock"`
}

type Image struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

type Color struct {
	Color  string  `json:"color"`
	Stock  int64   `json:"stock"`
	Images []Image `json:"images"`
	Index  int     `json:"index"`
}

type Product struct {
	ID            int64    `json:"id"`
	ShopID        int64    `json:"shopId"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags,omitempty"`
	OriginalPrice int64    `json:"originalPrice"`
	DiscountPrice int64    `json:"discountPrice"`
	Stock         int64    `json:"stock"`
	SoldOut       int64    `json:"soldOut"`
	Images        []Image  `json:"images"`
	Colors        []Color  `json:"colors,omitempty"`
	Ctime         int64    `json:"ctime"`
}

type ProductList struct {
	// Total 只有管理后台返回
	Total    int64     `json:"total,omitempty"`
	Products []Product `json:"products"`
}

func newImages(images []image.Image) []Image {
	return slice.Map(images, func(idx int, src image.Image) Image {
		return Image{PublicID: src.PublicID, URL: src.URL}
	})
}

func newProduct(p domain.Product) Product {
	return Product{
		ID:            p.ID,
		ShopID:        p.ShopID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Tags:          p.Tags,
		OriginalPrice: p.OriginalPrice,
		DiscountPrice: p.DiscountPrice,
		Stock:         p.Stock,
		SoldOut:       p.SoldOut,
		Images:        newImages(p.Images),
		Colors: slice.Map(p.Colors, func(idx int, src domain.Color) Color {
			return Color{
				Color:  src.Color,
				Stock:  src.Stock,
				Images: newImages(src.Images),
				Index:  src.Index,
			}
		}),
		Ctime: p.Ctime,
	}
}

func newProductList(ps []domain.Product) ProductList {
	return ProductList{
		Products: slice.Map(ps, func(idx int, src domain.Product) Product {
			return newProduct(src)
		}),
	}
}
