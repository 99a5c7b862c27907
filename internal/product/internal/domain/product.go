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

package domain

import "github.com/ecodeclub/emall/internal/image"

type Product struct {
	ID          int64
	ShopID      int64
	Name        string
	Description string
	Category    string
	Tags        []string
	// OriginalPrice 单价，单位为分
	OriginalPrice int64
	// DiscountPrice 为 0 表示没有折扣
	DiscountPrice int64
	// Stock 有颜色时等于各颜色库存之和
	Stock   int64
	SoldOut int64
	Images  []image.Image
	Colors  []Color
	Ctime   int64
	Utime   int64
}

func (p Product) HasColors() bool {
	return len(p.Colors) > 0
}

// UnitPrice 实际成交单价
func (p Product) UnitPrice() int64 {
	if p.DiscountPrice != 0 {
		return p.DiscountPrice
	}
	return p.OriginalPrice
}

func (p Product) AllImages() []image.Image {
	res := make([]image.Image, 0, len(p.Images))
	res = append(res, p.Images...)
	for _, c := range p.Colors {
		res = append(res, c.Images...)
	}
	return res
}

// Color 颜色维度的库存
type Color struct {
	Color  string
	Stock  int64
	Images []image.Image
	Index  int
}

// StockDeduction 一次扣减，Color 为空表示商品没有颜色维度
type StockDeduction struct {
	ProductID int64
	Color     string
	Qty       int64
}

type SortBy uint8

const (
	SortByNewest SortBy = iota
	SortByBestSelling
	SortByTopDeals
)

type ListQuery struct {
	Keyword string
	SortBy  SortBy
	Offset  int
	Limit   int
}
