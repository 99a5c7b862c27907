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
	"github.com/ecodeclub/emall/internal/order/internal/domain"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type CreateOrderReq struct {
	// RequestID 客户端生成，防止重复提交
	RequestID       string  `json:"requestId"`
	Items           []Item  `json:"items"`
	ShippingAddress Address `json:"shippingAddress"`
	Payment         Payment `json:"payment"`
}

type UpdateStatusReq struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type Item struct {
	ProductID     int64  `json:"productId"`
	ShopID        int64  `json:"shopId"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	Color         string `json:"color,omitempty"`
	Qty           int64  `json:"qty"`
	OriginalPrice int64  `json:"originalPrice"`
	DiscountPrice int64  `json:"discountPrice"`
}

type Address struct {
	Country     string `json:"country"`
	City        string `json:"city"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	ZipCode     string `json:"zipCode"`
	AddressType string `json:"addressType"`
	Phone       string `json:"phone"`
}

type Payment struct {
	ID     string `json:"id,omitempty"`
	Method string `json:"method"`
	Status string `json:"status"`
}

type Order struct {
	ID              int64   `json:"id"`
	SN              string  `json:"sn"`
	BuyerID         int64   `json:"buyerId"`
	ShopID          int64   `json:"shopId"`
	Items           []Item  `json:"items"`
	ShippingAddress Address `json:"shippingAddress"`
	TotalPrice      int64   `json:"totalPrice"`
	Payment         Payment `json:"payment"`
	Status          string  `json:"status"`
	DeliveredAt     int64   `json:"deliveredAt,omitempty"`
	Ctime           int64   `json:"ctime"`
	Utime           int64   `json:"utime"`
}

type OrderList struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

func (req CreateOrderReq) toDomain(buyerID int64) domain.Cart {
	return domain.Cart{
		RequestID: req.RequestID,
		BuyerID:   buyerID,
		Items: slice.Map(req.Items, func(idx int, src Item) domain.Item {
			return domain.Item(src)
		}),
		ShippingAddress: domain.Address(req.ShippingAddress),
		Payment: domain.Payment{
			ID:     req.Payment.ID,
			Method: req.Payment.Method,
			Status: domain.PaymentStatus(req.Payment.Status),
		},
	}
}

func newOrder(o domain.Order) Order {
	return Order{
		ID:      o.ID,
		SN:      o.SN,
		BuyerID: o.BuyerID,
		ShopID:  o.ShopID,
		Items: slice.Map(o.Items, func(idx int, src domain.Item) Item {
			return Item(src)
		}),
		ShippingAddress: Address(o.ShippingAddress),
		TotalPrice:      o.TotalPrice,
		Payment: Payment{
			ID:     o.Payment.ID,
			Method: o.Payment.Method,
			Status: string(o.Payment.Status),
		},
		Status:      o.Status.String(),
		DeliveredAt: o.DeliveredAt,
		Ctime:       o.Ctime,
		Utime:       o.Utime,
	}
}

func newOrderList(os []domain.Order, total int64) OrderList {
	return OrderList{
		Total: total,
		Orders: slice.Map(os, func(idx int, src domain.Order) Order {
			return newOrder(src)
		}),
	}
}
