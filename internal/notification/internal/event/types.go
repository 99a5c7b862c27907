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

package event

import "github.com/ecodeclub/emall/internal/notification/internal/domain"

const (
	OrderEventName    = "order_events"
	WithdrawEventName = "withdraw_events"
	ShopEventName     = "shop_events"
	ProductEventName  = "product_events"
	UserEventName     = "user_events"
)

const (
	orderEventTypeCreated       = "created"
	orderEventTypeCheckout      = "checkout"
	orderEventTypeStatusChanged = "status_changed"

	withdrawEventTypeCreated  = "created"
	withdrawEventTypeApproved = "approved"

	shopEventTypeRegistered = "registered"
	userEventTypeRegistered = "registered"
	// userEventTypePasswordUpdated 用户修改了密码
	userEventTypePasswordUpdated = "password_updated"

	productEventTypeDeleted = "deleted"
)

type Address struct {
	Country     string `json:"country"`
	City        string `json:"city"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	ZipCode     string `json:"zipCode"`
	AddressType string `json:"addressType"`
	Phone       string `json:"phone"`
}

type OrderEvent struct {
	Type       string  `json:"type"`
	OrderID    int64   `json:"orderId"`
	OrderSN    string  `json:"orderSn"`
	OrderIDs   []int64 `json:"orderIds,omitempty"`
	BuyerID    int64   `json:"buyerId"`
	ShopID     int64   `json:"shopId"`
	TotalPrice int64   `json:"totalPrice"`
	Status     string  `json:"status"`
	PrevStatus string  `json:"prevStatus,omitempty"`
	Address    Address `json:"address"`
	Ctime      int64   `json:"ctime"`
}

func (evt OrderEvent) toDomain() domain.Order {
	return domain.Order{
		ID:         evt.OrderID,
		SN:         evt.OrderSN,
		IDs:        evt.OrderIDs,
		BuyerID:    evt.BuyerID,
		ShopID:     evt.ShopID,
		TotalPrice: evt.TotalPrice,
		Status:     evt.Status,
		PrevStatus: evt.PrevStatus,
		Address:    domain.Address(evt.Address),
		Ctime:      evt.Ctime,
	}
}

type WithdrawEvent struct {
	Type       string `json:"type"`
	WithdrawID int64  `json:"withdrawId"`
	SN         string `json:"sn"`
	ShopID     int64  `json:"shopId"`
	Amount     int64  `json:"amount"`
	Ctime      int64  `json:"ctime"`
}

func (evt WithdrawEvent) toDomain() domain.Withdraw {
	return domain.Withdraw{
		ID:     evt.WithdrawID,
		SN:     evt.SN,
		ShopID: evt.ShopID,
		Amount: evt.Amount,
		Ctime:  evt.Ctime,
	}
}

type ShopEvent struct {
	Type   string `json:"type"`
	ShopID int64  `json:"shopId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

type ProductEvent struct {
	Type        string `json:"type"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	ShopID      int64  `json:"shopId"`
	Ctime       int64  `json:"ctime"`
}

type UserEvent struct {
	Type   string `json:"type"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
