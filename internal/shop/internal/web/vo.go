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
	"github.com/ecodeclub/emall/internal/shop/internal/domain"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type RegisterReq struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	ZipCode     string `json:"zipCode"`
	// Avatar data URI
	Avatar string `json:"avatar"`
}

type ActivateReq struct {
	Token string `json:"token"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileReq struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	ZipCode     string `json:"zipCode"`
	Description string `json:"description"`
	Avatar      string `json:"avatar,omitempty"`
}

type WithdrawMethod struct {
	BankName          string `json:"bankName"`
	BankCountry       string `json:"bankCountry"`
	BankSwiftCode     string `json:"bankSwiftCode"`
	BankAccountNumber string `json:"bankAccountNumber"`
	BankHolderName    string `json:"bankHolderName"`
	BankAddress       string `json:"bankAddress"`
}

func (w WithdrawMethod) toDomain() domain.WithdrawMethod {
	return domain.WithdrawMethod(w)
}

type Transaction struct {
	ID         int64  `json:"id"`
	WithdrawID int64  `json:"withdrawId"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Utime      int64  `json:"utime"`
}

type Shop struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	PhoneNumber      string          `json:"phoneNumber"`
	Address          string          `json:"address"`
	ZipCode          string          `json:"zipCode"`
	Description      string          `json:"description"`
	AvatarURL        string          `json:"avatarUrl"`
	Activated        bool            `json:"activated"`
	AvailableBalance int64           `json:"availableBalance"`
	WithdrawMethod   *WithdrawMethod `json:"withdrawMethod,omitempty"`
	Transactions     []Transaction   `json:"transactions,omitempty"`
	Ctime            int64           `json:"ctime"`
}

func newShop(s domain.Shop) Shop {
	res := Shop{
		ID:               s.ID,
		Name:             s.Name,
		Email:            s.Email,
		PhoneNumber:      s.PhoneNumber,
		Address:          s.Address,
		ZipCode:          s.ZipCode,
		Description:      s.Description,
		AvatarURL:        s.Avatar.URL,
		Activated:        s.Status == domain.StatusActive,
		AvailableBalance: s.AvailableBalance,
		Transactions: slice.Map(s.Transactions, func(idx int, src domain.Transaction) Transaction {
			return Transaction(src)
		}),
		Ctime: s.Ctime,
	}
	if !s.WithdrawMethod.IsZero() {
		wm := WithdrawMethod(s.WithdrawMethod)
		res.WithdrawMethod = &wm
	}
	return res
}

// ShopInfo 买家可见的店铺信息，不含余额和提现账户
type ShopInfo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	ZipCode     string `json:"zipCode"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatarUrl"`
	Ctime       int64  `json:"ctime"`
}

func newShopInfo(s domain.Shop) ShopInfo {
	return ShopInfo{
		ID:          s.ID,
		Name:        s.Name,
		PhoneNumber: s.PhoneNumber,
		Address:     s.Address,
		ZipCode:     s.ZipCode,
		Description: s.Description,
		AvatarURL:   s.Avatar.URL,
		Ctime:       s.Ctime,
	}
}

type ShopList struct {
	Total int64  `json:"total"`
	Shops []Shop `json:"shops"`
}

func newShopList(ss []domain.Shop, total int64) ShopList {
	return ShopList{
		Total: total,
		Shops: slice.Map(ss, func(idx int, src domain.Shop) Shop {
			return newShop(src)
		}),
	}
}
