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

type Mail struct {
	To      string
	Subject string
	// Body HTML 格式
	Body []byte
}

type Address struct {
	Country     string
	City        string
	Address1    string
	Address2    string
	ZipCode     string
	AddressType string
	Phone       string
}

type Order struct {
	ID  int64
	SN  string
	IDs []int64

	BuyerID    int64
	ShopID     int64
	TotalPrice int64
	Status     string
	PrevStatus string
	Address    Address
	Ctime      int64
}

type Withdraw struct {
	ID     int64
	SN     string
	ShopID int64
	Amount int64
	Ctime  int64
}

type Product struct {
	ID     int64
	Name   string
	ShopID int64
}

// Account 新注册的用户或者卖家
type Account struct {
	ID    int64
	Name  string
	Email string
	// Token 卖家激活令牌，用户注册时为空
	Token string
}
