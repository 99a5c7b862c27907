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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusUnknown Status = iota
	// StatusPending 已注册，邮箱未激活
	StatusPending
	StatusActive
)

type Shop struct {
	ID               int64
	Name             string
	Email            string
	PhoneNumber      string
	Address          string
	ZipCode          string
	Description      string
	Avatar           image.Image
	Status           Status
	AvailableBalance int64
	WithdrawMethod   WithdrawMethod
	Transactions     []Transaction
	Ctime            int64
	Utime            int64
}

// WithdrawMethod 提现的收款账户
type WithdrawMethod struct {
	BankName          string
	BankCountry       string
	BankSwiftCode     string
	BankAccountNumber string
	BankHolderName    string
	BankAddress       string
}

func (w WithdrawMethod) IsZero() bool {
	return w == WithdrawMethod{}
}

const TransactionStatusSucceeded = "succeeded"

// Transaction 已经结清的提现记录，只追加不修改
type Transaction struct {
	ID         int64
	WithdrawID int64
	Amount     int64
	Status     string
	Utime      int64
}
