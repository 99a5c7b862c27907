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
	"github.com/ecodeclub/emall/internal/withdraw/internal/domain"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type CreateReq struct {
	// Amount 单位为分
	Amount int64 `json:"amount"`
}

type Withdraw struct {
	ID     int64  `json:"id"`
	SN     string `json:"sn"`
	ShopID int64  `json:"shopId"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
	Ctime  int64  `json:"ctime"`
	Utime  int64  `json:"utime"`
}

type WithdrawList struct {
	Total     int64      `json:"total"`
	Withdraws []Withdraw `json:"withdraws"`
}

func newWithdraw(w domain.Withdraw) Withdraw {
	return Withdraw{
		ID:     w.ID,
		SN:     w.SN,
		ShopID: w.ShopID,
		Amount: w.Amount,
		Status: w.Status.String(),
		Ctime:  w.Ctime,
		Utime:  w.Utime,
	}
}

func newWithdrawList(ws []domain.Withdraw, total int64) WithdrawList {
	return WithdrawList{
		Total: total,
		Withdraws: slice.Map(ws, func(idx int, src domain.Withdraw) Withdraw {
			return newWithdraw(src)
		}),
	}
}
