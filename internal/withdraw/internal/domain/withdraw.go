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

type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
)

func (s Status) String() string {
	return string(s)
}

// Withdraw 提现申请，创建时已经从余额中扣除
type Withdraw struct {
	ID     int64
	SN     string
	ShopID int64
	Amount int64
	Status Status
	Ctime  int64
	Utime  int64
}
