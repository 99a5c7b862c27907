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

package errs

import "github.com/ecodeclub/emall/internal/pkg/bizerr"

var (
	SystemError = ErrorCode{Code: 404001, Msg: "系统错误"}
)

var (
	ErrInvalidAmount    = bizerr.Validation(404002, "提现金额必须大于0")
	ErrNoWithdrawMethod = bizerr.Validation(404003, "请先设置提现账户")
	ErrWithdrawNotFound = bizerr.NotFound(404004, "提现申请不存在")
	ErrAlreadyApproved  = bizerr.Validation(404005, "提现申请已经审核通过")
	ErrSaveFailed       = bizerr.Persistence(404006, "提现申请保存失败")
)

type ErrorCode struct {
	Code int
	Msg  string
}
