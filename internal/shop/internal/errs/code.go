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
	SystemError = ErrorCode{Code: 503001, Msg: "系统错误"}
)

var (
	ErrInvalidParam        = bizerr.Validation(503002, "参数错误")
	ErrEmailExists         = bizerr.Validation(503003, "邮箱已被注册")
	ErrInvalidCredential   = bizerr.Validation(503004, "邮箱或密码错误")
	ErrInvalidToken        = bizerr.Validation(503005, "激活链接无效或已过期")
	ErrShopNotActivated    = bizerr.Authorization(503006, "店铺未激活")
	ErrShopNotFound        = bizerr.NotFound(503007, "店铺不存在")
	ErrInsufficientBalance = bizerr.Validation(503008, "可用余额不足")
	ErrInvalidAmount       = bizerr.Validation(503009, "金额必须大于0")
	ErrBalanceNotEmpty     = bizerr.Validation(503010, "店铺还有未提现的余额")
)

type ErrorCode struct {
	Code int
	Msg  string
}
