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
	SystemError = ErrorCode{Code: 406001, Msg: "系统错误"}
)

var (
	ErrInvalidParam      = bizerr.Validation(406002, "参数错误")
	ErrEmailExists       = bizerr.Validation(406003, "邮箱已注册")
	ErrInvalidCredential = bizerr.Validation(406004, "邮箱或密码错误")
	ErrUserNotFound      = bizerr.NotFound(406005, "用户不存在")
	ErrWrongPassword     = bizerr.Validation(406006, "旧密码错误")
	ErrAddressNotFound   = bizerr.NotFound(406007, "地址不存在")
	ErrAddressTypeExists = bizerr.Validation(406008, "同类型地址已存在")
)

type ErrorCode struct {
	Code int
	Msg  string
}
