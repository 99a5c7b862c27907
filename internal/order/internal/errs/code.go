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

import (
	"net/http"

	"github.com/ecodeclub/emall/internal/pkg/bizerr"
)

var (
	SystemError = ErrorCode{Code: 401001, Msg: "系统错误"}
)

var (
	ErrInvalidParam       = bizerr.Validation(401002, "参数错误")
	ErrEmptyCart          = bizerr.Validation(401003, "购物车为空")
	ErrInvalidStatus      = bizerr.Validation(401004, "订单状态非法")
	ErrInvalidTransition  = bizerr.Validation(401005, "订单状态不能回退")
	ErrDuplicateRequest   = bizerr.Validation(401006, "请勿重复提交订单")
	ErrOrderNotFound      = bizerr.NotFound(401007, "订单不存在").WithStatus(http.StatusBadRequest)
	ErrPermissionDenied   = bizerr.Authorization(401008, "无权操作该订单")
	ErrSaveFailed         = bizerr.Persistence(401009, "订单保存失败")
	ErrConcurrentModified = bizerr.Persistence(401010, "订单已被修改，请重试")
	ErrSettleFailed       = bizerr.Persistence(401011, "卖家入账失败，请重试")
)

type ErrorCode struct {
	Code int
	Msg  string
}
