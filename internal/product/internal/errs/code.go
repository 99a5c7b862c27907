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
	"errors"

	"github.com/ecodeclub/emall/internal/pkg/bizerr"
)

var (
	SystemError = ErrorCode{Code: 402001, Msg: "系统错误"}
)

var (
	ErrInvalidParam     = bizerr.Validation(402002, "参数错误")
	ErrProductNotFound  = bizerr.NotFound(402003, "商品不存在")
	ErrPermissionDenied = bizerr.Authorization(402004, "无权操作该商品")

	ErrColorNotFound      = bizerr.Inventory(402005, "商品颜色不存在")
	ErrInsufficientStock  = bizerr.Inventory(402006, "库存不足")
	ErrProductUnavailable = bizerr.Inventory(402007, "商品不存在或已删除")
)

// ErrStockAlreadyApplied 同一个业务键的扣减已经生效过
var ErrStockAlreadyApplied = errors.New("库存已扣减")

type ErrorCode struct {
	Code int
	Msg  string
}
