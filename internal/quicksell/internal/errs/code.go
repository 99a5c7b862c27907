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
	SystemError = ErrorCode{Code: 405001, Msg: "系统错误"}
)

var (
	ErrInvalidParam        = bizerr.Validation(405002, "参数错误")
	ErrActiveListingExists = bizerr.Validation(405003, "同时只能有一个在售的闲置")
	ErrListingNotFound     = bizerr.NotFound(405004, "闲置不存在")
	ErrPermissionDenied    = bizerr.Authorization(405005, "无权操作该闲置")
)

type ErrorCode struct {
	Code int
	Msg  string
}
