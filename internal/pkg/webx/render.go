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

package webx

import (
	"net/http"

	"github.com/ecodeclub/emall/internal/pkg/bizerr"
	"github.com/ecodeclub/ginx"
	"github.com/gotomicro/ego/core/elog"
)

// Render 业务错误按照自身状态码写回，其余错误交给 ginx 按系统错误处理
func Render(ctx *ginx.Context, systemError ginx.Result, err error) (ginx.Result, error) {
	be, ok := bizerr.From(err)
	if !ok {
		return systemError, err
	}
	elog.DefaultLogger.Warn("业务错误",
		elog.String("path", ctx.Request.URL.Path),
		elog.String("kind", be.Kind.String()),
		elog.FieldErr(err))
	ctx.JSON(be.HTTPStatus(), ginx.Result{Code: be.Code, Msg: be.Msg})
	return ginx.Result{}, ginx.ErrNoResponse
}

// Created 201
func Created(ctx *ginx.Context, data any) (ginx.Result, error) {
	ctx.JSON(http.StatusCreated, ginx.Result{Msg: "OK", Data: data})
	return ginx.Result{}, ginx.ErrNoResponse
}
