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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/emall/internal/pkg/bizerr"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var systemErrorResult = ginx.Result{Code: 500001, Msg: "系统错误"}

func TestRender(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testCases := []struct {
		name     string
		err      error
		wantCode int
		wantResp ginx.Result
	}{
		{
			name:     "参数错误",
			err:      fmt.Errorf("创建失败: %w", bizerr.Validation(401001, "购物车为空")),
			wantCode: http.StatusBadRequest,
			wantResp: ginx.Result{Code: 401001, Msg: "购物车为空"},
		},
		{
			name:     "订单不存在返回400",
			err:      bizerr.NotFound(401002, "订单不存在").WithStatus(http.StatusBadRequest),
			wantCode: http.StatusBadRequest,
			wantResp: ginx.Result{Code: 401002, Msg: "订单不存在"},
		},
		{
			name:     "库存不足",
			err:      bizerr.Inventory(402001, "库存不足"),
			wantCode: http.StatusConflict,
			wantResp: ginx.Result{Code: 402001, Msg: "库存不足"},
		},
		{
			name:     "未知错误",
			err:      errors.New("mock db error"),
			wantCode: http.StatusInternalServerError,
			wantResp: systemErrorResult,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := gin.New()
			server.POST("/render", ginx.W(func(ctx *ginx.Context) (ginx.Result, error) {
				return Render(ctx, systemErrorResult, tc.err)
			}))
			req := httptest.NewRequest(http.MethodPost, "/render", nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			var res ginx.Result
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
			assert.Equal(t, tc.wantResp.Code, res.Code)
			assert.Equal(t, tc.wantResp.Msg, res.Msg)
		})
	}
}

func TestCreated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.POST("/created", ginx.W(func(ctx *ginx.Context) (ginx.Result, error) {
		return Created(ctx, 123)
	}))
	req := httptest.NewRequest(http.MethodPost, "/created", nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusCreated, recorder.Code)
	var res ginx.Result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	assert.Equal(t, float64(123), res.Data)
}
