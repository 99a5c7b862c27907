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

package bizerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_HTTPStatus(t *testing.T) {
	testCases := []struct {
		name string
		err  *Error
		want int
	}{
		{
			name: "参数错误",
			err:  Validation(1, "参数错误"),
			want: http.StatusBadRequest,
		},
		{
			name: "不存在",
			err:  NotFound(2, "不存在"),
			want: http.StatusNotFound,
		},
		{
			name: "无权限",
			err:  Authorization(3, "无权限"),
			want: http.StatusForbidden,
		},
		{
			name: "库存冲突",
			err:  Inventory(4, "库存不足"),
			want: http.StatusConflict,
		},
		{
			name: "存储失败",
			err:  Persistence(5, "存储失败"),
			want: http.StatusInternalServerError,
		},
		{
			name: "覆盖状态码",
			err:  NotFound(6, "订单不存在").WithStatus(http.StatusBadRequest),
			want: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.HTTPStatus())
		})
	}
}

func TestFrom(t *testing.T) {
	sentinel := Inventory(401001, "颜色不存在")
	wrapped := fmt.Errorf("扣减库存失败: %w", sentinel)

	be, ok := From(wrapped)
	assert.True(t, ok)
	assert.Equal(t, sentinel, be)
	assert.True(t, errors.Is(wrapped, sentinel))
	assert.True(t, IsKind(wrapped, KindInventory))
	assert.False(t, IsKind(wrapped, KindValidation))

	_, ok = From(errors.New("mock error"))
	assert.False(t, ok)
}

func TestWithStatus_KeepsSentinel(t *testing.T) {
	sentinel := NotFound(1, "不存在")
	copied := sentinel.WithStatus(http.StatusBadRequest)
	assert.Equal(t, 0, sentinel.Status)
	assert.Equal(t, http.StatusBadRequest, copied.Status)
	assert.Equal(t, sentinel.Code, copied.Code)
}
