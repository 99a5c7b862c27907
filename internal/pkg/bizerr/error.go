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
)

// Kind 业务错误分类
type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindAuthorization
	KindInventory
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindNotFound:
		return "NotFoundError"
	case KindAuthorization:
		return "AuthorizationError"
	case KindInventory:
		return "InventoryError"
	case KindPersistence:
		return "PersistenceError"
	default:
		return "UnknownError"
	}
}

// HTTPStatus 分类默认对应的 HTTP 状态码
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		return http.StatusForbidden
	case KindInventory:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error 可以直接返回给调用方的业务错误
// Status 为 0 时使用 Kind 默认的状态码
type Error struct {
	Kind   Kind
	Status int
	Code   int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s(%d): %s", e.Kind, e.Code, e.Msg)
}

func (e *Error) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	return e.Kind.HTTPStatus()
}

// WithStatus 复制一份并覆盖 HTTP 状态码
func (e *Error) WithStatus(status int) *Error {
	res := *e
	res.Status = status
	return &res
}

func New(kind Kind, code int, msg string) *Error {
	return &Error{Kind: kind, Code: code, Msg: msg}
}

func Validation(code int, msg string) *Error {
	return New(KindValidation, code, msg)
}

func NotFound(code int, msg string) *Error {
	return New(KindNotFound, code, msg)
}

func Authorization(code int, msg string) *Error {
	return New(KindAuthorization, code, msg)
}

func Inventory(code int, msg string) *Error {
	return New(KindInventory, code, msg)
}

func Persistence(code int, msg string) *Error {
	return New(KindPersistence, code, msg)
}

// From 从错误链中取出业务错误
func From(err error) (*Error, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// IsKind 判断错误链上是否有指定分类的业务错误
func IsKind(err error, kind Kind) bool {
	be, ok := From(err)
	return ok && be.Kind == kind
}
