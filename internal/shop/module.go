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

package shop

import (
	"github.com/ecodeclub/emall/internal/shop/internal/domain"
	"github.com/ecodeclub/emall/internal/shop/internal/errs"
	"github.com/ecodeclub/emall/internal/shop/internal/service"
	"github.com/ecodeclub/emall/internal/shop/internal/web"
)

type (
	Handler        = web.Handler
	AdminHandler   = web.AdminHandler
	Service        = service.Service
	Shop           = domain.Shop
	Transaction    = domain.Transaction
	WithdrawMethod = domain.WithdrawMethod
)

const TransactionStatusSucceeded = domain.TransactionStatusSucceeded

var (
	ErrInsufficientBalance = errs.ErrInsufficientBalance
	ErrShopNotFound        = errs.ErrShopNotFound
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
