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

package service

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/url"

	"github.com/ecodeclub/emall/internal/notification/internal/domain"
	"github.com/ecodeclub/emall/internal/notification/internal/service/mail"
	"github.com/ecodeclub/emall/internal/shop"
	"github.com/ecodeclub/emall/internal/user"
)

//go:embed templates/*.html
var templateFS embed.FS

type Config struct {
	// OpsMailbox 运营邮箱，为空就不通知运营
	OpsMailbox string `yaml:"opsMailbox"`
	// ActivationURL 卖家激活页面
	ActivationURL string `yaml:"activationURL"`
}

//go:generate mockgen -source=./service.go -destination=../../mocks/notification.mock.go -package=notificationmocks Service
type Service interface {
	// OrderCreated 通知卖家
	OrderCreated(ctx context.Context, o domain.Order) error
	// OrderCheckout 通知买家和运营
	OrderCheckout(ctx context.Context, o domain.Order) error
	OrderStatusChanged(ctx context.Context, o domain.Order) error
	WithdrawCreated(ctx context.Context, w domain.Withdraw) error
	WithdrawApproved(ctx context.Context, w domain.Withdraw) error
	ProductDeleted(ctx context.Context, p domain.Product) error
	ShopRegistered(ctx context.Context, a domain.Account) error
	UserRegistered(ctx context.Context, a domain.Account) error
	// PasswordUpdated 提醒用户密码被修改
	PasswordUpdated(ctx context.Context, a domain.Account) error
}

type service struct {
	sender  mail.Service
	shopSvc shop.Service
	userSvc user.UserService
	tpl     *template.Template
	cfg     Config
}

func NewService(sender mail.Service, shopSvc shop.Service, userSvc user.UserService, cfg Config) Service {
	return &service{
		sender:  sender,
		shopSvc: shopSvc,
		userSvc: userSvc,
		tpl:     template.Must(template.ParseFS(templateFS, "templates/*.html")),
		cfg:     cfg,
	}
}

type orderData struct {
	Name  string
	Order domain.Order
}

type withdrawData struct {
	Name     string
	Withdraw domain.Withdraw
}

type productData struct {
	Name    string
	Product domain.Product
}

type accountData struct {
	Name string
	Link string
}

func (s *service) OrderCreated(ctx context.Context, o domain.Order) error {
	sh, err := s.shopSvc.FindByID(ctx, o.ShopID)
	if err != nil {
		return fmt.Errorf("查找卖家失败: %w", err)
	}
	return s.send(ctx, sh.Email, "您有新订单 "+o.SN, "order_created.html", orderData{Name: sh.Name, Order: o})
}

func (s *service) OrderCheckout(ctx context.Context, o domain.Order) error {
	u, err := s.userSvc.Profile(ctx, o.BuyerID)
	if err != nil {
		return fmt.Errorf("查找买家失败: %w", err)
	}
	data := orderData{Name: u.Name, Order: o}
	err = s.send(ctx, u.Email, "下单成功", "order_checkout.html", data)
	if s.cfg.OpsMailbox == "" {
		return err
	}
	subject := fmt.Sprintf("新的下单，共 %d 个订单", len(o.IDs))
	return errors.Join(err, s.send(ctx, s.cfg.OpsMailbox, subject, "order_checkout_ops.html", data))
}

func (s *service) OrderStatusChanged(ctx context.Context, o domain.Order) error {
	u, err := s.userSvc.Profile(ctx, o.BuyerID)
	if err != nil {
		return fmt.Errorf("查找买家失败: %w", err)
	}
	subject := fmt.Sprintf("订单 %s 状态更新为 %s", o.SN, o.Status)
	return s.send(ctx, u.Email, subject, "order_status.html", orderData{Name: u.Name, Order: o})
}

func (s *service) WithdrawCreated(ctx context.Context, w domain.Withdraw) error {
	if s.cfg.OpsMailbox == "" {
		return nil
	}
	sh, err := s.shopSvc.FindByID(ctx, w.ShopID)
	if err != nil {
		return fmt.Errorf("查找卖家失败: %w", err)
	}
	return s.send(ctx, s.cfg.OpsMailbox, "新的提现申请 "+w.SN, "withdraw_created.html",
		withdrawData{Name: sh.Name, Withdraw: w})
}

func (s *service) WithdrawApproved(ctx context.Context, w domain.Withdraw) error {
	sh, err := s.shopSvc.FindByID(ctx, w.ShopID)
	if err != nil {
		return fmt.Errorf("查找卖家失败: %w", err)
	}
	return s.send(ctx, sh.Email, "提现已审核通过 "+w.SN, "withdraw_approved.html",
		withdrawData{Name: sh.Name, Withdraw: w})
}

func (s *service) ProductDeleted(ctx context.Context, p domain.Product) error {
	sh, err := s.shopSvc.FindByID(ctx, p.ShopID)
	if err != nil {
		return fmt.Errorf("查找卖家失败: %w", err)
	}
	return s.send(ctx, sh.Email, "商品已删除 "+p.Name, "product_deleted.html",
		productData{Name: sh.Name, Product: p})
}

func (s *service) ShopRegistered(ctx context.Context, a domain.Account) error {
	link := s.cfg.ActivationURL + "?token=" + url.QueryEscape(a.Token)
	return s.send(ctx, a.Email, "激活您的店铺", "shop_activation.html", accountData{Name: a.Name, Link: link})
}

func (s *service) UserRegistered(ctx context.Context, a domain.Account) error {
	return s.send(ctx, a.Email, "欢迎加入 emall", "user_welcome.html", accountData{Name: a.Name})
}

func (s *service) PasswordUpdated(ctx context.Context, a domain.Account) error {
	return s.send(ctx, a.Email, "您的密码已修改", "user_password.html", accountData{Name: a.Name})
}

func (s *service) send(ctx context.Context, to, subject, tpl string, data any) error {
	var buf bytes.Buffer
	if err := s.tpl.ExecuteTemplate(&buf, tpl, data); err != nil {
		return fmt.Errorf("渲染邮件模板 %s 失败: %w", tpl, err)
	}
	return s.sender.Send(ctx, domain.Mail{
		To:      to,
		Subject: subject,
		Body:    buf.Bytes(),
	})
}
