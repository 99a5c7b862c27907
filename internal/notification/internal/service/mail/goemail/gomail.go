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

package goemail

import (
	"context"

	"github.com/ecodeclub/emall/internal/notification/internal/domain"
	"gopkg.in/gomail.v2"
)

// Dialer *gomail.Dialer 实现了这个接口
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Service struct {
	from string
	d    Dialer
}

func NewService(from string, d Dialer) *Service {
	return &Service{
		from: from,
		d:    d,
	}
}

func (s *Service) Send(_ context.Context, m domain.Mail) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/html", string(m.Body))
	return s.d.DialAndSend(msg)
}
