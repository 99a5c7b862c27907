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

package retry

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/emall/internal/notification/internal/domain"
	"github.com/ecodeclub/emall/internal/notification/internal/service/mail"
)

var ErrOverRetryTimes = errors.New("超过最大重试次数")

type Service struct {
	svc       mail.Service
	retryFunc func() retry.Strategy
}

// NewService 每次发送都通过 fac 拿一个新的重试策略
func NewService(svc mail.Service, fac func() retry.Strategy) *Service {
	return &Service{
		svc:       svc,
		retryFunc: fac,
	}
}

func (s *Service) Send(ctx context.Context, m domain.Mail) error {
	strategy := s.retryFunc()
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		err := s.svc.Send(ctx, m)
		if err == nil {
			return nil
		}
		// 超时或者被调用者取消，没必要继续重试
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return err
		}
		interval, ok := strategy.Next()
		if !ok {
			return errors.Join(ErrOverRetryTimes, err)
		}
		if timer == nil {
			timer = time.NewTimer(interval)
		} else {
			timer.Reset(interval)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}
