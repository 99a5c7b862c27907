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

package mail

import (
	"context"

	"github.com/ecodeclub/emall/internal/notification/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

// LogService 没有配置邮件服务器的时候使用，只记录日志
type LogService struct {
	logger *elog.Component
}

func NewLogService() *LogService {
	return &LogService{logger: elog.DefaultLogger}
}

func (s *LogService) Send(_ context.Context, m domain.Mail) error {
	s.logger.Info("模拟发送邮件",
		elog.String("to", m.To),
		elog.String("subject", m.Subject))
	return nil
}
