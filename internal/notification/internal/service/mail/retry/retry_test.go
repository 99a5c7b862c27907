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
	"testing"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/emall/internal/notification/internal/domain"
	mailmocks "github.com/ecodeclub/emall/internal/notification/internal/service/mail/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Send(t *testing.T) {
	mockErr := errors.New("mock smtp error")
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *mailmocks.MockService
		wantErr error
	}{
		{
			name: "第一次就成功",
			mock: func(ctrl *gomock.Controller) *mailmocks.MockService {
				svc := mailmocks.NewMockService(ctrl)
				svc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
				return svc
			},
		},
		{
			name: "重试后成功",
			mock: func(ctrl *gomock.Controller) *mailmocks.MockService {
				svc := mailmocks.NewMockService(ctrl)
				svc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(mockErr)
				svc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
				return svc
			},
		},
		{
			name: "超过重试次数",
			mock: func(ctrl *gomock.Controller) *mailmocks.MockService {
				svc := mailmocks.NewMockService(ctrl)
				svc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(mockErr).MinTimes(2)
				return svc
			},
			wantErr: ErrOverRetryTimes,
		},
		{
			name: "调用者取消",
			mock: func(ctrl *gomock.Controller) *mailmocks.MockService {
				svc := mailmocks.NewMockService(ctrl)
				svc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(context.Canceled)
				return svc
			},
			wantErr: context.Canceled,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), func() retry.Strategy {
				s, err := retry.NewExponentialBackoffRetryStrategy(time.Millisecond, 5*time.Millisecond, 2)
				require.NoError(t, err)
				return s
			})
			err := svc.Send(context.Background(), domain.Mail{To: "ada@example.com", Subject: "hi"})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
