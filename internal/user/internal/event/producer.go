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

package event

import (
	"context"

	"github.com/ecodeclub/emall/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const UserEventName = "user_events"

const (
	UserEventTypeRegistered      = "registered"
	UserEventTypePasswordUpdated = "password_updated"
)

type UserEvent struct {
	Type   string `json:"type"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

//go:generate mockgen -source=./producer.go -destination=./mocks/producer.mock.go -package=evtmocks UserEventProducer
type UserEventProducer interface {
	Produce(ctx context.Context, evt UserEvent) error
}

func NewUserEventProducer(q mq.MQ) (UserEventProducer, error) {
	return mqx.NewKeyedProducer[UserEvent](q, UserEventName, func(evt UserEvent) string {
		return evt.Email
	})
}
