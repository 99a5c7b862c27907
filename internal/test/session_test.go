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

package test

import (
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionProvider(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx := &gctx.Context{Context: c}
	p := &SessionProvider{}

	_, err := p.Get(ctx)
	assert.Error(t, err)

	_, err = p.NewSession(ctx, 3, map[string]string{"role": "user"}, nil)
	require.NoError(t, err)
	sess, err := p.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), sess.Claims().Uid)

	require.NoError(t, p.UpdateClaims(ctx, session.Claims{Uid: 3, Data: map[string]string{"role": "admin"}}))
	sess, err = p.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Claims().Data["role"])

	require.NoError(t, p.RenewAccessToken(ctx))
	require.NoError(t, p.Destroy(ctx))
	_, err = p.Get(ctx)
	assert.Error(t, err)
}
