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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const snLength = 32

type Generator struct {
	now  func() time.Time
	uuid func() string
}

func NewGeneratorWith(now func() time.Time, uuid func() string) *Generator {
	return &Generator{now: now, uuid: uuid}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, shortuuid.New)
}

// Generate 业务前缀 + 毫秒时间戳 + id 后四位 + uuid，截断为 32 位
func (g *Generator) Generate(prefix string, id int64) string {
	if id < 0 {
		id = -id
	}
	sn := fmt.Sprintf("%s%d%04d%s", prefix, g.now().UnixMilli(), id%10000, g.uuid())
	if len(sn) > snLength {
		return sn[:snLength]
	}
	return sn
}
