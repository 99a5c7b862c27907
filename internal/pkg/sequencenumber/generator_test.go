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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_Generate(t *testing.T) {
	g := NewGeneratorWith(func() time.Time {
		return time.UnixMilli(1234554320123)
	}, func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })

	testCases := []struct {
		name   string
		prefix string
		id     int64
		want   string
	}{
		{
			name:   "订单号补零",
			prefix: "O",
			id:     1,
			want:   "O12345543201230001nUfojcH2M5j2j3",
		},
		{
			name:   "只取后四位",
			prefix: "W",
			id:     123456789,
			want:   "W12345543201236789nUfojcH2M5j2j3",
		},
		{
			name:   "负数",
			prefix: "O",
			id:     -42,
			want:   "O12345543201230042nUfojcH2M5j2j3",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sn := g.Generate(tc.prefix, tc.id)
			assert.Equal(t, tc.want, sn)
			assert.Equal(t, snLength, len(sn))
		})
	}
}

func TestNewGenerator(t *testing.T) {
	g := NewGenerator()
	a, b := g.Generate("O", 6789), g.Generate("O", 6789)
	assert.Len(t, a, snLength)
	assert.NotEqual(t, a, b)
}
