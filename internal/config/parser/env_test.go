// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvKey(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		key string
		exp string
	}{
		{key: "PFX_LOG_LEVEL", exp: "log.level"},
		{key: "PFX_SERVE_BUFFER__LIMIT_READ", exp: "serve.buffer_limit.read"},
		{key: "PFX_ROUTING_PROJECT__PREFIX", exp: "routing.project_prefix"},
	} {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.exp, envKey("PFX_", tc.key))
		})
	}
}

func TestToRealType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, toRealType("10"))
	assert.Equal(t, true, toRealType("true"))
	assert.Equal(t, []any{"a", "b"}, toRealType("[a, b]"))
	assert.Equal(t, "*.github.io", toRealType("*.github.io"))
	assert.Equal(t, "foo", toRealType("foo"))
}
