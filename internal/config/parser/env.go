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
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/sgex/pathless/internal/pathless"
	"github.com/sgex/pathless/internal/x/errorchain"
	"github.com/sgex/pathless/internal/x/stringx"
)

const literalUnderscore = `\:\`

// toRealType lets the yaml parser guess the type of the value, so lists like "[a, b]" and
// numbers are taken over properly.
func toRealType(val string) any {
	var parsed map[string]any

	if err := yaml.Unmarshal(stringx.ToBytes("val: "+val), &parsed); err != nil {
		return val
	}

	return parsed["val"]
}

// envKey converts e.g. SERVE_BUFFER__LIMIT_READ into serve.buffer_limit.read. A single underscore
// separates the hierarchy levels, a double one stands for a literal underscore.
func envKey(prefix, key string) string {
	tmp := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, prefix)), "__", literalUnderscore)
	tmp = strings.ReplaceAll(tmp, "_", ".")

	return strings.ReplaceAll(tmp, literalUnderscore, "_")
}

func loadEnv(parser *koanf.Koanf, prefix string) error {
	provider := env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			return envKey(prefix, key), toRealType(val)
		},
	})

	if err := parser.Load(provider, nil); err != nil {
		return errorchain.NewWithMessage(pathless.ErrConfiguration,
			"failed to parse environment variables to config").CausedBy(err)
	}

	return nil
}
