// Copyright 2026 The pathless Authors
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

package topology

import (
	"strings"

	"github.com/sgex/pathless/internal/allowlist"
)

type options struct {
	prefix     string
	patterns   []string
	components *allowlist.AllowList
	branches   []string
}

type Option func(o *options)

func WithProjectPrefix(prefix string) Option {
	return func(o *options) {
		if p := strings.Trim(strings.TrimSpace(prefix), "/"); len(p) != 0 {
			o.prefix = p
		}
	}
}

func WithHostedPatterns(patterns ...string) Option {
	return func(o *options) {
		if len(patterns) != 0 {
			o.patterns = patterns
		}
	}
}

func WithAllowList(list *allowlist.AllowList) Option {
	return func(o *options) {
		if list != nil {
			o.components = list
		}
	}
}

func WithKnownBranches(branches ...string) Option {
	return func(o *options) {
		o.branches = append(o.branches, branches...)
	}
}
