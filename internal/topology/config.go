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
	"github.com/sgex/pathless/internal/allowlist"
	"github.com/sgex/pathless/internal/config"
)

// LoadAllowList returns the allow list from routing.components_file if set, from
// routing.components otherwise.
func LoadAllowList(conf config.RoutingConfig) (*allowlist.AllowList, error) {
	if len(conf.ComponentsFile) != 0 {
		return allowlist.Load(conf.ComponentsFile)
	}

	return allowlist.New(conf.Components...)
}

func FromConfig(conf config.RoutingConfig) (*Classifier, error) {
	list, err := LoadAllowList(conf)
	if err != nil {
		return nil, err
	}

	return New(
		WithProjectPrefix(conf.ProjectPrefix),
		WithHostedPatterns(conf.HostedHosts...),
		WithAllowList(list),
		WithKnownBranches(conf.KnownBranches...),
	)
}
