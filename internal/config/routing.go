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

package config

type RoutingConfig struct {
	ProjectPrefix  string   `koanf:"project_prefix"  validate:"required,excludesall=/?#&"`
	HostedHosts    []string `koanf:"hosted_hosts"    validate:"required,gt=0,dive,required"`
	Components     []string `koanf:"components"      validate:"dive,required,kebabcase"`
	ComponentsFile string   `koanf:"components_file"`
	KnownBranches  []string `koanf:"known_branches"  validate:"dive,required"`
	DefaultBranch  string   `koanf:"default_branch"  validate:"required"`
}
