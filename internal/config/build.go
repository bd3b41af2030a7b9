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

type BuildConfig struct {
	Command         []string `koanf:"command"          validate:"required,gt=0,dive,required"`
	WorkDir         string   `koanf:"work_dir"`
	EntryFile       string   `koanf:"entry_file"       validate:"required"`
	ManifestFile    string   `koanf:"manifest_file"    validate:"required"`
	OutputDir       string   `koanf:"output_dir"`
	LandingTemplate string   `koanf:"landing_template"`
}
