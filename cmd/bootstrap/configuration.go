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

// Package bootstrap loads what every command needs before doing its actual work.
package bootstrap

import (
	"github.com/spf13/cobra"

	"github.com/sgex/pathless/cmd/flags"
	"github.com/sgex/pathless/internal/config"
	"github.com/sgex/pathless/internal/validation"
)

// Configuration loads the configuration referenced by the global flags. Overrides use "." separated
// keys and win over the file and the environment.
func Configuration(cmd *cobra.Command, overrides map[string]any) (*config.Configuration, *validation.Validator, error) {
	configPath, _ := cmd.Flags().GetString(flags.Config)
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)

	validator, err := validation.NewDefaultValidator()
	if err != nil {
		return nil, nil, err
	}

	conf, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
		validator,
		overrides,
	)
	if err != nil {
		return nil, nil, err
	}

	return conf, validator, nil
}

// StringOverrides maps the given flags, if set on the command line, to configuration keys.
func StringOverrides(cmd *cobra.Command, keys map[string]string) map[string]any {
	overrides := make(map[string]any)

	for flagName, key := range keys {
		if !cmd.Flags().Changed(flagName) {
			continue
		}

		if value, err := cmd.Flags().GetString(flagName); err == nil {
			overrides[key] = value
		}
	}

	return overrides
}
