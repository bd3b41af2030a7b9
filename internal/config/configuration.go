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

package config

import (
	"github.com/sgex/pathless/internal/config/parser"
	"github.com/sgex/pathless/internal/pathless"
	"github.com/sgex/pathless/internal/x/errorchain"
)

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type Validator interface {
	ValidateStruct(s any) error
}

type Configuration struct {
	Log     LoggingConfig `koanf:"log"`
	Routing RoutingConfig `koanf:"routing"`
	Serve   ServeConfig   `koanf:"serve"`
	Metrics MetricsConfig `koanf:"metrics"`
	Build   BuildConfig   `koanf:"build"`
}

// NewConfiguration loads the configuration. Values given in overrides use "." separated keys and
// take precedence over the config file and the environment.
func NewConfiguration(
	envPrefix EnvVarPrefix,
	configFile ConfigurationPath,
	validator Validator,
	overrides map[string]any,
) (*Configuration, error) {
	result := defaultConfig()

	opts := []parser.Option{
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(StringToByteSizeHookFunc()),
		parser.WithDecodeHookFunc(stringToDurationHookFunc()),
		parser.WithDecodeHookFunc(stringToSliceHookFunc()),
		parser.WithConfigFile(string(configFile)),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithConfigValidator(ValidateConfigSchemaFile),
		parser.WithOverrides(overrides),
	}

	if err := parser.New(opts...).Load(&result); err != nil {
		return nil, err
	}

	if err := validator.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(pathless.ErrConfiguration, "invalid configuration").CausedBy(err)
	}

	return &result, nil
}
