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
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/sgex/pathless/internal/pathless"
	"github.com/sgex/pathless/internal/x/errorchain"
)

type ConfigLoader interface {
	Load(config any) error
}

// New creates a loader which fills a configuration struct from, in ascending precedence,
// the values already present in the struct, the YAML config file, environment variables and
// explicit overrides.
func New(opts ...Option) ConfigLoader {
	loader := &configLoader{}

	for _, opt := range opts {
		opt(&loader.o)
	}

	return loader
}

type configLoader struct {
	o opts
}

func (c *configLoader) Load(config any) error {
	if len(c.o.configFile) != 0 {
		if _, err := os.Stat(c.o.configFile); err != nil {
			return errorchain.NewWithMessagef(pathless.ErrConfiguration,
				"config file %s is not accessible", c.o.configFile).CausedBy(err)
		}

		if c.o.validate != nil {
			if err := c.o.validate(c.o.configFile); err != nil {
				return err
			}
		}
	}

	parser, err := koanfFromStruct(config)
	if err != nil {
		return err
	}

	if len(c.o.configFile) != 0 {
		if err = loadYaml(parser, c.o.configFile); err != nil {
			return err
		}
	}

	if len(c.o.envPrefix) != 0 {
		if err = loadEnv(parser, c.o.envPrefix); err != nil {
			return err
		}
	}

	if len(c.o.overrides) != 0 {
		if err = parser.Load(confmap.Provider(c.o.overrides, "."), nil); err != nil {
			return errorchain.NewWithMessage(pathless.ErrConfiguration, "failed to apply overrides").
				CausedBy(err)
		}
	}

	if err = parser.UnmarshalWithConf("", config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(c.o.decodeHooks...),
			Metadata:         nil,
			Result:           config,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return errorchain.NewWithMessage(pathless.ErrConfiguration, "failed to decode configuration").
			CausedBy(err)
	}

	return nil
}
