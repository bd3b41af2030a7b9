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
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"

	"github.com/sgex/pathless/internal/allowlist"
)

const (
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 2 * time.Minute
	defaultBufferSize   = 4 * bytesize.KB

	defaultHostPort    = 4000
	defaultMetricsPort = 9000
)

func defaultConfig() Configuration {
	return Configuration{
		Log: LoggingConfig{
			Level:  zerolog.InfoLevel,
			Format: LogTextFormat,
		},
		Routing: RoutingConfig{
			ProjectPrefix: "sgex",
			HostedHosts:   []string{"*.github.io"},
			Components:    allowlist.DefaultNames(),
			KnownBranches: []string{},
			DefaultBranch: "main",
		},
		Serve: ServeConfig{
			Host:    "127.0.0.1",
			Port:    defaultHostPort,
			SiteDir: "build",
			Fallback: FallbackConfig{
				Mode:     FallbackModeDocument,
				Document: "404.html",
			},
			Timeout: Timeout{
				Read:  defaultReadTimeout,
				Write: defaultWriteTimeout,
				Idle:  defaultIdleTimeout,
			},
			BufferLimit: BufferLimit{
				Read: defaultBufferSize,
			},
		},
		Metrics: MetricsConfig{
			Host: "127.0.0.1",
			Port: defaultMetricsPort,
			Path: "/metrics",
		},
		Build: BuildConfig{
			Command:      []string{"npm", "run", "build"},
			WorkDir:      ".",
			EntryFile:    "src/App.js",
			ManifestFile: "package.json",
			OutputDir:    "build",
		},
	}
}
