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

package host

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sgex/pathless/internal/config"
	"github.com/sgex/pathless/internal/handler/fxlcm"
	"github.com/sgex/pathless/internal/watcher"
)

// Module is used on app bootstrap.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewHandler,
		newService,
	),
	fx.Invoke(
		registerComponentsWatcher,
		registerHooks,
	),
)

func registerComponentsWatcher(
	conf *config.Configuration,
	fw watcher.Watcher,
	handler *Handler,
	logger zerolog.Logger,
) error {
	file := conf.Routing.ComponentsFile
	if len(file) == 0 {
		return nil
	}

	logger.Info().Str("_file", file).Msg("Watching component allow list for changes")

	return fw.Add(file, handler)
}

type hooksArgs struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Config     *config.Configuration
	Logger     zerolog.Logger
	Service    *http.Server
}

func registerHooks(args hooksArgs) {
	lcm := &fxlcm.LifecycleManager{
		ServiceName:    "Host",
		ServiceAddress: args.Config.Serve.Address(),
		Server:         args.Service,
		Logger:         args.Logger,
		Shutdowner:     args.Shutdowner,
	}

	args.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				args.Logger.Info().
					Str("_site_dir", args.Config.Serve.SiteDir).
					Str("_fallback_mode", string(args.Config.Serve.Fallback.Mode)).
					Msg("Serving site like a path-less static host")

				return lcm.Start(ctx)
			},
			OnStop: lcm.Stop,
		},
	)
}
