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
	"log"
	"net/http"

	"github.com/go-http-utils/etag"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/sgex/pathless/internal/config"
	"github.com/sgex/pathless/internal/handler/middleware/http/accesslog"
	"github.com/sgex/pathless/internal/handler/middleware/http/methodfilter"
	prometheusmiddleware "github.com/sgex/pathless/internal/handler/middleware/http/prometheus"
	"github.com/sgex/pathless/internal/handler/middleware/http/recovery"
	"github.com/sgex/pathless/internal/x"
)

func passthrough(next http.Handler) http.Handler { return next }

func newService(
	conf *config.Configuration,
	logger zerolog.Logger,
	registerer prometheus.Registerer,
	handler *Handler,
) *http.Server {
	cfg := conf.Serve

	hc := alice.New(
		accesslog.New(logger),
		recovery.New(),
		x.IfThenElseExec(conf.Metrics.Enabled,
			func() alice.Constructor {
				return prometheusmiddleware.New(
					prometheusmiddleware.WithRegisterer(registerer),
					prometheusmiddleware.WithNamespace("pathless"),
					prometheusmiddleware.WithSubsystem("host"),
					prometheusmiddleware.WithServiceName("host"),
				)
			},
			func() alice.Constructor { return passthrough },
		),
		x.IfThenElseExec(cfg.CORS != nil,
			func() alice.Constructor {
				return cors.New(
					cors.Options{
						AllowedOrigins:   cfg.CORS.AllowedOrigins,
						AllowedMethods:   cfg.CORS.AllowedMethods,
						AllowedHeaders:   cfg.CORS.AllowedHeaders,
						AllowCredentials: cfg.CORS.AllowCredentials,
						ExposedHeaders:   cfg.CORS.ExposedHeaders,
						MaxAge:           int(cfg.CORS.MaxAge.Seconds()),
					},
				).Handler
			},
			func() alice.Constructor { return passthrough },
		),
		methodfilter.New(http.MethodGet, http.MethodHead),
	).Then(etag.Handler(handler, false))

	return &http.Server{
		Handler:        hc,
		ReadTimeout:    cfg.Timeout.Read,
		WriteTimeout:   cfg.Timeout.Write,
		IdleTimeout:    cfg.Timeout.Idle,
		MaxHeaderBytes: int(cfg.BufferLimit.Read), // nolint: gosec
		ErrorLog:       log.New(logger.With().Str("_service", "host").Logger(), "", 0),
	}
}
