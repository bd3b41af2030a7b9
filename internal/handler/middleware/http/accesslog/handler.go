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

package accesslog

import (
	"context"
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sgex/pathless/internal/accesscontext"
	"github.com/sgex/pathless/internal/x/httpx"
)

const HeaderRequestID = "X-Request-Id"

// New logs a "TX started" and a "TX finished" entry for every request. The logger bound to the
// request context carries the request id, so handlers logging via zerolog.Ctx are correlated.
func New(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			start := time.Now()
			ctx := accesscontext.New(req.Context())

			requestID := req.Header.Get(HeaderRequestID)
			if len(requestID) == 0 {
				requestID = uuid.NewString()
			}

			accesscontext.SetRequestID(ctx, requestID)
			rw.Header().Set(HeaderRequestID, requestID)

			logCtx := logger.Level(zerolog.InfoLevel).With().
				Str("_request_id", requestID).
				Int64("_tx_start", start.Unix()).
				Str("_client_ip", httpx.IPFromHostPort(req.RemoteAddr)).
				Str("_http_method", req.Method).
				Str("_http_path", req.URL.Path).
				Str("_http_user_agent", req.Header.Get("User-Agent")).
				Str("_http_host", httpx.RequestHost(req)).
				Str("_http_scheme", httpx.Scheme(req))

			logCtx = logHeader(req, logCtx, "X-Forwarded-Host", "_http_x_forwarded_host")
			logCtx = logHeader(req, logCtx, "X-Forwarded-For", "_http_x_forwarded_for")
			logCtx = logHeader(req, logCtx, "Referer", "_http_referer")

			accLog := logCtx.Logger()
			accLog.Info().Msg("TX started")

			ctx = logger.With().Str("_request_id", requestID).Logger().WithContext(ctx)

			metrics := httpsnoop.CaptureMetrics(next, rw, req.WithContext(ctx))

			logOutcome(ctx, accLog.Info()).
				Int64("_body_bytes_sent", metrics.Written).
				Int("_http_status_code", metrics.Code).
				Int64("_tx_duration_ms", time.Since(start).Milliseconds()).
				Msg("TX finished")
		})
	}
}

func logOutcome(ctx context.Context, event *zerolog.Event) *zerolog.Event {
	if decision, ok := accesscontext.Decision(ctx); ok {
		event.
			Str("_fallback", decision.Kind.String()).
			Str("_topology", decision.Classification.Topology.String())

		if decision.Redirects() {
			event.Str("_fallback_target", decision.Target)
		}
	}

	if err := accesscontext.Error(ctx); err != nil {
		event.Err(err)
	}

	return event
}

func logHeader(req *http.Request, logCtx zerolog.Context, headerName, logKey string) zerolog.Context {
	if headerValue := req.Header.Get(headerName); len(headerValue) != 0 {
		logCtx = logCtx.Str(logKey, headerValue)
	}

	return logCtx
}
