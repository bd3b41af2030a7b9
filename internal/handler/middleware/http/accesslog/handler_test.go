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

package accesslog

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/justinas/alice"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgex/pathless/internal/accesscontext"
	"github.com/sgex/pathless/internal/fallback"
	"github.com/sgex/pathless/internal/topology"
	"github.com/sgex/pathless/internal/x/testsupport"
)

func TestHandlerExecution(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc            string
		setHeader     func(req *http.Request)
		handleRequest func(t *testing.T, rw http.ResponseWriter, req *http.Request)
		assert        func(t *testing.T, rw *httptest.ResponseRecorder, started, inner, finished map[string]any)
	}{
		{
			uc:        "served file without request id",
			setHeader: func(*http.Request) {},
			handleRequest: func(t *testing.T, rw http.ResponseWriter, req *http.Request) {
				t.Helper()

				zerolog.Ctx(req.Context()).Info().Msg("test called")
				rw.WriteHeader(http.StatusOK)
				_, err := rw.Write([]byte("foo"))
				require.NoError(t, err)
			},
			assert: func(t *testing.T, rw *httptest.ResponseRecorder, started, inner, finished map[string]any) {
				t.Helper()

				requestID := rw.Header().Get(HeaderRequestID)
				require.Len(t, requestID, 36)

				assert.Equal(t, "TX started", started["message"])
				assert.Equal(t, requestID, started["_request_id"])
				assert.Equal(t, http.MethodGet, started["_http_method"])
				assert.Equal(t, "/sgex/dashboard/user/repo", started["_http_path"])
				assert.Equal(t, "litlfred.github.io", started["_http_host"])
				assert.Equal(t, "http", started["_http_scheme"])
				assert.Contains(t, started, "_client_ip")
				assert.Contains(t, started, "_tx_start")

				assert.Equal(t, "test called", inner["message"])
				assert.Equal(t, requestID, inner["_request_id"])

				assert.Equal(t, "TX finished", finished["message"])
				assert.InDelta(t, float64(http.StatusOK), finished["_http_status_code"], 0.001)
				assert.InDelta(t, 3.0, finished["_body_bytes_sent"], 0.001)
				assert.Contains(t, finished, "_tx_duration_ms")
				assert.NotContains(t, finished, "_fallback")
				assert.NotContains(t, finished, "error")
			},
		},
		{
			uc: "fallback decision with given request id",
			setHeader: func(req *http.Request) {
				req.Header.Set(HeaderRequestID, "4711")
				req.Header.Set("X-Forwarded-Host", "litlfred.github.io")
			},
			handleRequest: func(t *testing.T, rw http.ResponseWriter, req *http.Request) {
				t.Helper()

				zerolog.Ctx(req.Context()).Info().Msg("test called")
				accesscontext.SetDecision(req.Context(), fallback.Decision{
					Kind:   fallback.EncodedRedirect,
					Target: "/sgex/?/dashboard/user/repo",
					Classification: topology.Classification{
						Topology: topology.RootLanding,
						Outcome:  topology.Routable,
					},
				})
				accesscontext.SetError(req.Context(), errors.New("test error"))
				rw.WriteHeader(http.StatusFound)
			},
			assert: func(t *testing.T, rw *httptest.ResponseRecorder, started, inner, finished map[string]any) {
				t.Helper()

				assert.Equal(t, "4711", rw.Header().Get(HeaderRequestID))
				assert.Equal(t, "4711", started["_request_id"])
				assert.Equal(t, "litlfred.github.io", started["_http_x_forwarded_host"])
				assert.Equal(t, "4711", inner["_request_id"])

				assert.InDelta(t, float64(http.StatusFound), finished["_http_status_code"], 0.001)
				assert.Equal(t, "encoded-redirect", finished["_fallback"])
				assert.Equal(t, "root-landing", finished["_topology"])
				assert.Equal(t, "/sgex/?/dashboard/user/repo", finished["_fallback_target"])
				assert.Equal(t, "test error", finished["error"])
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			tb := &testsupport.TestingLog{TB: t}
			logger := zerolog.New(zerolog.TestWriter{T: tb})

			handler := alice.New(New(logger)).ThenFunc(func(rw http.ResponseWriter, req *http.Request) {
				tc.handleRequest(t, rw, req)
			})

			req := httptest.NewRequest(http.MethodGet, "http://litlfred.github.io/sgex/dashboard/user/repo", nil)
			tc.setHeader(req)

			rw := httptest.NewRecorder()

			// WHEN
			handler.ServeHTTP(rw, req)

			// THEN
			messages := strings.Split(strings.TrimSpace(tb.CollectedLog()), "}")
			require.GreaterOrEqual(t, len(messages), 3)

			var started, inner, finished map[string]any

			require.NoError(t, json.Unmarshal([]byte(messages[0]+"}"), &started))
			require.NoError(t, json.Unmarshal([]byte(messages[1]+"}"), &inner))
			require.NoError(t, json.Unmarshal([]byte(messages[2]+"}"), &finished))

			tc.assert(t, rw, started, inner, finished)
		})
	}
}
