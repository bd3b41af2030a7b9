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

package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerObservesRequests(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		path     string
		status   int
		observed bool
	}{
		{uc: "observed request", path: "/sgex/dashboard", status: http.StatusNotFound, observed: true},
		{uc: "filtered request", path: "/health", status: http.StatusOK, observed: false},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			registry := prometheus.NewRegistry()
			handler := New(
				WithRegisterer(registry),
				WithNamespace("pathless"),
				WithSubsystem("host"),
				WithServiceName("host"),
				WithOperationFilter(func(req *http.Request) bool { return req.URL.Path == "/health" }),
			)(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
				rw.WriteHeader(tc.status)
			}))

			// WHEN
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.path, nil))

			// THEN
			families, err := registry.Gather()
			require.NoError(t, err)

			var counter float64

			for _, family := range families {
				if family.GetName() != "pathless_host_requests_total" {
					continue
				}

				for _, metric := range family.GetMetric() {
					counter += metric.GetCounter().GetValue()

					labels := map[string]string{}
					for _, label := range metric.GetLabel() {
						labels[label.GetName()] = label.GetValue()
					}

					assert.Equal(t, "404", labels["status_code"])
					assert.Equal(t, http.MethodGet, labels["method"])
					assert.Equal(t, "host", labels["service"])
				}
			}

			if tc.observed {
				assert.InDelta(t, 1.0, counter, 0.001)
			} else {
				assert.InDelta(t, 0.0, counter, 0.001)
			}
		})
	}
}
