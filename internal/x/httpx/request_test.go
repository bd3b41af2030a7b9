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

package httpx

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPFromHostPort(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		value string
		ip    string
	}{
		{value: "127.0.0.1:8080", ip: "127.0.0.1"},
		{value: "[::1]:8080", ip: "::1"},
		{value: "127.0.0.1", ip: ""},
		{value: "", ip: ""},
	} {
		t.Run(tc.value, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.ip, IPFromHostPort(tc.value))
		})
	}
}

func TestHostname(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		value    string
		hostname string
	}{
		{value: "litlfred.github.io", hostname: "litlfred.github.io"},
		{value: "LitlFred.GitHub.io:443", hostname: "litlfred.github.io"},
		{value: "localhost:3000", hostname: "localhost"},
		{value: "[::1]:3000", hostname: "::1"},
		{value: "[::1]", hostname: "::1"},
		{value: "", hostname: ""},
	} {
		t.Run(tc.value, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.hostname, Hostname(tc.value))
		})
	}
}

func TestRequestHostAndScheme(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		setup  func(req *http.Request)
		host   string
		scheme string
	}{
		{
			uc:     "plain request",
			setup:  func(*http.Request) {},
			host:   "example.com",
			scheme: "http",
		},
		{
			uc:     "tls request",
			setup:  func(req *http.Request) { req.TLS = &tls.ConnectionState{} },
			host:   "example.com",
			scheme: "https",
		},
		{
			uc: "forwarded request",
			setup: func(req *http.Request) {
				req.Header.Set("X-Forwarded-Host", "litlfred.github.io, proxy.local")
				req.Header.Set("X-Forwarded-Proto", "HTTPS")
			},
			host:   "litlfred.github.io",
			scheme: "https",
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			req := httptest.NewRequest(http.MethodGet, "http://example.com/sgex/dashboard", nil)
			tc.setup(req)

			// WHEN
			host := RequestHost(req)
			scheme := Scheme(req)

			// THEN
			assert.Equal(t, tc.host, host)
			assert.Equal(t, tc.scheme, scheme)
		})
	}
}
