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
	"net"
	"net/http"
	"strings"
)

// IPFromHostPort returns the IP part of an address like the one found in http.Request.RemoteAddr.
func IPFromHostPort(hp string) string {
	host, _, err := net.SplitHostPort(hp)
	if err != nil {
		return ""
	}

	return strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
}

// Hostname strips the port from a host header value and lower cases the rest.
func Hostname(hostport string) string {
	host := hostport

	if strings.HasPrefix(host, "[") {
		if end := strings.Index(host, "]"); end > 0 {
			return strings.ToLower(host[1:end])
		}
	} else if idx := strings.LastIndex(host, ":"); idx >= 0 && strings.Count(host, ":") == 1 {
		host = host[:idx]
	}

	return strings.ToLower(host)
}

// RequestHost returns the host the client addressed, honoring X-Forwarded-Host set by a local
// reverse proxy in front of the emulator.
func RequestHost(req *http.Request) string {
	if fwd := req.Header.Get("X-Forwarded-Host"); len(fwd) != 0 {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}

	return req.Host
}

func Scheme(req *http.Request) string {
	if proto := req.Header.Get("X-Forwarded-Proto"); len(proto) != 0 {
		return strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}

	if req.TLS != nil {
		return "https"
	}

	return "http"
}
