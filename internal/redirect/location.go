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

package redirect

import "strings"

// Location is the part of a browser location the redirect round trip operates on.
type Location struct {
	Host     string
	Pathname string
	Search   string
	Hash     string
}

// ParseLocation splits an absolute or host relative URL into its location parts. Unlike url.Parse
// it keeps the query and fragment verbatim, so escape tokens and literal ampersands survive unchanged.
func ParseLocation(raw string) Location {
	var loc Location

	rest := strings.TrimSpace(raw)

	if idx := strings.IndexByte(rest, '#'); idx >= 0 {
		loc.Hash = normalizeHash(rest[idx:])
		rest = rest[:idx]
	}

	if idx := strings.IndexByte(rest, '?'); idx >= 0 {
		loc.Search = normalizeSearch(rest[idx:])
		rest = rest[:idx]
	}

	if idx := strings.Index(rest, "://"); idx >= 0 {
		rest = "//" + rest[idx+3:]
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]

		idx := strings.IndexByte(rest, '/')
		if idx < 0 {
			loc.Host, rest = rest, ""
		} else {
			loc.Host, rest = rest[:idx], rest[idx:]
		}
	}

	loc.Pathname = rest
	if !strings.HasPrefix(loc.Pathname, "/") {
		loc.Pathname = "/" + loc.Pathname
	}

	return loc
}

// Hostname returns the host without the port.
func (l Location) Hostname() string {
	if strings.HasPrefix(l.Host, "[") {
		if idx := strings.IndexByte(l.Host, ']'); idx > 0 {
			return l.Host[1:idx]
		}
	}

	if idx := strings.LastIndexByte(l.Host, ':'); idx >= 0 {
		return l.Host[:idx]
	}

	return l.Host
}

// String renders the host relative form, which is what the browser history operates on.
func (l Location) String() string {
	return l.Pathname + l.Search + l.Hash
}

func normalizeSearch(search string) string {
	if search == "?" {
		return ""
	}

	if len(search) != 0 && search[0] != '?' {
		return "?" + search
	}

	return search
}

func normalizeHash(hash string) string {
	if hash == "#" {
		return ""
	}

	if len(hash) != 0 && hash[0] != '#' {
		return "#" + hash
	}

	return hash
}
