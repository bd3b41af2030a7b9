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

// IsEncoded reports whether the given search string carries an encoded redirect.
func IsEncoded(search string) bool { return strings.HasPrefix(search, Marker) }

// Decode restores the location an encoded redirect was created for. Locations without the marker are
// returned unchanged together with false.
func Decode(loc Location) (Location, bool) {
	if !IsEncoded(loc.Search) {
		return loc, false
	}

	pieces := strings.Split(loc.Search[len(Marker):], "&")
	for idx, piece := range pieces {
		pieces[idx] = strings.ReplaceAll(piece, EscapeToken, "&")
	}

	restored := Location{
		Host:     loc.Host,
		Pathname: strings.TrimSuffix(loc.Pathname, "/") + "/" + pieces[0],
		Hash:     loc.Hash,
	}

	if query := strings.Join(pieces[1:], "&"); len(query) != 0 {
		restored.Search = "?" + query
	}

	return restored, true
}

// DecodeURL parses raw and decodes it.
func DecodeURL(raw string) (Location, bool) {
	return Decode(ParseLocation(raw))
}
