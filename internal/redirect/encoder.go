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

import (
	"errors"
	"strings"
)

const (
	// Marker starts every encoded redirect query.
	Marker = "?/"
	// EscapeToken replaces literal ampersands of the original location inside the encoded query.
	EscapeToken = "~and~"
)

var ErrNothingToEncode = errors.New("nothing to encode")

// EncodedRedirect is the URL the fallback document replaces the current location with.
type EncodedRedirect struct {
	BasePath     string
	EncodedQuery string
	Hash         string
}

func (r EncodedRedirect) String() string {
	return r.BasePath + "?" + r.EncodedQuery + r.Hash
}

// Encode builds <basePath>?/<seg1>/.../<segN>[&<query>]<hash>. Literal ampersands in the route and in
// the query are replaced by EscapeToken, so the first ampersand of the result always separates the
// route from the original query.
func Encode(basePath string, routable []string, search, hash string) (EncodedRedirect, error) {
	if len(routable) == 0 {
		return EncodedRedirect{}, ErrNothingToEncode
	}

	query := "/" + escape(strings.Join(routable, "/"))

	if original := strings.TrimPrefix(search, "?"); len(original) != 0 {
		query += "&" + escape(original)
	}

	return EncodedRedirect{
		BasePath:     normalizeBasePath(basePath),
		EncodedQuery: query,
		Hash:         normalizeHash(hash),
	}, nil
}

// EncodeLocation encodes the given location relative to basePath. The pathname of loc must already be
// reduced to the routable part, see topology.Classification.
func EncodeLocation(basePath string, routable []string, loc Location) (EncodedRedirect, error) {
	return Encode(basePath, routable, loc.Search, loc.Hash)
}

func escape(value string) string { return strings.ReplaceAll(value, "&", EscapeToken) }

func normalizeBasePath(basePath string) string {
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}

	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}

	return basePath
}
