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

package topology

import "strings"

// RequestPath is the ordered list of non-empty segments of a raw path.
type RequestPath []string

func ParsePath(raw string) RequestPath {
	parts := strings.Split(raw, "/")
	segments := make(RequestPath, 0, len(parts))

	for _, part := range parts {
		if len(part) != 0 {
			segments = append(segments, part)
		}
	}

	return segments
}

// Join returns the segments separated by "/" without a leading slash.
func (p RequestPath) Join() string { return strings.Join(p, "/") }

func (p RequestPath) String() string { return "/" + p.Join() }

// Dir renders the segments as a directory path with leading and trailing slash.
func (p RequestPath) Dir() string {
	if len(p) == 0 {
		return "/"
	}

	return "/" + p.Join() + "/"
}
