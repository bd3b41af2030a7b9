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

package routeparams

import (
	"slices"

	"github.com/sgex/pathless/internal/topology"
)

// Params are the positional route parameters of a routable path.
type Params struct {
	Component string   `json:"component"`
	User      string   `json:"user,omitempty"`
	Repo      string   `json:"repo,omitempty"`
	Branch    string   `json:"branch,omitempty"`
	Rest      []string `json:"rest,omitempty"`
}

func (p Params) HasRepository() bool { return len(p.User) != 0 && len(p.Repo) != 0 }

// Extract maps <component>[/<user>/<repo>[/<branch>[/...]]] to Params. A user without a repository is
// dropped. The identifiers are taken as they are.
func Extract(segments []string) (Params, bool) {
	if len(segments) == 0 || len(segments[0]) == 0 {
		return Params{}, false
	}

	params := Params{Component: segments[0]}

	if len(segments) < 3 {
		return params, true
	}

	params.User = segments[1]
	params.Repo = segments[2]

	if len(segments) > 3 {
		params.Branch = segments[3]
	}

	if len(segments) > 4 {
		params.Rest = slices.Clone(segments[4:])
	}

	return params, true
}

// ExtractPath is Extract for a slash separated path.
func ExtractPath(path string) (Params, bool) {
	return Extract(topology.ParsePath(path))
}

// FromLocation classifies the given restored location and extracts the parameters from its routable part.
func FromLocation(classifier *topology.Classifier, hostname, pathname string) (Params, bool) {
	res := classifier.Classify(hostname, pathname)
	if res.Outcome != topology.Routable {
		return Params{}, false
	}

	return Extract(res.Routable)
}
