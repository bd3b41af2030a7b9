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

package fallback

import (
	"github.com/sgex/pathless/internal/redirect"
	"github.com/sgex/pathless/internal/topology"
)

// Resolver decides what the fallback document does for a location the host could not resolve.
type Resolver struct {
	classifier *topology.Classifier
}

func NewResolver(classifier *topology.Classifier) *Resolver {
	return &Resolver{classifier: classifier}
}

func (r *Resolver) Classifier() *topology.Classifier { return r.classifier }

func (r *Resolver) Resolve(hostname string, loc redirect.Location) Decision {
	res := r.classifier.Classify(hostname, loc.Pathname)
	decision := Decision{Kind: NotFound, Classification: res}

	switch res.Outcome {
	case topology.Routable:
		encoded, err := redirect.EncodeLocation(res.BasePath(), res.Routable, loc)
		if err != nil {
			return decision
		}

		decision.Kind = EncodedRedirect
		decision.Target = encoded.String()
	case topology.BranchRoot:
		decision.Kind = RootFallback
		decision.Target = res.BasePath()
	default:
		decision.Kind = RootFallback
		decision.Target = res.RootPath()
	}

	// a location already pointing to its fallback target would loop
	if decision.Kind == RootFallback && loc.Pathname == decision.Target {
		decision.Kind = NotFound
		decision.Target = ""
	}

	return decision
}
