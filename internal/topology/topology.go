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

// Topology is the deployment layout governing how a request path is prefixed.
type Topology int

const (
	// Standalone is a local or development root without project prefix.
	Standalone Topology = iota
	// RootLanding is the application served directly under the project prefix.
	RootLanding
	// BranchSpecific is the application served under the project prefix plus a branch segment.
	BranchSpecific
)

func (t Topology) String() string {
	switch t {
	case RootLanding:
		return "root-landing"
	case BranchSpecific:
		return "branch-specific"
	default:
		return "standalone"
	}
}

// Outcome tells what the fallback document should do for a classified request.
type Outcome int

const (
	// Unknown means no recognizable component; the caller falls back to the topology root.
	Unknown Outcome = iota
	// Routable means the remaining segments start with a component and can be encoded.
	Routable
	// BranchRoot means a known branch was addressed without anything routable behind it.
	BranchRoot
)

func (o Outcome) String() string {
	switch o {
	case Routable:
		return "routable"
	case BranchRoot:
		return "branch-root"
	default:
		return "unknown"
	}
}

type Classification struct {
	Topology Topology
	Outcome  Outcome
	Prefix   RequestPath
	Branch   string
	Routable RequestPath
}

// BasePath is the path of the entry document for the detected topology.
func (c Classification) BasePath() string {
	if c.Topology == BranchSpecific && len(c.Branch) != 0 {
		return append(c.Prefix[:len(c.Prefix):len(c.Prefix)], c.Branch).Dir()
	}

	return c.Prefix.Dir()
}

// RootPath is the bare root of the deployment, the target of the safe fallback.
func (c Classification) RootPath() string { return c.Prefix.Dir() }
