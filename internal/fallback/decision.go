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

import "github.com/sgex/pathless/internal/topology"

type Kind int

const (
	// NotFound means there is nothing to redirect to. The fallback document stays as it is.
	NotFound Kind = iota
	// EncodedRedirect means the location is replaced by the encoded redirect in Target.
	EncodedRedirect
	// RootFallback means the location is replaced by the topology or branch root in Target.
	RootFallback
)

func (k Kind) String() string {
	switch k {
	case EncodedRedirect:
		return "encoded-redirect"
	case RootFallback:
		return "root-fallback"
	default:
		return "not-found"
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

type Decision struct {
	Kind           Kind
	Target         string
	Classification topology.Classification
}

func (d Decision) Redirects() bool { return d.Kind != NotFound }
