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

// Package topology determines from hostname and path which deployment layout serves a request
// and where the host-imposed prefix ends and the application route begins.
package topology

import (
	"net"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/sgex/pathless/internal/allowlist"
	"github.com/sgex/pathless/internal/pathless"
	"github.com/sgex/pathless/internal/x/errorchain"
)

const (
	DefaultProjectPrefix = "sgex"
	DefaultHostedPattern = "*.github.io"
)

// Classifier is immutable. Classify is a pure function of hostname and path.
type Classifier struct {
	prefix     string
	patterns   []string
	hosted     []glob.Glob
	components *allowlist.AllowList
	branches   []string
}

func New(opts ...Option) (*Classifier, error) {
	o := options{
		prefix:     DefaultProjectPrefix,
		patterns:   []string{DefaultHostedPattern},
		components: allowlist.Default(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	if len(o.prefix) == 0 || strings.Contains(o.prefix, "/") {
		return nil, errorchain.NewWithMessagef(pathless.ErrConfiguration,
			"project prefix %q must be a single non-empty path segment", o.prefix)
	}

	if o.components.Contains(o.prefix) {
		return nil, errorchain.NewWithMessagef(pathless.ErrConfiguration,
			"project prefix %q collides with a component name", o.prefix)
	}

	hosted := make([]glob.Glob, 0, len(o.patterns))

	for _, pattern := range o.patterns {
		compiled, err := glob.Compile(strings.ToLower(pattern), '.')
		if err != nil {
			return nil, errorchain.NewWithMessagef(pathless.ErrConfiguration,
				"invalid hosted host pattern %q", pattern).CausedBy(err)
		}

		hosted = append(hosted, compiled)
	}

	return &Classifier{
		prefix:     o.prefix,
		patterns:   slices.Clone(o.patterns),
		hosted:     hosted,
		components: o.components,
		branches:   slices.Clone(o.branches),
	}, nil
}

func (c *Classifier) ProjectPrefix() string { return c.prefix }

func (c *Classifier) HostedPatterns() []string { return slices.Clone(c.patterns) }

func (c *Classifier) Components() *allowlist.AllowList { return c.components }

func (c *Classifier) KnownBranches() []string { return slices.Clone(c.branches) }

// WithComponents returns a copy of the classifier using the given allow list.
func (c *Classifier) WithComponents(list *allowlist.AllowList) *Classifier {
	clone := *c
	clone.components = list

	return &clone
}

// IsHosted reports whether the hostname (with or without port) belongs to the hosted deployment.
func (c *Classifier) IsHosted(hostname string) bool {
	host := strings.ToLower(hostname)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	for _, g := range c.hosted {
		if g.Match(host) {
			return true
		}
	}

	return false
}

func (c *Classifier) Classify(hostname, pathname string) Classification {
	segments := ParsePath(pathname)
	result := Classification{Topology: Standalone, Outcome: Unknown, Prefix: RequestPath{}}

	if !c.IsHosted(hostname) || len(segments) == 0 || segments[0] != c.prefix {
		if len(segments) != 0 && c.components.Contains(segments[0]) {
			result.Outcome = Routable
			result.Routable = segments
		}

		return result
	}

	result.Topology = RootLanding
	result.Prefix = segments[:1:1]
	rest := segments[1:]

	if len(rest) == 0 {
		return result
	}

	if c.components.Contains(rest[0]) {
		result.Outcome = Routable
		result.Routable = rest

		return result
	}

	result.Topology = BranchSpecific
	result.Branch = rest[0]
	rest = rest[1:]

	switch {
	case len(rest) != 0 && c.components.Contains(rest[0]):
		result.Outcome = Routable
		result.Routable = rest
	case len(rest) == 0 && slices.Contains(c.branches, result.Branch):
		result.Outcome = BranchRoot
	}

	return result
}
