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

// Package allowlist holds the vocabulary of routable application components. A path segment
// is a component name if and only if it is a member of the list; everything else is an opaque
// branch, user or repository segment.
package allowlist

import (
	"os"
	"slices"
	"strings"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/sgex/pathless/internal/pathless"
	"github.com/sgex/pathless/internal/x/errorchain"
)

// nolint: gochecknoglobals
var defaultComponents = []string{
	"dashboard",
	"testing-viewer",
	"core-data-dictionary-viewer",
	"health-interventions",
	"actor-editor",
	"business-process-selection",
	"bpmn-editor",
	"bpmn-viewer",
	"bpmn-source",
	"decision-support-logic",
	"questionnaire-editor",
}

// AllowList is immutable once created and safe for concurrent use.
type AllowList struct {
	names   []string
	members map[string]struct{}
}

func New(names ...string) (*AllowList, error) {
	list := &AllowList{
		names:   make([]string, 0, len(names)),
		members: make(map[string]struct{}, len(names)),
	}

	for _, name := range names {
		if err := validateName(name); err != nil {
			return nil, err
		}

		if _, ok := list.members[name]; ok {
			continue
		}

		list.members[name] = struct{}{}
		list.names = append(list.names, name)
	}

	return list, nil
}

func MustNew(names ...string) *AllowList {
	list, err := New(names...)
	if err != nil {
		panic(err)
	}

	return list
}

func Default() *AllowList { return MustNew(defaultComponents...) }

// DefaultNames returns a copy of the built-in vocabulary.
func DefaultNames() []string { return slices.Clone(defaultComponents) }

func (l *AllowList) Contains(segment string) bool {
	if l == nil {
		return false
	}

	_, ok := l.members[segment]

	return ok
}

// Names returns the members in the order they were given.
func (l *AllowList) Names() []string {
	if l == nil {
		return []string{}
	}

	return slices.Clone(l.names)
}

func (l *AllowList) Len() int {
	if l == nil {
		return 0
	}

	return len(l.names)
}

type fileContent struct {
	Components []string `yaml:"components"`
}

// Load reads a YAML file which is either a plain sequence of names or a mapping with
// a "components" sequence.
func Load(path string) (*AllowList, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errorchain.NewWithMessagef(pathless.ErrConfiguration,
			"failed reading component allow list from %s", path).CausedBy(err)
	}

	var names []string
	if err = yaml.Unmarshal(raw, &names); err != nil {
		var content fileContent
		if err = yaml.Unmarshal(raw, &content); err != nil {
			return nil, errorchain.NewWithMessagef(pathless.ErrConfiguration,
				"failed parsing component allow list from %s", path).CausedBy(err)
		}

		names = content.Components
	}

	if len(names) == 0 {
		return nil, errorchain.NewWithMessagef(pathless.ErrConfiguration,
			"component allow list in %s is empty", path)
	}

	return New(names...)
}

func validateName(name string) error {
	switch {
	case len(name) == 0:
		return errorchain.NewWithMessage(pathless.ErrConfiguration, "component name must not be empty")
	case strings.ContainsAny(name, "/?#&"):
		return errorchain.NewWithMessagef(pathless.ErrConfiguration,
			"component name %q contains a reserved character", name)
	case strcase.ToKebab(name) != name:
		return errorchain.NewWithMessagef(pathless.ErrConfiguration,
			"component name %q is not in kebab-case, expected %q", name, strcase.ToKebab(name))
	}

	return nil
}
