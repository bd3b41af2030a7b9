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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgex/pathless/internal/topology"
)

func TestExtractPath(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc      string
		path    string
		exp     Params
		matched bool
	}{
		{
			uc:      "component with user, repo and branch",
			path:    "dashboard/demo-user/test-dak/main",
			exp:     Params{Component: "dashboard", User: "demo-user", Repo: "test-dak", Branch: "main"},
			matched: true,
		},
		{
			uc:      "component with user and repo",
			path:    "testing-viewer/demo-user/test-dak",
			exp:     Params{Component: "testing-viewer", User: "demo-user", Repo: "test-dak"},
			matched: true,
		},
		{
			uc:      "user without repo is dropped",
			path:    "/dashboard/demo-user",
			exp:     Params{Component: "dashboard"},
			matched: true,
		},
		{
			uc:      "component only",
			path:    "/bpmn-editor/",
			exp:     Params{Component: "bpmn-editor"},
			matched: true,
		},
		{
			uc:      "segments beyond the branch",
			path:    "bpmn-viewer/u/r/main/input/bpmn/flow.bpmn",
			exp:     Params{Component: "bpmn-viewer", User: "u", Repo: "r", Branch: "main", Rest: []string{"input", "bpmn", "flow.bpmn"}},
			matched: true,
		},
		{
			uc:      "no syntax validation of identifiers",
			path:    "dashboard/not a user!/../x",
			exp:     Params{Component: "dashboard", User: "not a user!", Repo: "..", Branch: "x"},
			matched: true,
		},
		{
			uc:   "empty path",
			path: "/",
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// WHEN
			res, matched := ExtractPath(tc.path)

			// THEN
			assert.Equal(t, tc.matched, matched)
			assert.Equal(t, tc.exp, res)
		})
	}
}

func TestHasRepository(t *testing.T) {
	t.Parallel()

	assert.True(t, Params{Component: "dashboard", User: "u", Repo: "r"}.HasRepository())
	assert.False(t, Params{Component: "dashboard"}.HasRepository())
}

func TestExtractDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	segments := []string{"dashboard", "u", "r", "main", "a", "b"}

	res, matched := Extract(segments)
	segments[4] = "changed"

	require.True(t, matched)
	assert.Equal(t, []string{"a", "b"}, res.Rest)
}

func TestFromLocation(t *testing.T) {
	t.Parallel()

	classifier, err := topology.New()
	require.NoError(t, err)

	for _, tc := range []struct {
		uc       string
		hostname string
		pathname string
		exp      Params
		matched  bool
	}{
		{
			uc:       "branch specific deployment",
			hostname: "user.github.io",
			pathname: "/sgex/feature-x/dashboard/demo-user/test-dak/main",
			exp:      Params{Component: "dashboard", User: "demo-user", Repo: "test-dak", Branch: "main"},
			matched:  true,
		},
		{
			uc:       "root landing deployment",
			hostname: "user.github.io",
			pathname: "/sgex/testing-viewer/demo-user/test-dak",
			exp:      Params{Component: "testing-viewer", User: "demo-user", Repo: "test-dak"},
			matched:  true,
		},
		{
			uc:       "local development",
			hostname: "localhost:3000",
			pathname: "/questionnaire-editor",
			exp:      Params{Component: "questionnaire-editor"},
			matched:  true,
		},
		{
			uc:       "landing page",
			hostname: "user.github.io",
			pathname: "/sgex/",
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			res, matched := FromLocation(classifier, tc.hostname, tc.pathname)

			assert.Equal(t, tc.matched, matched)
			assert.Equal(t, tc.exp, res)
		})
	}
}
