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

package buildmode

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/sgex/pathless/internal/pathless"
	"github.com/sgex/pathless/internal/x/errorchain"
)

const (
	DefaultBranch = "main"

	refsHeadsPrefix = "refs/heads/"
)

// nolint: gochecknoglobals
var unsafeBranchChars = regexp2.MustCompile(`[^A-Za-z0-9._-]+`, regexp2.None)

type Mode int

const (
	// BranchSpecific builds the application as it is, addressed under a branch prefixed path.
	BranchSpecific Mode = iota
	// RootLanding builds the listing-only landing page served at the project root.
	RootLanding
)

func (m Mode) String() string {
	if m == RootLanding {
		return "root"
	}

	return "branch"
}

// ResolveMode selects the build mode. The positional argument wins over the environment value.
func ResolveMode(arg, env string) Mode {
	value := strings.TrimSpace(arg)
	if len(value) == 0 {
		value = strings.TrimSpace(env)
	}

	switch strings.ToLower(value) {
	case "root", "landing":
		return RootLanding
	default:
		return BranchSpecific
	}
}

// ResolveBranch derives the branch name from a git ref as provided by CI systems.
func ResolveBranch(ref, fallback string) string {
	branch := strings.TrimPrefix(strings.TrimSpace(ref), refsHeadsPrefix)
	if len(branch) != 0 {
		return branch
	}

	if len(fallback) != 0 {
		return fallback
	}

	return DefaultBranch
}

// SafeBranchName converts a branch name into the name of its deployment directory.
func SafeBranchName(branch string) string {
	// errors are only possible on match timeouts, which are not configured
	res, _ := unsafeBranchChars.Replace(branch, "-", -1, -1)

	return res
}

type Plan struct {
	Mode      Mode
	Branch    string
	Directory string
	BasePath  string
	OutputDir string
}

func NewPlan(mode Mode, branch, projectPrefix, outputDir string) (Plan, error) {
	plan := Plan{Mode: mode, Branch: branch, BasePath: "/", OutputDir: outputDir}

	if mode == RootLanding {
		return plan, nil
	}

	plan.Directory = SafeBranchName(branch)
	if len(strings.Trim(plan.Directory, ".")) == 0 {
		return Plan{}, errorchain.NewWithMessagef(pathless.ErrArgument,
			"branch %q does not result in a usable deployment directory", branch)
	}

	plan.BasePath = "/" + projectPrefix + "/" + plan.Directory + "/"

	return plan, nil
}
