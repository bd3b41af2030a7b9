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

package build

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgex/pathless/internal/buildmode"
	"github.com/sgex/pathless/internal/config"
	"github.com/sgex/pathless/internal/pathless"
)

type recordingRunner struct {
	commands []buildmode.Command
	err      error
	onRun    func()
}

func (r *recordingRunner) Run(_ context.Context, cmd buildmode.Command) error {
	r.commands = append(r.commands, cmd)

	if r.onRun != nil {
		r.onRun()
	}

	return r.err
}

// envValue returns the value of the last occurrence of key, which is the one a process would see.
func envValue(env []string, key string) string {
	value := ""

	for _, entry := range env {
		if k, v, ok := strings.Cut(entry, "="); ok && k == key {
			value = v
		}
	}

	return value
}

func envCount(env []string, key string) int {
	return len(slices.DeleteFunc(slices.Clone(env), func(entry string) bool {
		return !strings.HasPrefix(entry, key+"=")
	}))
}

func newTestConfig(workDir string) *config.Configuration {
	return &config.Configuration{
		Routing: config.RoutingConfig{ProjectPrefix: "sgex", DefaultBranch: "main"},
		Build: config.BuildConfig{
			Command:      []string{"npm", "run", "build", "--", "--base=${BASE_PATH}"},
			WorkDir:      workDir,
			EntryFile:    "src/App.js",
			ManifestFile: "package.json",
			OutputDir:    "build",
		},
	}
}

func execute(t *testing.T, conf *config.Configuration, runner buildmode.Runner, args ...string) error {
	t.Helper()

	cmd := &cobra.Command{
		Use:  "build",
		Args: NewBuildCommand().Args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd, args, conf, runner, zerolog.Nop())
		},
	}
	cmd.Flags().String(FlagBranch, "", "")
	cmd.SetOut(bytes.NewBuffer(nil))
	cmd.SetErr(bytes.NewBuffer(nil))
	cmd.SetArgs(args)

	return cmd.Execute()
}

func TestBuildCommand(t *testing.T) {
	for _, tc := range []struct {
		uc          string
		env         map[string]string
		args        []string
		err         error
		duringBuild func(t *testing.T, workDir string)
		assert      func(t *testing.T, workDir string, runner *recordingRunner, err error)
	}{
		{
			uc:   "branch build from GITHUB_REF",
			env:  map[string]string{"GITHUB_REF": "refs/heads/feature/new-editor"},
			args: []string{"branch"},
			assert: func(t *testing.T, _ string, runner *recordingRunner, err error) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, runner.commands, 1)

				cmd := runner.commands[0]
				assert.Equal(t, "npm", cmd.Name)
				assert.Equal(t, []string{"run", "build", "--", "--base=/sgex/feature-new-editor/"}, cmd.Args)
				assert.Equal(t, "/sgex/feature-new-editor/", envValue(cmd.Env, "PUBLIC_URL"))
				assert.Equal(t, "branch", envValue(cmd.Env, "BUILD_MODE"))
				assert.Equal(t, "feature/new-editor", envValue(cmd.Env, "BRANCH_NAME"))
			},
		},
		{
			uc:   "branch flag wins over CI ref and mode from environment",
			env:  map[string]string{"GITHUB_REF_NAME": "develop", "BUILD_MODE": "branch"},
			args: []string{"--branch", "hotfix"},
			assert: func(t *testing.T, _ string, runner *recordingRunner, err error) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, runner.commands, 1)
				assert.Equal(t, "/sgex/hotfix/", envValue(runner.commands[0].Env, "PUBLIC_URL"))
			},
		},
		{
			uc: "default branch without CI ref",
			assert: func(t *testing.T, _ string, runner *recordingRunner, err error) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, runner.commands, 1)
				assert.Equal(t, "/sgex/main/", envValue(runner.commands[0].Env, "PUBLIC_URL"))
				assert.Equal(t, "main", envValue(runner.commands[0].Env, "BRANCH_NAME"))
			},
		},
		{
			uc:  "root landing build from environment restores files",
			env: map[string]string{"BUILD_MODE": "landing"},
			err: errors.New("test error"),
			duringBuild: func(t *testing.T, workDir string) {
				t.Helper()

				entry, err := os.ReadFile(filepath.Join(workDir, "src", "App.js"))
				require.NoError(t, err)
				assert.Contains(t, string(entry), "BranchListing")

				manifest, err := os.ReadFile(filepath.Join(workDir, "package.json"))
				require.NoError(t, err)
				assert.Contains(t, string(manifest), `"homepage":"/"`)
			},
			assert: func(t *testing.T, workDir string, runner *recordingRunner, err error) {
				t.Helper()

				require.Error(t, err)
				require.Len(t, runner.commands, 1)
				assert.Equal(t, "/", envValue(runner.commands[0].Env, "PUBLIC_URL"))
				assert.Equal(t, "root", envValue(runner.commands[0].Env, "BUILD_MODE"))
				assert.Equal(t, 1, envCount(runner.commands[0].Env, "BUILD_MODE"))

				entry, rerr := os.ReadFile(filepath.Join(workDir, "src", "App.js"))
				require.NoError(t, rerr)
				assert.Equal(t, "export default function App() {}\n", string(entry))

				manifest, rerr := os.ReadFile(filepath.Join(workDir, "package.json"))
				require.NoError(t, rerr)
				assert.JSONEq(t, `{"name":"sgex","homepage":"/sgex/main/"}`, string(manifest))
			},
		},
		{
			uc:   "mode argument is case insensitive",
			args: []string{"Landing"},
			assert: func(t *testing.T, _ string, runner *recordingRunner, err error) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, runner.commands, 1)
				assert.Equal(t, "root", envValue(runner.commands[0].Env, "BUILD_MODE"))
			},
		},
		{
			uc:   "unknown mode argument defaults to branch build",
			env:  map[string]string{"PUBLIC_URL": "/stale/", "BUILD_PATH": "stale", "GITHUB_REF_NAME": "develop"},
			args: []string{"feature"},
			assert: func(t *testing.T, _ string, runner *recordingRunner, err error) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, runner.commands, 1)

				env := runner.commands[0].Env
				assert.Equal(t, "branch", envValue(env, "BUILD_MODE"))
				assert.Equal(t, "/sgex/develop/", envValue(env, "PUBLIC_URL"))
				assert.Equal(t, 1, envCount(env, "PUBLIC_URL"))
				assert.Equal(t, 1, envCount(env, "BUILD_PATH"))
			},
		},
		{
			uc:   "unusable branch name",
			args: []string{"branch", "--branch", ".."},
			assert: func(t *testing.T, _ string, runner *recordingRunner, err error) {
				t.Helper()

				require.ErrorIs(t, err, pathless.ErrArgument)
				assert.Empty(t, runner.commands)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Setenv("BUILD_MODE", "")
			t.Setenv("GITHUB_REF_NAME", "")
			t.Setenv("GITHUB_REF", "")

			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			// GIVEN
			workDir := t.TempDir()
			require.NoError(t, os.MkdirAll(filepath.Join(workDir, "src"), 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(workDir, "src", "App.js"),
				[]byte("export default function App() {}\n"), 0o600))
			require.NoError(t, os.WriteFile(filepath.Join(workDir, "package.json"),
				[]byte(`{"name":"sgex","homepage":"/sgex/main/"}`), 0o600))

			runner := &recordingRunner{err: tc.err}
			if tc.duringBuild != nil {
				runner.onRun = func() { tc.duringBuild(t, workDir) }
			}

			// WHEN
			err := execute(t, newTestConfig(workDir), runner, tc.args...)

			// THEN
			tc.assert(t, workDir, runner, err)
		})
	}
}

func TestBuildCommandArgs(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc   string
		args []string
		err  bool
	}{
		{uc: "no mode", args: []string{}},
		{uc: "upper case root", args: []string{"ROOT"}},
		{uc: "mixed case landing", args: []string{"Landing"}},
		{uc: "unknown mode", args: []string{"feature"}},
		{uc: "verbose branch mode", args: []string{"branch-specific"}},
		{uc: "more than one mode", args: []string{"root", "branch"}, err: true},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			err := NewBuildCommand().ValidateArgs(tc.args)

			// THEN
			if tc.err {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
