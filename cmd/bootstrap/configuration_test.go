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

package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgex/pathless/cmd/flags"
	"github.com/sgex/pathless/internal/pathless"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	flags.RegisterGlobalFlags(cmd)
	cmd.Flags().String("site-dir", "", "")
	require.NoError(t, cmd.ParseFlags(args))

	return cmd
}

func TestConfiguration(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
routing:
  project_prefix: workbench
serve:
  site_dir: dist
`), 0o600))

	invalidFile := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalidFile, []byte("routing:\n  foo: bar\n"), 0o600))

	for _, tc := range []struct {
		uc     string
		args   []string
		assert func(t *testing.T, cmd *cobra.Command)
	}{
		{
			uc: "defaults",
			assert: func(t *testing.T, cmd *cobra.Command) {
				t.Helper()

				conf, validator, err := Configuration(cmd, nil)
				require.NoError(t, err)
				require.NotNil(t, validator)
				assert.Equal(t, "sgex", conf.Routing.ProjectPrefix)
				assert.Equal(t, "build", conf.Serve.SiteDir)
			},
		},
		{
			uc:   "config file and flag override",
			args: []string{"-c", configFile, "--site-dir", "public"},
			assert: func(t *testing.T, cmd *cobra.Command) {
				t.Helper()

				overrides := StringOverrides(cmd, map[string]string{"site-dir": "serve.site_dir"})
				require.Equal(t, map[string]any{"serve.site_dir": "public"}, overrides)

				conf, _, err := Configuration(cmd, overrides)
				require.NoError(t, err)
				assert.Equal(t, "workbench", conf.Routing.ProjectPrefix)
				assert.Equal(t, "public", conf.Serve.SiteDir)
			},
		},
		{
			uc:   "invalid config file",
			args: []string{"--config", invalidFile},
			assert: func(t *testing.T, cmd *cobra.Command) {
				t.Helper()

				_, _, err := Configuration(cmd, nil)
				require.ErrorIs(t, err, pathless.ErrConfiguration)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			tc.assert(t, newTestCommand(t, tc.args...))
		})
	}
}
