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

package serve

import (
	"github.com/spf13/cobra"

	"github.com/sgex/pathless/cmd/bootstrap"
	"github.com/sgex/pathless/internal/handler/host"
)

const (
	FlagSiteDir      = "site-dir"
	FlagPort         = "port"
	FlagFallbackMode = "fallback-mode"
)

// NewHostCommand represents the "serve host" command.
func NewHostCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "host",
		Short: "Serves a built site the way a path-less static host does",
		Long: "Serves the files of the site directory. Every unknown path gets the fallback document with\n" +
			"status 404, or, in redirect mode, the redirect the fallback document would perform.",
		Example: "pathless serve host --site-dir build --fallback-mode redirect",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := createApp(cmd, hostOverrides(cmd), host.Module)
			if err != nil {
				return err
			}

			app.Run()

			return nil
		},
	}

	cmd.Flags().String(FlagSiteDir, "", "Directory holding the built site. Overrides serve.site_dir")
	cmd.Flags().String(FlagPort, "", "Port to listen on. Overrides serve.port")
	cmd.Flags().String(FlagFallbackMode, "", "Either document or redirect. Overrides serve.fallback.mode")

	return cmd
}

func hostOverrides(cmd *cobra.Command) map[string]any {
	return bootstrap.StringOverrides(cmd, map[string]string{
		FlagSiteDir:      "serve.site_dir",
		FlagPort:         "serve.port",
		FlagFallbackMode: "serve.fallback.mode",
	})
}
