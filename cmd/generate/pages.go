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

package generate

import (
	"github.com/spf13/cobra"

	"github.com/sgex/pathless/cmd/bootstrap"
	"github.com/sgex/pathless/internal/logging"
	"github.com/sgex/pathless/internal/pages"
	"github.com/sgex/pathless/internal/topology"
)

const (
	FlagOut   = "out"
	FlagTitle = "title"
)

// NewPagesCommand represents the "generate" command.
func NewPagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Renders the host fallback document and the deep link bootstrap script",
		Long: "Renders " + pages.FallbackDocumentName + " to be served by the static host for every unknown path\n" +
			"and " + pages.BootstrapScriptName + " restoring the encoded location inside the application.",
		Example: "pathless generate --out public",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, _ := cmd.Flags().GetString(FlagOut)
			title, _ := cmd.Flags().GetString(FlagTitle)

			conf, _, err := bootstrap.Configuration(cmd, nil)
			if err != nil {
				return err
			}

			classifier, err := topology.FromConfig(conf.Routing)
			if err != nil {
				return err
			}

			gen, err := pages.NewGenerator(classifier, title)
			if err != nil {
				return err
			}

			written, err := gen.WriteAll(logging.NewLogger(conf.Log), out)
			if err != nil {
				return err
			}

			for _, path := range written {
				cmd.Println(path)
			}

			return nil
		},
	}

	cmd.Flags().String(FlagOut, "public", "Directory to write the generated files to")
	cmd.Flags().String(FlagTitle, "", "Title of the fallback document")

	return cmd
}
