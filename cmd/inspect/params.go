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

package inspect

import (
	"github.com/spf13/cobra"

	"github.com/sgex/pathless/internal/redirect"
	"github.com/sgex/pathless/internal/routeparams"
)

type paramsView struct {
	Routable bool                `json:"routable"`
	Location locationView        `json:"location"`
	Params   *routeparams.Params `json:"params,omitempty"`
}

// NewParamsCommand represents the "params" command. An encoded redirect is decoded first, like the
// application does on load.
func NewParamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "params <url-or-path>",
		Short:   "Extracts the route parameters the application sees for a location",
		Example: "pathless params --host litlfred.github.io /sgex/main/dashboard/user/repo/feature",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cls, err := classifier(cmd)
			if err != nil {
				return err
			}

			hostname, loc := target(cmd, args[0])
			loc, _ = redirect.Decode(loc)

			view := paramsView{Location: newLocationView(loc)}

			if params, ok := routeparams.FromLocation(cls, hostname, loc.Pathname); ok {
				view.Routable = true
				view.Params = &params
			}

			return writeJSON(cmd.OutOrStdout(), view)
		},
	}

	registerHostFlag(cmd)

	return cmd
}
