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

	"github.com/sgex/pathless/internal/fallback"
)

type decisionView struct {
	Kind           string             `json:"kind"`
	Target         string             `json:"target,omitempty"`
	Classification classificationView `json:"classification"`
}

// NewResolveCommand represents the "resolve" command.
func NewResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resolve <url-or-path>",
		Short:   "Shows what the fallback document does for a location unknown to the host",
		Example: "pathless resolve --host litlfred.github.io /sgex/dashboard/user/repo",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cls, err := classifier(cmd)
			if err != nil {
				return err
			}

			hostname, loc := target(cmd, args[0])
			decision := fallback.NewResolver(cls).Resolve(hostname, loc)

			return writeJSON(cmd.OutOrStdout(), decisionView{
				Kind:           decision.Kind.String(),
				Target:         decision.Target,
				Classification: newClassificationView(decision.Classification),
			})
		},
	}

	registerHostFlag(cmd)

	return cmd
}
