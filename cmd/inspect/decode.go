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
)

type decodedView struct {
	Encoded  bool         `json:"encoded"`
	Location locationView `json:"location"`
}

// NewDecodeCommand represents the "decode" command.
func NewDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decode <url>",
		Short:   "Restores the location an encoded redirect was created for",
		Example: "pathless decode 'https://litlfred.github.io/sgex/?/dashboard/user/repo&tab=1#top'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			restored, encoded := redirect.DecodeURL(args[0])

			return writeJSON(cmd.OutOrStdout(), decodedView{
				Encoded:  encoded,
				Location: newLocationView(restored),
			})
		},
	}
}
