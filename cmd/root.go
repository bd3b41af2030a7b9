// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
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

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sgex/pathless/cmd/flags"
	"github.com/sgex/pathless/version"
)

// nolint: gochecknoglobals
var RootCmd = &cobra.Command{
	Use:   "pathless",
	Short: "Deep link routing for single page applications on path-less static hosts",
	Long: "pathless classifies requests against the root landing and per-branch deployment topologies,\n" +
		"encodes and decodes the fallback redirects, generates the host fallback document,\n" +
		"runs mode specific builds and emulates the static host locally.",
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// nolint: gochecknoinits
func init() {
	flags.RegisterGlobalFlags(RootCmd)
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		RootCmd.PrintErrln(err)
		os.Exit(1)
	}
}
