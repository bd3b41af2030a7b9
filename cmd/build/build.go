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
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sgex/pathless/cmd/bootstrap"
	"github.com/sgex/pathless/internal/buildmode"
	"github.com/sgex/pathless/internal/config"
	"github.com/sgex/pathless/internal/logging"
	"github.com/sgex/pathless/internal/x"
)

const (
	FlagBranch = "branch"

	envBuildMode = "BUILD_MODE"
	envRefName   = "GITHUB_REF_NAME"
	envRef       = "GITHUB_REF"
)

// NewBuildCommand represents the "build" command.
func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [root|landing|branch]",
		Short: "Runs the application build for the root landing or a branch deployment",
		Long: "Runs the configured build command. The mode is taken from the argument, from " + envBuildMode + "\n" +
			"or defaults to branch. The branch is taken from --branch, " + envRefName + " or " + envRef + ".\n" +
			"A root landing build temporarily replaces the entry composition and the manifest homepage.",
		Example:   "GITHUB_REF=refs/heads/feature/x pathless build branch",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"root", "landing", "branch"},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, _, err := bootstrap.Configuration(cmd, nil)
			if err != nil {
				return err
			}

			logger := logging.NewLogger(conf.Log)

			return Run(cmd, args, conf, buildmode.NewExecRunner(logger), logger)
		},
	}

	cmd.Flags().String(FlagBranch, "", "Branch to build for. Overrides the CI provided git ref")

	return cmd
}

// Run resolves the build plan from arguments, flags and environment and executes it with runner.
func Run(
	cmd *cobra.Command,
	args []string,
	conf *config.Configuration,
	runner buildmode.Runner,
	logger zerolog.Logger,
) error {
	var arg string
	if len(args) != 0 {
		arg = args[0]
	}

	mode := buildmode.ResolveMode(arg, os.Getenv(envBuildMode))

	ref, _ := cmd.Flags().GetString(FlagBranch)
	if len(ref) == 0 {
		ref = x.OrDefault(os.Getenv(envRefName), os.Getenv(envRef))
	}

	branch := buildmode.ResolveBranch(ref, conf.Routing.DefaultBranch)

	plan, err := buildmode.NewPlan(mode, branch, conf.Routing.ProjectPrefix, conf.Build.OutputDir)
	if err != nil {
		return err
	}

	resolver, err := buildmode.NewResolver(logger, runner, buildmode.Settings{
		Command:         conf.Build.Command,
		WorkDir:         conf.Build.WorkDir,
		EntryFile:       conf.Build.EntryFile,
		ManifestFile:    conf.Build.ManifestFile,
		LandingTemplate: conf.Build.LandingTemplate,
		ProjectPrefix:   conf.Routing.ProjectPrefix,
		DefaultBranch:   conf.Routing.DefaultBranch,
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return resolver.Run(ctx, plan)
}
