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
	"context"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/sgex/pathless/internal/pathless"
	"github.com/sgex/pathless/internal/x/errorchain"
)

type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

type execRunner struct {
	logger zerolog.Logger
}

// NewExecRunner returns a Runner executing commands as child processes. Their output is forwarded
// to the logger.
func NewExecRunner(logger zerolog.Logger) Runner {
	return &execRunner{logger: logger}
}

func (r *execRunner) Run(ctx context.Context, cmd Command) error {
	path, err := exec.LookPath(cmd.Name)
	if err != nil {
		return errorchain.NewWithMessagef(pathless.ErrBuild, "command %q not found", cmd.Name).CausedBy(err)
	}

	execCmd := exec.CommandContext(ctx, path, cmd.Args...) // nolint: gosec
	execCmd.Dir = cmd.Dir
	execCmd.Env = cmd.Env
	execCmd.Stdout = r.logger.With().Str("_stream", "stdout").Logger()
	execCmd.Stderr = r.logger.With().Str("_stream", "stderr").Logger()

	if err = execCmd.Run(); err != nil {
		return errorchain.NewWithMessagef(pathless.ErrBuild, "%s failed", cmd.Name).CausedBy(err)
	}

	return nil
}
