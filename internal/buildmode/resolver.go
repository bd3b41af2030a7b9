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
	_ "embed"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/drone/envsubst/v2"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/wI2L/jsondiff"

	"github.com/sgex/pathless/internal/pathless"
	"github.com/sgex/pathless/internal/x/errorchain"
	"github.com/sgex/pathless/internal/x/template"
)

const homepageKey = "homepage"

//go:embed templates/landing.js.tmpl
var defaultLandingTemplate string

type Settings struct {
	Command         []string
	WorkDir         string
	EntryFile       string
	ManifestFile    string
	LandingTemplate string
	ProjectPrefix   string
	DefaultBranch   string
}

// Resolver runs the build for a Plan. A root landing build temporarily replaces the entry composition
// and the homepage of the package manifest. Both are restored whatever the outcome of the build.
type Resolver struct {
	logger   zerolog.Logger
	runner   Runner
	settings Settings
	landing  template.Template
}

func NewResolver(logger zerolog.Logger, runner Runner, settings Settings) (*Resolver, error) {
	if len(settings.Command) == 0 || len(settings.Command[0]) == 0 {
		return nil, errorchain.NewWithMessage(pathless.ErrConfiguration, "no build command configured")
	}

	source := defaultLandingTemplate

	if len(settings.LandingTemplate) != 0 {
		raw, err := os.ReadFile(settings.LandingTemplate)
		if err != nil {
			return nil, errorchain.NewWithMessagef(pathless.ErrConfiguration,
				"failed reading landing template %s", settings.LandingTemplate).CausedBy(err)
		}

		source = string(raw)
	}

	landing, err := template.New("landing", source)
	if err != nil {
		return nil, err
	}

	return &Resolver{logger: logger, runner: runner, settings: settings, landing: landing}, nil
}

func (r *Resolver) Run(ctx context.Context, plan Plan) error {
	r.logger.Info().
		Str("_mode", plan.Mode.String()).
		Str("_branch", plan.Branch).
		Str("_base_path", plan.BasePath).
		Msg("Starting build")

	start := time.Now()

	var err error
	if plan.Mode == RootLanding {
		err = r.runRootLanding(ctx, plan)
	} else {
		err = r.runBuild(ctx, plan)
	}

	if err != nil {
		r.logger.Error().Err(err).Msg("Build failed")

		return err
	}

	r.logger.Info().Dur("_duration", time.Since(start)).Msg("Build finished")

	return nil
}

func (r *Resolver) runRootLanding(ctx context.Context, plan Plan) error {
	entryFile := r.path(r.settings.EntryFile)
	manifestFile := r.path(r.settings.ManifestFile)

	return WithSnapshot([]string{entryFile, manifestFile}, func() error {
		if err := r.writeLandingComposition(entryFile, plan); err != nil {
			return err
		}

		if err := r.setHomepage(manifestFile, plan.BasePath); err != nil {
			return err
		}

		return r.runBuild(ctx, plan)
	})
}

func (r *Resolver) writeLandingComposition(path string, plan Plan) error {
	content, err := r.landing.Render(map[string]any{
		"ProjectPrefix": r.settings.ProjectPrefix,
		"DefaultBranch": r.settings.DefaultBranch,
		"Branch":        plan.Branch,
		"BasePath":      plan.BasePath,
	})
	if err != nil {
		return errorchain.NewWithMessage(pathless.ErrBuild, "failed rendering landing composition").CausedBy(err)
	}

	if err = os.WriteFile(path, []byte(content), 0o644); err != nil { // nolint: gosec
		return errorchain.NewWithMessagef(pathless.ErrBuild, "failed writing %s", path).CausedBy(err)
	}

	r.logger.Debug().Str("_file", path).Msg("Entry composition replaced by landing composition")

	return nil
}

func (r *Resolver) setHomepage(path, homepage string) error {
	original, err := os.ReadFile(path)
	if err != nil {
		return errorchain.NewWithMessagef(pathless.ErrBuild, "failed reading %s", path).CausedBy(err)
	}

	if !gjson.ValidBytes(original) {
		return errorchain.NewWithMessagef(pathless.ErrBuild, "%s is not a valid JSON document", path)
	}

	if gjson.GetBytes(original, homepageKey).String() == homepage {
		return nil
	}

	modified, err := sjson.SetBytes(original, homepageKey, homepage)
	if err != nil {
		return errorchain.NewWithMessagef(pathless.ErrBuild, "failed updating %s", path).CausedBy(err)
	}

	if patch, err := jsondiff.CompareJSON(original, modified,
		jsondiff.MarshalFunc(json.Marshal),
		jsondiff.UnmarshalFunc(json.Unmarshal),
	); err == nil {
		r.logger.Info().Str("_file", path).Str("_patch", patch.String()).Msg("Package manifest updated")
	}

	if err = os.WriteFile(path, modified, 0o644); err != nil { // nolint: gosec
		return errorchain.NewWithMessagef(pathless.ErrBuild, "failed writing %s", path).CausedBy(err)
	}

	return nil
}

func (r *Resolver) runBuild(ctx context.Context, plan Plan) error {
	vars := map[string]string{
		"BRANCH":     plan.Branch,
		"BASE_PATH":  plan.BasePath,
		"MODE":       plan.Mode.String(),
		"OUTPUT_DIR": plan.OutputDir,
	}

	args := make([]string, 0, len(r.settings.Command)-1)

	for _, arg := range r.settings.Command[1:] {
		expanded, err := envsubst.Eval(arg, func(name string) string {
			if val, ok := vars[name]; ok {
				return val
			}

			return os.Getenv(name)
		})
		if err != nil {
			return errorchain.NewWithMessagef(pathless.ErrConfiguration,
				"failed expanding build command argument %q", arg).CausedBy(err)
		}

		args = append(args, expanded)
	}

	env := childEnv(os.Environ(), map[string]string{
		"PUBLIC_URL":  plan.BasePath,
		"BUILD_MODE":  plan.Mode.String(),
		"BRANCH_NAME": plan.Branch,
		"BUILD_PATH":  plan.OutputDir,
	})

	return r.runner.Run(ctx, Command{
		Name: r.settings.Command[0],
		Args: args,
		Dir:  r.settings.WorkDir,
		Env:  env,
	})
}

// childEnv drops every entry of base whose key is in overrides and appends the non-empty overrides,
// so each key occurs at most once.
func childEnv(base []string, overrides map[string]string) []string {
	env := slices.DeleteFunc(slices.Clone(base), func(entry string) bool {
		key, _, _ := strings.Cut(entry, "=")
		_, overridden := overrides[key]

		return overridden
	})

	keys := slices.Sorted(maps.Keys(overrides))
	for _, key := range keys {
		if len(overrides[key]) != 0 {
			env = append(env, key+"="+overrides[key])
		}
	}

	return env
}

func (r *Resolver) path(file string) string {
	if filepath.IsAbs(file) || len(r.settings.WorkDir) == 0 {
		return file
	}

	return filepath.Join(r.settings.WorkDir, file)
}
