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

package pages

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/sgex/pathless/internal/pathless"
	"github.com/sgex/pathless/internal/redirect"
	"github.com/sgex/pathless/internal/topology"
	"github.com/sgex/pathless/internal/x/errorchain"
	"github.com/sgex/pathless/internal/x/template"
)

const (
	FallbackDocumentName = "404.html"
	BootstrapScriptName  = "deeplink-bootstrap.js"

	defaultTitle = "Redirecting"
)

var (
	//go:embed templates/404.html.tmpl
	fallbackDocumentTemplate string

	//go:embed templates/deeplink-bootstrap.js.tmpl
	bootstrapScriptTemplate string
)

type values struct {
	Title          string
	TemplateHash   string
	ProjectPrefix  string
	HostedPatterns []string
	Components     []string
	KnownBranches  []string
	EscapeToken    string
	Marker         string
}

// Generator renders the fallback document served by the host for unknown paths and the bootstrap
// script restoring the encoded location inside the application. Both are derived from the same
// classifier, so they agree with the server side resolution.
type Generator struct {
	fallback  template.Template
	bootstrap template.Template
	values    values
}

func NewGenerator(classifier *topology.Classifier, title string) (*Generator, error) {
	fallback, err := template.New(FallbackDocumentName, fallbackDocumentTemplate)
	if err != nil {
		return nil, err
	}

	bootstrap, err := template.New(BootstrapScriptName, bootstrapScriptTemplate)
	if err != nil {
		return nil, err
	}

	if len(title) == 0 {
		title = defaultTitle
	}

	return &Generator{
		fallback:  fallback,
		bootstrap: bootstrap,
		values: values{
			Title:          title,
			ProjectPrefix:  classifier.ProjectPrefix(),
			HostedPatterns: classifier.HostedPatterns(),
			Components:     classifier.Components().Names(),
			KnownBranches:  append([]string{}, classifier.KnownBranches()...),
			EscapeToken:    redirect.EscapeToken,
			Marker:         redirect.Marker,
		},
	}, nil
}

func (g *Generator) FallbackDocument() (string, error) { return g.render(g.fallback) }

func (g *Generator) BootstrapScript() (string, error) { return g.render(g.bootstrap) }

// WriteAll renders both artifacts into dir and returns the paths of the written files.
func (g *Generator) WriteAll(logger zerolog.Logger, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errorchain.NewWithMessagef(pathless.ErrInternal, "failed creating %s", dir).CausedBy(err)
	}

	artifacts := []struct {
		name   string
		render func() (string, error)
	}{
		{name: FallbackDocumentName, render: g.FallbackDocument},
		{name: BootstrapScriptName, render: g.BootstrapScript},
	}

	written := make([]string, 0, len(artifacts))

	for _, artifact := range artifacts {
		content, err := artifact.render()
		if err != nil {
			return written, err
		}

		path := filepath.Join(dir, artifact.name)
		if err = os.WriteFile(path, []byte(content), 0o644); err != nil { // nolint: gosec
			return written, errorchain.NewWithMessagef(pathless.ErrInternal, "failed writing %s", path).
				CausedBy(err)
		}

		logger.Info().Str("_file", path).Int("_size", len(content)).Msg("Artifact written")

		written = append(written, path)
	}

	return written, nil
}

func (g *Generator) render(tpl template.Template) (string, error) {
	vals := g.values
	vals.TemplateHash = tpl.Hash()

	return tpl.Render(vals)
}
