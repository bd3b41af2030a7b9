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

// Package host emulates a path-less static host: it serves files as they are and answers every
// unknown path with the fallback document, optionally performing the fallback redirect itself.
package host

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/elnormous/contenttype"
	"github.com/rs/zerolog"

	"github.com/sgex/pathless/internal/accesscontext"
	"github.com/sgex/pathless/internal/allowlist"
	"github.com/sgex/pathless/internal/config"
	"github.com/sgex/pathless/internal/fallback"
	"github.com/sgex/pathless/internal/pages"
	"github.com/sgex/pathless/internal/prometheus"
	"github.com/sgex/pathless/internal/redirect"
	"github.com/sgex/pathless/internal/topology"
	"github.com/sgex/pathless/internal/x/httpx"
)

const indexDocument = "index.html"

// nolint: gochecknoglobals
var htmlMediaTypes = []contenttype.MediaType{
	contenttype.NewMediaType("text/html"),
	contenttype.NewMediaType("application/xhtml+xml"),
}

// snapshot is replaced as a whole on allow list reload.
type snapshot struct {
	resolver *fallback.Resolver
	document []byte
}

type Handler struct {
	current        atomic.Pointer[snapshot]
	root           http.Dir
	siteDir        string
	document       string
	mode           config.FallbackMode
	observer       prometheus.DecisionObserver
	loadComponents func() (*allowlist.AllowList, error)
}

func NewHandler(
	conf *config.Configuration,
	classifier *topology.Classifier,
	observer prometheus.DecisionObserver,
) (*Handler, error) {
	routing := conf.Routing

	h := &Handler{
		root:     http.Dir(conf.Serve.SiteDir),
		siteDir:  conf.Serve.SiteDir,
		document: conf.Serve.Fallback.Document,
		mode:     conf.Serve.Fallback.Mode,
		observer: observer,
		loadComponents: func() (*allowlist.AllowList, error) {
			return topology.LoadAllowList(routing)
		},
	}

	if err := h.store(classifier); err != nil {
		return nil, err
	}

	return h, nil
}

func (h *Handler) Resolver() *fallback.Resolver { return h.current.Load().resolver }

func (h *Handler) store(classifier *topology.Classifier) error {
	gen, err := pages.NewGenerator(classifier, "")
	if err != nil {
		return err
	}

	doc, err := gen.FallbackDocument()
	if err != nil {
		return err
	}

	h.current.Store(&snapshot{resolver: fallback.NewResolver(classifier), document: []byte(doc)})

	return nil
}

// OnChanged reloads the component allow list. A list failing to load keeps the previous one active.
func (h *Handler) OnChanged(logger zerolog.Logger) {
	list, err := h.loadComponents()
	if err != nil {
		logger.Warn().Err(err).Msg("Reloading component allow list failed. Keeping the current one")

		return
	}

	classifier := h.Resolver().Classifier().WithComponents(list)
	if err = h.store(classifier); err != nil {
		logger.Warn().Err(err).Msg("Rendering fallback document failed. Keeping the current allow list")

		return
	}

	logger.Info().Strs("_components", list.Names()).Msg("Component allow list reloaded")
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	name := path.Clean("/" + req.URL.Path)

	file, info, err := h.open(name)
	if err == nil {
		defer file.Close()

		if info.IsDir() {
			h.serveDirectory(rw, req, name)

			return
		}

		http.ServeContent(rw, req, info.Name(), info.ModTime(), file)

		return
	}

	if !errors.Is(err, fs.ErrNotExist) {
		zerolog.Ctx(req.Context()).Warn().Err(err).Str("_file", name).Msg("Opening file failed")
		accesscontext.SetError(req.Context(), err)
	}

	h.serveFallback(rw, req)
}

func (h *Handler) open(name string) (http.File, fs.FileInfo, error) {
	file, err := h.root.Open(name)
	if err != nil {
		return nil, nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()

		return nil, nil, err
	}

	return file, info, nil
}

// serveDirectory mimics the static host: a directory is only served through its index document,
// and a directory addressed without trailing slash is redirected to the slashed form.
func (h *Handler) serveDirectory(rw http.ResponseWriter, req *http.Request, name string) {
	if !strings.HasSuffix(req.URL.Path, "/") {
		target := req.URL.Path + "/"
		if len(req.URL.RawQuery) != 0 {
			target += "?" + req.URL.RawQuery
		}

		http.Redirect(rw, req, target, http.StatusMovedPermanently)

		return
	}

	index, info, err := h.open(path.Join(name, indexDocument))
	if err != nil || info.IsDir() {
		if index != nil {
			index.Close()
		}

		h.serveFallback(rw, req)

		return
	}

	defer index.Close()

	http.ServeContent(rw, req, indexDocument, info.ModTime(), index)
}

func (h *Handler) serveFallback(rw http.ResponseWriter, req *http.Request) {
	current := h.current.Load()
	loc := redirect.Location{Host: httpx.RequestHost(req), Pathname: req.URL.EscapedPath()}

	if len(req.URL.RawQuery) != 0 {
		loc.Search = "?" + req.URL.RawQuery
	}

	decision := current.resolver.Resolve(httpx.Hostname(loc.Host), loc)

	accesscontext.SetDecision(req.Context(), decision)
	h.observer.Observe(decision)

	zerolog.Ctx(req.Context()).Debug().
		Str("_fallback", decision.Kind.String()).
		Str("_outcome", decision.Classification.Outcome.String()).
		Msg("Path not found on host")

	if h.mode == config.FallbackModeRedirect && acceptsHTML(req) {
		if !decision.Redirects() {
			http.NotFound(rw, req)

			return
		}

		rw.Header().Set("Cache-Control", "no-store")
		http.Redirect(rw, req, decision.Target, http.StatusFound)

		return
	}

	h.writeFallbackDocument(rw, req, current.document)
}

// writeFallbackDocument serves the fallback document of the site, or the generated one if the
// site does not ship any, always with status 404 as the static host does.
func (h *Handler) writeFallbackDocument(rw http.ResponseWriter, req *http.Request, generated []byte) {
	content := generated

	if raw, err := os.ReadFile(filepath.Join(h.siteDir, filepath.FromSlash(h.document))); err == nil {
		content = raw
	} else if !errors.Is(err, fs.ErrNotExist) {
		zerolog.Ctx(req.Context()).Warn().Err(err).Msg("Reading fallback document failed. Using generated one")
	}

	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	rw.Header().Set("Cache-Control", "no-cache")
	rw.WriteHeader(http.StatusNotFound)

	if req.Method != http.MethodHead {
		_, _ = rw.Write(content)
	}
}

func acceptsHTML(req *http.Request) bool {
	if len(req.Header.Get("Accept")) == 0 {
		return false
	}

	_, _, err := contenttype.GetAcceptableMediaType(req, htmlMediaTypes)

	return err == nil
}
