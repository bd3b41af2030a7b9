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

package template

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/sgex/pathless/internal/pathless"
	"github.com/sgex/pathless/internal/x/errorchain"
	"github.com/sgex/pathless/internal/x/stringx"
)

var ErrTemplateRender = errors.New("template error")

type Template interface {
	Render(values any) (string, error)
	Hash() string
}

type templateImpl struct {
	t    *template.Template
	hash string
}

func New(name, val string) (Template, error) {
	funcMap := sprig.TxtFuncMap()
	delete(funcMap, "env")
	delete(funcMap, "expandenv")

	tmpl, err := template.New(name).
		Funcs(funcMap).
		Funcs(template.FuncMap{
			"globToRegex": GlobToRegex,
		}).
		Parse(val)
	if err != nil {
		return nil, errorchain.NewWithMessagef(pathless.ErrConfiguration, "failed to parse %s template", name).
			CausedBy(err)
	}

	hash := sha256.Sum256(stringx.ToBytes(val))

	return &templateImpl{t: tmpl, hash: hex.EncodeToString(hash[:])}, nil
}

func Must(name, val string) Template {
	tpl, err := New(name, val)
	if err != nil {
		panic(err)
	}

	return tpl
}

func (t *templateImpl) Render(values any) (string, error) {
	var buf bytes.Buffer

	if err := t.t.Execute(&buf, values); err != nil {
		return "", errorchain.New(ErrTemplateRender).CausedBy(err)
	}

	return buf.String(), nil
}

func (t *templateImpl) Hash() string { return t.hash }

// GlobToRegex converts a host glob pattern into an anchored regular expression source usable in
// browser scripts. "*" matches within a single label, "**" across labels.
func GlobToRegex(pattern string) string {
	var buf strings.Builder

	buf.WriteString("^")

	for idx := 0; idx < len(pattern); idx++ {
		switch chr := pattern[idx]; chr {
		case '*':
			if idx+1 < len(pattern) && pattern[idx+1] == '*' {
				buf.WriteString(".*")
				idx++
			} else {
				buf.WriteString("[^.]*")
			}
		case '?':
			buf.WriteString("[^.]")
		case '.', '+', '(', ')', '|', '^', '$', '[', ']', '{', '}', '\\', '/':
			buf.WriteByte('\\')
			buf.WriteByte(chr)
		default:
			buf.WriteByte(chr)
		}
	}

	buf.WriteString("$")

	return buf.String()
}
