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
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/sgex/pathless/cmd/bootstrap"
	"github.com/sgex/pathless/internal/redirect"
	"github.com/sgex/pathless/internal/topology"
)

const (
	FlagHost = "host"

	defaultHost = "localhost"
)

type locationView struct {
	Host     string `json:"host,omitempty"`
	Pathname string `json:"pathname"`
	Search   string `json:"search,omitempty"`
	Hash     string `json:"hash,omitempty"`
	URL      string `json:"url"`
}

func newLocationView(loc redirect.Location) locationView {
	return locationView{
		Host:     loc.Host,
		Pathname: loc.Pathname,
		Search:   loc.Search,
		Hash:     loc.Hash,
		URL:      loc.String(),
	}
}

type classificationView struct {
	Topology string   `json:"topology"`
	Outcome  string   `json:"outcome"`
	Prefix   []string `json:"prefix"`
	Branch   string   `json:"branch,omitempty"`
	Routable []string `json:"routable,omitempty"`
	BasePath string   `json:"base_path"`
}

func newClassificationView(res topology.Classification) classificationView {
	return classificationView{
		Topology: res.Topology.String(),
		Outcome:  res.Outcome.String(),
		Prefix:   append([]string{}, res.Prefix...),
		Branch:   res.Branch,
		Routable: res.Routable,
		BasePath: res.BasePath(),
	}
}

func writeJSON(out io.Writer, value any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(value)
}

func registerHostFlag(cmd *cobra.Command) {
	cmd.Flags().String(FlagHost, "",
		"Hostname the location is requested from.\nDefaults to the host of the given URL or to "+defaultHost)
}

// target parses the positional argument and determines the hostname to classify it for.
func target(cmd *cobra.Command, raw string) (string, redirect.Location) {
	loc := redirect.ParseLocation(raw)

	hostname, _ := cmd.Flags().GetString(FlagHost)
	if len(hostname) == 0 {
		hostname = loc.Hostname()
	}

	if len(hostname) == 0 {
		hostname = defaultHost
	}

	return hostname, loc
}

func classifier(cmd *cobra.Command) (*topology.Classifier, error) {
	conf, _, err := bootstrap.Configuration(cmd, nil)
	if err != nil {
		return nil, err
	}

	return topology.FromConfig(conf.Routing)
}
