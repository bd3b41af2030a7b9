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

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sgex/pathless/internal/fallback"
)

type DecisionObserver interface {
	Observe(decision fallback.Decision)
}

type DecisionCounter struct {
	counter *prometheus.CounterVec
}

// NewDecisionCounter registers pathless_fallback_decisions_total{topology,kind}.
func NewDecisionCounter(registerer prometheus.Registerer) *DecisionCounter {
	return &DecisionCounter{
		counter: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Name: prometheus.BuildFQName("pathless", "fallback", "decisions_total"),
				Help: "Count of fallback decisions taken for unknown paths by topology and kind.",
			},
			[]string{"topology", "kind"},
		),
	}
}

func (c *DecisionCounter) Observe(decision fallback.Decision) {
	c.counter.WithLabelValues(decision.Classification.Topology.String(), decision.Kind.String()).Inc()
}
