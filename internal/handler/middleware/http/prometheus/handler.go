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
	"net/http"
	"strconv"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metricsHandler struct {
	reqCounter      *prometheus.CounterVec
	reqHistogram    *prometheus.HistogramVec
	reqInFlight     *prometheus.GaugeVec
	filterOperation OperationFilter
}

// New observes request counts, durations and in flight requests. The request path is deliberately
// not used as label, since every deep link is a distinct path on a path-less host.
func New(options ...Option) func(http.Handler) http.Handler {
	conf := opts{
		registerer:      prometheus.DefaultRegisterer,
		labels:          make(prometheus.Labels),
		filterOperation: func(*http.Request) bool { return false },
	}

	for _, opt := range options {
		opt(&conf)
	}

	counter := promauto.With(conf.registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name:        prometheus.BuildFQName(conf.namespace, conf.subsystem, "requests_total"),
			Help:        "Count all http requests by status code and method.",
			ConstLabels: conf.labels,
		},
		[]string{"status_code", "method"},
	)

	histogram := promauto.With(conf.registerer).NewHistogramVec(prometheus.HistogramOpts{
		Name:        prometheus.BuildFQName(conf.namespace, conf.subsystem, "request_duration_seconds"),
		Help:        "Duration of all HTTP requests by status code and method.",
		ConstLabels: conf.labels,
		Buckets: []float64{
			0.0001, // 100µs
			0.0005,
			0.001, // 1ms
			0.005,
			0.01, // 10ms
			0.05,
			0.1, // 100ms
			0.5,
			1.0, // 1s
			5.0,
		},
	},
		[]string{"status_code", "method"},
	)

	gauge := promauto.With(conf.registerer).NewGaugeVec(prometheus.GaugeOpts{
		Name:        prometheus.BuildFQName(conf.namespace, conf.subsystem, "requests_in_progress_total"),
		Help:        "All the requests in progress",
		ConstLabels: conf.labels,
	}, []string{"method"})

	handler := &metricsHandler{
		reqCounter:      counter,
		reqHistogram:    histogram,
		reqInFlight:     gauge,
		filterOperation: conf.filterOperation,
	}

	return handler.observeRequest
}

func (h *metricsHandler) observeRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		if h.filterOperation(req) {
			next.ServeHTTP(rw, req)

			return
		}

		start := time.Now()
		method := req.Method

		h.reqInFlight.WithLabelValues(method).Inc()
		defer h.reqInFlight.WithLabelValues(method).Dec()

		metrics := httpsnoop.CaptureMetrics(next, rw, req)

		statusCode := strconv.Itoa(metrics.Code)
		h.reqCounter.WithLabelValues(statusCode, method).Inc()
		h.reqHistogram.WithLabelValues(statusCode, method).Observe(time.Since(start).Seconds())
	})
}
