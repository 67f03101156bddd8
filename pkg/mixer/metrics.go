/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

package mixer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mix_search_duration_seconds",
			Help:    "Time taken by a complete greedy search",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
	)

	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mix_searches_total",
			Help: "Total number of search runs",
		},
		[]string{"status"}, // success, infeasible, or error
	)

	searchStepsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mix_search_steps_total",
			Help: "Total number of committed search steps across all runs",
		},
	)
)
