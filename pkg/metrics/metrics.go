// Copyright 2024 replidb Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics holds the prometheus metrics of the coordinator.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics of the replication core.
var (
	ProposedDDLCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "replidb",
		Subsystem: "ddl",
		Name:      "proposed_total",
		Help:      "Counter of proposed DDL statements.",
	})

	EnqueuedEntries = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "replidb",
		Subsystem: "ddl",
		Name:      "enqueued_entries_total",
		Help:      "Counter of log entries enqueued to the coordination store.",
	})

	AppliedEntries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "replidb",
		Subsystem: "ddl",
		Name:      "applied_entries_total",
		Help:      "Counter of applied log entries.",
	}, []string{"result"})

	ApplyDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "replidb",
		Subsystem: "ddl",
		Name:      "apply_duration_seconds",
		Help:      "Bucketed histogram of log entry apply time.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
	})

	SnapshotRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "replidb",
		Subsystem: "recovery",
		Name:      "snapshot_retries_total",
		Help:      "Counter of metadata snapshot consistency retries.",
	})

	RecoveredTables = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "replidb",
		Subsystem: "recovery",
		Name:      "reconciled_objects_total",
		Help:      "Counter of objects touched by replica recovery.",
	}, []string{"action"})
)

// ObserveApply records the outcome of one entry application.
func ObserveApply(d time.Duration, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	AppliedEntries.WithLabelValues(result).Inc()
	ApplyDuration.Observe(d.Seconds())
}

// RegisterMetrics registers all metrics on the given registerer.
func RegisterMetrics(r prometheus.Registerer) {
	r.MustRegister(
		ProposedDDLCounter,
		EnqueuedEntries,
		AppliedEntries,
		ApplyDuration,
		SnapshotRetries,
		RecoveredTables,
	)
}
