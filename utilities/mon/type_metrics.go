// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mon

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gcp_topology"

// Metrics holds the counters and gauges of one check instance
type Metrics struct {
	EventsIngested   *prometheus.CounterVec
	EventsDispatched *prometheus.CounterVec
	ObjectsFetched   *prometheus.CounterVec
	Fallbacks        *prometheus.CounterVec
	ObjectsDeleted   prometheus.Counter
	DeleteFailures   prometheus.Counter
	RunStatus        *prometheus.GaugeVec
	RunDuration      *prometheus.HistogramVec
}

// NewMetrics registers the metrics on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EventsIngested: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "logsource",
			Name:      "events_ingested_total",
			Help:      "Total number of normalized audit events by source path.",
		}, []string{"path"}), // path: bucket, lookup
		EventsDispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "collectors",
			Name:      "events_dispatched_total",
			Help:      "Total number of audit events handed to the registry by outcome.",
		}, []string{"outcome"}), // outcome: handled, ignored
		ObjectsFetched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "logsource",
			Name:      "objects_fetched_total",
			Help:      "Total number of log objects fetched by outcome.",
		}, []string{"outcome"}), // outcome: ok, malformed, missing, error
		Fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "logsource",
			Name:      "fallbacks_total",
			Help:      "Total number of point query fallbacks by reason.",
		}, []string{"reason"}),
		ObjectsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "retention",
			Name:      "objects_deleted_total",
			Help:      "Total number of log objects deleted by the retention cleanup.",
		}),
		DeleteFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "retention",
			Name:      "delete_failures_total",
			Help:      "Total number of failed batch deletions.",
		}),
		RunStatus: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "check",
			Name:      "status",
			Help:      "Last service check status, 0 ok, 1 warning, 2 critical.",
		}, []string{"check"}),
		RunDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "check",
			Name:      "run_duration_seconds",
			Help:      "Duration of check runs by kind.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
		}, []string{"kind"}), // kind: full, incremental
	}
}

// Discard returns metrics registered on a private registry
func Discard() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}
