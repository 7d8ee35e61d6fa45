package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the contacts module.
type Metrics struct {
	// Snapshot lookups by snapshot name and result ("hit", "miss")
	SnapshotLookups *prometheus.CounterVec

	// Upstream fetches performed to populate a snapshot
	SnapshotFetchLatency *prometheus.HistogramVec

	// Orchestrator operations by name and outcome
	OperationLatency *prometheus.HistogramVec
	OperationTotal   *prometheus.CounterVec

	// Contacts dropped as duplicates by list operations
	DuplicatesDropped prometheus.Counter
}

// New registers the contacts metrics on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		SnapshotLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "regcontacts_snapshot_lookups_total",
			Help: "Snapshot lookups by snapshot and result",
		}, []string{"snapshot", "result"}),

		SnapshotFetchLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "regcontacts_snapshot_fetch_duration_seconds",
			Help:    "Duration of upstream fetches populating a snapshot",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"snapshot", "status"}),

		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "regcontacts_operation_duration_seconds",
			Help:    "Duration of contact orchestrator operations",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		OperationTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "regcontacts_operations_total",
			Help: "Contact orchestrator operations by outcome",
		}, []string{"operation", "status"}), // status: "ok", "error"

		DuplicatesDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "regcontacts_duplicates_dropped_total",
			Help: "Contacts removed by duplicate avoidance",
		}),
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveHit records a snapshot cache hit.
func (m *Metrics) ObserveHit(name string) {
	if m != nil {
		m.SnapshotLookups.WithLabelValues(name, "hit").Inc()
	}
}

// ObserveMiss records a snapshot cache miss.
func (m *Metrics) ObserveMiss(name string) {
	if m != nil {
		m.SnapshotLookups.WithLabelValues(name, "miss").Inc()
	}
}

// ObserveFetch records the duration of a snapshot fetch.
func (m *Metrics) ObserveFetch(name string, d time.Duration, err error) {
	if m != nil {
		m.SnapshotFetchLatency.WithLabelValues(name, status(err)).Observe(d.Seconds())
	}
}

// ObserveOperation records an orchestrator operation started at start.
func (m *Metrics) ObserveOperation(op string, start time.Time, err error) {
	if m != nil {
		m.OperationLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
		m.OperationTotal.WithLabelValues(op, status(err)).Inc()
	}
}

// AddDuplicatesDropped records n contacts removed as duplicates.
func (m *Metrics) AddDuplicatesDropped(n int) {
	if m != nil && n > 0 {
		m.DuplicatesDropped.Add(float64(n))
	}
}
