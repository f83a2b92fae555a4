package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/soonscan/soonscan/internal/model"
)

var (
	syncerCyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "soonscan",
		Subsystem: "syncer",
		Name:      "cycles_total",
		Help:      "Count of sync cycles against the node.",
	}, []string{"network", "status"})

	syncerCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "soonscan",
		Subsystem: "syncer",
		Name:      "cycle_duration_seconds",
		Help:      "Duration of sync cycles.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	syncerBlocksIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "soonscan",
		Subsystem: "syncer",
		Name:      "blocks_ingested_total",
		Help:      "Count of blocks upserted into the cache.",
	}, []string{"network"})

	syncerLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "soonscan",
		Subsystem: "syncer",
		Name:      "lookups_total",
		Help:      "Count of on-demand transaction lookups.",
	}, []string{"network", "status"})

	syncerLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "soonscan",
		Subsystem: "syncer",
		Name:      "lookup_duration_seconds",
		Help:      "Duration of on-demand transaction lookups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// Syncer tracks metrics for the sync loop.
type Syncer struct {
	network model.Network
}

// NewSyncer constructs a metrics collector for the sync loop.
func NewSyncer(network model.Network) *Syncer {
	if network == "" {
		network = "unknown"
	}
	return &Syncer{network: network}
}

// ObserveCycle records a sync cycle outcome, its duration, and how many
// blocks it ingested.
func (m Syncer) ObserveCycle(err error, blocks int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	syncerCyclesTotal.WithLabelValues(string(m.network), status).Inc()
	syncerCycleDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if blocks > 0 {
		syncerBlocksIngested.WithLabelValues(string(m.network)).Add(float64(blocks))
	}
}

// ObserveLookup records an on-demand transaction lookup outcome.
func (m Syncer) ObserveLookup(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	syncerLookupsTotal.WithLabelValues(string(m.network), status).Inc()
	syncerLookupDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}
