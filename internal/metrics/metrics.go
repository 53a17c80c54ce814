// Package metrics exposes Prometheus instrumentation for scans and renames.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SeasonsDiscovered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "plextools_seasons_discovered_total",
		Help: "Total number of season folders discovered across scans.",
	})
	EpisodesDiscovered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "plextools_episodes_discovered_total",
		Help: "Total number of eligible episode files discovered across scans.",
	})

	RenamesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plextools_renames_total",
		Help: "Total number of rename attempts during execution.",
	}, []string{"status"}) // status: done, error

	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "plextools_scan_duration_seconds",
		Help:    "Duration of show scans in seconds.",
		Buckets: prometheus.DefBuckets,
	})
)

// RecordScanDuration records the time taken for a show scan.
func RecordScanDuration(start time.Time) {
	ScanDuration.Observe(time.Since(start).Seconds())
}
