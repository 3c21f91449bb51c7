// internal/httpserver/metrics.go
//
// Prometheus collectors, served on GET /metrics.

package httpserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// partitionTotal counts partitions by caller (game round or /partition).
	partitionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "absurdle_partitions_total",
		Help: "Total partitions computed, by source",
	}, []string{"source"})

	// partitionDuration tracks partition latency.
	partitionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "absurdle_partition_duration_seconds",
		Help:    "Partition duration in seconds, by source",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	}, []string{"source"})

	// keptBucketSize tracks how many candidates survive a partition.
	keptBucketSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "absurdle_kept_bucket_size",
		Help:    "Candidates remaining after a partition",
		Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})

	gamesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "absurdle_games_started_total",
		Help: "Total games started",
	})

	// gamesFinished counts games by outcome (won, lost).
	gamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "absurdle_games_finished_total",
		Help: "Total games finished, by outcome",
	}, []string{"outcome"})

	sessionsRestored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "absurdle_sessions_restored_total",
		Help: "Games rebuilt from a session token after a store miss",
	})
)
