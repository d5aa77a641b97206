package keyqueue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Keys are caller-chosen, so none of these carry a per-key label.
var (
	submissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "rfid_client",
		Subsystem: "keyqueue",
		Name:      "submissions_total",
		Help:      "Jobs accepted for execution.",
	})

	queueFullTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "rfid_client",
		Subsystem: "keyqueue",
		Name:      "queue_full_total",
		Help:      "Submissions refused because their key queue was full.",
	})

	skippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "rfid_client",
		Subsystem: "keyqueue",
		Name:      "skipped_total",
		Help:      "Jobs dropped without running because their context ended.",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "rfid_client",
		Subsystem: "keyqueue",
		Name:      "run_duration_seconds",
		Help:      "Job execution latency.",
		Buckets:   prometheus.DefBuckets,
	})

	activeLanes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "rfid_client",
		Subsystem: "keyqueue",
		Name:      "active_lanes",
		Help:      "Keys that currently have a worker goroutine.",
	})
)
