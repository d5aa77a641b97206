package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rfid_client",
			Name:      "requests_total",
			Help:      "Requests sent to the RFID API.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rfid_client",
			Name:      "request_failures_total",
			Help:      "Requests that ended in a network error or non-2xx status.",
		},
		[]string{"operation"},
	)

	togglesEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rfid_client",
			Name:      "toggles_enqueued_total",
			Help:      "Async toggles accepted for sending, by rfid hash bucket.",
		},
		[]string{"bucket"},
	)
)
