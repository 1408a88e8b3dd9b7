package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginAttemptsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Total number of login attempts",
	})

	LoginFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "login_failures_total",
		Help: "Total number of rejected login attempts",
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "active_sessions",
		Help: "Number of live dashboard sessions",
	})

	MutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_mutations_total",
		Help: "Total number of store mutations by entity and action",
	}, []string{"entity", "action"})

	MutationsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_mutations_rejected_total",
		Help: "Total number of rejected store mutations",
	}, []string{"entity", "reason"})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of manually created orders",
	})

	InquiriesSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inquiries_submitted_total",
		Help: "Total number of partner join requests submitted",
	})

	BrandsOnboardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brands_onboarded_total",
		Help: "Total number of brands created",
	})

	ManifestExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "manifest_exports_total",
		Help: "Total number of shipping manifest exports",
	}, []string{"view"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
