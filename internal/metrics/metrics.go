package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CheckStatus tracks the latest status code per check (0 OK, 1 WARNING,
	// 2 CRITICAL, 3 UNKNOWN)
	CheckStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "replicheck_check_status",
			Help: "Latest status code reported by each check",
		},
		[]string{"check"},
	)

	// BacklogFiles tracks the latest resolved backlog count per folder
	BacklogFiles = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "replicheck_backlog_files",
			Help: "Resolved backlog file count per replicated folder",
		},
		[]string{"folder", "group"},
	)

	// ProviderErrorsTotal counts provider failures per operation
	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replicheck_provider_errors_total",
			Help: "Total number of replication provider failures",
		},
		[]string{"operation"},
	)

	// PassDuration tracks the duration of a full check pass
	PassDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "replicheck_pass_duration_seconds",
			Help:    "Duration of a full check pass in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// PassesTotal counts completed check passes
	PassesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "replicheck_passes_total",
			Help: "Total number of completed check passes",
		},
	)
)
