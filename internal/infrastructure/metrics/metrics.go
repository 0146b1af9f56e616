package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Payable metrics
	PayablesCreated prometheus.Counter
	PayablesUpdated prometheus.Counter
	PayablesDeleted prometheus.Counter
	PayableErrors   *prometheus.CounterVec

	// Summary metrics
	SummaryBuilds    prometheus.Counter
	SummaryCacheHits prometheus.Counter
	SummaryDuration  prometheus.Histogram

	// Export metrics
	ExportsStarted  prometheus.Counter
	ExportsFailed   prometheus.Counter
	ExportDuration  prometheus.Histogram
	ExportRowsTotal prometheus.Histogram

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
	AuthFailures *prometheus.CounterVec

	// Notification metrics
	NotificationsSent   prometheus.Counter
	NotificationsFailed prometheus.Counter

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		PayablesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_payables_created_total",
			Help: "Total number of payables created",
		}),
		PayablesUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_payables_updated_total",
			Help: "Total number of payables updated",
		}),
		PayablesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_payables_deleted_total",
			Help: "Total number of payables deleted",
		}),
		PayableErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_payable_errors_total",
				Help: "Total number of payable operation errors by type",
			},
			[]string{"error_type"},
		),

		SummaryBuilds: promauto.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_summary_builds_total",
			Help: "Total number of dashboard summaries built",
		}),
		SummaryCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_summary_cache_hits_total",
			Help: "Total number of summaries served from cache",
		}),
		SummaryDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "backoffice_summary_duration_seconds",
			Help:    "Duration of summary builds",
			Buckets: prometheus.DefBuckets,
		}),

		ExportsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_exports_started_total",
			Help: "Total number of spreadsheet exports started",
		}),
		ExportsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_exports_failed_total",
			Help: "Total number of spreadsheet exports that failed",
		}),
		ExportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "backoffice_export_duration_seconds",
			Help:    "Duration of spreadsheet export jobs",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120},
		}),
		ExportRowsTotal: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "backoffice_export_rows",
			Help:    "Rows written per export",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		}),

		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backoffice_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backoffice_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "backoffice_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
		AuthFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_auth_failures_total",
				Help: "Total authentication failures",
			},
			[]string{"reason"},
		),

		NotificationsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_notifications_sent_total",
			Help: "Total notifications dispatched",
		}),
		NotificationsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_notifications_failed_total",
			Help: "Total notifications that failed to send",
		}),

		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
