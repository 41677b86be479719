// Package metrics holds the Prometheus instrumentation for the updater,
// exposed by the HTTP server at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Files = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campaign_sheets_files_total",
		Help: "Report files processed, by outcome.",
	}, []string{"status"})

	RowsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campaign_sheets_rows_updated_total",
		Help: "Campaign rows updated in the target worksheet.",
	})

	RowsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campaign_sheets_rows_skipped_total",
		Help: "Campaign rows skipped because no worksheet row matched.",
	})

	CellsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campaign_sheets_cells_updated_total",
		Help: "Individual cell updates that succeeded.",
	})

	CellsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campaign_sheets_cells_failed_total",
		Help: "Individual cell updates abandoned after exhausting retries.",
	})

	RateLimitRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campaign_sheets_rate_limit_retries_total",
		Help: "Cell update attempts retried after a rate-limit response.",
	})
)
