// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ToolCallsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_completed_total",
			Help: "Total number of tool calls completed successfully",
		},
		[]string{"tool"},
	)

	ToolCallsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_failed_total",
			Help: "Total number of tool calls that failed",
		},
		[]string{"tool", "error_code"},
	)

	ToolCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "tool_call_duration_seconds",
			Help: "Duration of tool call processing in seconds",
		},
		[]string{"tool"},
	)

	StoreQueriesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_queries_failed_total",
			Help: "Total number of plan store queries that failed and were masked as empty results",
		},
		[]string{"tool"},
	)
)
