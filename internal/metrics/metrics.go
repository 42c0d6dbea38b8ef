package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SourceFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_fetch_total",
			Help: "Total upstream fetches by source and outcome",
		},
		[]string{"source", "status"},
	)

	SourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "source_fetch_duration_seconds",
			Help: "Duration of upstream fetches in seconds",
		},
		[]string{"source"},
	)

	DashboardRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_requests_total",
			Help: "Total aggregated dashboard requests",
		},
	)

	ChatSends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_sends_total",
			Help: "Total chat message sends by outcome",
		},
		[]string{"status"},
	)
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)
