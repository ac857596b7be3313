// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

// Package metrics defines the Prometheus collectors for Pulseboard
// and thin record helpers around them. Collectors register on the
// default registry via promauto; the API exposes them at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts API requests by method, route pattern
	// and status class.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulseboard_http_requests_total",
			Help: "Total HTTP requests processed, by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes API latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pulseboard_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// UpstreamRequestsTotal counts calls to external collaborators
	// (vk, tables, openrouter) by operation and outcome.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulseboard_upstream_requests_total",
			Help: "Upstream API calls by service, operation and outcome.",
		},
		[]string{"service", "operation", "outcome"},
	)

	// UpstreamRequestDuration observes upstream call latency.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pulseboard_upstream_request_duration_seconds",
			Help:    "Upstream API call latency.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"service", "operation"},
	)

	// BreakerState exposes circuit breaker state per upstream:
	// 0 closed, 1 half-open, 2 open.
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pulseboard_circuit_breaker_state",
			Help: "Circuit breaker state per upstream (0 closed, 1 half-open, 2 open).",
		},
		[]string{"service"},
	)

	// SyncRunsTotal counts background job runs by job name and outcome.
	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulseboard_sync_runs_total",
			Help: "Background job runs by job and outcome.",
		},
		[]string{"job", "outcome"},
	)

	// SyncItemsTotal counts content items pushed to the tabular store
	// by sync runs.
	SyncItemsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pulseboard_sync_items_total",
			Help: "Content items mirrored into the tabular store.",
		},
	)

	// IntentClassificationsTotal counts chat questions by classified
	// category.
	IntentClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulseboard_intent_classifications_total",
			Help: "Chat questions by classified intent category.",
		},
		[]string{"category"},
	)

	// NotificationsGeneratedTotal counts notifications by type.
	NotificationsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulseboard_notifications_generated_total",
			Help: "Notifications generated from pattern analysis, by type.",
		},
		[]string{"type"},
	)

	// WebSocketConnections gauges currently connected dashboard clients.
	WebSocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pulseboard_websocket_connections",
			Help: "Currently connected WebSocket clients.",
		},
	)
)

// RecordHTTPRequest records one finished API request.
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordUpstreamRequest records one upstream call.
func RecordUpstreamRequest(service, operation, outcome string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(service, operation, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// SetBreakerState updates the breaker gauge for an upstream.
func SetBreakerState(service string, state float64) {
	BreakerState.WithLabelValues(service).Set(state)
}

// RecordSyncRun records one background job run.
func RecordSyncRun(job, outcome string) {
	SyncRunsTotal.WithLabelValues(job, outcome).Inc()
}

// RecordIntent records one classified chat question.
func RecordIntent(category string) {
	IntentClassificationsTotal.WithLabelValues(category).Inc()
}

// RecordNotification records one generated notification.
func RecordNotification(notifType string) {
	NotificationsGeneratedTotal.WithLabelValues(notifType).Inc()
}

// SetWebSocketConnections updates the connected clients gauge.
func SetWebSocketConnections(count int) {
	WebSocketConnections.Set(float64(count))
}
