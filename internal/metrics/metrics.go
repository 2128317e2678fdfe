// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	APIPanicsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "api_panics_total",
			Help: "Total number of handler panics recovered",
		},
	)

	// Catalog Metrics
	CatalogRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_records",
			Help: "Number of tag records in the catalog being served",
		},
	)

	CatalogReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_reloads_total",
			Help: "Catalog file reload attempts by outcome (success, invalid, stale, pinned_timestamp)",
		},
		[]string{"result"},
	)

	CatalogLastReload = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_last_reload_timestamp_seconds",
			Help: "Unix timestamp of the last successful catalog reload",
		},
	)

	CatalogResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_responses_total",
			Help: "Catalog responses by endpoint and result (full, not_modified, not_found)",
		},
		[]string{"endpoint", "result"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordPanic counts a recovered handler panic.
func RecordPanic() {
	APIPanicsTotal.Inc()
}

// SetCatalogRecords sets the served record count.
func SetCatalogRecords(n int) {
	CatalogRecords.Set(float64(n))
}

// RecordCatalogReload counts a reload attempt. A success also stamps
// catalog_last_reload_timestamp_seconds.
func RecordCatalogReload(result string) {
	CatalogReloadsTotal.WithLabelValues(result).Inc()
	if result == "success" {
		CatalogLastReload.SetToCurrentTime()
	}
}

// RecordCatalogResponse counts a catalog read by outcome.
func RecordCatalogResponse(endpoint, result string) {
	CatalogResponsesTotal.WithLabelValues(endpoint, result).Inc()
}
