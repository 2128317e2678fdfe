// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/slithertag/internal/metrics"
)

// UnmatchedRoute is the endpoint label for requests that matched no route.
const UnmatchedRoute = "unmatched"

// PrometheusMetrics records request count, duration and in-flight requests.
//
// The endpoint label is the chi route pattern ("/api/v1/tags/{id}"), not the
// raw path, so arbitrary ids cannot blow up label cardinality.
func PrometheusMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		metrics.RecordAPIRequest(
			r.Method,
			RoutePattern(r),
			strconv.Itoa(status),
			time.Since(start),
		)
	})
}

// RoutePattern returns the matched chi route pattern, or UnmatchedRoute.
// Only meaningful once routing has happened (after next.ServeHTTP, or
// inside a handler).
func RoutePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return UnmatchedRoute
}
