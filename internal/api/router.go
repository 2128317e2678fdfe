// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/slithertag/internal/middleware"
)

// RouterConfig controls optional routes.
type RouterConfig struct {
	MetricsEnabled bool
	MetricsPath    string
}

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	config        RouterConfig
}

// NewRouter creates a router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware, config RouterConfig) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	if config.MetricsPath == "" {
		config.MetricsPath = "/metrics"
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
		config:        config,
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(middleware.RequestID)         // X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)         // Extract real IP from X-Forwarded-For
	r.Use(middleware.RequestLogger)     // One log line per request
	r.Use(Recoverer)                    // Recover from panics with a JSON 500
	r.Use(router.chiMiddleware.CORS())  // CORS must be global to handle OPTIONS preflight
	r.Use(APISecurityHeaders())         // Security headers on every response
	r.Use(middleware.Compression)       // gzip, skipped for 304
	r.Use(middleware.PrometheusMetrics) // Request metrics by route pattern
	r.Use(chimiddleware.GetHead)        // HEAD is answered by GET routes

	r.NotFound(router.handler.NotFound)
	r.MethodNotAllowed(router.handler.MethodNotAllowed)

	// ========================
	// Health Endpoints
	// ========================
	r.Get("/", router.handler.Index)
	r.Get("/health", router.handler.Health)
	r.Get("/health/live", router.handler.HealthLive)

	// ========================
	// Tag Endpoints
	// ========================
	// Inline group so the limiter runs after routing and sees the route pattern.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())

		r.Get("/api/get-tags", router.handler.Tags) // Legacy path
		r.Get("/api/v1/tags", router.handler.Tags)
		r.Get("/api/v1/tags/{id}", router.handler.Tag)
	})

	// ========================
	// Observability
	// ========================
	if router.config.MetricsEnabled {
		r.Method(http.MethodGet, router.config.MetricsPath, promhttp.Handler())
	}

	return r
}
