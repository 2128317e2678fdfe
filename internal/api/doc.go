// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

/*
Package api provides the HTTP layer for Slithertag.

Routes (chi v5):

	GET /                    HTML banner
	GET /health              {status, uptime, timestamp, version}; 503 while shutting down
	GET /health/live         {"status":"ok"}
	GET /api/get-tags        catalog envelope (legacy path)
	GET /api/v1/tags         catalog envelope
	GET /api/v1/tags/{id}    single tag envelope, 404 "Tag not found"
	GET /metrics             Prometheus exposition (optional)

Successful tag responses use {success, data, metadata} and carry
Cache-Control, ETag and Last-Modified. A request whose If-None-Match equals
the current ETag gets 304 with no body. Errors are always
{success:false, error:"<message>"}:

	404 Endpoint not found
	405 Method not allowed
	429 Too many requests, please try again later.
	500 Internal server error

Usage:

	handler := api.NewHandler(catalog.NewService(store))
	mw := api.NewChiMiddlewareFromSecurity(cfg.Security.CORSOrigins,
	    cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow, cfg.Security.RateLimitDisabled)
	router := api.NewRouter(handler, mw, api.RouterConfig{MetricsEnabled: true})
	server := &http.Server{Addr: ":3000", Handler: router.SetupChi()}
*/
package api
