// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

/*
Package middleware provides HTTP middleware components for Slithertag.

All middleware uses the func(http.Handler) http.Handler shape so it plugs
straight into chi's r.Use.

Key Components:

  - RequestID: X-Request-ID propagation plus request and correlation IDs in
    the logging context
  - RequestLogger: one structured zerolog line per request
  - Compression: gzip for clients that accept it, skipped for bodiless
    responses such as 304
  - PrometheusMetrics: request count, duration and in-flight gauge, labelled
    by chi route pattern

Typical order in the router:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(recoverer)
	r.Use(corsHandler)
	r.Use(middleware.Compression)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
