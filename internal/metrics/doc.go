// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

/*
Package metrics provides the Prometheus collectors exported by Slithertag.

Collectors are registered on the default registry through promauto and
served by promhttp at the configured metrics path (default /metrics):

	curl http://localhost:3000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: requests by method, endpoint, status_code (counter)
  - api_request_duration_seconds: latency by method, endpoint (histogram)
  - api_active_requests: in-flight requests (gauge)
  - api_rate_limit_hits_total: 429 responses by endpoint (counter)
  - api_panics_total: recovered handler panics (counter)

Catalog Metrics:
  - catalog_records: records currently served (gauge)
  - catalog_reloads_total: reload attempts by result (counter)
  - catalog_last_reload_timestamp_seconds: last successful reload (gauge)
  - catalog_responses_total: reads by endpoint and result (counter)

The endpoint label is the chi route pattern (for example /api/v1/tags/{id}),
never the raw path, so label cardinality stays bounded.

# Example Queries

Request rate by endpoint:

	sum by (endpoint) (rate(api_requests_total[5m]))

Share of conditional requests answered with 304:

	sum(rate(catalog_responses_total{result="not_modified"}[5m]))
	  / sum(rate(catalog_responses_total[5m]))
*/
package metrics
