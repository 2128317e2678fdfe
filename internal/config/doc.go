// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

/*
Package config loads Slithertag configuration with Koanf v2.

Sources are layered, later ones winning:

 1. Built-in defaults (defaultConfig)
 2. YAML file: $CONFIG_PATH, ./config.yaml, /etc/slithertag/config.yaml
 3. Environment variables

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 3000). PORT is used when HTTP_PORT is unset.
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
  - HTTP_SHUTDOWN_TIMEOUT: Grace period for in-flight requests (default: 10s)
  - ENVIRONMENT: development, staging or production

Catalog:
  - CATALOG_PATH: YAML or JSON catalog file (default: built-in catalog)
  - CATALOG_WATCH: Reload the file when it changes (default: false)
  - CATALOG_VERSION: Version reported when the file has none (default: 1.0.0)
  - CATALOG_TTL: Cache lifetime in seconds when the file has none (default: 3600)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per client IP (default: 100)
  - RATE_LIMIT_WINDOW: Window duration (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off

Metrics and logging:
  - METRICS_ENABLED, METRICS_PATH (default: true, /metrics)
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Config File

	server:
	  port: 8080
	catalog:
	  path: /etc/slithertag/tags.yaml
	  watch: true
	security:
	  cors_origins:
	    - https://slither.io
*/
package config
