// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

/*
Package main is the entry point for the Slithertag server.

Slithertag serves a read-only catalog of decorative tags (image URL, size
and offset per tag id) to Slither game clients. The catalog is built in, or
loaded from a YAML/JSON file and optionally hot reloaded when that file
changes.

# Process Layout

	RootSupervisor ("slithertag")
	├── CatalogSupervisor ("catalog-layer")
	│   └── catalog-watcher (CATALOG_WATCH=true)
	└── APISupervisor ("api-layer")
	    └── http-server

# Configuration

Koanf v2, highest priority wins:
  - Environment variables (HTTP_PORT, PORT, CATALOG_PATH, CORS_ORIGINS, ...)
  - Config file (CONFIG_PATH, config.yaml or /etc/slithertag/config.yaml)
  - Built-in defaults

# Signal Handling

On SIGINT or SIGTERM /health starts reporting 503 shutting_down, the HTTP
server stops accepting connections, and in-flight requests get
HTTP_SHUTDOWN_TIMEOUT to finish.

# Example Usage

	export PORT=3000
	export CATALOG_PATH=/etc/slithertag/tags.yaml
	export CATALOG_WATCH=true
	./slithertag
*/
package main
