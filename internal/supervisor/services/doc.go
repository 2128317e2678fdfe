// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

/*
Package services adapts Slithertag components to the suture.Service interface.

  - HTTPServerService runs an http.Server and drains it on shutdown. Drain
    hooks run before Shutdown so /health can report shutting_down while
    in-flight requests finish.
  - CatalogWatcherService runs the catalog file watcher. A watch that fails
    returns an error and is restarted by the supervisor.

Each wrapper depends on a small interface instead of the concrete type, which
keeps the package free of imports on internal/catalog and easy to test.
*/
package services
