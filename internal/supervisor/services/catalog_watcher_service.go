// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package services

import (
	"context"
)

// CatalogWatcher matches catalog.Watcher's RunWithContext method.
//
// Satisfied by *catalog.Watcher from internal/catalog/watcher.go.
type CatalogWatcher interface {
	// RunWithContext watches the catalog file until ctx is cancelled.
	RunWithContext(ctx context.Context) error
}

// CatalogWatcherService wraps a catalog file watcher as a supervised service.
//
// If the watch fails (for example the file is deleted and recreated by a
// deploy tool) the supervisor restarts it with backoff.
//
//	w := catalog.NewWatcher(cfg.Catalog.Path, store, opts)
//	tree.AddCatalogService(services.NewCatalogWatcherService(w))
type CatalogWatcherService struct {
	watcher CatalogWatcher
	name    string
}

// NewCatalogWatcherService creates a new catalog watcher service wrapper.
func NewCatalogWatcherService(watcher CatalogWatcher) *CatalogWatcherService {
	return &CatalogWatcherService{
		watcher: watcher,
		name:    "catalog-watcher",
	}
}

// Serve implements suture.Service. It returns ctx.Err() on normal shutdown.
func (c *CatalogWatcherService) Serve(ctx context.Context) error {
	return c.watcher.RunWithContext(ctx)
}

// String implements fmt.Stringer for logging.
func (c *CatalogWatcherService) String() string {
	return c.name
}
