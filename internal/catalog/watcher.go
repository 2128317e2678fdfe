// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/knadh/koanf/providers/file"

	"github.com/tomtom215/slithertag/internal/logging"
	"github.com/tomtom215/slithertag/internal/metrics"
)

// Reload outcomes recorded in catalog_reloads_total.
const (
	ReloadSuccess = "success"
	ReloadInvalid = "invalid"
	ReloadStale   = "stale"
	ReloadPinned  = "pinned_timestamp"
)

// Watcher reloads a catalog file into a Store whenever the file changes.
//
// A file that fails to parse or validate is logged and ignored; the store
// keeps serving the previous catalog.
type Watcher struct {
	path     string
	store    *Store
	defaults Options
}

// NewWatcher returns a watcher for path. defaults supplies version and TTL
// for files that omit them. Reloads are stamped with the reload time unless
// the file pins lastUpdated, so defaults.LastUpdated is ignored.
func NewWatcher(path string, store *Store, defaults Options) *Watcher {
	return &Watcher{
		path:     path,
		store:    store,
		defaults: Options{Version: defaults.Version, TTL: defaults.TTL},
	}
}

// String implements fmt.Stringer for logging.
func (w *Watcher) String() string {
	return "catalog-watcher"
}

// Reload reads the file once and publishes it. It returns the reload outcome
// and any error; the store is unchanged unless the outcome is ReloadSuccess.
func (w *Watcher) Reload() (string, error) {
	next, err := LoadFile(w.path, w.defaults)
	if err != nil {
		metrics.RecordCatalogReload(ReloadInvalid)
		return ReloadInvalid, err
	}
	if err := w.store.Replace(next); err != nil {
		if errors.Is(err, ErrStaleCatalog) {
			metrics.RecordCatalogReload(ReloadStale)
			return ReloadStale, err
		}
		if errors.Is(err, ErrTimestampNotAdvanced) {
			metrics.RecordCatalogReload(ReloadPinned)
			return ReloadPinned, err
		}
		metrics.RecordCatalogReload(ReloadInvalid)
		return ReloadInvalid, err
	}
	metrics.RecordCatalogReload(ReloadSuccess)
	metrics.SetCatalogRecords(next.Len())
	return ReloadSuccess, nil
}

// RunWithContext watches the file until ctx is cancelled. It returns an
// error if the watch itself fails (for example the file is removed) so
// that a supervisor can restart it.
func (w *Watcher) RunWithContext(ctx context.Context) error {
	log := logging.WithComponent("catalog-watcher")

	fp := file.Provider(w.path)
	watchErr := make(chan error, 1)

	err := fp.Watch(func(_ interface{}, err error) {
		if err != nil {
			select {
			case watchErr <- err:
			default:
			}
			return
		}

		outcome, rerr := w.Reload()
		if rerr != nil {
			log.Warn().Err(rerr).Str("path", w.path).Str("outcome", outcome).
				Msg("Catalog reload rejected, keeping current catalog")
			return
		}
		meta := w.store.Load().Metadata()
		log.Info().Str("path", w.path).Int("count", meta.Count).
			Str("last_updated", meta.LastUpdated).Msg("Catalog reloaded")
	})
	if err != nil {
		return fmt.Errorf("failed to watch catalog file %s: %w", w.path, err)
	}
	defer func() {
		if uerr := fp.Unwatch(); uerr != nil {
			log.Debug().Err(uerr).Msg("Catalog watch already stopped")
		}
	}()

	log.Info().Str("path", w.path).Msg("Watching catalog file for changes")

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-watchErr:
		return fmt.Errorf("catalog file watch stopped: %w", err)
	}
}
