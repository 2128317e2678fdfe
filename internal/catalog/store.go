// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
)

// ErrStaleCatalog is returned by Store.Replace when the replacement is older
// than the catalog currently being served.
var ErrStaleCatalog = errors.New("catalog is older than the current catalog")

// ErrTimestampNotAdvanced is returned by Store.Replace when the replacement
// carries the current lastUpdated (and so the current ETag) but different
// content. Publishing it would make clients revalidate stale copies as fresh.
var ErrTimestampNotAdvanced = errors.New("catalog content changed without advancing lastUpdated")

// ErrNilCatalog is returned when a nil catalog is published.
var ErrNilCatalog = errors.New("catalog is nil")

// Store publishes the current catalog to concurrent readers.
//
// Readers always observe either the old or the new catalog, never a mix.
// lastUpdated never moves backwards across replacements.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore returns a store serving initial. initial must not be nil.
func NewStore(initial *Catalog) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Load returns the catalog currently being served.
func (s *Store) Load() *Catalog {
	return s.current.Load()
}

// Replace publishes next. A catalog whose lastUpdated precedes the current
// one is rejected with ErrStaleCatalog. An equal timestamp is accepted only
// when the content is identical; otherwise ErrTimestampNotAdvanced.
func (s *Store) Replace(next *Catalog) error {
	if next == nil {
		return ErrNilCatalog
	}
	for {
		cur := s.current.Load()
		if cur != nil && next.updated.Before(cur.updated) {
			return fmt.Errorf("%w: %s < %s", ErrStaleCatalog,
				next.meta.LastUpdated, cur.meta.LastUpdated)
		}
		if cur != nil && next.updated.Equal(cur.updated) && !sameContent(cur, next) {
			return fmt.Errorf("%w: %s", ErrTimestampNotAdvanced, next.meta.LastUpdated)
		}
		if s.current.CompareAndSwap(cur, next) {
			return nil
		}
	}
}

// sameContent reports whether a and b would serve identical bodies.
func sameContent(a, b *Catalog) bool {
	return a.meta == b.meta && reflect.DeepEqual(a.records, b.records)
}
