// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/slithertag/internal/validation"
)

// Sentinel errors returned by catalog construction and lookup.
var (
	// ErrDuplicateID indicates two records in one catalog share an id.
	ErrDuplicateID = errors.New("duplicate tag id")

	// ErrInvalidTag indicates a record failed field validation.
	ErrInvalidTag = errors.New("invalid tag record")

	// ErrInvalidOptions indicates catalog metadata failed validation.
	ErrInvalidOptions = errors.New("invalid catalog options")

	// ErrTagNotFound indicates no record has the requested id.
	ErrTagNotFound = errors.New("tag not found")
)

// TimestampLayout is the ISO 8601 form used for Metadata.LastUpdated.
// Millisecond precision keeps two reloads within the same second distinguishable.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DefaultTTL is the cache duration used when no TTL is configured.
const DefaultTTL = 3600

// Options carries catalog-level metadata supplied at construction.
type Options struct {
	// Version is informational and is echoed in metadata.
	Version string `json:"version" validate:"max=64"`

	// TTL is the default cache duration in seconds.
	TTL int `json:"ttl" validate:"gte=0"`

	// LastUpdated pins the catalog timestamp. Zero means time.Now().
	LastUpdated time.Time `json:"-"`
}

// Catalog is an immutable, ordered set of tag records plus metadata.
// A Catalog is safe for concurrent reads; nothing mutates it after New returns.
type Catalog struct {
	records []TagRecord
	index   map[string]int
	meta    Metadata
	updated time.Time
	etag    string
}

// New validates records and builds a catalog.
//
// Records keep their given order. Construction fails with ErrDuplicateID if two
// records share an id and with ErrInvalidTag if a record violates a field
// constraint. An empty record set is valid.
func New(records []TagRecord, opts Options) (*Catalog, error) {
	if verr := validation.ValidateStruct(&opts); verr != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, verr)
	}

	updated := opts.LastUpdated
	if updated.IsZero() {
		updated = time.Now()
	}
	updated = updated.UTC().Truncate(time.Millisecond)

	c := &Catalog{
		records: make([]TagRecord, 0, len(records)),
		index:   make(map[string]int, len(records)),
		updated: updated,
	}

	for i := range records {
		rec := records[i].clone()
		if verr := validation.ValidateStruct(&rec); verr != nil {
			return nil, fmt.Errorf("%w: tag %d (%q): %w", ErrInvalidTag, i, rec.ID, verr)
		}
		if prev, exists := c.index[rec.ID]; exists {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateID, rec.ID, prev, i)
		}
		c.index[rec.ID] = i
		c.records = append(c.records, rec)
	}

	c.meta = Metadata{
		LastUpdated: updated.Format(TimestampLayout),
		Version:     opts.Version,
		TTL:         opts.TTL,
		Count:       len(c.records),
	}
	c.etag = weakETag(c.meta.LastUpdated)

	return c, nil
}

// Records returns a copy of the records in catalog order. Never nil.
func (c *Catalog) Records() []TagRecord {
	out := make([]TagRecord, len(c.records))
	for i := range c.records {
		out[i] = c.records[i].clone()
	}
	return out
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Lookup returns the record with the given id.
func (c *Catalog) Lookup(id string) (TagRecord, bool) {
	i, ok := c.index[id]
	if !ok {
		return TagRecord{}, false
	}
	return c.records[i].clone(), true
}

// Metadata returns the catalog metadata.
func (c *Catalog) Metadata() Metadata {
	return c.meta
}

// LastUpdated returns the catalog timestamp.
func (c *Catalog) LastUpdated() time.Time {
	return c.updated
}

// ETag returns the weak validator for the whole catalog: W/"<lastUpdated>".
func (c *Catalog) ETag() string {
	return c.etag
}

// TagETag returns the weak validator for a single record: W/"<lastUpdated>/<id>".
func (c *Catalog) TagETag(id string) string {
	return weakETag(c.meta.LastUpdated + "/" + id)
}

func weakETag(v string) string {
	return `W/"` + v + `"`
}
