// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package catalog

// TagRecord is one decorative overlay definition served to clients.
// IDs are printable ASCII without quote or backslash so they can be embedded
// verbatim in an entity-tag.
//
// The json tags define the wire format; the koanf tags are used when a
// record is read from a catalog file.
type TagRecord struct {
	ID       string  `json:"id" koanf:"id" validate:"required,max=128,printascii,excludesall=\"\\"`
	ImageURL string  `json:"imageUrl" koanf:"imageUrl" validate:"required,url"`
	Width    float64 `json:"width" koanf:"width" validate:"gt=0"`
	Height   float64 `json:"height" koanf:"height" validate:"gt=0"`
	LeftPos  float64 `json:"leftPos" koanf:"leftPos"`
	TopPos   float64 `json:"topPos" koanf:"topPos"`
	Angle    float64 `json:"angle" koanf:"angle"`

	BorderColor  string `json:"borderColor,omitempty" koanf:"borderColor" validate:"omitempty,hexcolor"`
	BorderShadow string `json:"borderShadow,omitempty" koanf:"borderShadow" validate:"omitempty,hexcolor"`

	// CacheMaxAge overrides the catalog TTL for single-tag responses (seconds).
	CacheMaxAge *int `json:"cacheMaxAge,omitempty" koanf:"cacheMaxAge" validate:"omitempty,gte=0"`
}

// clone returns a deep copy so callers cannot reach catalog-owned memory.
func (r *TagRecord) clone() TagRecord {
	c := *r
	if r.CacheMaxAge != nil {
		v := *r.CacheMaxAge
		c.CacheMaxAge = &v
	}
	return c
}

// Metadata describes a catalog as a whole.
type Metadata struct {
	// LastUpdated is the RFC 3339 construction (or pinned) time. It is the
	// source of the ETag and Last-Modified validators.
	LastUpdated string `json:"lastUpdated"`

	// Version is informational.
	Version string `json:"version"`

	// TTL is the default cache duration in seconds.
	TTL int `json:"ttl"`

	// Count is the number of records in the catalog.
	Count int `json:"count"`
}
