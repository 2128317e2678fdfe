// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrEmptyPath is returned when a catalog file path is required but empty.
var ErrEmptyPath = errors.New("catalog file path is empty")

// fileDocument is the on-disk catalog layout. JSON files parse as YAML.
//
//	version: "1.0.0"
//	ttl: 3600
//	lastUpdated: 2026-01-01T00:00:00.000Z   # optional, quoted or not
//	tags:
//	  - id: india
//	    imageUrl: https://example.com/india.png
//	    width: 60
//	    height: 60
type fileDocument struct {
	Version     string      `koanf:"version"`
	TTL         *int        `koanf:"ttl"`
	LastUpdated time.Time   `koanf:"lastUpdated"`
	Tags        []TagRecord `koanf:"tags"`
}

// LoadFile reads and validates a catalog file.
//
// Version and TTL in the file override those in defaults. A lastUpdated in
// the file pins the catalog timestamp (and so its ETag); otherwise
// defaults.LastUpdated applies, and when that is zero the load time is used.
func LoadFile(path string, defaults Options) (*Catalog, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	// The YAML parser yields time.Time for unquoted timestamps and string for
	// quoted ones; both must land in LastUpdated.
	var doc fileDocument
	err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeHookFunc(time.RFC3339),
				mapstructure.StringToTimeDurationHookFunc(),
			),
			WeaklyTypedInput: true,
			Result:           &doc,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}

	opts := defaults
	if doc.Version != "" {
		opts.Version = doc.Version
	}
	if doc.TTL != nil {
		opts.TTL = *doc.TTL
	}
	if !doc.LastUpdated.IsZero() {
		opts.LastUpdated = doc.LastUpdated
	}

	c, err := New(doc.Tags, opts)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}
