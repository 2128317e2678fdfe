// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

// Package catalog owns the decorative tag records served to Slither clients
// and the HTTP caching semantics attached to them.
//
// A Catalog is built once from records plus metadata, validated, and never
// mutated. Its weak ETag W/"<lastUpdated>" is computed at construction so
// that repeated reads of the same catalog are byte-identical.
//
// # Reads
//
// Service answers the three read operations:
//
//	svc := catalog.NewService(catalog.NewStore(catalog.Default(time.Now())))
//
//	res := svc.GetCatalog(r.Header.Get("If-None-Match"))
//	if res.NotModified {
//	    // 304, no body
//	}
//
//	tag, err := svc.GetTag("india", "")
//	if errors.Is(err, catalog.ErrTagNotFound) { ... }
//
//	health := svc.GetHealth()
//
// # Reloading
//
// Store holds the current catalog behind an atomic pointer. Replace
// publishes a new catalog; readers see either the old or the new one in
// full. Watcher re-reads a catalog file (YAML or JSON) when it changes and
// publishes it if it validates. Invalid files are logged and the previous
// catalog keeps serving.
//
// # Catalog File
//
//	version: "1.1.0"
//	ttl: 3600
//	tags:
//	  - id: india
//	    imageUrl: https://example.com/india.png
//	    width: 60
//	    height: 60
//	    leftPos: -30
//	    topPos: -30
//	    borderColor: "#ffffff"
//	    cacheMaxAge: 600
package catalog
