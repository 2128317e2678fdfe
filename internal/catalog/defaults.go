// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package catalog

import "time"

// DefaultVersion is the version reported by the built-in catalog.
const DefaultVersion = "1.0.0"

const imageBase = "https://raw.githubusercontent.com/Luckyyt623/All-images/main/"

// DefaultRecords returns the built-in tag set served when no catalog file is
// configured.
func DefaultRecords() []TagRecord {
	return []TagRecord{
		{
			ID:           "india",
			ImageURL:     imageBase + "Picsart_25-06-29_19-55-16-551.png",
			Width:        60,
			Height:       60,
			LeftPos:      -30,
			TopPos:       -30,
			Angle:        0,
			BorderColor:  "#ffffff",
			BorderShadow: "#000000",
		},
		{
			ID:           "usa",
			ImageURL:     imageBase + "Picsart_25-07-06_18-00-00-000.png",
			Width:        60,
			Height:       60,
			LeftPos:      -30,
			TopPos:       -30,
			Angle:        0,
			BorderColor:  "#ff0000",
			BorderShadow: "#0000ff",
		},
	}
}

// Default builds the built-in catalog stamped with now.
func Default(now time.Time) *Catalog {
	c, err := New(DefaultRecords(), Options{
		Version:     DefaultVersion,
		TTL:         DefaultTTL,
		LastUpdated: now,
	})
	if err != nil {
		// The built-in records are fixed; failing here is a programming error.
		panic("catalog: invalid built-in records: " + err.Error())
	}
	return c
}
