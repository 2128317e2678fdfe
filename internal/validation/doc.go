// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with user-friendly error messages. It is used to
// validate tag records when a catalog is built and configuration after it is loaded.
//
// # Quick Start
//
//	type TagRecord struct {
//	    ID       string  `json:"id" validate:"required"`
//	    ImageURL string  `json:"imageUrl" validate:"required,url"`
//	    Width    float64 `json:"width" validate:"gt=0"`
//	}
//
//	if verr := validation.ValidateStruct(&rec); verr != nil {
//	    return fmt.Errorf("invalid tag: %w", verr)
//	}
//
// # Field Names
//
// Errors report the json tag name of the failing field (falling back to the
// koanf tag, then the Go field name), so a message reads the way the field is
// spelled in a catalog file:
//
//	required   -> "imageUrl is required"
//	url        -> "imageUrl must be a valid absolute URL"
//	hexcolor   -> "borderColor must be a hex color such as #ffffff"
//	gt=0       -> "width must be greater than 0"
//	gte=0      -> "ttl must be greater than or equal to 0"
//	oneof=a b  -> "format must be one of: a b"
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use.
package validation
