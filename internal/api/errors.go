// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package api

// Client-facing error messages. Causes are logged, never sent.
const (
	MsgEndpointNotFound = "Endpoint not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgTagNotFound      = "Tag not found"
	MsgInternalError    = "Internal server error"
	MsgTooManyRequests  = "Too many requests, please try again later."
)
