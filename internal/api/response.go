// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/slithertag/internal/logging"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeHTML = "text/html; charset=utf-8"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// internalErrorBody is written when encoding itself failed, so it must not
// depend on the encoder.
var internalErrorBody = []byte(`{"success":false,"error":"` + MsgInternalError + `"}`)

// respondJSON marshals v and writes it with status. The body is marshalled
// before any header is sent so an encoding failure can still become a 500.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		writeInternalError(w)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes {success:false, error:message}. Error responses are
// never cached.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, r, status, ErrorResponse{Success: false, Error: message})
}

// writeInternalError replaces any caching headers already set for the
// intended response and writes the fixed 500 body.
func writeInternalError(w http.ResponseWriter) {
	h := w.Header()
	h.Del("ETag")
	h.Del("Last-Modified")
	h.Set("Cache-Control", "no-store")
	h.Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(internalErrorBody)
}
