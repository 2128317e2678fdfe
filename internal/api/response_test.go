// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusAccepted, map[string]int{"n": 1})

	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want 202", rec.Code)
	}
	if rec.Body.String() != `{"n":1}` {
		t.Errorf("body = %q", rec.Body.String())
	}
	if rec.Header().Get("Content-Type") != contentTypeJSON {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set("ETag", `W/"x"`)
	rec.Header().Set("Last-Modified", "Sun, 01 Mar 2026 12:30:45 GMT")
	rec.Header().Set("Cache-Control", "public, max-age=3600")

	respondJSON(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, map[string]interface{}{"ch": make(chan int)})

	assertErrorBody(t, rec, http.StatusInternalServerError, MsgInternalError)
	if rec.Header().Get("ETag") != "" || rec.Header().Get("Last-Modified") != "" {
		t.Error("validators must be dropped on encode failure")
	}
	if rec.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", rec.Header().Get("Cache-Control"))
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusNotFound, MsgTagNotFound)

	assertErrorBody(t, rec, http.StatusNotFound, MsgTagNotFound)
	if rec.Body.String() != `{"success":false,"error":"Tag not found"}` {
		t.Errorf("body = %q", rec.Body.String())
	}
}
