// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/slithertag/internal/catalog"
	"github.com/tomtom215/slithertag/internal/logging"
	"github.com/tomtom215/slithertag/internal/metrics"
	"github.com/tomtom215/slithertag/internal/middleware"
)

// Catalog response outcomes for catalog_responses_total.
const (
	resultFull        = "full"
	resultNotModified = "not_modified"
	resultNotFound    = "not_found"
)

const indexBanner = `<h1>✅ Slither Tag API is Running</h1><p>Use <code>/api/get-tags</code> to fetch tag data.</p>`

// Handler serves catalog reads over HTTP.
type Handler struct {
	service *catalog.Service
}

// NewHandler creates a handler backed by service.
func NewHandler(service *catalog.Service) *Handler {
	return &Handler{service: service}
}

// Tags returns the whole catalog, or 304 when If-None-Match equals the
// current catalog ETag.
func (h *Handler) Tags(w http.ResponseWriter, r *http.Request) {
	result := h.service.GetCatalog(r.Header.Get("If-None-Match"))
	setCacheHeaders(w, result.Headers)

	endpoint := middleware.RoutePattern(r)
	if result.NotModified {
		metrics.RecordCatalogResponse(endpoint, resultNotModified)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	metrics.RecordCatalogResponse(endpoint, resultFull)
	respondJSON(w, r, http.StatusOK, result.Body)
}

// Tag returns a single record by id.
func (h *Handler) Tag(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.GetTag(id, r.Header.Get("If-None-Match"))
	if err != nil {
		if errors.Is(err, catalog.ErrTagNotFound) {
			metrics.RecordCatalogResponse(middleware.RoutePattern(r), resultNotFound)
			respondError(w, r, http.StatusNotFound, MsgTagNotFound)
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("Tag lookup failed")
		respondError(w, r, http.StatusInternalServerError, MsgInternalError)
		return
	}

	setCacheHeaders(w, result.Headers)

	endpoint := middleware.RoutePattern(r)
	if result.NotModified {
		metrics.RecordCatalogResponse(endpoint, resultNotModified)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	metrics.RecordCatalogResponse(endpoint, resultFull)
	respondJSON(w, r, http.StatusOK, result.Body)
}

// Health reports service status. Returns 503 once shutdown has begun so
// load balancers stop routing new traffic here.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.service.GetHealth()

	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, r, code, status)
}

// HealthLive is a liveness probe that only proves the process is serving.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Index serves the human-readable banner.
func (h *Handler) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(indexBanner))
}

// NotFound handles unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, MsgEndpointNotFound)
}

// MethodNotAllowed handles known routes requested with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}

func setCacheHeaders(w http.ResponseWriter, headers catalog.Headers) {
	h := w.Header()
	h.Set("Cache-Control", headers.CacheControl)
	h.Set("ETag", headers.ETag)
	h.Set("Last-Modified", headers.LastModified)
}
