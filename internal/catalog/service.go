// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package catalog

import (
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"
)

// Health status values reported by GetHealth.
const (
	StatusHealthy      = "healthy"
	StatusShuttingDown = "shutting_down"
)

// Headers carries the HTTP caching directives for a response.
type Headers struct {
	CacheControl string
	ETag         string
	LastModified string
}

// CatalogResponse is the body of a full catalog response.
type CatalogResponse struct {
	Success  bool        `json:"success"`
	Data     []TagRecord `json:"data"`
	Metadata Metadata    `json:"metadata"`
}

// TagResponse is the body of a single-tag response.
type TagResponse struct {
	Success  bool      `json:"success"`
	Data     TagRecord `json:"data"`
	Metadata Metadata  `json:"metadata"`
}

// CatalogResult is the outcome of GetCatalog. Body is nil when NotModified.
type CatalogResult struct {
	NotModified bool
	Headers     Headers
	Body        *CatalogResponse
}

// TagResult is the outcome of GetTag. Body is nil when NotModified.
type TagResult struct {
	NotModified bool
	Headers     Headers
	Body        *TagResponse
}

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status    string    `json:"status"`
	Uptime    float64   `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// Healthy reports whether the status is StatusHealthy.
func (h HealthStatus) Healthy() bool {
	return h.Status == StatusHealthy
}

// Service answers catalog reads from the catalog currently held by a Store.
type Service struct {
	store    *Store
	now      func() time.Time
	started  time.Time
	draining atomic.Bool
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock replaces time.Now. Uptime is measured against the clock's first reading.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService returns a service reading from store.
func NewService(store *Store, opts ...ServiceOption) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.started = s.now()
	return s
}

// Store returns the store the service reads from.
func (s *Service) Store() *Store {
	return s.store
}

// GetCatalog returns the full catalog, or NotModified when clientETag equals
// the catalog ETag exactly. An empty clientETag never matches.
func (s *Service) GetCatalog(clientETag string) CatalogResult {
	c := s.store.Load()
	headers := Headers{
		CacheControl: cacheControl(c.meta.TTL),
		ETag:         c.etag,
		LastModified: httpDate(c.updated),
	}

	if clientETag != "" && clientETag == c.etag {
		return CatalogResult{NotModified: true, Headers: headers}
	}

	return CatalogResult{
		Headers: headers,
		Body: &CatalogResponse{
			Success:  true,
			Data:     c.Records(),
			Metadata: c.meta,
		},
	}
}

// GetTag returns one record by id. The record's cacheMaxAge, when set,
// replaces the catalog TTL in Cache-Control. Returns ErrTagNotFound when
// no record has the id.
func (s *Service) GetTag(id, clientETag string) (TagResult, error) {
	c := s.store.Load()
	rec, ok := c.Lookup(id)
	if !ok {
		return TagResult{}, fmt.Errorf("%w: %q", ErrTagNotFound, id)
	}

	maxAge := c.meta.TTL
	if rec.CacheMaxAge != nil {
		maxAge = *rec.CacheMaxAge
	}

	etag := c.TagETag(id)
	headers := Headers{
		CacheControl: cacheControl(maxAge),
		ETag:         etag,
		LastModified: httpDate(c.updated),
	}

	if clientETag != "" && clientETag == etag {
		return TagResult{NotModified: true, Headers: headers}, nil
	}

	return TagResult{
		Headers: headers,
		Body: &TagResponse{
			Success:  true,
			Data:     rec,
			Metadata: c.meta,
		},
	}, nil
}

// GetHealth reports liveness, uptime in seconds and the current time.
func (s *Service) GetHealth() HealthStatus {
	now := s.now()
	uptime := now.Sub(s.started).Seconds()
	if uptime < 0 {
		uptime = 0
	}

	status := StatusHealthy
	if s.draining.Load() {
		status = StatusShuttingDown
	}

	return HealthStatus{
		Status:    status,
		Uptime:    uptime,
		Timestamp: now.UTC(),
		Version:   s.store.Load().meta.Version,
	}
}

// BeginShutdown marks the service as draining. GetHealth reports
// StatusShuttingDown from then on. Safe to call more than once.
func (s *Service) BeginShutdown() {
	s.draining.Store(true)
}

func cacheControl(maxAge int) string {
	return "public, max-age=" + strconv.Itoa(maxAge)
}

func httpDate(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}
