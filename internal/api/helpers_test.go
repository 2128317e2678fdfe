// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/slithertag/internal/catalog"
)

var fixedTime = time.Date(2026, 3, 1, 12, 30, 45, 123456789, time.UTC)

const (
	fixedETag         = `W/"2026-03-01T12:30:45.123Z"`
	fixedLastModified = "Sun, 01 Mar 2026 12:30:45 GMT"
)

func intPtr(v int) *int { return &v }

func testRecords() []catalog.TagRecord {
	return []catalog.TagRecord{
		{ID: "india", ImageURL: "https://x/y.png", Width: 60, Height: 60, LeftPos: -30, TopPos: -30},
		{ID: "usa", ImageURL: "https://x/usa.png", Width: 60, Height: 60, LeftPos: -30, TopPos: -30, CacheMaxAge: intPtr(600)},
	}
}

type testEnv struct {
	service *catalog.Service
	store   *catalog.Store
	handler http.Handler
}

// newTestEnv builds the full router over a two-record catalog. mutate may
// adjust the middleware and router configs before the router is built.
func newTestEnv(t *testing.T, mutate func(*ChiMiddlewareConfig, *RouterConfig)) *testEnv {
	t.Helper()

	c, err := catalog.New(testRecords(), catalog.Options{Version: "1.0.0", TTL: 3600, LastUpdated: fixedTime})
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	store := catalog.NewStore(c)
	service := catalog.NewService(store)

	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.RateLimitDisabled = true
	routerConfig := RouterConfig{MetricsEnabled: true}
	if mutate != nil {
		mutate(mwConfig, &routerConfig)
	}

	router := NewRouter(NewHandler(service), NewChiMiddleware(mwConfig), routerConfig)
	return &testEnv{service: service, store: store, handler: router.SetupChi()}
}

func (e *testEnv) do(method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("response is not valid JSON: %v (%q)", err, rec.Body.String())
	}
}

func containsValue(values []string, want string) bool {
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) == want {
				return true
			}
		}
	}
	return false
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rec.Code != status {
		t.Errorf("status = %d, want %d", rec.Code, status)
	}
	var body ErrorResponse
	decodeJSON(t, rec, &body)
	if body.Success || body.Error != message {
		t.Errorf("body = %+v, want {success:false error:%q}", body, message)
	}
	if got := rec.Header().Get("Content-Type"); got != contentTypeJSON {
		t.Errorf("Content-Type = %q, want %q", got, contentTypeJSON)
	}
}
