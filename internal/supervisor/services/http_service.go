// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/slithertag/internal/logging"
)

// HTTPServer matches the *http.Server lifecycle methods.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService wraps an HTTP server as a supervised service.
//
// Serve runs ListenAndServe in a goroutine and waits for either the server
// to fail or ctx to be cancelled. On cancellation the drain hooks run first
// (health flips to shutting_down) and then Shutdown lets in-flight requests
// finish within the shutdown timeout.
//
//	server := &http.Server{Addr: ":3000", Handler: router}
//	svc := services.NewHTTPServerService(server, 10*time.Second, services.WithDrainHook(catalogSvc.BeginShutdown))
//	tree.AddAPIService(svc)
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	drainHooks      []func()
	name            string
}

// HTTPServerOption configures an HTTPServerService.
type HTTPServerOption func(*HTTPServerService)

// WithDrainHook registers fn to run before Shutdown is called.
func WithDrainHook(fn func()) HTTPServerOption {
	return func(h *HTTPServerService) {
		h.drainHooks = append(h.drainHooks, fn)
	}
}

// NewHTTPServerService creates a new HTTP server service wrapper.
// A non-positive shutdownTimeout defaults to 10s.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration, opts ...HTTPServerOption) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	h := &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Serve implements suture.Service.
//
// Returns ctx.Err() after a graceful shutdown and a wrapped error if the
// server fails or Shutdown times out. http.ErrServerClosed is not an error.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		for _, hook := range h.drainHooks {
			hook()
		}

		logging.Info().Dur("timeout", h.shutdownTimeout).Msg("Draining HTTP server")

		// ctx is already cancelled; Shutdown needs its own deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		return ctx.Err()
	}
}

// String implements fmt.Stringer for logging.
func (h *HTTPServerService) String() string {
	return h.name
}
