// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// mockService implements suture.Service and records its lifecycle.
type mockService struct {
	name       string
	startCount atomic.Int32
	stopCount  atomic.Int32
	failCount  atomic.Int32
	maxFails   int32
	started    chan struct{}
}

func newMockService(name string) *mockService {
	return &mockService{name: name, started: make(chan struct{}, 16)}
}

// failing returns a service that fails n times before running normally.
func failing(name string, n int32) *mockService {
	m := newMockService(name)
	m.maxFails = n
	return m
}

func (m *mockService) Serve(ctx context.Context) error {
	m.startCount.Add(1)
	defer m.stopCount.Add(1)

	select {
	case m.started <- struct{}{}:
	default:
	}

	if m.maxFails > 0 && m.failCount.Add(1) <= m.maxFails {
		return errors.New("simulated failure")
	}

	<-ctx.Done()
	return ctx.Err()
}

// waitStarts blocks until the service has started n times or d elapses.
func (m *mockService) waitStarts(n int32, d time.Duration) bool {
	deadline := time.Now().Add(d)
	for m.startCount.Load() < n {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(5 * time.Millisecond)
	}
	return true
}

func (m *mockService) String() string {
	return m.name
}
