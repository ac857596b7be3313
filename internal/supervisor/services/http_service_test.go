// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

type fakeServer struct {
	serveErr    error
	shutdownErr error
	started     chan struct{}
	release     chan struct{}
	shutdowns   int
}

func newFakeServer(serveErr error) *fakeServer {
	return &fakeServer{
		serveErr: serveErr,
		started:  make(chan struct{}),
		release:  make(chan struct{}),
	}
}

func (s *fakeServer) ListenAndServe() error {
	close(s.started)
	if s.serveErr != nil {
		return s.serveErr
	}
	<-s.release
	return http.ErrServerClosed
}

func (s *fakeServer) Shutdown(ctx context.Context) error {
	s.shutdowns++
	close(s.release)
	return s.shutdownErr
}

func TestHTTPServiceGracefulShutdown(t *testing.T) {
	server := newFakeServer(nil)
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	<-server.started
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	if server.shutdowns != 1 {
		t.Errorf("shutdowns = %d", server.shutdowns)
	}
}

func TestHTTPServiceStartupFailure(t *testing.T) {
	server := newFakeServer(errors.New("bind: address already in use"))
	svc := NewHTTPServerService(server, time.Second)

	err := svc.Serve(context.Background())
	if err == nil || errors.Is(err, context.Canceled) {
		t.Fatalf("Serve = %v, want startup error", err)
	}
	if server.shutdowns != 0 {
		t.Error("failed startup must not call Shutdown")
	}
}

type fakeHub struct{ err error }

func (h *fakeHub) RunWithContext(ctx context.Context) error {
	<-ctx.Done()
	if h.err != nil {
		return h.err
	}
	return ctx.Err()
}

func TestWebSocketServiceDelegates(t *testing.T) {
	svc := NewWebSocketHubService(&fakeHub{})
	if svc.String() != "websocket-hub" {
		t.Errorf("String = %s", svc.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve = %v", err)
	}
}
