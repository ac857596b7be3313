// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package supervisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/enamorak/pulseboard/internal/logging"
)

type blockingService struct {
	started chan struct{}
}

func (s *blockingService) Serve(ctx context.Context) error {
	close(s.started)
	<-ctx.Done()
	return ctx.Err()
}

func (s *blockingService) String() string { return "blocking-service" }

func TestTreeServesAndStops(t *testing.T) {
	tree := NewTree(logging.NewSlogLogger(), DefaultTreeConfig())

	jobSvc := &blockingService{started: make(chan struct{})}
	apiSvc := &blockingService{started: make(chan struct{})}
	tree.AddJobService(jobSvc)
	tree.AddAPIService(apiSvc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tree.Serve(ctx) }()

	select {
	case <-jobSvc.started:
	case <-time.After(2 * time.Second):
		t.Fatal("job service never started")
	}
	select {
	case <-apiSvc.started:
	case <-time.After(2 * time.Second):
		t.Fatal("api service never started")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("tree did not stop on cancel")
	}
}

func TestNewTreeAppliesDefaults(t *testing.T) {
	// Zero config must not produce a tree with zero restart windows.
	tree := NewTree(logging.NewSlogLogger(), TreeConfig{})
	if tree.root == nil || tree.jobs == nil || tree.api == nil {
		t.Fatal("tree layers missing")
	}
}
