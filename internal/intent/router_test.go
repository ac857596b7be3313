// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package intent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/enamorak/pulseboard/internal/analytics"
	"github.com/enamorak/pulseboard/internal/models"
)

var routerTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

// stubSource serves canned items filtered by the lower bound, or a
// fixed error. The call counter is atomic because comparison intents
// fetch from two goroutines at once.
type stubSource struct {
	items []models.ContentItem
	err   error
	calls atomic.Int64
}

func (s *stubSource) ContentSince(_ context.Context, from time.Time) ([]models.ContentItem, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	var out []models.ContentItem
	for _, item := range s.items {
		if from.IsZero() || item.PublishedAt.After(from) {
			out = append(out, item)
		}
	}
	return out, nil
}

func newTestRouter(source Source) *Router {
	return NewRouter(source, analytics.NewAnalyzer(analytics.DefaultConfig()))
}

func TestFetchDataForPopularity(t *testing.T) {
	source := &stubSource{items: []models.ContentItem{
		{ID: "a", PublishedAt: routerTime.Add(-24 * time.Hour), Views: 100, Likes: 50},
		{ID: "b", PublishedAt: routerTime.Add(-48 * time.Hour), Views: 100, Likes: 5},
	}}
	r := newTestRouter(source)

	data, err := r.FetchDataFor(context.Background(), Intent{Category: CategoryPopularity, Scope: ScopeWeek}, routerTime)
	if err != nil {
		t.Fatalf("FetchDataFor: %v", err)
	}
	if data.NoData {
		t.Fatal("unexpected no-data sentinel")
	}
	if len(data.TopPosts) != 2 || data.TopPosts[0].Item.ID != "a" {
		t.Errorf("top posts = %+v", data.TopPosts)
	}
	if data.Summary == nil || data.Summary.TotalPosts != 2 {
		t.Errorf("summary = %+v", data.Summary)
	}
}

func TestFetchDataForUpstreamFailure(t *testing.T) {
	r := newTestRouter(&stubSource{err: errors.New("boom")})

	data, err := r.FetchDataFor(context.Background(), Intent{Category: CategoryPopularity, Scope: ScopeWeek}, routerTime)
	if err != nil {
		t.Fatalf("upstream failure must not surface as error, got %v", err)
	}
	if !data.NoData || data.Error != "no data" {
		t.Errorf("want no-data sentinel, got %+v", data)
	}
}

func TestFetchDataForEmptyWindow(t *testing.T) {
	r := newTestRouter(&stubSource{})

	data, err := r.FetchDataFor(context.Background(), Intent{Category: CategorySentiment, Scope: ScopeMonth}, routerTime)
	if err != nil {
		t.Fatalf("FetchDataFor: %v", err)
	}
	if !data.NoData {
		t.Error("empty window must yield the no-data sentinel")
	}
}

func TestFetchDataForComparison(t *testing.T) {
	source := &stubSource{items: []models.ContentItem{
		{ID: "cur", PublishedAt: routerTime.Add(-2 * 24 * time.Hour), Views: 100, Likes: 10},
		{ID: "old", PublishedAt: routerTime.Add(-10 * 24 * time.Hour), Views: 100, Likes: 2},
	}}
	r := newTestRouter(source)

	data, err := r.FetchDataFor(context.Background(), Intent{Category: CategoryComparison, Scope: ScopeWeek}, routerTime)
	if err != nil {
		t.Fatalf("FetchDataFor: %v", err)
	}
	if data.Comparison == nil {
		t.Fatal("missing comparison block")
	}
	if data.Comparison.Current.TotalPosts != 1 || data.Comparison.Current.TotalLikes != 10 {
		t.Errorf("current window = %+v", data.Comparison.Current)
	}
	if data.Comparison.Previous.TotalPosts != 1 || data.Comparison.Previous.TotalLikes != 2 {
		t.Errorf("previous window = %+v", data.Comparison.Previous)
	}
	if got := source.calls.Load(); got != 2 {
		t.Errorf("comparison made %d fetches, want 2", got)
	}
}

func TestFetchDataForComparisonFailsWhole(t *testing.T) {
	source := &stubSource{err: errors.New("timeout")}
	r := newTestRouter(source)

	data, err := r.FetchDataFor(context.Background(), Intent{Category: CategoryComparison, Scope: ScopeWeek}, routerTime)
	if err != nil {
		t.Fatalf("FetchDataFor: %v", err)
	}
	if !data.NoData {
		t.Error("failed fetch must fail the whole comparison into the sentinel")
	}
	if got := source.calls.Load(); got != 2 {
		t.Errorf("comparison made %d fetches, want 2", got)
	}
}

func TestFetchDataForRecommendations(t *testing.T) {
	source := &stubSource{items: []models.ContentItem{
		{ID: "a", Type: models.ContentTypeVideo, PublishedAt: routerTime.Add(-24 * time.Hour), Views: 100, Likes: 10},
	}}
	r := newTestRouter(source)

	data, err := r.FetchDataFor(context.Background(), Intent{Category: CategoryRecommendations, Scope: ScopeMonth}, routerTime)
	if err != nil {
		t.Fatalf("FetchDataFor: %v", err)
	}
	if data.Pattern == nil {
		t.Fatal("missing pattern")
	}
	if len(data.Recommendations) == 0 {
		t.Error("expected at least one recommendation for an active collection")
	}
}

func TestFetchDataForUnknownCategory(t *testing.T) {
	r := newTestRouter(&stubSource{})

	if _, err := r.FetchDataFor(context.Background(), Intent{Category: Category("bogus")}, routerTime); err == nil {
		t.Error("unknown category must be a programmer error")
	}
}
