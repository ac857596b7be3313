// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package intent

import (
	"context"
	"fmt"
	"time"

	"github.com/enamorak/pulseboard/internal/analytics"
	"github.com/enamorak/pulseboard/internal/logging"
	"github.com/enamorak/pulseboard/internal/models"
)

// Source is the slice of the tabular provider the router needs: all
// content published after a lower bound. A zero from means no bound.
type Source interface {
	ContentSince(ctx context.Context, from time.Time) ([]models.ContentItem, error)
}

// Comparison holds the two halves of a before/after question.
type Comparison struct {
	Current  analytics.Summary `json:"current"`
	Previous analytics.Summary `json:"previous"`
}

// AggregateData is the router's answer bundle. Exactly the fields
// relevant to the intent's kind are populated. NoData marks the
// empty-aggregate sentinel returned when the upstream fetch failed or
// produced no rows; callers translate it into a user-facing message.
type AggregateData struct {
	Kind   Category `json:"kind"`
	NoData bool     `json:"no_data,omitempty"`
	Error  string   `json:"error,omitempty"`

	Summary         *analytics.Summary            `json:"summary,omitempty"`
	TopPosts        []analytics.ScoredItem        `json:"top_posts,omitempty"`
	Pattern         *analytics.Pattern            `json:"pattern,omitempty"`
	Sentiment       *analytics.SentimentBreakdown `json:"sentiment,omitempty"`
	Recommendations []analytics.Recommendation    `json:"recommendations,omitempty"`
	Comparison      *Comparison                   `json:"comparison,omitempty"`
}

// topPostsLimit bounds the popularity ranking shown in chat answers.
const topPostsLimit = 5

// Router dispatches classified intents to their aggregations.
type Router struct {
	source   Source
	analyzer *analytics.Analyzer
}

// NewRouter creates a router over the given content source.
func NewRouter(source Source, analyzer *analytics.Analyzer) *Router {
	return &Router{source: source, analyzer: analyzer}
}

// FetchDataFor runs the aggregation for a classified intent.
//
// Exactly one provider fetch happens per call, except for comparison
// intents which fetch their two windows concurrently and fail whole
// if either fetch fails. Upstream failures and empty windows return
// the NoData sentinel, never an error; the only error condition is an
// unknown intent category, which is a programmer mistake.
func (r *Router) FetchDataFor(ctx context.Context, in Intent, asOf time.Time) (AggregateData, error) {
	switch in.Category {
	case CategoryPopularity:
		return r.popularity(ctx, in, asOf), nil
	case CategoryTimeAnalysis:
		return r.timeAnalysis(ctx, in, asOf), nil
	case CategorySentiment:
		return r.sentiment(ctx, in, asOf), nil
	case CategoryComparison:
		return r.comparison(ctx, in, asOf), nil
	case CategoryRecommendations:
		return r.recommendations(ctx, in, asOf), nil
	case CategoryGeneral:
		return r.general(ctx, in, asOf), nil
	default:
		return AggregateData{}, fmt.Errorf("unknown intent category %q", in.Category)
	}
}

// noData is the empty-aggregate sentinel.
func noData(kind Category) AggregateData {
	return AggregateData{Kind: kind, NoData: true, Error: "no data"}
}

// fetch pulls one window and folds fetch errors and empty windows
// into the sentinel path.
func (r *Router) fetch(ctx context.Context, in Intent, asOf time.Time) ([]models.ContentItem, bool) {
	items, err := r.source.ContentSince(ctx, FromTime(in.Scope, asOf))
	if err != nil {
		logging.Warn().Err(err).
			Str("category", string(in.Category)).
			Str("scope", string(in.Scope)).
			Msg("content fetch failed, answering with no-data sentinel")
		return nil, false
	}
	return items, len(items) > 0
}

func (r *Router) popularity(ctx context.Context, in Intent, asOf time.Time) AggregateData {
	items, ok := r.fetch(ctx, in, asOf)
	if !ok {
		return noData(in.Category)
	}
	summary := analytics.Summarize(items)
	return AggregateData{
		Kind:     in.Category,
		Summary:  &summary,
		TopPosts: analytics.TopPosts(items, topPostsLimit),
	}
}

func (r *Router) timeAnalysis(ctx context.Context, in Intent, asOf time.Time) AggregateData {
	items, ok := r.fetch(ctx, in, asOf)
	if !ok {
		return noData(in.Category)
	}
	pattern := r.analyzer.Analyze(items, asOf)
	return AggregateData{Kind: in.Category, Pattern: &pattern}
}

func (r *Router) sentiment(ctx context.Context, in Intent, asOf time.Time) AggregateData {
	items, ok := r.fetch(ctx, in, asOf)
	if !ok {
		return noData(in.Category)
	}
	breakdown := analytics.BreakdownSentiment(items)
	pattern := r.analyzer.Analyze(items, asOf)
	return AggregateData{Kind: in.Category, Sentiment: &breakdown, Pattern: &pattern}
}

type fetchResult struct {
	items []models.ContentItem
	err   error
}

// comparison fetches the current window and the window before it
// concurrently. The provider filters by lower bound only, so the
// previous window is fetched at double depth and trimmed client-side.
// No partial results: either fetch failing fails the comparison.
func (r *Router) comparison(ctx context.Context, in Intent, asOf time.Time) AggregateData {
	days := WindowDays(in.Scope)
	if days == 0 {
		days = WindowDays(defaultScope)
	}
	boundary := asOf.AddDate(0, 0, -days)

	currentCh := make(chan fetchResult, 1)
	previousCh := make(chan fetchResult, 1)
	go func() {
		items, err := r.source.ContentSince(ctx, boundary)
		currentCh <- fetchResult{items: items, err: err}
	}()
	go func() {
		items, err := r.source.ContentSince(ctx, asOf.AddDate(0, 0, -2*days))
		previousCh <- fetchResult{items: items, err: err}
	}()
	current := <-currentCh
	previous := <-previousCh

	if current.err != nil || previous.err != nil {
		logging.Warn().
			AnErr("current_err", current.err).
			AnErr("previous_err", previous.err).
			Str("scope", string(in.Scope)).
			Msg("comparison fetch failed, answering with no-data sentinel")
		return noData(in.Category)
	}

	var older []models.ContentItem
	for _, item := range previous.items {
		if !item.PublishedAt.After(boundary) {
			older = append(older, item)
		}
	}
	if len(current.items) == 0 && len(older) == 0 {
		return noData(in.Category)
	}

	return AggregateData{
		Kind: in.Category,
		Comparison: &Comparison{
			Current:  analytics.Summarize(current.items),
			Previous: analytics.Summarize(older),
		},
	}
}

func (r *Router) recommendations(ctx context.Context, in Intent, asOf time.Time) AggregateData {
	items, ok := r.fetch(ctx, in, asOf)
	if !ok {
		return noData(in.Category)
	}
	pattern := r.analyzer.Analyze(items, asOf)
	return AggregateData{
		Kind:            in.Category,
		Pattern:         &pattern,
		Recommendations: analytics.Generate(pattern),
	}
}

func (r *Router) general(ctx context.Context, in Intent, asOf time.Time) AggregateData {
	items, ok := r.fetch(ctx, in, asOf)
	if !ok {
		return noData(in.Category)
	}
	summary := analytics.Summarize(items)
	return AggregateData{Kind: in.Category, Summary: &summary}
}
