// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/enamorak/pulseboard/internal/ai"
	"github.com/enamorak/pulseboard/internal/analytics"
	"github.com/enamorak/pulseboard/internal/config"
	"github.com/enamorak/pulseboard/internal/logging"
	"github.com/enamorak/pulseboard/internal/metrics"
	"github.com/enamorak/pulseboard/internal/models"
	"github.com/enamorak/pulseboard/internal/notify"
	"github.com/enamorak/pulseboard/internal/websocket"
)

// commentFetchLimit caps comments pulled per post for sentiment
// scoring.
const commentFetchLimit = 100

// wallSource is the slice of the VK client the sync consumes.
type wallSource interface {
	WallPosts(ctx context.Context, count int) ([]models.ContentItem, error)
	Comments(ctx context.Context, postID string, count int) ([]string, error)
}

// sentimentScorer is the slice of the AI client the sync consumes.
type sentimentScorer interface {
	ScoreSentiment(ctx context.Context, comments []string) ai.SentimentScore
}

// contentStore is the slice of the tables client the jobs consume.
type contentStore interface {
	UpsertContent(ctx context.Context, items []models.ContentItem) error
	ContentSince(ctx context.Context, from time.Time) ([]models.ContentItem, error)
}

// notifier receives derived notifications.
type notifier interface {
	Publish(notifications []models.Notification)
}

// broadcaster pushes live updates to dashboard clients.
type broadcaster interface {
	BroadcastJSON(messageType string, data interface{})
	BroadcastSyncCompleted(newItems int, duration time.Duration)
}

// ContentSync mirrors the community wall into the tabular store and
// refreshes the behavioral patterns afterwards.
type ContentSync struct {
	cfg      config.SyncConfig
	wall     wallSource
	scorer   sentimentScorer
	store    contentStore
	analyzer *analytics.Analyzer
	notify   notifier
	hub      broadcaster
}

// NewContentSync wires the sync job. notify and hub may be nil.
func NewContentSync(cfg config.SyncConfig, wall wallSource, scorer sentimentScorer, store contentStore, analyzer *analytics.Analyzer, notifySvc notifier, hub broadcaster) *ContentSync {
	return &ContentSync{
		cfg:      cfg,
		wall:     wall,
		scorer:   scorer,
		store:    store,
		analyzer: analyzer,
		notify:   notifySvc,
		hub:      hub,
	}
}

func (s *ContentSync) String() string { return "content-sync" }

// Serve runs one sync immediately, then one per configured interval,
// until the context is canceled.
func (s *ContentSync) Serve(ctx context.Context) error {
	if err := s.runOnce(ctx); err != nil {
		logging.Error().Err(err).Msg("content sync failed")
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logging.Info().Str("component", s.String()).Msg("sync job stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := s.runOnce(ctx); err != nil {
				logging.Error().Err(err).Msg("content sync failed")
			}
		}
	}
}

// runOnce executes one full sync pass: fetch, enrich, mirror, analyze.
func (s *ContentSync) runOnce(ctx context.Context) error {
	start := time.Now()
	outcome := "success"
	defer func() { metrics.RecordSyncRun("content_sync", outcome) }()

	items, err := s.wall.WallPosts(ctx, s.cfg.BatchSize)
	if err != nil {
		outcome = "error"
		return fmt.Errorf("fetch wall posts: %w", err)
	}

	for i := range items {
		comments, err := s.wall.Comments(ctx, items[i].ID, commentFetchLimit)
		if err != nil {
			// A post without scored comments still syncs; sentiment
			// stays at its previous value.
			logging.Warn().Err(err).Str("post", items[i].ID).Msg("comment fetch failed")
			continue
		}
		score := s.scorer.ScoreSentiment(ctx, comments)
		items[i].SentimentPositive = score.Positive
		items[i].SentimentNeutral = score.Neutral
		items[i].SentimentNegative = score.Negative
		if len(score.Themes) > 0 {
			items[i].Themes = score.Themes
		}
	}

	if err := s.store.UpsertContent(ctx, items); err != nil {
		outcome = "error"
		return fmt.Errorf("mirror content: %w", err)
	}
	metrics.SyncItemsTotal.Add(float64(len(items)))

	s.refreshPatterns(ctx, time.Now().UTC())

	if s.hub != nil {
		s.hub.BroadcastSyncCompleted(len(items), time.Since(start))
	}
	logging.Info().Int("items", len(items)).Dur("took", time.Since(start)).Msg("content sync completed")
	return nil
}

// refreshPatterns recomputes patterns over the lookback window and
// publishes what they imply.
func (s *ContentSync) refreshPatterns(ctx context.Context, asOf time.Time) {
	items, err := s.store.ContentSince(ctx, asOf.Add(-s.cfg.Lookback))
	if err != nil {
		logging.Warn().Err(err).Msg("pattern refresh skipped, store unavailable")
		return
	}
	if len(items) == 0 {
		return
	}

	pattern := s.analyzer.Analyze(items, asOf)
	if s.hub != nil {
		s.hub.BroadcastJSON(websocket.MessageTypePatternUpdate, pattern)
	}
	if s.notify != nil {
		s.notify.Publish(notify.FromPattern(pattern, asOf))
	}
}
