// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package jobs

import (
	"context"
	"time"

	"github.com/enamorak/pulseboard/internal/analytics"
	"github.com/enamorak/pulseboard/internal/config"
	"github.com/enamorak/pulseboard/internal/logging"
	"github.com/enamorak/pulseboard/internal/metrics"
	"github.com/enamorak/pulseboard/internal/notify"
	"github.com/enamorak/pulseboard/internal/websocket"
)

// DailyAnalysis recomputes patterns over the whole content archive
// once per configured interval. Unlike the sync job's windowed
// refresh, this pass sees everything and catches slow drifts the
// lookback window misses.
type DailyAnalysis struct {
	cfg      config.SyncConfig
	store    contentStore
	analyzer *analytics.Analyzer
	notify   notifier
	hub      broadcaster
}

// NewDailyAnalysis wires the daily analysis job. notify and hub may be
// nil.
func NewDailyAnalysis(cfg config.SyncConfig, store contentStore, analyzer *analytics.Analyzer, notifySvc notifier, hub broadcaster) *DailyAnalysis {
	return &DailyAnalysis{
		cfg:      cfg,
		store:    store,
		analyzer: analyzer,
		notify:   notifySvc,
		hub:      hub,
	}
}

func (a *DailyAnalysis) String() string { return "daily-analysis" }

// Serve runs one pass immediately, then one per analysis interval.
func (a *DailyAnalysis) Serve(ctx context.Context) error {
	a.runOnce(ctx)

	ticker := time.NewTicker(a.cfg.AnalysisInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logging.Info().Str("component", a.String()).Msg("analysis job stopped")
			return ctx.Err()
		case <-ticker.C:
			a.runOnce(ctx)
		}
	}
}

func (a *DailyAnalysis) runOnce(ctx context.Context) {
	asOf := time.Now().UTC()
	outcome := "success"
	defer func() { metrics.RecordSyncRun("daily_analysis", outcome) }()

	// Zero from means the full archive.
	items, err := a.store.ContentSince(ctx, time.Time{})
	if err != nil {
		outcome = "error"
		logging.Error().Err(err).Msg("daily analysis failed, store unavailable")
		return
	}
	if len(items) == 0 {
		logging.Info().Msg("daily analysis skipped, archive empty")
		return
	}

	pattern := a.analyzer.Analyze(items, asOf)
	if a.hub != nil {
		a.hub.BroadcastJSON(websocket.MessageTypePatternUpdate, pattern)
	}
	if a.notify != nil {
		a.notify.Publish(notify.FromPattern(pattern, asOf))
	}
	logging.Info().Int("items", len(items)).Msg("daily analysis completed")
}
