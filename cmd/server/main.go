// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

// Pulseboard server entry point. Wires configuration, the upstream
// clients, the analytics pipeline and the API, then runs everything
// under one supervision tree until SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/enamorak/pulseboard/docs" // generated swagger docs
	"github.com/enamorak/pulseboard/internal/ai"
	"github.com/enamorak/pulseboard/internal/analytics"
	"github.com/enamorak/pulseboard/internal/api"
	"github.com/enamorak/pulseboard/internal/config"
	"github.com/enamorak/pulseboard/internal/intent"
	"github.com/enamorak/pulseboard/internal/jobs"
	"github.com/enamorak/pulseboard/internal/logging"
	"github.com/enamorak/pulseboard/internal/notify"
	"github.com/enamorak/pulseboard/internal/supervisor"
	"github.com/enamorak/pulseboard/internal/supervisor/services"
	"github.com/enamorak/pulseboard/internal/tables"
	"github.com/enamorak/pulseboard/internal/vk"
	"github.com/enamorak/pulseboard/internal/websocket"
)

// version is set at build time via -ldflags.
var version = "dev"

// @title Pulseboard API
// @version 1.0
// @description Social content analytics: engagement metrics, behavioral patterns, publication recommendations and an analytics chat bot.
// @license.name AGPL-3.0-or-later
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().Str("version", version).Str("environment", cfg.Server.Environment).Msg("starting pulseboard")

	// Upstream clients. Each degrades to a mock or fallback mode when
	// its credentials are absent.
	store := tables.NewClient(cfg.Tables)
	wall := vk.NewClient(cfg.VK)
	model := ai.NewClient(cfg.OpenRouter)

	analyzer := analytics.NewAnalyzer(analytics.Config{
		QuestionMultiplierThreshold: cfg.Analytics.QuestionMultiplierThreshold,
		ShortTextLength:             cfg.Analytics.ShortTextLength,
		TrendWindow:                 cfg.Analytics.TrendWindow(),
	})
	classifier := intent.NewClassifier()
	dataRouter := intent.NewRouter(store, analyzer)

	hub := websocket.NewHub()
	var notifySvc *notify.Service
	if cfg.Notify.Enabled {
		notifySvc = notify.NewService(cfg.Notify, hub)
	} else {
		notifySvc = notify.NewService(cfg.Notify, nil)
	}

	handler := api.NewHandler(*cfg, version, store, wall, model, analyzer, classifier, dataRouter, notifySvc, hub)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewRouter(cfg.API, handler),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddJobService(services.NewWebSocketHubService(hub))
	if cfg.Sync.Enabled {
		tree.AddJobService(jobs.NewContentSync(cfg.Sync, wall, model, store, analyzer, notifySvc, hub))
		tree.AddJobService(jobs.NewDailyAnalysis(cfg.Sync, store, analyzer, notifySvc, hub))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("listening")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logging.Info().Msg("shutdown complete")
	return nil
}
