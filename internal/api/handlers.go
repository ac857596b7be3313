// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/enamorak/pulseboard/internal/ai"
	"github.com/enamorak/pulseboard/internal/analytics"
	"github.com/enamorak/pulseboard/internal/config"
	"github.com/enamorak/pulseboard/internal/intent"
	"github.com/enamorak/pulseboard/internal/logging"
	"github.com/enamorak/pulseboard/internal/models"
	"github.com/enamorak/pulseboard/internal/notify"
	"github.com/enamorak/pulseboard/internal/tables"
	"github.com/enamorak/pulseboard/internal/vk"
	"github.com/enamorak/pulseboard/internal/websocket"
)

// Handler carries the collaborators of every endpoint.
type Handler struct {
	cfg        config.Config
	version    string
	store      *tables.Client
	wall       *vk.Client
	model      *ai.Client
	analyzer   *analytics.Analyzer
	classifier *intent.Classifier
	dataRouter *intent.Router
	notify     *notify.Service
	hub        *websocket.Hub
}

// NewHandler wires the endpoint handlers.
func NewHandler(cfg config.Config, version string, store *tables.Client, wall *vk.Client, model *ai.Client, analyzer *analytics.Analyzer, classifier *intent.Classifier, dataRouter *intent.Router, notifySvc *notify.Service, hub *websocket.Hub) *Handler {
	return &Handler{
		cfg:        cfg,
		version:    version,
		store:      store,
		wall:       wall,
		model:      model,
		analyzer:   analyzer,
		classifier: classifier,
		dataRouter: dataRouter,
		notify:     notifySvc,
		hub:        hub,
	}
}

// HealthData is the health endpoint payload.
type HealthData struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	VKMock       bool   `json:"vk_mock"`
	TablesMock   bool   `json:"tables_mock"`
	ModelEnabled bool   `json:"model_enabled"`
}

// Health godoc
// @Summary Service health
// @Tags system
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	respondJSON(w, r, http.StatusOK, HealthData{
		Status:       "ok",
		Version:      h.version,
		VKMock:       h.wall.Mock(),
		TablesMock:   h.store.Mock(),
		ModelEnabled: h.model.Enabled(),
	}, started)
}

// ContentList godoc
// @Summary Page through mirrored content
// @Tags content
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Param days query int false "Window in days, 0 for everything"
// @Success 200 {object} models.APIResponse
// @Router /api/v1/content [get]
func (h *Handler) ContentList(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	limit, err := queryInt(r, "limit", h.cfg.API.DefaultPageSize)
	if err != nil || limit < 1 {
		respondError(w, r, http.StatusBadRequest, codeValidation, "limit must be a positive integer")
		return
	}
	if limit > h.cfg.API.MaxPageSize {
		limit = h.cfg.API.MaxPageSize
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		respondError(w, r, http.StatusBadRequest, codeValidation, "offset must be a non-negative integer")
		return
	}
	from, ok := windowStart(w, r)
	if !ok {
		return
	}

	items, total, err := h.store.ContentPage(r.Context(), tables.Filters{Limit: limit, Offset: offset, DateFrom: from})
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("content page fetch failed")
		respondError(w, r, http.StatusBadGateway, codeUpstream, "хранилище контента недоступно")
		return
	}

	respondJSON(w, r, http.StatusOK, models.ContentListResponse{
		Items:      items,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	}, started)
}

// AnalyticsData bundles the summary widgets of the dashboard.
type AnalyticsData struct {
	Summary   analytics.Summary            `json:"summary"`
	TopPosts  []analytics.ScoredItem       `json:"top_posts"`
	Sentiment analytics.SentimentBreakdown `json:"sentiment"`
}

// ContentAnalytics godoc
// @Summary Aggregate metrics over a window
// @Tags analytics
// @Produce json
// @Param days query int false "Window in days, 0 for everything"
// @Success 200 {object} models.APIResponse
// @Router /api/v1/content/analytics [get]
func (h *Handler) ContentAnalytics(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	items, ok := h.fetchWindow(w, r)
	if !ok {
		return
	}

	respondJSON(w, r, http.StatusOK, AnalyticsData{
		Summary:   analytics.Summarize(items),
		TopPosts:  analytics.TopPosts(items, 5),
		Sentiment: analytics.BreakdownSentiment(items),
	}, started)
}

// ContentPatterns godoc
// @Summary Behavioral patterns over a window
// @Tags analytics
// @Produce json
// @Param days query int false "Window in days, 0 for everything"
// @Success 200 {object} models.APIResponse
// @Router /api/v1/content/patterns [get]
func (h *Handler) ContentPatterns(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	items, ok := h.fetchWindow(w, r)
	if !ok {
		return
	}
	respondJSON(w, r, http.StatusOK, h.analyzer.Analyze(items, time.Now().UTC()), started)
}

// ContentRecommendations godoc
// @Summary Publication recommendations
// @Tags analytics
// @Produce json
// @Param days query int false "Window in days, 0 for everything"
// @Success 200 {object} models.APIResponse
// @Router /api/v1/content/recommendations [get]
func (h *Handler) ContentRecommendations(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	items, ok := h.fetchWindow(w, r)
	if !ok {
		return
	}
	pattern := h.analyzer.Analyze(items, time.Now().UTC())
	respondJSON(w, r, http.StatusOK, analytics.Generate(pattern), started)
}

// NetworkStats godoc
// @Summary Per-network aggregates
// @Tags analytics
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /api/v1/networks/stats [get]
func (h *Handler) NetworkStats(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	items, err := h.store.ContentSince(r.Context(), time.Time{})
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("network stats fetch failed")
		respondError(w, r, http.StatusBadGateway, codeUpstream, "хранилище контента недоступно")
		return
	}

	// VK is the only mirrored network today; the response stays a list
	// so adding networks does not break the dashboard.
	respondJSON(w, r, http.StatusOK, []models.NetworkStats{
		analytics.NetworkStatsFor("vk", items),
	}, started)
}

// fetchWindow pulls the content of the requested day window, writing
// the error response itself when something goes wrong.
func (h *Handler) fetchWindow(w http.ResponseWriter, r *http.Request) ([]models.ContentItem, bool) {
	from, ok := windowStart(w, r)
	if !ok {
		return nil, false
	}
	items, err := h.store.ContentSince(r.Context(), from)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("window fetch failed")
		respondError(w, r, http.StatusBadGateway, codeUpstream, "хранилище контента недоступно")
		return nil, false
	}
	return items, true
}

// windowStart parses the days query parameter into a window lower
// bound. An absent parameter means the default 30-day window; days=0
// means everything, returned as the zero time.
func windowStart(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	days, err := queryInt(r, "days", 30)
	if err != nil || days < 0 {
		respondError(w, r, http.StatusBadRequest, codeValidation, "days must be a non-negative integer")
		return time.Time{}, false
	}
	if days == 0 {
		return time.Time{}, true
	}
	return time.Now().UTC().AddDate(0, 0, -days), true
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
