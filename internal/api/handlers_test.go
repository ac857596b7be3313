// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/enamorak/pulseboard/internal/ai"
	"github.com/enamorak/pulseboard/internal/analytics"
	"github.com/enamorak/pulseboard/internal/config"
	"github.com/enamorak/pulseboard/internal/intent"
	"github.com/enamorak/pulseboard/internal/models"
	"github.com/enamorak/pulseboard/internal/notify"
	"github.com/enamorak/pulseboard/internal/tables"
	"github.com/enamorak/pulseboard/internal/vk"
	"github.com/enamorak/pulseboard/internal/websocket"
)

// newTestRouter builds the full routing tree over mock-mode clients,
// so every endpoint works without external services.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.Config{
		API: config.APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Tables:     config.TablesConfig{ContentTable: "content", Timeout: time.Second},
		VK:         config.VKConfig{Timeout: time.Second},
		OpenRouter: config.OpenRouterConfig{Timeout: time.Second},
		Notify:     config.NotifyConfig{MaxStored: 100},
	}

	store := tables.NewClient(cfg.Tables)
	wall := vk.NewClient(cfg.VK)
	model := ai.NewClient(cfg.OpenRouter)
	analyzer := analytics.NewAnalyzer(analytics.DefaultConfig())
	classifier := intent.NewClassifier()
	dataRouter := intent.NewRouter(store, analyzer)
	notifySvc := notify.NewService(cfg.Notify, nil)
	hub := websocket.NewHub()

	handler := NewHandler(cfg, "test", store, wall, model, analyzer, classifier, dataRouter, notifySvc, hub)
	return NewRouter(cfg.API, handler)
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, models.APIResponse) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope from %s %s: %v (body %q)", method, target, err, rec.Body.String())
	}
	return rec, envelope
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusOK || envelope.Status != "success" {
		t.Fatalf("code = %d, status = %s", rec.Code, envelope.Status)
	}

	data := envelope.Data.(map[string]interface{})
	if data["status"] != "ok" || data["tables_mock"] != true || data["vk_mock"] != true {
		t.Errorf("data = %v", data)
	}
	if envelope.Metadata.RequestID == "" {
		t.Error("request id missing from metadata")
	}
}

func TestContentList(t *testing.T) {
	router := newTestRouter(t)
	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/content?limit=5&days=0", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}

	data := envelope.Data.(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 5 {
		t.Errorf("items = %d, want 5", len(items))
	}
	if data["total_count"].(float64) < 5 {
		t.Errorf("total_count = %v", data["total_count"])
	}
}

func TestContentListBadParams(t *testing.T) {
	router := newTestRouter(t)
	for _, target := range []string{
		"/api/v1/content?limit=abc",
		"/api/v1/content?limit=-1",
		"/api/v1/content?offset=-2",
		"/api/v1/content?days=-1",
	} {
		rec, envelope := doRequest(t, router, http.MethodGet, target, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: code = %d, want 400", target, rec.Code)
		}
		if envelope.Error == nil || envelope.Error.Code != "VALIDATION_ERROR" {
			t.Errorf("%s: error = %+v", target, envelope.Error)
		}
	}
}

func TestContentAnalytics(t *testing.T) {
	router := newTestRouter(t)
	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/content/analytics?days=0", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}

	data := envelope.Data.(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	if summary["total_posts"].(float64) == 0 {
		t.Error("mock workspace must produce posts")
	}
	if len(data["top_posts"].([]interface{})) == 0 {
		t.Error("top posts empty")
	}
}

func TestContentPatternsAndRecommendations(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/content/patterns?days=0", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("patterns code = %d", rec.Code)
	}
	pattern := envelope.Data.(map[string]interface{})
	if _, ok := pattern["best_posting_time"]; !ok {
		t.Errorf("pattern = %v", pattern)
	}

	rec, envelope = doRequest(t, router, http.MethodGet, "/api/v1/content/recommendations?days=0", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("recommendations code = %d", rec.Code)
	}
	if len(envelope.Data.([]interface{})) == 0 {
		t.Error("mock data must yield recommendations")
	}
}

func TestChat(t *testing.T) {
	router := newTestRouter(t)
	rec, envelope := doRequest(t, router, http.MethodPost, "/api/v1/chat",
		`{"question": "какие посты были самые популярные за месяц?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %+v", rec.Code, envelope)
	}

	data := envelope.Data.(map[string]interface{})
	if data["intent"] != "popularity" {
		t.Errorf("intent = %v", data["intent"])
	}
	// Without a model key the canned fallback answers.
	if data["from_model"] != false || data["answer"] == "" {
		t.Errorf("answer = %v, from_model = %v", data["answer"], data["from_model"])
	}
}

func TestChatValidation(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/chat", `{"question": ""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty question: code = %d", rec.Code)
	}

	rec, _ = doRequest(t, router, http.MethodPost, "/api/v1/chat", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body: code = %d", rec.Code)
	}
}

func TestNotificationsEmptyAndMissing(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/notifications", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	if items, ok := envelope.Data.([]interface{}); ok && len(items) != 0 {
		t.Errorf("fresh service must have no notifications, got %d", len(items))
	}

	rec, envelope = doRequest(t, router, http.MethodPost, "/api/v1/notifications/missing/read", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", rec.Code)
	}
	if envelope.Error == nil || envelope.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v", envelope.Error)
	}
}

func TestPlanLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodPost, "/api/v1/plan",
		`{"title": "Запуск рубрики", "type": "video", "publish_date": "2026-09-20T00:00:00Z"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d, body = %+v", rec.Code, envelope)
	}

	data := envelope.Data.(map[string]interface{})
	entry := data["entry"].(map[string]interface{})
	if entry["id"] == "" || entry["status"] != "planned" {
		t.Errorf("entry = %v", entry)
	}
	tasks := data["tasks"].([]interface{})
	if len(tasks) != 5 {
		t.Errorf("tasks = %d, want 5", len(tasks))
	}
	if data["prediction"] == "" {
		t.Error("prediction missing")
	}

	rec, envelope = doRequest(t, router, http.MethodGet, "/api/v1/plan", "")
	if rec.Code != http.StatusOK || len(envelope.Data.([]interface{})) != 1 {
		t.Errorf("plan list code = %d, data = %v", rec.Code, envelope.Data)
	}

	planID := entry["id"].(string)
	rec, envelope = doRequest(t, router, http.MethodGet, "/api/v1/plan/"+planID+"/tasks", "")
	if rec.Code != http.StatusOK || len(envelope.Data.([]interface{})) != 5 {
		t.Errorf("plan tasks code = %d", rec.Code)
	}
}

func TestPlanCreateValidation(t *testing.T) {
	router := newTestRouter(t)
	rec, envelope := doRequest(t, router, http.MethodPost, "/api/v1/plan",
		`{"type": "story", "publish_date": "2026-09-20T00:00:00Z"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", rec.Code)
	}
	if envelope.Error == nil || envelope.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v", envelope.Error)
	}
}

func TestNetworkStats(t *testing.T) {
	router := newTestRouter(t)
	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/networks/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}

	networks := envelope.Data.([]interface{})
	if len(networks) != 1 {
		t.Fatalf("networks = %d", len(networks))
	}
	stats := networks[0].(map[string]interface{})
	if stats["network"] != "vk" || stats["posts"].(float64) == 0 {
		t.Errorf("stats = %v", stats)
	}
}

func TestSecurityHeaders(t *testing.T) {
	router := newTestRouter(t)
	rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/health", "")
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "pulseboard_") {
		t.Error("metrics exposition missing pulseboard collectors")
	}
}
