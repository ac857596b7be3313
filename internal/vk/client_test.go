// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package vk

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/enamorak/pulseboard/internal/config"
)

func testConfig(baseURL string) config.VKConfig {
	return config.VKConfig{
		Token:             "test-token",
		GroupID:           "123",
		BaseURL:           baseURL,
		APIVersion:        "5.199",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 100,
	}
}

func TestWallPosts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wall.get" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("owner_id") != "-123" {
			t.Errorf("owner_id = %q", q.Get("owner_id"))
		}
		if q.Get("access_token") != "test-token" || q.Get("v") != "5.199" {
			t.Errorf("auth params = %v", q)
		}
		_, _ = w.Write([]byte(`{"response": {"count": 1, "items": [
			{"id": 10, "owner_id": -123, "date": 1756150200, "text": "Анонс эфира. Подробности ниже.",
			 "attachments": [{"type": "video"}],
			 "views": {"count": 2000}, "likes": {"count": 80}, "comments": {"count": 12}, "reposts": {"count": 5}}
		]}}`))
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL))
	items, err := c.WallPosts(context.Background(), 20)
	if err != nil {
		t.Fatalf("WallPosts: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d", len(items))
	}
	got := items[0]
	if got.ID != "vk_123_10" || got.Title != "Анонс эфира" || got.Views != 2000 {
		t.Errorf("item = %+v", got)
	}
}

func TestWallPostsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": {"error_code": 5, "error_msg": "User authorization failed"}}`))
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL))
	_, err := c.WallPosts(context.Background(), 20)
	if !errors.Is(err, ErrAPIError) {
		t.Fatalf("err = %v, want ErrAPIError", err)
	}
}

func TestComments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wall.getComments" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("post_id"); got != "10" {
			t.Errorf("post_id = %q", got)
		}
		_, _ = w.Write([]byte(`{"response": {"items": [
			{"id": 1, "text": "Отличный пост!"},
			{"id": 2, "text": ""},
			{"id": 3, "text": "Ждём продолжения"}
		]}}`))
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL))
	texts, err := c.Comments(context.Background(), "vk_123_10", 100)
	if err != nil {
		t.Fatalf("Comments: %v", err)
	}
	// Empty comments are dropped.
	if len(texts) != 2 || texts[0] != "Отличный пост!" {
		t.Errorf("texts = %v", texts)
	}
}

func TestMockMode(t *testing.T) {
	c := NewClient(config.VKConfig{Timeout: time.Second})
	if !c.Mock() {
		t.Fatal("client without token must run in mock mode")
	}

	items, err := c.WallPosts(context.Background(), 10)
	if err != nil {
		t.Fatalf("WallPosts: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("items = %d", len(items))
	}
	for _, item := range items {
		if item.ID == "" || item.Title == "" || !item.Type.Valid() {
			t.Errorf("incomplete mock item: %+v", item)
		}
	}

	texts, err := c.Comments(context.Background(), items[0].ID, 100)
	if err != nil || len(texts) == 0 {
		t.Fatalf("Comments = %v, %v", texts, err)
	}
}
