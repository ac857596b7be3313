// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package vk

import (
	"strings"
	"testing"
	"time"

	"github.com/enamorak/pulseboard/internal/models"
)

func TestTitleFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"first sentence", "Итоги недели. Собрали всё главное.", "Итоги недели"},
		{"question mark ends sentence", "Как выбрать формат? Разбираем.", "Как выбрать формат"},
		{"newline ends sentence", "Анонс эфира\nПодробности ниже", "Анонс эфира"},
		{"empty text", "", "Без названия"},
		{"whitespace only", "   \n ", "Без названия"},
		{"long sentence truncated", strings.Repeat("ж", 80), strings.Repeat("ж", 50)},
		{"no terminator", "Короткий анонс без точки", "Короткий анонс без точки"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := titleFromText(tt.text); got != tt.want {
				t.Errorf("titleFromText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTypeFromAttachments(t *testing.T) {
	post := func(types ...string) wallPost {
		var p wallPost
		for _, typ := range types {
			p.Attachments = append(p.Attachments, struct {
				Type string `json:"type"`
			}{Type: typ})
		}
		return p
	}

	tests := []struct {
		name string
		post wallPost
		want models.ContentType
	}{
		{"no attachments", post(), models.ContentTypePost},
		{"photo", post("photo"), models.ContentTypeImage},
		{"video", post("video"), models.ContentTypeVideo},
		{"video wins over photo", post("photo", "video"), models.ContentTypeVideo},
		{"unknown attachment", post("poll"), models.ContentTypePost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := typeFromAttachments(tt.post); got != tt.want {
				t.Errorf("typeFromAttachments = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNormalizePost(t *testing.T) {
	post := wallPost{
		ID:      456,
		OwnerID: -123,
		Date:    time.Date(2026, 8, 20, 19, 30, 0, 0, time.UTC).Unix(),
		Text:    "Итоги недели. Читайте в посте.",
	}
	post.Views.Count = 1000
	post.Likes.Count = 40
	post.Comments.Count = 7
	post.Reposts.Count = 3

	item := normalizePost(post)
	if item.ID != "vk_123_456" {
		t.Errorf("ID = %s", item.ID)
	}
	if item.Type != models.ContentTypePost {
		t.Errorf("Type = %s", item.Type)
	}
	if item.Title != "Итоги недели" {
		t.Errorf("Title = %q", item.Title)
	}
	if !item.PublishedAt.Equal(time.Date(2026, 8, 20, 19, 30, 0, 0, time.UTC)) {
		t.Errorf("PublishedAt = %v", item.PublishedAt)
	}
	if item.Views != 1000 || item.Likes != 40 || item.Comments != 7 || item.Reposts != 3 {
		t.Errorf("counters = %+v", item)
	}
}

func TestPostIDFromContentID(t *testing.T) {
	id, err := postIDFromContentID("vk_123_456")
	if err != nil || id != 456 {
		t.Fatalf("postIDFromContentID = %d, %v", id, err)
	}
	if _, err := postIDFromContentID("nounderscore"); err == nil {
		t.Error("expected error for malformed id")
	}
	if _, err := postIDFromContentID("vk_123_abc"); err == nil {
		t.Error("expected error for non-numeric suffix")
	}
}
