// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package vk

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/enamorak/pulseboard/internal/models"
)

// titleLimit caps the derived title length in runes.
const titleLimit = 50

// normalizePost maps a raw wall post into the content item model.
func normalizePost(post wallPost) models.ContentItem {
	owner := post.OwnerID
	if owner < 0 {
		owner = -owner
	}
	return models.ContentItem{
		ID:          fmt.Sprintf("vk_%d_%d", owner, post.ID),
		Type:        typeFromAttachments(post),
		Title:       titleFromText(post.Text),
		Text:        post.Text,
		PublishedAt: time.Unix(post.Date, 0).UTC(),
		Views:       post.Views.Count,
		Likes:       post.Likes.Count,
		Comments:    post.Comments.Count,
		Reposts:     post.Reposts.Count,
	}
}

// typeFromAttachments classifies a post by its first media attachment.
// A video attachment wins over a photo, anything else is a plain post.
func typeFromAttachments(post wallPost) models.ContentType {
	for _, att := range post.Attachments {
		if att.Type == "video" {
			return models.ContentTypeVideo
		}
	}
	for _, att := range post.Attachments {
		if att.Type == "photo" {
			return models.ContentTypeImage
		}
	}
	return models.ContentTypePost
}

// titleFromText derives a display title: the first sentence of the
// text, truncated to titleLimit runes.
func titleFromText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "Без названия"
	}

	if idx := strings.IndexAny(text, ".!?\n"); idx >= 0 {
		text = strings.TrimSpace(text[:idx])
	}
	if utf8.RuneCountInString(text) > titleLimit {
		runes := []rune(text)
		text = string(runes[:titleLimit])
	}
	if text == "" {
		return "Без названия"
	}
	return text
}

// postIDFromContentID recovers the raw VK post id from a normalized
// content item id like "vk_123_456".
func postIDFromContentID(id string) (int64, error) {
	idx := strings.LastIndexByte(id, '_')
	if idx < 0 {
		return 0, fmt.Errorf("malformed content id %q", id)
	}
	raw, err := strconv.ParseInt(id[idx+1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed content id %q: %w", id, err)
	}
	return raw, nil
}
