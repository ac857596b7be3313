// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package models

import (
	"strings"
	"time"
)

// ContentType classifies a piece of published content by its primary medium.
type ContentType string

// Supported content types. Anything the source network cannot classify
// (plain text, links, polls) is treated as a post.
const (
	ContentTypePost  ContentType = "post"
	ContentTypeVideo ContentType = "video"
	ContentTypeImage ContentType = "image"
)

// Valid reports whether ct is one of the supported content types.
func (ct ContentType) Valid() bool {
	switch ct {
	case ContentTypePost, ContentTypeVideo, ContentTypeImage:
		return true
	}
	return false
}

// ContentItem is the canonical shape of one published content item as
// stored in the tabular workspace. It is an immutable value once
// produced by the upstream provider; the analytics pipeline only
// reads it.
//
// Sentiment components are independent signals in [0,100] and are not
// required to sum to 100; the source data does not enforce this.
// Missing numeric fields decode to zero and missing arrays to empty,
// matching the provider's sparse row format.
type ContentItem struct {
	// ID is the row identifier in the tabular store. For VK-sourced
	// content this is "vk_<ownerID>_<postID>".
	ID string `json:"id"`

	// Type is the content medium: post, video, or image.
	Type ContentType `json:"type"`

	// Title is a short display title, possibly empty.
	Title string `json:"title,omitempty"`

	// Text is the full post body, possibly empty.
	Text string `json:"text,omitempty"`

	// PublishedAt is when the item went live on the source network.
	PublishedAt time.Time `json:"published_at"`

	// Engagement counters. Non-negative in well-formed data; the
	// metrics layer clamps negatives defensively.
	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Reposts  int `json:"reposts"`

	// Sentiment components in [0,100], independent signals.
	SentimentPositive float64 `json:"sentiment_positive"`
	SentimentNeutral  float64 `json:"sentiment_neutral"`
	SentimentNegative float64 `json:"sentiment_negative"`

	// Themes are ordered topic tags extracted from comments, may be empty.
	Themes []string `json:"themes,omitempty"`
}

// IsQuestion reports whether the item reads as a question post: the
// text or title contains a question mark or one of the interrogative
// keywords of the deployment language.
func (c ContentItem) IsQuestion() bool {
	return containsQuestion(c.Text) || containsQuestion(c.Title)
}

var questionKeywords = []string{"как", "почему", "что вы думаете"}

func containsQuestion(s string) bool {
	if s == "" {
		return false
	}
	if strings.ContainsRune(s, '?') {
		return true
	}
	lower := strings.ToLower(s)
	for _, kw := range questionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
