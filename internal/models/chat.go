// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package models

import "time"

// ChatRequest is a free-text analytics question from the dashboard
// chat widget.
type ChatRequest struct {
	Question string `json:"question" validate:"required,min=1,max=2000"`
}

// ChatAnswer is the bot's reply. Intent and Scope expose how the
// question was classified so the frontend can render the matching
// widget next to the prose answer.
type ChatAnswer struct {
	Answer    string      `json:"answer"`
	Intent    string      `json:"intent"`
	Scope     string      `json:"scope,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	FromModel bool        `json:"from_model"`
}

// Notification is a dashboard alert derived from pattern analysis.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// NetworkStats is a per-network aggregate over mirrored content.
type NetworkStats struct {
	Network        string  `json:"network"`
	Posts          int     `json:"posts"`
	TotalViews     int     `json:"total_views"`
	TotalLikes     int     `json:"total_likes"`
	TotalComments  int     `json:"total_comments"`
	TotalReposts   int     `json:"total_reposts"`
	AvgEngagement  float64 `json:"avg_engagement"`
	DominantType   string  `json:"dominant_type"`
	LastPublishing string  `json:"last_publishing,omitempty"`
}
