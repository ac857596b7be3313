// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package ai

import (
	"context"
	"strings"

	"github.com/goccy/go-json"

	"github.com/enamorak/pulseboard/internal/logging"
)

// SentimentScore is a percentage split over comment tone. The three
// numeric fields sum to 100. Themes and Summary are model extras and
// stay empty on the heuristic path.
type SentimentScore struct {
	Positive float64  `json:"positive"`
	Neutral  float64  `json:"neutral"`
	Negative float64  `json:"negative"`
	Themes   []string `json:"themes,omitempty"`
	Summary  string   `json:"summary,omitempty"`
}

const sentimentSystemPrompt = "Ты аналитик тональности. Оцени комментарии и ответь строго JSON-объектом " +
	`вида {"positive": N, "neutral": N, "negative": N, "themes": ["тема"], "summary": "одно предложение"}, ` +
	"где N это проценты, в сумме 100. Без пояснений."

// ScoreSentiment rates the tone of a post's comments. Model failures
// fall back to a keyword heuristic, so the caller always gets a score.
func (c *Client) ScoreSentiment(ctx context.Context, comments []string) SentimentScore {
	if len(comments) == 0 {
		return SentimentScore{Neutral: 100}
	}

	if c.Enabled() {
		text, err := c.complete(ctx, sentimentSystemPrompt, strings.Join(comments, "\n"))
		if err == nil {
			if score, ok := parseSentiment(text); ok {
				return score
			}
			logging.Warn().Str("completion", text).Msg("unparseable sentiment completion, using heuristic")
		} else {
			logging.Warn().Err(err).Msg("sentiment completion failed, using heuristic")
		}
	}
	return heuristicSentiment(comments)
}

// parseSentiment extracts the JSON object from a completion, tolerating
// surrounding prose and code fences.
func parseSentiment(text string) (SentimentScore, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return SentimentScore{}, false
	}

	var score SentimentScore
	if err := json.Unmarshal([]byte(text[start:end+1]), &score); err != nil {
		return SentimentScore{}, false
	}
	if score.Positive < 0 || score.Neutral < 0 || score.Negative < 0 {
		return SentimentScore{}, false
	}
	total := score.Positive + score.Neutral + score.Negative
	if total <= 0 {
		return SentimentScore{}, false
	}
	// Re-normalize to 100 in case the model rounded.
	score.Positive = score.Positive / total * 100
	score.Neutral = score.Neutral / total * 100
	score.Negative = score.Negative / total * 100
	return score, true
}

var positiveMarkers = []string{"спасибо", "отличн", "класс", "супер", "полезн", "круто", "👍", "❤"}
var negativeMarkers = []string{"плохо", "ужас", "не согласен", "хуже", "скучн", "разочаров", "👎"}

// heuristicSentiment is the offline fallback: counts marker words per
// comment and splits the remainder into neutral.
func heuristicSentiment(comments []string) SentimentScore {
	var positive, negative int
	for _, comment := range comments {
		lower := strings.ToLower(comment)
		switch {
		case containsAny(lower, positiveMarkers):
			positive++
		case containsAny(lower, negativeMarkers):
			negative++
		}
	}

	total := float64(len(comments))
	score := SentimentScore{
		Positive: float64(positive) / total * 100,
		Negative: float64(negative) / total * 100,
	}
	score.Neutral = 100 - score.Positive - score.Negative
	return score
}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
