// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package analytics

import "github.com/enamorak/pulseboard/internal/models"

// Engagement score weights. Fixed design choice, not configurable:
// a repost signals the strongest endorsement, a comment costs more
// effort than a like.
const (
	weightLikes    = 1
	weightComments = 2
	weightReposts  = 3
)

// Sentiment is the dominant sentiment label of a content item.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// EngagementSnapshot is the derived per-item metric bundle. Ephemeral:
// recomputed on demand, never stored.
type EngagementSnapshot struct {
	// EngagementScore is likes + 2*comments + 3*reposts.
	EngagementScore int `json:"engagement_score"`

	// EngagementRate is the score normalized by views, as a percentage.
	// Views are floored to 1 before dividing.
	EngagementRate float64 `json:"engagement_rate"`

	// DominantSentiment is the argmax of the three sentiment
	// components, ties resolved per DominantSentiment.
	DominantSentiment Sentiment `json:"dominant_sentiment"`
}

// ComputeSnapshot derives the engagement metrics for a single item.
//
// Negative counters are clamped to zero before scoring; well-formed
// provider data never contains them, but a malformed row must not
// produce negative engagement. Division by zero is guarded by
// substituting views=1 when views=0, so a zero-interaction item
// yields a rate of exactly 0.
func ComputeSnapshot(item models.ContentItem) EngagementSnapshot {
	likes := clampNonNegative(item.Likes)
	comments := clampNonNegative(item.Comments)
	reposts := clampNonNegative(item.Reposts)

	score := weightLikes*likes + weightComments*comments + weightReposts*reposts
	views := clampNonNegative(item.Views)
	if views == 0 {
		views = 1
	}

	return EngagementSnapshot{
		EngagementScore:   score,
		EngagementRate:    float64(score) / float64(views) * 100,
		DominantSentiment: DominantSentiment(item.SentimentPositive, item.SentimentNeutral, item.SentimentNegative),
	}
}

// EngagementRate is a shorthand for ComputeSnapshot(item).EngagementRate.
func EngagementRate(item models.ContentItem) float64 {
	return ComputeSnapshot(item).EngagementRate
}

// DominantSentiment picks the strongest of the three components.
//
// Tie-break order matters and is deliberately asymmetric: positive
// wins any tie at the maximum, negative beats neutral when both share
// the maximum, and everything else is neutral.
func DominantSentiment(positive, neutral, negative float64) Sentiment {
	max := positive
	if neutral > max {
		max = neutral
	}
	if negative > max {
		max = negative
	}
	switch {
	case positive == max:
		return SentimentPositive
	case negative == max:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
