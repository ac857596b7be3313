// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package analytics

import (
	"sort"
	"time"

	"github.com/enamorak/pulseboard/internal/models"
)

// Summary is the collection-level totals block shown at the top of
// the dashboard.
type Summary struct {
	TotalPosts        int     `json:"total_posts"`
	TotalViews        int     `json:"total_views"`
	TotalLikes        int     `json:"total_likes"`
	TotalComments     int     `json:"total_comments"`
	TotalReposts      int     `json:"total_reposts"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
}

// ScoredItem pairs a content item with its derived snapshot for
// ranking views.
type ScoredItem struct {
	Item     models.ContentItem `json:"item"`
	Snapshot EngagementSnapshot `json:"snapshot"`
}

// SentimentBreakdown is the mean of each sentiment component over a
// collection plus the dominant label of those means.
type SentimentBreakdown struct {
	AvgPositive float64   `json:"avg_positive"`
	AvgNeutral  float64   `json:"avg_neutral"`
	AvgNegative float64   `json:"avg_negative"`
	Dominant    Sentiment `json:"dominant"`
}

// Summarize computes collection totals. An empty collection yields
// the zero summary.
func Summarize(items []models.ContentItem) Summary {
	var s Summary
	var rateSum float64
	for _, item := range items {
		s.TotalPosts++
		s.TotalViews += item.Views
		s.TotalLikes += item.Likes
		s.TotalComments += item.Comments
		s.TotalReposts += item.Reposts
		rateSum += EngagementRate(item)
	}
	if s.TotalPosts > 0 {
		s.AvgEngagementRate = rateSum / float64(s.TotalPosts)
	}
	return s
}

// TopPosts returns up to n items ranked by engagement rate, highest
// first. Equal rates resolve by item ID so rankings are stable.
func TopPosts(items []models.ContentItem, n int) []ScoredItem {
	scored := make([]ScoredItem, 0, len(items))
	for _, item := range items {
		scored = append(scored, ScoredItem{Item: item, Snapshot: ComputeSnapshot(item)})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Snapshot.EngagementRate != scored[j].Snapshot.EngagementRate {
			return scored[i].Snapshot.EngagementRate > scored[j].Snapshot.EngagementRate
		}
		return scored[i].Item.ID < scored[j].Item.ID
	})
	if n > 0 && len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

// BreakdownSentiment averages the sentiment components over the
// collection. The zero breakdown of an empty collection is labeled
// positive, since the tie-break favors positive when it ties the max.
func BreakdownSentiment(items []models.ContentItem) SentimentBreakdown {
	var b SentimentBreakdown
	if len(items) == 0 {
		b.Dominant = DominantSentiment(0, 0, 0)
		return b
	}
	for _, item := range items {
		b.AvgPositive += item.SentimentPositive
		b.AvgNeutral += item.SentimentNeutral
		b.AvgNegative += item.SentimentNegative
	}
	n := float64(len(items))
	b.AvgPositive /= n
	b.AvgNeutral /= n
	b.AvgNegative /= n
	b.Dominant = DominantSentiment(b.AvgPositive, b.AvgNeutral, b.AvgNegative)
	return b
}

// NetworkStatsFor rolls a collection mirrored from one network into
// the per-network stats row.
func NetworkStatsFor(network string, items []models.ContentItem) models.NetworkStats {
	summary := Summarize(items)
	stats := models.NetworkStats{
		Network:       network,
		Posts:         summary.TotalPosts,
		TotalViews:    summary.TotalViews,
		TotalLikes:    summary.TotalLikes,
		TotalComments: summary.TotalComments,
		TotalReposts:  summary.TotalReposts,
		AvgEngagement: summary.AvgEngagementRate,
	}

	counts := make(map[models.ContentType]int)
	var last time.Time
	for _, item := range items {
		counts[item.Type]++
		if item.PublishedAt.After(last) {
			last = item.PublishedAt
		}
	}
	var dominant models.ContentType
	for _, typ := range []models.ContentType{models.ContentTypePost, models.ContentTypeVideo, models.ContentTypeImage} {
		if counts[typ] > counts[dominant] {
			dominant = typ
		}
	}
	stats.DominantType = string(dominant)
	if !last.IsZero() {
		stats.LastPublishing = last.UTC().Format(time.RFC3339)
	}
	return stats
}
