// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package analytics

import (
	"time"
	"unicode/utf8"

	"github.com/enamorak/pulseboard/internal/models"
)

// TrendDirection describes how the negative-sentiment share moved
// between the older and the recent half of the analysis window.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// BestPostingTime is the time slot whose posts average the highest
// engagement rate.
type BestPostingTime struct {
	Slot              TimeSlot `json:"slot"`
	AvgEngagementRate float64  `json:"avg_engagement_rate"`
}

// TypePerformance aggregates one content type. Groups with a single
// item report that item's values as the mean, no smoothing.
type TypePerformance struct {
	Count       int     `json:"count"`
	AvgViews    float64 `json:"avg_views"`
	AvgLikes    float64 `json:"avg_likes"`
	AvgComments float64 `json:"avg_comments"`
}

// QuestionPostImpact measures how much better question posts convert
// views into comments compared to regular posts.
type QuestionPostImpact struct {
	HasPattern bool    `json:"has_pattern"`
	Multiplier float64 `json:"multiplier"`
}

// SentimentTrend is the direction of the audience mood over the
// analysis window.
type SentimentTrend struct {
	Direction TrendDirection `json:"direction"`
}

// LengthImpact compares mean likes of short posts (under the length
// threshold) against long ones.
type LengthImpact struct {
	ShortAvgEngagement float64 `json:"short_avg_engagement"`
	LongAvgEngagement  float64 `json:"long_avg_engagement"`
}

// Pattern is the bundle of behavioral signals computed from a content
// collection. Recomputed per analysis call, never persisted.
type Pattern struct {
	BestPostingTime        BestPostingTime                        `json:"best_posting_time"`
	ContentTypePerformance map[models.ContentType]TypePerformance `json:"content_type_performance"`
	QuestionPostImpact     QuestionPostImpact                     `json:"question_post_impact"`
	SentimentTrend         SentimentTrend                         `json:"sentiment_trend"`
	LengthImpact           LengthImpact                           `json:"length_impact"`
}

// Config tunes the pattern analyzer. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// QuestionMultiplierThreshold is the minimum question/regular
	// conversion ratio that counts as a detected pattern.
	QuestionMultiplierThreshold float64

	// ShortTextLength is the rune count below which a post counts as
	// short for length-impact analysis.
	ShortTextLength int

	// TrendWindow separates "recent" from "older" posts relative to
	// the analysis reference instant.
	TrendWindow time.Duration
}

// DefaultConfig returns the analyzer defaults: multiplier threshold
// 1.5, short-text boundary 100 runes, 7-day trend window.
func DefaultConfig() Config {
	return Config{
		QuestionMultiplierThreshold: 1.5,
		ShortTextLength:             100,
		TrendWindow:                 7 * 24 * time.Hour,
	}
}

// epsilon guards the regular-post mean in the question multiplier so a
// zero-comment regular partition does not divide by zero.
const epsilon = 1e-9

// Analyzer computes behavioral patterns over content collections.
// Stateless and safe for concurrent use.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer with the given configuration.
// Zero-valued fields fall back to DefaultConfig values.
func NewAnalyzer(cfg Config) *Analyzer {
	def := DefaultConfig()
	if cfg.QuestionMultiplierThreshold <= 0 {
		cfg.QuestionMultiplierThreshold = def.QuestionMultiplierThreshold
	}
	if cfg.ShortTextLength <= 0 {
		cfg.ShortTextLength = def.ShortTextLength
	}
	if cfg.TrendWindow <= 0 {
		cfg.TrendWindow = def.TrendWindow
	}
	return &Analyzer{cfg: cfg}
}

// Analyze scans the collection and returns the full pattern bundle.
//
// asOf is the reference instant for the sentiment-trend split. Callers
// analyzing live data pass time.Now(); callers replaying stored data
// pass a stable instant so results are reproducible.
//
// Analyze never fails: every sub-computation has a defined output for
// empty and singleton input.
func (a *Analyzer) Analyze(items []models.ContentItem, asOf time.Time) Pattern {
	return Pattern{
		BestPostingTime:        a.bestPostingTime(items),
		ContentTypePerformance: a.typePerformance(items),
		QuestionPostImpact:     a.questionImpact(items),
		SentimentTrend:         a.sentimentTrend(items, asOf),
		LengthImpact:           a.lengthImpact(items),
	}
}

// slotOrder fixes the examination order so that equal slot means
// resolve the same way on every run.
var slotOrder = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening, SlotNight}

// bestPostingTime buckets items by time slot and picks the slot with
// the strictly highest mean engagement rate. An empty collection
// yields the documented default slot with a zero rate rather than an
// error or NaN.
func (a *Analyzer) bestPostingTime(items []models.ContentItem) BestPostingTime {
	if len(items) == 0 {
		return BestPostingTime{Slot: defaultSlot}
	}

	sums := make(map[TimeSlot]float64, 4)
	counts := make(map[TimeSlot]int, 4)
	for _, item := range items {
		slot := SlotOf(item.PublishedAt)
		sums[slot] += EngagementRate(item)
		counts[slot]++
	}

	best := BestPostingTime{Slot: defaultSlot, AvgEngagementRate: -1}
	for _, slot := range slotOrder {
		if counts[slot] == 0 {
			continue
		}
		mean := sums[slot] / float64(counts[slot])
		if mean > best.AvgEngagementRate {
			best = BestPostingTime{Slot: slot, AvgEngagementRate: mean}
		}
	}
	return best
}

// typePerformance groups items by content type and reports per-group
// mean views, likes, and comments.
func (a *Analyzer) typePerformance(items []models.ContentItem) map[models.ContentType]TypePerformance {
	perf := make(map[models.ContentType]TypePerformance)
	for _, item := range items {
		p := perf[item.Type]
		p.Count++
		p.AvgViews += float64(item.Views)
		p.AvgLikes += float64(item.Likes)
		p.AvgComments += float64(item.Comments)
		perf[item.Type] = p
	}
	for typ, p := range perf {
		n := float64(p.Count)
		p.AvgViews /= n
		p.AvgLikes /= n
		p.AvgComments /= n
		perf[typ] = p
	}
	return perf
}

// questionImpact partitions items into question posts and regular
// posts and compares their mean comments-per-view conversion.
//
// An empty partition on either side yields multiplier 0 and no
// pattern; there is no signal to compare against.
func (a *Analyzer) questionImpact(items []models.ContentItem) QuestionPostImpact {
	var qSum, rSum float64
	var qCount, rCount int
	for _, item := range items {
		views := item.Views
		if views <= 0 {
			views = 1
		}
		ratio := float64(item.Comments) / float64(views)
		if item.IsQuestion() {
			qSum += ratio
			qCount++
		} else {
			rSum += ratio
			rCount++
		}
	}
	if qCount == 0 || rCount == 0 {
		return QuestionPostImpact{}
	}

	qMean := qSum / float64(qCount)
	rMean := rSum / float64(rCount)
	if rMean < epsilon {
		rMean = epsilon
	}
	multiplier := qMean / rMean
	return QuestionPostImpact{
		HasPattern: multiplier > a.cfg.QuestionMultiplierThreshold,
		Multiplier: multiplier,
	}
}

// sentimentTrend splits the collection at asOf minus the trend window
// and compares mean negative sentiment of the two halves. Lower
// recent negativity is improving, higher is declining, equal (or
// either half empty with both means at zero) is stable.
func (a *Analyzer) sentimentTrend(items []models.ContentItem, asOf time.Time) SentimentTrend {
	boundary := asOf.Add(-a.cfg.TrendWindow)

	var recentSum, olderSum float64
	var recentCount, olderCount int
	for _, item := range items {
		if item.PublishedAt.After(boundary) {
			recentSum += item.SentimentNegative
			recentCount++
		} else {
			olderSum += item.SentimentNegative
			olderCount++
		}
	}

	recentMean := 0.0
	if recentCount > 0 {
		recentMean = recentSum / float64(recentCount)
	}
	olderMean := 0.0
	if olderCount > 0 {
		olderMean = olderSum / float64(olderCount)
	}

	switch {
	case recentMean < olderMean:
		return SentimentTrend{Direction: TrendImproving}
	case recentMean > olderMean:
		return SentimentTrend{Direction: TrendDeclining}
	default:
		return SentimentTrend{Direction: TrendStable}
	}
}

// lengthImpact partitions posts at the short-text boundary and
// reports mean likes per partition. Length is measured in runes so
// Cyrillic text is not penalized by its UTF-8 byte width.
func (a *Analyzer) lengthImpact(items []models.ContentItem) LengthImpact {
	var shortSum, longSum float64
	var shortCount, longCount int
	for _, item := range items {
		if utf8.RuneCountInString(item.Text) < a.cfg.ShortTextLength {
			shortSum += float64(item.Likes)
			shortCount++
		} else {
			longSum += float64(item.Likes)
			longCount++
		}
	}

	var impact LengthImpact
	if shortCount > 0 {
		impact.ShortAvgEngagement = shortSum / float64(shortCount)
	}
	if longCount > 0 {
		impact.LongAvgEngagement = longSum / float64(longCount)
	}
	return impact
}
