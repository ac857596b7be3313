// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/enamorak/pulseboard/internal/models"
)

var analysisTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestSlotOf(t *testing.T) {
	tests := []struct {
		hour int
		want TimeSlot
	}{
		{0, SlotNight},
		{5, SlotNight},
		{6, SlotMorning},
		{11, SlotMorning},
		{12, SlotAfternoon},
		{17, SlotAfternoon},
		{18, SlotEvening},
		{23, SlotEvening},
	}

	for _, tt := range tests {
		ts := time.Date(2026, 8, 30, tt.hour, 30, 0, 0, time.UTC)
		if got := SlotOf(ts); got != tt.want {
			t.Errorf("SlotOf(hour=%d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestAnalyzeEmptyCollection(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	pattern := a.Analyze(nil, analysisTime)

	if pattern.BestPostingTime.Slot != SlotEvening {
		t.Errorf("empty collection best slot = %s, want %s", pattern.BestPostingTime.Slot, SlotEvening)
	}
	if pattern.BestPostingTime.AvgEngagementRate != 0 {
		t.Errorf("empty collection rate = %v, want 0", pattern.BestPostingTime.AvgEngagementRate)
	}
	if pattern.QuestionPostImpact.HasPattern {
		t.Error("empty collection must not report a question pattern")
	}
	if pattern.QuestionPostImpact.Multiplier != 0 {
		t.Errorf("empty collection multiplier = %v, want 0", pattern.QuestionPostImpact.Multiplier)
	}
	if pattern.SentimentTrend.Direction != TrendStable {
		t.Errorf("empty collection trend = %s, want %s", pattern.SentimentTrend.Direction, TrendStable)
	}
	if len(pattern.ContentTypePerformance) != 0 {
		t.Errorf("empty collection type performance has %d entries", len(pattern.ContentTypePerformance))
	}
}

func TestBestPostingTime(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	morning := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC)

	items := []models.ContentItem{
		{ID: "m1", PublishedAt: morning, Views: 100, Likes: 2},              // rate 2
		{ID: "e1", PublishedAt: evening, Views: 100, Likes: 10},             // rate 10
		{ID: "e2", PublishedAt: evening, Views: 100, Likes: 4, Comments: 1}, // rate 6
		{ID: "m2", PublishedAt: morning, Views: 100, Likes: 1},              // rate 1
	}

	got := a.Analyze(items, analysisTime).BestPostingTime
	if got.Slot != SlotEvening {
		t.Fatalf("best slot = %s, want %s", got.Slot, SlotEvening)
	}
	if math.Abs(got.AvgEngagementRate-8) > 1e-9 {
		t.Errorf("evening mean rate = %v, want 8", got.AvgEngagementRate)
	}
}

func TestTypePerformance(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	items := []models.ContentItem{
		{ID: "1", Type: models.ContentTypeVideo, Views: 1000, Likes: 50, Comments: 10, Reposts: 5},
		{ID: "2", Type: models.ContentTypePost, Views: 500, Likes: 10, Comments: 2, Reposts: 1},
	}

	perf := a.Analyze(items, analysisTime).ContentTypePerformance
	video, ok := perf[models.ContentTypeVideo]
	if !ok {
		t.Fatal("missing video performance group")
	}
	if video.Count != 1 || video.AvgViews != 1000 || video.AvgLikes != 50 || video.AvgComments != 10 {
		t.Errorf("video performance = %+v, want count 1, views 1000, likes 50, comments 10", video)
	}
}

func TestQuestionImpact(t *testing.T) {
	tests := []struct {
		name           string
		items          []models.ContentItem
		wantMultiplier float64
		wantPattern    bool
	}{
		{
			name: "question posts convert twice as well",
			items: []models.ContentItem{
				{ID: "q", Text: "Как вам новый формат?", Views: 100, Comments: 10},
				{ID: "r", Text: "Обычный анонс", Views: 100, Comments: 5},
			},
			wantMultiplier: 2.0,
			wantPattern:    true,
		},
		{
			name: "no question posts",
			items: []models.ContentItem{
				{ID: "r1", Text: "Анонс", Views: 100, Comments: 5},
				{ID: "r2", Text: "Отчёт", Views: 100, Comments: 3},
			},
			wantMultiplier: 0,
			wantPattern:    false,
		},
		{
			name: "only question posts",
			items: []models.ContentItem{
				{ID: "q1", Text: "Почему так?", Views: 100, Comments: 5},
			},
			wantMultiplier: 0,
			wantPattern:    false,
		},
		{
			name: "below threshold",
			items: []models.ContentItem{
				{ID: "q", Text: "Что вы думаете об этом", Views: 100, Comments: 6},
				{ID: "r", Text: "Анонс", Views: 100, Comments: 5},
			},
			wantMultiplier: 1.2,
			wantPattern:    false,
		},
	}

	a := NewAnalyzer(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.items, analysisTime).QuestionPostImpact
			if math.Abs(got.Multiplier-tt.wantMultiplier) > 1e-9 {
				t.Errorf("Multiplier = %v, want %v", got.Multiplier, tt.wantMultiplier)
			}
			if got.HasPattern != tt.wantPattern {
				t.Errorf("HasPattern = %v, want %v", got.HasPattern, tt.wantPattern)
			}
		})
	}
}

func TestSentimentTrend(t *testing.T) {
	recent := analysisTime.Add(-2 * 24 * time.Hour)
	older := analysisTime.Add(-10 * 24 * time.Hour)

	tests := []struct {
		name  string
		items []models.ContentItem
		want  TrendDirection
	}{
		{
			name: "less recent negativity is improving",
			items: []models.ContentItem{
				{ID: "o", PublishedAt: older, SentimentNegative: 40},
				{ID: "r", PublishedAt: recent, SentimentNegative: 10},
			},
			want: TrendImproving,
		},
		{
			name: "more recent negativity is declining",
			items: []models.ContentItem{
				{ID: "o", PublishedAt: older, SentimentNegative: 10},
				{ID: "r", PublishedAt: recent, SentimentNegative: 40},
			},
			want: TrendDeclining,
		},
		{
			name: "equal means are stable",
			items: []models.ContentItem{
				{ID: "o", PublishedAt: older, SentimentNegative: 20},
				{ID: "r", PublishedAt: recent, SentimentNegative: 20},
			},
			want: TrendStable,
		},
	}

	a := NewAnalyzer(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.items, analysisTime).SentimentTrend.Direction
			if got != tt.want {
				t.Errorf("trend = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSentimentTrendReproducible(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	items := []models.ContentItem{
		{ID: "o", PublishedAt: analysisTime.Add(-10 * 24 * time.Hour), SentimentNegative: 40},
		{ID: "r", PublishedAt: analysisTime.Add(-1 * 24 * time.Hour), SentimentNegative: 10},
	}

	first := a.Analyze(items, analysisTime)
	second := a.Analyze(items, analysisTime)
	if first.SentimentTrend != second.SentimentTrend {
		t.Errorf("same rows and reference instant disagree: %v vs %v", first.SentimentTrend, second.SentimentTrend)
	}
}

func TestLengthImpact(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	long := make([]rune, 150)
	for i := range long {
		long[i] = 'ж'
	}

	items := []models.ContentItem{
		{ID: "s1", Text: "короткий", Likes: 30},
		{ID: "s2", Text: "ещё короче", Likes: 10},
		{ID: "l1", Text: string(long), Likes: 4},
	}

	impact := a.Analyze(items, analysisTime).LengthImpact
	if impact.ShortAvgEngagement != 20 {
		t.Errorf("short mean likes = %v, want 20", impact.ShortAvgEngagement)
	}
	if impact.LongAvgEngagement != 4 {
		t.Errorf("long mean likes = %v, want 4", impact.LongAvgEngagement)
	}
}
