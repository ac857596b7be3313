// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		question     string
		wantCategory Category
		wantScope    Scope
	}{
		{
			name:         "popularity beats time keyword",
			question:     "какой пост был топ на прошлой неделе",
			wantCategory: CategoryPopularity,
			wantScope:    ScopeWeek,
		},
		{
			name:         "time analysis",
			question:     "когда лучше публиковать посты",
			wantCategory: CategoryTimeAnalysis,
			wantScope:    defaultScope,
		},
		{
			name:         "sentiment",
			question:     "какое настроение у аудитории за месяц",
			wantCategory: CategorySentiment,
			wantScope:    ScopeMonth,
		},
		{
			name:         "comparison",
			question:     "сравни эту неделю с прошлой",
			wantCategory: CategoryComparison,
			wantScope:    ScopeWeek,
		},
		{
			name:         "recommendations",
			question:     "дай рекомендации по контенту",
			wantCategory: CategoryRecommendations,
			wantScope:    defaultScope,
		},
		{
			name:         "unmatched falls back to general",
			question:     "привет",
			wantCategory: CategoryGeneral,
			wantScope:    defaultScope,
		},
		{
			name:         "yesterday scope",
			question:     "что вышло вчера",
			wantCategory: CategoryGeneral,
			wantScope:    ScopeYesterday,
		},
		{
			name:         "english popularity",
			question:     "show me the best posts this month",
			wantCategory: CategoryPopularity,
			wantScope:    ScopeMonth,
		},
	}

	c := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.question)
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %s, want %s", got.Category, tt.wantCategory)
			}
			if got.Scope != tt.wantScope {
				t.Errorf("Scope = %s, want %s", got.Scope, tt.wantScope)
			}
		})
	}
}

func TestClassifySentimentFocus(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{"почему столько негатива в комментариях", "negative"},
		{"сколько позитивных реакций на посты", "positive"},
		{"какая тональность у аудитории", "overall"},
	}

	c := NewClassifier()
	for _, tt := range tests {
		got := c.Classify(tt.question)
		if got.Category != CategorySentiment {
			t.Errorf("Classify(%q).Category = %s, want sentiment", tt.question, got.Category)
			continue
		}
		if got.Focus != tt.want {
			t.Errorf("Classify(%q).Focus = %s, want %s", tt.question, got.Focus, tt.want)
		}
	}
}
