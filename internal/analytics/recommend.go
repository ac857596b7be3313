// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package analytics

import (
	"fmt"
	"sort"

	"github.com/enamorak/pulseboard/internal/models"
)

// Category classifies a recommendation for dashboard grouping.
type Category string

const (
	CategoryTiming      Category = "timing"
	CategoryContentType Category = "content_type"
	CategoryStyle       Category = "style"
	CategoryCTA         Category = "cta"
	CategoryEngagement  Category = "engagement"
	CategorySentiment   Category = "sentiment"
)

// Priority ranks a recommendation for dashboard ordering.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Recommendation is one human-readable, typed advice record derived
// from a detected pattern.
type Recommendation struct {
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Priority Priority `json:"priority"`
}

// Generate maps a pattern to its recommendation records.
//
// Output order is fixed: timing, content type, engagement, sentiment,
// style. At most one recommendation per category, and a dimension
// with no signal produces nothing; the result may be empty but never
// padded with placeholders.
func Generate(pattern Pattern) []Recommendation {
	recs := make([]Recommendation, 0, 5)

	if pattern.BestPostingTime.AvgEngagementRate > 0 {
		recs = append(recs, Recommendation{
			Category: CategoryTiming,
			Title:    "Лучшее время публикации",
			Message: fmt.Sprintf("Публикуйте контент %s: средняя вовлечённость %.1f%%",
				pattern.BestPostingTime.Slot.Label(), pattern.BestPostingTime.AvgEngagementRate),
			Priority: PriorityHigh,
		})
	}

	if typ, perf, ok := bestContentType(pattern.ContentTypePerformance); ok {
		recs = append(recs, Recommendation{
			Category: CategoryContentType,
			Title:    "Самый эффективный формат",
			Message: fmt.Sprintf("Формат «%s» собирает в среднем %.0f просмотров и %.0f лайков, делайте на него ставку",
				typeLabel(typ), perf.AvgViews, perf.AvgLikes),
			Priority: PriorityMedium,
		})
	}

	if pattern.QuestionPostImpact.HasPattern {
		recs = append(recs, Recommendation{
			Category: CategoryEngagement,
			Title:    "Задавайте вопросы аудитории",
			Message: fmt.Sprintf("Посты с вопросами получают в %.1f раза больше комментариев на просмотр, чем обычные",
				pattern.QuestionPostImpact.Multiplier),
			Priority: PriorityMedium,
		})
	}

	if pattern.SentimentTrend.Direction == TrendDeclining {
		recs = append(recs, Recommendation{
			Category: CategorySentiment,
			Title:    "Негатив в комментариях растёт",
			Message:  "Доля негативных реакций за последнюю неделю выросла, пересмотрите темы и тон публикаций",
			Priority: PriorityHigh,
		})
	}

	if rec, ok := lengthRecommendation(pattern.LengthImpact); ok {
		recs = append(recs, rec)
	}

	return recs
}

// bestContentType picks the type with the highest mean views. Equal
// means resolve by type name so repeated runs agree.
func bestContentType(perf map[models.ContentType]TypePerformance) (models.ContentType, TypePerformance, bool) {
	if len(perf) == 0 {
		return "", TypePerformance{}, false
	}
	types := make([]models.ContentType, 0, len(perf))
	for typ := range perf {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	best := types[0]
	for _, typ := range types[1:] {
		if perf[typ].AvgViews > perf[best].AvgViews {
			best = typ
		}
	}
	return best, perf[best], true
}

func lengthRecommendation(impact LengthImpact) (Recommendation, bool) {
	if impact.ShortAvgEngagement == 0 && impact.LongAvgEngagement == 0 {
		return Recommendation{}, false
	}
	rec := Recommendation{Category: CategoryStyle, Priority: PriorityLow}
	if impact.ShortAvgEngagement >= impact.LongAvgEngagement {
		rec.Title = "Короткие посты работают лучше"
		rec.Message = fmt.Sprintf("Посты до 100 символов собирают в среднем %.0f лайков против %.0f у длинных",
			impact.ShortAvgEngagement, impact.LongAvgEngagement)
	} else {
		rec.Title = "Длинные посты работают лучше"
		rec.Message = fmt.Sprintf("Развёрнутые посты собирают в среднем %.0f лайков против %.0f у коротких",
			impact.LongAvgEngagement, impact.ShortAvgEngagement)
	}
	return rec, true
}

func typeLabel(typ models.ContentType) string {
	switch typ {
	case models.ContentTypeVideo:
		return "видео"
	case models.ContentTypeImage:
		return "изображение"
	default:
		return "пост"
	}
}
