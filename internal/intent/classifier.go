// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package intent

import "strings"

// Category is the classified purpose of an analytics question.
type Category string

const (
	CategoryPopularity      Category = "popularity"
	CategoryTimeAnalysis    Category = "time_analysis"
	CategorySentiment       Category = "sentiment"
	CategoryComparison      Category = "comparison"
	CategoryRecommendations Category = "recommendations"
	CategoryGeneral         Category = "general"
)

// Scope is the time window a question refers to.
type Scope string

const (
	ScopeToday     Scope = "today"
	ScopeYesterday Scope = "yesterday"
	ScopeWeek      Scope = "week"
	ScopeMonth     Scope = "month"
	ScopeAll       Scope = "all"
)

// defaultScope applies when no time keyword matches. A month is the
// widest window the dashboard charts by default.
const defaultScope = ScopeMonth

// Intent is a classified question: the category plus its secondary
// parameter. Scope is filled for every category since every
// aggregation is time-windowed.
type Intent struct {
	Category Category `json:"category"`
	Scope    Scope    `json:"scope"`

	// Focus narrows sentiment questions: negative, positive, or
	// overall.
	Focus string `json:"focus,omitempty"`
}

// rule is one (keyword set, category) pair in the dispatch table.
type rule struct {
	category Category
	keywords []string
}

// Classifier matches questions against an ordered rule table.
// Stateless and safe for concurrent use.
type Classifier struct {
	rules []rule
}

// NewClassifier builds the default classifier. Rule order is the
// category priority: popularity beats time analysis beats sentiment
// beats comparison beats recommendations; general is the fallback.
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []rule{
			{CategoryPopularity, []string{
				"топ", "популярн", "лучший", "лучшие", "лучша", "самый",
				"top", "best", "popular",
			}},
			{CategoryTimeAnalysis, []string{
				"когда", "во сколько", "время публикац", "какое время",
				"when", "what time",
			}},
			{CategorySentiment, []string{
				"настроен", "тональн", "негатив", "позитив", "эмоци",
				"sentiment", "mood",
			}},
			{CategoryComparison, []string{
				"сравн", "по сравнению", "против", "динамик", "vs",
				"compare",
			}},
			{CategoryRecommendations, []string{
				"рекоменд", "совет", "что публиковать", "что постить",
				"recommend", "advice",
			}},
		},
	}
}

// Classify maps a question to its intent. Unmatched questions fall
// back to the general category, never an error.
func (c *Classifier) Classify(question string) Intent {
	q := strings.ToLower(question)

	intent := Intent{Category: CategoryGeneral, Scope: extractScope(q)}
	for _, r := range c.rules {
		if containsAny(q, r.keywords) {
			intent.Category = r.category
			break
		}
	}
	if intent.Category == CategorySentiment {
		intent.Focus = extractFocus(q)
	}
	return intent
}

// scopeRules is the secondary keyword pass, again first-match-wins.
// Yesterday is checked before today so that "позавчера"-style phrasing
// does not collapse into the today bucket.
var scopeRules = []struct {
	scope    Scope
	keywords []string
}{
	{ScopeYesterday, []string{"вчера", "yesterday"}},
	{ScopeToday, []string{"сегодня", "today"}},
	{ScopeWeek, []string{"недел", "week"}},
	{ScopeMonth, []string{"месяц", "month"}},
	{ScopeAll, []string{"за все время", "за всё время", "all time", "всего"}},
}

func extractScope(q string) Scope {
	for _, r := range scopeRules {
		if containsAny(q, r.keywords) {
			return r.scope
		}
	}
	return defaultScope
}

func extractFocus(q string) string {
	switch {
	case containsAny(q, []string{"негатив", "negative"}):
		return "negative"
	case containsAny(q, []string{"позитив", "positive"}):
		return "positive"
	default:
		return "overall"
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
