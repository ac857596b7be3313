// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package tables

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/enamorak/pulseboard/internal/models"
)

// mockSeed fixes the generated workspace so repeated runs and tests
// see identical rows.
const mockSeed = 42

// mockPostCount matches the depth of a month of active posting.
const mockPostCount = 50

type mockWorkspace struct {
	mu      sync.RWMutex
	content map[string]models.ContentItem
	plan    []models.PlanEntry
	tasks   []models.PlanTask
}

func newMockWorkspace() *mockWorkspace {
	w := &mockWorkspace{content: make(map[string]models.ContentItem)}
	for _, item := range generateMockContent(time.Now().UTC()) {
		w.content[item.ID] = item
	}
	return w
}

var mockTexts = []struct {
	title string
	text  string
	typ   models.ContentType
}{
	{"Итоги недели", "Собрали главные события недели в одном посте. Читайте и делитесь мнением в комментариях.", models.ContentTypePost},
	{"Как выбрать формат", "Как выбрать формат контента под вашу аудиторию? Разбираем по шагам.", models.ContentTypePost},
	{"Новый ролик", "Сняли короткое видео о закулисье команды. Включайте звук!", models.ContentTypeVideo},
	{"Фотоотчёт", "Фотоотчёт со встречи сообщества. Узнали себя на снимках?", models.ContentTypeImage},
	{"Опрос аудитории", "Что вы думаете о новой рубрике? Ответы соберём и покажем итоги.", models.ContentTypePost},
	{"Разбор кейса", "Длинный разбор кейса: как мы выросли в охватах за квартал и какие ошибки допустили по дороге. Сохраняйте в закладки, пригодится при планировании.", models.ContentTypePost},
	{"Анонс эфира", "Почему падают охваты и что с этим делать? Обсудим в прямом эфире в четверг.", models.ContentTypeVideo},
	{"Мем дня", "Немного юмора в ленту.", models.ContentTypeImage},
}

// generateMockContent builds a month of realistic posts ending at
// now. Deterministic: same now, same rows.
func generateMockContent(now time.Time) []models.ContentItem {
	rng := rand.New(rand.NewSource(mockSeed))
	items := make([]models.ContentItem, 0, mockPostCount)

	for i := 0; i < mockPostCount; i++ {
		sample := mockTexts[i%len(mockTexts)]

		// Spread publications over the last 30 days at varied hours.
		daysAgo := rng.Intn(30)
		hour := []int{8, 11, 13, 16, 19, 21, 23}[rng.Intn(7)]
		publishedAt := now.AddDate(0, 0, -daysAgo).Truncate(24 * time.Hour).Add(time.Duration(hour) * time.Hour)

		var views int
		switch sample.typ {
		case models.ContentTypeVideo:
			views = 1500 + rng.Intn(2000)
		case models.ContentTypeImage:
			views = 1000 + rng.Intn(1500)
		default:
			views = 500 + rng.Intn(1000)
		}

		likes := views * (2 + rng.Intn(6)) / 100
		comments := likes * (10 + rng.Intn(30)) / 100
		reposts := likes * (5 + rng.Intn(15)) / 100

		positive := 35 + rng.Float64()*40
		negative := 5 + rng.Float64()*25
		neutral := 100 - positive - negative

		items = append(items, models.ContentItem{
			ID:                fmt.Sprintf("mock_%03d", i+1),
			Type:              sample.typ,
			Title:             sample.title,
			Text:              sample.text,
			PublishedAt:       publishedAt,
			Views:             views,
			Likes:             likes,
			Comments:          comments,
			Reposts:           reposts,
			SentimentPositive: positive,
			SentimentNeutral:  neutral,
			SentimentNegative: negative,
			Themes:            []string{"сообщество", "контент"},
		})
	}
	return items
}

func (w *mockWorkspace) getContent(f Filters) ([]models.ContentItem, int, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	items := make([]models.ContentItem, 0, len(w.content))
	for _, item := range w.content {
		if !f.DateFrom.IsZero() && !item.PublishedAt.After(f.DateFrom) {
			continue
		}
		items = append(items, item)
	}
	// Newest first, ID tie-break, matching the order_by the live API
	// is asked for.
	sort.Slice(items, func(i, j int) bool {
		if !items[i].PublishedAt.Equal(items[j].PublishedAt) {
			return items[i].PublishedAt.After(items[j].PublishedAt)
		}
		return items[i].ID < items[j].ID
	})

	total := len(items)
	if f.Offset > 0 {
		if f.Offset >= len(items) {
			return nil, total, nil
		}
		items = items[f.Offset:]
	}
	if f.Limit > 0 && len(items) > f.Limit {
		items = items[:f.Limit]
	}
	return items, total, nil
}

func (w *mockWorkspace) upsertContent(items []models.ContentItem) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, item := range items {
		w.content[item.ID] = item
	}
}

func (w *mockWorkspace) listPlan() []models.PlanEntry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]models.PlanEntry, len(w.plan))
	copy(out, w.plan)
	return out
}

func (w *mockWorkspace) createPlan(entry models.PlanEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.plan = append(w.plan, entry)
}

func (w *mockWorkspace) listTasks(planID string) []models.PlanTask {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var out []models.PlanTask
	for _, task := range w.tasks {
		if task.PlanID == planID {
			out = append(out, task)
		}
	}
	return out
}

func (w *mockWorkspace) createTasks(tasks []models.PlanTask) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tasks = append(w.tasks, tasks...)
}
