// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package vk

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/enamorak/pulseboard/internal/models"
)

const mockSeed = 7

var mockPosts = []struct {
	text string
	typ  models.ContentType
}{
	{"Подвели итоги месяца. Спасибо всем, кто был с нами!", models.ContentTypePost},
	{"Как вы относитесь к новому формату рубрики? Делитесь в комментариях.", models.ContentTypePost},
	{"Записали видео с ответами на ваши вопросы.", models.ContentTypeVideo},
	{"Фото с субботней встречи сообщества.", models.ContentTypeImage},
	{"Почему важно планировать публикации заранее? Короткий разбор.", models.ContentTypePost},
	{"Прямой эфир уже завтра! Не пропустите.", models.ContentTypeVideo},
}

var mockCommentPool = []string{
	"Отличный пост, спасибо!",
	"Очень полезно, ждём продолжения.",
	"Не согласен, раньше было лучше.",
	"Классно, продолжайте в том же духе!",
	"А когда следующий эфир?",
}

// mockWallPosts generates count deterministic posts spread over the
// last week ending at now.
func mockWallPosts(now time.Time, count int) []models.ContentItem {
	rng := rand.New(rand.NewSource(mockSeed))
	items := make([]models.ContentItem, 0, count)
	for i := 0; i < count; i++ {
		sample := mockPosts[i%len(mockPosts)]
		hoursAgo := rng.Intn(7 * 24)
		views := 400 + rng.Intn(2500)
		likes := views * (2 + rng.Intn(6)) / 100

		items = append(items, models.ContentItem{
			ID:          fmt.Sprintf("vk_0_%d", i+1),
			Type:        sample.typ,
			Title:       titleFromText(sample.text),
			Text:        sample.text,
			PublishedAt: now.Add(-time.Duration(hoursAgo) * time.Hour).Truncate(time.Hour),
			Views:       views,
			Likes:       likes,
			Comments:    likes * (10 + rng.Intn(30)) / 100,
			Reposts:     likes * (5 + rng.Intn(15)) / 100,
		})
	}
	return items
}

// mockComments returns a stable slice of comments for any post id.
func mockComments(postID string) []string {
	n := 2 + len(postID)%3
	return mockCommentPool[:n]
}
