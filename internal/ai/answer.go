// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/enamorak/pulseboard/internal/logging"
	"github.com/enamorak/pulseboard/internal/models"
)

const answerSystemPrompt = "Ты аналитик контент-команды. Тебе дают вопрос и агрегированные данные в JSON. " +
	"Ответь на вопрос по-русски, коротко и по делу, опираясь только на данные. Не выдумывай цифры."

// fallbackAnswer is shown when the model is unavailable. The raw data
// still reaches the client alongside it.
const fallbackAnswer = "Модель сейчас недоступна, поэтому отвечаю без неё. " +
	"Данные по вашему вопросу приложены ниже, цифры актуальны."

// Answer phrases a chat reply over the aggregated data. The second
// return reports whether the text came from the model; on any model
// failure the canned fallback is returned instead of an error.
func (c *Client) Answer(ctx context.Context, question string, data any) (string, bool) {
	if !c.Enabled() {
		return fallbackAnswer, false
	}

	payload, err := json.Marshal(data)
	if err != nil {
		logging.Warn().Err(err).Msg("encode chat data for model")
		return fallbackAnswer, false
	}

	prompt := fmt.Sprintf("Вопрос: %s\n\nДанные:\n%s", question, payload)
	text, err := c.complete(ctx, answerSystemPrompt, prompt)
	if err != nil {
		logging.Warn().Err(err).Msg("chat completion failed, using fallback")
		return fallbackAnswer, false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fallbackAnswer, false
	}
	return text, true
}

const predictSystemPrompt = "Ты аналитик контент-команды. По черновику публикации и её типу дай короткий " +
	"прогноз вовлечённости по-русски: чего ждать и один совет, как усилить пост. Два-три предложения."

// predictFallbacks keeps prognoses useful offline, keyed by content
// type.
var predictFallbacks = map[models.ContentType]string{
	models.ContentTypeVideo: "Видео обычно собирает больше всего просмотров. Добавьте интригу в первые секунды и вопрос в описание.",
	models.ContentTypeImage: "Изображения хорошо работают на охват. Подпись с вопросом поднимет число комментариев.",
	models.ContentTypePost:  "Текстовый пост сработает лучше с коротким заголовком и вопросом к аудитории в конце.",
}

// PredictPopularity gives a short prognosis for a planned publication.
// The second return reports whether the model produced it.
func (c *Client) PredictPopularity(ctx context.Context, entry models.PlanEntry) (string, bool) {
	if c.Enabled() {
		prompt := fmt.Sprintf("Тип: %s\nЗаголовок: %s\nОписание: %s", entry.Type, entry.Title, entry.Description)
		text, err := c.complete(ctx, predictSystemPrompt, prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text), true
		}
		if err != nil {
			logging.Warn().Err(err).Msg("popularity completion failed, using fallback")
		}
	}

	if fallback, ok := predictFallbacks[entry.Type]; ok {
		return fallback, false
	}
	return predictFallbacks[models.ContentTypePost], false
}
