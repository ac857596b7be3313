// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/enamorak/pulseboard/internal/logging"
	"github.com/enamorak/pulseboard/internal/metrics"
	"github.com/enamorak/pulseboard/internal/models"
	"github.com/enamorak/pulseboard/internal/notify"
	"github.com/enamorak/pulseboard/internal/validation"
)

// noDataAnswer replaces the model answer when the requested window has
// nothing in it.
const noDataAnswer = "По этому вопросу пока нет данных. Попробуйте расширить период или дождитесь следующей синхронизации."

// Chat godoc
// @Summary Ask the analytics bot
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Question"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/chat [post]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, codeValidation, "тело запроса должно быть JSON с полем question")
		return
	}
	if ve := validation.ValidateStruct(req); ve != nil {
		respondValidationError(w, r, ve)
		return
	}

	classified := h.classifier.Classify(req.Question)
	metrics.RecordIntent(string(classified.Category))

	data, err := h.dataRouter.FetchDataFor(r.Context(), classified, time.Now().UTC())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("intent dispatch failed")
		respondError(w, r, http.StatusInternalServerError, codeInternal, "не удалось обработать вопрос")
		return
	}

	answer := models.ChatAnswer{
		Intent: string(classified.Category),
		Scope:  string(classified.Scope),
		Data:   data,
	}
	if data.NoData {
		answer.Answer = noDataAnswer
	} else {
		answer.Answer, answer.FromModel = h.model.Answer(r.Context(), req.Question, data)
	}

	respondJSON(w, r, http.StatusOK, answer, started)
}

// Notifications godoc
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread"
// @Success 200 {object} models.APIResponse
// @Router /api/v1/notifications [get]
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	unreadOnly := r.URL.Query().Get("unread") == "true"
	respondJSON(w, r, http.StatusOK, h.notify.List(unreadOnly), started)
}

// NotificationRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification id"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/notifications/{id}/read [post]
func (h *Handler) NotificationRead(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	id := chi.URLParam(r, "id")
	if err := h.notify.MarkRead(id); err != nil {
		if errors.Is(err, notify.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, codeNotFound, "уведомление не найдено")
			return
		}
		respondError(w, r, http.StatusInternalServerError, codeInternal, "не удалось отметить уведомление")
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"id": id, "status": "read"}, started)
}
