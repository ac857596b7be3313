// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/enamorak/pulseboard/internal/logging"
	"github.com/enamorak/pulseboard/internal/models"
	"github.com/enamorak/pulseboard/internal/plan"
	"github.com/enamorak/pulseboard/internal/validation"
)

// PlanList godoc
// @Summary List the publication plan
// @Tags plan
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /api/v1/plan [get]
func (h *Handler) PlanList(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	entries, err := h.store.ListPlan(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("plan fetch failed")
		respondError(w, r, http.StatusBadGateway, codeUpstream, "хранилище плана недоступно")
		return
	}
	respondJSON(w, r, http.StatusOK, entries, started)
}

// PlanCreated is the payload returned after creating a plan entry.
type PlanCreated struct {
	Entry      models.PlanEntry  `json:"entry"`
	Tasks      []models.PlanTask `json:"tasks"`
	Prediction string            `json:"prediction"`
	FromModel  bool              `json:"from_model"`
}

// PlanCreate godoc
// @Summary Add a publication to the plan
// @Description Stores the entry, derives its production schedule
// backward from the publish date, and attaches a popularity prognosis.
// @Tags plan
// @Accept json
// @Produce json
// @Param request body models.PlanEntry true "Plan entry"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/plan [post]
func (h *Handler) PlanCreate(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var entry models.PlanEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		respondError(w, r, http.StatusBadRequest, codeValidation, "тело запроса должно быть JSON-записью плана")
		return
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Status == "" {
		entry.Status = "planned"
	}
	if ve := validation.ValidateStruct(entry); ve != nil {
		respondValidationError(w, r, ve)
		return
	}

	if err := h.store.CreatePlan(r.Context(), entry); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("plan create failed")
		respondError(w, r, http.StatusBadGateway, codeUpstream, "не удалось сохранить запись плана")
		return
	}

	tasks := plan.BuildTasks(entry)
	if err := h.store.CreateTasks(r.Context(), tasks); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("plan tasks create failed")
		respondError(w, r, http.StatusBadGateway, codeUpstream, "не удалось сохранить задачи плана")
		return
	}

	prediction, fromModel := h.model.PredictPopularity(r.Context(), entry)
	respondJSON(w, r, http.StatusCreated, PlanCreated{
		Entry:      entry,
		Tasks:      tasks,
		Prediction: prediction,
		FromModel:  fromModel,
	}, started)
}

// PlanTasks godoc
// @Summary Production tasks of one plan entry
// @Tags plan
// @Produce json
// @Param id path string true "Plan entry id"
// @Success 200 {object} models.APIResponse
// @Router /api/v1/plan/{id}/tasks [get]
func (h *Handler) PlanTasks(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	tasks, err := h.store.ListTasks(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("plan tasks fetch failed")
		respondError(w, r, http.StatusBadGateway, codeUpstream, "хранилище задач недоступно")
		return
	}
	respondJSON(w, r, http.StatusOK, tasks, started)
}
