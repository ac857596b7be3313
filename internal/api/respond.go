// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/enamorak/pulseboard/internal/logging"
	"github.com/enamorak/pulseboard/internal/models"
	"github.com/enamorak/pulseboard/internal/validation"
)

// Error codes used by the API.
const (
	codeValidation = "VALIDATION_ERROR"
	codeNotFound   = "NOT_FOUND"
	codeUpstream   = "UPSTREAM_ERROR"
	codeInternal   = "INTERNAL_ERROR"
)

// respondJSON writes a success envelope.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}, started time.Time) {
	writeEnvelope(w, r, status, models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(started).Milliseconds(),
			RequestID:   logging.RequestIDFromContext(r.Context()),
		},
	})
}

// respondError writes an error envelope.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeEnvelope(w, r, status, models.APIResponse{
		Status: "error",
		Error:  &models.APIError{Code: code, Message: message},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	})
}

// respondValidationError writes a 400 with per-field details.
func respondValidationError(w http.ResponseWriter, r *http.Request, ve *validation.RequestValidationError) {
	apiErr := ve.ToAPIError()
	writeEnvelope(w, r, http.StatusBadRequest, models.APIResponse{
		Status: "error",
		Error: &models.APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	})
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, body models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
