// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/enamorak/pulseboard/internal/config"
	"github.com/enamorak/pulseboard/internal/logging"
	"github.com/enamorak/pulseboard/internal/metrics"
)

// ErrNoCompletion is returned when the API answers without a usable
// completion choice.
var ErrNoCompletion = errors.New("completion response has no choices")

// errNoKey short-circuits calls when the client has no credentials.
var errNoKey = errors.New("openrouter api key not configured")

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Client calls the OpenRouter chat completion endpoint.
type Client struct {
	cfg        config.OpenRouterConfig
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

// NewClient creates an OpenRouter client from its config section.
// With an empty key every operation answers with its fallback.
func NewClient(cfg config.OpenRouterConfig) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.APIKey == "" {
		logging.Info().Msg("openrouter key absent, model answers disabled")
		return c
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "openrouter",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).
				Str("from", from.String()).Str("to", to.String()).
				Msg("circuit breaker state change")
			metrics.SetBreakerState("openrouter", breakerStateValue(to))
		},
	})
	return c
}

// Enabled reports whether model calls are configured.
func (c *Client) Enabled() bool { return c.breaker != nil }

// CheckConnection verifies the API is reachable with the configured
// key by requesting a minimal completion.
func (c *Client) CheckConnection(ctx context.Context) error {
	if c.breaker == nil {
		return errNoKey
	}
	_, err := c.complete(ctx, "Ответь одним словом.", "ping")
	return err
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 2
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 0
	}
}

// complete sends one prompt and returns the first completion text.
func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	if c.breaker == nil {
		return "", errNoKey
	}

	payload, err := json.Marshal(completionRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens: c.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	start := time.Now()
	body, err := c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("build completion request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("openrouter call: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read completion response: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("openrouter status %d", resp.StatusCode)
		}
		return data, nil
	})

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.RecordUpstreamRequest("openrouter", "chat_completion", outcome, time.Since(start))
	if err != nil {
		return "", err
	}

	var completion completionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", ErrNoCompletion
	}
	return completion.Choices[0].Message.Content, nil
}
