// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package tables

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/enamorak/pulseboard/internal/config"
	"github.com/enamorak/pulseboard/internal/logging"
	"github.com/enamorak/pulseboard/internal/metrics"
	"github.com/enamorak/pulseboard/internal/models"
)

// ErrUnexpectedStatus is returned when the Tables API answers with a
// non-2xx status.
var ErrUnexpectedStatus = errors.New("tables api returned unexpected status")

// Filters narrows a row query. Zero values mean "not set".
type Filters struct {
	Limit    int
	Offset   int
	DateFrom time.Time
	OrderBy  string
}

// rowsResponse is the Tables API row page envelope.
type rowsResponse struct {
	Rows       []json.RawMessage `json:"rows"`
	TotalCount int               `json:"total_count"`
}

// Client talks to the MWS Tables workspace. With an empty token it
// serves the in-memory mock workspace instead of calling out.
type Client struct {
	cfg        config.TablesConfig
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	mock       *mockWorkspace
}

// NewClient creates a Tables client from its config section.
func NewClient(cfg config.TablesConfig) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.Token == "" || cfg.BaseURL == "" {
		logging.Info().Msg("tables credentials absent, serving mock workspace")
		c.mock = newMockWorkspace()
		return c
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "mws-tables",
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
			metrics.SetBreakerState("tables", breakerStateValue(to))
		},
	})
	return c
}

// Mock reports whether the client runs against the mock workspace.
func (c *Client) Mock() bool { return c.mock != nil }

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

// GetItems fetches content rows from the given table. Missing numeric
// fields decode to zero and missing arrays to empty, per the provider
// row format.
func (c *Client) GetItems(ctx context.Context, table string, f Filters) ([]models.ContentItem, int, error) {
	if c.mock != nil {
		return c.mock.getContent(f)
	}

	query := url.Values{}
	if f.Limit > 0 {
		query.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		query.Set("offset", strconv.Itoa(f.Offset))
	}
	if !f.DateFrom.IsZero() {
		query.Set("date_from", f.DateFrom.UTC().Format(time.RFC3339))
	}
	if f.OrderBy != "" {
		query.Set("order_by", f.OrderBy)
	}

	body, err := c.do(ctx, http.MethodGet, c.rowsPath(table), query, nil, "get_items")
	if err != nil {
		return nil, 0, err
	}

	var page rowsResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, 0, fmt.Errorf("decode rows page: %w", err)
	}
	items := make([]models.ContentItem, 0, len(page.Rows))
	for _, raw := range page.Rows {
		var item models.ContentItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, 0, fmt.Errorf("decode content row: %w", err)
		}
		items = append(items, item)
	}
	return items, page.TotalCount, nil
}

// ContentPage fetches one page of the content table, newest first.
func (c *Client) ContentPage(ctx context.Context, f Filters) ([]models.ContentItem, int, error) {
	if f.OrderBy == "" {
		f.OrderBy = "-published_at"
	}
	return c.GetItems(ctx, c.cfg.ContentTable, f)
}

// ContentSince returns all content rows published after from,
// newest first. A zero from returns everything. This is the slice of
// the provider the intent router consumes.
func (c *Client) ContentSince(ctx context.Context, from time.Time) ([]models.ContentItem, error) {
	items, _, err := c.GetItems(ctx, c.cfg.ContentTable, Filters{
		DateFrom: from,
		OrderBy:  "-published_at",
	})
	return items, err
}

// UpsertContent pushes mirrored content rows into the content table.
func (c *Client) UpsertContent(ctx context.Context, items []models.ContentItem) error {
	if c.mock != nil {
		c.mock.upsertContent(items)
		return nil
	}

	payload, err := json.Marshal(map[string]interface{}{"rows": items})
	if err != nil {
		return fmt.Errorf("encode content rows: %w", err)
	}
	_, err = c.do(ctx, http.MethodPut, c.rowsPath(c.cfg.ContentTable), nil, payload, "upsert_content")
	return err
}

func (c *Client) rowsPath(table string) string {
	return fmt.Sprintf("/workspaces/%s/tables/%s/rows", c.cfg.WorkspaceID, table)
}

// do executes one Tables API call through the circuit breaker and
// records upstream metrics.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, operation string) ([]byte, error) {
	start := time.Now()
	result, err := c.breaker.Execute(func() ([]byte, error) {
		u := c.cfg.BaseURL + path
		if len(query) > 0 {
			u += "?" + query.Encode()
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, reader)
		if err != nil {
			return nil, fmt.Errorf("build tables request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("tables %s: %w", operation, err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read tables response: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%w: %s %s -> %d", ErrUnexpectedStatus, method, path, resp.StatusCode)
		}
		return data, nil
	})

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.RecordUpstreamRequest("tables", operation, outcome, time.Since(start))
	return result, err
}
