// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package tables

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/enamorak/pulseboard/internal/models"
)

// ListPlan returns every publication plan entry.
func (c *Client) ListPlan(ctx context.Context) ([]models.PlanEntry, error) {
	if c.mock != nil {
		return c.mock.listPlan(), nil
	}

	body, err := c.do(ctx, http.MethodGet, c.rowsPath(c.cfg.PlanTable), nil, nil, "list_plan")
	if err != nil {
		return nil, err
	}
	var page struct {
		Rows []models.PlanEntry `json:"rows"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode plan rows: %w", err)
	}
	return page.Rows, nil
}

// CreatePlan stores a new plan entry row.
func (c *Client) CreatePlan(ctx context.Context, entry models.PlanEntry) error {
	if c.mock != nil {
		c.mock.createPlan(entry)
		return nil
	}

	payload, err := json.Marshal(map[string]interface{}{"rows": []models.PlanEntry{entry}})
	if err != nil {
		return fmt.Errorf("encode plan row: %w", err)
	}
	_, err = c.do(ctx, http.MethodPost, c.rowsPath(c.cfg.PlanTable), nil, payload, "create_plan")
	return err
}

// ListTasks returns the production tasks of one plan entry.
func (c *Client) ListTasks(ctx context.Context, planID string) ([]models.PlanTask, error) {
	if c.mock != nil {
		return c.mock.listTasks(planID), nil
	}

	query := url.Values{}
	query.Set("plan_id", planID)
	body, err := c.do(ctx, http.MethodGet, c.rowsPath(c.cfg.TaskTable), query, nil, "list_tasks")
	if err != nil {
		return nil, err
	}
	var page struct {
		Rows []models.PlanTask `json:"rows"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode task rows: %w", err)
	}
	return page.Rows, nil
}

// CreateTasks stores the production tasks derived for a plan entry.
func (c *Client) CreateTasks(ctx context.Context, tasks []models.PlanTask) error {
	if c.mock != nil {
		c.mock.createTasks(tasks)
		return nil
	}

	payload, err := json.Marshal(map[string]interface{}{"rows": tasks})
	if err != nil {
		return fmt.Errorf("encode task rows: %w", err)
	}
	_, err = c.do(ctx, http.MethodPost, c.rowsPath(c.cfg.TaskTable), nil, payload, "create_tasks")
	return err
}
