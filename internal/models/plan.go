// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package models

import "time"

// PlanEntry is one scheduled publication in the content plan.
type PlanEntry struct {
	ID          string      `json:"id"`
	Title       string      `json:"title" validate:"required,min=1,max=200"`
	Type        ContentType `json:"type" validate:"required,oneof=post video image"`
	Network     string      `json:"network,omitempty"`
	PublishDate time.Time   `json:"publish_date" validate:"required"`
	Status      string      `json:"status,omitempty"`
	Description string      `json:"description,omitempty"`
}

// PlanTask is one production task in the Gantt schedule for a plan
// entry. Start and End are inclusive day bounds computed backward
// from the publish date.
type PlanTask struct {
	ID       string    `json:"id"`
	PlanID   string    `json:"plan_id"`
	Role     string    `json:"role"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration_days"`
}
