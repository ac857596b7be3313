// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

// Package plan derives production schedules for planned publications.
// Tasks are scheduled backward from the publish date so the whole
// pipeline, from brief to final approval, lands exactly on time.
package plan

import (
	"time"

	"github.com/google/uuid"

	"github.com/enamorak/pulseboard/internal/models"
)

// Role identifies who executes a production task.
type Role string

const (
	RoleScheduler  Role = "scheduler"
	RoleCopywriter Role = "copywriter"
	RoleDesigner   Role = "designer"
	RoleEditor     Role = "editor"
	RoleManager    Role = "manager"
)

// roleOrder is the production pipeline, first role starts earliest.
var roleOrder = []Role{RoleScheduler, RoleCopywriter, RoleDesigner, RoleEditor, RoleManager}

// roleDurations holds working days per role.
var roleDurations = map[Role]int{
	RoleScheduler:  1,
	RoleCopywriter: 2,
	RoleDesigner:   3,
	RoleEditor:     1,
	RoleManager:    1,
}

var roleTitles = map[Role]string{
	RoleScheduler:  "Поставить публикацию в план",
	RoleCopywriter: "Написать текст",
	RoleDesigner:   "Подготовить визуал",
	RoleEditor:     "Вычитать и согласовать",
	RoleManager:    "Финальная проверка и выпуск",
}

// daysBefore returns how many days before the publish date the role's
// task must start: its own duration plus everything scheduled after it.
func daysBefore(role Role) int {
	total := 0
	counting := false
	for _, r := range roleOrder {
		if r == role {
			counting = true
		}
		if counting {
			total += roleDurations[r]
		}
	}
	return total
}

// BuildTasks expands one plan entry into its production tasks. Each
// task starts daysBefore(role) days ahead of the publish date and runs
// for the role's duration, ending the day before the next role starts.
func BuildTasks(entry models.PlanEntry) []models.PlanTask {
	publishDay := entry.PublishDate.Truncate(24 * time.Hour)

	tasks := make([]models.PlanTask, 0, len(roleOrder))
	for _, role := range roleOrder {
		duration := roleDurations[role]
		start := publishDay.AddDate(0, 0, -daysBefore(role))
		tasks = append(tasks, models.PlanTask{
			ID:       uuid.NewString(),
			PlanID:   entry.ID,
			Role:     string(role),
			Title:    roleTitles[role],
			Start:    start,
			End:      start.AddDate(0, 0, duration-1),
			Duration: duration,
		})
	}
	return tasks
}
