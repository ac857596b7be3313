// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package intent

import (
	"testing"
	"time"
)

func TestWindowDays(t *testing.T) {
	tests := []struct {
		scope Scope
		want  int
	}{
		{ScopeYesterday, 1},
		{ScopeToday, 1},
		{ScopeWeek, 7},
		{ScopeMonth, 30},
		{ScopeAll, 0},
		{Scope("bogus"), 30},
	}

	for _, tt := range tests {
		if got := WindowDays(tt.scope); got != tt.want {
			t.Errorf("WindowDays(%s) = %d, want %d", tt.scope, got, tt.want)
		}
	}
}

func TestFromTime(t *testing.T) {
	asOf := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	if got := FromTime(ScopeWeek, asOf); !got.Equal(asOf.AddDate(0, 0, -7)) {
		t.Errorf("FromTime(week) = %v", got)
	}
	if got := FromTime(ScopeAll, asOf); !got.IsZero() {
		t.Errorf("FromTime(all) = %v, want zero time", got)
	}
}
