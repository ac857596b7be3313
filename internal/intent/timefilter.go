// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package intent

import "time"

// WindowDays maps a scope to the number of days its data window
// spans: yesterday and today look one day back, a week seven, a month
// thirty. ScopeAll returns 0, meaning unbounded. Unknown scopes get
// the month window.
func WindowDays(scope Scope) int {
	switch scope {
	case ScopeYesterday, ScopeToday:
		return 1
	case ScopeWeek:
		return 7
	case ScopeMonth:
		return 30
	case ScopeAll:
		return 0
	default:
		return 30
	}
}

// FromTime computes the lower bound of a scope's window relative to
// the given reference instant. The zero time means no lower bound
// (ScopeAll).
func FromTime(scope Scope, asOf time.Time) time.Time {
	days := WindowDays(scope)
	if days == 0 {
		return time.Time{}
	}
	return asOf.AddDate(0, 0, -days)
}
