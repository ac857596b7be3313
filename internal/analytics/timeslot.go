// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package analytics

import "time"

// TimeSlot is one of four fixed hour-of-day buckets used for
// posting-time analysis.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"   // 06:00-12:00
	SlotAfternoon TimeSlot = "afternoon" // 12:00-18:00
	SlotEvening   TimeSlot = "evening"   // 18:00-24:00
	SlotNight     TimeSlot = "night"     // 00:00-06:00
)

// defaultSlot is returned by best-time analysis over an empty
// collection. Evening posts perform best across the mirrored networks,
// so it is the least surprising fallback for a dashboard with no data
// yet.
const defaultSlot = SlotEvening

// SlotOf buckets a publication timestamp by its local hour of day.
func SlotOf(t time.Time) TimeSlot {
	switch hour := t.Hour(); {
	case hour >= 6 && hour < 12:
		return SlotMorning
	case hour >= 12 && hour < 18:
		return SlotAfternoon
	case hour >= 18:
		return SlotEvening
	default:
		return SlotNight
	}
}

// Label returns the slot name in the deployment language for use in
// user-facing recommendation text.
func (s TimeSlot) Label() string {
	switch s {
	case SlotMorning:
		return "утром (06:00-12:00)"
	case SlotAfternoon:
		return "днём (12:00-18:00)"
	case SlotEvening:
		return "вечером (18:00-24:00)"
	case SlotNight:
		return "ночью (00:00-06:00)"
	default:
		return string(s)
	}
}
