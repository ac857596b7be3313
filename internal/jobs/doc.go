// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

// Package jobs holds the background services that keep the dashboard
// fresh: the periodic content sync that mirrors the community wall
// into the tabular store, and the daily analysis pass over the full
// archive.
//
// Both are suture services. They run once on start, then on their
// ticker, and return ctx.Err() on shutdown so the supervisor treats
// the stop as graceful.
package jobs
