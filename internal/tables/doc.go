// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

// Package tables is the client for the MWS Tables workspace that
// mirrors published content, the publication plan, and its production
// tasks.
//
// The client runs in one of two modes. With credentials configured it
// talks to the Tables HTTP API behind a circuit breaker; without them
// it serves a deterministic in-memory workspace seeded with realistic
// rows, so the dashboard and the test suite work with no external
// services at all.
package tables
