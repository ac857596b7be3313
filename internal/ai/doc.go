// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

// Package ai talks to the OpenRouter completion API for the three
// language tasks the dashboard needs: scoring comment sentiment,
// phrasing analytics answers for the chat bot, and predicting how a
// planned post will perform.
//
// The model is an enhancement, never a dependency. Every operation has
// a deterministic fallback, so a missing key, a tripped breaker, or a
// malformed completion degrades the answer instead of failing the
// request.
package ai
