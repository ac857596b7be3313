// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

// Package vk fetches community wall posts and their comments from the
// VK API and normalizes them into content items.
//
// Calls are throttled by a token-bucket limiter to stay inside the VK
// per-app quota and guarded by a circuit breaker. Without an access
// token the client serves deterministic mock posts so the rest of the
// pipeline keeps working in local development.
package vk
