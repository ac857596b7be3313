// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

// Package api is the HTTP surface of Pulseboard: the REST endpoints
// the dashboard calls, the chat bot endpoint, the live WebSocket feed
// and the operational endpoints (health, metrics, swagger).
//
// Every JSON response is wrapped in the models.APIResponse envelope
// with a request id and query timing in its metadata.
package api
