// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package services

import "context"

// ContextHub matches the websocket hub's RunWithContext method.
type ContextHub interface {
	RunWithContext(ctx context.Context) error
}

// WebSocketHubService runs the hub under supervision. The hub already
// speaks suture's contract through RunWithContext; this wrapper just
// names it.
type WebSocketHubService struct {
	hub ContextHub
}

// NewWebSocketHubService wraps a hub for supervision.
func NewWebSocketHubService(hub ContextHub) *WebSocketHubService {
	return &WebSocketHubService{hub: hub}
}

func (w *WebSocketHubService) Serve(ctx context.Context) error {
	return w.hub.RunWithContext(ctx)
}

func (w *WebSocketHubService) String() string { return "websocket-hub" }
