// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

// Package websocket pushes live updates to connected dashboard
// clients: new notifications, refreshed patterns, and sync results.
//
// A single hub owns the client set. Broadcasts never block the caller;
// a slow client whose buffer fills is disconnected rather than slowing
// everyone else down. The hub runs under the supervision tree via
// RunWithContext and closes every client on shutdown.
package websocket
