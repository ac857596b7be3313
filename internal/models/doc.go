// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

// Package models defines the shared data types exchanged between the
// upstream clients, the analytics pipeline, and the HTTP API.
//
// The central type is ContentItem, the canonical shape of one piece of
// published content as mirrored from the tabular store. All derived
// analytics types (snapshots, patterns, recommendations) live in the
// packages that compute them; models holds only data that crosses
// package boundaries.
package models
