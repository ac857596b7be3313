// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

// Package analytics implements the content-performance aggregation
// pipeline: per-item engagement snapshots, collection-level pattern
// detection, and recommendation derivation.
//
// Everything here is a pure function over an in-memory collection of
// content items. Derived values are recomputed on every call and never
// stored; there is no caching or invalidation concern. Collections are
// bounded to tens or hundreds of items, so all items are held in
// memory simultaneously.
//
// Every function is total over well-typed input: empty and singleton
// collections produce documented defaults instead of errors. Time-
// windowed computations take an explicit reference instant so that
// repeated calls over the same rows are reproducible.
package analytics
