// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

// Package intent maps free-text analytics questions to a fixed set of
// intents and dispatches each intent to the matching time-windowed
// aggregation.
//
// Classification is keyword containment against an ordered rule table;
// the first matching category wins, so a question mentioning both a
// popularity and a time keyword is a popularity question. This keeps
// the chat surface deterministic: the LLM provider is only consulted
// for prose, never for deciding which numbers to show.
package intent
