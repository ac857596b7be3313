// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/enamorak/pulseboard/internal/analytics"
	"github.com/enamorak/pulseboard/internal/config"
	"github.com/enamorak/pulseboard/internal/models"
)

var notifyTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func fullPattern() analytics.Pattern {
	return analytics.Pattern{
		BestPostingTime: analytics.BestPostingTime{Slot: analytics.SlotEvening, AvgEngagementRate: 8.5},
		ContentTypePerformance: map[models.ContentType]analytics.TypePerformance{
			models.ContentTypeVideo: {Count: 3, AvgViews: 2400},
			models.ContentTypePost:  {Count: 10, AvgViews: 900},
		},
		QuestionPostImpact: analytics.QuestionPostImpact{HasPattern: true, Multiplier: 2.1},
		SentimentTrend:     analytics.SentimentTrend{Direction: analytics.TrendDeclining},
	}
}

func typesOf(notifications []models.Notification) []string {
	out := make([]string, len(notifications))
	for i, n := range notifications {
		out[i] = n.Type
	}
	return out
}

func TestFromPatternFullSignal(t *testing.T) {
	got := FromPattern(fullPattern(), notifyTime)
	want := []string{TypeBestTime, TypeBestContentType, TypeQuestionPosts, TypeNegativeTrend}
	types := typesOf(got)
	if len(types) != len(want) {
		t.Fatalf("types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("types[%d] = %s, want %s", i, types[i], want[i])
		}
	}
	for _, n := range got {
		if n.ID == "" || n.Title == "" || n.Message == "" || !n.CreatedAt.Equal(notifyTime) {
			t.Errorf("incomplete notification: %+v", n)
		}
		if n.Read {
			t.Errorf("new notification marked read: %+v", n)
		}
	}
}

func TestFromPatternEmptySignal(t *testing.T) {
	if got := FromPattern(analytics.Pattern{}, notifyTime); len(got) != 0 {
		t.Errorf("empty pattern produced %v", typesOf(got))
	}
}

func TestFromPatternStableTrendOmitsNegative(t *testing.T) {
	pattern := fullPattern()
	pattern.SentimentTrend.Direction = analytics.TrendStable
	for _, typ := range typesOf(FromPattern(pattern, notifyTime)) {
		if typ == TypeNegativeTrend {
			t.Error("stable trend must not notify about negativity")
		}
	}
}

type recordingBroadcaster struct {
	messages []string
}

func (b *recordingBroadcaster) BroadcastJSON(msgType string, data any) {
	b.messages = append(b.messages, msgType)
}

func TestPublishStoresAndBroadcasts(t *testing.T) {
	broadcaster := &recordingBroadcaster{}
	s := NewService(config.NotifyConfig{MaxStored: 100}, broadcaster)

	s.Publish(FromPattern(fullPattern(), notifyTime))
	if got := len(s.List(false)); got != 4 {
		t.Errorf("stored = %d, want 4", got)
	}
	if len(broadcaster.messages) != 4 {
		t.Errorf("broadcasts = %d, want 4", len(broadcaster.messages))
	}
}

func TestPublishCapsFeed(t *testing.T) {
	s := NewService(config.NotifyConfig{MaxStored: 3}, nil)
	for i := 0; i < 3; i++ {
		s.Publish(FromPattern(fullPattern(), notifyTime.Add(time.Duration(i)*time.Hour)))
	}

	got := s.List(false)
	if len(got) != 3 {
		t.Fatalf("stored = %d, want 3", len(got))
	}
	// Newest batch survives the trim.
	if !got[0].CreatedAt.Equal(notifyTime.Add(2 * time.Hour)) {
		t.Errorf("feed head = %v", got[0].CreatedAt)
	}
}

func TestMarkRead(t *testing.T) {
	s := NewService(config.NotifyConfig{MaxStored: 100}, nil)
	s.Publish(FromPattern(fullPattern(), notifyTime))

	all := s.List(false)
	if err := s.MarkRead(all[0].ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	unread := s.List(true)
	if len(unread) != len(all)-1 {
		t.Errorf("unread = %d, want %d", len(unread), len(all)-1)
	}

	if err := s.MarkRead("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
