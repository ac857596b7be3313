// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

// Package notify turns analysis signals into user-facing notifications
// and keeps a bounded in-memory feed of them.
package notify

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/enamorak/pulseboard/internal/analytics"
	"github.com/enamorak/pulseboard/internal/config"
	"github.com/enamorak/pulseboard/internal/logging"
	"github.com/enamorak/pulseboard/internal/metrics"
	"github.com/enamorak/pulseboard/internal/models"
)

// ErrNotFound is returned when a notification id is unknown.
var ErrNotFound = errors.New("notification not found")

// Notification types the analysis pass can emit.
const (
	TypeBestTime        = "best_time"
	TypeBestContentType = "best_content_type"
	TypeQuestionPosts   = "question_posts"
	TypeNegativeTrend   = "negative_trend"
)

// Broadcaster pushes a notification to connected dashboard clients.
// The websocket hub implements it; a nil broadcaster is allowed.
type Broadcaster interface {
	BroadcastJSON(msgType string, data any)
}

// Service derives notifications from patterns and stores the most
// recent ones in memory, newest first.
type Service struct {
	cfg         config.NotifyConfig
	broadcaster Broadcaster

	mu    sync.RWMutex
	items []models.Notification
}

// NewService creates the notification service. broadcaster may be nil.
func NewService(cfg config.NotifyConfig, broadcaster Broadcaster) *Service {
	return &Service{cfg: cfg, broadcaster: broadcaster}
}

// FromPattern derives notifications from one analysis pass. Dimensions
// without a signal produce nothing.
func FromPattern(pattern analytics.Pattern, asOf time.Time) []models.Notification {
	var out []models.Notification

	if pattern.BestPostingTime.AvgEngagementRate > 0 {
		out = append(out, models.Notification{
			ID:        uuid.NewString(),
			Type:      TypeBestTime,
			Priority:  "medium",
			Title:     "Лучшее время для публикаций",
			Message:   fmt.Sprintf("Посты собирают больше всего вовлечённости %s.", pattern.BestPostingTime.Slot.Label()),
			CreatedAt: asOf,
		})
	}

	if typ, perf, ok := bestContentType(pattern.ContentTypePerformance); ok {
		out = append(out, models.Notification{
			ID:        uuid.NewString(),
			Type:      TypeBestContentType,
			Priority:  "medium",
			Title:     "Самый просматриваемый формат",
			Message:   fmt.Sprintf("Формат «%s» лидирует по просмотрам: в среднем %.0f на публикацию.", typeLabel(typ), perf.AvgViews),
			CreatedAt: asOf,
		})
	}

	if pattern.QuestionPostImpact.HasPattern {
		out = append(out, models.Notification{
			ID:        uuid.NewString(),
			Type:      TypeQuestionPosts,
			Priority:  "low",
			Title:     "Вопросы работают",
			Message:   fmt.Sprintf("Посты с вопросами собирают в %.1f раза больше комментариев на просмотр.", pattern.QuestionPostImpact.Multiplier),
			CreatedAt: asOf,
		})
	}

	if pattern.SentimentTrend.Direction == analytics.TrendDeclining {
		out = append(out, models.Notification{
			ID:        uuid.NewString(),
			Type:      TypeNegativeTrend,
			Priority:  "high",
			Title:     "Настроение аудитории ухудшается",
			Message:   "Доля негатива в реакциях растёт. Посмотрите последние публикации и комментарии под ними.",
			CreatedAt: asOf,
		})
	}

	return out
}

// bestContentType picks the type with the highest mean views, ties
// resolved by type name for stable output.
func bestContentType(perf map[models.ContentType]analytics.TypePerformance) (models.ContentType, analytics.TypePerformance, bool) {
	types := make([]models.ContentType, 0, len(perf))
	for typ := range perf {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	var best models.ContentType
	found := false
	for _, typ := range types {
		if !found || perf[typ].AvgViews > perf[best].AvgViews {
			best, found = typ, true
		}
	}
	if !found {
		return "", analytics.TypePerformance{}, false
	}
	return best, perf[best], true
}

func typeLabel(typ models.ContentType) string {
	switch typ {
	case models.ContentTypeVideo:
		return "видео"
	case models.ContentTypeImage:
		return "изображения"
	default:
		return "текстовые посты"
	}
}

// Publish stores the notifications and pushes them to connected
// clients. The feed is trimmed to the configured cap, oldest first.
func (s *Service) Publish(notifications []models.Notification) {
	if len(notifications) == 0 {
		return
	}

	s.mu.Lock()
	s.items = append(notifications, s.items...)
	if max := s.cfg.MaxStored; max > 0 && len(s.items) > max {
		s.items = s.items[:max]
	}
	s.mu.Unlock()

	for _, n := range notifications {
		metrics.RecordNotification(n.Type)
		if s.broadcaster != nil {
			s.broadcaster.BroadcastJSON("notification", n)
		}
	}
	logging.Info().Int("count", len(notifications)).Msg("notifications published")
}

// List returns stored notifications, newest first. With unreadOnly set
// it filters out already read ones.
func (s *Service) List(unreadOnly bool) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Notification, 0, len(s.items))
	for _, n := range s.items {
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	return out
}

// MarkRead marks one notification as read.
func (s *Service) MarkRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = true
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
