package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/set-night/pixelbot/internal/config"
	"github.com/set-night/pixelbot/internal/domain"
	"github.com/set-night/pixelbot/internal/repository"
)

// StatsService logs delivered media and aggregates usage numbers for the
// admin /stat command. Recording is best-effort: a database failure must
// never affect the user-facing search flow.
type StatsService struct {
	log *repository.SearchLog
}

func NewStatsService(log *repository.SearchLog) *StatsService {
	return &StatsService{log: log}
}

func (s *StatsService) Record(ctx context.Context, event domain.SearchEvent) {
	if err := s.log.Insert(ctx, event); err != nil {
		slog.Error("record search event", "error", err, "chat_id", event.ChatID)
	}
}

func (s *StatsService) Summary(ctx context.Context) (*domain.SearchStats, error) {
	total, err := s.log.CountTotal(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -int(now.Weekday()))

	today, err := s.log.CountSince(ctx, todayStart)
	if err != nil {
		return nil, err
	}
	week, err := s.log.CountSince(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	chats, err := s.log.CountDistinctChats(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.log.TopQueries(ctx, config.TopQueriesLimit)
	if err != nil {
		return nil, err
	}

	return &domain.SearchStats{
		Total:         total,
		Today:         today,
		Week:          week,
		DistinctChats: chats,
		TopQueries:    top,
	}, nil
}
