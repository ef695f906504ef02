package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// RateLimiter enforces a per-user sliding window over incoming updates.
// Over-limit updates are dropped silently; the window lives in memory.
type RateLimiter struct {
	mu     sync.Mutex
	events map[int64][]time.Time
	limit  int
	window time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		events: make(map[int64][]time.Time),
		limit:  limit,
		window: window,
	}
}

// Allow reports whether the user may proceed and records the attempt.
func (rl *RateLimiter) Allow(userID int64) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	recent := rl.events[userID][:0]
	for _, t := range rl.events[userID] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= rl.limit {
		rl.events[userID] = recent
		return false
	}
	rl.events[userID] = append(recent, now)
	return true
}

// RateLimit returns middleware that drops over-limit messages and callbacks.
func RateLimit(rl *RateLimiter) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var userID int64
			if update.Message != nil && update.Message.From != nil {
				userID = update.Message.From.ID
			} else if update.CallbackQuery != nil {
				userID = update.CallbackQuery.From.ID
			}

			if userID != 0 && !rl.Allow(userID) {
				slog.Debug("rate limit exceeded, update dropped", "user_id", userID)
				return
			}

			next(ctx, b, update)
		}
	}
}
