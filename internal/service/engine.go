package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/set-night/pixelbot/internal/config"
	"github.com/set-night/pixelbot/internal/domain"
)

// Delivery is the transport surface the engine replies through. The engine
// decides what to send; the implementation owns formatting and keyboards.
type Delivery interface {
	PromptQuery(ctx context.Context, chatID int64)
	PromptOrientation(ctx context.Context, chatID int64)
	SendImage(ctx context.Context, chatID int64, item domain.MediaResult) error
	SendVideo(ctx context.Context, chatID int64, item domain.MediaResult) error
	Notify(ctx context.Context, chatID int64, text string)
}

// Engine is the conversation state machine. Every incoming event runs
// under the session lock, so a session handles one event at a time: state
// transition, fetch and delivery complete before the next event starts.
type Engine struct {
	store    *SessionStore
	fetcher  *Fetcher
	trending *TrendingService
	stats    *StatsService
	delivery Delivery
}

func NewEngine(store *SessionStore, fetcher *Fetcher, trending *TrendingService, stats *StatsService, delivery Delivery) *Engine {
	return &Engine{
		store:    store,
		fetcher:  fetcher,
		trending: trending,
		stats:    stats,
		delivery: delivery,
	}
}

// Start handles /start: the session begins (or begins again) awaiting a query.
func (e *Engine) Start(ctx context.Context, chatID int64) {
	e.store.Do(chatID, func(s *domain.Session) {
		s.Reset()
		e.delivery.PromptQuery(ctx, chatID)
	})
}

// NewQuery handles the reset command from any state.
func (e *Engine) NewQuery(ctx context.Context, chatID int64) {
	e.store.Do(chatID, func(s *domain.Session) {
		s.Reset()
		e.delivery.PromptQuery(ctx, chatID)
	})
}

// Text handles a free-form message. While awaiting a query it saves the
// text and drops both seen-sets; while awaiting an orientation it is left
// unrouted, matching the keyboard-driven flow.
func (e *Engine) Text(ctx context.Context, chatID int64, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	e.store.Do(chatID, func(s *domain.Session) {
		if s.State != domain.StateAwaitingQuery {
			return
		}
		s.SetQuery(text)
		slog.Info("query saved", "chat_id", chatID, "query", text)
		e.delivery.PromptOrientation(ctx, chatID)
	})
}

// Select handles one of the four orientation choices. On success the
// delivered identifiers join the session's seen-set for that kind; an
// empty result or a provider failure leaves the session unchanged, still
// awaiting an orientation.
func (e *Engine) Select(ctx context.Context, chatID int64, sel domain.Selection) {
	e.store.Do(chatID, func(s *domain.Session) {
		if s.State != domain.StateAwaitingOrientation || s.Query == "" {
			// Stale keyboard tap from a finished exchange.
			return
		}

		items, err := e.fetcher.Fetch(ctx, domain.FetchRequest{
			Query:       s.Query,
			Kind:        sel.Kind,
			Orientation: sel.Orientation,
			Count:       config.FetchCount,
			Exclude:     s.Seen(sel.Kind),
		})
		if err != nil {
			slog.Error("fetch media", "error", err, "chat_id", chatID, "query", s.Query)
			e.notifyNoResults(ctx, chatID)
			return
		}
		if len(items) == 0 {
			slog.Info("no fresh results", "chat_id", chatID, "query", s.Query, "kind", sel.Kind)
			e.notifyNoResults(ctx, chatID)
			return
		}

		for _, item := range items {
			if sendErr := e.deliver(ctx, chatID, sel.Kind, item); sendErr != nil {
				// A failed item is reported and skipped; it is not marked
				// seen, so a retry can return it.
				slog.Error("deliver media", "error", sendErr, "chat_id", chatID, "media_id", item.ID, "kind", sel.Kind)
				e.delivery.Notify(ctx, chatID, deliveryFailedText(sel.Kind))
				continue
			}
			s.MarkSeen(sel.Kind, item.ID)
			if e.stats != nil {
				e.stats.Record(ctx, domain.SearchEvent{
					ChatID:      chatID,
					Query:       s.Query,
					Kind:        sel.Kind,
					Orientation: sel.Orientation,
					MediaID:     item.ID,
				})
			}
		}

		e.delivery.PromptOrientation(ctx, chatID)
	})
}

func (e *Engine) deliver(ctx context.Context, chatID int64, kind domain.MediaKind, item domain.MediaResult) error {
	if kind == domain.MediaKindVideo {
		return e.delivery.SendVideo(ctx, chatID, item)
	}
	return e.delivery.SendImage(ctx, chatID, item)
}

func (e *Engine) notifyNoResults(ctx context.Context, chatID int64) {
	text := "😔 Результаты не найдены. Выберите другую ориентацию или отправьте /new для нового запроса."
	if e.trending != nil {
		if suggestions := e.trending.Suggestions(ctx, config.TrendingSuggestions); len(suggestions) > 0 {
			text += "\n\n💡 Популярные запросы: " + strings.Join(suggestions, ", ")
		}
	}
	e.delivery.Notify(ctx, chatID, text)
}

func deliveryFailedText(kind domain.MediaKind) string {
	if kind == domain.MediaKindVideo {
		return "Не удалось отправить видео. Попробуйте снова."
	}
	return "Не удалось отправить изображение. Попробуйте снова."
}
