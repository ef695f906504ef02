package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/pixelbot/internal/domain"
)

// HandleText routes free-form private messages into the engine, which
// interprets them by session state.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}
	h.engine.Text(ctx, update.Message.Chat.ID, update.Message.Text)
}

// handleSelect maps a pick_<kind>_<orientation> callback onto the closed
// selection enum and hands it to the engine.
func (h *Handler) handleSelect(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
	})

	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}

	parts := strings.SplitN(update.CallbackQuery.Data, "_", 3)
	if len(parts) != 3 {
		return
	}
	sel, err := domain.ParseSelection(parts[1], parts[2])
	if err != nil {
		return
	}

	h.engine.Select(ctx, msg.Chat.ID, sel)
}

func (h *Handler) handleNewQueryButton(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
	})

	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}

	h.engine.NewQuery(ctx, msg.Chat.ID)
}
