package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (h *Handler) handleTrending(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	queries, err := h.trending.Popular(ctx)
	if err != nil || len(queries) == 0 {
		if err != nil {
			slog.Error("fetch trending queries", "error", err)
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "😔 Не удалось получить популярные запросы. Попробуйте позже.",
		})
		return
	}

	var sb strings.Builder
	sb.WriteString("🔥 Популярные запросы:\n\n")
	for _, q := range queries {
		sb.WriteString("• " + q + "\n")
	}
	sb.WriteString("\nОтправьте любой из них, чтобы начать поиск.")

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   sb.String(),
	})
}
