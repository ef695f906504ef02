package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (h *Handler) handleStat(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	if !h.cfg.IsAdmin(update.Message.From.ID) {
		return
	}

	chatID := update.Message.Chat.ID

	stats, err := h.stats.Summary(ctx)
	if err != nil {
		slog.Error("load search stats", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Ошибка при загрузке статистики.",
		})
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 Статистика\n\n")
	sb.WriteString(fmt.Sprintf("🔍 Выдано результатов:\nВсего: %d\nСегодня: %d\nЗа неделю: %d\n\n", stats.Total, stats.Today, stats.Week))
	sb.WriteString(fmt.Sprintf("👥 Чатов: %d\n", stats.DistinctChats))

	if len(stats.TopQueries) > 0 {
		sb.WriteString("\n🏆 Топ запросов:\n")
		for _, qc := range stats.TopQueries {
			sb.WriteString(fmt.Sprintf("• %s — %d\n", qc.Query, qc.Count))
		}
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   sb.String(),
	})
}
