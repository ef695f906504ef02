package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}

	chatID := update.Message.Chat.ID

	welcomeText := "👋 Привет! Я помогу найти фото и видео на Pexels.\n\n" +
		"📋 Как это работает:\n" +
		"1. Отправьте текстовый запрос\n" +
		"2. Выберите тип и ориентацию контента\n" +
		"3. Получите результат — повторный выбор пришлёт новый, без повторов\n\n" +
		"/new — новый запрос\n" +
		"/trending — популярные запросы"

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   welcomeText,
	})

	h.engine.Start(ctx, chatID)
}

func (h *Handler) handleNew(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}
	h.engine.NewQuery(ctx, update.Message.Chat.ID)
}
