package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/pixelbot/internal/domain"
	"github.com/set-night/pixelbot/internal/telegram"
)

// Messenger renders the engine's replies into Telegram messages and
// keyboards. It is the transport side of the conversation: the engine says
// what to send, Messenger decides how it looks.
type Messenger struct {
	bot *bot.Bot
}

func NewMessenger(b *bot.Bot) *Messenger {
	return &Messenger{bot: b}
}

func (m *Messenger) PromptQuery(ctx context.Context, chatID int64) {
	m.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "🔍 Введите запрос для поиска контента:",
	})
}

func (m *Messenger) PromptOrientation(ctx context.Context, chatID int64) {
	m.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Выберите ориентацию контента:",
		ReplyMarkup: orientationKeyboard(),
	})
}

func (m *Messenger) SendImage(ctx context.Context, chatID int64, item domain.MediaResult) error {
	return telegram.SendPhotoURL(ctx, m.bot, chatID, item.URL, mediaCaption("📷", item), mediaMarkup(item))
}

func (m *Messenger) SendVideo(ctx context.Context, chatID int64, item domain.MediaResult) error {
	return telegram.SendVideoURL(ctx, m.bot, chatID, item.URL, mediaCaption("🎬", item), mediaMarkup(item))
}

func (m *Messenger) Notify(ctx context.Context, chatID int64, text string) {
	m.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
}

func orientationKeyboard() *models.InlineKeyboardMarkup {
	return telegram.InlineKeyboard(
		telegram.ButtonRow(
			telegram.InlineButton("📷 Портрет", "pick_image_portrait"),
			telegram.InlineButton("📷 Альбом", "pick_image_landscape"),
		),
		telegram.ButtonRow(
			telegram.InlineButton("🎬 Портрет", "pick_video_portrait"),
			telegram.InlineButton("🎬 Альбом", "pick_video_landscape"),
		),
		telegram.ButtonRow(
			telegram.InlineButton("🔄 Новый запрос", "new_query"),
		),
	)
}

func mediaCaption(icon string, item domain.MediaResult) string {
	if item.Author == "" {
		return ""
	}
	return fmt.Sprintf("%s %s", icon, item.Author)
}

func mediaMarkup(item domain.MediaResult) models.ReplyMarkup {
	if item.PageURL == "" {
		return nil
	}
	return telegram.InlineKeyboard(
		telegram.ButtonRow(
			telegram.URLButton("Открыть на Pexels", item.PageURL),
		),
	)
}
