package telegram

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// SendPhotoURL sends a photo by its remote URL; Telegram downloads it.
func SendPhotoURL(ctx context.Context, b *bot.Bot, chatID int64, url, caption string, markup models.ReplyMarkup) error {
	params := &bot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileString{Data: url},
		Caption: caption,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}
	if _, err := b.SendPhoto(ctx, params); err != nil {
		return fmt.Errorf("send photo: %w", err)
	}
	return nil
}

// SendVideoURL sends a video by its remote URL.
func SendVideoURL(ctx context.Context, b *bot.Bot, chatID int64, url, caption string, markup models.ReplyMarkup) error {
	params := &bot.SendVideoParams{
		ChatID:  chatID,
		Video:   &models.InputFileString{Data: url},
		Caption: caption,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}
	if _, err := b.SendVideo(ctx, params); err != nil {
		return fmt.Errorf("send video: %w", err)
	}
	return nil
}
