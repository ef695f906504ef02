package handler

import (
	"github.com/go-telegram/bot"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/new", bot.MatchTypePrefix, h.handleNew)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/trending", bot.MatchTypePrefix, h.handleTrending)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/stat", bot.MatchTypePrefix, h.handleStat)

	// Orientation selection callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "pick_", bot.MatchTypePrefix, h.handleSelect)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "new_query", bot.MatchTypeExact, h.handleNewQueryButton)

	// Note: plain text is routed through the default text handler in main.go
}
