package handler

import (
	"github.com/go-telegram/bot"
	"github.com/set-night/pixelbot/internal/config"
	"github.com/set-night/pixelbot/internal/service"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot      *bot.Bot
	cfg      *config.Config
	engine   *service.Engine
	trending *service.TrendingService
	stats    *service.StatsService
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot      *bot.Bot
	Cfg      *config.Config
	Engine   *service.Engine
	Trending *service.TrendingService
	Stats    *service.StatsService
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:      deps.Bot,
		cfg:      deps.Cfg,
		engine:   deps.Engine,
		trending: deps.Trending,
		stats:    deps.Stats,
	}
}
