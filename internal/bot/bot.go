// Package bot provides the Telegram bot initialization and handler registration.
package bot

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"puzzle-score-bot/internal/config"
	"puzzle-score-bot/internal/handler"
	"puzzle-score-bot/internal/service"
)

// Bot wraps the telebot instance with application dependencies.
type Bot struct {
	bot                *tele.Bot
	cfg                *config.Config
	scoreService       *service.ScoreService
	leaderboardService *service.LeaderboardService

	// Handlers
	scoreHandler       *handler.ScoreHandler
	leaderboardHandler *handler.LeaderboardHandler
}

// Dependencies holds all the dependencies needed by the bot handlers.
type Dependencies struct {
	Config             *config.Config
	ScoreService       *service.ScoreService
	LeaderboardService *service.LeaderboardService
}

// NewTeleBot creates the underlying telebot instance from configuration.
// It is created ahead of the Bot itself so the notifier can be wired into
// the services first.
func NewTeleBot(cfg *config.Config) (*tele.Bot, error) {
	if cfg.Bot.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	pref := tele.Settings{
		Token:  cfg.Bot.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	teleBot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return teleBot, nil
}

// New wires handlers and middleware onto an existing telebot instance.
func New(teleBot *tele.Bot, deps *Dependencies) *Bot {
	b := &Bot{
		bot:                teleBot,
		cfg:                deps.Config,
		scoreService:       deps.ScoreService,
		leaderboardService: deps.LeaderboardService,
	}

	b.scoreHandler = handler.NewScoreHandler(deps.ScoreService)
	b.leaderboardHandler = handler.NewLeaderboardHandler(deps.LeaderboardService)

	b.registerMiddleware()
	b.registerHandlers()

	return b
}

// registerMiddleware registers all middleware.
func (b *Bot) registerMiddleware() {
	b.bot.Use(WhitelistMiddleware(b.cfg))
	b.bot.Use(LoggingMiddleware())
	b.bot.Use(RecoveryMiddleware())
}

// registerHandlers registers all command and text handlers.
func (b *Bot) registerHandlers() {
	// On-demand leaderboard
	b.bot.Handle("/leaderboard", b.leaderboardHandler.HandleLeaderboard)

	// Every other text message is a candidate game result
	b.bot.Handle(tele.OnText, b.scoreHandler.HandleText)
}

// Start starts the bot polling.
func (b *Bot) Start() {
	log.Info().Msg("Starting bot...")
	b.bot.Start()
}

// Stop stops the bot gracefully.
func (b *Bot) Stop() {
	log.Info().Msg("Stopping bot...")
	b.bot.Stop()
}

// Me returns the bot's own Telegram identity.
func (b *Bot) Me() *tele.User {
	return b.bot.Me
}
