// Package main is the entry point for the puzzle score bot.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"puzzle-score-bot/internal/bot"
	"puzzle-score-bot/internal/config"
	"puzzle-score-bot/internal/pkg/db"
	"puzzle-score-bot/internal/repository"
	"puzzle-score-bot/internal/server"
	"puzzle-score-bot/internal/service"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().Msg("Configuration loaded successfully")

	// Reference timezone for the day boundary
	timezone, err := time.LoadLocation(cfg.Leaderboard.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Leaderboard.Timezone).Msg("Failed to load timezone")
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	dbPool, err := db.NewPool(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// Run database migrations
	if err := runMigrations(ctx, dbPool); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repository
	scoreRepo := repository.NewScoreRepository(dbPool.Pool)

	// The telebot instance is created first so the notifier can be wired
	// into the services
	teleBot, err := bot.NewTeleBot(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}

	notifier := bot.NewTelegramNotifier(teleBot)

	// Initialize services
	leaderboardService := service.NewLeaderboardService(scoreRepo, notifier, timezone)
	scoreService := service.NewScoreService(scoreRepo, leaderboardService, timezone)

	// Wire handlers and middleware
	telegramBot := bot.New(teleBot, &bot.Dependencies{
		Config:             cfg,
		ScoreService:       scoreService,
		LeaderboardService: leaderboardService,
	})

	// Start health server
	healthServer := server.New(dbPool, telegramBot.Me())
	go func() {
		if err := healthServer.Run(cfg.Server.Addr); err != nil {
			log.Error().Err(err).Msg("Health server stopped")
		}
	}()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start bot in a goroutine
	go func() {
		log.Info().Msg("Bot is starting...")
		telegramBot.Start()
	}()

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	// Graceful shutdown
	telegramBot.Stop()
	log.Info().Msg("Bot stopped gracefully")
}

// runMigrations executes database migrations.
func runMigrations(ctx context.Context, pool *db.Pool) error {
	log.Info().Msg("Running database migrations...")

	// Migration 1: Create daily scores table
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS daily_scores (
			id UUID PRIMARY KEY,
			chat_id VARCHAR(64) NOT NULL,
			game VARCHAR(32) NOT NULL,
			username VARCHAR(255) NOT NULL,
			score INT NOT NULL,
			day TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_daily_scores_chat_day ON daily_scores(chat_id, day);
	`)
	if err != nil {
		return err
	}
	log.Info().Msg("Migration 1: daily_scores table created")

	log.Info().Msg("All migrations completed successfully")
	return nil
}
