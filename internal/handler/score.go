// Package handler provides Telegram bot update handlers.
package handler

import (
	"context"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"puzzle-score-bot/internal/service"
)

// ScoreHandler ingests candidate game result messages.
type ScoreHandler struct {
	scoreService *service.ScoreService
}

// NewScoreHandler creates a new ScoreHandler.
func NewScoreHandler(scoreService *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
	}
}

// HandleText receives every plain text message from a chat. Messages that
// are not game results are ignored silently. Every failure path still
// acknowledges the update: ingestion availability wins over notification
// completeness, and a reply to a non-game message would just be noise.
func (h *ScoreHandler) HandleText(c tele.Context) error {
	chat := c.Chat()
	sender := c.Sender()
	text := c.Text()

	if chat == nil || sender == nil || text == "" {
		return nil
	}

	ctx := context.Background()

	// A nil record with a nil error means the message matched no game;
	// both outcomes acknowledge the update without replying.
	if _, err := h.scoreService.Ingest(ctx, chat.ID, sender.Username, text); err != nil {
		log.Warn().
			Err(err).
			Int64("chat_id", chat.ID).
			Str("username", sender.Username).
			Msg("Failed to ingest score message")
	}

	return nil
}
