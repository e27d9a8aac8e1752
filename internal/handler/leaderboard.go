package handler

import (
	"context"
	"strconv"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"puzzle-score-bot/internal/service"
)

// LeaderboardHandler serves the on-demand leaderboard command.
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// HandleLeaderboard handles the /leaderboard command.
// Renders today's full leaderboard for the originating chat, all games.
func (h *LeaderboardHandler) HandleLeaderboard(c tele.Context) error {
	chat := c.Chat()
	if chat == nil {
		return nil
	}

	ctx := context.Background()

	text, err := h.leaderboardService.Render(ctx, chatIDKey(chat.ID), h.leaderboardService.Today())
	if err != nil {
		log.Error().
			Err(err).
			Int64("chat_id", chat.ID).
			Msg("Failed to render leaderboard")
		return c.Reply("❌ Could not fetch the leaderboard, please try again later")
	}

	return c.Send(text)
}

// chatIDKey renders a Telegram chat id the way score records key it.
func chatIDKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
