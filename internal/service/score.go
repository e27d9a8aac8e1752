package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"puzzle-score-bot/internal/game"
	"puzzle-score-bot/internal/model"
)

// ScoreService turns inbound chat messages into persisted score records.
// Each message is an independent unit of work; all state lives in the store.
type ScoreService struct {
	store    ScoreStore
	boards   *LeaderboardService
	timezone *time.Location
}

// NewScoreService creates a new ScoreService instance.
func NewScoreService(store ScoreStore, boards *LeaderboardService, timezone *time.Location) *ScoreService {
	if timezone == nil {
		timezone = time.UTC
	}
	return &ScoreService{
		store:    store,
		boards:   boards,
		timezone: timezone,
	}
}

// Ingest classifies a message, extracts its score and persists the record.
// A message that matches no game returns (nil, nil): a normal outcome, not
// an error. Extraction or store failures return an error and nothing is
// persisted with a bad score.
//
// After a successful append the leaderboard for the record's game is
// announced to the chat. Announcement failures are logged and swallowed: a
// dropped leaderboard message is acceptable, a malformed record is not.
func (s *ScoreService) Ingest(ctx context.Context, chatID int64, username, text string) (*model.ScoreRecord, error) {
	kind, ok := game.Classify(text)
	if !ok {
		return nil, nil
	}

	score, err := game.ExtractScore(text, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to extract %s score: %w", kind, err)
	}

	rec := &model.ScoreRecord{
		ID:       uuid.NewString(),
		ChatID:   strconv.FormatInt(chatID, 10),
		Game:     kind,
		Username: username,
		Score:    score,
		Day:      model.DayStart(time.Now(), s.timezone),
	}

	if err := s.store.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to persist score: %w", err)
	}

	log.Info().
		Str("chat_id", rec.ChatID).
		Str("game", string(rec.Game)).
		Str("username", rec.Username).
		Int("score", rec.Score).
		Msg("Score recorded")

	if err := s.boards.Announce(ctx, rec.ChatID, rec.Day, rec.Game); err != nil {
		log.Warn().
			Err(err).
			Str("chat_id", rec.ChatID).
			Str("game", string(rec.Game)).
			Msg("Failed to announce leaderboard")
	}

	return rec, nil
}
