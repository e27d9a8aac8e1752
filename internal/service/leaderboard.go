// Package service provides business logic implementations.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"puzzle-score-bot/internal/model"
	"puzzle-score-bot/internal/pkg/groupby"
)

// ScoreStore is the persistence boundary the services depend on.
type ScoreStore interface {
	// Append persists a new score record, create-once.
	Append(ctx context.Context, rec *model.ScoreRecord) error
	// ByChatAndDay returns every record for a chat on a given day.
	ByChatAndDay(ctx context.Context, chatID string, day time.Time) ([]*model.ScoreRecord, error)
}

// Notifier delivers rendered text back to a chat, best effort.
type Notifier interface {
	Notify(ctx context.Context, chatID string, text string) error
}

// rankMedals marks the top three positions of each game section.
var rankMedals = map[int]string{
	0: "🥇",
	1: "🥈",
	2: "🥉",
}

// LeaderboardService computes and renders per-chat daily leaderboards.
// Leaderboards are derived views: computed fresh from the store on every
// call, never cached.
type LeaderboardService struct {
	store    ScoreStore
	notifier Notifier
	timezone *time.Location
}

// NewLeaderboardService creates a new LeaderboardService instance.
func NewLeaderboardService(store ScoreStore, notifier Notifier, timezone *time.Location) *LeaderboardService {
	if timezone == nil {
		timezone = time.UTC
	}
	return &LeaderboardService{
		store:    store,
		notifier: notifier,
		timezone: timezone,
	}
}

// Today returns the current day boundary in the reference timezone.
func (s *LeaderboardService) Today() time.Time {
	return model.DayStart(time.Now(), s.timezone)
}

// Render produces the leaderboard text for a chat and day. With no games
// given, every recognized game gets a section in canonical order; otherwise
// only the requested games are rendered. Games without records still emit
// their header over an empty body.
func (s *LeaderboardService) Render(ctx context.Context, chatID string, day time.Time, games ...model.Game) (string, error) {
	if len(games) == 0 {
		games = model.AllGames()
	}

	records, err := s.store.ByChatAndDay(ctx, chatID, day)
	if err != nil {
		return "", fmt.Errorf("failed to load scores: %w", err)
	}

	ranked := rankRecords(records)
	grouped := groupby.ByKey(ranked, func(r *model.ScoreRecord) model.Game { return r.Game })

	var b strings.Builder
	b.WriteString("\n")
	for _, g := range games {
		b.WriteString(string(g))
		b.WriteString("\n")
		for i, rec := range grouped.Get(g) {
			if medal, ok := rankMedals[i]; ok {
				b.WriteString(medal)
			}
			fmt.Fprintf(&b, " @%s with %d points\n", rec.Username, rec.Score)
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

// Announce renders the leaderboard and delivers it to the chat.
func (s *LeaderboardService) Announce(ctx context.Context, chatID string, day time.Time, games ...model.Game) error {
	text, err := s.Render(ctx, chatID, day, games...)
	if err != nil {
		return err
	}
	if err := s.notifier.Notify(ctx, chatID, text); err != nil {
		return fmt.Errorf("failed to deliver leaderboard: %w", err)
	}
	return nil
}

// rankRecords sorts records ascending by score. Ties are broken by username,
// then record id, so rendering is a pure function of the record set and
// never depends on store retrieval order.
func rankRecords(records []*model.ScoreRecord) []*model.ScoreRecord {
	ranked := make([]*model.ScoreRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score < ranked[j].Score
		}
		if ranked[i].Username != ranked[j].Username {
			return ranked[i].Username < ranked[j].Username
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}
