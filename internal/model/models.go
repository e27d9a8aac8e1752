// Package model defines the data models for the puzzle score bot.
package model

import "time"

// Game identifies one of the supported daily puzzle games.
type Game string

// The closed set of recognized games.
const (
	GameFlagle  Game = "flagle"
	GameWordle  Game = "wordle"
	GameKelma   Game = "kelma"
	GameQuordle Game = "quordle"
)

// AllGames returns every recognized game in canonical leaderboard order.
func AllGames() []Game {
	return []Game{GameFlagle, GameKelma, GameQuordle, GameWordle}
}

// Valid reports whether g belongs to the recognized game set.
func (g Game) Valid() bool {
	switch g {
	case GameFlagle, GameWordle, GameKelma, GameQuordle:
		return true
	}
	return false
}

// ScoreRecord is one persisted submission: a user's score for one game on
// one day in one chat. Records are immutable once created; a resubmission
// creates a new record with a fresh ID.
type ScoreRecord struct {
	ID        string    `db:"id"`
	ChatID    string    `db:"chat_id"`
	Game      Game      `db:"game"`
	Username  string    `db:"username"`
	Score     int       `db:"score"`
	Day       time.Time `db:"day"`
	CreatedAt time.Time `db:"created_at"`
}

// DayStart returns the canonical day boundary for now: the calendar date in
// loc, anchored at midnight UTC. This instant is the sole temporal partition
// key for daily scores.
func DayStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
