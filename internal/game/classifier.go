// Package game implements detection of daily puzzle result messages and
// extraction of their scores.
package game

import (
	"strings"

	"puzzle-score-bot/internal/model"
)

// signature pairs a game with the predicate that recognizes its share
// message. Signatures are evaluated in order; the first match wins.
type signature struct {
	game  model.Game
	match func(text string) bool
}

// signatures holds the fixed recognition rules. Matching is plain substring
// containment against the share text each game generates.
var signatures = []signature{
	{model.GameFlagle, func(s string) bool {
		return strings.Contains(s, "https://www.flagle.io") && strings.Contains(s, "#Flagle")
	}},
	{model.GameWordle, func(s string) bool {
		return strings.Contains(s, "Wordle") && strings.Contains(s, "/6")
	}},
	{model.GameKelma, func(s string) bool {
		return strings.Contains(s, "kelma.mt") && strings.Contains(s, "/6")
	}},
	{model.GameQuordle, func(s string) bool {
		return strings.Contains(s, "Daily Quordle") && strings.Contains(s, "quordle.com")
	}},
}

// Classify inspects a message and returns which game produced it. The second
// return value is false when the message matches no known game; that is a
// normal outcome, not an error.
func Classify(text string) (model.Game, bool) {
	for _, sig := range signatures {
		if sig.match(text) {
			return sig.game, true
		}
	}
	return "", false
}
