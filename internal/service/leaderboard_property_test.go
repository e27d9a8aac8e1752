// Property-based tests for leaderboard ranking.
package service

import (
	"testing"

	"pgregory.net/rapid"

	"puzzle-score-bot/internal/model"
)

// TestRankRecordsOrderingProperty checks that ranking sorts ascending by
// score with username and id as tie-breakers.
func TestRankRecordsOrderingProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(0, 50).Draw(t, "count")

		records := make([]*model.ScoreRecord, count)
		for i := range records {
			records[i] = &model.ScoreRecord{
				ID:       rapid.StringMatching(`[a-f0-9]{8}`).Draw(t, "id"),
				ChatID:   "42",
				Game:     model.GameWordle,
				Username: rapid.StringMatching(`[a-z]{3,10}`).Draw(t, "username"),
				Score:    rapid.IntRange(1, 40).Draw(t, "score"),
			}
		}

		ranked := rankRecords(records)

		if len(ranked) != len(records) {
			t.Fatalf("rankRecords changed length: got %d, want %d", len(ranked), len(records))
		}

		for i := 1; i < len(ranked); i++ {
			prev, cur := ranked[i-1], ranked[i]
			if prev.Score > cur.Score {
				t.Fatalf("scores out of order at %d: %d before %d", i, prev.Score, cur.Score)
			}
			if prev.Score == cur.Score && prev.Username > cur.Username {
				t.Fatalf("usernames out of order at %d: %q before %q", i, prev.Username, cur.Username)
			}
			if prev.Score == cur.Score && prev.Username == cur.Username && prev.ID > cur.ID {
				t.Fatalf("ids out of order at %d: %q before %q", i, prev.ID, cur.ID)
			}
		}
	})
}

// TestRankRecordsDeterminismProperty checks that ranking is independent of
// input order: any permutation of the same records ranks identically.
func TestRankRecordsDeterminismProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 30).Draw(t, "count")

		records := make([]*model.ScoreRecord, count)
		for i := range records {
			records[i] = &model.ScoreRecord{
				ID:       rapid.StringMatching(`[a-f0-9]{8}`).Draw(t, "id"),
				Username: rapid.StringMatching(`[a-z]{3,8}`).Draw(t, "username"),
				Score:    rapid.IntRange(1, 10).Draw(t, "score"),
			}
		}

		// Rotate the input to simulate a different retrieval order
		offset := rapid.IntRange(0, count-1).Draw(t, "offset")
		rotated := append(append([]*model.ScoreRecord{}, records[offset:]...), records[:offset]...)

		a := rankRecords(records)
		b := rankRecords(rotated)

		for i := range a {
			if a[i].ID != b[i].ID {
				t.Fatalf("rank %d differs across permutations: %q vs %q", i, a[i].ID, b[i].ID)
			}
		}
	})
}

// TestRankRecordsPreservesInputProperty checks that ranking never mutates
// the slice it was given.
func TestRankRecordsPreservesInputProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 20).Draw(t, "count")

		records := make([]*model.ScoreRecord, count)
		original := make([]*model.ScoreRecord, count)
		for i := range records {
			records[i] = &model.ScoreRecord{
				ID:    rapid.StringMatching(`[a-f0-9]{8}`).Draw(t, "id"),
				Score: rapid.IntRange(1, 40).Draw(t, "score"),
			}
			original[i] = records[i]
		}

		_ = rankRecords(records)

		for i := range records {
			if records[i] != original[i] {
				t.Fatalf("input slice mutated at index %d", i)
			}
		}
	})
}
