// Package repository provides data access layer implementations.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"puzzle-score-bot/internal/model"
)

// ScoreRepository handles daily score persistence. Scores are append-only:
// every submission gets its own row keyed by a generated id, and rows are
// never updated or merged.
type ScoreRepository struct {
	pool *pgxpool.Pool
}

// NewScoreRepository creates a new ScoreRepository instance.
func NewScoreRepository(pool *pgxpool.Pool) *ScoreRepository {
	return &ScoreRepository{pool: pool}
}

// Append persists a new score record. The record's id must be freshly
// generated; an id collision is surfaced as an error, never an overwrite.
func (r *ScoreRepository) Append(ctx context.Context, rec *model.ScoreRecord) error {
	const query = `
		INSERT INTO daily_scores (id, chat_id, game, username, score, day, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query,
		rec.ID,
		rec.ChatID,
		rec.Game,
		rec.Username,
		rec.Score,
		rec.Day,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append score: %w", err)
	}

	return nil
}

// ByChatAndDay retrieves every score record for a chat on a given day.
// Results are ordered by score ascending with created_at and id as
// tie-breakers, so retrieval order is deterministic.
func (r *ScoreRepository) ByChatAndDay(ctx context.Context, chatID string, day time.Time) ([]*model.ScoreRecord, error) {
	const query = `
		SELECT id, chat_id, game, username, score, day, created_at
		FROM daily_scores
		WHERE chat_id = $1 AND day = $2
		ORDER BY score ASC, created_at ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, chatID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	var records []*model.ScoreRecord
	for rows.Next() {
		var rec model.ScoreRecord
		err := rows.Scan(
			&rec.ID,
			&rec.ChatID,
			&rec.Game,
			&rec.Username,
			&rec.Score,
			&rec.Day,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scores: %w", err)
	}

	return records, nil
}
