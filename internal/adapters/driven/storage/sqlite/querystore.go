package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
)

// queryStore implements driven.QueryStore.
type queryStore struct {
	store *Store
}

var _ driven.QueryStore = (*queryStore)(nil)

// SaveQuery stores an answered query.
func (s *queryStore) SaveQuery(ctx context.Context, rec *domain.QueryRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO queries (id, document_id, language, question, spoken,
			answer, score, context, generated, audio_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			answer = excluded.answer,
			score = excluded.score,
			context = excluded.context,
			generated = excluded.generated,
			audio_path = excluded.audio_path
	`, rec.ID, rec.DocumentID, rec.Language, rec.Question, rec.Spoken,
		rec.Result.Answer, rec.Result.Score, rec.Result.Context,
		rec.Result.Generated, rec.AudioPath, rec.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving query: %w", err)
	}
	return nil
}

// GetQuery retrieves a query by ID.
func (s *queryStore) GetQuery(ctx context.Context, id string) (*domain.QueryRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, document_id, language, question, spoken,
			answer, score, context, generated, audio_path, created_at
		FROM queries WHERE id = ?
	`, id)

	var rec domain.QueryRecord
	var createdAt sql.NullTime
	if err := row.Scan(&rec.ID, &rec.DocumentID, &rec.Language, &rec.Question,
		&rec.Spoken, &rec.Result.Answer, &rec.Result.Score, &rec.Result.Context,
		&rec.Result.Generated, &rec.AudioPath, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning query: %w", err)
	}
	if createdAt.Valid {
		rec.CreatedAt = createdAt.Time
	}

	return &rec, nil
}

// ListQueries returns the most recent queries, newest first.
func (s *queryStore) ListQueries(ctx context.Context, limit int) ([]domain.QueryRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, document_id, language, question, spoken,
			answer, score, context, generated, audio_path, created_at
		FROM queries ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying queries: %w", err)
	}
	defer rows.Close()

	var records []domain.QueryRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var rec domain.QueryRecord
		var createdAt sql.NullTime
		if err := rows.Scan(&rec.ID, &rec.DocumentID, &rec.Language, &rec.Question,
			&rec.Spoken, &rec.Result.Answer, &rec.Result.Score, &rec.Result.Context,
			&rec.Result.Generated, &rec.AudioPath, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning query: %w", err)
		}
		if createdAt.Valid {
			rec.CreatedAt = createdAt.Time
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating queries: %w", err)
	}

	return records, nil
}

// SaveRating stores or replaces the manual rating for a query.
func (s *queryStore) SaveRating(ctx context.Context, rating *domain.HumanRating) error {
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO ratings (query_id, correctness, fluency, voice_clarity, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(query_id) DO UPDATE SET
			correctness = excluded.correctness,
			fluency = excluded.fluency,
			voice_clarity = excluded.voice_clarity,
			created_at = excluded.created_at
	`, rating.QueryID, rating.Correctness, rating.Fluency, rating.VoiceClarity,
		rating.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving rating: %w", err)
	}
	return nil
}

// GetRating retrieves the rating for a query.
func (s *queryStore) GetRating(ctx context.Context, queryID string) (*domain.HumanRating, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT query_id, correctness, fluency, voice_clarity, created_at
		FROM ratings WHERE query_id = ?
	`, queryID)

	var rating domain.HumanRating
	var createdAt sql.NullTime
	if err := row.Scan(&rating.QueryID, &rating.Correctness, &rating.Fluency,
		&rating.VoiceClarity, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning rating: %w", err)
	}
	if createdAt.Valid {
		rating.CreatedAt = createdAt.Time
	}

	return &rating, nil
}
