package driven

import (
	"context"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

// QueryStore persists answered queries and their manual ratings.
type QueryStore interface {
	// SaveQuery stores an answered query.
	SaveQuery(ctx context.Context, rec *domain.QueryRecord) error

	// GetQuery retrieves a query by ID.
	// Returns domain.ErrNotFound when absent.
	GetQuery(ctx context.Context, id string) (*domain.QueryRecord, error)

	// ListQueries returns the most recent queries, newest first.
	ListQueries(ctx context.Context, limit int) ([]domain.QueryRecord, error)

	// SaveRating stores or replaces the manual rating for a query.
	SaveRating(ctx context.Context, rating *domain.HumanRating) error

	// GetRating retrieves the rating for a query.
	// Returns domain.ErrNotFound when absent.
	GetRating(ctx context.Context, queryID string) (*domain.HumanRating, error)
}
