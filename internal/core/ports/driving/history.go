package driving

import (
	"context"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

// HistoryService exposes the persisted query log.
type HistoryService interface {
	// Recent returns the most recent answered queries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.QueryRecord, error)

	// Get retrieves one answered query by ID.
	Get(ctx context.Context, id string) (*domain.QueryRecord, error)
}
