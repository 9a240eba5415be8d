package services

import (
	"context"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// DefaultHistoryLimit is used when a caller asks for a non-positive limit.
const DefaultHistoryLimit = 20

// HistoryService exposes the persisted query log.
type HistoryService struct {
	queries driven.QueryStore
}

// NewHistoryService creates a history service.
func NewHistoryService(queries driven.QueryStore) *HistoryService {
	return &HistoryService{queries: queries}
}

// Recent returns the most recent answered queries, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.QueryRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.queries.ListQueries(ctx, limit)
}

// Get retrieves one answered query by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.QueryRecord, error) {
	return s.queries.GetQuery(ctx, id)
}
