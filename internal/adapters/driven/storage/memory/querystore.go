package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
)

// Ensure QueryStore implements the interface.
var _ driven.QueryStore = (*QueryStore)(nil)

// QueryStore is an in-memory implementation of driven.QueryStore.
type QueryStore struct {
	mu      sync.RWMutex
	queries map[string]domain.QueryRecord
	ratings map[string]domain.HumanRating
}

// NewQueryStore creates a new in-memory query store.
func NewQueryStore() *QueryStore {
	return &QueryStore{
		queries: make(map[string]domain.QueryRecord),
		ratings: make(map[string]domain.HumanRating),
	}
}

// SaveQuery stores an answered query.
func (s *QueryStore) SaveQuery(_ context.Context, rec *domain.QueryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries[rec.ID] = *rec
	return nil
}

// GetQuery retrieves a query by ID.
func (s *QueryStore) GetQuery(_ context.Context, id string) (*domain.QueryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.queries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// ListQueries returns the most recent queries, newest first.
func (s *QueryStore) ListQueries(_ context.Context, limit int) ([]domain.QueryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.QueryRecord, 0, len(s.queries))
	for _, rec := range s.queries {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// SaveRating stores or replaces the manual rating for a query.
func (s *QueryStore) SaveRating(_ context.Context, rating *domain.HumanRating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings[rating.QueryID] = *rating
	return nil
}

// GetRating retrieves the rating for a query.
func (s *QueryStore) GetRating(_ context.Context, queryID string) (*domain.HumanRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rating, ok := s.ratings[queryID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rating, nil
}
