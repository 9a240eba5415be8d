package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voqa-labs/voqa-cli/internal/adapters/driven/storage/memory"
	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

func TestHistoryRecentNewestFirst(t *testing.T) {
	store := memory.NewQueryStore()
	svc := NewHistoryService(store)
	ctx := context.Background()

	now := time.Now()
	for i, id := range []string{"q1", "q2", "q3"} {
		rec := &domain.QueryRecord{ID: id, CreatedAt: now.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, store.SaveQuery(ctx, rec))
	}

	recent, err := svc.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "q3", recent[0].ID)
	assert.Equal(t, "q2", recent[1].ID)
}

func TestHistoryRecentDefaultLimit(t *testing.T) {
	store := memory.NewQueryStore()
	svc := NewHistoryService(store)
	ctx := context.Background()

	for i := 0; i < DefaultHistoryLimit+5; i++ {
		rec := &domain.QueryRecord{
			ID:        string(rune('a' + i)),
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, store.SaveQuery(ctx, rec))
	}

	recent, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, recent, DefaultHistoryLimit)
}

func TestHistoryGet(t *testing.T) {
	store := memory.NewQueryStore()
	svc := NewHistoryService(store)
	ctx := context.Background()

	require.NoError(t, store.SaveQuery(ctx, &domain.QueryRecord{ID: "q1", Question: "why?"}))

	got, err := svc.Get(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, "why?", got.Question)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
