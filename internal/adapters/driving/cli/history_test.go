package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

// mockHistory returns canned query records.
type mockHistory struct {
	records []domain.QueryRecord
}

func (m *mockHistory) Recent(_ context.Context, limit int) ([]domain.QueryRecord, error) {
	if limit < len(m.records) {
		return m.records[:limit], nil
	}
	return m.records, nil
}

func (m *mockHistory) Get(_ context.Context, id string) (*domain.QueryRecord, error) {
	for i := range m.records {
		if m.records[i].ID == id {
			return &m.records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func TestHistoryCmd_Empty(t *testing.T) {
	historyService = &mockHistory{}
	defer func() { historyService = nil }()

	out, err := execute("history")
	require.NoError(t, err)
	assert.Contains(t, out, "No queries answered yet.")
}

func TestHistoryCmd_ListsQueries(t *testing.T) {
	historyService = &mockHistory{records: []domain.QueryRecord{
		{ID: "q-1", Language: "English", Question: "how far?", Spoken: true,
			Result: domain.AnswerResult{Answer: "384,400 km"}},
	}}
	defer func() { historyService = nil }()

	out, err := execute("history")
	require.NoError(t, err)
	assert.Contains(t, out, "q-1")
	assert.Contains(t, out, "(spoken)")
	assert.Contains(t, out, "A: 384,400 km")
}

func TestHistoryCmd_LimitFlag(t *testing.T) {
	flag := historyCmd.Flags().Lookup("limit")
	require.NotNil(t, flag)
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "20", flag.DefValue)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute("version")
	require.NoError(t, err)
	assert.Contains(t, out, "voqa version")
}

func TestLanguagesCmd(t *testing.T) {
	out, err := execute("languages")
	require.NoError(t, err)
	assert.Contains(t, out, "English")
	assert.Contains(t, out, "Sanskrit")
	assert.Contains(t, out, "Japanese")
	assert.Contains(t, out, "google/muril-base-cased")
}
