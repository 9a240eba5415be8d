package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
)

// mockAnswers is a canned driving.AnswerService.
type mockAnswers struct {
	record *domain.QueryRecord
	err    error
}

func (m *mockAnswers) Ask(
	context.Context, string, *domain.Document, driving.AskOptions,
) (*domain.QueryRecord, error) {
	return m.record, m.err
}

func (m *mockAnswers) FindAnswer(context.Context, string, string) domain.AnswerResult {
	if m.record == nil {
		return domain.NoConfidentAnswerResult()
	}
	return m.record.Result
}

// mockAnswerProvider returns one service for every language.
type mockAnswerProvider struct {
	svc driving.AnswerService
	err error
}

func (m *mockAnswerProvider) For(domain.LanguageConfig) (driving.AnswerService, error) {
	return m.svc, m.err
}

// mockDocuments serves documents from a map.
type mockDocuments struct {
	docs map[string]*domain.Document
}

func (m *mockDocuments) Load(_ context.Context, path, language string) (*domain.Document, error) {
	return &domain.Document{ID: "loaded", URI: path, Language: language}, nil
}

func (m *mockDocuments) Extract(_ context.Context, path string) (*domain.Document, error) {
	return &domain.Document{URI: path}, nil
}

func (m *mockDocuments) Get(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func (m *mockDocuments) List(context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(m.docs))
	for _, d := range m.docs {
		out = append(out, *d)
	}
	return out, nil
}

// mockEvaluation returns a fixed overlap report.
type mockEvaluation struct {
	report domain.OverlapReport
	err    error
}

func (m *mockEvaluation) Score(string, string) (domain.OverlapReport, error) {
	return m.report, m.err
}

func (m *mockEvaluation) Rate(context.Context, domain.HumanRating) error { return nil }

func (m *mockEvaluation) RatingFor(context.Context, string) (*domain.HumanRating, error) {
	return nil, domain.ErrNotFound
}

// mockHistory serves query records from a map.
type mockHistory struct {
	records map[string]*domain.QueryRecord
}

func (m *mockHistory) Recent(context.Context, int) ([]domain.QueryRecord, error) {
	return nil, nil
}

func (m *mockHistory) Get(_ context.Context, id string) (*domain.QueryRecord, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func newAskServer(t *testing.T) *Server {
	t.Helper()

	ports := &Ports{
		Answers: &mockAnswerProvider{svc: &mockAnswers{
			record: &domain.QueryRecord{
				ID: "q-1",
				Result: domain.AnswerResult{
					Answer:  "a natural satellite",
					Score:   0.93,
					Context: "The moon is a natural satellite of Earth.",
				},
			},
		}},
		Documents: &mockDocuments{docs: map[string]*domain.Document{
			"doc-1": {ID: "doc-1", Title: "moon.pdf", Language: "English",
				Text: "The moon is a natural satellite of Earth.", Pages: 2},
		}},
	}

	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the answer", func(t *testing.T) {
		server := newAskServer(t)

		_, output, err := server.handleAsk(ctx, nil, AskInput{
			Question:   "what is the moon?",
			DocumentID: "doc-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "a natural satellite", output.Answer)
		assert.Equal(t, 0.93, output.Score)
		assert.Equal(t, "q-1", output.QueryID)
	})

	t.Run("unknown document", func(t *testing.T) {
		server := newAskServer(t)

		_, _, err := server.handleAsk(ctx, nil, AskInput{
			Question:   "q",
			DocumentID: "missing",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown language", func(t *testing.T) {
		server := newAskServer(t)

		_, _, err := server.handleAsk(ctx, nil, AskInput{
			Question:   "q",
			DocumentID: "doc-1",
			Language:   "klingon",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownLanguage)
	})
}

func TestServer_handleListDocuments(t *testing.T) {
	server := newAskServer(t)

	_, output, err := server.handleListDocuments(context.Background(), nil, ListDocumentsInput{})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Count)
	require.Len(t, output.Documents, 1)
	assert.Equal(t, "doc-1", output.Documents[0].ID)
	assert.Equal(t, 2, output.Documents[0].Pages)
	assert.Equal(t, len("The moon is a natural satellite of Earth."), output.Documents[0].Chars)
}

func TestServer_handleEvaluate(t *testing.T) {
	ctx := context.Background()

	report := domain.OverlapReport{
		Unigram: domain.OverlapScore{Precision: 1, Recall: 0.5, FMeasure: 2.0 / 3.0},
	}
	ports := &Ports{
		Answers:    &mockAnswerProvider{svc: &mockAnswers{}},
		Documents:  &mockDocuments{},
		Evaluation: &mockEvaluation{report: report},
		History: &mockHistory{records: map[string]*domain.QueryRecord{
			"q-1": {ID: "q-1", Result: domain.AnswerResult{Answer: "a satellite"}},
		}},
	}
	server, err := NewServer(ports)
	require.NoError(t, err)

	t.Run("scores a stored answer", func(t *testing.T) {
		_, output, err := server.handleEvaluate(ctx, nil, EvaluateInput{
			QueryID:   "q-1",
			Reference: "a natural satellite",
		})

		require.NoError(t, err)
		assert.Equal(t, report, output)
	})

	t.Run("unknown query", func(t *testing.T) {
		_, _, err := server.handleEvaluate(ctx, nil, EvaluateInput{
			QueryID:   "missing",
			Reference: "a natural satellite",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestNewServerValidatesPorts(t *testing.T) {
	_, err := NewServer(&Ports{})
	assert.ErrorIs(t, err, ErrMissingAnswerProvider)

	_, err = NewServer(&Ports{Answers: &mockAnswerProvider{}})
	assert.ErrorIs(t, err, ErrMissingDocumentService)
}
