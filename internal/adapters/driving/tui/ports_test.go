package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
)

// MockAnswerService is a configurable answer service for tests.
type MockAnswerService struct {
	Record *domain.QueryRecord
	Err    error
}

func (m *MockAnswerService) Ask(
	context.Context, string, *domain.Document, driving.AskOptions,
) (*domain.QueryRecord, error) {
	return m.Record, m.Err
}

func (m *MockAnswerService) FindAnswer(context.Context, string, string) domain.AnswerResult {
	if m.Record == nil {
		return domain.NoConfidentAnswerResult()
	}
	return m.Record.Result
}

// MockAnswerProvider returns the same service for every language.
type MockAnswerProvider struct {
	Service driving.AnswerService
	Err     error
}

func (m *MockAnswerProvider) For(domain.LanguageConfig) (driving.AnswerService, error) {
	return m.Service, m.Err
}

// MockDocumentService serves a fixed document list.
type MockDocumentService struct {
	Docs []domain.Document
	Err  error
}

func (m *MockDocumentService) Load(_ context.Context, path, language string) (*domain.Document, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.Document{ID: "loaded", URI: path, Language: language}, nil
}

func (m *MockDocumentService) Extract(_ context.Context, path string) (*domain.Document, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.Document{URI: path}, nil
}

func (m *MockDocumentService) Get(_ context.Context, id string) (*domain.Document, error) {
	for i := range m.Docs {
		if m.Docs[i].ID == id {
			return &m.Docs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockDocumentService) List(context.Context) ([]domain.Document, error) {
	return m.Docs, m.Err
}

// MockEvaluationService records ratings in memory.
type MockEvaluationService struct {
	Report  domain.OverlapReport
	Ratings map[string]domain.HumanRating
	Err     error
}

func (m *MockEvaluationService) Score(string, string) (domain.OverlapReport, error) {
	return m.Report, m.Err
}

func (m *MockEvaluationService) Rate(_ context.Context, rating domain.HumanRating) error {
	if m.Err != nil {
		return m.Err
	}
	if m.Ratings == nil {
		m.Ratings = make(map[string]domain.HumanRating)
	}
	m.Ratings[rating.QueryID] = rating
	return nil
}

func (m *MockEvaluationService) RatingFor(_ context.Context, queryID string) (*domain.HumanRating, error) {
	if r, ok := m.Ratings[queryID]; ok {
		return &r, nil
	}
	return nil, domain.ErrNotFound
}

// MockHistoryService serves a fixed query list.
type MockHistoryService struct {
	Queries []domain.QueryRecord
	Err     error
}

func (m *MockHistoryService) Recent(context.Context, int) ([]domain.QueryRecord, error) {
	return m.Queries, m.Err
}

func (m *MockHistoryService) Get(_ context.Context, id string) (*domain.QueryRecord, error) {
	for i := range m.Queries {
		if m.Queries[i].ID == id {
			return &m.Queries[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func TestPorts_Validate(t *testing.T) {
	ports := &Ports{
		Answers:    &MockAnswerProvider{},
		Documents:  &MockDocumentService{},
		Evaluation: &MockEvaluationService{},
		History:    &MockHistoryService{},
	}

	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingAnswers(t *testing.T) {
	ports := &Ports{
		Documents:  &MockDocumentService{},
		Evaluation: &MockEvaluationService{},
		History:    &MockHistoryService{},
	}

	assert.ErrorIs(t, ports.Validate(), ErrMissingAnswerProvider)
}

func TestPorts_Validate_MissingDocuments(t *testing.T) {
	ports := &Ports{
		Answers:    &MockAnswerProvider{},
		Evaluation: &MockEvaluationService{},
		History:    &MockHistoryService{},
	}

	assert.ErrorIs(t, ports.Validate(), ErrMissingDocumentService)
}

func TestPorts_Validate_MissingEvaluation(t *testing.T) {
	ports := &Ports{
		Answers:   &MockAnswerProvider{},
		Documents: &MockDocumentService{},
		History:   &MockHistoryService{},
	}

	assert.ErrorIs(t, ports.Validate(), ErrMissingEvaluationService)
}

func TestPorts_Validate_MissingHistory(t *testing.T) {
	ports := &Ports{
		Answers:    &MockAnswerProvider{},
		Documents:  &MockDocumentService{},
		Evaluation: &MockEvaluationService{},
	}

	assert.ErrorIs(t, ports.Validate(), ErrMissingHistoryService)
}
