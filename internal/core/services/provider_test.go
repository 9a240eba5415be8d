package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voqa-labs/voqa-cli/internal/adapters/driven/storage/memory"
	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
)

// mockEngineFactory hands out canned engines and records which were built.
type mockEngineFactory struct {
	scorer       driven.WindowScorer
	generator    driven.AnswerGenerator
	scorerErr    error
	generatorErr error

	scorersBuilt    int
	generatorsBuilt int
}

func (m *mockEngineFactory) Scorer(domain.LanguageConfig) (driven.WindowScorer, error) {
	m.scorersBuilt++
	return m.scorer, m.scorerErr
}

func (m *mockEngineFactory) Generator(domain.LanguageConfig) (driven.AnswerGenerator, error) {
	m.generatorsBuilt++
	return m.generator, m.generatorErr
}

func TestProviderBuildsGenerativeService(t *testing.T) {
	factory := &mockEngineFactory{generator: &mockGenerator{answer: "the moon"}}
	provider := NewAnswerProvider(factory, nil, memory.NewQueryStore())

	svc, err := provider.For(domain.LanguageConfig{Name: "English", Mode: domain.QAModeGenerative})

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, 1, factory.generatorsBuilt)
	assert.Zero(t, factory.scorersBuilt, "generative language must not build a scorer")

	rec, err := svc.Ask(context.Background(), "what is it?",
		&domain.Document{ID: "d1", Text: "The moon."}, driving.AskOptions{})
	require.NoError(t, err)
	assert.True(t, rec.Result.Generated)
	assert.Equal(t, "the moon", rec.Result.Answer)
}

func TestProviderBuildsExtractiveService(t *testing.T) {
	factory := &mockEngineFactory{scorer: &mockScorer{}}
	provider := NewAnswerProvider(factory, nil, memory.NewQueryStore())

	svc, err := provider.For(domain.LanguageConfig{Name: "Sanskrit", Mode: domain.QAModeExtractive})

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, 1, factory.scorersBuilt)
	assert.Zero(t, factory.generatorsBuilt, "extractive language must not build a generator")
}

func TestProviderRejectsUnknownMode(t *testing.T) {
	provider := NewAnswerProvider(&mockEngineFactory{}, nil, memory.NewQueryStore())

	_, err := provider.For(domain.LanguageConfig{Name: "Klingon"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProviderPropagatesFactoryError(t *testing.T) {
	factory := &mockEngineFactory{generatorErr: assert.AnError}
	provider := NewAnswerProvider(factory, nil, memory.NewQueryStore())

	_, err := provider.For(domain.LanguageConfig{Name: "English", Mode: domain.QAModeGenerative})

	assert.ErrorIs(t, err, assert.AnError)
}
