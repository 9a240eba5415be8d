package ai

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

func TestFactoryScorer(t *testing.T) {
	f := NewFactory(domain.Settings{
		Scorer: domain.ScorerSettings{Endpoint: "http://localhost:9090"},
	})

	scorer, err := f.Scorer(domain.LanguageConfig{Model: "google/muril-base-cased"})
	require.NoError(t, err)
	assert.Equal(t, "google/muril-base-cased", scorer.ModelName())
}

func TestFactoryGeneratorProviders(t *testing.T) {
	cfg := domain.LanguageConfig{Model: "google/flan-t5-base"}

	for _, provider := range []domain.InferenceProvider{domain.ProviderHuggingFace, domain.ProviderOllama} {
		f := NewFactory(domain.Settings{
			Generator: domain.GeneratorSettings{Provider: provider, Endpoint: "http://localhost:9090"},
		})
		gen, err := f.Generator(cfg)
		require.NoError(t, err, "provider %s", provider)
		assert.Equal(t, "google/flan-t5-base", gen.ModelName())
	}
}

func TestFactoryGeneratorUnknownProvider(t *testing.T) {
	f := NewFactory(domain.Settings{
		Generator: domain.GeneratorSettings{Provider: "acme", Endpoint: "http://localhost:9090"},
	})
	_, err := f.Generator(domain.LanguageConfig{Model: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported inference provider")
}

func TestCreateAndValidateScorerUnconfigured(t *testing.T) {
	scorer, err := CreateAndValidateScorer(domain.Settings{}, domain.LanguageConfig{})
	require.NoError(t, err)
	assert.Nil(t, scorer)
}

func TestCreateAndValidateScorerReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	settings := domain.Settings{Scorer: domain.ScorerSettings{Endpoint: srv.URL}}
	scorer, err := CreateAndValidateScorer(settings, domain.LanguageConfig{Model: "m"})
	require.NoError(t, err)
	require.NotNil(t, scorer)
	assert.NoError(t, scorer.Close())
}

func TestCreateAndValidateGeneratorUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	settings := domain.Settings{
		Generator: domain.GeneratorSettings{Provider: domain.ProviderOllama, Endpoint: srv.URL},
	}
	_, err := CreateAndValidateGenerator(settings, domain.LanguageConfig{Model: "m"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGeneratorUnavailable)
}
