// Package ai provides factory functions for creating inference adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/voqa-labs/voqa-cli/internal/adapters/driven/qa/hf"
	"github.com/voqa-labs/voqa-cli/internal/adapters/driven/qa/ollama"
	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for backend connectivity validation.
const pingTimeout = 5 * time.Second

// Ensure Factory implements the interface.
var _ driven.EngineFactory = (*Factory)(nil)

// Factory builds inference engines from settings and a language
// configuration.
type Factory struct {
	settings domain.Settings
}

// NewFactory creates an engine factory for the given settings.
func NewFactory(settings domain.Settings) *Factory {
	return &Factory{settings: settings}
}

// Scorer returns a window scorer for the language's extractive model.
func (f *Factory) Scorer(cfg domain.LanguageConfig) (driven.WindowScorer, error) {
	return hf.NewScorer(hf.Config{
		BaseURL:           f.settings.Scorer.Endpoint,
		Model:             cfg.Model,
		APIKey:            f.settings.Scorer.APIKey,
		RequestsPerSecond: f.settings.Scorer.RequestsPerSecond,
	}), nil
}

// Generator returns an answer generator for the language's generative model.
func (f *Factory) Generator(cfg domain.LanguageConfig) (driven.AnswerGenerator, error) {
	switch f.settings.Generator.Provider {
	case domain.ProviderOllama:
		return ollama.NewGenerator(ollama.Config{
			BaseURL: f.settings.Generator.Endpoint,
			Model:   cfg.Model,
		}), nil

	case domain.ProviderHuggingFace:
		return hf.NewGenerator(hf.Config{
			BaseURL: f.settings.Generator.Endpoint,
			Model:   cfg.Model,
			APIKey:  f.settings.Generator.APIKey,
		}), nil

	default:
		return nil, fmt.Errorf("unsupported inference provider: %s", f.settings.Generator.Provider)
	}
}

// CreateAndValidateScorer creates a scorer and validates connectivity.
// Returns nil without error when scoring is not configured.
func CreateAndValidateScorer(settings domain.Settings, cfg domain.LanguageConfig) (driven.WindowScorer, error) {
	if !settings.Scorer.IsConfigured() {
		return nil, nil
	}

	scorer, err := NewFactory(settings).Scorer(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'voqa settings wizard' to fix",
			domain.ErrScorerUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := scorer.Ping(ctx); err != nil {
		scorer.Close()
		return nil, fmt.Errorf("%w: backend unreachable (%w). Run 'voqa settings wizard' to fix",
			domain.ErrScorerUnavailable, err)
	}

	return scorer, nil
}

// CreateAndValidateGenerator creates a generator and validates connectivity.
// Returns nil without error when generation is not configured.
func CreateAndValidateGenerator(settings domain.Settings, cfg domain.LanguageConfig) (driven.AnswerGenerator, error) {
	if !settings.Generator.IsConfigured() {
		return nil, nil
	}

	gen, err := NewFactory(settings).Generator(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'voqa settings wizard' to fix",
			domain.ErrGeneratorUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := gen.Ping(ctx); err != nil {
		gen.Close()
		return nil, fmt.Errorf("%w: backend unreachable (%w). Run 'voqa settings wizard' to fix",
			domain.ErrGeneratorUnavailable, err)
	}

	return gen, nil
}

// ValidateScorerConfig validates scorer settings by pinging the backend.
// Intended for the settings wizard.
func ValidateScorerConfig(settings domain.Settings, cfg domain.LanguageConfig) error {
	if !settings.Scorer.IsConfigured() {
		return nil
	}

	scorer, err := NewFactory(settings).Scorer(cfg)
	if err != nil {
		return err
	}
	defer scorer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return scorer.Ping(ctx)
}

// ValidateGeneratorConfig validates generator settings by pinging the backend.
// Intended for the settings wizard.
func ValidateGeneratorConfig(settings domain.Settings, cfg domain.LanguageConfig) error {
	if !settings.Generator.IsConfigured() {
		return nil
	}

	gen, err := NewFactory(settings).Generator(cfg)
	if err != nil {
		return err
	}
	defer gen.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return gen.Ping(ctx)
}
