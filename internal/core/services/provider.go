package services

import (
	"fmt"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
	"github.com/voqa-labs/voqa-cli/internal/windower"
)

// Ensure AnswerProvider implements the interface.
var _ driving.AnswerProvider = (*AnswerProvider)(nil)

// AnswerProvider builds per-language answer services from an engine
// factory. Each language needs only the engine its mode calls for.
type AnswerProvider struct {
	engines driven.EngineFactory
	windows *windower.Windower
	queries driven.QueryStore
	voice   driving.VoiceService
}

// NewAnswerProvider creates an answer provider.
func NewAnswerProvider(
	engines driven.EngineFactory,
	w *windower.Windower,
	queries driven.QueryStore,
) *AnswerProvider {
	if w == nil {
		w = windower.New()
	}
	return &AnswerProvider{
		engines: engines,
		windows: w,
		queries: queries,
	}
}

// SetVoiceService sets the voice service handed to built answer services.
func (p *AnswerProvider) SetVoiceService(voice driving.VoiceService) {
	p.voice = voice
}

// For returns an answer service for the language configuration.
func (p *AnswerProvider) For(cfg domain.LanguageConfig) (driving.AnswerService, error) {
	var scorer driven.WindowScorer
	var generator driven.AnswerGenerator
	var err error

	switch cfg.Mode {
	case domain.QAModeGenerative:
		generator, err = p.engines.Generator(cfg)
		if err != nil {
			return nil, fmt.Errorf("building generator for %s: %w", cfg.Name, err)
		}
	case domain.QAModeExtractive:
		scorer, err = p.engines.Scorer(cfg)
		if err != nil {
			return nil, fmt.Errorf("building scorer for %s: %w", cfg.Name, err)
		}
	default:
		return nil, fmt.Errorf("%w: language %s has no answering mode",
			domain.ErrInvalidInput, cfg.Name)
	}

	svc := NewAnswerService(cfg, scorer, generator, p.windows, p.queries)
	if p.voice != nil {
		svc.SetVoiceService(p.voice)
	}
	return svc, nil
}
