package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
	"github.com/voqa-labs/voqa-cli/internal/logger"
)

// Ensure VoiceService implements the interface.
var _ driving.VoiceService = (*VoiceService)(nil)

// VoiceService orchestrates speech input and output for the configured
// language table.
type VoiceService struct {
	languages   []domain.LanguageConfig
	transcriber driven.Transcriber
	synthesizer driven.Synthesizer
}

// NewVoiceService creates a voice service. Either engine may be nil, in
// which case the corresponding direction is unavailable.
func NewVoiceService(
	languages []domain.LanguageConfig,
	transcriber driven.Transcriber,
	synthesizer driven.Synthesizer,
) *VoiceService {
	return &VoiceService{
		languages:   languages,
		transcriber: transcriber,
		synthesizer: synthesizer,
	}
}

// Transcribe converts the audio file at path into question text.
func (s *VoiceService) Transcribe(ctx context.Context, path, language string) (string, error) {
	if s.transcriber == nil {
		return "", fmt.Errorf("%w: no transcriber configured", domain.ErrTranscriptionFailed)
	}

	lc, err := domain.FindLanguage(s.languages, language)
	if err != nil {
		return "", err
	}

	text, err := s.transcriber.Transcribe(ctx, path, lc.STTLocale)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTranscriptionFailed, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		// Unintelligible audio: an absent question, not a system error.
		return "", fmt.Errorf("%w: nothing recognised", domain.ErrTranscriptionFailed)
	}

	logger.Info("Transcribed question: %q", text)
	return text, nil
}

// Speak synthesizes the answer text and returns the audio artifact path.
func (s *VoiceService) Speak(ctx context.Context, text, language string) (string, error) {
	if s.synthesizer == nil {
		return "", fmt.Errorf("%w: no synthesizer configured", domain.ErrSynthesisFailed)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty text", domain.ErrInvalidInput)
	}

	lc, err := domain.FindLanguage(s.languages, language)
	if err != nil {
		return "", err
	}

	path, err := s.synthesizer.Synthesize(ctx, text, lc.Code)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrSynthesisFailed, err)
	}

	logger.Info("Synthesized answer audio: %s", path)
	return path, nil
}
