package services

import (
	"fmt"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyScorerEndpoint   = "scorer.endpoint"
	keyScorerAPIKey     = "scorer.api_key"
	keyScorerRPS        = "scorer.requests_per_second"
	keyGenProvider      = "generator.provider"
	keyGenEndpoint      = "generator.endpoint"
	keyGenAPIKey        = "generator.api_key"
	keySpeechSTTBaseURL = "speech.stt_endpoint"
	keySpeechSTTAPIKey  = "speech.stt_api_key"
	keySpeechTTSBaseURL = "speech.tts_endpoint"
	keySpeechAudioDir   = "speech.audio_dir"
)

// SettingsService manages backend settings on top of the config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := &domain.Settings{
		Scorer: domain.ScorerSettings{
			Endpoint:          s.configStore.GetString(keyScorerEndpoint),
			APIKey:            s.configStore.GetString(keyScorerAPIKey),
			RequestsPerSecond: s.configStore.GetFloat(keyScorerRPS),
		},
		Generator: domain.GeneratorSettings{
			Provider: domain.InferenceProvider(s.configStore.GetString(keyGenProvider)),
			Endpoint: s.configStore.GetString(keyGenEndpoint),
			APIKey:   s.configStore.GetString(keyGenAPIKey),
		},
		Speech: domain.SpeechSettings{
			STTEndpoint: s.configStore.GetString(keySpeechSTTBaseURL),
			STTAPIKey:   s.configStore.GetString(keySpeechSTTAPIKey),
			TTSEndpoint: s.configStore.GetString(keySpeechTTSBaseURL),
			AudioDir:    s.configStore.GetString(keySpeechAudioDir),
		},
	}

	return settings, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings.Generator.Provider != "" && !settings.Generator.Provider.IsValid() {
		return fmt.Errorf("%w: unknown inference provider %q",
			domain.ErrInvalidInput, settings.Generator.Provider)
	}

	if err := s.configStore.Set(keyScorerEndpoint, settings.Scorer.Endpoint); err != nil {
		return fmt.Errorf("save scorer endpoint: %w", err)
	}
	if settings.Scorer.APIKey != "" {
		if err := s.configStore.Set(keyScorerAPIKey, settings.Scorer.APIKey); err != nil {
			return fmt.Errorf("save scorer api_key: %w", err)
		}
	}
	if settings.Scorer.RequestsPerSecond > 0 {
		if err := s.configStore.Set(keyScorerRPS, settings.Scorer.RequestsPerSecond); err != nil {
			return fmt.Errorf("save scorer rate: %w", err)
		}
	}

	if err := s.configStore.Set(keyGenProvider, settings.Generator.Provider.String()); err != nil {
		return fmt.Errorf("save generator provider: %w", err)
	}
	if err := s.configStore.Set(keyGenEndpoint, settings.Generator.Endpoint); err != nil {
		return fmt.Errorf("save generator endpoint: %w", err)
	}
	if settings.Generator.APIKey != "" {
		if err := s.configStore.Set(keyGenAPIKey, settings.Generator.APIKey); err != nil {
			return fmt.Errorf("save generator api_key: %w", err)
		}
	}

	if err := s.configStore.Set(keySpeechSTTBaseURL, settings.Speech.STTEndpoint); err != nil {
		return fmt.Errorf("save stt endpoint: %w", err)
	}
	if settings.Speech.STTAPIKey != "" {
		if err := s.configStore.Set(keySpeechSTTAPIKey, settings.Speech.STTAPIKey); err != nil {
			return fmt.Errorf("save stt api_key: %w", err)
		}
	}
	if err := s.configStore.Set(keySpeechTTSBaseURL, settings.Speech.TTSEndpoint); err != nil {
		return fmt.Errorf("save tts endpoint: %w", err)
	}
	if err := s.configStore.Set(keySpeechAudioDir, settings.Speech.AudioDir); err != nil {
		return fmt.Errorf("save audio dir: %w", err)
	}

	return nil
}
