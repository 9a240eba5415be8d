package driving

import "github.com/voqa-labs/voqa-cli/internal/core/domain"

// SettingsService manages persistent backend configuration.
type SettingsService interface {
	// Get retrieves the current settings, with defaults applied.
	Get() (*domain.Settings, error)

	// Save persists settings.
	Save(settings *domain.Settings) error
}
