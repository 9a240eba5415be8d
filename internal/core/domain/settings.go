package domain

// InferenceProvider identifies a model inference backend.
type InferenceProvider string

// Available inference providers.
const (
	// ProviderHuggingFace is a HuggingFace-compatible inference API.
	ProviderHuggingFace InferenceProvider = "huggingface"

	// ProviderOllama is a local Ollama instance (generative mode only).
	ProviderOllama InferenceProvider = "ollama"
)

// IsValid returns true if the provider is recognised.
func (p InferenceProvider) IsValid() bool {
	switch p {
	case ProviderHuggingFace, ProviderOllama:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p InferenceProvider) RequiresAPIKey() bool {
	return p == ProviderHuggingFace
}

// IsLocal returns true if this provider runs locally.
func (p InferenceProvider) IsLocal() bool {
	return p == ProviderOllama
}

// String returns the string representation.
func (p InferenceProvider) String() string {
	return string(p)
}

// ScorerSettings configures the extractive QA scoring backend.
type ScorerSettings struct {
	// Endpoint is the inference API base URL.
	Endpoint string

	// APIKey authenticates inference requests, when required.
	APIKey string

	// RequestsPerSecond caps the per-window scoring call rate.
	// Zero means the adapter default.
	RequestsPerSecond float64
}

// IsConfigured returns true when the scorer can be constructed.
func (s *ScorerSettings) IsConfigured() bool {
	return s != nil && s.Endpoint != ""
}

// GeneratorSettings configures the generative answering backend.
type GeneratorSettings struct {
	// Provider selects the backend implementation.
	Provider InferenceProvider

	// Endpoint is the inference API base URL.
	Endpoint string

	// APIKey authenticates inference requests, when required.
	APIKey string
}

// IsConfigured returns true when the generator can be constructed.
func (s *GeneratorSettings) IsConfigured() bool {
	return s != nil && s.Endpoint != "" && s.Provider.IsValid()
}

// SpeechSettings configures transcription and synthesis.
type SpeechSettings struct {
	// STTEndpoint is the transcription API base URL.
	STTEndpoint string

	// STTAPIKey authenticates transcription requests, when required.
	STTAPIKey string

	// TTSEndpoint is the synthesis endpoint base URL. Empty selects the
	// adapter default.
	TTSEndpoint string

	// AudioDir is where synthesized answer artifacts are written.
	// Empty selects a per-user temp directory.
	AudioDir string
}

// Settings aggregates all backend configuration.
type Settings struct {
	Scorer    ScorerSettings
	Generator GeneratorSettings
	Speech    SpeechSettings
}
