package driving

import "github.com/voqa-labs/voqa-cli/internal/core/domain"

// AnswerProvider builds answer services per language configuration.
// Surfaces resolve the user's language selection through this instead of
// holding one service per language themselves.
type AnswerProvider interface {
	// For returns an answer service wired with the engines the language
	// configuration calls for. Engine construction validates backend
	// connectivity; an unreachable backend is an error here, not at
	// question time.
	For(cfg domain.LanguageConfig) (AnswerService, error)
}
