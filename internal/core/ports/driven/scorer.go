package driven

import (
	"context"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

// MaxCandidatesPerWindow is the number of candidates requested from the
// scorer for each window.
const MaxCandidatesPerWindow = 3

// WindowScorer scores a question against one window of document text.
//
// A call returns at most MaxCandidatesPerWindow candidates. Returning zero
// candidates is a legitimate outcome meaning "no answer in this window";
// implementations must be configured to allow that rather than forcing a
// low-quality guess. A call may fail transiently; the answer pipeline
// absorbs per-window failures and continues with the next window.
//
// Candidates come back without Context set. The pipeline attaches the
// window text before aggregation.
type WindowScorer interface {
	// Score evaluates the question against the window text.
	Score(ctx context.Context, question, window string) ([]domain.Candidate, error)

	// ModelName returns the model identifier being used.
	ModelName() string

	// Ping validates the backend is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// AnswerGenerator produces a free-form answer from the full document text
// in a single invocation. Used for the generative answering mode.
type AnswerGenerator interface {
	// Generate answers the question using the document text as context.
	Generate(ctx context.Context, question, documentText string) (string, error)

	// ModelName returns the model identifier being used.
	ModelName() string

	// Ping validates the backend is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// EngineFactory constructs inference backends for a language configuration.
// The caller builds engines once per selected language and injects them
// into the answer pipeline; the pipeline itself holds no model state and
// no caching policy.
type EngineFactory interface {
	// Scorer returns a WindowScorer for the language's extractive model.
	Scorer(cfg domain.LanguageConfig) (WindowScorer, error)

	// Generator returns an AnswerGenerator for the language's generative model.
	Generator(cfg domain.LanguageConfig) (AnswerGenerator, error)
}
