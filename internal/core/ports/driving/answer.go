package driving

import (
	"context"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

// AskOptions configures one answering run.
type AskOptions struct {
	// Language is the display name of the configured language.
	Language string

	// Spoken marks the question as transcribed rather than typed.
	Spoken bool

	// Speak requests a synthesized audio artifact for the answer.
	Speak bool

	// Record persists the query to history. Defaults to true in services.
	Record *bool
}

// AnswerService answers questions against extracted documents.
type AnswerService interface {
	// Ask answers a question against the document, choosing the
	// extractive or generative path from the language configuration,
	// and returns the persisted query record.
	Ask(ctx context.Context, question string, doc *domain.Document, opts AskOptions) (*domain.QueryRecord, error)

	// FindAnswer runs the extractive windowing procedure directly and
	// returns the best candidate or a sentinel result. It never returns
	// an error for scorer failures; those are absorbed per window.
	FindAnswer(ctx context.Context, question, documentText string) domain.AnswerResult
}
