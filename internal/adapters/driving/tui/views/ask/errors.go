package ask

import "errors"

// Error definitions for the ask view.
var (
	// ErrNoAnswerProvider indicates that no answer provider was given.
	ErrNoAnswerProvider = errors.New("answer provider is required")

	// ErrNoDocumentService indicates that no document service was given.
	ErrNoDocumentService = errors.New("document service is required")
)
