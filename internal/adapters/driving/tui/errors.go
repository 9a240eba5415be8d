package tui

import "errors"

// ErrMissingAnswerProvider is returned when the answer provider is not provided.
var ErrMissingAnswerProvider = errors.New("tui: answer provider is required")

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("tui: document service is required")

// ErrMissingEvaluationService is returned when the evaluation service is not provided.
var ErrMissingEvaluationService = errors.New("tui: evaluation service is required")

// ErrMissingHistoryService is returned when the history service is not provided.
var ErrMissingHistoryService = errors.New("tui: history service is required")
