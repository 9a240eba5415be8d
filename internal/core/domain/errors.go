package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a file type no extractor can handle.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrUnknownLanguage indicates a language with no configuration entry.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrScorerUnavailable indicates the extractive scorer is not configured
	// or unreachable. Extractive answering is disabled without it.
	ErrScorerUnavailable = errors.New("scorer unavailable")

	// ErrGeneratorUnavailable indicates the generative model service is not
	// configured or unreachable.
	ErrGeneratorUnavailable = errors.New("generator unavailable")

	// ErrExtractionFailed indicates text could not be extracted from a file.
	// Callers treat this as an absent document, not a fatal condition.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrTranscriptionFailed indicates speech could not be transcribed.
	// The caller should prompt for the question again.
	ErrTranscriptionFailed = errors.New("transcription failed")

	// ErrSynthesisFailed indicates text-to-speech synthesis failed.
	// The textual answer is still valid when this occurs.
	ErrSynthesisFailed = errors.New("synthesis failed")

	// ErrNoReference indicates an overlap evaluation was requested without
	// a reference answer.
	ErrNoReference = errors.New("no reference answer")
)
