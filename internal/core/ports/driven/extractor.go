package driven

import "context"

// ExtractResult is the outcome of text extraction from one file.
type ExtractResult struct {
	// Text is the extracted plain text.
	Text string

	// Title is a best-effort document title, when the format carries one.
	Title string

	// Pages is the page count, when the format has pages.
	Pages int
}

// TextExtractor converts a source file into plain text.
//
// Extraction failure yields an error wrapping domain.ErrExtractionFailed;
// callers convert it into an absent-document state instead of crashing.
type TextExtractor interface {
	// Extract reads the file at path and returns its text.
	Extract(ctx context.Context, path string) (*ExtractResult, error)

	// SupportedExtensions returns lowercase extensions without the dot.
	SupportedExtensions() []string

	// Priority orders extractors when several claim the same extension.
	// Higher wins.
	Priority() int
}
