package domain

import "time"

// Document represents a source document after text extraction.
// It is the canonical representation handed to the answer pipeline.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// URI is the original location (file path, URL, etc).
	URI string

	// Title is the human-readable title.
	Title string

	// Language is the language key this document was loaded under.
	Language string

	// Text is the full extracted plain text. It may be empty when
	// extraction produced nothing; the answer pipeline treats that as a
	// normal "cannot proceed" state rather than an error.
	Text string

	// Pages is the page count reported by the extractor, when known.
	Pages int

	// CreatedAt is when the document was first extracted.
	CreatedAt time.Time

	// UpdatedAt is when the document was last re-extracted.
	UpdatedAt time.Time
}

// IsEmpty reports whether the document carries no usable text.
func (d *Document) IsEmpty() bool {
	return d == nil || d.Text == ""
}

// Window is a contiguous slice of document text used as the context for a
// single extractive scoring call. Consecutive windows overlap so an answer
// near a boundary is fully contained in at least one window.
type Window struct {
	// Start is the rune offset of the window within the document text.
	Start int

	// Text is the window content. The final window of a document may be
	// shorter than the configured window length.
	Text string

	// Position is the ordinal position within the document.
	Position int
}
