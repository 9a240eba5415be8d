package domain

import "time"

// QueryRecord is one answered question, persisted for history browsing
// and manual evaluation.
type QueryRecord struct {
	// ID is the unique identifier for the query.
	ID string

	// DocumentID links to the document the question was asked against.
	DocumentID string

	// Language is the language key the query ran under.
	Language string

	// Question is the question text (typed or transcribed).
	Question string

	// Spoken is true when the question arrived through transcription.
	Spoken bool

	// Result is the answer returned to the user.
	Result AnswerResult

	// AudioPath is the synthesized answer artifact, when one was produced.
	AudioPath string

	// CreatedAt is when the query was answered.
	CreatedAt time.Time
}
