package driven

import "context"

// Transcriber converts recorded speech into text.
type Transcriber interface {
	// Transcribe converts the audio file at path into text.
	// locale is a hint such as "en-US"; implementations may use only the
	// language part. Failure wraps domain.ErrTranscriptionFailed.
	Transcribe(ctx context.Context, path, locale string) (string, error)

	// Close releases resources.
	Close() error
}

// Synthesizer converts answer text into a playable audio artifact.
type Synthesizer interface {
	// Synthesize renders text in the given language code (e.g. "ja") and
	// returns the path of the written audio file. Failure wraps
	// domain.ErrSynthesisFailed; the textual answer remains valid.
	Synthesize(ctx context.Context, text, langCode string) (string, error)

	// Close releases resources.
	Close() error
}
