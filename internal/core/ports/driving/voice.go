package driving

import "context"

// VoiceService orchestrates speech input and output.
type VoiceService interface {
	// Transcribe converts the audio file at path into question text for
	// the given language. An unintelligible recording or service error
	// returns "" with an error wrapping domain.ErrTranscriptionFailed;
	// callers prompt the user again rather than aborting the session.
	Transcribe(ctx context.Context, path, language string) (string, error)

	// Speak synthesizes the answer text for the given language and
	// returns the audio artifact path. Synthesis failure returns "" with
	// an error wrapping domain.ErrSynthesisFailed; the textual answer
	// remains usable.
	Speak(ctx context.Context, text, language string) (string, error)
}
