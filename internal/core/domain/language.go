package domain

const unknownDescription = "Unknown"

// QAMode defines how a question is answered against a document.
type QAMode string

// Available answering modes.
const (
	// QAModeExtractive selects a verbatim span from windowed context,
	// with a model confidence score per candidate.
	QAModeExtractive QAMode = "extractive"

	// QAModeGenerative produces free-form text conditioned on the full
	// document, without span-level confidence.
	QAModeGenerative QAMode = "generative"
)

// IsValid returns true if the mode is recognised.
func (m QAMode) IsValid() bool {
	switch m {
	case QAModeExtractive, QAModeGenerative:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m QAMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m QAMode) Description() string {
	switch m {
	case QAModeExtractive:
		return "Extractive (span selection with confidence)"
	case QAModeGenerative:
		return "Generative (free-form, full document context)"
	default:
		return unknownDescription
	}
}

// LanguageConfig binds a language to its question-answering model and
// speech settings. The answering mode is part of the static configuration;
// it is never inferred from the loaded model artifact.
type LanguageConfig struct {
	// Name is the display name, e.g. "English".
	Name string

	// Model is the pretrained model identifier, e.g. "google/flan-t5-base".
	Model string

	// Mode selects extractive or generative answering for this language.
	Mode QAMode

	// Code is the two-letter language code used for TTS, e.g. "en".
	Code string

	// STTLocale is the locale hint for transcription, e.g. "en-US".
	STTLocale string

	// DefaultPDF is the bundled sample document path, if any.
	DefaultPDF string
}

// DefaultLanguages returns the built-in language table. Entries can be
// overridden through the config store.
func DefaultLanguages() []LanguageConfig {
	return []LanguageConfig{
		{
			Name:       "English",
			Model:      "google/flan-t5-base",
			Mode:       QAModeGenerative,
			Code:       "en",
			STTLocale:  "en-US",
			DefaultPDF: "assets/pdfs/moon_en.pdf",
		},
		{
			Name:       "Sanskrit",
			Model:      "google/muril-base-cased",
			Mode:       QAModeExtractive,
			Code:       "sa",
			STTLocale:  "sa-IN",
			DefaultPDF: "assets/pdfs/moon_sa.pdf",
		},
		{
			Name:       "Japanese",
			Model:      "cl-tohoku/bert-base-japanese-whole-word-masking",
			Mode:       QAModeExtractive,
			Code:       "ja",
			STTLocale:  "ja-JP",
			DefaultPDF: "assets/pdfs/moon_ja.pdf",
		},
	}
}

// FindLanguage looks up a language by display name (case-sensitive) in the
// given table. Returns ErrUnknownLanguage when absent.
func FindLanguage(table []LanguageConfig, name string) (LanguageConfig, error) {
	for _, lc := range table {
		if lc.Name == name {
			return lc, nil
		}
	}
	return LanguageConfig{}, ErrUnknownLanguage
}
