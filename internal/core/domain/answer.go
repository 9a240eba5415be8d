package domain

// Sentinel answer texts returned when no extraction could take place.
// These are well-formed results shown to the user, not errors.
const (
	emptyDocumentAnswer  = "The document is empty."
	noWindowsAnswer      = "The document appears to be empty."
	noConfidentAnswer    = "Sorry, I couldn't find a confident answer in the document."
	noContext            = "N/A"
	generatedContextNote = "Answer was generated, not extracted. The model used the full document as context."
)

// Candidate is a single scored answer span returned by an extractive
// scorer for one window. The scorer's raw output does not carry the
// window it was evaluated against; the answer pipeline attaches it.
type Candidate struct {
	// Answer is the extracted span text. May be empty when the model
	// signals "no answer in this window".
	Answer string

	// Score is the model confidence in [0, 1].
	Score float64

	// Context is the window text the candidate was extracted from.
	// Populated by the pipeline, not the scorer.
	Context string
}

// AnswerResult is the final outcome of answering a question against a
// document. It is immutable once returned.
type AnswerResult struct {
	// Answer is the answer text, or a sentinel phrase when none was found.
	Answer string `json:"answer"`

	// Score is the confidence in [0, 1]. Sentinel results carry 0;
	// generated answers carry a fixed 1.0.
	Score float64 `json:"score"`

	// Context is the window text the answer came from, "N/A" for
	// sentinel results, or an explanatory note for generated answers.
	Context string `json:"context"`

	// Generated is true when the answer came from the generative path.
	Generated bool `json:"generated"`
}

// IsSentinel reports whether the result represents "no answer available".
func (r AnswerResult) IsSentinel() bool {
	return r.Score == 0 && r.Context == noContext
}

// EmptyDocumentResult is returned when the supplied document text is
// missing or empty. This is a terminal short-circuit, not an error.
func EmptyDocumentResult() AnswerResult {
	return AnswerResult{Answer: emptyDocumentAnswer, Score: 0, Context: noContext}
}

// NoWindowsResult is returned when windowing produced zero windows.
func NoWindowsResult() AnswerResult {
	return AnswerResult{Answer: noWindowsAnswer, Score: 0, Context: noContext}
}

// NoConfidentAnswerResult is returned when every window was scored but no
// usable candidate remained after filtering.
func NoConfidentAnswerResult() AnswerResult {
	return AnswerResult{Answer: noConfidentAnswer, Score: 0, Context: noContext}
}

// GeneratedResult wraps a generative model's output. Confidence is fixed
// at 1.0 because generation carries no span-level score.
func GeneratedResult(answer string) AnswerResult {
	return AnswerResult{
		Answer:    answer,
		Score:     1.0,
		Context:   generatedContextNote,
		Generated: true,
	}
}
