package domain

import "time"

// OverlapScore holds precision, recall and F-measure for one overlap metric.
type OverlapScore struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	FMeasure  float64 `json:"f_measure"`
}

// OverlapReport is an automated n-gram overlap evaluation of a candidate
// answer against a reference answer: unigram overlap, bigram overlap, and
// longest-common-subsequence overlap.
type OverlapReport struct {
	Unigram OverlapScore `json:"unigram"`
	Bigram  OverlapScore `json:"bigram"`
	LCS     OverlapScore `json:"lcs"`
}

// Rating bounds for manual evaluation sliders.
const (
	RatingMin = 1
	RatingMax = 5
)

// HumanRating is a manual 1-5 evaluation of one answered query.
type HumanRating struct {
	// QueryID links to the rated QueryRecord.
	QueryID string

	// Correctness: is the answer factually correct according to the text?
	Correctness int

	// Fluency: is the answer grammatical and easy to understand?
	Fluency int

	// VoiceClarity: how clear and natural was the pronunciation?
	VoiceClarity int

	// CreatedAt is when the rating was recorded.
	CreatedAt time.Time
}

// Validate checks that all rating values are within bounds.
func (r HumanRating) Validate() error {
	for _, v := range []int{r.Correctness, r.Fluency, r.VoiceClarity} {
		if v < RatingMin || v > RatingMax {
			return ErrInvalidInput
		}
	}
	return nil
}
