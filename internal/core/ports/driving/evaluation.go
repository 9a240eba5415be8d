package driving

import (
	"context"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

// EvaluationService computes answer quality metrics and records manual
// ratings.
type EvaluationService interface {
	// Score computes unigram, bigram and LCS overlap of the candidate
	// answer against a reference answer. Returns domain.ErrNoReference
	// when the reference is empty.
	Score(reference, candidate string) (domain.OverlapReport, error)

	// Rate stores a manual rating for an answered query.
	Rate(ctx context.Context, rating domain.HumanRating) error

	// RatingFor retrieves the stored rating for a query, if any.
	RatingFor(ctx context.Context, queryID string) (*domain.HumanRating, error)
}
