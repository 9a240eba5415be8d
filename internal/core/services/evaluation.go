package services

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
)

// Ensure EvaluationService implements the interface.
var _ driving.EvaluationService = (*EvaluationService)(nil)

// EvaluationService computes n-gram overlap metrics against a reference
// answer and records manual ratings.
type EvaluationService struct {
	queries driven.QueryStore
}

// NewEvaluationService creates an evaluation service. queries may be nil
// when rating persistence is not needed.
func NewEvaluationService(queries driven.QueryStore) *EvaluationService {
	return &EvaluationService{queries: queries}
}

// Score computes unigram, bigram and longest-common-subsequence overlap
// of the candidate answer against the reference.
func (s *EvaluationService) Score(reference, candidate string) (domain.OverlapReport, error) {
	if strings.TrimSpace(reference) == "" {
		return domain.OverlapReport{}, domain.ErrNoReference
	}

	refTokens := tokenize(reference)
	candTokens := tokenize(candidate)

	return domain.OverlapReport{
		Unigram: ngramOverlap(refTokens, candTokens, 1),
		Bigram:  ngramOverlap(refTokens, candTokens, 2),
		LCS:     lcsOverlap(refTokens, candTokens),
	}, nil
}

// Rate stores a manual rating for an answered query.
func (s *EvaluationService) Rate(ctx context.Context, rating domain.HumanRating) error {
	if err := rating.Validate(); err != nil {
		return err
	}
	if rating.QueryID == "" {
		return domain.ErrInvalidInput
	}
	if s.queries == nil {
		return domain.ErrNotFound
	}

	if _, err := s.queries.GetQuery(ctx, rating.QueryID); err != nil {
		return err
	}

	rating.CreatedAt = time.Now().UTC()
	return s.queries.SaveRating(ctx, &rating)
}

// RatingFor retrieves the stored rating for a query, if any.
func (s *EvaluationService) RatingFor(ctx context.Context, queryID string) (*domain.HumanRating, error) {
	if s.queries == nil {
		return nil, domain.ErrNotFound
	}
	return s.queries.GetRating(ctx, queryID)
}

// separatorRegex matches sequences of characters that are neither letters
// nor digits in any script.
var separatorRegex = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// tokenize lowercases text and splits it into tokens. Scripts written
// without word separators (Han, Hiragana, Katakana) are split into single
// runes so overlap metrics remain meaningful for Japanese answers.
func tokenize(text string) []string {
	parts := separatorRegex.Split(strings.ToLower(text), -1)

	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		if containsCJK(part) {
			for _, r := range part {
				tokens = append(tokens, string(r))
			}
			continue
		}
		tokens = append(tokens, part)
	}
	return tokens
}

func containsCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) {
			return true
		}
	}
	return false
}

// ngrams returns the n-gram multiset of tokens as joined strings.
func ngrams(tokens []string, n int) map[string]int {
	grams := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		grams[strings.Join(tokens[i:i+n], "\x00")]++
	}
	return grams
}

// ngramOverlap computes clipped n-gram precision/recall/F of candidate
// against reference.
func ngramOverlap(ref, cand []string, n int) domain.OverlapScore {
	refGrams := ngrams(ref, n)
	candGrams := ngrams(cand, n)

	refTotal := 0
	for _, c := range refGrams {
		refTotal += c
	}
	candTotal := 0
	for _, c := range candGrams {
		candTotal += c
	}

	overlap := 0
	for g, c := range candGrams {
		if rc, ok := refGrams[g]; ok {
			overlap += min(c, rc)
		}
	}

	return overlapScore(overlap, candTotal, refTotal)
}

// lcsOverlap computes precision/recall/F from the longest common
// subsequence of the token sequences.
func lcsOverlap(ref, cand []string) domain.OverlapScore {
	length := lcsLength(ref, cand)
	return overlapScore(length, len(cand), len(ref))
}

// lcsLength is the classic dynamic-programming LCS over token slices,
// kept to two rows.
func lcsLength(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func overlapScore(overlap, candTotal, refTotal int) domain.OverlapScore {
	var s domain.OverlapScore
	if candTotal > 0 {
		s.Precision = float64(overlap) / float64(candTotal)
	}
	if refTotal > 0 {
		s.Recall = float64(overlap) / float64(refTotal)
	}
	if s.Precision+s.Recall > 0 {
		s.FMeasure = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
	}
	return s
}
