package hf

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
)

// Ensure Scorer implements the interface.
var _ driven.WindowScorer = (*Scorer)(nil)

// Scorer runs an extractive question-answering model over one window of
// context per call.
type Scorer struct {
	client *client
}

// qaRequest is the question-answering task request format.
type qaRequest struct {
	Inputs     qaInputs     `json:"inputs"`
	Parameters qaParameters `json:"parameters"`
}

type qaInputs struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

type qaParameters struct {
	TopK int `json:"top_k"`

	// HandleImpossibleAnswer lets the model return an empty span instead
	// of forcing a low-quality guess when the window holds no answer.
	HandleImpossibleAnswer bool `json:"handle_impossible_answer"`
}

// qaAnswer is one span in the question-answering response.
type qaAnswer struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
}

// NewScorer creates an extractive scorer for the configured model.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{client: newClient(cfg)}
}

// Score evaluates the question against the window text and returns up to
// driven.MaxCandidatesPerWindow candidates. Candidates come back without
// Context; the answer pipeline attaches it.
func (s *Scorer) Score(ctx context.Context, question, window string) ([]domain.Candidate, error) {
	data, err := s.client.post(ctx, qaRequest{
		Inputs: qaInputs{Question: question, Context: window},
		Parameters: qaParameters{
			TopK:                   driven.MaxCandidatesPerWindow,
			HandleImpossibleAnswer: true,
		},
	})
	if err != nil {
		return nil, err
	}

	answers, err := decodeAnswers(data)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Candidate, 0, len(answers))
	for _, a := range answers {
		candidates = append(candidates, domain.Candidate{
			Answer: a.Answer,
			Score:  a.Score,
		})
		if len(candidates) == driven.MaxCandidatesPerWindow {
			break
		}
	}
	return candidates, nil
}

// decodeAnswers accepts both response shapes: an array for top_k > 1 and
// a bare object some deployments return for a single span.
func decodeAnswers(data []byte) ([]qaAnswer, error) {
	var answers []qaAnswer
	if err := json.Unmarshal(data, &answers); err == nil {
		return answers, nil
	}

	var single qaAnswer
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return []qaAnswer{single}, nil
}

// ModelName returns the model identifier being used.
func (s *Scorer) ModelName() string {
	return s.client.model
}

// Ping validates the backend is reachable.
func (s *Scorer) Ping(ctx context.Context) error {
	return s.client.ping(ctx)
}

// Close releases resources.
func (s *Scorer) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
