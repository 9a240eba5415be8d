package hf

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
)

// Ensure Generator implements the interface.
var _ driven.AnswerGenerator = (*Generator)(nil)

// maxGeneratedLength bounds the generated answer in tokens.
const maxGeneratedLength = 200

// Generator answers questions with a text-to-text generation model
// (e.g. flan-t5) conditioned on the full document.
type Generator struct {
	client *client
}

// generateRequest is the text-to-text generation request format.
type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxLength int  `json:"max_length"`
	NumBeams  int  `json:"num_beams"`
	EarlyStop bool `json:"early_stopping"`
}

// generateResponse is one entry of the generation response array.
type generateResponse struct {
	GeneratedText string `json:"generated_text"`
}

// NewGenerator creates a generative answerer for the configured model.
func NewGenerator(cfg Config) *Generator {
	return &Generator{client: newClient(cfg)}
}

// Generate answers the question using the document text as context.
func (g *Generator) Generate(ctx context.Context, question, documentText string) (string, error) {
	prompt := fmt.Sprintf("question: %s context: %s", question, documentText)

	data, err := g.client.post(ctx, generateRequest{
		Inputs: prompt,
		Parameters: generateParameters{
			MaxLength: maxGeneratedLength,
			NumBeams:  4,
			EarlyStop: true,
		},
	})
	if err != nil {
		return "", err
	}

	var responses []generateResponse
	if err := json.Unmarshal(data, &responses); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(responses) == 0 {
		return "", nil
	}
	return responses[0].GeneratedText, nil
}

// ModelName returns the model identifier being used.
func (g *Generator) ModelName() string {
	return g.client.model
}

// Ping validates the backend is reachable.
func (g *Generator) Ping(ctx context.Context) error {
	return g.client.ping(ctx)
}

// Close releases resources.
func (g *Generator) Close() error {
	return nil
}
