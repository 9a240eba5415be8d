package mcp

import (
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Answers builds per-language answer services.
	Answers driving.AnswerProvider

	// Documents manages loaded documents.
	Documents driving.DocumentService

	// Evaluation scores answers against references.
	Evaluation driving.EvaluationService

	// History exposes answered queries.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Answers == nil {
		return ErrMissingAnswerProvider
	}
	if p.Documents == nil {
		return ErrMissingDocumentService
	}
	// Evaluation and History are optional
	return nil
}
