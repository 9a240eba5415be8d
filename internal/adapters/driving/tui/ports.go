// Package tui provides an interactive terminal user interface for voqa.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Answers builds per-language answering services.
	Answers driving.AnswerProvider

	// Documents loads and lists extracted documents.
	Documents driving.DocumentService

	// Evaluation records manual ratings and computes overlap metrics.
	Evaluation driving.EvaluationService

	// History exposes the persisted query log.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Answers == nil {
		return ErrMissingAnswerProvider
	}
	if p.Documents == nil {
		return ErrMissingDocumentService
	}
	if p.Evaluation == nil {
		return ErrMissingEvaluationService
	}
	if p.History == nil {
		return ErrMissingHistoryService
	}
	return nil
}
