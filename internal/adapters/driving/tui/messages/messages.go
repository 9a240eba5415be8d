// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewAsk is the question input and answer view.
	ViewAsk
	// ViewDocuments lists loaded documents.
	ViewDocuments
	// ViewHistory lists answered queries.
	ViewHistory
	// ViewRate is the manual rating view for one answered query.
	ViewRate
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewAsk:
		return "ask"
	case ViewDocuments:
		return "documents"
	case ViewHistory:
		return "history"
	case ViewRate:
		return "rate"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// AnswerCompleted carries an answered query back to the model.
type AnswerCompleted struct {
	Record *domain.QueryRecord
	Err    error
}

// DocumentsLoaded carries the list of stored documents.
type DocumentsLoaded struct {
	Documents []domain.Document
	Err       error
}

// DocumentSelected signals a document was chosen as the question target.
type DocumentSelected struct {
	Document domain.Document
}

// HistoryLoaded carries the most recent answered queries.
type HistoryLoaded struct {
	Queries []domain.QueryRecord
	Err     error
}

// QuerySelected signals an answered query was chosen for rating.
type QuerySelected struct {
	Query domain.QueryRecord
}

// RatingSaved signals a manual rating was persisted.
type RatingSaved struct {
	QueryID string
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
