package driving

import (
	"context"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

// DocumentService loads and stores extracted documents.
type DocumentService interface {
	// Load extracts text from the file at path, stores the resulting
	// document under the given language, and returns it. An unreadable
	// or empty file yields a document with empty text, not an error,
	// unless the file itself is missing.
	Load(ctx context.Context, path, language string) (*domain.Document, error)

	// Extract runs text extraction on the file at path without storing
	// the result. The returned document has no ID.
	Extract(ctx context.Context, path string) (*domain.Document, error)

	// Get retrieves a stored document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all stored documents.
	List(ctx context.Context) ([]domain.Document, error)
}
