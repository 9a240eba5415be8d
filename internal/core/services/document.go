package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
	"github.com/voqa-labs/voqa-cli/internal/extractors"
	"github.com/voqa-labs/voqa-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService extracts text from source files and persists the
// resulting documents.
type DocumentService struct {
	registry *extractors.Registry
	store    driven.DocumentStore
}

// NewDocumentService creates a document service.
func NewDocumentService(registry *extractors.Registry, store driven.DocumentStore) *DocumentService {
	return &DocumentService{
		registry: registry,
		store:    store,
	}
}

// Load extracts text from the file at path and stores the document.
//
// A missing file is an error. An extraction failure is not: it yields a
// stored document with empty text, which the answer pipeline reports as
// an empty document rather than crashing the session.
func (s *DocumentService) Load(ctx context.Context, path, language string) (*domain.Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}

	extractor, err := s.registry.Resolve(path)
	if err != nil {
		return nil, fmt.Errorf("resolving extractor for %s: %w", path, err)
	}

	result, err := extractor.Extract(ctx, path)
	if err != nil {
		logger.Warn("extract %s: %v", path, err)
		result = &driven.ExtractResult{}
	}

	title := result.Title
	if title == "" {
		title = filepath.Base(path)
	}

	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        uuid.New().String(),
		URI:       path,
		Title:     title,
		Language:  language,
		Text:      result.Text,
		Pages:     result.Pages,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Re-extracting the same file updates the existing record.
	if existing, getErr := s.store.GetDocumentByURI(ctx, path); getErr == nil {
		doc.ID = existing.ID
		doc.CreatedAt = existing.CreatedAt
	} else if !errors.Is(getErr, domain.ErrNotFound) {
		return nil, fmt.Errorf("looking up document: %w", getErr)
	}

	if err := s.store.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}

	logger.Info("Loaded %s (%d pages, %d chars)", path, doc.Pages, len(doc.Text))
	return doc, nil
}

// Extract runs text extraction on the file at path without persisting
// anything. Unlike Load, an extraction failure is surfaced so the caller
// can see why the file produced no text.
func (s *DocumentService) Extract(ctx context.Context, path string) (*domain.Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}

	extractor, err := s.registry.Resolve(path)
	if err != nil {
		return nil, fmt.Errorf("resolving extractor for %s: %w", path, err)
	}

	result, err := extractor.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", path, err)
	}

	title := result.Title
	if title == "" {
		title = filepath.Base(path)
	}

	return &domain.Document{
		URI:   path,
		Title: title,
		Text:  result.Text,
		Pages: result.Pages,
	}, nil
}

// Get retrieves a stored document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.store.GetDocument(ctx, id)
}

// List returns all stored documents.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.store.ListDocuments(ctx)
}
