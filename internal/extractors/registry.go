// Package extractors selects a text extractor for a source file.
package extractors

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
)

// Registry holds the available text extractors and resolves one per file.
type Registry struct {
	extractors []driven.TextExtractor
}

// NewRegistry creates a registry over the given extractors.
func NewRegistry(extractors ...driven.TextExtractor) *Registry {
	return &Registry{extractors: extractors}
}

// Register adds an extractor.
func (r *Registry) Register(e driven.TextExtractor) {
	r.extractors = append(r.extractors, e)
}

// Resolve picks the highest-priority extractor claiming the file's
// extension. Returns domain.ErrUnsupportedType when none does.
func (r *Registry) Resolve(path string) (driven.TextExtractor, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	var best driven.TextExtractor
	for _, e := range r.extractors {
		for _, supported := range e.SupportedExtensions() {
			if supported != ext {
				continue
			}
			if best == nil || e.Priority() > best.Priority() {
				best = e
			}
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: .%s", domain.ErrUnsupportedType, ext)
	}
	return best, nil
}
