package extractors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
)

// fakeExtractor is a test double with configurable claims.
type fakeExtractor struct {
	exts     []string
	priority int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (*driven.ExtractResult, error) {
	return &driven.ExtractResult{}, nil
}
func (f *fakeExtractor) SupportedExtensions() []string { return f.exts }
func (f *fakeExtractor) Priority() int                 { return f.priority }

func TestResolveByExtension(t *testing.T) {
	pdfExt := &fakeExtractor{exts: []string{"pdf"}, priority: 50}
	txtExt := &fakeExtractor{exts: []string{"txt"}, priority: 5}
	r := NewRegistry(pdfExt, txtExt)

	got, err := r.Resolve("/docs/moon_EN.PDF")
	require.NoError(t, err)
	assert.Same(t, driven.TextExtractor(pdfExt), got)

	got, err = r.Resolve("notes.txt")
	require.NoError(t, err)
	assert.Same(t, driven.TextExtractor(txtExt), got)
}

func TestResolvePrefersHigherPriority(t *testing.T) {
	low := &fakeExtractor{exts: []string{"pdf"}, priority: 5}
	high := &fakeExtractor{exts: []string{"pdf"}, priority: 50}
	r := NewRegistry(low, high)

	got, err := r.Resolve("a.pdf")
	require.NoError(t, err)
	assert.Same(t, driven.TextExtractor(high), got)
}

func TestResolveUnsupported(t *testing.T) {
	r := NewRegistry(&fakeExtractor{exts: []string{"pdf"}, priority: 50})

	_, err := r.Resolve("image.png")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestRegisterAddsExtractor(t *testing.T) {
	r := NewRegistry()
	_, err := r.Resolve("a.txt")
	require.Error(t, err)

	r.Register(&fakeExtractor{exts: []string{"txt"}, priority: 1})
	_, err = r.Resolve("a.txt")
	assert.NoError(t, err)
}
