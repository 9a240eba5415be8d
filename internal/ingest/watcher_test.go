package ingest

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

// mockDocuments records Load calls.
type mockDocuments struct {
	mu     sync.Mutex
	loaded []string
}

func (m *mockDocuments) Load(_ context.Context, path, _ string) (*domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loaded = append(m.loaded, path)
	return &domain.Document{ID: "doc", URI: path, Text: "text"}, nil
}

func (m *mockDocuments) Extract(_ context.Context, path string) (*domain.Document, error) {
	return &domain.Document{URI: path, Text: "text"}, nil
}

func (m *mockDocuments) Get(context.Context, string) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}

func (m *mockDocuments) List(context.Context) ([]domain.Document, error) {
	return nil, nil
}

func (m *mockDocuments) loadedPaths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loaded...)
}

func TestNewWatcherValidation(t *testing.T) {
	docs := &mockDocuments{}

	_, err := NewWatcher(Config{Extensions: []string{"pdf"}}, docs)
	require.Error(t, err, "missing roots")

	_, err = NewWatcher(Config{Roots: []string{t.TempDir()}}, docs)
	require.Error(t, err, "missing extensions")

	w, err := NewWatcher(Config{Roots: []string{t.TempDir()}, Extensions: []string{"pdf"}}, docs)
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.cfg.Debounce)
}

func TestInitialScanIngestsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.zip"), []byte("x"), 0o644))

	docs := &mockDocuments{}
	w, err := NewWatcher(Config{
		Roots:       []string{dir},
		Extensions:  []string{"pdf", "txt"},
		Language:    "english",
		InitialScan: true,
		Debounce:    10 * time.Millisecond,
	}, docs)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	err = w.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	loaded := docs.loadedPaths()
	require.Len(t, loaded, 1)
	assert.Equal(t, filepath.Join(dir, "a.pdf"), loaded[0])
}

func TestWatcherIngestsNewFiles(t *testing.T) {
	dir := t.TempDir()
	docs := &mockDocuments{}
	w, err := NewWatcher(Config{
		Roots:      []string{dir},
		Extensions: []string{"txt"},
		Language:   "english",
		Debounce:   20 * time.Millisecond,
	}, docs)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()

	// Let the watcher register the root before writing.
	time.Sleep(50 * time.Millisecond)
	path := filepath.Join(dir, "dropped.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	require.Eventually(t, func() bool {
		return len(docs.loadedPaths()) >= 1
	}, 2*time.Second, 20*time.Millisecond)

	assert.Contains(t, docs.loadedPaths(), path)
	cancel()
	<-done
}

func TestWanted(t *testing.T) {
	docs := &mockDocuments{}
	w, err := NewWatcher(Config{Roots: []string{t.TempDir()}, Extensions: []string{"pdf", "TXT"}}, docs)
	require.NoError(t, err)

	assert.True(t, w.wanted("/drop/report.pdf"))
	assert.True(t, w.wanted("/drop/NOTES.txt"), "extension match is case-insensitive")
	assert.False(t, w.wanted("/drop/archive.zip"))
	assert.False(t, w.wanted("/drop/noext"))
}
