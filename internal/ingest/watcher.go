// Package ingest watches directories for dropped documents and loads
// them automatically.
package ingest

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
	"github.com/voqa-labs/voqa-cli/internal/logger"
)

// DefaultDebounce coalesces the write bursts editors and downloaders
// produce while a file is still being written.
const DefaultDebounce = 500 * time.Millisecond

// Config holds configuration for the directory watcher.
type Config struct {
	// Roots are the directories to watch, recursively.
	Roots []string

	// Extensions are the file extensions to ingest, lowercase without
	// the dot. Empty means the extractor registry's supported set,
	// which the caller passes in.
	Extensions []string

	// Language is the language key loaded documents are stored under.
	Language string

	// InitialScan loads files already present under the roots on start.
	InitialScan bool

	// Debounce is how long to wait after the last event for a path
	// before ingesting it (default: 500ms).
	Debounce time.Duration
}

// Watcher ingests documents dropped into watched directories.
type Watcher struct {
	cfg       Config
	documents driving.DocumentService
	exts      map[string]struct{}
}

// NewWatcher creates a directory watcher that loads documents through
// the given service.
func NewWatcher(cfg Config, documents driving.DocumentService) (*Watcher, error) {
	if len(cfg.Roots) == 0 {
		return nil, errors.New("no directories to watch")
	}
	if len(cfg.Extensions) == 0 {
		return nil, errors.New("no extensions to watch for")
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = DefaultDebounce
	}

	exts := make(map[string]struct{}, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		exts[strings.ToLower(ext)] = struct{}{}
	}

	return &Watcher{
		cfg:       cfg,
		documents: documents,
		exts:      exts,
	}, nil
}

// Run watches until the context is cancelled. Each settled file event
// triggers a document load; load failures are logged and do not stop
// the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	for _, root := range w.cfg.Roots {
		if err := w.addRoot(ctx, fsw, root); err != nil {
			return err
		}
	}

	var timer *time.Timer
	pending := make(map[string]struct{})

	ingestPending := func() {
		for path := range pending {
			delete(pending, path)
			w.ingest(ctx, path)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			// A created directory needs watching too.
			if event.Op.Has(fsnotify.Create) {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					_ = fsw.Add(event.Name)
				}
			}

			if !w.wanted(event.Name) {
				continue
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Rename) {
				continue
			}

			pending[event.Name] = struct{}{}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.cfg.Debounce, ingestPending)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// addRoot registers root and its subdirectories, optionally ingesting
// existing files.
func (w *Watcher) addRoot(ctx context.Context, fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		if w.cfg.InitialScan && w.wanted(path) {
			w.ingest(ctx, path)
		}
		return nil
	})
}

// ingest loads one file as a document.
func (w *Watcher) ingest(ctx context.Context, path string) {
	doc, err := w.documents.Load(ctx, path, w.cfg.Language)
	if err != nil {
		logger.Warn("Failed to ingest %s: %v", path, err)
		return
	}
	logger.Info("Ingested %s (%d pages, %d characters)", path, doc.Pages, len(doc.Text))
}

// wanted reports whether the path has a watched extension.
func (w *Watcher) wanted(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	_, ok := w.exts[ext]
	return ok
}
