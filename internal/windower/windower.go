// Package windower partitions document text into fixed-size overlapping
// windows for per-window extractive scoring.
package windower

import (
	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

// DefaultWindowSize is the default window length in runes.
const DefaultWindowSize = 512

// DefaultOverlap is the default number of runes shared between
// consecutive windows.
const DefaultOverlap = 100

// Windower produces overlapping windows over document text.
// Offsets and lengths are in runes so multi-byte scripts are never split
// mid-character.
type Windower struct {
	windowSize int
	overlap    int
}

// Option configures the windower.
type Option func(*Windower)

// WithWindowSize sets the window length in runes.
func WithWindowSize(size int) Option {
	return func(w *Windower) {
		if size > 0 {
			w.windowSize = size
		}
	}
}

// WithOverlap sets the overlap between consecutive windows in runes.
func WithOverlap(overlap int) Option {
	return func(w *Windower) {
		if overlap >= 0 {
			w.overlap = overlap
		}
	}
}

// New creates a windower with the given options.
func New(opts ...Option) *Windower {
	w := &Windower{
		windowSize: DefaultWindowSize,
		overlap:    DefaultOverlap,
	}

	for _, opt := range opts {
		opt(w)
	}

	// Overlap must stay strictly below the window size to guarantee
	// forward progress through the text.
	if w.overlap >= w.windowSize {
		w.overlap = w.windowSize / 4
	}

	return w
}

// WindowSize returns the configured window length in runes.
func (w *Windower) WindowSize() int {
	return w.windowSize
}

// Overlap returns the configured overlap in runes.
func (w *Windower) Overlap() int {
	return w.overlap
}

// Split partitions text into windows. Windows start at offset 0 and each
// advances by (windowSize - overlap); the final window is whatever
// remains and may be shorter. A trailing window that would consist only
// of the previous window's overlap is not produced. Empty text produces
// zero windows; for text of rune length L > overlap the window count is
// ceil((L-overlap)/(windowSize-overlap)), otherwise 1.
func (w *Windower) Split(text string) []domain.Window {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	total := len(runes)
	stride := w.windowSize - w.overlap

	windows := make([]domain.Window, 0, total/stride+1)

	for start, position := 0, 0; ; start, position = start+stride, position+1 {
		end := start + w.windowSize
		if end > total {
			end = total
		}

		windows = append(windows, domain.Window{
			Start:    start,
			Text:     string(runes[start:end]),
			Position: position,
		})

		// The next window would add nothing beyond overlap once its
		// start passes total-overlap.
		if start+stride >= total-w.overlap {
			break
		}
	}

	return windows
}
