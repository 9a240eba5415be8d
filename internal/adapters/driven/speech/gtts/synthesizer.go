// Package gtts provides a text-to-speech adapter using the Google
// Translate TTS endpoint.
package gtts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
	"github.com/voqa-labs/voqa-cli/internal/logger"
)

// Ensure Synthesizer implements the interface.
var _ driven.Synthesizer = (*Synthesizer)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://translate.google.com"
	DefaultTimeout = 30 * time.Second
)

// maxChunkRunes is the longest text the endpoint accepts per request.
// Longer answers are split at rune boundaries and the MP3 frames
// concatenated, which players handle fine for MPEG streams.
const maxChunkRunes = 200

// Config holds configuration for the synthesizer.
type Config struct {
	// BaseURL is the TTS endpoint base URL.
	BaseURL string

	// OutputDir is where MP3 artifacts are written
	// (default: the system temp directory).
	OutputDir string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration
}

// Synthesizer converts answer text to spoken MP3 audio.
type Synthesizer struct {
	client    *http.Client
	baseURL   string
	outputDir string
}

// NewSynthesizer creates a new Google Translate TTS synthesizer.
func NewSynthesizer(cfg Config) *Synthesizer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = os.TempDir()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Synthesizer{
		client:    &http.Client{Timeout: cfg.Timeout},
		baseURL:   cfg.BaseURL,
		outputDir: cfg.OutputDir,
	}
}

// Synthesize speaks the text in the given language and returns the
// path of the MP3 artifact it wrote.
func (s *Synthesizer) Synthesize(ctx context.Context, text, langCode string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("nothing to synthesize")
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	name := fmt.Sprintf("response_%s_%d.mp3", langCode, time.Now().Unix())
	path := filepath.Join(s.outputDir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	defer out.Close()

	for _, chunk := range splitChunks(text, maxChunkRunes) {
		if err := s.fetchChunk(ctx, chunk, langCode, out); err != nil {
			out.Close()
			os.Remove(path)
			return "", err
		}
	}

	logger.Debug("Synthesized %d characters to %s", len([]rune(text)), path)
	return path, nil
}

// fetchChunk requests one chunk of speech and appends it to the file.
func (s *Synthesizer) fetchChunk(ctx context.Context, chunk, langCode string, out io.Writer) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", langCode)
	params.Set("q", chunk)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		s.baseURL+"/translate_tts?"+params.Encode(),
		http.NoBody,
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tts error (status %d)", resp.StatusCode)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write audio: %w", err)
	}
	return nil
}

// Close releases resources.
func (s *Synthesizer) Close() error {
	return nil
}

// splitChunks splits text into pieces of at most max runes, preferring
// to break after whitespace so words stay intact.
func splitChunks(text string, max int) []string {
	runes := []rune(text)
	if len(runes) <= max {
		return []string{text}
	}

	var chunks []string
	for len(runes) > 0 {
		if len(runes) <= max {
			chunks = append(chunks, string(runes))
			break
		}

		cut := max
		for i := max; i > max/2; i-- {
			if runes[i-1] == ' ' || runes[i-1] == '\n' {
				cut = i
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	return chunks
}
