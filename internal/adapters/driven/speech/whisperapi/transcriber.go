// Package whisperapi provides a speech-to-text adapter for
// OpenAI-compatible audio transcription endpoints.
package whisperapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
)

// Ensure Transcriber implements the interface.
var _ driven.Transcriber = (*Transcriber)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.openai.com"
	DefaultModel   = "whisper-1"
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the transcriber.
type Config struct {
	// BaseURL is the API base URL (default: the public OpenAI API).
	// Any server exposing /v1/audio/transcriptions works, including
	// local whisper.cpp servers.
	BaseURL string

	// Model is the transcription model (default: whisper-1).
	Model string

	// APIKey is sent as a Bearer token when set.
	APIKey string

	// Timeout is the per-request timeout (default: 60s).
	Timeout time.Duration
}

// Transcriber converts recorded audio to text over HTTP.
type Transcriber struct {
	client  *http.Client
	baseURL string
	model   string
	apiKey  string
}

// transcribeResponse is the transcription response body.
type transcribeResponse struct {
	Text string `json:"text"`
}

// apiError is the error response body.
type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewTranscriber creates a new HTTP transcriber.
func NewTranscriber(cfg Config) *Transcriber {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Transcriber{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
	}
}

// Transcribe uploads the audio file and returns the recognised text.
// The locale hint (e.g. "ja-JP") is mapped to the two-letter language
// code the endpoint expects.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath, locale string) (string, error) {
	audio, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer audio.Close()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("copy audio: %w", err)
	}

	if err := form.WriteField("model", t.model); err != nil {
		return "", fmt.Errorf("write model field: %w", err)
	}
	if lang := languageFromLocale(locale); lang != "" {
		if err := form.WriteField("language", lang); err != nil {
			return "", fmt.Errorf("write language field: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		t.baseURL+"/v1/audio/transcriptions",
		&body,
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("transcription error (status %d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("transcription error (status %d): %s", resp.StatusCode, string(data))
	}

	var result transcribeResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return strings.TrimSpace(result.Text), nil
}

// Close releases resources.
func (t *Transcriber) Close() error {
	return nil
}

// languageFromLocale reduces a locale like "sa-IN" to "sa".
func languageFromLocale(locale string) string {
	if locale == "" {
		return ""
	}
	if idx := strings.IndexByte(locale, '-'); idx > 0 {
		return locale[:idx]
	}
	return locale
}
