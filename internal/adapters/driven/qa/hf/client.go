// Package hf provides question-answering adapters backed by a
// HuggingFace-compatible inference API.
package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Default configuration values.
const (
	DefaultBaseURL           = "https://api-inference.huggingface.co"
	DefaultTimeout           = 60 * time.Second
	DefaultRequestsPerSecond = 4.0
	DefaultBurst             = 2
)

// Config holds configuration shared by the hf adapters.
type Config struct {
	// BaseURL is the inference API base URL (default: the public HF API).
	BaseURL string

	// Model is the model identifier, e.g. "google/muril-base-cased".
	Model string

	// APIKey is sent as a Bearer token when set.
	APIKey string

	// Timeout is the per-request timeout (default: 60s).
	Timeout time.Duration

	// RequestsPerSecond caps the call rate (default: 4/s, burst 2).
	// Windowed scoring issues one call per window, so long documents
	// would otherwise hammer the API.
	RequestsPerSecond float64
}

// client is the shared HTTP plumbing for the hf adapters.
type client struct {
	http    *http.Client
	baseURL string
	model   string
	apiKey  string
	limiter *rate.Limiter
}

func newClient(cfg Config) *client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}

	return &client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), DefaultBurst),
	}
}

// apiError is the inference API error body.
type apiError struct {
	Error string `json:"error"`
}

// post sends a JSON body to /models/{model} and returns the raw response.
// It waits on the rate limiter first.
func (c *client) post(ctx context.Context, body any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/models/"+c.model,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("inference error (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("inference error (status %d): %s", resp.StatusCode, string(data))
	}

	return data, nil
}

// ping checks model availability without running inference.
func (c *client) ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/status/"+c.model, http.NoBody)
	if err != nil {
		return fmt.Errorf("create ping request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("API returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
