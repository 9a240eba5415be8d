package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{"response":" The moon is a natural satellite. ","done":true}`))
	}))
	defer srv.Close()

	gen := NewGenerator(Config{BaseURL: srv.URL, Model: "llama3.2"})
	answer, err := gen.Generate(context.Background(), "what is the moon?", "The moon is a natural satellite of Earth.")
	require.NoError(t, err)

	assert.Equal(t, "The moon is a natural satellite.", answer, "response should be trimmed")
	assert.Equal(t, "llama3.2", gotReq.Model)
	assert.False(t, gotReq.Stream)
	assert.Contains(t, gotReq.Prompt, "Question: what is the moon?")
	assert.Contains(t, gotReq.Prompt, "natural satellite of Earth")
}

func TestGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`model not found`))
	}))
	defer srv.Close()

	gen := NewGenerator(Config{BaseURL: srv.URL})
	_, err := gen.Generate(context.Background(), "q", "doc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	gen := NewGenerator(Config{BaseURL: srv.URL})
	assert.NoError(t, gen.Ping(context.Background()))
}

func TestDefaults(t *testing.T) {
	gen := NewGenerator(Config{})
	assert.Equal(t, DefaultBaseURL, gen.baseURL)
	assert.Equal(t, DefaultModel, gen.ModelName())
}
