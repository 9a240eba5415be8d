package whisperapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFakeAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "question.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF....WAVEfake"), 0o644))
	return path
}

func TestTranscribe(t *testing.T) {
	var gotModel, gotLanguage, gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotModel = r.FormValue("model")
		gotLanguage = r.FormValue("language")
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		gotFilename = header.Filename
		_, _ = w.Write([]byte(`{"text":" how far is the moon? "}`))
	}))
	defer srv.Close()

	tr := NewTranscriber(Config{BaseURL: srv.URL, Model: "whisper-1"})
	text, err := tr.Transcribe(context.Background(), writeFakeAudio(t), "en-IN")
	require.NoError(t, err)

	assert.Equal(t, "how far is the moon?", text)
	assert.Equal(t, "whisper-1", gotModel)
	assert.Equal(t, "en", gotLanguage, "locale should collapse to a language code")
	assert.Equal(t, "question.wav", gotFilename)
}

func TestTranscribeMissingFile(t *testing.T) {
	tr := NewTranscriber(Config{BaseURL: "http://localhost:1"})
	_, err := tr.Transcribe(context.Background(), "/nonexistent/audio.wav", "en-IN")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open audio file")
}

func TestTranscribeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer srv.Close()

	tr := NewTranscriber(Config{BaseURL: srv.URL})
	_, err := tr.Transcribe(context.Background(), writeFakeAudio(t), "ja-JP")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestLanguageFromLocale(t *testing.T) {
	assert.Equal(t, "sa", languageFromLocale("sa-IN"))
	assert.Equal(t, "ja", languageFromLocale("ja-JP"))
	assert.Equal(t, "en", languageFromLocale("en"))
	assert.Empty(t, languageFromLocale(""))
}
