package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voqa-labs/voqa-cli/internal/adapters/driven/storage/memory"
	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
	"github.com/voqa-labs/voqa-cli/internal/core/services"
)

// stubAnswer is a canned driving.AnswerService.
type stubAnswer struct {
	record *domain.QueryRecord
	err    error
}

func (s *stubAnswer) Ask(
	context.Context, string, *domain.Document, driving.AskOptions,
) (*domain.QueryRecord, error) {
	return s.record, s.err
}

func (s *stubAnswer) FindAnswer(context.Context, string, string) domain.AnswerResult {
	return s.record.Result
}

// stubProvider returns the same service for every language.
type stubProvider struct {
	svc driving.AnswerService
	err error
}

func (s *stubProvider) For(domain.LanguageConfig) (driving.AnswerService, error) {
	return s.svc, s.err
}

// stubDocuments serves documents from a map.
type stubDocuments struct {
	docs map[string]*domain.Document
}

func (s *stubDocuments) Load(_ context.Context, path, language string) (*domain.Document, error) {
	return &domain.Document{ID: "loaded", URI: path, Language: language}, nil
}

func (s *stubDocuments) Extract(_ context.Context, path string) (*domain.Document, error) {
	return &domain.Document{URI: path}, nil
}

func (s *stubDocuments) Get(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func (s *stubDocuments) List(context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, *d)
	}
	return out, nil
}

func newTestServer(t *testing.T) (*Server, *memory.QueryStore) {
	t.Helper()

	queries := memory.NewQueryStore()
	record := &domain.QueryRecord{
		ID:       "q-1",
		Question: "what is the moon?",
		Language: "English",
		Result:   domain.AnswerResult{Answer: "a satellite", Score: 0.9, Context: "ctx"},
	}
	require.NoError(t, queries.SaveQuery(context.Background(), record))

	return NewServer(Ports{
		Answers: &stubProvider{svc: &stubAnswer{record: record}},
		Documents: &stubDocuments{docs: map[string]*domain.Document{
			"doc-1": {ID: "doc-1", Title: "moon.pdf", Text: "The moon is a satellite."},
		}},
		Evaluation: services.NewEvaluationService(queries),
		History:    services.NewHistoryService(queries),
	}), queries
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLanguages(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodGet, "/languages", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var langs []languageInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &langs))
	require.Len(t, langs, 3)
	assert.Equal(t, "English", langs[0].Name)
	assert.Equal(t, "generative", langs[0].Mode)
}

func TestAsk(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodPost, "/ask", AskRequest{
		Question:   "what is the moon?",
		DocumentID: "doc-1",
		Language:   "english",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp AskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a satellite", resp.Answer)
	assert.Equal(t, 0.9, resp.Score)
	assert.Equal(t, "q-1", resp.QueryID)
}

func TestAskUnknownDocument(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodPost, "/ask", AskRequest{
		Question: "q", DocumentID: "missing",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "DOCUMENT_NOT_FOUND")
}

func TestAskUnknownLanguage(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodPost, "/ask", AskRequest{
		Question: "q", DocumentID: "doc-1", Language: "klingon",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNKNOWN_LANGUAGE")
}

func TestAskMissingBody(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodPost, "/ask", map[string]string{"question": "q"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_JSON")
}

func TestEvaluateWithQueryID(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodPost, "/evaluate", EvaluateRequest{
		QueryID:   "q-1",
		Reference: "a satellite",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var report domain.OverlapReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 1.0, report.Unigram.FMeasure)
}

func TestEvaluateUnknownQuery(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodPost, "/evaluate", EvaluateRequest{
		QueryID: "missing", Reference: "x",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "QUERY_NOT_FOUND")
}

func TestRateAndFetchHistory(t *testing.T) {
	srv, queries := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/ratings", RateRequest{
		QueryID: "q-1", Correctness: 4, Fluency: 5, VoiceClarity: 3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	rating, err := queries.GetRating(context.Background(), "q-1")
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Correctness)

	w = doJSON(t, srv, http.MethodGet, "/history?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "what is the moon?")

	w = doJSON(t, srv, http.MethodGet, "/history/q-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/history/none", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateOutOfRange(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv, http.MethodPost, "/ratings", RateRequest{
		QueryID: "q-1", Correctness: 9, Fluency: 5, VoiceClarity: 3,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocuments(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/documents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "moon.pdf")

	w = doJSON(t, srv, http.MethodGet, "/documents/doc-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/documents/none", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
