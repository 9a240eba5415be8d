package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
)

// AskRequest is the /ask request body.
type AskRequest struct {
	Question   string `json:"question" binding:"required"`
	DocumentID string `json:"document_id" binding:"required"`
	Language   string `json:"language"`
	Speak      bool   `json:"speak"`
	Record     *bool  `json:"record"`
}

// AskResponse is the /ask response body.
type AskResponse struct {
	QueryID   string  `json:"query_id"`
	Answer    string  `json:"answer"`
	Score     float64 `json:"score"`
	Context   string  `json:"context"`
	Generated bool    `json:"generated"`
	AudioPath string  `json:"audio_path,omitempty"`
}

// EvaluateRequest is the /evaluate request body.
type EvaluateRequest struct {
	QueryID   string `json:"query_id"`
	Candidate string `json:"candidate"`
	Reference string `json:"reference" binding:"required"`
}

// RateRequest is the /ratings request body.
type RateRequest struct {
	QueryID      string `json:"query_id" binding:"required"`
	Correctness  int    `json:"correctness" binding:"required"`
	Fluency      int    `json:"fluency" binding:"required"`
	VoiceClarity int    `json:"voice_clarity" binding:"required"`
}

// languageInfo is one /languages response entry.
type languageInfo struct {
	Name      string `json:"name"`
	Model     string `json:"model"`
	Mode      string `json:"mode"`
	Code      string `json:"code"`
	STTLocale string `json:"stt_locale"`
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) languagesHandler(c *gin.Context) {
	table := domain.DefaultLanguages()
	out := make([]languageInfo, 0, len(table))
	for _, lc := range table {
		out = append(out, languageInfo{
			Name:      lc.Name,
			Model:     lc.Model,
			Mode:      lc.Mode.String(),
			Code:      lc.Code,
			STTLocale: lc.STTLocale,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) askHandler(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	lang, err := lookupLanguage(req.Language)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeUnknownLanguage,
			"Unknown language '"+req.Language+"'")
		return
	}

	doc, err := s.ports.Documents.Get(c.Request.Context(), req.DocumentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			SendError(c, http.StatusNotFound, ErrorCodeDocumentNotFound,
				"Document '"+req.DocumentID+"' not found")
			return
		}
		SendInternalError(c, "get document", err)
		return
	}

	answers, err := s.ports.Answers.For(lang)
	if err != nil {
		SendError(c, http.StatusServiceUnavailable, ErrorCodeEngineOffline,
			"Answering backend unavailable: "+err.Error())
		return
	}

	rec, err := answers.Ask(c.Request.Context(), req.Question, doc, driving.AskOptions{
		Language: lang.Name,
		Speak:    req.Speak,
		Record:   req.Record,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
			return
		}
		SendError(c, http.StatusInternalServerError, ErrorCodeAnswerFailed,
			"Answering failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, AskResponse{
		QueryID:   rec.ID,
		Answer:    rec.Result.Answer,
		Score:     rec.Result.Score,
		Context:   rec.Result.Context,
		Generated: rec.Result.Generated,
		AudioPath: rec.AudioPath,
	})
}

func (s *Server) evaluateHandler(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	candidate := req.Candidate
	if candidate == "" && req.QueryID != "" {
		rec, err := s.ports.History.Get(c.Request.Context(), req.QueryID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				SendError(c, http.StatusNotFound, ErrorCodeQueryNotFound,
					"Query '"+req.QueryID+"' not found")
				return
			}
			SendInternalError(c, "get query", err)
			return
		}
		candidate = rec.Result.Answer
	}
	if candidate == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest,
			"Provide a candidate answer or query_id")
		return
	}

	report, err := s.ports.Evaluation.Score(req.Reference, candidate)
	if err != nil {
		if errors.Is(err, domain.ErrNoReference) {
			SendError(c, http.StatusBadRequest, ErrorCodeMissingReference,
				"Reference answer is required")
			return
		}
		SendInternalError(c, "score answer", err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) rateHandler(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	rating := domain.HumanRating{
		QueryID:      req.QueryID,
		Correctness:  req.Correctness,
		Fluency:      req.Fluency,
		VoiceClarity: req.VoiceClarity,
	}

	if err := s.ports.Evaluation.Rate(c.Request.Context(), rating); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest,
				"Ratings must be between 1 and 5")
		case errors.Is(err, domain.ErrNotFound):
			SendError(c, http.StatusNotFound, ErrorCodeQueryNotFound,
				"Query '"+req.QueryID+"' not found")
		default:
			SendInternalError(c, "save rating", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"query_id": req.QueryID})
}

func (s *Server) historyHandler(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest,
				"limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := s.ports.History.Recent(c.Request.Context(), limit)
	if err != nil {
		SendInternalError(c, "read history", err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) historyGetHandler(c *gin.Context) {
	rec, err := s.ports.History.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			SendError(c, http.StatusNotFound, ErrorCodeQueryNotFound,
				"Query '"+c.Param("id")+"' not found")
			return
		}
		SendInternalError(c, "get query", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) documentsHandler(c *gin.Context) {
	docs, err := s.ports.Documents.List(c.Request.Context())
	if err != nil {
		SendInternalError(c, "list documents", err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (s *Server) documentGetHandler(c *gin.Context) {
	doc, err := s.ports.Documents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			SendError(c, http.StatusNotFound, ErrorCodeDocumentNotFound,
				"Document '"+c.Param("id")+"' not found")
			return
		}
		SendInternalError(c, "get document", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// lookupLanguage resolves a display name case-insensitively, defaulting
// to English when empty.
func lookupLanguage(name string) (domain.LanguageConfig, error) {
	if name == "" {
		name = "English"
	}
	for _, lc := range domain.DefaultLanguages() {
		if strings.EqualFold(lc.Name, name) {
			return lc, nil
		}
	}
	return domain.LanguageConfig{}, domain.ErrUnknownLanguage
}
