package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
)

// AskInput is the input schema for the ask_document tool.
type AskInput struct {
	Question   string `json:"question" jsonschema:"the question to answer"`
	DocumentID string `json:"document_id" jsonschema:"the ID of the loaded document to ask against"`
	Language   string `json:"language,omitempty" jsonschema:"language name (English, Sanskrit or Japanese; default English)"`
}

// AskOutput is the output schema for the ask_document tool.
type AskOutput struct {
	Answer    string  `json:"answer"`
	Score     float64 `json:"score"`
	Context   string  `json:"context,omitempty"`
	Generated bool    `json:"generated"`
	QueryID   string  `json:"query_id,omitempty"`
}

// ListDocumentsInput is the input schema for the list_documents tool.
type ListDocumentsInput struct{}

// ListDocumentsOutput is the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []DocumentInfo `json:"documents"`
	Count     int            `json:"count"`
}

// DocumentInfo is one loaded document summary.
type DocumentInfo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URI      string `json:"uri"`
	Language string `json:"language"`
	Pages    int    `json:"pages,omitempty"`
	Chars    int    `json:"chars"`
}

// EvaluateInput is the input schema for the evaluate_answer tool.
type EvaluateInput struct {
	QueryID   string `json:"query_id" jsonschema:"the answered query to score"`
	Reference string `json:"reference" jsonschema:"the reference answer to score against"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_document",
		Description: "Answer a question about a loaded document",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List loaded documents available for questioning",
	}, s.handleListDocuments)

	if s.ports.Evaluation != nil && s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "evaluate_answer",
			Description: "Score an answered query against a reference answer",
		}, s.handleEvaluate)
	}
}

// handleAsk handles the ask_document tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	lang, err := findLanguage(input.Language)
	if err != nil {
		return nil, AskOutput{}, err
	}

	doc, err := s.ports.Documents.Get(ctx, input.DocumentID)
	if err != nil {
		return nil, AskOutput{}, fmt.Errorf("document %q: %w", input.DocumentID, err)
	}

	answers, err := s.ports.Answers.For(lang)
	if err != nil {
		return nil, AskOutput{}, err
	}

	rec, err := answers.Ask(ctx, input.Question, doc, driving.AskOptions{
		Language: lang.Name,
	})
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{
		Answer:    rec.Result.Answer,
		Score:     rec.Result.Score,
		Context:   rec.Result.Context,
		Generated: rec.Result.Generated,
		QueryID:   rec.ID,
	}, nil
}

// handleListDocuments handles the list_documents tool invocation.
func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListDocumentsInput,
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	docs, err := s.ports.Documents.List(ctx)
	if err != nil {
		return nil, ListDocumentsOutput{}, err
	}

	output := ListDocumentsOutput{
		Documents: make([]DocumentInfo, len(docs)),
		Count:     len(docs),
	}
	for i := range docs {
		output.Documents[i] = DocumentInfo{
			ID:       docs[i].ID,
			Title:    docs[i].Title,
			URI:      docs[i].URI,
			Language: docs[i].Language,
			Pages:    docs[i].Pages,
			Chars:    len(docs[i].Text),
		}
	}

	return nil, output, nil
}

// handleEvaluate handles the evaluate_answer tool invocation.
func (s *Server) handleEvaluate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, domain.OverlapReport, error) {
	rec, err := s.ports.History.Get(ctx, input.QueryID)
	if err != nil {
		return nil, domain.OverlapReport{}, fmt.Errorf("query %q: %w", input.QueryID, err)
	}

	report, err := s.ports.Evaluation.Score(input.Reference, rec.Result.Answer)
	if err != nil {
		return nil, domain.OverlapReport{}, err
	}

	return nil, report, nil
}

// findLanguage resolves a language name case-insensitively, defaulting
// to English.
func findLanguage(name string) (domain.LanguageConfig, error) {
	if name == "" {
		name = "English"
	}
	for _, lc := range domain.DefaultLanguages() {
		if strings.EqualFold(lc.Name, name) {
			return lc, nil
		}
	}
	return domain.LanguageConfig{}, fmt.Errorf("%w: %q", domain.ErrUnknownLanguage, name)
}
