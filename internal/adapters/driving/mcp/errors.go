// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants ask questions against loaded documents.
package mcp

import "errors"

// ErrMissingAnswerProvider is returned when the answer provider is not provided.
var ErrMissingAnswerProvider = errors.New("mcp: answer provider is required")

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("mcp: document service is required")
