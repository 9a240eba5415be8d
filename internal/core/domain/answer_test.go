package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyDocumentResult(t *testing.T) {
	r := EmptyDocumentResult()
	assert.Equal(t, "The document is empty.", r.Answer)
	assert.Zero(t, r.Score)
	assert.Equal(t, "N/A", r.Context)
	assert.True(t, r.IsSentinel())
}

func TestNoConfidentAnswerResult(t *testing.T) {
	r := NoConfidentAnswerResult()
	assert.Zero(t, r.Score)
	assert.True(t, r.IsSentinel())
	assert.False(t, r.Generated)
}

func TestGeneratedResult(t *testing.T) {
	r := GeneratedResult("The moon is 384,400 km away.")
	assert.Equal(t, 1.0, r.Score)
	assert.True(t, r.Generated)
	assert.False(t, r.IsSentinel())
}

func TestDocumentIsEmpty(t *testing.T) {
	var nilDoc *Document
	assert.True(t, nilDoc.IsEmpty())
	assert.True(t, (&Document{}).IsEmpty())
	assert.False(t, (&Document{Text: "moon"}).IsEmpty())
}
