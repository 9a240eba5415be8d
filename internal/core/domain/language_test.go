package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQAModeIsValid(t *testing.T) {
	assert.True(t, QAModeExtractive.IsValid())
	assert.True(t, QAModeGenerative.IsValid())
	assert.False(t, QAMode("hybrid").IsValid())
}

func TestQAModeDescription(t *testing.T) {
	assert.Contains(t, QAModeExtractive.Description(), "Extractive")
	assert.Equal(t, "Unknown", QAMode("bogus").Description())
}

func TestDefaultLanguages(t *testing.T) {
	table := DefaultLanguages()
	require.Len(t, table, 3)

	en, err := FindLanguage(table, "English")
	require.NoError(t, err)
	assert.Equal(t, QAModeGenerative, en.Mode)
	assert.Equal(t, "en-US", en.STTLocale)

	ja, err := FindLanguage(table, "Japanese")
	require.NoError(t, err)
	assert.Equal(t, QAModeExtractive, ja.Mode)
	assert.Equal(t, "ja", ja.Code)
}

func TestFindLanguageUnknown(t *testing.T) {
	_, err := FindLanguage(DefaultLanguages(), "Klingon")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestHumanRatingValidate(t *testing.T) {
	ok := HumanRating{Correctness: 3, Fluency: 5, VoiceClarity: 1}
	assert.NoError(t, ok.Validate())

	bad := HumanRating{Correctness: 0, Fluency: 3, VoiceClarity: 3}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)

	high := HumanRating{Correctness: 3, Fluency: 6, VoiceClarity: 3}
	assert.ErrorIs(t, high.Validate(), ErrInvalidInput)
}
