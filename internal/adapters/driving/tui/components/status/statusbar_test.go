package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBar_Defaults(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
}

func TestBar_View_States(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	assert.Contains(t, bar.View(), "Ready")

	bar.SetState(StateAnswering)
	assert.Contains(t, bar.View(), "Answering...")

	bar.SetState(StateAnswered)
	assert.Contains(t, bar.View(), "Answered")

	bar.SetState(StateError)
	bar.SetMessage("scorer offline")
	assert.Contains(t, bar.View(), "Error: scorer offline")
}

func TestBar_View_Language(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetLanguage("Sanskrit")

	assert.Contains(t, bar.View(), "[Sanskrit]")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
}
