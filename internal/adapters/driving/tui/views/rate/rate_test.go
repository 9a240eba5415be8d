package rate

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voqa-labs/voqa-cli/internal/adapters/driving/tui/messages"
	"github.com/voqa-labs/voqa-cli/internal/core/domain"
)

type mockEvaluation struct {
	ratings map[string]domain.HumanRating
	report  domain.OverlapReport
	lastRef string
	err     error
}

func (m *mockEvaluation) Score(reference, _ string) (domain.OverlapReport, error) {
	m.lastRef = reference
	return m.report, nil
}

func (m *mockEvaluation) Rate(_ context.Context, rating domain.HumanRating) error {
	if m.err != nil {
		return m.err
	}
	if m.ratings == nil {
		m.ratings = make(map[string]domain.HumanRating)
	}
	m.ratings[rating.QueryID] = rating
	return nil
}

func (m *mockEvaluation) RatingFor(_ context.Context, queryID string) (*domain.HumanRating, error) {
	if r, ok := m.ratings[queryID]; ok {
		return &r, nil
	}
	return nil, domain.ErrNotFound
}

func testRecord() domain.QueryRecord {
	return domain.QueryRecord{
		ID:       "q-1",
		Question: "what is the moon?",
		Result:   domain.AnswerResult{Answer: "a natural satellite", Score: 0.9},
	}
}

func TestView_SetRecord_Defaults(t *testing.T) {
	view := NewView(nil, &mockEvaluation{})

	view.SetRecord(testRecord())

	c, f, vc := view.Values()
	assert.Equal(t, 3, c)
	assert.Equal(t, 3, f)
	assert.Equal(t, 3, vc)
	assert.False(t, view.Saved())
}

func TestView_SetRecord_LoadsExistingRating(t *testing.T) {
	eval := &mockEvaluation{ratings: map[string]domain.HumanRating{
		"q-1": {QueryID: "q-1", Correctness: 5, Fluency: 4, VoiceClarity: 2},
	}}
	view := NewView(nil, eval)

	view.SetRecord(testRecord())

	c, f, vc := view.Values()
	assert.Equal(t, 5, c)
	assert.Equal(t, 4, f)
	assert.Equal(t, 2, vc)
}

func TestView_AdjustSliders(t *testing.T) {
	view := NewView(nil, &mockEvaluation{})
	view.SetRecord(testRecord())

	view.Update(tea.KeyMsg{Type: tea.KeyRight})
	view.Update(tea.KeyMsg{Type: tea.KeyRight})
	c, _, _ := view.Values()
	assert.Equal(t, 5, c)

	// Clamped at the maximum
	view.Update(tea.KeyMsg{Type: tea.KeyRight})
	c, _, _ = view.Values()
	assert.Equal(t, 5, c)

	// Move to the fluency slider and decrease
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	view.Update(tea.KeyMsg{Type: tea.KeyLeft})
	view.Update(tea.KeyMsg{Type: tea.KeyLeft})
	view.Update(tea.KeyMsg{Type: tea.KeyLeft})
	_, f, _ := view.Values()
	assert.Equal(t, 1, f)

	// Clamped at the minimum
	view.Update(tea.KeyMsg{Type: tea.KeyLeft})
	_, f, _ = view.Values()
	assert.Equal(t, 1, f)
}

func TestView_Save(t *testing.T) {
	eval := &mockEvaluation{}
	view := NewView(nil, eval)
	view.SetRecord(testRecord())

	view.Update(tea.KeyMsg{Type: tea.KeyRight})
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	saved, ok := msg.(messages.RatingSaved)
	require.True(t, ok)
	require.NoError(t, saved.Err)
	assert.Equal(t, "q-1", saved.QueryID)

	stored := eval.ratings["q-1"]
	assert.Equal(t, 4, stored.Correctness)
	assert.Equal(t, 3, stored.Fluency)

	view.Update(msg)
	assert.True(t, view.Saved())
	view.SetDimensions(80, 24)
	assert.Contains(t, view.View(), "Rating saved.")
}

func TestView_Save_Error(t *testing.T) {
	view := NewView(nil, &mockEvaluation{err: assert.AnError})
	view.SetRecord(testRecord())

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	view.Update(cmd())

	assert.Error(t, view.Err())
	assert.False(t, view.Saved())
}

func TestView_Save_NoRecord(t *testing.T) {
	view := NewView(nil, &mockEvaluation{})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Esc_ReturnsToHistory(t *testing.T) {
	view := NewView(nil, &mockEvaluation{})
	view.SetRecord(testRecord())

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewHistory, changed.View)
}

func TestView_ReferenceOverlap(t *testing.T) {
	eval := &mockEvaluation{report: domain.OverlapReport{
		Unigram: domain.OverlapScore{Precision: 0.5, Recall: 1, FMeasure: 0.667},
	}}
	view := NewView(nil, eval)
	view.SetRecord(testRecord())
	view.SetDimensions(80, 24)

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	require.True(t, view.ReferenceFocused())

	for _, r := range "the satellite" {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, view.ReferenceFocused())
	assert.Equal(t, "the satellite", eval.lastRef)
	require.NotNil(t, view.Report())
	assert.Contains(t, view.View(), "P=0.500")
}

func TestView_ReferenceEsc_DoesNotScore(t *testing.T) {
	view := NewView(nil, &mockEvaluation{})
	view.SetRecord(testRecord())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.False(t, view.ReferenceFocused())
	assert.Nil(t, view.Report())
}

func TestRenderSlider(t *testing.T) {
	assert.Equal(t, "[■■■□□]", renderSlider(3))
	assert.Equal(t, "[■□□□□]", renderSlider(1))
	assert.Equal(t, "[■■■■■]", renderSlider(5))
}
