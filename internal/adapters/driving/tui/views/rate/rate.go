// Package rate provides the manual rating view for the TUI.
package rate

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voqa-labs/voqa-cli/internal/adapters/driving/tui/messages"
	"github.com/voqa-labs/voqa-cli/internal/adapters/driving/tui/styles"
	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
)

// Slider field order.
const (
	fieldCorrectness = iota
	fieldFluency
	fieldVoiceClarity
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Correctness",
	"Fluency",
	"Voice clarity",
}

// View rates one answered query on three 1-5 sliders.
type View struct {
	styles     *styles.Styles
	evaluation driving.EvaluationService
	ctx        context.Context

	record    *domain.QueryRecord
	values    [fieldCount]int
	field     int
	saved     bool
	err       error
	reference textinput.Model
	report    *domain.OverlapReport

	width  int
	height int
	ready  bool
}

// NewView creates a new rating view.
func NewView(s *styles.Styles, evaluation driving.EvaluationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ref := textinput.New()
	ref.Placeholder = "Reference answer..."
	ref.CharLimit = 512
	ref.Width = 48

	v := &View{
		styles:     s,
		evaluation: evaluation,
		ctx:        context.Background(),
		reference:  ref,
		width:      80,
		height:     24,
	}
	v.resetValues()
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the rating view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetRecord sets the query being rated and loads any stored rating.
func (v *View) SetRecord(rec domain.QueryRecord) {
	v.record = &rec
	v.field = 0
	v.saved = false
	v.err = nil
	v.report = nil
	v.reference.Reset()
	v.reference.Blur()
	v.resetValues()

	if v.evaluation == nil {
		return
	}
	if existing, err := v.evaluation.RatingFor(v.ctx, rec.ID); err == nil && existing != nil {
		v.values[fieldCorrectness] = existing.Correctness
		v.values[fieldFluency] = existing.Fluency
		v.values[fieldVoiceClarity] = existing.VoiceClarity
	}
}

// resetValues centres all sliders.
func (v *View) resetValues() {
	mid := (domain.RatingMin + domain.RatingMax) / 2
	for i := range v.values {
		v.values[i] = mid
	}
}

// Update handles messages for the rating view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.RatingSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.saved = true
		v.err = nil
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.reference.Focused() {
		return v.handleReferenceKey(msg)
	}

	switch msg.String() {
	case "e":
		return v, v.reference.Focus()
	case "up", "k":
		if v.field > 0 {
			v.field--
		}
	case "down", "j", "tab":
		if v.field < fieldCount-1 {
			v.field++
		}
	case "left", "h":
		if v.values[v.field] > domain.RatingMin {
			v.values[v.field]--
			v.saved = false
		}
	case "right", "l":
		if v.values[v.field] < domain.RatingMax {
			v.values[v.field]++
			v.saved = false
		}
	case "enter":
		return v, v.save()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHistory}
		}
	}

	return v, nil
}

// handleReferenceKey routes input while the reference field is focused.
func (v *View) handleReferenceKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v.reference.Blur()
		v.scoreReference()
		return v, nil
	case "esc":
		v.reference.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.reference, cmd = v.reference.Update(msg)
	return v, cmd
}

// scoreReference computes the overlap report for the typed reference.
func (v *View) scoreReference() {
	v.report = nil
	ref := strings.TrimSpace(v.reference.Value())
	if ref == "" || v.record == nil || v.evaluation == nil {
		return
	}

	report, err := v.evaluation.Score(ref, v.record.Result.Answer)
	if err != nil {
		v.err = err
		return
	}
	v.err = nil
	v.report = &report
}

// save persists the rating.
func (v *View) save() tea.Cmd {
	if v.record == nil || v.evaluation == nil {
		return nil
	}

	rating := domain.HumanRating{
		QueryID:      v.record.ID,
		Correctness:  v.values[fieldCorrectness],
		Fluency:      v.values[fieldFluency],
		VoiceClarity: v.values[fieldVoiceClarity],
	}

	return func() tea.Msg {
		err := v.evaluation.Rate(v.ctx, rating)
		return messages.RatingSaved{QueryID: rating.QueryID, Err: err}
	}
}

// View renders the rating view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Rate Answer"))
	b.WriteString("\n\n")

	if v.record == nil {
		b.WriteString(v.styles.Muted.Render("No query selected. Pick one from History."))
		return b.String()
	}

	b.WriteString(v.styles.Normal.Render("Q: " + v.record.Question))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render("A: " + v.record.Result.Answer))
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		cursor := "  "
		line := fmt.Sprintf("%-14s %s %d", fieldLabels[i], renderSlider(v.values[i]), v.values[i])
		if i == v.field {
			cursor = "> "
			b.WriteString(cursor + v.styles.Selected.Render(line))
		} else {
			b.WriteString(cursor + v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render("Reference: " + v.reference.View()))
	b.WriteString("\n")
	if v.report != nil {
		b.WriteString(renderOverlap("Unigram", v.report.Unigram))
		b.WriteString(renderOverlap("Bigram", v.report.Bigram))
		b.WriteString(renderOverlap("LCS", v.report.LCS))
	}

	b.WriteString("\n")
	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	}
	if v.saved {
		b.WriteString(v.styles.Success.Render("Rating saved."))
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Help.Render("[←/→] Adjust  [j/k] Field  [e] Reference  [Enter] Save  [Esc] Back"))

	return b.String()
}

// renderOverlap formats one overlap score line.
func renderOverlap(name string, s domain.OverlapScore) string {
	return fmt.Sprintf("  %-8s P=%.3f R=%.3f F=%.3f\n", name, s.Precision, s.Recall, s.FMeasure)
}

// renderSlider draws a filled/empty block gauge for a rating value.
func renderSlider(value int) string {
	var b strings.Builder
	b.WriteString("[")
	for i := domain.RatingMin; i <= domain.RatingMax; i++ {
		if i <= value {
			b.WriteString("■")
		} else {
			b.WriteString("□")
		}
	}
	b.WriteString("]")
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Record returns the query being rated, if any.
func (v *View) Record() *domain.QueryRecord {
	return v.record
}

// Values returns the current slider values in field order.
func (v *View) Values() (correctness, fluency, voiceClarity int) {
	return v.values[fieldCorrectness], v.values[fieldFluency], v.values[fieldVoiceClarity]
}

// Field returns the selected slider index.
func (v *View) Field() int {
	return v.field
}

// Saved returns whether the current values were persisted.
func (v *View) Saved() bool {
	return v.saved
}

// Report returns the computed overlap report, if any.
func (v *View) Report() *domain.OverlapReport {
	return v.report
}

// ReferenceFocused reports whether the reference input is capturing keys.
func (v *View) ReferenceFocused() bool {
	return v.reference.Focused()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
