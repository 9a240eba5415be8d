// Package ask provides the question-and-answer view for the TUI.
package ask

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voqa-labs/voqa-cli/internal/adapters/driving/tui/components/input"
	"github.com/voqa-labs/voqa-cli/internal/adapters/driving/tui/components/status"
	"github.com/voqa-labs/voqa-cli/internal/adapters/driving/tui/keymap"
	"github.com/voqa-labs/voqa-cli/internal/adapters/driving/tui/messages"
	"github.com/voqa-labs/voqa-cli/internal/adapters/driving/tui/styles"
	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
)

// maxContextRunes bounds the rendered answer context.
const maxContextRunes = 400

// View represents the question view with input, answer panel, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QuestionInput
	statusbar *status.Bar

	answers   driving.AnswerProvider
	documents driving.DocumentService
	ctx       context.Context

	languages []domain.LanguageConfig
	langIndex int
	document  *domain.Document
	record    *domain.QueryRecord

	width      int
	height     int
	ready      bool
	answering  bool
	err        error
	focusInput bool // true = input mode (typing), false = answer mode
}

// NewView creates a new ask view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	answers driving.AnswerProvider,
	documents driving.DocumentService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	langs := domain.DefaultLanguages()
	bar := status.NewBar(s, km)
	if len(langs) > 0 {
		bar.SetLanguage(langs[0].Name)
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewQuestionInput(s),
		statusbar:  bar,
		answers:    answers,
		documents:  documents,
		ctx:        context.Background(),
		languages:  langs,
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the ask view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AnswerCompleted:
		v.handleAnswerCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.answering = false
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc always signals to go back to menu
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Tab cycles through configured languages
	if msg.Type == tea.KeyTab {
		v.cycleLanguage()
		return v, nil
	}

	// Enter in input mode submits the question
	if msg.Type == tea.KeyEnter && v.focusInput {
		question := strings.TrimSpace(v.input.Value())
		if question == "" || v.answering {
			return v, nil
		}
		v.answering = true
		v.err = nil
		v.statusbar.SetState(status.StateAnswering)
		v.focusInput = false
		v.input.Blur()
		return v, v.performAsk(question)
	}

	// Input mode: all keys go to input
	if v.focusInput {
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	// Answer mode
	switch msg.String() {
	case "n":
		// New question: clear input and focus it
		v.focusInput = true
		v.input.Focus()
		v.input.SetValue("")
		v.record = nil
		v.err = nil
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("")
		return v, nil
	case "r":
		if v.record != nil {
			rec := *v.record
			return v, func() tea.Msg {
				return messages.QuerySelected{Query: rec}
			}
		}
	}

	return v, nil
}

// cycleLanguage advances to the next configured language. An explicitly
// selected document is kept only if it matches the new language.
func (v *View) cycleLanguage() {
	if len(v.languages) == 0 {
		return
	}
	v.langIndex = (v.langIndex + 1) % len(v.languages)
	lang := v.languages[v.langIndex]
	v.statusbar.SetLanguage(lang.Name)
	if v.document != nil && v.document.Language != lang.Name {
		v.document = nil
	}
}

// performAsk resolves the target document and answers the question.
func (v *View) performAsk(question string) tea.Cmd {
	lang := v.Language()
	doc := v.document

	return func() tea.Msg {
		if v.answers == nil {
			return messages.ErrorOccurred{Err: ErrNoAnswerProvider}
		}

		svc, err := v.answers.For(lang)
		if err != nil {
			return messages.AnswerCompleted{Err: err}
		}

		if doc == nil {
			if v.documents == nil {
				return messages.ErrorOccurred{Err: ErrNoDocumentService}
			}
			doc, err = v.documents.Load(v.ctx, lang.DefaultPDF, lang.Name)
			if err != nil {
				return messages.AnswerCompleted{Err: err}
			}
		}

		rec, err := svc.Ask(v.ctx, question, doc, driving.AskOptions{Language: lang.Name})
		if err != nil {
			return messages.AnswerCompleted{Err: err}
		}
		return messages.AnswerCompleted{Record: rec}
	}
}

// handleAnswerCompleted processes the answering outcome.
func (v *View) handleAnswerCompleted(msg messages.AnswerCompleted) {
	v.answering = false

	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.record = msg.Record
	v.statusbar.SetState(status.StateAnswered)
	v.statusbar.SetMessage("")
	v.focusInput = false
	v.input.Blur()
}

// View renders the ask view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	header := v.styles.Title.Render("Ask")
	sections = append(sections, header, "")

	lang := v.Language()
	target := "default document"
	if v.document != nil {
		target = v.document.Title
	}
	meta := v.styles.Muted.Render(fmt.Sprintf(
		"%s (%s)  ·  %s", lang.Name, lang.Mode, target,
	))
	sections = append(sections, meta, "")

	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.record != nil {
		sections = append(sections, v.renderAnswer(), "")
	} else if v.answering {
		sections = append(sections, v.styles.Muted.Render("Answering..."), "")
	}

	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderAnswer renders the answer panel for the last answered query.
func (v *View) renderAnswer() string {
	result := v.record.Result

	lines := make([]string, 0, 6)
	lines = append(lines, v.styles.Subtitle.Render("Answer")+"  "+v.styles.Normal.Render(result.Answer))

	if !result.Generated && !result.IsSentinel() {
		lines = append(lines, v.styles.Muted.Render(fmt.Sprintf("Confidence  %.3f", result.Score)))
	}

	ctx := result.Context
	if runes := []rune(ctx); len(runes) > maxContextRunes {
		ctx = string(runes[:maxContextRunes-3]) + "..."
	}
	lines = append(lines, v.styles.Muted.Render("Context  "+ctx))
	lines = append(lines, v.styles.Muted.Render("Query  "+v.record.ID))

	return v.styles.AnswerBox.Render(strings.Join(lines, "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// SetDocument sets the document questions are asked against and aligns
// the active language with the document's language when configured.
func (v *View) SetDocument(doc domain.Document) {
	v.document = &doc
	for i, lc := range v.languages {
		if lc.Name == doc.Language {
			v.langIndex = i
			v.statusbar.SetLanguage(lc.Name)
			break
		}
	}
}

// Document returns the explicitly selected document, if any.
func (v *View) Document() *domain.Document {
	return v.document
}

// Language returns the active language configuration.
func (v *View) Language() domain.LanguageConfig {
	if len(v.languages) == 0 {
		return domain.LanguageConfig{}
	}
	return v.languages[v.langIndex]
}

// Question returns the current question text.
func (v *View) Question() string {
	return v.input.Value()
}

// Record returns the last answered query, if any.
func (v *View) Record() *domain.QueryRecord {
	return v.record
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Reset resets the view to initial input mode. The selected document and
// language survive a reset.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.record = nil
	v.err = nil
	v.answering = false
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}
