// Package documents provides the document list view for the TUI.
package documents

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voqa-labs/voqa-cli/internal/adapters/driving/tui/messages"
	"github.com/voqa-labs/voqa-cli/internal/adapters/driving/tui/styles"
	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
)

// View lists stored documents and lets the user pick a question target.
type View struct {
	styles    *styles.Styles
	documents driving.DocumentService
	ctx       context.Context

	items    []domain.Document
	selected int
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates a new documents view.
func NewView(s *styles.Styles, documents driving.DocumentService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:    s,
		documents: documents,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the document list.
func (v *View) Init() tea.Cmd {
	return func() tea.Msg {
		docs, err := v.documents.List(v.ctx)
		return messages.DocumentsLoaded{Documents: docs, Err: err}
	}
}

// Update handles messages for the documents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.DocumentsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.items = msg.Documents
		v.selected = 0
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
		case "enter":
			if doc := v.SelectedDocument(); doc != nil {
				d := *doc
				return v, func() tea.Msg {
					return messages.DocumentSelected{Document: d}
				}
			}
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}

	return v, nil
}

// View renders the documents view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Documents"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		return b.String()
	}

	if len(v.items) == 0 {
		b.WriteString(v.styles.Muted.Render("No documents loaded yet. Use 'voqa load <path>'."))
		return b.String()
	}

	for i, doc := range v.items {
		cursor := "  "
		line := fmt.Sprintf("%-30s  %-10s  %d pages  %d chars",
			truncate(doc.Title, 30), doc.Language, doc.Pages, len([]rune(doc.Text)))
		if i == v.selected {
			cursor = "> "
			b.WriteString(cursor + v.styles.Selected.Render(line))
		} else {
			b.WriteString(cursor + v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Ask about document  [Esc] Back"))

	return b.String()
}

// truncate shortens a string to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// SelectedDocument returns the currently selected document, or nil.
func (v *View) SelectedDocument() *domain.Document {
	if len(v.items) == 0 || v.selected < 0 || v.selected >= len(v.items) {
		return nil
	}
	return &v.items[v.selected]
}

// Documents returns the loaded document list.
func (v *View) Documents() []domain.Document {
	return v.items
}

// Selected returns the selected index.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
