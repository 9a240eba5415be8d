// Package history provides the answered-query list view for the TUI.
package history

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

// historyLimit bounds how many recent queries the view loads.
const historyLimit = 20

// View lists recent answered queries, newest first.
type View struct {
	styles  *styles.Styles
	history driving.HistoryService
	ctx     context.Context

	items    []domain.QueryRecord
	selected int
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates a new history view.
func NewView(s *styles.Styles, history driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		history: history,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads recent queries.
func (v *View) Init() tea.Cmd {
	return func() tea.Msg {
		queries, err := v.history.Recent(v.ctx, historyLimit)
		return messages.HistoryLoaded{Queries: queries, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.HistoryLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.items = msg.Queries
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
		case "enter", "r":
			if rec := v.SelectedQuery(); rec != nil {
				q := *rec
				return v, func() tea.Msg {
					return messages.QuerySelected{Query: q}
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

// View renders the history view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("History"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		return b.String()
	}

	if len(v.items) == 0 {
		b.WriteString(v.styles.Muted.Render("No answered queries yet."))
		return b.String()
	}

	for i, rec := range v.items {
		cursor := "  "
		spoken := ""
		if rec.Spoken {
			spoken = " (spoken)"
		}
		line := fmt.Sprintf("%-40s  %-30s  %.2f%s",
			truncate(rec.Question, 40), truncate(rec.Result.Answer, 30), rec.Result.Score, spoken)
		if i == v.selected {
			cursor = "> "
			b.WriteString(cursor + v.styles.Selected.Render(line))
		} else {
			b.WriteString(cursor + v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter/r] Rate answer  [Esc] Back"))

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

// SelectedQuery returns the currently selected query, or nil.
func (v *View) SelectedQuery() *domain.QueryRecord {
	if len(v.items) == 0 || v.selected < 0 || v.selected >= len(v.items) {
		return nil
	}
	return &v.items[v.selected]
}

// Queries returns the loaded query list.
func (v *View) Queries() []domain.QueryRecord {
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
