package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/ui/theme"
)

// Choice is one keyed option of a MultiChoice.
type Choice struct {
	Key  string
	Text string
}

// ChoiceMadeMsg is emitted when the user picks an option.
type ChoiceMadeMsg struct {
	ID  string
	Key string
}

// MultiChoice is a single-answer selector for a keyed option list. The
// chosen key is owned by the caller and only reflected here for rendering.
type MultiChoice struct {
	ID       string
	Question string
	Options  []Choice
	Cursor   int
	Chosen   string
	Focused  bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(id, question string, options []Choice, chosen string) MultiChoice {
	m := MultiChoice{
		ID:       id,
		Question: question,
		Options:  options,
		Chosen:   chosen,
	}
	if i := m.indexOf(chosen); i >= 0 {
		m.Cursor = i
	}
	return m
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Enter or space picks the
// option under the cursor; an option key or its 1-based number picks it
// directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Options) == 0 {
		return m, nil
	}

	key := kmsg.String()
	if i := m.indexOf(strings.ToLower(key)); i >= 0 {
		m.Cursor = i
		return m, m.choose()
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
		m.Cursor = n - 1
		return m, m.choose()
	}

	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter", "space":
		return m, m.choose()
	}

	return m, nil
}

func (m MultiChoice) choose() tea.Cmd {
	msg := ChoiceMadeMsg{ID: m.ID, Key: m.Options[m.Cursor].Key}
	return func() tea.Msg { return msg }
}

func (m MultiChoice) indexOf(key string) int {
	if key == "" {
		return -1
	}
	for i, o := range m.Options {
		if o.Key == key {
			return i
		}
	}
	return -1
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if m.Focused && i == m.Cursor {
			prefix = "▸ "
		}
		mark := "○"
		if opt.Key == m.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, strings.ToUpper(opt.Key), opt.Text)

		switch {
		case opt.Key == m.Chosen:
			b.WriteString(theme.Answered.Render(line))
		case m.Focused && i == m.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
