package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/assessment"
	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/ui/components"
	"github.com/abhisek/triage/internal/ui/layout"
	"github.com/abhisek/triage/internal/ui/theme"
)

const disclaimer = "This summary is not a diagnosis. Share it with a clinician."

// SummaryScreen displays a submitted assessment.
type SummaryScreen struct {
	summary *assessment.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *assessment.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Assessment Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Dashboard"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Assessment submitted"))
	b.WriteString("\n\n")

	focus := lipgloss.NewStyle().Foreground(theme.Text).Render("Focus: " + sum.ChiefComplaint)
	badge := components.Badge(catalog.DomainDisplayName(sum.Domain), theme.Secondary)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Center, focus, "  ", badge)))
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	stats := fmt.Sprintf("Answered: %d/%d        Progress: %d%%        Duration: %d:%02d",
		sum.Answered, sum.Total, sum.Progress, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))
	b.WriteString("\n\n")

	var lines []string
	for i, l := range sum.Lines {
		answer := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("unanswered")
		if l.Answered {
			answer = theme.Answered.Render(l.OptionText)
		}
		lines = append(lines, fmt.Sprintf("%2d. %s\n    %s", i+1,
			lipgloss.NewStyle().Foreground(theme.Text).Render(l.Question), answer))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.Card(strings.Join(lines, "\n"), cw)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Warning).
		Render(disclaimer))

	return b.String()
}
