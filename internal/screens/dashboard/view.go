package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/triage"
	"github.com/abhisek/triage/internal/ui/components"
	"github.com/abhisek/triage/internal/ui/theme"
)

// renderCases renders the "Incoming Triage" list, newest first as given.
func renderCases(cases []triage.Case, cw int, compact bool) string {
	pending := len(triage.Pending(cases))
	title := components.SectionTitle(
		fmt.Sprintf("Incoming Triage  (%d pending)", pending), cw-4)

	if len(cases) == 0 {
		empty := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("No incoming cases.")
		return components.Card(title+"\n"+empty, cw)
	}

	var rows []string
	for _, c := range cases {
		rows = append(rows, renderCase(c, compact))
	}
	return components.Card(title+"\n"+strings.Join(rows, "\n"), cw)
}

func renderCase(c triage.Case, compact bool) string {
	match := c.Specialty()
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Name)
	specialty := components.InlineBadge(match.Specialty, components.SpecialtyColor(match.Specialty))
	status := components.InlineBadge(string(c.Status), components.StatusColor(string(c.Status)))

	line := name + "  " + specialty + "  " + status
	if compact {
		return line
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	detail := dim.Render(fmt.Sprintf("  Sym: %s   %s", c.Symptoms, c.ReceivedAt.Format("02/01/2006, 3:04 pm")))
	return line + "\n" + detail
}

func renderQuickCheck(input components.TextInput, focused bool, cw int) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1)
	if focused {
		card = card.BorderForeground(theme.Primary)
	}
	return card.Render(input.View())
}

func renderMenu(menu components.Menu, dimmed bool, cw int) string {
	view := menu.View()
	if dimmed {
		view = lipgloss.NewStyle().Faint(true).Render(view)
	}
	return lipgloss.NewStyle().Width(cw).Render(view)
}
