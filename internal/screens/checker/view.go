package checker

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/assessment"
	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/ui/components"
	"github.com/abhisek/triage/internal/ui/theme"
)

func (s *CheckerScreen) View(width, height int) string {
	st := s.session.State()
	if st.Phase == assessment.PhaseQuestionnaire {
		return s.renderQuestionnaire(st, width)
	}
	return s.renderInput(width, height)
}

// renderInput renders the chief-complaint step.
func (s *CheckerScreen) renderInput(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("What seems to be the problem?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 4).
		Render("Enter your main symptom to help us select the right questions for you."))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	btn := components.NewButton("Next: Start Assessment", !s.input.Blank(), nil)
	b.WriteString(btn.View())

	card := components.Card(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// renderQuestionnaire renders the progress bar, question strip and the
// focused question.
func (s *CheckerScreen) renderQuestionnaire(st assessment.State, width int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder

	focus := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("Focus: " + st.ChiefComplaint)
	domain := components.InlineBadge(catalog.DomainDisplayName(st.Domain), theme.Secondary)
	b.WriteString(focus + "  " + domain)
	b.WriteString("\n\n")

	b.WriteString(components.NewPercentBar("Assessment Progress", st.Progress, cw).View())
	b.WriteString("\n\n")

	b.WriteString(s.renderStrip(st))
	b.WriteString("\n\n")

	if len(s.pickers) > 0 {
		header := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("Question %d of %d", s.focus+1, len(s.pickers)))
		b.WriteString(components.Card(header+"\n"+s.pickers[s.focus].View(), cw))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString(theme.Invalid.Render("✗ " + s.errMsg))
		b.WriteString("\n")
	}

	if s.confirmingSubmit {
		remaining := len(st.Questions) - st.AnsweredCount()
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).
			Render(fmt.Sprintf("%d question(s) unanswered. Submit anyway? (y/n)", remaining)))
		b.WriteString("\n")
	} else {
		change := components.NewButton("Change Symptom", false, nil).View()
		analyze := components.NewButton("Analyze Results", st.Complete(), nil).View()
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, change, "  ", analyze))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderStrip renders one numbered cell per question, marking answered ones.
func (s *CheckerScreen) renderStrip(st assessment.State) string {
	cells := make([]string, 0, len(st.Questions))
	for i, q := range st.Questions {
		label := fmt.Sprintf("%d", i+1)
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if _, ok := st.Answer(q.ID); ok {
			label += "✓"
			style = theme.Answered
		}
		if i == s.focus {
			style = theme.Selected.Underline(true)
		}
		cells = append(cells, style.Render(label))
	}
	return strings.Join(cells, " ")
}
