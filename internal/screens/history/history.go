package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/store"
	"github.com/abhisek/triage/internal/ui/layout"
	"github.com/abhisek/triage/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Events   map[string][]store.AssessmentEvent // sessionID → events
	Err      error
}

// HistoryScreen displays the assessment sessions recorded in the event log.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummaryRecord
	events    map[string][]store.AssessmentEvent
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := s.eventRepo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		all, err := s.eventRepo.ListAssessmentEvents(ctx, store.QueryOpts{})
		if err != nil {
			return historyLoadedMsg{Sessions: sessions, Events: make(map[string][]store.AssessmentEvent)}
		}

		bySession := make(map[string][]store.AssessmentEvent)
		for _, e := range all {
			bySession[e.SessionID] = append(bySession[e.SessionID], e)
		}

		return historyLoadedMsg{Sessions: sessions, Events: bySession}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No assessments yet. Run the symptom checker!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		timeStr := sess.StartedAt.Local().Format("Jan 02, 15:04")
		d := sess.LastEventAt.Sub(sess.StartedAt)
		durationStr := fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)

		status := "in progress"
		if sess.Submitted {
			status = "submitted"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %q  %s  %d%%  %s",
			prefix, timeStr, durationStr, sess.ChiefComplaint,
			catalog.DomainDisplayName(catalog.Domain(sess.Domain)), sess.Progress, status)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, e := range s.events[sess.SessionID] {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(actionColor(e.Action)).Render(eventLine(e))))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func eventLine(e store.AssessmentEvent) string {
	ts := e.Timestamp.Local().Format("15:04:05")
	switch e.Action {
	case store.ActionAnswer:
		return fmt.Sprintf("    %s  answer %s → %s  (%d%%)", ts, e.QuestionID, strings.ToUpper(e.OptionKey), e.Progress)
	default:
		return fmt.Sprintf("    %s  %s  (%d%%)", ts, e.Action, e.Progress)
	}
}

func actionColor(a store.Action) color.Color {
	switch a {
	case store.ActionStart:
		return theme.Secondary
	case store.ActionSubmit:
		return theme.Success
	case store.ActionReset:
		return theme.Warning
	default:
		return theme.TextDim
	}
}
