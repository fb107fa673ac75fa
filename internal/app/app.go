package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/triage/internal/assessment"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/screens/checker"
	"github.com/abhisek/triage/internal/screens/dashboard"
	"github.com/abhisek/triage/internal/screens/welcome"
	"github.com/abhisek/triage/internal/store"
	"github.com/abhisek/triage/internal/triage"
	"github.com/abhisek/triage/internal/ui/layout"
	"github.com/abhisek/triage/internal/ui/theme"
)

// Options holds the dependencies the screens need.
type Options struct {
	Selector assessment.Selector
	// EventRepo may be nil; assessment events are then not recorded.
	EventRepo    store.EventRepo
	Logger       zerolog.Logger
	CarryAnswers bool
	Cases        []triage.Case
	// SkipWelcome starts on the dashboard.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger zerolog.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	newChecker := func(initial string) screen.Screen {
		var sessOpts []assessment.Option
		if opts.CarryAnswers {
			sessOpts = append(sessOpts, assessment.WithAnswerCarryOver())
		}
		sess := assessment.NewSession(opts.Selector, sessOpts...)
		return checker.New(sess, opts.EventRepo, opts.Logger, initial)
	}
	newDashboard := func() screen.Screen {
		return dashboard.New(newChecker, opts.EventRepo, opts.Cases)
	}

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = newDashboard()
	} else {
		initial = welcome.New(newDashboard)
	}

	return AppModel{
		router: router.New(initial),
		logger: opts.Logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.logger.Info().Msg("quit")
			return m, tea.Quit
		case "ctrl+t":
			p := theme.Toggle()
			m.logger.Debug().Str("theme", p.Name).Msg("theme toggled")
			return m, nil
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PushScreenMsg:
		m.logger.Debug().Str("screen", msg.Screen.Title()).Msg("navigate")
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, themeStatus(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// footerHints prefers the active screen's hints and appends the global ones.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	} else if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Continue"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func themeStatus() string {
	if theme.IsDark() {
		return "◐ dark"
	}
	return "◑ light"
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
