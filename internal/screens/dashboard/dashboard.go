package dashboard

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/screens/history"
	"github.com/abhisek/triage/internal/screens/signup"
	"github.com/abhisek/triage/internal/store"
	"github.com/abhisek/triage/internal/triage"
	"github.com/abhisek/triage/internal/ui/components"
	"github.com/abhisek/triage/internal/ui/layout"
)

// CheckerFactory builds a symptom checker pre-filled with a symptom.
type CheckerFactory func(initialSymptom string) screen.Screen

// DashboardScreen is the doctor dashboard: incoming cases, a quick symptom
// check field and the main menu.
type DashboardScreen struct {
	cases      []triage.Case
	quick      components.TextInput
	quickFocus bool
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen. eventRepo may be nil, which disables
// the history entry.
func New(newChecker CheckerFactory, eventRepo store.EventRepo, cases []triage.Case) *DashboardScreen {
	d := &DashboardScreen{
		cases: cases,
		quick: components.NewTextInput("Quick Symptom Check", "Describe a symptom and press Enter", 120),
	}
	d.quick.Blur()

	d.menuLabels = []string{"Quick Symptom Checker", "Add New Doctor", "History", "Exit"}
	items := []components.MenuItem{
		{Label: d.menuLabels[0], Action: func() tea.Cmd {
			return d.openChecker(newChecker)
		}},
		{Label: d.menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: signup.New()}
			}
		}},
		{Label: d.menuLabels[2], Disabled: eventRepo == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: d.menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	d.menu = components.NewMenu(items)

	return d
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if d.quickFocus {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check symptom"},
			{Key: "Tab", Description: "Menu"},
			{Key: "Ctrl+T", Description: "Theme"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Tab", Description: "Quick check"},
		{Key: "Ctrl+T", Description: "Theme"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if d.quickFocus {
			var cmd tea.Cmd
			d.quick, cmd = d.quick.Update(msg)
			return d, cmd
		}
		return d, nil
	}

	if kmsg.String() == "tab" {
		d.quickFocus = !d.quickFocus
		if d.quickFocus {
			return d, d.quick.Focus()
		}
		d.quick.Blur()
		return d, nil
	}

	if d.quickFocus {
		if kmsg.String() == "enter" {
			return d, d.menu.Items[0].Action()
		}
		var cmd tea.Cmd
		d.quick, cmd = d.quick.Update(msg)
		return d, cmd
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) openChecker(newChecker CheckerFactory) tea.Cmd {
	initial := strings.TrimSpace(d.quick.Value())
	d.quick.SetValue("")
	checker := newChecker(initial)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: checker}
	}
}

func (d *DashboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)

	sections := []string{
		renderCases(d.cases, cw, compact),
		renderQuickCheck(d.quick, d.quickFocus, cw),
		renderMenu(d.menu, d.quickFocus, cw),
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}
