package signup

import (
	"net/mail"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/ui/components"
	"github.com/abhisek/triage/internal/ui/layout"
	"github.com/abhisek/triage/internal/ui/theme"
)

const (
	fieldName = iota
	fieldEmail
	fieldSpecialty
	fieldCount
)

// SignupScreen is the doctor account form. Accounts are not persisted; a
// valid submission only shows a notice.
type SignupScreen struct {
	fields    [fieldCount]components.TextInput
	focus     int
	submitted bool
}

var _ screen.Screen = (*SignupScreen)(nil)
var _ screen.KeyHintProvider = (*SignupScreen)(nil)

// New creates a new SignupScreen.
func New() *SignupScreen {
	s := &SignupScreen{}
	s.fields[fieldName] = components.NewTextInput("Full name", "Dr. Jane Doe", 80)
	s.fields[fieldEmail] = components.NewTextInput("Email", "jane@example.com", 120)
	s.fields[fieldSpecialty] = components.NewTextInput("Specialty", "General Medicine", 60)
	for i := 1; i < fieldCount; i++ {
		s.fields[i].Blur()
	}
	return s
}

func (s *SignupScreen) Init() tea.Cmd {
	return s.fields[s.focus].Focus()
}

func (s *SignupScreen) Title() string {
	return "Add New Doctor"
}

func (s *SignupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Create account"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SignupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
	case "enter":
		if s.validate() {
			s.submitted = true
			return s, nil
		}
		return s, s.setFocus(s.firstInvalid())
	}

	s.submitted = false
	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

func (s *SignupScreen) setFocus(i int) tea.Cmd {
	s.fields[s.focus].Blur()
	s.focus = i
	return s.fields[s.focus].Focus()
}

// validate sets field errors and reports whether the form is complete.
func (s *SignupScreen) validate() bool {
	ok := true
	for i := range s.fields {
		s.fields[i].Err = ""
		if s.fields[i].Blank() {
			s.fields[i].Err = "Required."
			ok = false
		}
	}
	if email := strings.TrimSpace(s.fields[fieldEmail].Value()); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			s.fields[fieldEmail].Err = "Enter a valid email address."
			ok = false
		}
	}
	return ok
}

func (s *SignupScreen) firstInvalid() int {
	for i := range s.fields {
		if s.fields[i].Err != "" {
			return i
		}
	}
	return s.focus
}

func (s *SignupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var parts []string
	parts = append(parts, components.SectionTitle("Create Doctor Account", cw-4))
	for i := range s.fields {
		parts = append(parts, s.fields[i].View())
	}

	notice := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("Account creation is not yet connected to a server.")
	if s.submitted {
		notice = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).
			Render("Saved locally for " + strings.TrimSpace(s.fields[fieldName].Value()) +
				". Account creation is not yet connected to a server.")
	}
	parts = append(parts, notice)

	return components.Frame(components.Card(strings.Join(parts, "\n\n"), cw), width, height)
}
