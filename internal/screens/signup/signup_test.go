package signup

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func typeText(s *SignupScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func press(s *SignupScreen, code rune) {
	s.Update(tea.KeyPressMsg{Code: code})
}

func TestSignup_Title(t *testing.T) {
	assert.Equal(t, "Add New Doctor", New().Title())
}

func TestSignup_EmptySubmitMarksRequired(t *testing.T) {
	s := New()
	s.Init()
	press(s, tea.KeyEnter)

	assert.False(t, s.submitted)
	for i := range s.fields {
		assert.Equal(t, "Required.", s.fields[i].Err)
	}
	assert.Equal(t, fieldName, s.focus)
}

func TestSignup_TabCyclesFields(t *testing.T) {
	s := New()
	s.Init()
	press(s, tea.KeyTab)
	assert.Equal(t, fieldEmail, s.focus)
	press(s, tea.KeyTab)
	assert.Equal(t, fieldSpecialty, s.focus)
	press(s, tea.KeyTab)
	assert.Equal(t, fieldName, s.focus)
}

func TestSignup_InvalidEmail(t *testing.T) {
	s := New()
	s.Init()
	typeText(s, "Dr Who")
	press(s, tea.KeyTab)
	typeText(s, "not-an-email")
	press(s, tea.KeyTab)
	typeText(s, "Cardiology")
	press(s, tea.KeyEnter)

	assert.False(t, s.submitted)
	assert.Equal(t, "Enter a valid email address.", s.fields[fieldEmail].Err)
	assert.Equal(t, fieldEmail, s.focus)
}

func TestSignup_ValidSubmitShowsNotice(t *testing.T) {
	s := New()
	s.Init()
	typeText(s, "Dr Who")
	press(s, tea.KeyTab)
	typeText(s, "who@example.com")
	press(s, tea.KeyTab)
	typeText(s, "Cardiology")
	press(s, tea.KeyEnter)

	assert.True(t, s.submitted)
	view := s.View(100, 40)
	assert.True(t, strings.Contains(view, "not yet connected"))
	assert.True(t, strings.Contains(view, "Dr Who"))
}
