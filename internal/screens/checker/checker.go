package checker

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/triage/internal/assessment"
	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/screens/summary"
	"github.com/abhisek/triage/internal/store"
	"github.com/abhisek/triage/internal/ui/components"
	"github.com/abhisek/triage/internal/ui/layout"
)

// CheckerScreen implements screen.Screen for the symptom checker wizard.
type CheckerScreen struct {
	session   *assessment.Session
	eventRepo store.EventRepo
	logger    zerolog.Logger

	input   components.TextInput
	pickers []components.MultiChoice
	focus   int
	errMsg  string

	confirmingSubmit bool
}

var _ screen.Screen = (*CheckerScreen)(nil)
var _ screen.KeyHintProvider = (*CheckerScreen)(nil)

// New creates a CheckerScreen. initialSymptom pre-fills the input step.
// eventRepo may be nil.
func New(session *assessment.Session, eventRepo store.EventRepo, logger zerolog.Logger, initialSymptom string) *CheckerScreen {
	input := components.NewTextInput("Main Symptom", "e.g. Headache, Chest pain, Fever...", 120)
	if initialSymptom != "" {
		input.SetValue(initialSymptom)
	}
	return &CheckerScreen{
		session:   session,
		eventRepo: eventRepo,
		logger:    logger,
		input:     input,
	}
}

func (s *CheckerScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *CheckerScreen) Title() string {
	return "Symptom Checker"
}

func (s *CheckerScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmingSubmit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit anyway"},
			{Key: "N", Description: "Keep answering"},
		}
	case s.session.State().Phase == assessment.PhaseQuestionnaire:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Option"},
			{Key: "A-C/1-3", Description: "Answer"},
			{Key: "Tab", Description: "Next"},
			{Key: "Ctrl+R", Description: "Change Symptom"},
			{Key: "Ctrl+S", Description: "Analyze"},
			{Key: "Esc", Description: "Dashboard"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start Assessment"},
			{Key: "Esc", Description: "Dashboard"},
		}
	}
}

func (s *CheckerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChoiceMadeMsg:
		return s.handleChoice(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward cursor blinks and the like to the input.
	if s.session.State().Phase == assessment.PhaseInput {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *CheckerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.session.State().Phase {
	case assessment.PhaseInput:
		if key == "enter" {
			return s.start()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case assessment.PhaseQuestionnaire:
		if s.confirmingSubmit {
			switch key {
			case "y", "Y":
				s.confirmingSubmit = false
				return s.submit()
			case "n", "N":
				s.confirmingSubmit = false
			}
			return s, nil
		}

		switch key {
		case "ctrl+r":
			return s.reset()
		case "ctrl+s":
			if !s.session.State().Complete() {
				s.confirmingSubmit = true
				return s, nil
			}
			return s.submit()
		case "tab", "right":
			s.moveFocus(1)
			return s, nil
		case "shift+tab", "left":
			s.moveFocus(-1)
			return s, nil
		}

		if len(s.pickers) == 0 {
			return s, nil
		}
		var cmd tea.Cmd
		s.pickers[s.focus], cmd = s.pickers[s.focus].Update(msg)
		return s, cmd
	}

	return s, nil
}

// start resolves the questionnaire for the typed complaint.
func (s *CheckerScreen) start() (screen.Screen, tea.Cmd) {
	st, err := s.session.Start(s.input.Value())
	if err != nil {
		var valErr *assessment.ValidationError
		if errors.As(err, &valErr) {
			s.input.Err = "Please describe your main symptom."
		} else {
			s.input.Err = err.Error()
		}
		s.logger.Warn().Err(err).Msg("assessment start rejected")
		return s, nil
	}

	s.input.Blur()
	s.errMsg = ""
	s.pickers = buildPickers(st)
	s.focus = firstUnanswered(st)
	s.syncFocus()

	s.logger.Info().
		Str("session_id", st.SessionID).
		Str("domain", string(st.Domain)).
		Int("questions", len(st.Questions)).
		Msg("assessment started")
	s.record(store.AssessmentEventData{
		SessionID:      st.SessionID,
		Action:         store.ActionStart,
		ChiefComplaint: st.ChiefComplaint,
		Domain:         string(st.Domain),
		Progress:       st.Progress,
	})
	return s, nil
}

func (s *CheckerScreen) handleChoice(msg components.ChoiceMadeMsg) (screen.Screen, tea.Cmd) {
	st, err := s.session.Answer(msg.ID, msg.Key)
	if err != nil {
		s.errMsg = err.Error()
		s.logger.Warn().Err(err).Str("question_id", msg.ID).Str("option", msg.Key).Msg("answer rejected")
		return s, nil
	}
	s.errMsg = ""

	for i := range s.pickers {
		if s.pickers[i].ID == msg.ID {
			s.pickers[i].Chosen = msg.Key
		}
	}
	if s.focus < len(s.pickers)-1 && s.pickers[s.focus].ID == msg.ID {
		s.moveFocus(1)
	}

	s.logger.Debug().
		Str("session_id", st.SessionID).
		Str("question_id", msg.ID).
		Str("option", msg.Key).
		Int("progress", st.Progress).
		Msg("answer recorded")
	s.record(store.AssessmentEventData{
		SessionID:  st.SessionID,
		Action:     store.ActionAnswer,
		Domain:     string(st.Domain),
		QuestionID: msg.ID,
		OptionKey:  msg.Key,
		Progress:   st.Progress,
	})
	return s, nil
}

// reset returns to the input step with the complaint pre-filled.
func (s *CheckerScreen) reset() (screen.Screen, tea.Cmd) {
	prev := s.session.State()
	st := s.session.Reset()

	s.pickers = nil
	s.focus = 0
	s.errMsg = ""
	s.input.SetValue(st.ChiefComplaint)

	s.logger.Info().Str("session_id", prev.SessionID).Msg("symptom change requested")
	s.record(store.AssessmentEventData{
		SessionID: prev.SessionID,
		Action:    store.ActionReset,
		Domain:    string(prev.Domain),
		Progress:  prev.Progress,
	})
	return s, s.input.Focus()
}

func (s *CheckerScreen) submit() (screen.Screen, tea.Cmd) {
	st, err := s.session.Submit()
	if err != nil {
		s.errMsg = err.Error()
		s.logger.Warn().Err(err).Msg("submit rejected")
		return s, nil
	}

	s.logger.Info().
		Str("session_id", st.SessionID).
		Int("answered", st.AnsweredCount()).
		Int("progress", st.Progress).
		Msg("assessment submitted")
	s.record(store.AssessmentEventData{
		SessionID: st.SessionID,
		Action:    store.ActionSubmit,
		Domain:    string(st.Domain),
		Progress:  st.Progress,
	})

	sum := assessment.BuildSummary(st)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (s *CheckerScreen) record(data store.AssessmentEventData) {
	if s.eventRepo == nil {
		return
	}
	if err := s.eventRepo.AppendAssessmentEvent(context.Background(), data); err != nil {
		s.logger.Error().Err(err).Str("action", string(data.Action)).Msg("persist assessment event")
	}
}

func (s *CheckerScreen) moveFocus(delta int) {
	if len(s.pickers) == 0 {
		return
	}
	s.focus += delta
	if s.focus < 0 {
		s.focus = 0
	}
	if s.focus >= len(s.pickers) {
		s.focus = len(s.pickers) - 1
	}
	s.syncFocus()
}

func (s *CheckerScreen) syncFocus() {
	for i := range s.pickers {
		s.pickers[i].Focused = i == s.focus
	}
}

func buildPickers(st assessment.State) []components.MultiChoice {
	pickers := make([]components.MultiChoice, 0, len(st.Questions))
	for _, q := range st.Questions {
		chosen, _ := st.Answer(q.ID)
		pickers = append(pickers, components.NewMultiChoice(q.ID, q.Text, choices(q), chosen))
	}
	return pickers
}

func choices(q catalog.Question) []components.Choice {
	out := make([]components.Choice, len(q.Options))
	for i, o := range q.Options {
		out[i] = components.Choice{Key: o.Key, Text: o.Text}
	}
	return out
}

func firstUnanswered(st assessment.State) int {
	for i, q := range st.Questions {
		if _, ok := st.Answer(q.ID); !ok {
			return i
		}
	}
	return 0
}
