// Package assessment holds the symptom-checker questionnaire state machine.
package assessment

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/triage/internal/catalog"
)

// Selector picks the questionnaire for a chief complaint.
type Selector interface {
	Resolve(chiefComplaint string) catalog.Domain
	Select(chiefComplaint string) []catalog.Question
}

// Option configures a Session.
type Option func(*Session)

// WithAnswerCarryOver keeps the answer map across Reset and Start, so
// returning to an earlier complaint shows the earlier choices again.
// Only answers for current questions are rendered or counted.
func WithAnswerCarryOver() Option {
	return func(s *Session) { s.carryOver = true }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDGenerator overrides how session IDs are generated.
func WithIDGenerator(newID func() string) Option {
	return func(s *Session) { s.newID = newID }
}

// Session drives one patient through the symptom checker. It is owned by a
// single caller and is not safe for concurrent use.
type Session struct {
	selector Selector

	phase     Phase
	sessionID string
	complaint string
	domain    catalog.Domain
	questions []catalog.Question
	byID      map[string]catalog.Question
	answers   map[string]string

	startedAt   time.Time
	submittedAt time.Time

	carryOver bool
	now       func() time.Time
	newID     func() string
}

// NewSession creates a session in PhaseInput.
func NewSession(sel Selector, opts ...Option) *Session {
	s := &Session{
		selector: sel,
		phase:    PhaseInput,
		answers:  make(map[string]string),
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start resolves the questionnaire for chiefComplaint and moves to
// PhaseQuestionnaire. It may be called again to change the complaint.
// A blank complaint returns *ValidationError and leaves the session as is.
func (s *Session) Start(chiefComplaint string) (State, error) {
	if strings.TrimSpace(chiefComplaint) == "" {
		return s.State(), &ValidationError{Field: "chief complaint", Reason: "must not be blank"}
	}

	questions := s.selector.Select(chiefComplaint)
	byID := make(map[string]catalog.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	s.phase = PhaseQuestionnaire
	s.sessionID = s.newID()
	s.complaint = chiefComplaint
	s.domain = s.selector.Resolve(chiefComplaint)
	s.questions = questions
	s.byID = byID
	s.startedAt = s.now()
	s.submittedAt = time.Time{}
	if !s.carryOver {
		s.answers = make(map[string]string)
	}
	return s.State(), nil
}

// Answer records optionKey for questionID, replacing any earlier choice.
// Unknown questions or options return *InvalidReferenceError.
func (s *Session) Answer(questionID, optionKey string) (State, error) {
	if s.phase != PhaseQuestionnaire {
		return s.State(), ErrNotInQuestionnaire
	}
	q, ok := s.byID[questionID]
	if !ok {
		return s.State(), &InvalidReferenceError{QuestionID: questionID, OptionKey: optionKey, UnknownQuestion: true}
	}
	if !q.HasOption(optionKey) {
		return s.State(), &InvalidReferenceError{QuestionID: questionID, OptionKey: optionKey}
	}

	s.answers[questionID] = optionKey
	return s.State(), nil
}

// Progress returns round(100 * answered / total) over the current
// questions, or 0 when there are none.
func (s *Session) Progress() int {
	if len(s.questions) == 0 {
		return 0
	}
	answered := countAnswered(s.questions, s.answers)
	return int(math.Round(100 * float64(answered) / float64(len(s.questions))))
}

// Reset returns to PhaseInput and clears the questionnaire. The chief
// complaint is kept so the input step can be pre-filled.
func (s *Session) Reset() State {
	s.phase = PhaseInput
	s.sessionID = ""
	s.domain = ""
	s.questions = nil
	s.byID = nil
	s.startedAt = time.Time{}
	s.submittedAt = time.Time{}
	if !s.carryOver {
		s.answers = make(map[string]string)
	}
	return s.State()
}

// Submit finalizes the questionnaire. Completion is not enforced; the
// shell decides whether to allow submitting a partial questionnaire.
func (s *Session) Submit() (State, error) {
	if s.phase != PhaseQuestionnaire {
		return s.State(), ErrNotInQuestionnaire
	}
	s.phase = PhaseSubmitted
	s.submittedAt = s.now()
	return s.State(), nil
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	questions := make([]catalog.Question, len(s.questions))
	for i, q := range s.questions {
		q.Options = append([]catalog.Option(nil), q.Options...)
		questions[i] = q
	}
	answers := make(map[string]string, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	return State{
		SessionID:      s.sessionID,
		Phase:          s.phase,
		ChiefComplaint: s.complaint,
		Domain:         s.domain,
		Questions:      questions,
		Answers:        answers,
		Progress:       s.Progress(),
		StartedAt:      s.startedAt,
		SubmittedAt:    s.submittedAt,
	}
}
