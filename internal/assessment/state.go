package assessment

import (
	"time"

	"github.com/abhisek/triage/internal/catalog"
)

// Phase is the current step of the symptom-checker wizard.
type Phase int

const (
	PhaseInput         Phase = iota // Collecting the chief complaint
	PhaseQuestionnaire              // Questions resolved, accepting answers
	PhaseSubmitted                  // Finalized by the user
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseQuestionnaire:
		return "questionnaire"
	case PhaseSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// State is a read-only view of a session. Every session operation returns
// a fresh State; mutating it does not affect the session.
type State struct {
	// SessionID identifies the current questionnaire (empty in PhaseInput).
	SessionID string

	Phase          Phase
	ChiefComplaint string

	// Domain is the symptom domain the complaint was routed to.
	Domain catalog.Domain

	// Questions is the fixed, ID-ordered questionnaire.
	Questions []catalog.Question

	// Answers maps question IDs to chosen option keys. With answer
	// carry-over it may hold IDs from earlier questionnaires.
	Answers map[string]string

	// Progress is the answered percentage of Questions (0-100).
	Progress int

	StartedAt   time.Time
	SubmittedAt time.Time
}

// Answer returns the option key chosen for a current question.
func (s State) Answer(questionID string) (string, bool) {
	for _, q := range s.Questions {
		if q.ID == questionID {
			key, ok := s.Answers[questionID]
			return key, ok
		}
	}
	return "", false
}

// AnsweredCount returns how many current questions have an answer.
func (s State) AnsweredCount() int {
	return countAnswered(s.Questions, s.Answers)
}

// Complete reports whether every current question has an answer.
func (s State) Complete() bool {
	return len(s.Questions) > 0 && s.AnsweredCount() == len(s.Questions)
}

func countAnswered(questions []catalog.Question, answers map[string]string) int {
	n := 0
	for _, q := range questions {
		if _, ok := answers[q.ID]; ok {
			n++
		}
	}
	return n
}
