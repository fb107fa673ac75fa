package assessment

import (
	"time"

	"github.com/abhisek/triage/internal/catalog"
)

// AnswerLine is one question of a finished questionnaire.
type AnswerLine struct {
	QuestionID string
	Question   string
	OptionKey  string
	OptionText string
	Answered   bool
}

// Summary holds the data displayed after a questionnaire is submitted.
type Summary struct {
	SessionID      string
	ChiefComplaint string
	Domain         catalog.Domain
	Lines          []AnswerLine
	Answered       int
	Total          int
	Progress       int
	Duration       time.Duration
}

// BuildSummary creates a Summary from a session state.
func BuildSummary(st State) *Summary {
	lines := make([]AnswerLine, 0, len(st.Questions))
	for _, q := range st.Questions {
		line := AnswerLine{QuestionID: q.ID, Question: q.Text}
		if key, ok := st.Answers[q.ID]; ok {
			line.OptionKey = key
			line.Answered = true
			if opt, ok := q.Option(key); ok {
				line.OptionText = opt.Text
			}
		}
		lines = append(lines, line)
	}

	var duration time.Duration
	if !st.SubmittedAt.IsZero() && !st.StartedAt.IsZero() {
		duration = st.SubmittedAt.Sub(st.StartedAt)
	}

	return &Summary{
		SessionID:      st.SessionID,
		ChiefComplaint: st.ChiefComplaint,
		Domain:         st.Domain,
		Lines:          lines,
		Answered:       st.AnsweredCount(),
		Total:          len(st.Questions),
		Progress:       st.Progress,
		Duration:       duration,
	}
}
