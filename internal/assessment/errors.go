package assessment

import (
	"errors"
	"fmt"
)

// ErrNotInQuestionnaire is returned when an operation needs an active
// questionnaire but the session is collecting input or already submitted.
var ErrNotInQuestionnaire = errors.New("no questionnaire in progress")

// ValidationError indicates user input that cannot start an assessment.
// The caller should re-prompt; session state is unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidReferenceError indicates an answer naming a question or option
// outside the current questionnaire. The answer map is left untouched.
type InvalidReferenceError struct {
	QuestionID string
	OptionKey  string

	// UnknownQuestion is true when the question itself is not part of the
	// questionnaire; otherwise only the option key is unknown.
	UnknownQuestion bool
}

func (e *InvalidReferenceError) Error() string {
	if e.UnknownQuestion {
		return fmt.Sprintf("question %q is not part of this assessment", e.QuestionID)
	}
	return fmt.Sprintf("question %q has no option %q", e.QuestionID, e.OptionKey)
}
