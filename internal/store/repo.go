package store

import (
	"context"
	"time"
)

// Action names an assessment lifecycle event.
type Action string

const (
	ActionStart  Action = "start"
	ActionAnswer Action = "answer"
	ActionReset  Action = "reset"
	ActionSubmit Action = "submit"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	SessionID string    // exact match when non-empty
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
}

// AssessmentEventData captures one step of a symptom-checker session.
type AssessmentEventData struct {
	SessionID      string
	Action         Action
	ChiefComplaint string
	Domain         string
	QuestionID     string
	OptionKey      string
	Progress       int
	// Timestamp defaults to the time of the append when zero.
	Timestamp time.Time
}

// AssessmentEvent is a recorded AssessmentEventData.
type AssessmentEvent struct {
	ID       int64
	Sequence int64
	AssessmentEventData
}

// EventRepo provides append and query access to assessment events.
type EventRepo interface {
	// AppendAssessmentEvent records a session step.
	AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error

	// ListAssessmentEvents returns events in sequence order.
	ListAssessmentEvents(ctx context.Context, opts QueryOpts) ([]AssessmentEvent, error)

	// QuerySessionSummaries returns one record per session, newest first.
	// opts.Limit caps the number of sessions; other fields filter events.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)
}

// SessionSummaryRecord folds the events of one assessment session.
type SessionSummaryRecord struct {
	SessionID      string
	ChiefComplaint string
	Domain         string
	StartedAt      time.Time
	LastEventAt    time.Time
	Answers        int // answer events, including overwrites
	Progress       int // progress at the last event
	Submitted      bool
}
