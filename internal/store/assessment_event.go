package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
	now func() time.Time
}

func (r *eventRepo) AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error {
	if data.Action == "" {
		return fmt.Errorf("append assessment event: action is required")
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	ts := data.Timestamp
	if ts.IsZero() {
		ts = r.clock()
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO assessment_events
		(sequence, timestamp_ms, session_id, action, chief_complaint, domain, question_id, option_key, progress)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, ts.UnixMilli(), data.SessionID, string(data.Action), data.ChiefComplaint,
		data.Domain, data.QuestionID, data.OptionKey, data.Progress,
	)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListAssessmentEvents(ctx context.Context, opts QueryOpts) ([]AssessmentEvent, error) {
	var (
		where []string
		args  []any
	)
	if opts.SessionID != "" {
		where = append(where, "session_id = ?")
		args = append(args, opts.SessionID)
	}
	if opts.After > 0 {
		where = append(where, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		where = append(where, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		where = append(where, "timestamp_ms >= ?")
		args = append(args, opts.From.UnixMilli())
	}
	if !opts.To.IsZero() {
		where = append(where, "timestamp_ms <= ?")
		args = append(args, opts.To.UnixMilli())
	}

	var q strings.Builder
	q.WriteString(`SELECT id, sequence, timestamp_ms, session_id, action, chief_complaint,
		domain, question_id, option_key, progress FROM assessment_events`)
	if len(where) > 0 {
		q.WriteString(" WHERE ")
		q.WriteString(strings.Join(where, " AND "))
	}
	q.WriteString(" ORDER BY sequence ASC")
	if opts.Limit > 0 {
		q.WriteString(" LIMIT ?")
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query assessment events: %w", err)
	}
	defer rows.Close()

	var events []AssessmentEvent
	for rows.Next() {
		var (
			e      AssessmentEvent
			tsMs   int64
			action string
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &tsMs, &e.SessionID, &action,
			&e.ChiefComplaint, &e.Domain, &e.QuestionID, &e.OptionKey, &e.Progress); err != nil {
			return nil, fmt.Errorf("scan assessment event: %w", err)
		}
		e.Action = Action(action)
		e.Timestamp = time.UnixMilli(tsMs)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessment events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}
