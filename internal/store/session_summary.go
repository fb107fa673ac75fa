package store

import (
	"context"
	"fmt"
	"sort"
)

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	limit := opts.Limit
	opts.Limit = 0

	events, err := r.ListAssessmentEvents(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	records := summarizeSessions(events)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// summarizeSessions folds sequence-ordered events into per-session records,
// newest session first.
func summarizeSessions(events []AssessmentEvent) []SessionSummaryRecord {
	byID := make(map[string]*SessionSummaryRecord)
	lastSeq := make(map[string]int64)

	for _, e := range events {
		if e.SessionID == "" {
			continue
		}
		rec, ok := byID[e.SessionID]
		if !ok {
			rec = &SessionSummaryRecord{SessionID: e.SessionID, StartedAt: e.Timestamp}
			byID[e.SessionID] = rec
		}

		switch e.Action {
		case ActionStart:
			rec.ChiefComplaint = e.ChiefComplaint
			rec.Domain = e.Domain
			rec.StartedAt = e.Timestamp
		case ActionAnswer:
			rec.Answers++
		case ActionSubmit:
			rec.Submitted = true
		}
		rec.Progress = e.Progress
		rec.LastEventAt = e.Timestamp
		lastSeq[e.SessionID] = e.Sequence
	}

	records := make([]SessionSummaryRecord, 0, len(byID))
	for _, rec := range byID {
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return lastSeq[records[i].SessionID] > lastSeq[records[j].SessionID]
	})
	return records
}
