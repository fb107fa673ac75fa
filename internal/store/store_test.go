package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestOpenEmptyDSNUsesMemory(t *testing.T) {
	s, err := Open("")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.DB().Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestOpenFileCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "triage.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is covered by TestOpenFileCreatesDir.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='assessment_events'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("assessment_events table not found: %v", err)
	}
}

func TestMemoryStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)
	ctx := context.Background()

	if err := a.EventRepo().AppendAssessmentEvent(ctx, AssessmentEventData{
		SessionID: "s1",
		Action:    ActionStart,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := b.EventRepo().ListAssessmentEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("second store has %d events, want 0", len(events))
	}
}

func TestAssessmentEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ts := time.Date(2025, 12, 10, 16, 6, 27, 0, time.UTC)
	steps := []AssessmentEventData{
		{SessionID: "s1", Action: ActionStart, ChiefComplaint: "chest pain", Domain: "chest", Timestamp: ts},
		{SessionID: "s1", Action: ActionAnswer, QuestionID: "ch_01", OptionKey: "a", Progress: 10, Timestamp: ts.Add(time.Second)},
		{SessionID: "s1", Action: ActionSubmit, Progress: 10, Timestamp: ts.Add(2 * time.Second)},
	}
	for _, d := range steps {
		if err := repo.AppendAssessmentEvent(ctx, d); err != nil {
			t.Fatalf("append %s: %v", d.Action, err)
		}
	}

	events, err := repo.ListAssessmentEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	for i, e := range events {
		if e.Sequence != int64(i+1) {
			t.Errorf("events[%d].Sequence = %d, want %d", i, e.Sequence, i+1)
		}
		if e.Action != steps[i].Action {
			t.Errorf("events[%d].Action = %q, want %q", i, e.Action, steps[i].Action)
		}
		if !e.Timestamp.Equal(steps[i].Timestamp) {
			t.Errorf("events[%d].Timestamp = %v, want %v", i, e.Timestamp, steps[i].Timestamp)
		}
	}

	answer := events[1]
	if answer.QuestionID != "ch_01" || answer.OptionKey != "a" || answer.Progress != 10 {
		t.Errorf("answer event = %+v", answer.AssessmentEventData)
	}
	if events[0].ChiefComplaint != "chest pain" || events[0].Domain != "chest" {
		t.Errorf("start event = %+v", events[0].AssessmentEventData)
	}
}

func TestAppendRequiresAction(t *testing.T) {
	s := openTestStore(t)
	err := s.EventRepo().AppendAssessmentEvent(context.Background(), AssessmentEventData{SessionID: "s1"})
	if err == nil {
		t.Fatal("expected error for missing action")
	}
}

func TestAppendDefaultsTimestamp(t *testing.T) {
	s := openTestStore(t)
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	repo := &eventRepo{db: s.db, seq: s.seq, now: func() time.Time { return fixed }}
	ctx := context.Background()

	if err := repo.AppendAssessmentEvent(ctx, AssessmentEventData{SessionID: "s1", Action: ActionReset}); err != nil {
		t.Fatalf("append: %v", err)
	}
	events, err := repo.ListAssessmentEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 1 || !events[0].Timestamp.Equal(fixed) {
		t.Fatalf("events = %+v, want one event at %v", events, fixed)
	}
}

func TestListAssessmentEventsFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Date(2025, 12, 10, 12, 0, 0, 0, time.UTC)
	for i, sid := range []string{"s1", "s2", "s1", "s2", "s1"} {
		err := repo.AppendAssessmentEvent(ctx, AssessmentEventData{
			SessionID: sid,
			Action:    ActionAnswer,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	tests := []struct {
		name string
		opts QueryOpts
		want []int64
	}{
		{"all", QueryOpts{}, []int64{1, 2, 3, 4, 5}},
		{"session", QueryOpts{SessionID: "s1"}, []int64{1, 3, 5}},
		{"after", QueryOpts{After: 3}, []int64{4, 5}},
		{"before", QueryOpts{Before: 3}, []int64{1, 2}},
		{"limit", QueryOpts{Limit: 2}, []int64{1, 2}},
		{"from", QueryOpts{From: base.Add(3 * time.Minute)}, []int64{4, 5}},
		{"to", QueryOpts{To: base.Add(time.Minute)}, []int64{1, 2}},
		{"combined", QueryOpts{SessionID: "s2", After: 2}, []int64{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := repo.ListAssessmentEvents(ctx, tt.opts)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			var got []int64
			for _, e := range events {
				got = append(got, e.Sequence)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("sequences = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("sequences = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestQuerySessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Date(2025, 12, 10, 9, 0, 0, 0, time.UTC)
	steps := []AssessmentEventData{
		{SessionID: "s1", Action: ActionStart, ChiefComplaint: "headache", Domain: "head_throat"},
		{SessionID: "s1", Action: ActionAnswer, QuestionID: "ht_01", OptionKey: "a", Progress: 10},
		{SessionID: "s1", Action: ActionAnswer, QuestionID: "ht_01", OptionKey: "b", Progress: 10},
		{SessionID: "s1", Action: ActionReset, Progress: 10},
		{SessionID: "s2", Action: ActionStart, ChiefComplaint: "chest pain", Domain: "chest"},
		{SessionID: "s2", Action: ActionAnswer, QuestionID: "ch_01", OptionKey: "a", Progress: 10},
		{SessionID: "s2", Action: ActionAnswer, QuestionID: "ch_02", OptionKey: "c", Progress: 20},
		{SessionID: "s2", Action: ActionSubmit, Progress: 20},
	}
	for i, d := range steps {
		d.Timestamp = base.Add(time.Duration(i) * time.Minute)
		if err := repo.AppendAssessmentEvent(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	latest := records[0]
	if latest.SessionID != "s2" || latest.ChiefComplaint != "chest pain" || latest.Domain != "chest" {
		t.Errorf("records[0] = %+v", latest)
	}
	if !latest.Submitted || latest.Answers != 2 || latest.Progress != 20 {
		t.Errorf("records[0] = %+v, want submitted with 2 answers at 20%%", latest)
	}
	if !latest.StartedAt.Equal(base.Add(4*time.Minute)) || !latest.LastEventAt.Equal(base.Add(7*time.Minute)) {
		t.Errorf("records[0] times = %v..%v", latest.StartedAt, latest.LastEventAt)
	}

	first := records[1]
	if first.SessionID != "s1" || first.Submitted || first.Answers != 2 || first.Progress != 10 {
		t.Errorf("records[1] = %+v", first)
	}

	limited, err := repo.QuerySessionSummaries(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].SessionID != "s2" {
		t.Errorf("limited = %+v, want only s2", limited)
	}
}
