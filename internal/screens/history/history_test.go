package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/store"
)

func seededRepo(t *testing.T) store.EventRepo {
	t.Helper()
	st, err := store.Open(store.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	repo := st.EventRepo()
	ctx := context.Background()
	base := time.Date(2025, 12, 10, 16, 0, 0, 0, time.UTC)
	events := []store.AssessmentEventData{
		{SessionID: "s1", Action: store.ActionStart, ChiefComplaint: "headache", Domain: "head_throat", Timestamp: base},
		{SessionID: "s1", Action: store.ActionAnswer, QuestionID: "ht_01", OptionKey: "b", Progress: 10, Timestamp: base.Add(time.Minute)},
		{SessionID: "s1", Action: store.ActionSubmit, Progress: 10, Timestamp: base.Add(2 * time.Minute)},
		{SessionID: "s2", Action: store.ActionStart, ChiefComplaint: "chest pain", Domain: "chest", Timestamp: base.Add(time.Hour)},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendAssessmentEvent(ctx, e))
	}
	return repo
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
}

func TestHistory_LoadsSessionsNewestFirst(t *testing.T) {
	s := New(seededRepo(t))
	load(t, s)

	require.True(t, s.loaded)
	require.Len(t, s.sessions, 2)
	assert.Equal(t, "s2", s.sessions[0].SessionID)
	assert.Equal(t, "s1", s.sessions[1].SessionID)
	assert.True(t, s.sessions[1].Submitted)
	assert.Len(t, s.events["s1"], 3)
}

func TestHistory_EmptyView(t *testing.T) {
	st, err := store.Open(store.MemoryDSN)
	require.NoError(t, err)
	defer st.Close()

	s := New(st.EventRepo())
	assert.Contains(t, s.View(100, 30), "Loading history")

	load(t, s)
	assert.Contains(t, s.View(100, 30), "No assessments yet")
}

func TestHistory_NavigateAndExpand(t *testing.T) {
	s := New(seededRepo(t))
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, s.expanded[1])

	view := s.View(140, 40)
	assert.Contains(t, view, "headache")
	assert.Contains(t, view, "Head & Throat")
	assert.True(t, strings.Contains(view, "ht_01 → B"))
	assert.Contains(t, view, "submitted")

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.selected)
}

func TestHistory_EscPops(t *testing.T) {
	s := New(seededRepo(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}
