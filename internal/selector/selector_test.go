package selector

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triage/internal/catalog"
)

func ids(qs []catalog.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func q(id string, priority int) catalog.Question {
	return catalog.Question{
		ID:       id,
		Text:     "Question " + id + "?",
		Priority: priority,
		Options:  []catalog.Option{{Key: "a", Text: "Yes"}, {Key: "b", Text: "No"}},
	}
}

func mustCatalog(t *testing.T, pools map[catalog.Domain][]catalog.Question) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(pools)
	require.NoError(t, err)
	return c
}

func TestResolve(t *testing.T) {
	s := New(catalog.Default())

	tests := []struct {
		input string
		want  catalog.Domain
	}{
		{"headache", catalog.DomainHeadThroat},
		{"Sore THROAT", catalog.DomainHeadThroat},
		{"migraine with aura", catalog.DomainHeadThroat},
		{"feeling dizzy", catalog.DomainHeadThroat},
		{"severe chest pain and shortness of breath", catalog.DomainChest},
		{"Heart racing", catalog.DomainChest},
		{"lung pain", catalog.DomainChest},
		{"random fatigue", catalog.DomainGeneral},
		{"fever", catalog.DomainGeneral},
		// First rule wins when several match.
		{"headache and chest pain", catalog.DomainHeadThroat},
		// Substring containment, not word matching.
		{"overhead lights hurt", catalog.DomainHeadThroat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Resolve(tt.input))
		})
	}
}

func TestSelect_HeadacheReturnsTen(t *testing.T) {
	got := New(catalog.Default()).Select("headache")
	require.Len(t, got, QuestionCount)
	assert.Equal(t, []string{
		"gn_01", "gn_07", "gn_08",
		"ht_01", "ht_02", "ht_03", "ht_04", "ht_05", "ht_07", "ht_12",
	}, ids(got))
}

func TestSelect_ChestRouting(t *testing.T) {
	got := ids(New(catalog.Default()).Select("severe chest pain and shortness of breath"))
	require.Len(t, got, QuestionCount)

	for _, id := range []string{"ch_01", "ch_02", "ch_03", "ch_08", "ch_15", "ch_04", "ch_05"} {
		assert.Contains(t, got, id)
	}
	assert.Equal(t, []string{
		"ch_01", "ch_02", "ch_03", "ch_04", "ch_05", "ch_08", "ch_15",
		"gn_01", "gn_07", "gn_08",
	}, got)
}

func TestSelect_GeneralFallback(t *testing.T) {
	got := ids(New(catalog.Default()).Select("random fatigue"))
	assert.Equal(t, []string{
		"gn_01", "gn_02", "gn_04", "gn_06", "gn_07",
		"gn_08", "gn_09", "gn_10", "gn_11", "gn_15",
	}, got)
}

func TestSelect_Deterministic(t *testing.T) {
	s := New(catalog.Default())
	for _, input := range []string{"headache", "chest pain", "random fatigue", "Dizzy spells", "x"} {
		first := ids(s.Select(input))
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, ids(s.Select(input)), "input %q", input)
		}
	}
}

func TestSelect_NoDuplicatesAndAscending(t *testing.T) {
	s := New(catalog.Default())
	for _, input := range []string{"headache", "chest", "fatigue", "breathless and dizzy", "lung"} {
		got := ids(s.Select(input))
		seen := make(map[string]bool)
		for i, id := range got {
			assert.False(t, seen[id], "duplicate %s for %q", id, input)
			seen[id] = true
			if i > 0 {
				assert.Less(t, got[i-1], id, "not ascending for %q", input)
			}
		}
	}
}

func TestSelect_BlankInput(t *testing.T) {
	s := New(catalog.Default())
	assert.Empty(t, s.Select(""))
	assert.Empty(t, s.Select("   \t\n"))
}

func TestSelect_StablePriorityTieBreak(t *testing.T) {
	// Eight equal-priority chest questions listed in descending ID order:
	// a stable sort keeps pool order, so the last one (ch_01) misses the cap.
	var chest []catalog.Question
	for i := 8; i >= 1; i-- {
		chest = append(chest, q(fmt.Sprintf("ch_%02d", i), 3))
	}
	c := mustCatalog(t, map[catalog.Domain][]catalog.Question{
		catalog.DomainChest:   chest,
		catalog.DomainGeneral: {q("gn_01", 2), q("gn_02", 4), q("gn_03", 4), q("gn_04", 1)},
	})

	got := ids(New(c).Select("chest"))
	assert.Equal(t, []string{
		"ch_02", "ch_03", "ch_04", "ch_05", "ch_06", "ch_07", "ch_08",
		"gn_01", "gn_02", "gn_03",
	}, got)
	assert.NotContains(t, got, "ch_01")
}

func TestSelect_FillerTieBreakKeepsPoolOrder(t *testing.T) {
	c := mustCatalog(t, map[catalog.Domain][]catalog.Question{
		catalog.DomainChest: {q("ch_01", 5), q("ch_02", 5), q("ch_03", 5), q("ch_04", 5), q("ch_05", 5), q("ch_06", 5), q("ch_07", 5)},
		// gn_09 and gn_03 precede gn_02 in the pool at equal priority.
		catalog.DomainGeneral: {q("gn_05", 5), q("gn_09", 3), q("gn_03", 3), q("gn_02", 3)},
	})

	got := ids(New(c).Select("heart"))
	require.Len(t, got, QuestionCount)
	assert.Contains(t, got, "gn_05")
	assert.Contains(t, got, "gn_09")
	assert.Contains(t, got, "gn_03")
	assert.NotContains(t, got, "gn_02")
}

func TestSelect_SmallSpecificPoolBackfillsMore(t *testing.T) {
	var general []catalog.Question
	for i := 1; i <= 10; i++ {
		general = append(general, q(fmt.Sprintf("gn_%02d", i), 3))
	}
	c := mustCatalog(t, map[catalog.Domain][]catalog.Question{
		catalog.DomainChest:   {q("ch_01", 5), q("ch_02", 1)},
		catalog.DomainGeneral: general,
	})

	got := New(c).Select("chest")
	require.Len(t, got, QuestionCount)
	specific := 0
	for _, qq := range got {
		if strings.HasPrefix(qq.ID, "ch_") {
			specific++
		}
	}
	assert.Equal(t, 2, specific)
	assert.NotContains(t, ids(got), "gn_09")
	assert.NotContains(t, ids(got), "gn_10")
}

func TestSelect_GeneralDomainExhaustion(t *testing.T) {
	// Only general questions exist and there are exactly ten: the general
	// domain fills both the specific and filler sets without duplicates.
	var general []catalog.Question
	for i := 1; i <= 10; i++ {
		general = append(general, q(fmt.Sprintf("gn_%02d", i), 3))
	}
	c := mustCatalog(t, map[catalog.Domain][]catalog.Question{catalog.DomainGeneral: general})

	got := ids(New(c).Select("fatigue"))
	assert.Len(t, got, 10)
	assert.Equal(t, "gn_01", got[0])
	assert.Equal(t, "gn_10", got[9])
}

func TestSelect_UnknownRuleDomainFallsBackToGeneral(t *testing.T) {
	s := New(catalog.Default(), Rule{Keywords: []string{"rash"}, Domain: "skin"})

	assert.Equal(t, catalog.Domain("skin"), s.Resolve("itchy rash"))
	got := ids(s.Select("itchy rash"))
	assert.Equal(t, ids(New(catalog.Default()).Select("random fatigue")), got)
}

func TestSelect_CustomRulesAreOrdered(t *testing.T) {
	s := New(catalog.Default(),
		Rule{Keywords: []string{"chest"}, Domain: catalog.DomainChest},
		Rule{Keywords: []string{"head"}, Domain: catalog.DomainHeadThroat},
	)
	assert.Equal(t, catalog.DomainChest, s.Resolve("headache and chest pain"))
}

func TestSelect_ResultDoesNotAliasCatalog(t *testing.T) {
	s := New(catalog.Default())
	got := s.Select("headache")
	got[0].Options[0].Text = "mutated"

	again := s.Select("headache")
	assert.NotEqual(t, "mutated", again[0].Options[0].Text)
}
