// Package selector picks the fixed questionnaire for a chief complaint.
package selector

import (
	"slices"
	"strings"

	"github.com/abhisek/triage/internal/catalog"
)

const (
	// QuestionCount is the number of questions in every questionnaire.
	QuestionCount = catalog.MinTotalQuestions

	// MaxSpecific caps how many questions the matched domain contributes.
	// Lower-priority specific questions beyond the cap are dropped, not
	// demoted to filler candidates.
	MaxSpecific = 7
)

// Selector maps chief complaints to questionnaires. It holds no mutable
// state and may be shared between sessions.
type Selector struct {
	catalog *catalog.Catalog
	rules   []Rule
}

// New creates a Selector over cat. When no rules are given, DefaultRules
// is used.
func New(cat *catalog.Catalog, rules ...Rule) *Selector {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Selector{
		catalog: cat,
		rules:   slices.Clone(rules),
	}
}

// Resolve returns the domain a chief complaint is routed to.
func (s *Selector) Resolve(chiefComplaint string) catalog.Domain {
	return resolve(s.rules, chiefComplaint)
}

// Select returns the questionnaire for chiefComplaint: up to MaxSpecific
// highest-priority questions of the resolved domain, backfilled from the
// general pool to QuestionCount, ordered by ID. Blank input yields nil.
func (s *Selector) Select(chiefComplaint string) []catalog.Question {
	if strings.TrimSpace(chiefComplaint) == "" {
		return nil
	}

	domain := s.Resolve(chiefComplaint)

	specific := byPriority(s.catalog.Pool(domain))
	if len(specific) > MaxSpecific {
		specific = specific[:MaxSpecific]
	}

	taken := make(map[string]bool, len(specific))
	for _, q := range specific {
		taken[q.ID] = true
	}

	needed := QuestionCount - len(specific)
	var available []catalog.Question
	for _, q := range s.catalog.Pool(catalog.DomainGeneral) {
		if !taken[q.ID] {
			available = append(available, q)
		}
	}
	filler := byPriority(available)
	if len(filler) > needed {
		filler = filler[:needed]
	}

	selected := make([]catalog.Question, 0, len(specific)+len(filler))
	selected = append(selected, specific...)
	selected = append(selected, filler...)
	slices.SortFunc(selected, func(a, b catalog.Question) int {
		return strings.Compare(a.ID, b.ID)
	})
	return selected
}

// byPriority sorts qs in place, highest priority first. Equal priorities
// keep their pool order.
func byPriority(qs []catalog.Question) []catalog.Question {
	slices.SortStableFunc(qs, func(a, b catalog.Question) int {
		return b.Priority - a.Priority
	})
	return qs
}
