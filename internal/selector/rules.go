package selector

import (
	"strings"

	"github.com/abhisek/triage/internal/catalog"
)

// Rule routes a chief complaint to a domain when the lowercased text
// contains any of its keywords.
type Rule struct {
	Keywords []string
	Domain   catalog.Domain
}

// DefaultRules is the built-in routing table, evaluated in order.
// Text matching no rule falls back to the general domain.
var DefaultRules = []Rule{
	{Keywords: []string{"head", "throat", "migraine", "dizzy"}, Domain: catalog.DomainHeadThroat},
	{Keywords: []string{"chest", "heart", "breath", "lung"}, Domain: catalog.DomainChest},
}

// Matches reports whether lowered contains any of the rule's keywords.
// The caller lowercases the text once for the whole table.
func (r Rule) Matches(lowered string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// resolve returns the domain of the first matching rule, or general.
func resolve(rules []Rule, text string) catalog.Domain {
	lowered := strings.ToLower(text)
	for _, r := range rules {
		if r.Matches(lowered) {
			return r.Domain
		}
	}
	return catalog.DomainGeneral
}
