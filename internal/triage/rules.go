package triage

import (
	"regexp"
	"strings"
)

// DefaultSpecialty is used when no rule matches.
const DefaultSpecialty = "General Medicine"

// Rule routes free-text symptoms to a specialty.
type Rule struct {
	Specialty string
	Pattern   *regexp.Regexp
	Reason    string
}

// Match is the outcome of classifying a symptom description.
type Match struct {
	Specialty string
	Reason    string
	// Matched is false when the default specialty was used.
	Matched bool
}

// Rules are evaluated in order; the first match wins.
var Rules = []Rule{
	{
		Specialty: "Cardiology",
		Pattern:   regexp.MustCompile(`\b(chest pain|heart|palpitations|shortness of breath|breathless)\b`),
		Reason:    "Symptoms describe chest or heart issues.",
	},
	{
		Specialty: "Dermatology",
		Pattern:   regexp.MustCompile(`\b(rash|itch|skin|acne|blister|spots|eczema|redness)\b`),
		Reason:    "Symptoms describe skin issues.",
	},
	{
		Specialty: "Orthopedics",
		Pattern:   regexp.MustCompile(`\b(joint|knee|back pain|bone|fracture|sprain|muscle|stiffness|swelling)\b`),
		Reason:    "Symptoms describe bone, joint, or muscle issues.",
	},
	{
		Specialty: "Neurology",
		Pattern:   regexp.MustCompile(`\b(headache|numbness|seizure|stroke|paralysis|tremor|vision loss|dizziness)\b`),
		Reason:    "Symptoms describe neurological issues.",
	},
	{
		Specialty: "Pediatrics",
		Pattern:   regexp.MustCompile(`\b(child|infant|baby|toddler)\b`),
		Reason:    "Patient is described as a child or infant.",
	},
	{
		Specialty: "Gynecology",
		Pattern:   regexp.MustCompile(`\b(period|menstrual|pregnancy|pregnant|vaginal|pelvic)\b`),
		Reason:    "Symptoms describe gynecological issues.",
	},
	{
		Specialty: "Psychiatry",
		Pattern:   regexp.MustCompile(`\b(anxiety|depression|sad|panic|suicidal|mood|fear|hallucination)\b`),
		Reason:    "Symptoms describe mental health issues.",
	},
}

// Classify returns the specialty for a symptom description using Rules.
func Classify(symptoms string) Match {
	lowered := strings.ToLower(symptoms)
	for _, r := range Rules {
		if r.Pattern.MatchString(lowered) {
			return Match{Specialty: r.Specialty, Reason: r.Reason, Matched: true}
		}
	}
	return Match{Specialty: DefaultSpecialty, Reason: "No rule matched."}
}
