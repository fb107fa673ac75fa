// Package triage models incoming patient cases on the doctor dashboard and
// routes them to a specialty.
package triage

import "time"

// Status is the review state of a case.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// Case is one incoming patient request.
type Case struct {
	ID         int
	Name       string
	Symptoms   string
	ReceivedAt time.Time
	Status     Status
}

// Specialty classifies the case's symptoms.
func (c Case) Specialty() Match {
	return Classify(c.Symptoms)
}

// SeedCases returns the static dashboard cases.
func SeedCases() []Case {
	ist := time.FixedZone("IST", 5*60*60+30*60)
	return []Case{
		{
			ID:         1,
			Name:       "Alex Kumar",
			Symptoms:   "Small rash on arm",
			ReceivedAt: time.Date(2025, time.December, 10, 16, 36, 27, 0, ist),
			Status:     StatusRejected,
		},
		{
			ID:         2,
			Name:       "Pritam Sahoo",
			Symptoms:   "Chest pain",
			ReceivedAt: time.Date(2025, time.December, 10, 16, 6, 27, 0, ist),
			Status:     StatusPending,
		},
	}
}

// Pending returns the cases still awaiting review, in input order.
func Pending(cases []Case) []Case {
	var out []Case
	for _, c := range cases {
		if c.Status == StatusPending {
			out = append(out, c)
		}
	}
	return out
}
