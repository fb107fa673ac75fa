package catalog

// Domain identifies a symptom domain and names its question pool.
type Domain string

const (
	DomainHeadThroat Domain = "head_throat"
	DomainChest      Domain = "chest"
	DomainGeneral    Domain = "general"
)

// MinGeneralQuestions is the smallest general pool that still leaves room
// for backfilling any specific selection.
const MinGeneralQuestions = 3

// MinTotalQuestions is the number of questions every assessment asks.
const MinTotalQuestions = 10

// DomainDisplayName returns a human-readable name for a domain.
func DomainDisplayName(d Domain) string {
	switch d {
	case DomainHeadThroat:
		return "Head & Throat"
	case DomainChest:
		return "Chest"
	case DomainGeneral:
		return "General"
	default:
		return string(d)
	}
}

// Option is a single answer choice of a question.
type Option struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Question is one multiple-choice intake question.
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`

	// Priority ranks diagnostic significance (1-5, higher first). It only
	// drives selection and is never shown to the patient.
	Priority int      `json:"priority"`
	Options  []Option `json:"options"`
}

// Option returns the option with the given key.
func (q Question) Option(key string) (Option, bool) {
	for _, o := range q.Options {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}

// HasOption reports whether key is one of the question's option keys.
func (q Question) HasOption(key string) bool {
	_, ok := q.Option(key)
	return ok
}

func (q Question) clone() Question {
	q.Options = append([]Option(nil), q.Options...)
	return q
}
