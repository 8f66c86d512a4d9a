package quiz

import "math/rand"

// Mode selects how cards are presented. The numeric values double as the
// operator's menu indices.
type Mode int

const (
	// QuestionToTerm asks the card's quiz question and expects the term.
	QuestionToTerm Mode = 1
	// TermToDefinition shows the term, reveals the definition, and takes
	// a self-reported judgment.
	TermToDefinition Mode = 2
	// Mixed re-draws one of the two concrete modes for every card.
	Mixed Mode = 3
)

func (m Mode) String() string {
	switch m {
	case QuestionToTerm:
		return "Question -> Term"
	case TermToDefinition:
		return "Term -> Definition"
	case Mixed:
		return "Mixed"
	}
	return "Unknown"
}

// Resolve returns the effective mode for a single card. Mixed draws
// uniformly between QuestionToTerm and TermToDefinition on every call;
// the concrete modes resolve to themselves.
func (m Mode) Resolve(rng *rand.Rand) Mode {
	if m != Mixed {
		return m
	}
	if rng.Intn(2) == 0 {
		return QuestionToTerm
	}
	return TermToDefinition
}
