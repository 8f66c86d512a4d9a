package quiz

import (
	"strings"

	"github.com/example/deckdrill/internal/domain"
)

// Audit answer sentinels for TermToDefinition items, where no free text
// is collected and the learner self-reports instead.
const (
	AnswerKnew    = "(knew)"
	AnswerUnknown = "(unknown)"
)

// NormalizeAnswer lowercases the text and collapses every whitespace run
// to a single space, so answers differing only in case or spacing
// compare equal.
func NormalizeAnswer(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// EvaluateTerm grades a free-text answer against the card's term.
func EvaluateTerm(card domain.Card, answer string) bool {
	return NormalizeAnswer(answer) == NormalizeAnswer(card.Term)
}

// TermPrompt picks the question shown in QuestionToTerm mode: the card's
// own quiz question when present, otherwise one synthesized from the
// definition, otherwise from the term itself.
func TermPrompt(card domain.Card) string {
	if card.QuizQuestion != "" {
		return card.QuizQuestion
	}
	if card.FullDef != "" {
		return "Which term fits: " + card.FullDef
	}
	return "Name the term for: " + card.Term
}
