package fingerprint

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/example/deckdrill/internal/domain"
)

// Normalize concatenates the card's content after cleaning each part.
// It trims whitespace, lowercases, and normalizes line endings for each
// field before joining them.
func Normalize(card domain.Card) string {
	normalizePart := func(part string) string {
		p := strings.ToLower(part)
		p = strings.TrimSpace(p)
		p = strings.ReplaceAll(p, "\r\n", "\n")
		return p
	}

	t := normalizePart(card.Term)
	d := normalizePart(card.FullDef)
	q := normalizePart(card.QuizQuestion)

	// We join with a newline to ensure separation between fields,
	// preventing accidental joining of words. e.g. "term" and
	// "definition" becoming "termdefinition".
	return strings.Join([]string{t, d, q}, "\n")
}

// Card takes a card, normalizes it, and returns its SHA-256 hash as a
// hex string.
func Card(card domain.Card) string {
	normalized := Normalize(card)
	hashBytes := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%x", hashBytes)
}

// Deck folds the title and every card identity into one stable hash, so
// log lines can tell apart deck revisions that share a title.
func Deck(deck domain.Deck) string {
	h := sha256.New()
	h.Write([]byte(deck.Title))
	for _, c := range deck.Cards {
		h.Write([]byte{0})
		h.Write([]byte(Card(c)))
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
