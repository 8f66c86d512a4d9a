package domain

// Card represents a single term-definition-question entry.
// A card whose Term is empty can still live in a deck (it is shown in
// counts) but is never drawn into a quiz session.
type Card struct {
	Term         string
	FullDef      string
	QuizQuestion string
}

// Quizzable reports whether the card can be asked in a session.
func (c Card) Quizzable() bool {
	return c.Term != ""
}

// Deck is a named, ordered collection of cards loaded from one source
// file. Decks are never mutated after loading.
type Deck struct {
	Title      string
	Cards      []Card
	SourceFile string
}

// QuizzableCards returns the cards eligible for a quiz session, in deck
// order.
func (d Deck) QuizzableCards() []Card {
	var cards []Card
	for _, c := range d.Cards {
		if c.Quizzable() {
			cards = append(cards, c)
		}
	}
	return cards
}
