package registry

import (
	"fmt"

	"github.com/example/deckdrill/internal/domain"
)

// Registry is the in-memory collection of decks available to quiz
// sessions. It preserves load order and is read-only after startup; the
// engine keeps no other deck state anywhere.
type Registry struct {
	decks []domain.Deck
}

// New builds a registry over the loaded decks.
func New(decks []domain.Deck) *Registry {
	owned := make([]domain.Deck, len(decks))
	copy(owned, decks)
	return &Registry{decks: owned}
}

// Len returns the number of registered decks.
func (r *Registry) Len() int {
	return len(r.decks)
}

// At returns the deck at the zero-based index i.
func (r *Registry) At(i int) (domain.Deck, error) {
	if i < 0 || i >= len(r.decks) {
		return domain.Deck{}, fmt.Errorf("deck index %d out of range [0, %d)", i, len(r.decks))
	}
	return r.decks[i], nil
}

// All returns the registered decks in load order. The returned slice is a
// copy; callers cannot reorder the registry through it.
func (r *Registry) All() []domain.Deck {
	out := make([]domain.Deck, len(r.decks))
	copy(out, r.decks)
	return out
}
