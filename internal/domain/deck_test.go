package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardQuizzable(t *testing.T) {
	assert.True(t, Card{Term: "atoll"}.Quizzable())
	assert.True(t, Card{Term: "atoll", FullDef: "a ring-shaped reef"}.Quizzable())
	assert.False(t, Card{FullDef: "definition without a term"}.Quizzable())
	assert.False(t, Card{}.Quizzable())
}

func TestDeckQuizzableCards(t *testing.T) {
	deck := Deck{
		Title: "Mixed",
		Cards: []Card{
			{Term: "atoll", FullDef: "a ring-shaped reef"},
			{FullDef: "orphan definition"},
			{Term: "fjord", QuizQuestion: "Narrow sea inlet between cliffs?"},
			{QuizQuestion: "orphan question"},
		},
	}

	eligible := deck.QuizzableCards()

	assert.Len(t, eligible, 2)
	assert.Equal(t, "atoll", eligible[0].Term)
	assert.Equal(t, "fjord", eligible[1].Term)
}

func TestDeckQuizzableCardsNoneEligible(t *testing.T) {
	deck := Deck{
		Title: "Blanks",
		Cards: []Card{
			{FullDef: "no term here"},
			{QuizQuestion: "nor here"},
		},
	}

	assert.Empty(t, deck.QuizzableCards())
}
