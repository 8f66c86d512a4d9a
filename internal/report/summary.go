// Package report renders the end-of-session results for a quiz run.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/example/deckdrill/internal/domain"
)

// Miss is one card the player got wrong, along with the answer they
// gave. The answer is empty for self-assessed cards, where the player
// never typed the term itself.
type Miss struct {
	Card   domain.Card
	Answer string
}

// Summary accumulates the outcome of a single quiz session.
type Summary struct {
	// Graded counts the cards that reached a verdict. Cards skipped by
	// quitting mid-session are not graded and do not dilute the score.
	Graded  int
	Correct int
	Elapsed time.Duration
	Missed  []Miss
}

// Percent is the score as a percentage of graded cards. A session with
// no graded cards scores zero rather than dividing by zero.
func (s *Summary) Percent() float64 {
	if s.Graded == 0 {
		return 0
	}
	return 100.0 * float64(s.Correct) / float64(s.Graded)
}

// Render writes the results block in the fixed console layout.
func (s *Summary) Render(w io.Writer) {
	fmt.Fprintln(w, "\n--- Results ---")
	fmt.Fprintf(w, "Score: %d/%d  (%.1f%%)\n", s.Correct, s.Graded, s.Percent())
	fmt.Fprintf(w, "Time:  %.1fs\n", s.Elapsed.Seconds())

	if len(s.Missed) == 0 {
		return
	}
	fmt.Fprintln(w, "\nYou missed these:")
	for _, m := range s.Missed {
		fmt.Fprintf(w, "- Term: %s\n", m.Card.Term)
		if m.Card.QuizQuestion != "" {
			fmt.Fprintf(w, "  Q : %s\n", m.Card.QuizQuestion)
		}
		if m.Answer != "" {
			fmt.Fprintf(w, "  Your answer: %s\n", m.Answer)
		}
		if m.Card.FullDef != "" {
			fmt.Fprintf(w, "  Def: %s\n", m.Card.FullDef)
		}
	}
	fmt.Fprintln(w)
}
