// Package quiz runs interactive flashcard sessions: it samples cards,
// resolves the presentation mode per card, grades answers, and feeds the
// audit trail and the end-of-session summary.
package quiz

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/deckdrill/internal/auditlog"
	"github.com/example/deckdrill/internal/domain"
	"github.com/example/deckdrill/internal/report"
	"github.com/example/deckdrill/internal/termio"
)

// CancelToken ends the session when entered at any prompt of an active
// card. Matching ignores case and surrounding whitespace.
const CancelToken = "q"

// Config describes one quiz run. Count bounds how many cards are drawn
// from the shuffled deck; zero or an out-of-range value means all of
// them.
type Config struct {
	Deck  domain.Deck
	Mode  Mode
	Count int
}

// Session drives a single quiz run over the console. It is built per
// run and not reused.
type Session struct {
	id      string
	cfg     Config
	console *termio.Console
	audit   *auditlog.Logger
	rng     *rand.Rand
	now     func() time.Time
}

// NewSession wires a run against a console, an audit trail, and a
// random source. The caller owns the rng; sessions never touch the
// global one.
func NewSession(cfg Config, console *termio.Console, audit *auditlog.Logger, rng *rand.Rand) *Session {
	return &Session{
		id:      uuid.NewString(),
		cfg:     cfg,
		console: console,
		audit:   audit,
		rng:     rng,
		now:     time.Now,
	}
}

// itemOutcome is what playing one card produced. cancelled means the
// card reached no verdict and the session stops without logging it.
type itemOutcome struct {
	cancelled   bool
	correct     bool
	auditAnswer string
	missAnswer  string
}

// Run plays the session to exhaustion or cancellation and returns the
// summary. A deck with no quizzable cards prints a notice and returns a
// nil summary. Audit write failures abort the run immediately.
func (s *Session) Run() (*report.Summary, error) {
	cards := s.cfg.Deck.QuizzableCards()
	if len(cards) == 0 {
		s.console.Println("This deck has no cards.")
		return nil, nil
	}

	s.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	n := s.cfg.Count
	if n < 1 || n > len(cards) {
		n = len(cards)
	}
	cards = cards[:n]

	slog.Info("session started",
		"session", s.id,
		"deck", s.cfg.Deck.Title,
		"mode", s.cfg.Mode.String(),
		"cards", len(cards))

	summary := &report.Summary{}
	start := s.now()

	s.console.Printf("--- %s ---\n", s.cfg.Deck.Title)
	s.console.Printf("Mode: %s | Cards: %d\n", s.cfg.Mode, len(cards))
	s.console.Printf("Type '%s' to quit the quiz.\n\n", CancelToken)

	for i, card := range cards {
		effective := s.cfg.Mode.Resolve(s.rng)
		s.console.Printf("[%d/%d]\n", i+1, len(cards))

		outcome, err := s.playCard(card, effective)
		if err != nil {
			return nil, err
		}
		if outcome.cancelled {
			break
		}

		summary.Graded++
		if outcome.correct {
			summary.Correct++
		} else {
			summary.Missed = append(summary.Missed, report.Miss{
				Card:   card,
				Answer: outcome.missAnswer,
			})
		}

		rec := auditlog.Record{
			Time:    s.now(),
			Deck:    s.cfg.Deck.Title,
			Mode:    effective.String(),
			Term:    card.Term,
			Answer:  outcome.auditAnswer,
			Correct: outcome.correct,
		}
		if err := s.audit.Append(rec); err != nil {
			return nil, fmt.Errorf("recording answer: %w", err)
		}
		s.console.Println()
	}

	summary.Elapsed = s.now().Sub(start)
	slog.Info("session finished",
		"session", s.id,
		"graded", summary.Graded,
		"correct", summary.Correct)
	return summary, nil
}

func (s *Session) playCard(card domain.Card, mode Mode) (itemOutcome, error) {
	switch mode {
	case QuestionToTerm:
		return s.askTerm(card)
	case TermToDefinition:
		return s.selfAssess(card)
	}
	return itemOutcome{}, fmt.Errorf("unknown quiz mode %d", mode)
}

// askTerm plays one QuestionToTerm card: show the prompt, read free
// text, grade it against the term.
func (s *Session) askTerm(card domain.Card) (itemOutcome, error) {
	s.console.Println(TermPrompt(card))
	answer, err := s.console.ReadLine("> ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return itemOutcome{cancelled: true}, nil
		}
		return itemOutcome{}, err
	}
	if strings.EqualFold(answer, CancelToken) {
		return itemOutcome{cancelled: true}, nil
	}

	if EvaluateTerm(card, answer) {
		s.console.Println("✓ Correct!")
		return itemOutcome{correct: true, auditAnswer: answer, missAnswer: answer}, nil
	}
	s.console.Printf("✗ Incorrect. Answer: %s\n", card.Term)
	if card.FullDef != "" {
		s.console.Printf("   Def: %s\n", card.FullDef)
	}
	return itemOutcome{auditAnswer: answer, missAnswer: answer}, nil
}

// selfAssess plays one TermToDefinition card: show the term, reveal the
// definition on request, then take a y/n self-report. The miss answer
// stays empty because the learner never typed the term.
func (s *Session) selfAssess(card domain.Card) (itemOutcome, error) {
	s.console.Printf("Term: %s\n", card.Term)

	reveal := fmt.Sprintf("(Press Enter to reveal definition or type '%s' to quit) ", CancelToken)
	line, err := s.console.ReadLine(reveal)
	if err != nil && !errors.Is(err, io.EOF) {
		return itemOutcome{}, err
	}
	// Running out of input on a reveal wait just proceeds.
	if err == nil && strings.EqualFold(line, CancelToken) {
		return itemOutcome{cancelled: true}, nil
	}

	if card.FullDef != "" {
		s.console.Printf("Definition: %s\n", card.FullDef)
	} else {
		s.console.Println("(No definition provided in this card.)")
	}

	for {
		line, err := s.console.ReadLine("Did you know it? (y/n): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return itemOutcome{cancelled: true}, nil
			}
			return itemOutcome{}, err
		}
		switch strings.ToLower(line) {
		case CancelToken:
			return itemOutcome{cancelled: true}, nil
		case "y", "yes":
			return itemOutcome{correct: true, auditAnswer: AnswerKnew}, nil
		case "n", "no":
			return itemOutcome{auditAnswer: AnswerUnknown}, nil
		}
		s.console.Println("Please answer with 'y' or 'n'.")
	}
}
