package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/example/deckdrill/internal/auditlog"
	"github.com/example/deckdrill/internal/config"
	"github.com/example/deckdrill/internal/domain"
	"github.com/example/deckdrill/internal/fingerprint"
	"github.com/example/deckdrill/internal/logging"
	"github.com/example/deckdrill/internal/parser"
	"github.com/example/deckdrill/internal/quiz"
	"github.com/example/deckdrill/internal/registry"
	"github.com/example/deckdrill/internal/termio"
)

func main() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted. Bye!")
		os.Exit(0)
	}()

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "deckdrill:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// 1. Resolve configuration, with a local .env feeding the
	// environment when present
	_ = godotenv.Load()
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// 2. Load every deck once at startup
	decks, err := parser.LoadDir(cfg.DataDir)
	if err != nil {
		return err
	}
	if len(decks) == 0 {
		return fmt.Errorf("no YAML decks found in %s", cfg.DataDir)
	}
	for _, d := range decks {
		slog.Debug("deck loaded",
			"title", d.Title,
			"cards", len(d.Cards),
			"id", fingerprint.Deck(d))
	}

	// 3. Hand the menu loop its collaborators
	a := &app{
		console:  termio.New(os.Stdin, os.Stdout),
		registry: registry.New(decks),
		audit:    auditlog.New(cfg.LogDir, rand.New(rand.NewSource(seed+1))),
		rng:      rand.New(rand.NewSource(seed)),
	}
	return a.loop()
}

// app ties the interactive menu to the loaded decks and the audit
// trail. One instance lives for the whole process.
type app struct {
	console  *termio.Console
	registry *registry.Registry
	audit    *auditlog.Logger
	rng      *rand.Rand
}

// loop runs the deck/mode menu until the operator declines another
// round or input ends. Menu prompts treat end of input as declining.
func (a *app) loop() error {
	for {
		deck, err := a.chooseDeck()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		mode, err := a.chooseMode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		count, err := a.chooseCount(deck)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		session := quiz.NewSession(quiz.Config{Deck: deck, Mode: mode, Count: count},
			a.console, a.audit, a.rng)
		summary, err := session.Run()
		if err != nil {
			return err
		}
		if summary != nil {
			summary.Render(a.console.Writer())
			a.console.WaitEnter("Press Enter to continue...")
		}

		a.console.Println()
		again, err := a.console.AskYesNo("Study another deck? (y/n): ")
		if errors.Is(err, io.EOF) || (err == nil && !again) {
			break
		}
		if err != nil {
			return err
		}
	}

	a.console.Println("Good luck! See you next time.")
	return nil
}

func (a *app) chooseDeck() (domain.Deck, error) {
	a.console.Println("Select a subject:")
	a.console.Println()
	for i, d := range a.registry.All() {
		a.console.Printf("  %d. %s  (%d cards)  [%s]\n",
			i+1, d.Title, len(d.Cards), filepath.Base(d.SourceFile))
	}
	a.console.Println()

	idx, err := a.console.AskInt("Enter choice: ", 1, a.registry.Len())
	if err != nil {
		return domain.Deck{}, err
	}
	return a.registry.At(idx - 1)
}

func (a *app) chooseMode() (quiz.Mode, error) {
	a.console.Println("Choose quiz mode:")
	a.console.Println()
	a.console.Printf("  %d. %s   (uses 'quiz_question', expects the term)\n",
		quiz.QuestionToTerm, quiz.QuestionToTerm)
	a.console.Printf("  %d. %s  (show term, reveal definition)\n",
		quiz.TermToDefinition, quiz.TermToDefinition)
	a.console.Printf("  %d. %s\n", quiz.Mixed, quiz.Mixed)
	a.console.Println()

	n, err := a.console.AskInt("Enter choice: ", int(quiz.QuestionToTerm), int(quiz.Mixed))
	if err != nil {
		return 0, err
	}
	return quiz.Mode(n), nil
}

// chooseCount asks how many cards to draw. A deck with nothing to ask
// skips the prompt; the session reports it instead.
func (a *app) chooseCount(deck domain.Deck) (int, error) {
	eligible := len(deck.QuizzableCards())
	if eligible == 0 {
		return 0, nil
	}
	a.console.Printf("How many cards? (1..%d)\n", eligible)
	a.console.Println("Tip: press Enter for all.")
	return a.console.AskCount("Enter number: ", eligible)
}
