package parser

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/example/deckdrill/internal/domain"
)

// Deck files come in two accepted shapes: a mapping with "title" and a
// "cards" sequence, or a bare sequence of card entries. Anything else
// still loads, as a zero-card deck named after the file.

// Discover returns the deck file paths under dataDir, sorted
// case-insensitively by filename. The extension match is case-insensitive
// too, so Terms.YML is picked up alongside terms.yml.
func Discover(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("reading deck directory %s: %w", dataDir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml") {
			paths = append(paths, filepath.Join(dataDir, e.Name()))
		}
	}

	sort.SliceStable(paths, func(i, j int) bool {
		return strings.ToLower(filepath.Base(paths[i])) < strings.ToLower(filepath.Base(paths[j]))
	})
	return paths, nil
}

// LoadFile reads and normalizes one deck file.
func LoadFile(path string) (domain.Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Deck{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes YAML deck data and normalizes it into a Deck. The source
// path is kept for display and used as the title fallback. Decode errors
// are returned so the caller can skip the file; every decodable shape
// normalizes without error.
func Parse(data []byte, sourceFile string) (domain.Deck, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return domain.Deck{}, fmt.Errorf("parsing %s: %w", sourceFile, err)
	}
	return normalizeDeck(root, sourceFile), nil
}

// LoadDir loads every discovered deck file under dataDir. A file that
// fails to parse is skipped with a diagnostic; a single bad file never
// aborts loading. Decks are returned in discovery order.
func LoadDir(dataDir string) ([]domain.Deck, error) {
	paths, err := Discover(dataDir)
	if err != nil {
		return nil, err
	}

	var decks []domain.Deck
	for _, path := range paths {
		deck, err := LoadFile(path)
		if err != nil {
			slog.Warn("skipping unreadable deck file", "path", path, "error", err)
			continue
		}
		decks = append(decks, deck)
	}
	return decks, nil
}

// normalizeDeck collapses the two legacy deck shapes into one canonical
// Deck. The shape decision happens exactly once, here; nothing downstream
// ever branches on the source layout again.
func normalizeDeck(root any, sourceFile string) domain.Deck {
	base := baseName(sourceFile)

	switch v := root.(type) {
	case map[string]any:
		rawCards, ok := v["cards"].([]any)
		if !ok {
			break
		}
		title := scalarString(v["title"])
		if title == "" {
			title = base
		}
		return domain.Deck{Title: title, Cards: coerceCards(rawCards), SourceFile: sourceFile}
	case []any:
		return domain.Deck{Title: base, Cards: coerceCards(v), SourceFile: sourceFile}
	}

	// Scalar, null, or a mapping without a proper cards list: degrade to an
	// empty deck instead of failing the run.
	return domain.Deck{Title: base, SourceFile: sourceFile}
}

func coerceCards(raw []any) []domain.Card {
	cards := make([]domain.Card, 0, len(raw))
	for _, entry := range raw {
		cards = append(cards, coerceCard(entry))
	}
	return cards
}

// coerceCard turns one raw entry into a Card. It never fails: mapping
// entries contribute their known fields, anything else becomes a card
// whose term is the entry's string form.
func coerceCard(raw any) domain.Card {
	switch m := raw.(type) {
	case map[string]any:
		return domain.Card{
			Term:         strings.TrimSpace(scalarString(m["term"])),
			FullDef:      strings.TrimSpace(scalarString(m["full_def"])),
			QuizQuestion: strings.TrimSpace(scalarString(m["quiz_question"])),
		}
	case map[any]any:
		return domain.Card{
			Term:         strings.TrimSpace(scalarString(m["term"])),
			FullDef:      strings.TrimSpace(scalarString(m["full_def"])),
			QuizQuestion: strings.TrimSpace(scalarString(m["quiz_question"])),
		}
	case nil:
		return domain.Card{}
	default:
		return domain.Card{Term: fmt.Sprint(raw)}
	}
}

// scalarString renders a scalar value as a string. Null and composite
// values (nested mappings or sequences) default to the empty string.
func scalarString(v any) string {
	switch v.(type) {
	case nil, map[string]any, map[any]any, []any:
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
