package auditlog

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// PlainFile receives records verbatim; ShadowFile receives the
	// obfuscated copies. Both live in the configured log directory.
	PlainFile  = "answers.log"
	ShadowFile = "stamp.log"

	timeLayout = "2006-01-02 15:04:05"
)

// Record is one graded answer bound for both audit trails.
type Record struct {
	Time    time.Time
	Deck    string
	Mode    string
	Term    string
	Answer  string
	Correct bool
}

// Line renders the tab-separated audit line: local timestamp to the
// second, deck title, effective mode name, term, raw answer, and a 1/0
// correctness flag.
func (r Record) Line() string {
	flag := "0"
	if r.Correct {
		flag = "1"
	}
	return strings.Join([]string{
		r.Time.Format(timeLayout),
		r.Deck,
		r.Mode,
		r.Term,
		r.Answer,
		flag,
	}, "\t")
}

// Logger appends graded answers to the plain and shadow logs under one
// directory. Each call opens, appends, and closes the files, so no
// buffered entry can be lost to a mid-session crash.
type Logger struct {
	dir string
	rng *rand.Rand
}

// New returns a Logger writing under dir. The rng feeds the obfuscation
// padding.
func New(dir string, rng *rand.Rand) *Logger {
	return &Logger{dir: dir, rng: rng}
}

// Append writes one record to both logs, the plain line first. A failure
// on one file does not suppress the write to the other; whatever failed
// is reported together.
func (l *Logger) Append(rec Record) error {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("creating log directory %s: %w", l.dir, err)
	}
	line := rec.Line()
	plainErr := appendLine(filepath.Join(l.dir, PlainFile), line)
	shadowErr := appendLine(filepath.Join(l.dir, ShadowFile), Obfuscate(line, l.rng))
	return errors.Join(plainErr, shadowErr)
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	_, writeErr := f.WriteString(line + "\n")
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("appending to %s: %w", path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing %s: %w", path, closeErr)
	}
	return nil
}
