package termio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console is the line-oriented prompt surface the engine talks to the
// operator through. Every suspension point in a session blocks on it;
// there are no timeouts. Tests drive it with plain buffers.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// New wraps a reader/writer pair, usually stdin and stdout.
func New(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewScanner(r), out: w}
}

// Writer exposes the output sink for components that render whole
// blocks of text themselves.
func (c *Console) Writer() io.Writer {
	return c.out
}

// Printf writes formatted text to the console.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Println writes its arguments followed by a newline.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// ReadLine shows the prompt and returns the next input line with
// surrounding whitespace trimmed. io.EOF is returned once input is
// exhausted.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// AskInt re-prompts until the operator supplies an integer within
// [lo, hi]. Non-numeric input never crashes the prompt.
func (c *Console) AskInt(prompt string, lo, hi int) (int, error) {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		if n, convErr := strconv.Atoi(line); convErr == nil && n >= lo && n <= hi {
			return n, nil
		}
		c.Printf("Please enter a number from %d to %d.\n", lo, hi)
	}
}

// AskCount asks how many cards to quiz. A blank line means all of them;
// anything else re-loops until an integer within [1, maxN].
func (c *Console) AskCount(prompt string, maxN int) (int, error) {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return maxN, nil
		}
		if n, convErr := strconv.Atoi(line); convErr == nil && n >= 1 && n <= maxN {
			return n, nil
		}
		c.Printf("Please enter a number from 1 to %d, or press Enter for all.\n", maxN)
	}
}

// AskYesNo re-prompts until it reads y/yes or n/no, case-insensitively.
func (c *Console) AskYesNo(prompt string) (bool, error) {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.Println("Please answer with 'y' or 'n'.")
	}
}

// WaitEnter blocks until the operator presses Enter. End of input counts
// as pressing Enter rather than an error.
func (c *Console) WaitEnter(prompt string) {
	fmt.Fprint(c.out, prompt)
	c.in.Scan()
}
