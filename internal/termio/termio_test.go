package termio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func console(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestReadLineTrims(t *testing.T) {
	c, out := console("  spaced answer  \n")

	line, err := c.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "spaced answer", line)
	assert.Equal(t, "> ", out.String())
}

func TestReadLineEndOfInput(t *testing.T) {
	c, _ := console("only\n")

	_, err := c.ReadLine("")
	require.NoError(t, err)

	_, err = c.ReadLine("")
	assert.ErrorIs(t, err, io.EOF)
}

func TestAskIntReloops(t *testing.T) {
	c, out := console("zero\n99\n\n2\n")

	n, err := c.AskInt("Enter choice: ", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, strings.Count(out.String(), "Please enter a number from 1 to 3."))
}

func TestAskIntEndOfInput(t *testing.T) {
	c, _ := console("not a number\n")

	_, err := c.AskInt("Enter choice: ", 1, 3)
	assert.ErrorIs(t, err, io.EOF)
}

func TestAskCountBlankMeansAll(t *testing.T) {
	c, _ := console("\n")

	n, err := c.AskCount("Enter number: ", 12)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestAskCountReloops(t *testing.T) {
	c, out := console("0\n13\nlots\n7\n")

	n, err := c.AskCount("Enter number: ", 12)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, 3, strings.Count(out.String(), "Please enter a number from 1 to 12, or press Enter for all."))
}

func TestAskYesNo(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
		prompts  int
	}{
		{"plain yes", "y\n", true, 0},
		{"long yes any case", "YES\n", true, 0},
		{"plain no", "n\n", false, 0},
		{"long no", "no\n", false, 0},
		{"reloops until valid", "sure\nok\ny\n", true, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, out := console(tc.input)

			got, err := c.AskYesNo("Study another deck? (y/n): ")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.prompts, strings.Count(out.String(), "Please answer with 'y' or 'n'."))
		})
	}
}

func TestWaitEnterProceedsOnEndOfInput(t *testing.T) {
	c, out := console("")

	c.WaitEnter("Press Enter to continue...")
	assert.Equal(t, "Press Enter to continue...", out.String())
}
