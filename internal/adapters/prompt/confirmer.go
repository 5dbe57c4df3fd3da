// Package prompt asks the operator to confirm mutating actions on the terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.trai.ch/modup/internal/ui/output"
	"go.trai.ch/modup/internal/ui/style"
	"golang.org/x/term"
)

// Confirmer implements ports.Confirmer over a line-oriented reader.
// Answering "a" approves the current and every later action.
type Confirmer struct {
	mu          sync.Mutex
	in          *bufio.Reader
	out         io.Writer
	interactive func() bool
	all         bool
}

// New creates a Confirmer reading from stdin and prompting on stderr.
func New() *Confirmer {
	return NewWithIO(os.Stdin, os.Stderr, func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec // fd fits in int
	})
}

// NewWithIO creates a Confirmer over the given streams.
func NewWithIO(in io.Reader, out io.Writer, interactive func() bool) *Confirmer {
	return &Confirmer{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Interactive reports whether stdin is a terminal.
func (c *Confirmer) Interactive() bool {
	return c.interactive()
}

// Confirm prints action and waits for an answer.
// An empty answer or end of input declines. Unrecognized answers repeat the question.
func (c *Confirmer) Confirm(action string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.all {
		return true, nil
	}

	out := output.New(c.out)
	question := output.Paint(out, string(style.Blue), style.Bullet+" "+action+"?")

	for {
		if _, err := fmt.Fprintf(c.out, "%s [y]es / [n]o / [a]ll: ", question); err != nil {
			return false, err
		}

		line, err := c.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "a", "all":
			c.all = true
			return true, nil
		case "", "n", "no":
			return false, nil
		}

		if errors.Is(err, io.EOF) {
			return false, nil
		}
	}
}
