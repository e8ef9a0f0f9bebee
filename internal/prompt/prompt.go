// Package prompt reads answers from an interactive text source.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-helper/internal/types"
)

// ErrCancelled is returned when the input source ends before an answer is given
var ErrCancelled = errors.New("operation cancelled by user")

// Prompter asks questions on out and reads line answers from in
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// readLine returns the next trimmed line. A final line without a newline is
// still returned; ErrCancelled is only reported once nothing is left.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

//nolint:errcheck // writing prompts to the terminal; errors are not recoverable
func (p *Prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Input asks for a value. An empty answer returns def when it is set;
// otherwise a required prompt repeats until a value is given.
func (p *Prompter) Input(label string, required bool, def string) (string, error) {
	prompt := label + ": "
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, def)
	}

	for {
		p.printf("%s", prompt)
		value, err := p.readLine()
		if err != nil {
			return "", err
		}
		if value == "" && def != "" {
			return def, nil
		}
		if value == "" && required {
			p.printf("This field is required. Please enter a value.\n")
			continue
		}
		return value, nil
	}
}

// Date asks for an ISO calendar date (YYYY-MM-DD). An empty answer is
// accepted unless required.
func (p *Prompter) Date(label string, required bool) (string, error) {
	for {
		value, err := p.Input(label, required, "")
		if err != nil {
			return "", err
		}
		if value == "" || types.ValidDate(value) {
			return value, nil
		}
		p.printf("Invalid date format. Please use YYYY-MM-DD\n")
	}
}

// List reads items one per line until an empty line
func (p *Prompter) List(label string) ([]string, error) {
	p.printf("%s (one per line, empty line to finish):\n", label)
	items := make([]string, 0)
	for {
		p.printf("  - ")
		item, err := p.readLine()
		if errors.Is(err, ErrCancelled) {
			return items, nil
		}
		if err != nil {
			return nil, err
		}
		if item == "" {
			return items, nil
		}
		items = append(items, item)
	}
}

// Confirm asks a yes/no question. Only "y" (any case) counts as yes.
func (p *Prompter) Confirm(label string, def bool) (bool, error) {
	defAnswer := "n"
	if def {
		defAnswer = "y"
	}
	answer, err := p.Input(label+" (y/n)", false, defAnswer)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}
