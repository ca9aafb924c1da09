// Package prompt asks the user for the project name and template when they
// were not given on the command line.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fiasuz/create-fias/internal/provision"
	"github.com/mattn/go-isatty"
)

// ErrNoInput is returned when input ends before an answer is given.
var ErrNoInput = errors.New("no input")

// Prompter reads answers from R and writes questions to W.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// New returns a Prompter over r and w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// ProjectName asks for the project name until a non-empty line is entered.
// The answer is trimmed; no other validation is applied.
func (p *Prompter) ProjectName() (string, error) {
	for {
		fmt.Fprint(p.w, "Enter project name: ")
		line, err := p.r.ReadString('\n')
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrNoInput
			}
			return "", fmt.Errorf("reading project name: %w", err)
		}
	}
}

// Template presents the template menu and returns the chosen kind. An empty
// answer selects the first entry.
func (p *Prompter) Template() (provision.Kind, error) {
	choices := provision.Choices

	fmt.Fprintln(p.w, "\nSelect a template:")
	for i, c := range choices {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, c.Label)
	}
	fmt.Fprintf(p.w, "Enter number [1-%d] (default 1): ", len(choices))

	line, err := p.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading selection: %w", err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return choices[0].Kind, nil
	}

	num, convErr := strconv.Atoi(answer)
	if convErr != nil || num < 1 || num > len(choices) {
		return "", fmt.Errorf("invalid selection %q: choose 1-%d", answer, len(choices))
	}
	return choices[num-1].Kind, nil
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
