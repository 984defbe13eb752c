// Package ui implements the interactive pieces of the command line surface:
// the yes/no prompt and the live scan view.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cachehound/cachehound/internal/ui/styles"
)

// Prompter asks yes/no questions on the terminal
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading answers from in and writing prompts
// to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm prints prompt and reads one line. Only a case-insensitive "y"
// answers yes; anything else, including an empty line or EOF, answers no.
// Read errors other than EOF are returned.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(p.out, "\n%s ", styles.PromptStyle.Render(prompt))

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
