package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

var ErrInputClosed = errors.New("input closed")

// Prompter asks one question and returns the raw answer line.
type Prompter interface {
	Prompt(ctx context.Context, message string) (string, error)
}

// LinePrompter reads answers line by line from any reader, such as a pipe.
type LinePrompter struct {
	out     io.Writer
	scanner *bufio.Scanner
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{out: out, scanner: bufio.NewScanner(in)}
}

func (p *LinePrompter) Prompt(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	pterm.Fprint(p.out, pterm.LightCyan(message)+" ")
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		pterm.Fprintln(p.out)
		return "", ErrInputClosed
	}
	return strings.TrimRight(p.scanner.Text(), "\r"), nil
}

// TerminalPrompter uses pterm's interactive text input and needs a TTY.
type TerminalPrompter struct{}

func (TerminalPrompter) Prompt(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	answer, err := pterm.DefaultInteractiveTextInput.WithDefaultText(message).Show()
	if err != nil {
		return "", err
	}
	return answer, nil
}

// NewPrompter picks the interactive prompter when in is a terminal and falls
// back to line reading otherwise.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return TerminalPrompter{}
	}
	return NewLinePrompter(in, out)
}
