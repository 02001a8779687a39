package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks questions on out and reads the answers line by line from in.
// It implements ports.Decider.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine writes prompt without a newline and returns the next input line
// with the line ending removed. It returns io.EOF once input is exhausted.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadInt reads a line and parses it as a base-10 integer. A blank line
// yields fallback.
func (p *Prompter) ReadInt(ctx context.Context, prompt string, fallback int) (int, error) {
	line, err := p.ReadLine(ctx, prompt)
	if err != nil {
		return 0, err
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parsing number %q: %w", line, err)
	}
	return n, nil
}

// Confirm prints question on its own line and returns true only when the
// answer is "yes", ignoring case.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	line, err := p.ReadLine(ctx, question+"\n")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes"), nil
}

// AskContinue writes question and returns true when the answer starts with
// 'y' or 'Y'. An empty answer or exhausted input means no.
func (p *Prompter) AskContinue(ctx context.Context, question string) (bool, error) {
	line, err := p.ReadLine(ctx, question)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	line = strings.TrimSpace(line)
	return line != "" && (line[0] == 'y' || line[0] == 'Y'), nil
}
