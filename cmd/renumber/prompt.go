package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// maxLineBytes bounds a single pasted line.
const maxLineBytes = 1 << 20

// isTerminal reports whether r is an interactive terminal.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readPrompt writes prompt to out and collects lines from in until a blank
// line, end of input, or ctx is cancelled (Ctrl+C). It always returns what
// was collected so far.
func readPrompt(ctx context.Context, in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		errc <- sc.Err()
	}()

	var collected []string
	for {
		select {
		case <-ctx.Done():
			return strings.Join(collected, "\n"), nil
		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					return strings.Join(collected, "\n"), fmt.Errorf("reading input: %w", err)
				}
				return strings.Join(collected, "\n"), nil
			}
			if strings.TrimSpace(line) == "" {
				return strings.Join(collected, "\n"), nil
			}
			collected = append(collected, line)
		}
	}
}
