package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	return promptLine(context.Background(), reader, prompt, w)
}

// promptLine is GetSimpleText that gives up when ctx is done.
func promptLine(ctx context.Context, reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := readLine(ctx, reader)
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

type lineResult struct {
	line string
	err  error
}

// readLine reads up to and including '\n' like reader.ReadString, but returns
// ctx.Err() as soon as ctx is done. The pending read is then abandoned and
// reader must not be used again.
func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ch := make(chan lineResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// argOrPrompt returns args[i] when present, otherwise asks for it.
func argOrPrompt(ctx context.Context, args []string, i int, reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return promptLine(ctx, reader, prompt, w)
}
