package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// Notifier shows a message the user has to acknowledge.
type Notifier interface {
	Notify(ctx context.Context, msg string)
}

type terminalNotifier struct {
	reader *bufio.Reader
	out    io.Writer
	// wait makes Notify block until Enter is pressed.
	wait bool
}

func newTerminalNotifier(reader *bufio.Reader, out io.Writer, wait bool) *terminalNotifier {
	return &terminalNotifier{reader: reader, out: out, wait: wait}
}

func (n *terminalNotifier) Notify(ctx context.Context, msg string) {
	fmt.Fprintf(n.out, "[!] %s\n", msg)
	if !n.wait {
		return
	}
	fmt.Fprint(n.out, "(press Enter to continue)")
	_, _ = readLine(ctx, n.reader)
}
