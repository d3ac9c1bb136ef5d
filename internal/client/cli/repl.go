package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// printlnFn and printFn are test seams for user-facing output. In tests,
// replace them with stubs.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

const helpText = `Available commands:
  upload [path] [user]     upload a file
  download [name] [user]   download a stored file by name
  fetch [url] [user]       let the server download a URL (http, https, s3)
  files                    list stored files
  tabs                     list tabs
  tab <id>                 switch tab
  show                     reprint the active tab
  exit | quit              leave the program

Quote arguments that contain spaces: upload "my report.pdf" u1`

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	ShowTabs(ctx context.Context) error
	SelectTab(ctx context.Context, id string) error
	ShowPane(ctx context.Context) error
	Upload(ctx context.Context, args []string) error
	DownloadByName(ctx context.Context, args []string) error
	DownloadFromURL(ctx context.Context, args []string) error
	ListFiles(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the filedesk CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments. The
// prompt shows the active tab as returned by statusFn. The loop exits on
// EOF, when the user types "exit" or "quit", or as soon as ctx is done, even
// while waiting for input.
//
// Handlers report their own failures, so the errors they return are ignored
// here. Handlers share reader with the loop for their prompts.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printFn(fmt.Sprintf("fd [%s]> ", statusFn()))
		line, err := readLine(ctx, reader)
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			printlnFn()
			return
		}

		parts := splitArgs(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "tabs":
			_ = a.ShowTabs(ctx)

		case "tab":
			if len(args) == 0 {
				printlnFn("Usage: tab <id>")
				continue
			}
			_ = a.SelectTab(ctx, args[0])

		case "show":
			_ = a.ShowPane(ctx)

		case "upload":
			_ = a.Upload(ctx, args)

		case "download":
			_ = a.DownloadByName(ctx, args)

		case "fetch":
			_ = a.DownloadFromURL(ctx, args)

		case "files", "ls":
			_ = a.ListFiles(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// splitArgs splits a command line on whitespace. Double quotes group words
// into one argument and are dropped; an unterminated quote runs to the end
// of the line.
func splitArgs(line string) []string {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		inArg   bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			inArg = true
		case unicode.IsSpace(r) && !inQuote:
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, cur.String())
	}

	return args
}
