package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls []string
	args  [][]string
	tab   string
}

func (f *fakeExec) ShowTabs(ctx context.Context) error {
	f.calls = append(f.calls, "tabs")
	return nil
}
func (f *fakeExec) SelectTab(ctx context.Context, id string) error {
	f.calls = append(f.calls, "tab")
	f.tab = id
	return nil
}
func (f *fakeExec) ShowPane(ctx context.Context) error {
	f.calls = append(f.calls, "show")
	return nil
}
func (f *fakeExec) Upload(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "upload")
	f.args = append(f.args, args)
	return nil
}
func (f *fakeExec) DownloadByName(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "download")
	f.args = append(f.args, args)
	return nil
}
func (f *fakeExec) DownloadFromURL(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "fetch")
	f.args = append(f.args, args)
	return nil
}
func (f *fakeExec) ListFiles(ctx context.Context) error {
	f.calls = append(f.calls, "files")
	return nil
}

func silenceREPL(t *testing.T) *[]string {
	t.Helper()
	var printed []string

	origPrintln, origPrint := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	printFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn, printFn = origPrintln, origPrint })

	return &printed
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silenceREPL(t)

	input := strings.Join([]string{
		"help",
		"",
		"tabs",
		"upload ./a.txt u1",
		"download report.pdf u1",
		"fetch https://e.com/x u2",
		"files",
		"tab files",
		"show",
		"exit",
		"files",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "upload" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{"tabs", "upload", "download", "fetch", "files", "tab", "show"}, exec.calls)
	assert.Equal(t, [][]string{
		{"./a.txt", "u1"},
		{"report.pdf", "u1"},
		{"https://e.com/x", "u2"},
	}, exec.args)
	assert.Equal(t, "files", exec.tab)
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	printed := silenceREPL(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("tab\nfoobar\nquit\n")))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *printed, "Usage: tab <id>")
	assert.Contains(t, *printed, "Unknown command: foobar")
	assert.Contains(t, *printed, "Bye!")
}

func TestRunREPL_ArgsAreOptional(t *testing.T) {
	silenceREPL(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("upload\n")))

	require.Equal(t, []string{"upload"}, exec.calls)
	assert.Empty(t, exec.args[0])
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	silenceREPL(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("files")))

	assert.Equal(t, []string{"files"}, exec.calls)
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	silenceREPL(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("files\n")))

	assert.Empty(t, exec.calls)
}

func TestRunREPL_CancelWhileWaitingForInput(t *testing.T) {
	silenceREPL(t)

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	exec := &fakeExec{}
	done := make(chan struct{})
	go func() {
		runREPL(ctx, exec, func() string { return "s" }, bufio.NewReader(pr))
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runREPL still blocked after cancel")
	}
	assert.Empty(t, exec.calls)
}

func TestRunREPL_QuotedArguments(t *testing.T) {
	silenceREPL(t)

	exec := &fakeExec{}
	input := "upload \"./my report.pdf\" u1\nexit\n"
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader(input)))

	require.Equal(t, []string{"upload"}, exec.calls)
	assert.Equal(t, []string{"./my report.pdf", "u1"}, exec.args[0])
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"files", []string{"files"}},
		{"  download  a.txt\tu1 \n", []string{"download", "a.txt", "u1"}},
		{`upload "a b.txt" u1`, []string{"upload", "a b.txt", "u1"}},
		{`upload dir/"a b".txt u1`, []string{"upload", "dir/a b.txt", "u1"}},
		{`upload "" u1`, []string{"upload", "", "u1"}},
		{`fetch "unterminated url`, []string{"fetch", "unterminated url"}},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, splitArgs(tc.in), "input %q", tc.in)
	}
}
