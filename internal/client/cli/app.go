package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/filedesk/internal/client/blob"
	"github.com/dmitrijs2005/filedesk/internal/client/client"
	"github.com/dmitrijs2005/filedesk/internal/client/config"
	"github.com/dmitrijs2005/filedesk/internal/client/s3ref"
	"github.com/dmitrijs2005/filedesk/internal/client/services"
	"github.com/dmitrijs2005/filedesk/internal/client/tabs"
	"github.com/dmitrijs2005/filedesk/internal/filex"
	"github.com/dmitrijs2005/filedesk/internal/logging"
)

const (
	tabUpload       = "upload"
	tabDownloadName = "download-name"
	tabDownloadURL  = "download-url"
	tabFiles        = "files"
)

func defaultTabs() []tabs.Tab {
	return []tabs.Tab{
		{ID: tabUpload, Title: "Upload"},
		{ID: tabDownloadName, Title: "Download by name"},
		{ID: tabDownloadURL, Title: "Download from URL"},
		{ID: tabFiles, Title: "Files"},
	}
}

type App struct {
	config   *config.Config
	files    services.FileService
	tabs     *tabs.Selector
	panes    map[string]string
	notifier Notifier
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	dir, err := filex.EnsureDir(c.DownloadDir)
	if err != nil {
		return nil, fmt.Errorf("download dir: %w", err)
	}

	apiClient, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}

	var resolver services.URLResolver
	if c.S3.Enabled() {
		r, err := s3ref.NewFromConfig(ctx, c.S3)
		if err != nil {
			return nil, fmt.Errorf("s3: %w", err)
		}
		resolver = r
	}

	sel, err := tabs.NewSelector(defaultTabs()...)
	if err != nil {
		return nil, err
	}

	reader := bufio.NewReader(os.Stdin)
	wait := isTerminal(int(os.Stdin.Fd()))

	logger.Debug(ctx, "client ready", "server", c.ServerURL, "download_dir", dir, "s3", c.S3.Enabled())

	return &App{
		config:   c,
		files:    services.NewFileService(apiClient, blob.NewRegistry(dir), resolver),
		tabs:     sel,
		panes:    make(map[string]string),
		notifier: newTerminalNotifier(reader, os.Stdout, wait),
		logger:   logger,
		reader:   reader,
		out:      os.Stdout,
	}, nil
}

// Run blocks in the REPL until the user exits, stdin ends or ctx is done.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintf(a.out, "filedesk connected to %s (type 'help' for commands)\n", a.config.ServerURL)
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) status() string {
	return a.tabs.Active().ID
}

// withRequestID tags everything one command does, log lines and HTTP
// requests alike, with the same id.
func withRequestID(ctx context.Context) context.Context {
	return logging.WithRequestID(ctx, uuid.NewString())
}

// activate switches to a tab that is known to exist.
func (a *App) activate(id string) {
	if err := a.tabs.Activate(id); err != nil {
		a.logger.Error(context.Background(), "activate tab", "tab", id, "error", err)
	}
}

// setPane stores the output of a tab and echoes it.
func (a *App) setPane(id, text string) {
	a.panes[id] = text
	fmt.Fprintln(a.out, text)
}

func (a *App) prompt(ctx context.Context, args []string, i int, text string) (string, error) {
	return argOrPrompt(ctx, args, i, a.reader, text, a.out)
}
