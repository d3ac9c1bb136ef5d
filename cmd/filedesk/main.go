package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/filedesk/internal/buildinfo"
	"github.com/dmitrijs2005/filedesk/internal/client/cli"
	"github.com/dmitrijs2005/filedesk/internal/client/config"
	"github.com/dmitrijs2005/filedesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// after the first signal the default handler is back, so a second one
	// kills the process even if something ignores ctx
	context.AfterFunc(ctx, stop)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logger.Sync()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		return
	}

	app.Run(ctx)

}
