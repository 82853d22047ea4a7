package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nmchugh17/evidence-timeline/internal/buildinfo"
	"github.com/nmchugh17/evidence-timeline/internal/client/cli"
	"github.com/nmchugh17/evidence-timeline/internal/client/config"
	"github.com/nmchugh17/evidence-timeline/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	// The first signal cancels in-flight requests; the REPL may still be
	// blocked on stdin, so default handling is restored for the next one.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		stop()
	}()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
