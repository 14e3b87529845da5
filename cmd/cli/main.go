package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/buildinfo"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/cli"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/config"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error(ctx, "error closing app", "error", err)
		}
	}()

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "app stopped", "error", err)
	}

}
