package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/docsynchub/docsync/internal/buildinfo"
	"github.com/docsynchub/docsync/internal/client/cli"
	"github.com/docsynchub/docsync/internal/client/config"
	"github.com/docsynchub/docsync/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
