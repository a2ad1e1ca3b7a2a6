package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/inkdrop/internal/client/cli"
	"github.com/dmitrijs2005/inkdrop/internal/client/config"
	"github.com/dmitrijs2005/inkdrop/internal/flagx"
	"github.com/dmitrijs2005/inkdrop/internal/logging"
)

const usage = "usage: inkdrop [-c config.json] <puzzle-url>"

func main() {
	// optional .env with endpoint overrides; absence is fine
	_ = godotenv.Load()

	settings := config.LoadSettings(os.Args[1:])

	level := slog.LevelInfo
	if os.Getenv("INKDROP_DEBUG") != "" {
		level = slog.LevelDebug
	}
	log := logging.NewTextLogger(os.Stderr, level)

	args := flagx.Positional(os.Args[1:], []string{"-c", "-config"})
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	ctx := context.Background()
	app := cli.NewApp(settings, log)
	if err := app.Run(ctx, args[0]); err != nil {
		log.Error(ctx, "run failed", "error", err)
		os.Exit(1)
	}
}
