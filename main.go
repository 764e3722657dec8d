package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/utils"
)

func main() {
	logger := log.New(os.Stderr, "[gol] ", log.Ldate|log.Ltime)

	// Load configuration - fallback to defaults if the file doesn't exist
	config, err := utils.ParseConfig("gol", os.Args[1:], logger)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Fatalf("configuration: %+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	game, err := newGame(config, os.Stdout, logger)
	if err != nil {
		logger.Fatalf("startup: %+v", err)
	}
	displayGameInfo(config, game, logger)

	if err = game.Run(ctx, os.Stdin); err != nil {
		logger.Fatalf("run: %+v", err)
	}

	logger.Printf("Final stats: %d generations in %.1f seconds, %.1f avg population",
		game.ctrl.Generation(), game.stats.Runtime().Seconds(), game.stats.AveragePopulation)
}
