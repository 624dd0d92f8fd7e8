package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/timebird7/asset-plot/internal/app"
	"github.com/timebird7/asset-plot/internal/common"
)

func main() {
	// Load .env if present; real env vars win
	godotenv.Load()

	configPath := os.Getenv("ASSETPLOT_CONFIG")

	a, err := app.NewApp(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	common.PrintBanner(a.Config, a.Logger)

	ctx := context.Background()

	if err := a.Seed(ctx); err != nil {
		a.Logger.Error().Err(err).Msg("Seeding failed")
	}

	if _, err := a.Run(ctx); err != nil {
		a.Logger.Error().Err(err).Msg("Valuation run failed")
		os.Exit(1)
	}

	scheduled, err := a.StartScheduler()
	if err != nil {
		a.Logger.Error().Err(err).Msg("Failed to start scheduler")
		os.Exit(1)
	}
	if !scheduled {
		return
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	a.Logger.Info().Msg("Shutdown signal received")
}
