// Package app wires configuration, storage, clients, and services into the
// runnable application.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/timebird7/asset-plot/internal/clients/binance"
	"github.com/timebird7/asset-plot/internal/clients/eodhd"
	"github.com/timebird7/asset-plot/internal/clients/exchangerate"
	"github.com/timebird7/asset-plot/internal/common"
	"github.com/timebird7/asset-plot/internal/interfaces"
	"github.com/timebird7/asset-plot/internal/models"
	"github.com/timebird7/asset-plot/internal/services/pricing"
	"github.com/timebird7/asset-plot/internal/services/report"
	"github.com/timebird7/asset-plot/internal/services/valuation"
	"github.com/timebird7/asset-plot/internal/storage/sqlite"
)

// App holds all initialized services and clients.
type App struct {
	Config    *common.Config
	Logger    *common.Logger
	Store     interfaces.AssetStore
	Valuation interfaces.ValuationService
	Source    interfaces.AssetSource

	// Out receives the valuation summary; defaults to stdout.
	Out io.Writer

	scheduler *scheduler
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging, storage, clients, and services.
// configPath may be empty, in which case the default resolution logic is used:
// ASSETPLOT_CONFIG env, then asset-plot.toml next to the binary, then
// config/asset-plot.toml.
func NewApp(configPath string) (*App, error) {
	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	if configPath == "" {
		configPath = os.Getenv("ASSETPLOT_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "asset-plot.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/asset-plot.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	store, err := sqlite.Open(config.Storage.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset store: %w", err)
	}
	if err := store.Init(context.Background()); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize asset store: %w", err)
	}

	marketClient := eodhd.NewClient(config.Clients.EODHD.APIKey,
		eodhd.WithBaseURL(config.Clients.EODHD.BaseURL),
		eodhd.WithTimeout(config.Clients.EODHD.GetTimeout()),
		eodhd.WithRateLimit(config.Clients.EODHD.RateLimit),
		eodhd.WithLogger(logger),
	)
	cryptoClient := binance.NewClient(
		binance.WithBaseURL(config.Clients.Binance.BaseURL),
		binance.WithTimeout(config.Clients.Binance.GetTimeout()),
		binance.WithLogger(logger),
	)
	rateClient := exchangerate.NewClient(
		exchangerate.WithBaseURL(config.Clients.ExchangeRate.BaseURL),
		exchangerate.WithTimeout(config.Clients.ExchangeRate.GetTimeout()),
		exchangerate.WithLogger(logger),
	)

	resolver := pricing.NewResolver(marketClient, cryptoClient, logger)
	valuationService := valuation.NewService(resolver, rateClient, config.BaseCurrency, config.TargetCurrency, logger)

	return &App{
		Config:    config,
		Logger:    logger,
		Store:     store,
		Valuation: valuationService,
		Source:    NewAssetSource(config.Seed.File),
		Out:       os.Stdout,
	}, nil
}

// Seed populates an empty store from the configured asset source. Stores that
// already hold assets are left untouched so repeated runs stay idempotent.
// Individual insert failures are logged and skipped.
func (a *App) Seed(ctx context.Context) error {
	count, err := a.Store.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check store: %w", err)
	}
	if count > 0 {
		a.Logger.Debug().Int("assets", count).Msg("Store already populated, skipping seed")
		return nil
	}

	assets, err := a.Source.ProduceAssets()
	if err != nil {
		return fmt.Errorf("asset source failed: %w", err)
	}

	inserted := 0
	for i := range assets {
		if err := a.Store.AddAsset(ctx, &assets[i]); err != nil {
			a.Logger.Error().
				Err(err).
				Str("ticker", assets[i].TickerSymbol).
				Msg("Failed to insert seeded asset")
			continue
		}
		inserted++
	}

	if inserted > 0 {
		a.Logger.Info().Int("assets", inserted).Msg("Store seeded")
	}
	return nil
}

// Run performs one valuation pass: read all holdings, valuate, write the
// summary, and save the distribution chart. Per-asset and reporting failures
// never abort the run; only reading the store can.
func (a *App) Run(ctx context.Context) (*models.PortfolioValuation, error) {
	assets, err := a.Store.ListAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read assets: %w", err)
	}
	if len(assets) == 0 {
		a.Logger.Warn().Msg("No assets stored, nothing to valuate")
		return nil, nil
	}

	pv, err := a.Valuation.Valuate(ctx, assets)
	if err != nil {
		return nil, fmt.Errorf("valuation failed: %w", err)
	}

	if err := report.WriteSummary(a.Out, pv); err != nil {
		a.Logger.Error().Err(err).Msg("Failed to write summary")
	}

	cfg := a.Config.Report
	if err := report.SaveDistributionChart(cfg.ChartPath, pv, cfg.Width, cfg.Height); err != nil {
		a.Logger.Error().Err(err).Str("path", cfg.ChartPath).Msg("Failed to save distribution chart")
	} else {
		a.Logger.Info().Str("path", cfg.ChartPath).Msg("Distribution chart saved")
	}

	return pv, nil
}

// Close stops the scheduler, if running, and releases the store.
func (a *App) Close() {
	if a.scheduler != nil {
		a.scheduler.stop()
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("Failed to close asset store")
		}
	}
}
