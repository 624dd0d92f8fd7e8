// Package common provides shared utilities for asset-plot
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for asset-plot
type Config struct {
	Environment    string          `toml:"environment"`
	BaseCurrency   string          `toml:"base_currency"`   // currency converted into the target ("USD")
	TargetCurrency string          `toml:"target_currency"` // reporting currency ("KRW")
	Storage        StorageConfig   `toml:"storage"`
	Clients        ClientsConfig   `toml:"clients"`
	Seed           SeedConfig      `toml:"seed"`
	Report         ReportConfig    `toml:"report"`
	Scheduler      SchedulerConfig `toml:"scheduler"`
	Logging        LoggingConfig   `toml:"logging"`
}

// StorageConfig holds the sqlite database location.
type StorageConfig struct {
	Path string `toml:"path"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	EODHD        EODHDConfig        `toml:"eodhd"`
	Binance      BinanceConfig      `toml:"binance"`
	ExchangeRate ExchangeRateConfig `toml:"exchangerate"`
}

// EODHDConfig holds EODHD API configuration
type EODHDConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *EODHDConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// BinanceConfig holds Binance public API configuration
type BinanceConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *BinanceConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// ExchangeRateConfig holds exchange-rate feed configuration
type ExchangeRateConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *ExchangeRateConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// SeedConfig points at an optional TOML holdings file used to populate the
// store on startup. Empty means no seeding.
type SeedConfig struct {
	File string `toml:"file"`
}

// ReportConfig holds output artifact configuration.
type ReportConfig struct {
	ChartPath string `toml:"chart_path"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
}

// SchedulerConfig holds the optional periodic re-valuation schedule.
// Spec is a standard cron expression; empty disables the scheduler.
type SchedulerConfig struct {
	Spec string `toml:"spec"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level    string `toml:"level"`
	FilePath string `toml:"file_path"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment:    "development",
		BaseCurrency:   "USD",
		TargetCurrency: "KRW",
		Storage: StorageConfig{
			Path: "data/investments.db",
		},
		Clients: ClientsConfig{
			EODHD: EODHDConfig{
				BaseURL:   "https://eodhd.com/api",
				RateLimit: 10,
				Timeout:   "30s",
			},
			Binance: BinanceConfig{
				BaseURL: "https://api.binance.com",
				Timeout: "10s",
			},
			ExchangeRate: ExchangeRateConfig{
				BaseURL: "https://api.exchangerate-api.com",
				Timeout: "10s",
			},
		},
		Report: ReportConfig{
			ChartPath: "output/asset-distribution.png",
			Width:     800,
			Height:    600,
		},
		Logging: LoggingConfig{
			Level:    "info",
			FilePath: "logs/investment_errors.log",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	normalizeCurrencies(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("ASSETPLOT_ENV"); env != "" {
		config.Environment = env
	}

	if level := os.Getenv("ASSETPLOT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("ASSETPLOT_DB_PATH"); path != "" {
		config.Storage.Path = path
	}

	if path := os.Getenv("ASSETPLOT_CHART_PATH"); path != "" {
		config.Report.ChartPath = path
	}

	if file := os.Getenv("ASSETPLOT_SEED_FILE"); file != "" {
		config.Seed.File = file
	}

	if key := os.Getenv("ASSETPLOT_EODHD_API_KEY"); key != "" {
		config.Clients.EODHD.APIKey = key
	} else if key := os.Getenv("EODHD_API_KEY"); key != "" {
		config.Clients.EODHD.APIKey = key
	}

	if base := os.Getenv("ASSETPLOT_BASE_CURRENCY"); base != "" {
		config.BaseCurrency = base
	}

	if target := os.Getenv("ASSETPLOT_TARGET_CURRENCY"); target != "" {
		config.TargetCurrency = target
	}

	if spec := os.Getenv("ASSETPLOT_SCHEDULE"); spec != "" {
		config.Scheduler.Spec = spec
	}

	if limit := os.Getenv("ASSETPLOT_EODHD_RATE_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			config.Clients.EODHD.RateLimit = n
		}
	}
}

// normalizeCurrencies upper-cases currency codes and restores defaults for
// empty values so the valuation engine never sees a blank currency.
func normalizeCurrencies(config *Config) {
	config.BaseCurrency = strings.ToUpper(strings.TrimSpace(config.BaseCurrency))
	config.TargetCurrency = strings.ToUpper(strings.TrimSpace(config.TargetCurrency))
	if config.BaseCurrency == "" {
		config.BaseCurrency = "USD"
	}
	if config.TargetCurrency == "" {
		config.TargetCurrency = "KRW"
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
