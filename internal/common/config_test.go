package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.BaseCurrency != "USD" {
		t.Errorf("BaseCurrency default = %q, want %q", cfg.BaseCurrency, "USD")
	}
	if cfg.TargetCurrency != "KRW" {
		t.Errorf("TargetCurrency default = %q, want %q", cfg.TargetCurrency, "KRW")
	}
	if cfg.Storage.Path != "data/investments.db" {
		t.Errorf("Storage.Path default = %q", cfg.Storage.Path)
	}
	if cfg.Clients.EODHD.RateLimit != 10 {
		t.Errorf("EODHD.RateLimit default = %d, want 10", cfg.Clients.EODHD.RateLimit)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ASSETPLOT_DB_PATH", "/tmp/override.db")
	t.Setenv("ASSETPLOT_TARGET_CURRENCY", "usd")
	t.Setenv("ASSETPLOT_EODHD_RATE_LIMIT", "3")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Storage.Path != "/tmp/override.db" {
		t.Errorf("Storage.Path = %q after env override", cfg.Storage.Path)
	}
	if cfg.TargetCurrency != "USD" {
		t.Errorf("TargetCurrency = %q, want USD (upper-cased)", cfg.TargetCurrency)
	}
	if cfg.Clients.EODHD.RateLimit != 3 {
		t.Errorf("EODHD.RateLimit = %d, want 3", cfg.Clients.EODHD.RateLimit)
	}
}

func TestConfig_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asset-plot.toml")
	content := `
base_currency = "usd"
target_currency = "jpy"

[storage]
path = "portfolio.db"

[clients.eodhd]
api_key = "file-key"
timeout = "5s"

[report]
chart_path = "charts/pie.png"

[scheduler]
spec = "0 18 * * *"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.TargetCurrency != "JPY" {
		t.Errorf("TargetCurrency = %q, want JPY", cfg.TargetCurrency)
	}
	if cfg.Storage.Path != "portfolio.db" {
		t.Errorf("Storage.Path = %q, want portfolio.db", cfg.Storage.Path)
	}
	if cfg.Clients.EODHD.APIKey != "file-key" {
		t.Errorf("EODHD.APIKey = %q", cfg.Clients.EODHD.APIKey)
	}
	if got := cfg.Clients.EODHD.GetTimeout().Seconds(); got != 5 {
		t.Errorf("EODHD timeout = %vs, want 5s", got)
	}
	if cfg.Scheduler.Spec != "0 18 * * *" {
		t.Errorf("Scheduler.Spec = %q", cfg.Scheduler.Spec)
	}
}

func TestConfig_MissingFileIsSkipped(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/asset-plot.toml")
	if err != nil {
		t.Fatalf("LoadConfig should skip missing files, got %v", err)
	}
	if cfg.BaseCurrency != "USD" {
		t.Errorf("expected defaults when file missing, BaseCurrency = %q", cfg.BaseCurrency)
	}
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{"PROD", true},
		{" prod ", true},
		{"development", false},
		{"", false},
	}
	for _, tt := range tests {
		c := Config{Environment: tt.env}
		if got := c.IsProduction(); got != tt.want {
			t.Errorf("IsProduction(%q) = %v, want %v", tt.env, got, tt.want)
		}
	}
}

func TestConfig_InvalidTimeoutFallsBack(t *testing.T) {
	c := EODHDConfig{Timeout: "not-a-duration"}
	if got := c.GetTimeout().Seconds(); got != 30 {
		t.Errorf("GetTimeout fallback = %vs, want 30s", got)
	}
}
