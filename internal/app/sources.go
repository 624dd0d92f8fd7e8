package app

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/timebird7/asset-plot/internal/interfaces"
	"github.com/timebird7/asset-plot/internal/models"
)

// NoopSource produces no assets. It is the default when no holdings file is
// configured, replacing the original's optional private data import.
type NoopSource struct{}

// ProduceAssets returns no holdings.
func (NoopSource) ProduceAssets() ([]models.Asset, error) {
	return nil, nil
}

// FileSource reads holdings from a TOML file:
//
//	[[assets]]
//	asset_type = "stock"
//	plot_type = "us-equity"
//	ticker_symbol = "AAPL"
//	quantity = 10.0
//	currency = "USD"
//	leverage = 1.0
type FileSource struct {
	Path string
}

type holdingsFile struct {
	Assets []models.Asset `toml:"assets"`
}

// ProduceAssets parses the holdings file.
func (s FileSource) ProduceAssets() ([]models.Asset, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read holdings file %s: %w", s.Path, err)
	}

	var file holdingsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse holdings file %s: %w", s.Path, err)
	}

	return file.Assets, nil
}

// NewAssetSource selects the source for the configured seed file: a
// FileSource when one is set, otherwise the no-op source.
func NewAssetSource(seedFile string) interfaces.AssetSource {
	if seedFile == "" {
		return NoopSource{}
	}
	return FileSource{Path: seedFile}
}

var (
	_ interfaces.AssetSource = NoopSource{}
	_ interfaces.AssetSource = FileSource{}
)
