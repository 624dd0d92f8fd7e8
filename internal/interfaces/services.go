// Package interfaces defines service contracts for asset-plot
package interfaces

import (
	"context"

	"github.com/timebird7/asset-plot/internal/models"
)

// PriceResolver maps an asset to a current unit price in its native currency.
// Failures never surface as errors: they are folded into the outcome so one
// bad asset cannot abort a valuation run.
type PriceResolver interface {
	Resolve(ctx context.Context, asset models.Asset) models.PriceOutcome
}

// ValuationService computes per-asset and aggregate valuations.
type ValuationService interface {
	Valuate(ctx context.Context, assets []models.Asset) (*models.PortfolioValuation, error)
}

// AssetSource produces holdings used to populate the store. Configured
// sources replace the original notion of an optional private data file;
// the default implementation produces nothing.
type AssetSource interface {
	ProduceAssets() ([]models.Asset, error)
}
