// Package interfaces defines service contracts for asset-plot
package interfaces

import (
	"context"

	"github.com/timebird7/asset-plot/internal/models"
)

// AssetStore persists holdings. Insert and full-scan read only: holdings are
// created once and re-read in full for every valuation run.
type AssetStore interface {
	// Init creates the assets table if it does not exist.
	Init(ctx context.Context) error

	// AddAsset validates, normalizes, and inserts a holding, assigning its ID.
	AddAsset(ctx context.Context, asset *models.Asset) error

	// ListAssets returns all holdings in insertion order.
	ListAssets(ctx context.Context) ([]models.Asset, error)

	// Count returns the number of stored holdings.
	Count(ctx context.Context) (int, error)

	// Close releases the underlying database connection.
	Close() error
}
