// Package interfaces defines service contracts for asset-plot
package interfaces

import (
	"context"

	"github.com/timebird7/asset-plot/internal/models"
)

// MarketDataClient provides daily close prices for listed securities.
type MarketDataClient interface {
	// GetLastClose retrieves the most recent daily bar for a ticker.
	// Returns eodhd.ErrNoData when the feed has no trading history.
	GetLastClose(ctx context.Context, ticker string) (*models.EODBar, error)
}

// CryptoPriceClient provides spot prices for crypto symbols quoted in USDT.
type CryptoPriceClient interface {
	// GetSpotPrice retrieves the current price for the {symbol}USDT pair.
	GetSpotPrice(ctx context.Context, symbol string) (float64, error)
}

// ExchangeRateClient provides currency conversion rates.
type ExchangeRateClient interface {
	// GetRate retrieves how many units of target one unit of base buys.
	GetRate(ctx context.Context, base, target string) (float64, error)
}
