// Package pricing resolves assets to current market prices.
package pricing

import (
	"context"
	"errors"

	"github.com/timebird7/asset-plot/internal/clients/eodhd"
	"github.com/timebird7/asset-plot/internal/common"
	"github.com/timebird7/asset-plot/internal/interfaces"
	"github.com/timebird7/asset-plot/internal/models"
)

// Resolver selects a price feed per asset type. Stocks use the market data
// feed's most recent daily close; crypto uses the USDT spot price. Every
// failure is folded into the returned outcome so resolution for one asset
// never affects another.
type Resolver struct {
	market interfaces.MarketDataClient
	crypto interfaces.CryptoPriceClient
	logger *common.Logger
}

// NewResolver creates a price resolver. Either client may be nil, in which
// case assets of that type resolve as absent.
func NewResolver(market interfaces.MarketDataClient, crypto interfaces.CryptoPriceClient, logger *common.Logger) *Resolver {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Resolver{
		market: market,
		crypto: crypto,
		logger: logger,
	}
}

// Resolve returns a current unit price for the asset in its native currency.
func (r *Resolver) Resolve(ctx context.Context, asset models.Asset) models.PriceOutcome {
	switch asset.AssetType {
	case models.AssetTypeStock:
		return r.resolveStock(ctx, asset)
	case models.AssetTypeCrypto:
		return r.resolveCrypto(ctx, asset)
	default:
		// No resolution strategy; the caller values the asset from its
		// stored price, or zero when none exists.
		return models.AbsentPrice()
	}
}

func (r *Resolver) resolveStock(ctx context.Context, asset models.Asset) models.PriceOutcome {
	if r.market == nil {
		return models.AbsentPrice()
	}

	bar, err := r.market.GetLastClose(ctx, asset.TickerSymbol)
	if err != nil {
		if errors.Is(err, eodhd.ErrNoData) {
			r.logger.Warn().
				Str("ticker", asset.TickerSymbol).
				Msg("No price data found, using zero fallback")
			return models.ResolvedPrice(0)
		}
		r.logger.Error().
			Err(err).
			Str("ticker", asset.TickerSymbol).
			Str("asset_type", string(asset.AssetType)).
			Msg("Failed to fetch stock price")
		return models.FailedPrice(err)
	}

	return models.ResolvedPrice(bar.Close)
}

func (r *Resolver) resolveCrypto(ctx context.Context, asset models.Asset) models.PriceOutcome {
	if r.crypto == nil {
		return models.AbsentPrice()
	}

	price, err := r.crypto.GetSpotPrice(ctx, asset.TickerSymbol)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("ticker", asset.TickerSymbol).
			Str("asset_type", string(asset.AssetType)).
			Msg("Failed to fetch crypto price")
		return models.FailedPrice(err)
	}

	return models.ResolvedPrice(price)
}

// Ensure Resolver implements PriceResolver
var _ interfaces.PriceResolver = (*Resolver)(nil)
