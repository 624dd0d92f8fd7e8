// Package valuation orchestrates price resolution, currency normalization,
// and aggregation over the full asset collection.
package valuation

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/timebird7/asset-plot/internal/common"
	"github.com/timebird7/asset-plot/internal/interfaces"
	"github.com/timebird7/asset-plot/internal/models"
)

// FallbackRate is applied when the live exchange-rate feed is unavailable.
// Conversion becomes a no-op: better a mis-stated currency than no report.
const FallbackRate = 1.0

// Service implements ValuationService. The pipeline is total: it returns one
// valuation per input asset even when every upstream feed is down.
type Service struct {
	resolver interfaces.PriceResolver
	rates    interfaces.ExchangeRateClient
	base     string
	target   string
	logger   *common.Logger
	now      func() time.Time // injectable clock for testing
}

// NewService creates a valuation service converting base-currency prices into
// the target reporting currency.
func NewService(resolver interfaces.PriceResolver, rates interfaces.ExchangeRateClient, base, target string, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		resolver: resolver,
		rates:    rates,
		base:     base,
		target:   target,
		logger:   logger,
		now:      time.Now,
	}
}

// Valuate computes a valuation for every asset and the portfolio total.
// The exchange rate is fetched once per run, not per asset.
func (s *Service) Valuate(ctx context.Context, assets []models.Asset) (*models.PortfolioValuation, error) {
	rate, fallback := s.fetchRate(ctx)

	pv := &models.PortfolioValuation{
		RunID:          uuid.NewString(),
		BaseCurrency:   s.base,
		TargetCurrency: s.target,
		Rate:           rate,
		RateFallback:   fallback,
		Valuations:     make([]models.Valuation, 0, len(assets)),
		GeneratedAt:    s.now(),
	}

	for _, asset := range assets {
		pv.Valuations = append(pv.Valuations, s.valuateOne(ctx, asset, rate))
	}

	pv.Total = models.SumFinalValues(pv.Valuations)

	s.logger.Info().
		Str("run_id", pv.RunID).
		Int("assets", len(assets)).
		Float64("rate", rate).
		Bool("rate_fallback", fallback).
		Float64("total", pv.Total).
		Msg("Valuation run complete")

	return pv, nil
}

// fetchRate retrieves the base->target rate, degrading to FallbackRate on any
// failure.
func (s *Service) fetchRate(ctx context.Context) (float64, bool) {
	if strings.EqualFold(s.base, s.target) {
		return 1.0, false
	}
	if s.rates == nil {
		return FallbackRate, true
	}

	rate, err := s.rates.GetRate(ctx, s.base, s.target)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("base", s.base).
			Str("target", s.target).
			Msg("Exchange rate unavailable, using fallback rate 1.0")
		return FallbackRate, true
	}
	return rate, false
}

// valuateOne computes a single asset's working price and final value. Assets
// with a usable cached price are never re-resolved; only missing prices
// trigger a resolver call.
func (s *Service) valuateOne(ctx context.Context, asset models.Asset, rate float64) models.Valuation {
	var (
		price  float64
		status models.PriceStatus
	)

	if asset.HasCachedPrice() {
		price = *asset.CurrentPrice
		status = models.PriceStatusCached
	} else {
		outcome := s.resolver.Resolve(ctx, asset)
		status = outcome.Status
		if outcome.Usable() && isFinite(outcome.Price) {
			price = outcome.Price
		} else if outcome.Usable() {
			// A feed handed back NaN or Inf; treat it like any other
			// upstream failure so the run survives.
			status = models.PriceStatusFailed
			price = 0
			s.logger.Warn().
				Str("ticker", asset.TickerSymbol).
				Float64("price", outcome.Price).
				Msg("Non-finite price from feed, asset valued at zero")
		} else {
			// No usable price: the asset degrades to a zero value
			// rather than aborting the run.
			price = 0
			s.logger.Warn().
				Str("ticker", asset.TickerSymbol).
				Str("asset_type", string(asset.AssetType)).
				Str("status", string(status)).
				Msg("No usable price, asset valued at zero")
		}
	}

	converted := false
	if strings.EqualFold(asset.Currency, s.base) && !strings.EqualFold(s.base, s.target) {
		price *= rate
		converted = true
	}

	return models.Valuation{
		Asset:       asset,
		Price:       price,
		PriceStatus: status,
		Converted:   converted,
		FinalValue:  models.FinalValue(price, asset.Quantity, asset.Leverage),
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Ensure Service implements ValuationService
var _ interfaces.ValuationService = (*Service)(nil)
