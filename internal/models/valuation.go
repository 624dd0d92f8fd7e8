package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceStatus describes how a working price was obtained.
type PriceStatus string

const (
	// PriceStatusResolved means a live price was fetched from a feed.
	PriceStatusResolved PriceStatus = "resolved"
	// PriceStatusCached means the stored current_price was used as-is.
	PriceStatusCached PriceStatus = "cached"
	// PriceStatusAbsent means no usable price could be obtained; the
	// working price degrades to zero (or the stored value, if any).
	PriceStatusAbsent PriceStatus = "absent"
	// PriceStatusFailed means an upstream failure occurred while resolving.
	PriceStatusFailed PriceStatus = "failed"
)

// PriceOutcome is the typed result of a resolver call. Failures travel as
// values so a single bad asset can never abort the valuation run.
type PriceOutcome struct {
	Price  float64
	Status PriceStatus
	Err    error
}

// ResolvedPrice returns a successful outcome.
func ResolvedPrice(price float64) PriceOutcome {
	return PriceOutcome{Price: price, Status: PriceStatusResolved}
}

// AbsentPrice returns an outcome meaning no usable price exists.
func AbsentPrice() PriceOutcome {
	return PriceOutcome{Status: PriceStatusAbsent}
}

// FailedPrice returns an outcome carrying an upstream failure.
func FailedPrice(err error) PriceOutcome {
	return PriceOutcome{Status: PriceStatusFailed, Err: err}
}

// Usable reports whether the outcome carries a price the engine can value with.
func (o PriceOutcome) Usable() bool {
	return o.Status == PriceStatusResolved || o.Status == PriceStatusCached
}

// Valuation annotates an asset with its working price in the target currency
// and the computed final value. Valuations are ephemeral and never persisted.
type Valuation struct {
	Asset       Asset       `json:"asset"`
	Price       float64     `json:"price"`
	PriceStatus PriceStatus `json:"price_status"`
	Converted   bool        `json:"converted"` // FX rate was applied to the working price
	FinalValue  float64     `json:"final_value"`
}

// PortfolioValuation is the aggregate output of one valuation run.
type PortfolioValuation struct {
	RunID          string      `json:"run_id"`
	BaseCurrency   string      `json:"base_currency"`
	TargetCurrency string      `json:"target_currency"`
	Rate           float64     `json:"rate"`
	RateFallback   bool        `json:"rate_fallback"` // rate feed unavailable, 1.0 applied
	Valuations     []Valuation `json:"valuations"`
	Total          float64     `json:"total"`
	GeneratedAt    time.Time   `json:"generated_at"`
}

// FinalValue computes round(price * quantity * leverage, 2) using decimal
// arithmetic so the 2-decimal rounding is exact. Non-finite inputs value at
// zero; decimal.NewFromFloat panics on NaN and Inf.
func FinalValue(price, quantity, leverage float64) float64 {
	if !isFinite(price) || !isFinite(quantity) || !isFinite(leverage) {
		return 0
	}
	v := decimal.NewFromFloat(price).
		Mul(decimal.NewFromFloat(quantity)).
		Mul(decimal.NewFromFloat(leverage)).
		Round(2)
	f, _ := v.Float64()
	return f
}

// SumFinalValues sums already-rounded final values exactly.
func SumFinalValues(valuations []Valuation) float64 {
	total := decimal.Zero
	for _, v := range valuations {
		total = total.Add(decimal.NewFromFloat(v.FinalValue))
	}
	f, _ := total.Float64()
	return f
}

// GroupFinalValuesByPlotType sums final values per plot_type for charting.
func GroupFinalValuesByPlotType(valuations []Valuation) map[string]float64 {
	groups := make(map[string]float64)
	for _, v := range valuations {
		key := v.Asset.PlotType
		d := decimal.NewFromFloat(groups[key]).Add(decimal.NewFromFloat(v.FinalValue))
		f, _ := d.Float64()
		groups[key] = f
	}
	return groups
}
