// Package models defines data structures for asset-plot
package models

import (
	"fmt"
	"math"
	"strings"
)

// AssetType classifies a holding and selects the price resolution strategy.
type AssetType string

const (
	AssetTypeStock  AssetType = "stock"
	AssetTypeCrypto AssetType = "crypto"
	AssetTypeCash   AssetType = "cash"
	AssetTypeOther  AssetType = "other"
)

// ParseAssetType normalizes a raw string into an AssetType.
func ParseAssetType(s string) AssetType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stock":
		return AssetTypeStock
	case "crypto":
		return AssetTypeCrypto
	case "cash":
		return AssetTypeCash
	default:
		return AssetTypeOther
	}
}

// RequiresResolution reports whether the type needs a live market price.
// Cash and other assets are valued from their stored price only.
func (t AssetType) RequiresResolution() bool {
	return t == AssetTypeStock || t == AssetTypeCrypto
}

// Asset represents one portfolio holding.
type Asset struct {
	ID           int64     `json:"id" toml:"-"`
	AssetType    AssetType `json:"asset_type" toml:"asset_type"`
	PlotType     string    `json:"plot_type" toml:"plot_type"`
	TickerSymbol string    `json:"ticker_symbol,omitempty" toml:"ticker_symbol"`
	Quantity     float64   `json:"quantity" toml:"quantity"`
	CurrentPrice *float64  `json:"current_price,omitempty" toml:"current_price"`
	Currency     string    `json:"currency" toml:"currency"`
	Leverage     float64   `json:"leverage" toml:"leverage"`
}

// Validate checks the holding invariants before insertion.
func (a *Asset) Validate() error {
	if a.AssetType == "" {
		return fmt.Errorf("asset_type is required")
	}
	if a.PlotType == "" {
		return fmt.Errorf("plot_type is required")
	}
	if strings.TrimSpace(a.Currency) == "" {
		return fmt.Errorf("currency is required")
	}
	if !isFinite(a.Quantity) {
		return fmt.Errorf("quantity must be finite, got %v", a.Quantity)
	}
	if !isFinite(a.Leverage) {
		return fmt.Errorf("leverage must be finite, got %v", a.Leverage)
	}
	if a.AssetType.RequiresResolution() && strings.TrimSpace(a.TickerSymbol) == "" {
		return fmt.Errorf("ticker_symbol is required for %s assets", a.AssetType)
	}
	return nil
}

// Normalize upper-cases the currency and defaults leverage to 1.0 when unset,
// mirroring how unleveraged holdings are commonly recorded with a blank field.
func (a *Asset) Normalize() {
	a.Currency = strings.ToUpper(strings.TrimSpace(a.Currency))
	a.TickerSymbol = strings.TrimSpace(a.TickerSymbol)
	a.AssetType = ParseAssetType(string(a.AssetType))
	if a.Leverage == 0 {
		a.Leverage = 1.0
	}
}

// HasCachedPrice reports whether the stored price can be used without
// resolving: present and finite.
func (a *Asset) HasCachedPrice() bool {
	return a.CurrentPrice != nil && isFinite(*a.CurrentPrice)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
