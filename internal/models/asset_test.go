package models

import (
	"math"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }

func TestAsset_Validate(t *testing.T) {
	tests := []struct {
		name    string
		asset   Asset
		wantErr bool
	}{
		{
			name:  "valid stock",
			asset: Asset{AssetType: AssetTypeStock, PlotType: "us-equity", TickerSymbol: "AAPL", Quantity: 10, Currency: "USD", Leverage: 1},
		},
		{
			name:    "stock without ticker",
			asset:   Asset{AssetType: AssetTypeStock, PlotType: "us-equity", Quantity: 10, Currency: "USD", Leverage: 1},
			wantErr: true,
		},
		{
			name:  "cash without ticker is fine",
			asset: Asset{AssetType: AssetTypeCash, PlotType: "cash", Quantity: 1000000, CurrentPrice: floatPtr(1), Currency: "KRW", Leverage: 1},
		},
		{
			name:    "empty currency",
			asset:   Asset{AssetType: AssetTypeCash, PlotType: "cash", Quantity: 1, Currency: "  ", Leverage: 1},
			wantErr: true,
		},
		{
			name:    "NaN quantity",
			asset:   Asset{AssetType: AssetTypeCash, PlotType: "cash", Quantity: math.NaN(), Currency: "KRW", Leverage: 1},
			wantErr: true,
		},
		{
			name:    "infinite leverage",
			asset:   Asset{AssetType: AssetTypeCash, PlotType: "cash", Quantity: 1, Currency: "KRW", Leverage: math.Inf(1)},
			wantErr: true,
		},
		{
			name:  "negative quantity allowed",
			asset: Asset{AssetType: AssetTypeCrypto, PlotType: "crypto", TickerSymbol: "BTC", Quantity: -0.5, Currency: "KRW", Leverage: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.asset.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAsset_Normalize(t *testing.T) {
	a := Asset{AssetType: "Stock", PlotType: "equity", TickerSymbol: " aapl ", Quantity: 1, Currency: "usd"}
	a.Normalize()

	if a.AssetType != AssetTypeStock {
		t.Errorf("AssetType = %q, want stock", a.AssetType)
	}
	if a.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", a.Currency)
	}
	if a.TickerSymbol != "aapl" {
		t.Errorf("TickerSymbol = %q", a.TickerSymbol)
	}
	if a.Leverage != 1.0 {
		t.Errorf("Leverage = %v, want 1.0 default", a.Leverage)
	}
}

func TestAsset_HasCachedPrice(t *testing.T) {
	a := Asset{}
	if a.HasCachedPrice() {
		t.Error("nil price should not count as cached")
	}

	a.CurrentPrice = floatPtr(math.NaN())
	if a.HasCachedPrice() {
		t.Error("NaN price should not count as cached")
	}

	a.CurrentPrice = floatPtr(math.Inf(1))
	if a.HasCachedPrice() {
		t.Error("Inf price should not count as cached")
	}

	a.CurrentPrice = floatPtr(0)
	if !a.HasCachedPrice() {
		t.Error("zero is a legitimate cached price")
	}
}

func TestParseAssetType(t *testing.T) {
	tests := []struct {
		in   string
		want AssetType
	}{
		{"stock", AssetTypeStock},
		{"CRYPTO", AssetTypeCrypto},
		{" cash ", AssetTypeCash},
		{"bond", AssetTypeOther},
		{"", AssetTypeOther},
	}
	for _, tt := range tests {
		if got := ParseAssetType(tt.in); got != tt.want {
			t.Errorf("ParseAssetType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFinalValue_Rounding(t *testing.T) {
	tests := []struct {
		price, quantity, leverage float64
		want                      float64
	}{
		{195000, 10, 1.0, 1950000.00},
		{60000, 0.5, 2.0, 60000.00},
		{0, 100, 3.0, 0.00},
		{33.335, 1, 1.0, 33.34},
		{1.005, 10, 1.0, 10.05},
		{100, -2, 1.0, -200.00},
	}
	for _, tt := range tests {
		if got := FinalValue(tt.price, tt.quantity, tt.leverage); got != tt.want {
			t.Errorf("FinalValue(%v, %v, %v) = %v, want %v", tt.price, tt.quantity, tt.leverage, got, tt.want)
		}
	}
}

// decimal.NewFromFloat panics on NaN and Inf; FinalValue must absorb them.
func TestFinalValue_NonFiniteInputsValueAtZero(t *testing.T) {
	tests := []struct {
		name                      string
		price, quantity, leverage float64
	}{
		{"NaN price", math.NaN(), 10, 1},
		{"Inf price", math.Inf(1), 10, 1},
		{"negative Inf price", math.Inf(-1), 10, 1},
		{"NaN quantity", 100, math.NaN(), 1},
		{"Inf leverage", 100, 10, math.Inf(1)},
	}
	for _, tt := range tests {
		if got := FinalValue(tt.price, tt.quantity, tt.leverage); got != 0 {
			t.Errorf("%s: FinalValue = %v, want 0", tt.name, got)
		}
	}
}

func TestSumFinalValues_Exact(t *testing.T) {
	valuations := []Valuation{
		{FinalValue: 0.1},
		{FinalValue: 0.2},
		{FinalValue: 0.3},
	}
	if got := SumFinalValues(valuations); got != 0.6 {
		t.Errorf("SumFinalValues = %v, want 0.6 exactly", got)
	}
}

func TestGroupFinalValuesByPlotType(t *testing.T) {
	valuations := []Valuation{
		{Asset: Asset{PlotType: "us-equity"}, FinalValue: 100.50},
		{Asset: Asset{PlotType: "crypto"}, FinalValue: 50.25},
		{Asset: Asset{PlotType: "us-equity"}, FinalValue: 99.50},
	}

	groups := GroupFinalValuesByPlotType(valuations)
	if groups["us-equity"] != 200.00 {
		t.Errorf("us-equity group = %v, want 200.00", groups["us-equity"])
	}
	if groups["crypto"] != 50.25 {
		t.Errorf("crypto group = %v, want 50.25", groups["crypto"])
	}
}
