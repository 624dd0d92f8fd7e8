package binance

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetSpotPrice_ParsesDecimalString(t *testing.T) {
	var capturedSymbol string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedSymbol = r.URL.Query().Get("symbol")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"symbol":"BTCUSDT","price":"60000.12000000"}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	price, err := client.GetSpotPrice(context.Background(), "btc")
	if err != nil {
		t.Fatalf("GetSpotPrice failed: %v", err)
	}

	if capturedSymbol != "BTCUSDT" {
		t.Errorf("expected pair BTCUSDT, got %s", capturedSymbol)
	}
	if price != 60000.12 {
		t.Errorf("expected price 60000.12, got %v", price)
	}
}

func TestGetSpotPrice_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":-1121,"msg":"Invalid symbol."}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.GetSpotPrice(context.Background(), "NOPE")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", apiErr.StatusCode)
	}
	if apiErr.Symbol != "NOPEUSDT" {
		t.Errorf("expected symbol NOPEUSDT in error, got %s", apiErr.Symbol)
	}
}

// strconv.ParseFloat accepts "NaN" and "Inf" spellings, but a non-finite
// quote must surface as an error rather than a valid price.
func TestGetSpotPrice_NonFinitePrice(t *testing.T) {
	for _, body := range []string{
		`{"symbol":"BTCUSDT","price":"NaN"}`,
		`{"symbol":"BTCUSDT","price":"Inf"}`,
		`{"symbol":"BTCUSDT","price":"-Infinity"}`,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		client := NewClient(WithBaseURL(srv.URL))
		price, err := client.GetSpotPrice(context.Background(), "BTC")
		srv.Close()

		if err == nil {
			t.Errorf("body %s: expected error, got price %v", body, price)
		}
	}
}

func TestGetSpotPrice_UnparseablePrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"symbol":"BTCUSDT","price":"not-a-number"}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	if _, err := client.GetSpotPrice(context.Background(), "BTC"); err == nil {
		t.Fatal("expected parse error for non-numeric price")
	}
}

func TestGetSpotPrice_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before use

	client := NewClient(WithBaseURL(srv.URL))
	if _, err := client.GetSpotPrice(context.Background(), "BTC"); err == nil {
		t.Fatal("expected transport error when server is down")
	}
}
