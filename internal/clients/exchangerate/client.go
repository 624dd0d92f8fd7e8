// Package exchangerate provides a client for the exchangerate-api.com feed
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/timebird7/asset-plot/internal/common"
	"github.com/timebird7/asset-plot/internal/interfaces"
)

const (
	DefaultBaseURL = "https://api.exchangerate-api.com"
	DefaultTimeout = 10 * time.Second
)

// Client implements the ExchangeRateClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new exchange rate client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ratesResponse holds the rates mapping keyed by currency code.
type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// GetRate retrieves how many units of target one unit of base buys.
// Identical currencies short-circuit to 1.0 without a network call.
func (c *Client) GetRate(ctx context.Context, base, target string) (float64, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	target = strings.ToUpper(strings.TrimSpace(target))

	if base == target {
		return 1.0, nil
	}

	reqURL := fmt.Sprintf("%s/v4/latest/%s", c.baseURL, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("base", base).Str("target", target).Msg("Exchange rate request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("exchange rate API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	rate, ok := result.Rates[target]
	if !ok {
		return 0, fmt.Errorf("rate not found for %s->%s", base, target)
	}

	return rate, nil
}

// Ensure Client implements ExchangeRateClient
var _ interfaces.ExchangeRateClient = (*Client)(nil)
