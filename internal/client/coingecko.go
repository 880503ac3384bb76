package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const coingeckoAPI = "https://api.coingecko.com/api/v3"

// CoinGeckoClient client for CoinGecko API
type CoinGeckoClient struct {
	baseURL string
	client  *http.Client
}

// NewCoinGeckoClient creates a new CoinGecko client.
func NewCoinGeckoClient() *CoinGeckoClient {
	return NewCoinGeckoClientWithBaseURL(coingeckoAPI)
}

// NewCoinGeckoClientWithBaseURL creates a CoinGecko client against a custom
// base URL, used by tests.
func NewCoinGeckoClientWithBaseURL(baseURL string) *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// priceResponse response from CoinGecko API
type priceResponse struct {
	Solana struct {
		USD float64 `json:"usd"`
	} `json:"solana"`
}

// SolPriceUSD gets the SOL/USD spot price.
func (c *CoinGeckoClient) SolPriceUSD(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/simple/price?ids=solana&vs_currencies=usd", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build price request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to get price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to get price: status %d", resp.StatusCode)
	}

	var priceResp priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&priceResp); err != nil {
		return 0, fmt.Errorf("failed to decode price: %w", err)
	}

	return priceResp.Solana.USD, nil
}
