package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolPriceUSD(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/simple/price", r.URL.Path)
		require.Equal(t, "solana", r.URL.Query().Get("ids"))
		require.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"solana":{"usd":142.37}}`))
	}))
	defer srv.Close()

	c := NewCoinGeckoClientWithBaseURL(srv.URL)
	price, err := c.SolPriceUSD(context.Background())
	require.NoError(t, err)
	require.Equal(t, 142.37, price)
}

func TestSolPriceUSDUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewCoinGeckoClientWithBaseURL(srv.URL)
	_, err := c.SolPriceUSD(context.Background())
	require.Error(t, err)
}
