package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

const (
	// ServiceName identifies the gateway in status responses and logs.
	ServiceName = "solana-wallet-api"
	Version     = "1.0.0"
)

// StatusResponse contains status response fields.
type StatusResponse struct {
	Message string `json:"message"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// HealthResponse contains health probe response fields.
type HealthResponse struct {
	Service  string   `json:"service"`
	Version  string   `json:"version"`
	Failures []string `json:"failures"`
}

// PriceResponse contains the SOL/USD spot price.
type PriceResponse struct {
	PriceUSD float64 `json:"priceUsd"`
}

// Status handles GET /status. Always returns OK; used for liveness probing.
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200  {object}  handler.StatusResponse
// @Router       /status [get]
func (h *WalletHandler) Status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	respondWithJSON(w, http.StatusOK, &StatusResponse{Message: "OK", Service: ServiceName, Version: Version})
}

// Health handles GET /health. It pings the RPC node so readiness reflects the
// gateway's one external dependency.
// @Summary      Readiness probe
// @Tags         system
// @Produce      json
// @Success      200  {object}  handler.HealthResponse
// @Router       /health [get]
func (h *WalletHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	health := &HealthResponse{
		Service:  ServiceName,
		Version:  Version,
		Failures: []string{},
	}

	code := http.StatusOK
	if err := h.service.Health(ctx); err != nil {
		health.Failures = append(health.Failures, err.Error())
		code = http.StatusServiceUnavailable
	}

	respondWithJSON(w, code, health)
}

// SolPrice handles GET /sol-price
// @Summary      SOL/USD spot price
// @Tags         system
// @Produce      json
// @Success      200  {object}  handler.PriceResponse
// @Router       /sol-price [get]
func (h *WalletHandler) SolPrice(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	price, err := h.prices.SolPriceUSD(ctx)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}
	respondWithJSON(w, http.StatusOK, &PriceResponse{PriceUSD: price})
}
