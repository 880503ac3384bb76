package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/wizinfantry/SOLANA-WALLET-API/internal/handler"
)

// endPoint represents an api element.
type endPoint struct {
	path       string
	handler    httprouter.Handle
	methodType string
}

// NewRouter configures an httprouter.Router serving the wallet endpoints,
// wrapping each handle (other than metrics and swagger) with a logger.
func NewRouter(h *handler.WalletHandler, l *logrus.Entry) *httprouter.Router {
	endpoints := []endPoint{
		// wallet operations
		{path: "/create-wallet", handler: h.CreateWallet, methodType: http.MethodPost},
		{path: "/create-wallet-with-private-key", handler: h.CreateWalletWithPrivateKey, methodType: http.MethodPost},
		{path: "/get-sol-balance", handler: h.GetSolBalance, methodType: http.MethodPost},
		{path: "/send-sol", handler: h.SendSol, methodType: http.MethodPost},
		{path: "/get-spl-balance", handler: h.GetSplBalance, methodType: http.MethodPost},
		{path: "/send-spl-token", handler: h.SendSplToken, methodType: http.MethodPost},
		{path: "/address-qr", handler: h.AddressQR, methodType: http.MethodPost},
		{path: "/export-wallet", handler: h.ExportWallet, methodType: http.MethodPost},
		{path: "/import-wallet", handler: h.ImportWallet, methodType: http.MethodPost},
		// system
		{path: "/status", handler: h.Status, methodType: http.MethodGet},
		{path: "/health", handler: h.Health, methodType: http.MethodGet},
		{path: "/sol-price", handler: h.SolPrice, methodType: http.MethodGet},
	}

	router := httprouter.New()
	for _, e := range endpoints {
		router.Handle(e.methodType, e.path, logHTTPRequest(l, e.handler))
	}

	// Prometheus metrics - no logging middleware
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	// Swagger UI
	router.Handler(http.MethodGet, "/swagger/*any", httpSwagger.WrapHandler)

	return router
}
