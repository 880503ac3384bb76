package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/wizinfantry/SOLANA-WALLET-API/internal/client"
	"github.com/wizinfantry/SOLANA-WALLET-API/internal/model"
	"github.com/wizinfantry/SOLANA-WALLET-API/internal/wallet"
)

// WalletHandler exposes the gateway's wallet operations over HTTP. All
// handlers are stateless; the per-request timeout bounds every network call
// including confirmation waits.
type WalletHandler struct {
	service *wallet.Service
	prices  *client.CoinGeckoClient
	timeout time.Duration
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(service *wallet.Service, prices *client.CoinGeckoClient, timeout time.Duration) *WalletHandler {
	return &WalletHandler{
		service: service,
		prices:  prices,
		timeout: timeout,
	}
}

func (h *WalletHandler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

// CreateWallet handles POST /create-wallet
// @Summary      Generate new keypair
// @Description  Generates a fresh random keypair. Nothing is stored server-side.
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletResponse
// @Router       /create-wallet [post]
func (h *WalletHandler) CreateWallet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	respondWithJSON(w, http.StatusOK, h.service.Generate())
}

// CreateWalletWithPrivateKey handles POST /create-wallet-with-private-key
// @Summary      Reconstruct keypair from a private key
// @Description  Derives the public key belonging to a Base58 private key and echoes the secret back.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.RecoverWalletRequest  true  "Private key"
// @Success      200      {object}  model.WalletResponse
// @Router       /create-wallet-with-private-key [post]
func (h *WalletHandler) CreateWalletWithPrivateKey(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.RecoverWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := h.service.Recover(req.PrivateKey)
	if err != nil {
		respondWithError(w, model.HTTPStatus(err), err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// GetSolBalance handles POST /get-sol-balance
// @Summary      Get SOL balance
// @Description  Queries the account's native balance in SOL.
// @Tags         balance
// @Accept       json
// @Produce      json
// @Param        request  body      model.SolBalanceRequest  true  "Account"
// @Success      200      {object}  model.SolBalanceResponse
// @Router       /get-sol-balance [post]
func (h *WalletHandler) GetSolBalance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.SolBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	resp, err := h.service.SolBalance(ctx, req.PublicKey)
	if err != nil {
		respondWithError(w, model.HTTPStatus(err), err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// SendSol handles POST /send-sol
// @Summary      Send SOL
// @Description  Transfers SOL to the recipient and waits for confirmation.
// @Tags         transfer
// @Accept       json
// @Produce      json
// @Param        request  body      model.SendSolRequest  true  "Transfer data"
// @Success      200      {object}  model.TransferResponse
// @Router       /send-sol [post]
func (h *WalletHandler) SendSol(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.SendSolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	resp, err := h.service.SendSol(ctx, &req)
	if err != nil {
		respondWithError(w, model.HTTPStatus(err), err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// GetSplBalance handles POST /get-spl-balance
// @Summary      Get SPL token balance
// @Description  Queries the owner's balance for a token mint. Owners with no token account for the mint report zero.
// @Tags         balance
// @Accept       json
// @Produce      json
// @Param        request  body      model.SplBalanceRequest  true  "Owner and mint"
// @Success      200      {object}  model.SplBalanceResponse
// @Router       /get-spl-balance [post]
func (h *WalletHandler) GetSplBalance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.SplBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	resp, err := h.service.SplBalance(ctx, req.PublicKey, req.TokenAddress)
	if err != nil {
		respondWithError(w, model.HTTPStatus(err), err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// SendSplToken handles POST /send-spl-token
// @Summary      Send SPL tokens
// @Description  Transfers SPL tokens to the recipient and waits for confirmation. Amounts are converted with a fixed precision of 9 decimals.
// @Tags         transfer
// @Accept       json
// @Produce      json
// @Param        request  body      model.SendSplRequest  true  "Transfer data"
// @Success      200      {object}  model.TransferResponse
// @Router       /send-spl-token [post]
func (h *WalletHandler) SendSplToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.SendSplRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	resp, err := h.service.SendSpl(ctx, &req)
	if err != nil {
		respondWithError(w, model.HTTPStatus(err), err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// AddressQR handles POST /address-qr
// @Summary      Render an address QR code
// @Description  Returns a base64 PNG QR code of the given public key.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.AddressQRRequest  true  "Account"
// @Success      200      {object}  model.AddressQRResponse
// @Router       /address-qr [post]
func (h *WalletHandler) AddressQR(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.AddressQRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := h.service.AddressQR(req.PublicKey)
	if err != nil {
		respondWithError(w, model.HTTPStatus(err), err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}
