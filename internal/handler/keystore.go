package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/wizinfantry/SOLANA-WALLET-API/internal/model"
)

// ExportWallet handles POST /export-wallet
// @Summary      Export an encrypted keystore
// @Description  Encrypts the private key under the supplied password and returns the keystore blob. The gateway stores nothing.
// @Tags         keystore
// @Accept       json
// @Produce      json
// @Param        request  body      model.ExportWalletRequest  true  "Key and password"
// @Success      200      {object}  model.Keystore
// @Router       /export-wallet [post]
func (h *WalletHandler) ExportWallet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.ExportWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := h.service.Export(&req)
	if err != nil {
		respondWithError(w, model.HTTPStatus(err), err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// ImportWallet handles POST /import-wallet
// @Summary      Import an encrypted keystore
// @Description  Decrypts a keystore blob and returns the keypair it protects.
// @Tags         keystore
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportWalletRequest  true  "Keystore and password"
// @Success      200      {object}  model.WalletResponse
// @Router       /import-wallet [post]
func (h *WalletHandler) ImportWallet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.ImportWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := h.service.Import(&req)
	if err != nil {
		respondWithError(w, model.HTTPStatus(err), err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}
