package model

import "errors"

// WalletResponse represents response for POST /create-wallet and
// POST /create-wallet-with-private-key
type WalletResponse struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// RecoverWalletRequest represents request for POST /create-wallet-with-private-key
type RecoverWalletRequest struct {
	PrivateKey string `json:"privateKey"`
}

// Validate validates RecoverWalletRequest required fields.
func (r *RecoverWalletRequest) Validate() error {
	if r.PrivateKey == "" {
		return errors.New("privateKey is required")
	}
	return nil
}

// AddressQRRequest represents request for POST /address-qr
type AddressQRRequest struct {
	PublicKey string `json:"publicKey"`
}

// Validate validates AddressQRRequest required fields.
func (r *AddressQRRequest) Validate() error {
	if r.PublicKey == "" {
		return errors.New("publicKey is required")
	}
	return nil
}

// AddressQRResponse represents response for POST /address-qr.
// QRCode is a base64-encoded PNG of the address.
type AddressQRResponse struct {
	PublicKey string `json:"publicKey"`
	QRCode    string `json:"qrCode"`
}
