package model

import "errors"

// SolBalanceRequest represents request for POST /get-sol-balance
type SolBalanceRequest struct {
	PublicKey string `json:"publicKey"`
}

// Validate validates SolBalanceRequest required fields.
func (r *SolBalanceRequest) Validate() error {
	if r.PublicKey == "" {
		return errors.New("publicKey is required")
	}
	return nil
}

// SolBalanceResponse represents response for POST /get-sol-balance.
// Balance is denominated in SOL.
type SolBalanceResponse struct {
	PublicKey string  `json:"publicKey"`
	Balance   float64 `json:"balance"`
}

// SplBalanceRequest represents request for POST /get-spl-balance
type SplBalanceRequest struct {
	PublicKey    string `json:"publicKey"`
	TokenAddress string `json:"tokenAddress"`
}

// Validate validates SplBalanceRequest required fields.
func (r *SplBalanceRequest) Validate() error {
	var missing []string
	if r.PublicKey == "" {
		missing = append(missing, "publicKey")
	}
	if r.TokenAddress == "" {
		missing = append(missing, "tokenAddress")
	}
	return requiredError(missing)
}

// SplBalanceResponse represents response for POST /get-spl-balance.
// Balance is in the token's display units as reported by the cluster.
type SplBalanceResponse struct {
	PublicKey    string  `json:"publicKey"`
	TokenAddress string  `json:"tokenAddress"`
	Balance      float64 `json:"balance"`
}
