package model

import (
	"errors"
	"strings"
)

// SendSolRequest represents request for POST /send-sol.
// Amount is in SOL.
type SendSolRequest struct {
	FromPrivateKey string  `json:"fromPrivateKey"`
	ToPublicKey    string  `json:"toPublicKey"`
	Amount         float64 `json:"amount"`
}

// Validate validates SendSolRequest required fields and amount positivity.
func (r *SendSolRequest) Validate() error {
	var missing []string
	if r.FromPrivateKey == "" {
		missing = append(missing, "fromPrivateKey")
	}
	if r.ToPublicKey == "" {
		missing = append(missing, "toPublicKey")
	}
	if err := requiredError(missing); err != nil {
		return err
	}
	if r.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

// SendSplRequest represents request for POST /send-spl-token.
// Amount is in the token's display units.
type SendSplRequest struct {
	FromPrivateKey string  `json:"fromPrivateKey"`
	ToPublicKey    string  `json:"toPublicKey"`
	TokenAddress   string  `json:"tokenAddress"`
	Amount         float64 `json:"amount"`
}

// Validate validates SendSplRequest required fields and amount positivity.
func (r *SendSplRequest) Validate() error {
	var missing []string
	if r.FromPrivateKey == "" {
		missing = append(missing, "fromPrivateKey")
	}
	if r.ToPublicKey == "" {
		missing = append(missing, "toPublicKey")
	}
	if r.TokenAddress == "" {
		missing = append(missing, "tokenAddress")
	}
	if err := requiredError(missing); err != nil {
		return err
	}
	if r.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

// TransferResponse represents response for the send endpoints.
type TransferResponse struct {
	TransactionSignature string `json:"transactionSignature"`
}

func requiredError(missing []string) error {
	switch len(missing) {
	case 0:
		return nil
	case 1:
		return errors.New(missing[0] + " is required")
	default:
		return errors.New(strings.Join(missing, ", ") + " are required")
	}
}
