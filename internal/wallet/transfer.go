package wallet

import (
	"context"
	"fmt"

	"github.com/wizinfantry/SOLANA-WALLET-API/internal/common"
	"github.com/wizinfantry/SOLANA-WALLET-API/internal/model"

	"github.com/gagliardetto/solana-go"
)

// SendSol submits a native transfer and blocks until confirmation.
func (s *Service) SendSol(ctx context.Context, req *model.SendSolRequest) (*model.TransferResponse, error) {
	sender, err := parsePrivateKey(req.FromPrivateKey)
	if err != nil {
		return nil, err
	}

	to, err := solana.PublicKeyFromBase58(req.ToPublicKey)
	if err != nil {
		return nil, model.WrapError(model.KindDecode, fmt.Errorf("invalid recipient public key: %w", err))
	}

	lamports, err := common.SolToLamports(req.Amount)
	if err != nil {
		return nil, model.WrapError(model.KindValidation, fmt.Errorf("invalid amount: %w", err))
	}

	sig, err := s.ledger.TransferSol(ctx, sender, to, lamports)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"signature": sig.String(),
		"amountSol": req.Amount,
	}).Info("sol transfer confirmed")

	return &model.TransferResponse{TransactionSignature: sig.String()}, nil
}

// SendSpl submits an SPL token transfer and blocks until confirmation.
// The display amount is converted with the fixed assumed precision of
// common.TokenDecimals, not the mint's actual decimals.
func (s *Service) SendSpl(ctx context.Context, req *model.SendSplRequest) (*model.TransferResponse, error) {
	sender, err := parsePrivateKey(req.FromPrivateKey)
	if err != nil {
		return nil, err
	}

	to, err := solana.PublicKeyFromBase58(req.ToPublicKey)
	if err != nil {
		return nil, model.WrapError(model.KindDecode, fmt.Errorf("invalid recipient public key: %w", err))
	}

	mint, err := solana.PublicKeyFromBase58(req.TokenAddress)
	if err != nil {
		return nil, model.WrapError(model.KindDecode, fmt.Errorf("invalid token address: %w", err))
	}

	units, err := common.ToBaseUnits(req.Amount, common.TokenDecimals)
	if err != nil {
		return nil, model.WrapError(model.KindValidation, fmt.Errorf("invalid amount: %w", err))
	}

	sig, err := s.ledger.TransferToken(ctx, sender, to, mint, units)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"signature": sig.String(),
		"amount":    req.Amount,
		"mint":      req.TokenAddress,
	}).Info("spl transfer confirmed")

	return &model.TransferResponse{TransactionSignature: sig.String()}, nil
}
