package wallet

import (
	"context"
	"fmt"

	"github.com/wizinfantry/SOLANA-WALLET-API/internal/common"
	"github.com/wizinfantry/SOLANA-WALLET-API/internal/model"

	"github.com/gagliardetto/solana-go"
)

// SolBalance queries the account's native balance, converted to SOL.
func (s *Service) SolBalance(ctx context.Context, publicKey string) (*model.SolBalanceResponse, error) {
	account, err := solana.PublicKeyFromBase58(publicKey)
	if err != nil {
		return nil, model.WrapError(model.KindDecode, fmt.Errorf("invalid public key: %w", err))
	}

	lamports, err := s.ledger.Balance(ctx, account)
	if err != nil {
		return nil, err
	}

	return &model.SolBalanceResponse{
		PublicKey: publicKey,
		Balance:   common.LamportsToSol(lamports),
	}, nil
}

// SplBalance queries the owner's balance for a token mint in display units.
// An owner holding no account for the mint has a balance of zero.
func (s *Service) SplBalance(ctx context.Context, publicKey, tokenAddress string) (*model.SplBalanceResponse, error) {
	owner, err := solana.PublicKeyFromBase58(publicKey)
	if err != nil {
		return nil, model.WrapError(model.KindDecode, fmt.Errorf("invalid public key: %w", err))
	}

	mint, err := solana.PublicKeyFromBase58(tokenAddress)
	if err != nil {
		return nil, model.WrapError(model.KindDecode, fmt.Errorf("invalid token address: %w", err))
	}

	balance, err := s.ledger.TokenBalance(ctx, owner, mint)
	if err != nil {
		return nil, err
	}

	return &model.SplBalanceResponse{
		PublicKey:    publicKey,
		TokenAddress: tokenAddress,
		Balance:      balance,
	}, nil
}
