package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/wizinfantry/SOLANA-WALLET-API/internal/model"

	"github.com/gagliardetto/solana-go"
)

// Ledger is the subset of Solana RPC operations the gateway needs. It is
// implemented by client.SolanaClient and substituted with a fake in tests.
type Ledger interface {
	Balance(ctx context.Context, account solana.PublicKey) (uint64, error)
	TokenBalance(ctx context.Context, owner, mint solana.PublicKey) (float64, error)
	TransferSol(ctx context.Context, sender solana.PrivateKey, to solana.PublicKey, lamports uint64) (solana.Signature, error)
	TransferToken(ctx context.Context, sender solana.PrivateKey, to, mint solana.PublicKey, units uint64) (solana.Signature, error)
	Health(ctx context.Context) error
}

// Service implements the gateway's wallet operations on top of a Ledger.
// It holds no per-request state.
type Service struct {
	ledger Ledger
	log    *logrus.Entry
}

// NewService creates a wallet service backed by the given ledger.
func NewService(ledger Ledger, log *logrus.Entry) *Service {
	return &Service{
		ledger: ledger,
		log:    log,
	}
}

// parsePrivateKey decodes a Base58 private key and enforces the full 64-byte
// layout. solana.PrivateKeyFromBase58 does not check length and a short key
// would panic on public key derivation.
func parsePrivateKey(privateKey string) (solana.PrivateKey, error) {
	key, err := solana.PrivateKeyFromBase58(privateKey)
	if err != nil {
		return nil, model.WrapError(model.KindDecode, fmt.Errorf("invalid private key: %w", err))
	}
	if len(key) != 64 {
		return nil, model.WrapError(model.KindDecode, errors.New("invalid private key length: expected 64 bytes"))
	}
	return key, nil
}

// Health reports whether the backing ledger is reachable and ready.
func (s *Service) Health(ctx context.Context) error {
	return s.ledger.Health(ctx)
}
