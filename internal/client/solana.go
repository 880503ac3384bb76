package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wizinfantry/SOLANA-WALLET-API/internal/model"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
)

// confirmPollInterval is how often a submitted transaction's status is polled
// until it reaches the configured commitment level.
const confirmPollInterval = 500 * time.Millisecond

// SolanaClient is a client for working with Solana RPC. A single instance is
// created at startup and shared by all requests; rpc.Client is safe for
// concurrent use.
type SolanaClient struct {
	rpcClient  *rpc.Client
	commitment rpc.CommitmentType
	log        *logrus.Entry
}

// NewSolanaClient creates a new Solana client for the given RPC endpoint.
func NewSolanaClient(rpcURL string, commitment rpc.CommitmentType, log *logrus.Entry) *SolanaClient {
	return &SolanaClient{
		rpcClient:  rpc.New(rpcURL),
		commitment: commitment,
		log:        log,
	}
}

// ParseCommitment maps a configuration string to an RPC commitment level.
func ParseCommitment(s string) (rpc.CommitmentType, error) {
	switch rpc.CommitmentType(s) {
	case rpc.CommitmentProcessed:
		return rpc.CommitmentProcessed, nil
	case rpc.CommitmentConfirmed:
		return rpc.CommitmentConfirmed, nil
	case rpc.CommitmentFinalized:
		return rpc.CommitmentFinalized, nil
	default:
		return "", fmt.Errorf("invalid commitment level %q", s)
	}
}

// Balance gets the account's SOL balance in lamports.
func (c *SolanaClient) Balance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	balance, err := c.rpcClient.GetBalance(ctx, account, c.commitment)
	if err != nil {
		return 0, model.WrapError(model.KindNetwork, fmt.Errorf("failed to get SOL balance: %w", err))
	}
	return balance.Value, nil
}

// TokenBalance gets the owner's balance for the given mint in display units.
// The first token account held by the owner for the mint is read; an owner
// with no such account has a balance of zero.
func (c *SolanaClient) TokenBalance(ctx context.Context, owner, mint solana.PublicKey) (float64, error) {
	accounts, err := c.rpcClient.GetTokenAccountsByOwner(
		ctx,
		owner,
		&rpc.GetTokenAccountsConfig{Mint: &mint},
		&rpc.GetTokenAccountsOpts{
			Commitment: c.commitment,
			Encoding:   solana.EncodingBase64,
		},
	)
	if err != nil {
		return 0, model.WrapError(model.KindNetwork, fmt.Errorf("failed to get token accounts: %w", err))
	}
	if len(accounts.Value) == 0 {
		return 0, nil
	}

	balance, err := c.rpcClient.GetTokenAccountBalance(ctx, accounts.Value[0].Pubkey, c.commitment)
	if err != nil {
		return 0, model.WrapError(model.KindNetwork, fmt.Errorf("failed to get token account balance: %w", err))
	}
	if balance.Value == nil || balance.Value.UiAmount == nil {
		return 0, nil
	}
	return *balance.Value.UiAmount, nil
}

// TransferSol submits a single system-program transfer of lamports from the
// sender to the recipient and waits for confirmation.
func (c *SolanaClient) TransferSol(ctx context.Context, sender solana.PrivateKey, to solana.PublicKey, lamports uint64) (solana.Signature, error) {
	instruction := system.NewTransferInstruction(
		lamports,
		sender.PublicKey(),
		to,
	).Build()

	return c.sendAndConfirm(ctx, []solana.Instruction{instruction}, sender)
}

// TransferToken submits an SPL token transfer of base units between the
// sender's and recipient's associated token accounts and waits for
// confirmation. When the recipient's token account does not exist yet, a
// create instruction paid by the sender is prepended.
func (c *SolanaClient) TransferToken(ctx context.Context, sender solana.PrivateKey, to, mint solana.PublicKey, units uint64) (solana.Signature, error) {
	source, _, err := solana.FindAssociatedTokenAddress(sender.PublicKey(), mint)
	if err != nil {
		return solana.Signature{}, model.WrapError(model.KindDecode, fmt.Errorf("failed to find source token account address: %w", err))
	}

	destination, _, err := solana.FindAssociatedTokenAddress(to, mint)
	if err != nil {
		return solana.Signature{}, model.WrapError(model.KindDecode, fmt.Errorf("failed to find destination token account address: %w", err))
	}

	var instructions []solana.Instruction

	_, err = c.rpcClient.GetAccountInfo(ctx, destination)
	switch {
	case errors.Is(err, rpc.ErrNotFound):
		instructions = append(instructions, associatedtokenaccount.NewCreateInstruction(
			sender.PublicKey(), // payer
			to,                 // owner
			mint,
		).Build())
	case err != nil:
		return solana.Signature{}, model.WrapError(model.KindNetwork, fmt.Errorf("failed to check destination token account: %w", err))
	}

	instructions = append(instructions, token.NewTransferInstruction(
		units,
		source,
		destination,
		sender.PublicKey(),
		[]solana.PublicKey{},
	).Build())

	return c.sendAndConfirm(ctx, instructions, sender)
}

// Health reports whether the RPC node is ready to serve requests.
func (c *SolanaClient) Health(ctx context.Context) error {
	out, err := c.rpcClient.GetHealth(ctx)
	if err != nil {
		return model.WrapError(model.KindNetwork, fmt.Errorf("rpc health check failed: %w", err))
	}
	if out != rpc.HealthOk {
		return model.WrapError(model.KindNetwork, fmt.Errorf("rpc node unhealthy: %s", out))
	}
	return nil
}

// sendAndConfirm signs the instructions into a single transaction, submits it
// and polls until the cluster reports the configured commitment level. The
// wait is bounded by ctx.
func (c *SolanaClient) sendAndConfirm(ctx context.Context, instructions []solana.Instruction, sender solana.PrivateKey) (solana.Signature, error) {
	recent, err := c.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, model.WrapError(model.KindNetwork, fmt.Errorf("failed to get latest blockhash: %w", err))
	}

	tx, err := solana.NewTransaction(
		instructions,
		recent.Value.Blockhash,
		solana.TransactionPayer(sender.PublicKey()),
	)
	if err != nil {
		return solana.Signature{}, model.WrapError(model.KindInternal, fmt.Errorf("failed to create transaction: %w", err))
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if sender.PublicKey().Equals(key) {
			return &sender
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, model.WrapError(model.KindInternal, fmt.Errorf("failed to sign transaction: %w", err))
	}

	sig, err := c.rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false,
			PreflightCommitment: c.commitment,
		},
	)
	if err != nil {
		return solana.Signature{}, model.WrapError(model.KindNetwork, fmt.Errorf("failed to send transaction: %w", err))
	}

	if err := c.confirm(ctx, sig); err != nil {
		return solana.Signature{}, err
	}
	return sig, nil
}

func (c *SolanaClient) confirm(ctx context.Context, sig solana.Signature) error {
	ticker := time.NewTicker(confirmPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return model.WrapError(model.KindConfirmation, fmt.Errorf("confirmation wait for %s aborted: %w", sig, ctx.Err()))
		case <-ticker.C:
		}

		statuses, err := c.rpcClient.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			// Transient status failures are retried until ctx expires.
			c.log.WithError(err).WithField("signature", sig.String()).Debug("signature status poll failed")
			continue
		}
		if len(statuses.Value) == 0 || statuses.Value[0] == nil {
			continue
		}

		status := statuses.Value[0]
		if status.Err != nil {
			return model.WrapError(model.KindNetwork, fmt.Errorf("transaction %s failed on-chain: %v", sig, status.Err))
		}
		if commitmentReached(status.ConfirmationStatus, c.commitment) {
			return nil
		}
	}
}

// commitmentReached reports whether a confirmation status satisfies the
// required commitment level.
func commitmentReached(status rpc.ConfirmationStatusType, required rpc.CommitmentType) bool {
	rank := func(s string) int {
		switch s {
		case string(rpc.CommitmentProcessed):
			return 1
		case string(rpc.CommitmentConfirmed):
			return 2
		case string(rpc.CommitmentFinalized):
			return 3
		default:
			return 0
		}
	}
	return rank(string(status)) >= rank(string(required))
}
