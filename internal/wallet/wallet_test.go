package wallet

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/wizinfantry/SOLANA-WALLET-API/internal/model"

	"github.com/gagliardetto/solana-go"
)

var _ Ledger = (*recordingLedger)(nil)

// recordingLedger captures the arguments of transfer calls.
type recordingLedger struct {
	balance      uint64
	tokenBalance float64
	lastSender   solana.PublicKey
	lastTo       solana.PublicKey
	lastMint     solana.PublicKey
	lastLamports uint64
	lastUnits    uint64
}

func (r *recordingLedger) Balance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	return r.balance, nil
}

func (r *recordingLedger) TokenBalance(ctx context.Context, owner, mint solana.PublicKey) (float64, error) {
	return r.tokenBalance, nil
}

func (r *recordingLedger) TransferSol(ctx context.Context, sender solana.PrivateKey, to solana.PublicKey, lamports uint64) (solana.Signature, error) {
	r.lastSender = sender.PublicKey()
	r.lastTo = to
	r.lastLamports = lamports
	return solana.Signature{}, nil
}

func (r *recordingLedger) TransferToken(ctx context.Context, sender solana.PrivateKey, to, mint solana.PublicKey, units uint64) (solana.Signature, error) {
	r.lastSender = sender.PublicKey()
	r.lastTo = to
	r.lastMint = mint
	r.lastUnits = units
	return solana.Signature{}, nil
}

func (r *recordingLedger) Health(ctx context.Context) error {
	return nil
}

func newTestService(ledger Ledger) *Service {
	return NewService(ledger, logrus.NewEntry(logrus.New()))
}

func TestGenerateRecoverRoundTrip(t *testing.T) {
	s := newTestService(&recordingLedger{})

	generated := s.Generate()
	require.NotEmpty(t, generated.PublicKey)
	require.NotEmpty(t, generated.PrivateKey)

	recovered, err := s.Recover(generated.PrivateKey)
	require.NoError(t, err)
	require.Equal(t, generated.PublicKey, recovered.PublicKey)
	require.Equal(t, generated.PrivateKey, recovered.PrivateKey)
}

func TestGenerateIsRandom(t *testing.T) {
	s := newTestService(&recordingLedger{})
	require.NotEqual(t, s.Generate().PublicKey, s.Generate().PublicKey)
}

func TestRecoverRejectsBadKeys(t *testing.T) {
	s := newTestService(&recordingLedger{})

	tests := []struct {
		name       string
		privateKey string
	}{
		{"bad-alphabet", "0OIl"},
		{"wrong-length", "abc"},
		{"public-key-length", solana.NewWallet().PublicKey().String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Recover(tt.privateKey)
			require.Error(t, err)
			require.Equal(t, model.KindDecode, model.KindOf(err))
		})
	}
}

func TestSendSolConvertsToLamports(t *testing.T) {
	ledger := &recordingLedger{}
	s := newTestService(ledger)

	sender := solana.NewWallet()
	to := solana.NewWallet().PublicKey()

	resp, err := s.SendSol(context.Background(), &model.SendSolRequest{
		FromPrivateKey: sender.PrivateKey.String(),
		ToPublicKey:    to.String(),
		Amount:         1.5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.TransactionSignature)
	require.Equal(t, uint64(1_500_000_000), ledger.lastLamports)
	require.Equal(t, sender.PublicKey(), ledger.lastSender)
	require.Equal(t, to, ledger.lastTo)
}

func TestSendSplUsesFixedDecimals(t *testing.T) {
	ledger := &recordingLedger{}
	s := newTestService(ledger)

	sender := solana.NewWallet()
	to := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()

	resp, err := s.SendSpl(context.Background(), &model.SendSplRequest{
		FromPrivateKey: sender.PrivateKey.String(),
		ToPublicKey:    to.String(),
		TokenAddress:   mint.String(),
		Amount:         0.25,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.TransactionSignature)
	require.Equal(t, uint64(250_000_000), ledger.lastUnits)
	require.Equal(t, mint, ledger.lastMint)
}

func TestSendSolRejectsOutOfRangeAmount(t *testing.T) {
	ledger := &recordingLedger{}
	s := newTestService(ledger)

	_, err := s.SendSol(context.Background(), &model.SendSolRequest{
		FromPrivateKey: solana.NewWallet().PrivateKey.String(),
		ToPublicKey:    solana.NewWallet().PublicKey().String(),
		Amount:         1e30,
	})
	require.Error(t, err)
	require.Equal(t, model.KindValidation, model.KindOf(err))
	require.Zero(t, ledger.lastLamports)
}

func TestSolBalanceConversion(t *testing.T) {
	s := newTestService(&recordingLedger{balance: 2_500_000_000})

	resp, err := s.SolBalance(context.Background(), solana.NewWallet().PublicKey().String())
	require.NoError(t, err)
	require.Equal(t, 2.5, resp.Balance)
}

func TestSplBalancePassThrough(t *testing.T) {
	s := newTestService(&recordingLedger{tokenBalance: 42.25})

	owner := solana.NewWallet().PublicKey().String()
	mint := solana.NewWallet().PublicKey().String()

	resp, err := s.SplBalance(context.Background(), owner, mint)
	require.NoError(t, err)
	require.Equal(t, 42.25, resp.Balance)
	require.Equal(t, owner, resp.PublicKey)
	require.Equal(t, mint, resp.TokenAddress)

	_, err = s.SplBalance(context.Background(), owner, "not-a-mint-0OIl")
	require.Error(t, err)
	require.Equal(t, model.KindDecode, model.KindOf(err))
}

func TestKeystoreRoundTrip(t *testing.T) {
	s := newTestService(&recordingLedger{})

	generated := s.Generate()

	ks, err := s.Export(&model.ExportWalletRequest{
		PrivateKey: generated.PrivateKey,
		Password:   "hunter2",
	})
	require.NoError(t, err)
	require.Equal(t, "solana", ks.Network)
	require.Equal(t, generated.PublicKey, ks.PublicKey)
	require.NotEmpty(t, ks.CipherText)

	imported, err := s.Import(&model.ImportWalletRequest{
		Keystore: ks,
		Password: "hunter2",
	})
	require.NoError(t, err)
	require.Equal(t, generated.PublicKey, imported.PublicKey)
	require.Equal(t, generated.PrivateKey, imported.PrivateKey)

	_, err = s.Import(&model.ImportWalletRequest{
		Keystore: ks,
		Password: "wrong",
	})
	require.Error(t, err)
	require.Equal(t, model.KindDecode, model.KindOf(err))
}

func TestAddressQRService(t *testing.T) {
	s := newTestService(&recordingLedger{})

	owner := solana.NewWallet().PublicKey().String()
	resp, err := s.AddressQR(owner)
	require.NoError(t, err)
	require.Equal(t, owner, resp.PublicKey)
	require.NotEmpty(t, resp.QRCode)

	_, err = s.AddressQR("bogus")
	require.Error(t, err)
	require.Equal(t, model.KindDecode, model.KindOf(err))
}
