package wallet

import (
	"encoding/base64"
	"fmt"

	"github.com/wizinfantry/SOLANA-WALLET-API/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/skip2/go-qrcode"
)

// Generate produces a fresh keypair. Both halves are Base58: the private key
// decodes to 64 bytes, the public key to 32.
func (s *Service) Generate() *model.WalletResponse {
	w := solana.NewWallet()
	return &model.WalletResponse{
		PublicKey:  w.PublicKey().String(),
		PrivateKey: w.PrivateKey.String(),
	}
}

// Recover reconstructs the keypair belonging to a Base58 private key. The
// supplied secret is echoed back unchanged.
func (s *Service) Recover(privateKey string) (*model.WalletResponse, error) {
	key, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	return &model.WalletResponse{
		PublicKey:  key.PublicKey().String(),
		PrivateKey: privateKey,
	}, nil
}

// AddressQR renders an address as a QR code PNG, base64 encoded.
func (s *Service) AddressQR(publicKey string) (*model.AddressQRResponse, error) {
	if _, err := solana.PublicKeyFromBase58(publicKey); err != nil {
		return nil, model.WrapError(model.KindDecode, fmt.Errorf("invalid public key: %w", err))
	}

	qr, err := qrcode.New(publicKey, qrcode.Medium)
	if err != nil {
		return nil, model.WrapError(model.KindInternal, fmt.Errorf("failed to create QR code: %w", err))
	}

	png, err := qr.PNG(256)
	if err != nil {
		return nil, model.WrapError(model.KindInternal, fmt.Errorf("failed to generate PNG: %w", err))
	}

	return &model.AddressQRResponse{
		PublicKey: publicKey,
		QRCode:    base64.StdEncoding.EncodeToString(png),
	}, nil
}
