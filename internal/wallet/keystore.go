package wallet

import (
	"encoding/base64"
	"fmt"

	"github.com/wizinfantry/SOLANA-WALLET-API/internal/crypto"
	"github.com/wizinfantry/SOLANA-WALLET-API/internal/model"

	"github.com/gagliardetto/solana-go"
)

const keystoreNetwork = "solana"

// Export encrypts a private key under the caller's password and returns the
// blob. Nothing is written server-side.
func (s *Service) Export(req *model.ExportWalletRequest) (*model.Keystore, error) {
	key, err := parsePrivateKey(req.PrivateKey)
	if err != nil {
		return nil, err
	}

	password := []byte(req.Password)
	defer clear(password)

	salt, nonce, ciphertext, err := crypto.Seal(key, password)
	if err != nil {
		return nil, model.WrapError(model.KindInternal, fmt.Errorf("failed to encrypt wallet: %w", err))
	}

	return &model.Keystore{
		Network:    keystoreNetwork,
		PublicKey:  key.PublicKey().String(),
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// Import decrypts a keystore blob and returns the keypair it protects.
func (s *Service) Import(req *model.ImportWalletRequest) (*model.WalletResponse, error) {
	salt, err := base64.StdEncoding.DecodeString(req.Keystore.Salt)
	if err != nil {
		return nil, model.WrapError(model.KindDecode, fmt.Errorf("failed to decode salt: %w", err))
	}

	nonce, err := base64.StdEncoding.DecodeString(req.Keystore.Nonce)
	if err != nil {
		return nil, model.WrapError(model.KindDecode, fmt.Errorf("failed to decode nonce: %w", err))
	}

	ciphertext, err := base64.StdEncoding.DecodeString(req.Keystore.CipherText)
	if err != nil {
		return nil, model.WrapError(model.KindDecode, fmt.Errorf("failed to decode ciphertext: %w", err))
	}

	password := []byte(req.Password)
	defer clear(password)

	plaintext, err := crypto.Open(salt, nonce, ciphertext, password)
	if err != nil {
		return nil, model.WrapError(model.KindDecode, fmt.Errorf("failed to decrypt wallet: %w", err))
	}
	defer clear(plaintext)

	if len(plaintext) != 64 {
		return nil, model.WrapError(model.KindDecode, fmt.Errorf("invalid private key length: expected 64 bytes"))
	}

	key := solana.PrivateKey(plaintext)
	return &model.WalletResponse{
		PublicKey:  key.PublicKey().String(),
		PrivateKey: key.String(),
	}, nil
}
