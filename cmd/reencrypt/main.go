// Re-encrypts an exported keystore file under a new password.
// Usage: go run ./cmd/reencrypt -in wallet.json [-out wallet-new.json]
package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/wizinfantry/SOLANA-WALLET-API/internal/crypto"
	"github.com/wizinfantry/SOLANA-WALLET-API/internal/model"
)

func main() {
	in := flag.String("in", "", "path to keystore file")
	out := flag.String("out", "", "output path (defaults to overwriting -in)")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "missing -in")
		flag.Usage()
		os.Exit(2)
	}
	if *out == "" {
		*out = *in
	}

	if err := run(*in, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in, out string) error {
	data, err := os.ReadFile(filepath.Clean(in))
	if err != nil {
		return fmt.Errorf("failed to read keystore: %w", err)
	}

	var ks model.Keystore
	if err := json.Unmarshal(data, &ks); err != nil {
		return fmt.Errorf("failed to parse keystore: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(ks.Salt)
	if err != nil {
		return fmt.Errorf("failed to decode salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(ks.Nonce)
	if err != nil {
		return fmt.Errorf("failed to decode nonce: %w", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(ks.CipherText)
	if err != nil {
		return fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	oldPassword, err := promptPassword("Enter current password: ")
	if err != nil {
		return err
	}
	defer clear(oldPassword)

	plaintext, err := crypto.Open(salt, nonce, ciphertext, oldPassword)
	if err != nil {
		return fmt.Errorf("failed to decrypt keystore: %w", err)
	}
	defer clear(plaintext)

	newPassword, err := promptPassword("Enter new password: ")
	if err != nil {
		return err
	}
	defer clear(newPassword)
	if len(newPassword) == 0 {
		return errors.New("new password cannot be empty")
	}

	newSalt, newNonce, newCiphertext, err := crypto.Seal(plaintext, newPassword)
	if err != nil {
		return fmt.Errorf("failed to re-encrypt keystore: %w", err)
	}

	ks.Salt = base64.StdEncoding.EncodeToString(newSalt)
	ks.Nonce = base64.StdEncoding.EncodeToString(newNonce)
	ks.CipherText = base64.StdEncoding.EncodeToString(newCiphertext)

	fileData, err := json.MarshalIndent(ks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal keystore: %w", err)
	}

	if err := os.WriteFile(out, fileData, 0600); err != nil {
		return fmt.Errorf("failed to write keystore: %w", err)
	}
	return nil
}

// promptPassword reads a password from the terminal without echoing.
func promptPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return raw, nil
}
