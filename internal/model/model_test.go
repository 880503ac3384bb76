package model

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type validator interface {
	Validate() error
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		req         validator
		expectErr   bool
		errContains string
	}{
		{"recover-valid", &RecoverWalletRequest{PrivateKey: "abc"}, false, ""},
		{"recover-missing", &RecoverWalletRequest{}, true, "privateKey"},

		{"sol-balance-valid", &SolBalanceRequest{PublicKey: "abc"}, false, ""},
		{"sol-balance-missing", &SolBalanceRequest{}, true, "publicKey"},

		{"spl-balance-valid", &SplBalanceRequest{PublicKey: "a", TokenAddress: "b"}, false, ""},
		{"spl-balance-missing-owner", &SplBalanceRequest{TokenAddress: "b"}, true, "publicKey"},
		{"spl-balance-missing-mint", &SplBalanceRequest{PublicKey: "a"}, true, "tokenAddress"},
		{"spl-balance-missing-both", &SplBalanceRequest{}, true, "publicKey, tokenAddress"},

		{"send-sol-valid", &SendSolRequest{FromPrivateKey: "a", ToPublicKey: "b", Amount: 1}, false, ""},
		{"send-sol-missing-sender", &SendSolRequest{ToPublicKey: "b", Amount: 1}, true, "fromPrivateKey"},
		{"send-sol-missing-recipient", &SendSolRequest{FromPrivateKey: "a", Amount: 1}, true, "toPublicKey"},
		{"send-sol-zero-amount", &SendSolRequest{FromPrivateKey: "a", ToPublicKey: "b"}, true, "amount"},
		{"send-sol-negative-amount", &SendSolRequest{FromPrivateKey: "a", ToPublicKey: "b", Amount: -0.5}, true, "amount"},

		{"send-spl-valid", &SendSplRequest{FromPrivateKey: "a", ToPublicKey: "b", TokenAddress: "c", Amount: 1}, false, ""},
		{"send-spl-missing-mint", &SendSplRequest{FromPrivateKey: "a", ToPublicKey: "b", Amount: 1}, true, "tokenAddress"},
		{"send-spl-zero-amount", &SendSplRequest{FromPrivateKey: "a", ToPublicKey: "b", TokenAddress: "c"}, true, "amount"},

		{"export-valid", &ExportWalletRequest{PrivateKey: "a", Password: "p"}, false, ""},
		{"export-missing-password", &ExportWalletRequest{PrivateKey: "a"}, true, "password"},

		{"import-valid", &ImportWalletRequest{Keystore: &Keystore{}, Password: "p"}, false, ""},
		{"import-missing-keystore", &ImportWalletRequest{Password: "p"}, true, "keystore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !tt.expectErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestErrorKinds(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name           string
		err            error
		expectedKind   Kind
		expectedStatus int
	}{
		{"validation", WrapError(KindValidation, base), KindValidation, http.StatusBadRequest},
		{"decode", WrapError(KindDecode, base), KindDecode, http.StatusInternalServerError},
		{"network", WrapError(KindNetwork, base), KindNetwork, http.StatusInternalServerError},
		{"confirmation", WrapError(KindConfirmation, base), KindConfirmation, http.StatusInternalServerError},
		{"untagged", base, KindInternal, http.StatusInternalServerError},
		{"wrapped-tagged", fmt.Errorf("outer: %w", WrapError(KindNetwork, base)), KindNetwork, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expectedKind, KindOf(tt.err))
			require.Equal(t, tt.expectedStatus, HTTPStatus(tt.err))
		})
	}
}

func TestWrapErrorNil(t *testing.T) {
	require.NoError(t, WrapError(KindNetwork, nil))
}

func TestErrorUnwrap(t *testing.T) {
	base := errors.New("boom")
	err := WrapError(KindDecode, base)
	require.ErrorIs(t, err, base)
	require.Equal(t, "boom", err.Error())
}
