package common

import (
	"errors"
	"math"

	"github.com/gagliardetto/solana-go"
)

// TokenDecimals is the assumed precision for SPL transfers. The gateway does
// not query the mint; amounts on /send-spl-token are converted with this
// fixed value regardless of the token's actual decimals.
const TokenDecimals = 9

// LamportsToSol converts lamports to SOL display units.
func LamportsToSol(lamports uint64) float64 {
	return float64(lamports) / float64(solana.LAMPORTS_PER_SOL)
}

// ErrAmountOutOfRange reports a display amount whose smallest-unit value does
// not fit in uint64.
var ErrAmountOutOfRange = errors.New("amount out of range")

// SolToLamports converts a SOL display amount to lamports, rounding to the
// nearest lamport.
func SolToLamports(sol float64) (uint64, error) {
	return scale(sol, float64(solana.LAMPORTS_PER_SOL))
}

// ToBaseUnits converts a display amount to the token's smallest units using
// the given decimal precision, rounding to the nearest unit.
func ToBaseUnits(amount float64, decimals uint8) (uint64, error) {
	return scale(amount, math.Pow10(int(decimals)))
}

// scale rounds amount*factor to the nearest integer. The conversion of a
// float64 outside the uint64 range is unspecified, so the scaled value is
// bounds-checked first.
func scale(amount, factor float64) (uint64, error) {
	scaled := math.Round(amount * factor)
	if math.IsNaN(scaled) || scaled < 0 || scaled >= float64(math.MaxUint64) {
		return 0, ErrAmountOutOfRange
	}
	return uint64(scaled), nil
}

// FromBaseUnits converts smallest units back to a display amount.
func FromBaseUnits(units uint64, decimals uint8) float64 {
	return float64(units) / math.Pow10(int(decimals))
}
