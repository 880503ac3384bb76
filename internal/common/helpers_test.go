package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLamportsToSol(t *testing.T) {
	tests := []struct {
		name     string
		lamports uint64
		expected float64
	}{
		{"zero", 0, 0},
		{"one-lamport", 1, 0.000000001},
		{"one-sol", 1_000_000_000, 1},
		{"two-and-a-half-sol", 2_500_000_000, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, LamportsToSol(tt.lamports))
		})
	}
}

func TestSolToLamports(t *testing.T) {
	tests := []struct {
		name     string
		sol      float64
		expected uint64
	}{
		{"zero", 0, 0},
		{"one-sol", 1, 1_000_000_000},
		{"fractional", 1.5, 1_500_000_000},
		{"smallest-unit", 0.000000001, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lamports, err := SolToLamports(tt.sol)
			require.NoError(t, err)
			require.Equal(t, tt.expected, lamports)
		})
	}
}

func TestSolToLamportsOutOfRange(t *testing.T) {
	for _, sol := range []float64{1e30, -1, math.NaN(), math.Inf(1)} {
		_, err := SolToLamports(sol)
		require.ErrorIs(t, err, ErrAmountOutOfRange, "sol=%v", sol)
	}
}

func TestBaseUnitConversion(t *testing.T) {
	units, err := ToBaseUnits(0.25, TokenDecimals)
	require.NoError(t, err)
	require.Equal(t, uint64(250_000_000), units)

	units, err = ToBaseUnits(1, 6)
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), units)

	_, err = ToBaseUnits(1e30, TokenDecimals)
	require.ErrorIs(t, err, ErrAmountOutOfRange)

	require.Equal(t, 0.25, FromBaseUnits(250_000_000, TokenDecimals))
	require.Equal(t, 1.0, FromBaseUnits(1_000_000, 6))
}

func TestSolRoundTrip(t *testing.T) {
	for _, sol := range []float64{0.000000001, 0.1, 1, 2.5, 1234.567891234} {
		lamports, err := SolToLamports(sol)
		require.NoError(t, err)
		require.Equal(t, sol, LamportsToSol(lamports))
	}
}
