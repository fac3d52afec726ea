package kociemba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"R2", R2},
		{"u", U},
		{"B'", BPrime},
		{" F2 ", F2},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.in)
		require.NoError(t, err, "parsing %q", tc.in)
		assert.Equal(t, tc.want, got, "parsing %q", tc.in)
	}
}

func TestParseMoveRejectsIllegalTokens(t *testing.T) {
	for _, in := range []string{"", "X", "R3", "R2'", "RR", "M", "R''"} {
		_, err := ParseMove(in)
		assert.ErrorIs(t, err, ErrInvalidNotation, "token %q", in)
	}
}

func TestParseMovesSequence(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	require.NoError(t, err)
	assert.Equal(t, SexyMove, moves)
}

func TestParseMovesRejectsBadToken(t *testing.T) {
	_, err := ParseMoves("R U X' U'")
	assert.ErrorIs(t, err, ErrInvalidNotation)
}

func TestFormatMoves(t *testing.T) {
	assert.Equal(t, "R U R' U'", FormatMoves(SexyMove))
	assert.Equal(t, "", FormatMoves(nil))
}

func TestMoveInverseNotation(t *testing.T) {
	assert.Equal(t, RPrime, R.Inverse())
	assert.Equal(t, R, RPrime.Inverse())
	assert.Equal(t, R2, R2.Inverse())
}

func TestMoveConversionRoundTrip(t *testing.T) {
	for _, m := range []Move{R, RPrime, R2, U, UPrime, U2, F, D, L2, BPrime} {
		assert.Equal(t, m, fromCubieMove(toCubieMove(m)))
	}
}
