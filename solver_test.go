package kociemba

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/kociemba/internal/cube"
)

// twistedCorner returns a facelet string with a single corner twisted
// in place: a legal sticker arrangement that no move sequence reaches.
func twistedCorner(t *testing.T) string {
	t.Helper()
	c := cube.Solved()
	c.Co[0] = 1
	return c.Facelets(cube.DefaultScheme)
}

func TestValidateSolved(t *testing.T) {
	assert.NoError(t, Validate(SolvedFacelets))
}

func TestValidateMalformed(t *testing.T) {
	assert.ErrorIs(t, Validate("UUU"), ErrMalformedInput)
	assert.ErrorIs(t, Validate(strings.Repeat("U", 54)), ErrInvalidCenters)

	// Correct length, wrong counts.
	bad := "U" + SolvedFacelets[:9] + SolvedFacelets[10:]
	assert.ErrorIs(t, Validate(bad), ErrMalformedInput)
}

func TestValidateTwistedCorner(t *testing.T) {
	assert.ErrorIs(t, Validate(twistedCorner(t)), ErrUnsolvableCube)
}

func TestSolveSolvedReturnsEmpty(t *testing.T) {
	sol, err := Solve(SolvedFacelets)
	require.NoError(t, err)
	assert.Empty(t, sol.Moves)
}

func TestSolveSexyScramble(t *testing.T) {
	state, err := ApplyMoves(SolvedFacelets, SexyMove)
	require.NoError(t, err)
	require.NotEqual(t, SolvedFacelets, state)

	sol, err := Solve(state)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(sol.Moves), 20)

	solved, err := ApplyMoves(state, sol.Moves)
	require.NoError(t, err)
	assert.Equal(t, SolvedFacelets, solved)
}

func TestSolveScrambles(t *testing.T) {
	for i := 0; i < 3; i++ {
		moves, state, err := Scramble(14)
		require.NoError(t, err)
		require.Len(t, moves, 14)
		require.NoError(t, Validate(state))

		sol, err := Solve(state)
		require.NoError(t, err)
		require.LessOrEqual(t, len(sol.Moves), DefaultMaxMoves)

		solved, err := ApplyMoves(state, sol.Moves)
		require.NoError(t, err)
		assert.Equal(t, SolvedFacelets, solved, "solution %s fails scramble %s",
			FormatMoves(sol.Moves), FormatMoves(moves))
	}
}

func TestSolveUnsolvable(t *testing.T) {
	_, err := Solve(twistedCorner(t))
	assert.ErrorIs(t, err, ErrUnsolvableCube)
}

func TestSolveMalformed(t *testing.T) {
	_, err := Solve("not a cube")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, state, err := Scramble(16)
	require.NoError(t, err)
	_, err = Solve(state, WithContext(ctx))
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestSolveMaxMovesExhausted(t *testing.T) {
	state, err := ApplyMoves(SolvedFacelets, []Move{R})
	require.NoError(t, err)
	_, err = Solve(state, WithMaxMoves(0))
	assert.ErrorIs(t, err, ErrSearchExhausted)
}

func TestApplyMovesSimulates(t *testing.T) {
	state, err := ApplyMoves(SolvedFacelets, []Move{R})
	require.NoError(t, err)
	assert.NotEqual(t, SolvedFacelets, state, "a real R turn must change the state")

	back, err := ApplyMoves(state, []Move{RPrime})
	require.NoError(t, err)
	assert.Equal(t, SolvedFacelets, back)

	four, err := ApplyMoves(SolvedFacelets, []Move{R, R, R, R})
	require.NoError(t, err)
	assert.Equal(t, SolvedFacelets, four)
}

func TestApplyMovesMatchesPhysicalCube(t *testing.T) {
	// A B turn against the hand-derived sticker layout: U top row from
	// the R face, R right column from D, L left column from U, D
	// bottom row from L.
	state, err := ApplyMoves(SolvedFacelets, []Move{B})
	require.NoError(t, err)
	assert.Equal(t, "RRRUUUUUURRDRRDRRDFFFFFFFFFDDDDDDLLLULLULLULLBBBBBBBBB", state)

	back, err := ApplyMoves(state, []Move{BPrime})
	require.NoError(t, err)
	assert.Equal(t, SolvedFacelets, back)
}

func TestApplyMovesPreservesAlphabet(t *testing.T) {
	mapping := map[byte]byte{'U': 'W', 'R': 'R', 'F': 'G', 'D': 'Y', 'L': 'O', 'B': 'B'}
	var colored strings.Builder
	for i := 0; i < 54; i++ {
		colored.WriteByte(mapping[SolvedFacelets[i]])
	}

	state, err := ApplyMoves(colored.String(), SexyMove)
	require.NoError(t, err)
	for i := 0; i < len(state); i++ {
		assert.Contains(t, "WRGYOB", string(state[i]))
	}
}

func TestScrambleProperties(t *testing.T) {
	moves, state, err := Scramble(20)
	require.NoError(t, err)
	require.Len(t, moves, 20)
	assert.NotEqual(t, SolvedFacelets, state)
	assert.NoError(t, Validate(state))

	for i := 1; i < len(moves); i++ {
		assert.NotEqual(t, moves[i-1].Face, moves[i].Face, "consecutive turns of %s", moves[i].Face)
	}

	// The scramble state is exactly what simulating the moves yields.
	simulated, err := ApplyMoves(SolvedFacelets, moves)
	require.NoError(t, err)
	assert.Equal(t, simulated, state)
}
