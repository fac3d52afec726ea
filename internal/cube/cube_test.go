package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolvedIsSolved(t *testing.T) {
	c := Solved()
	if !c.IsSolved() {
		t.Error("Solved() should be solved")
	}
}

func TestQuarterTurnOrderFour(t *testing.T) {
	for m := Move(0); m < NumMoves; m += 3 {
		c := Solved()
		for i := 0; i < 4; i++ {
			c.Apply(m)
		}
		if !c.IsSolved() {
			t.Errorf("%v applied 4x should return to solved", m)
		}
	}
}

func TestHalfTurnOrderTwo(t *testing.T) {
	for m := Move(1); m < NumMoves; m += 3 {
		c := Solved()
		c.Apply(m)
		c.Apply(m)
		if !c.IsSolved() {
			t.Errorf("%v applied 2x should return to solved", m)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	scrambled := Solved()
	scrambled.ApplyAll([]Move{R1, U1, F3, D2, B1, L3})
	for m := Move(0); m < NumMoves; m++ {
		c := scrambled
		c.Apply(m)
		c.Apply(m.Inverse())
		if c != scrambled {
			t.Errorf("%v then %v should be the identity", m, m.Inverse())
		}
	}
}

func TestSexyMoveSixTimes(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := Solved()
	for i := 0; i < 6; i++ {
		c.ApplyAll([]Move{R1, U1, R3, U3})
	}
	if !c.IsSolved() {
		t.Error("sexy move x 6 should return to solved")
	}
}

func TestQuarterTurnFacelets(t *testing.T) {
	// Hand-derived sticker layouts after one clockwise turn of each
	// face, pinning the move tables to the physical cube rather than
	// to their own inverses.
	want := map[Move]string{
		U1: "UUUUUUUUUBBBRRRRRRRRRFFFFFFDDDDDDDDDFFFLLLLLLLLLBBBBBB",
		R1: "UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB",
		F1: "UUUUUULLLURRURRURRFFFFFFFFFRRRDDDDDDLLDLLDLLDBBBBBBBBB",
		D1: "UUUUUUUUURRRRRRFFFFFFFFFLLLDDDDDDDDDLLLLLLBBBBBBBBBRRR",
		L1: "BUUBUUBUURRRRRRRRRUFFUFFUFFFDDFDDFDDLLLLLLLLLBBDBBDBBD",
		B1: "RRRUUUUUURRDRRDRRDFFFFFFFFFDDDDDDLLLULLULLULLBBBBBBBBB",
	}
	for m, s := range want {
		c := Solved()
		c.Apply(m)
		assert.Equal(t, s, c.Facelets(DefaultScheme), "%v from solved", m)
	}
}

func TestSolvedFaceletsSerialization(t *testing.T) {
	c := Solved()
	assert.Equal(t, SolvedFacelets, c.Facelets(DefaultScheme))
}

func TestMoveStrings(t *testing.T) {
	assert.Equal(t, "U", U1.String())
	assert.Equal(t, "U2", U2.String())
	assert.Equal(t, "U'", U3.String())
	assert.Equal(t, "B'", B3.String())
}

func TestParseSolved(t *testing.T) {
	c, scheme, err := Parse(SolvedFacelets)
	require.NoError(t, err)
	assert.True(t, c.IsSolved())
	assert.Equal(t, DefaultScheme, scheme)
}

func TestFaceletRoundTrip(t *testing.T) {
	c := Solved()
	c.ApplyAll([]Move{R1, U2, F3, L1, D1, B2, R3, U1, F2, D3})
	s := c.Facelets(DefaultScheme)

	parsed, scheme, err := Parse(s)
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
	assert.Equal(t, s, parsed.Facelets(scheme))
}

func TestParseCustomColorScheme(t *testing.T) {
	// Same cube described with WCA-style colors instead of face letters.
	colored := ""
	mapping := map[byte]byte{'U': 'W', 'R': 'R', 'F': 'G', 'D': 'Y', 'L': 'O', 'B': 'B'}
	for i := 0; i < 54; i++ {
		colored += string(mapping[SolvedFacelets[i]])
	}
	c, scheme, err := Parse(colored)
	require.NoError(t, err)
	assert.True(t, c.IsSolved())
	assert.Equal(t, colored, c.Facelets(scheme))
}

func TestParseRejectsBadInput(t *testing.T) {
	_, _, err := Parse("UUU")
	assert.ErrorIs(t, err, ErrMalformedInput)

	// 54 chars but 10 U stickers and 8 R stickers.
	bad := "U" + SolvedFacelets[:9] + SolvedFacelets[10:]
	_, _, err = Parse(bad)
	assert.ErrorIs(t, err, ErrMalformedInput)

	// Duplicate centers: the R center overwritten with the F color, so
	// two faces claim the same color. Centers are checked before
	// sticker counts.
	dup := []byte(SolvedFacelets)
	dup[13] = 'F'
	_, _, err = Parse(string(dup))
	assert.ErrorIs(t, err, ErrInvalidCenters)
}

func TestTwistFlipRoundTrip(t *testing.T) {
	for _, twist := range []int{0, 1, 1000, NumTwist - 1} {
		c := Solved()
		c.SetTwist(twist)
		assert.Equal(t, twist, c.Twist())
	}
	for _, flip := range []int{0, 1, 777, NumFlip - 1} {
		c := Solved()
		c.SetFlip(flip)
		assert.Equal(t, flip, c.Flip())
	}
}

func TestSliceRoundTrip(t *testing.T) {
	for s := 0; s < NumSlice; s++ {
		c := Solved()
		c.SetSlice(s)
		require.Equal(t, s, c.Slice(), "slice coordinate %d", s)
	}
}

func TestSliceSolvedIsZero(t *testing.T) {
	c := Solved()
	assert.Equal(t, 0, c.Slice())
}

func TestPermCoordinateRoundTrip(t *testing.T) {
	for _, r := range []int{0, 1, 5039, 20000, NumCornerPerm - 1} {
		c := Solved()
		c.SetCornerPerm(r)
		require.Equal(t, r, c.CornerPerm())

		c = Solved()
		c.SetUDEdgePerm(r)
		require.Equal(t, r, c.UDEdgePerm())
	}
	for r := 0; r < NumSlicePerm; r++ {
		c := Solved()
		c.SetSlicePerm(r)
		require.Equal(t, r, c.SlicePerm())
	}
}

func TestEncodingIsPure(t *testing.T) {
	c := Solved()
	c.ApplyAll([]Move{F1, R2, U3, B1, L2, D1})
	before := c
	_ = c.Twist()
	_ = c.Flip()
	_ = c.Slice()
	_ = c.CornerPerm()
	assert.Equal(t, before, c, "encoders must not mutate the state")
}

func TestVerifyAcceptsReachableStates(t *testing.T) {
	c := Solved()
	assert.NoError(t, c.Verify())
	c.ApplyAll([]Move{R1, U1, R3, U3, F2, B1, L3, D2})
	assert.NoError(t, c.Verify())
}

func TestVerifyRejectsTwistedCorner(t *testing.T) {
	c := Solved()
	c.Co[0] = 1
	assert.ErrorIs(t, c.Verify(), ErrUnsolvable)
}

func TestVerifyRejectsFlippedEdge(t *testing.T) {
	c := Solved()
	c.Eo[0] = 1
	assert.ErrorIs(t, c.Verify(), ErrUnsolvable)
}

func TestVerifyRejectsSwappedPair(t *testing.T) {
	// Two corners exchanged with edges untouched breaks joint parity.
	c := Solved()
	c.Cp[0], c.Cp[1] = c.Cp[1], c.Cp[0]
	assert.ErrorIs(t, c.Verify(), ErrUnsolvable)
}

func TestVerifyRunsOnParsedStates(t *testing.T) {
	// A single twisted corner survives parsing (it is a legal sticker
	// arrangement) but must fail verification.
	c := Solved()
	c.Co[0] = 1
	c.Co[1] = 2
	s := c.Facelets(DefaultScheme)

	parsed, _, err := Parse(s)
	require.NoError(t, err)
	assert.NoError(t, parsed.Verify())

	c.Co[1] = 0 // now the twist sum is 1
	s = c.Facelets(DefaultScheme)
	parsed, _, err = Parse(s)
	require.NoError(t, err)
	assert.ErrorIs(t, parsed.Verify(), ErrUnsolvable)
}
