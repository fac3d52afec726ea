// Package cube provides the cubie-level model of a 3x3 Rubik's cube:
// permutations and orientations of the 8 corner and 12 edge pieces,
// the 18 face-turn generators, facelet parsing/serialization, the
// coordinate projections used by the two-phase solver, and the
// solvability checks.
package cube

// Corner labels the 8 corner cubies (and the positions they occupy
// when solved). Names list the faces each corner touches, starting
// with U or D.
type Corner uint8

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge labels the 12 edge cubies. The last four (FR, FL, BL, BR) are
// the equatorial "UD-slice" edges.
type Edge uint8

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// SliceEdge is the first of the four UD-slice edges.
const SliceEdge = FR

// Cube is the cubie-level state. Cp[i] is the corner cubie sitting in
// position i, Co[i] its twist (0..2); Ep/Eo likewise for edges with
// flip in {0,1}. The zero value is NOT solved; use Solved().
type Cube struct {
	Cp [8]Corner
	Co [8]uint8
	Ep [12]Edge
	Eo [12]uint8
}

// Solved returns the identity cube.
func Solved() Cube {
	var c Cube
	for i := range c.Cp {
		c.Cp[i] = Corner(i)
	}
	for i := range c.Ep {
		c.Ep[i] = Edge(i)
	}
	return c
}

// IsSolved reports whether every cubie is home and oriented.
func (c *Cube) IsSolved() bool {
	for i := range c.Cp {
		if c.Cp[i] != Corner(i) || c.Co[i] != 0 {
			return false
		}
	}
	for i := range c.Ep {
		if c.Ep[i] != Edge(i) || c.Eo[i] != 0 {
			return false
		}
	}
	return true
}

// Multiply composes c with m (c = c * m): the state reached by
// performing m's permutation after c's. Move application is
// multiplication by the move's cube.
func (c *Cube) Multiply(m *Cube) {
	var cp [8]Corner
	var co [8]uint8
	for i := 0; i < 8; i++ {
		cp[i] = c.Cp[m.Cp[i]]
		co[i] = (c.Co[m.Cp[i]] + m.Co[i]) % 3
	}
	c.Cp = cp
	c.Co = co

	var ep [12]Edge
	var eo [12]uint8
	for i := 0; i < 12; i++ {
		ep[i] = c.Ep[m.Ep[i]]
		eo[i] = (c.Eo[m.Ep[i]] + m.Eo[i]) & 1
	}
	c.Ep = ep
	c.Eo = eo
}
