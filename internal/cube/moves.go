package cube

// Move indexes one of the 18 face-turn generators: face*3 + amount,
// with faces in URFDLB order and amount 0 = clockwise quarter,
// 1 = half turn, 2 = counter-clockwise quarter.
type Move uint8

const (
	U1 Move = iota
	U2
	U3
	R1
	R2
	R3
	F1
	F2
	F3
	D1
	D2
	D3
	L1
	L2
	L3
	B1
	B2
	B3
	NumMoves = 18
)

// Phase2Moves are the generators that preserve the G1 subgroup:
// any U or D turn, half turns elsewhere.
var Phase2Moves = [10]Move{U1, U2, U3, D1, D2, D3, R2, L2, F2, B2}

// Face returns the face index (0..5, URFDLB order).
func (m Move) Face() int { return int(m) / 3 }

// Axis returns the turn axis (0 = U/D, 1 = R/L, 2 = F/B).
func (m Move) Axis() int { return (int(m) / 3) % 3 }

// Inverse returns the move undoing m.
func (m Move) Inverse() Move {
	face := int(m) / 3 * 3
	return Move(face + (3-int(m)%3)%3)
}

// IsPhase2 reports whether m preserves G1 membership.
func (m Move) IsPhase2() bool {
	return m.Axis() == 0 || int(m)%3 == 1
}

func (m Move) String() string {
	faces := "URFDLB"
	suffix := [3]string{"", "2", "'"}
	return string(faces[m.Face()]) + suffix[int(m)%3]
}

// Clockwise quarter turns as cubie cubes. Corner/edge arrays give,
// for each position, the cubie that moves into it; orientation
// arrays give the twist/flip added to that cubie.
var baseMoves = [6]Cube{
	// U
	{
		Cp: [8]Corner{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		Ep: [12]Edge{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
	},
	// R
	{
		Cp: [8]Corner{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		Co: [8]uint8{2, 0, 0, 1, 1, 0, 0, 2},
		Ep: [12]Edge{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
	},
	// F
	{
		Cp: [8]Corner{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		Co: [8]uint8{1, 2, 0, 0, 2, 1, 0, 0},
		Ep: [12]Edge{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		Eo: [12]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	// D
	{
		Cp: [8]Corner{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		Ep: [12]Edge{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
	},
	// L
	{
		Cp: [8]Corner{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		Co: [8]uint8{0, 1, 2, 0, 0, 2, 1, 0},
		Ep: [12]Edge{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
	},
	// B
	{
		Cp: [8]Corner{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		Co: [8]uint8{0, 0, 1, 2, 0, 0, 2, 1},
		Ep: [12]Edge{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		Eo: [12]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// MoveCubes holds all 18 generators; half and counter-clockwise turns
// are composed from the quarter turns.
var MoveCubes [NumMoves]Cube

func init() {
	for f := 0; f < 6; f++ {
		q := baseMoves[f]
		MoveCubes[f*3] = q
		h := q
		h.Multiply(&q)
		MoveCubes[f*3+1] = h
		ccw := h
		ccw.Multiply(&q)
		MoveCubes[f*3+2] = ccw
	}
}

// Apply performs one generator move on c.
func (c *Cube) Apply(m Move) {
	c.Multiply(&MoveCubes[m])
}

// ApplyAll performs a move sequence left to right.
func (c *Cube) ApplyAll(moves []Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}
