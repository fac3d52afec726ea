package cube

import "errors"

// Sentinel errors for facelet parsing and solvability.
var (
	ErrMalformedInput = errors.New("kociemba: facelet string must be 54 stickers, 9 per color")
	ErrInvalidCenters = errors.New("kociemba: the six face centers must have distinct colors")
	ErrUnsolvable     = errors.New("kociemba: cube state is not reachable by legal moves")
)

// Scheme maps face indices (URFDLB order) to sticker symbols. A parse
// returns the scheme read off the centers so serialization can emit
// the caller's own alphabet.
type Scheme [6]byte

// DefaultScheme uses the face letters themselves as colors.
var DefaultScheme = Scheme{'U', 'R', 'F', 'D', 'L', 'B'}

// SolvedFacelets is the identity state in the default scheme.
const SolvedFacelets = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// Facelet index layout: U = 0..8, R = 9..17, F = 18..26, D = 27..35,
// L = 36..44, B = 45..53, row-major per face with the center at +4.

// cornerFacelet[c] lists the three sticker indices of corner position
// c, starting with the U/D sticker and continuing clockwise around
// the corner.
var cornerFacelet = [8][3]int{
	{8, 9, 20},   // URF
	{6, 18, 38},  // UFL
	{0, 36, 47},  // ULB
	{2, 45, 11},  // UBR
	{29, 26, 15}, // DFR
	{27, 44, 24}, // DLF
	{33, 53, 42}, // DBL
	{35, 17, 51}, // DRB
}

// cornerColor[c] lists the face of each of those stickers when solved.
var cornerColor = [8][3]int{
	{0, 1, 2}, {0, 2, 4}, {0, 4, 5}, {0, 5, 1},
	{3, 2, 1}, {3, 4, 2}, {3, 5, 4}, {3, 1, 5},
}

// edgeFacelet[e] lists the two sticker indices of edge position e.
var edgeFacelet = [12][2]int{
	{5, 10},  // UR
	{7, 19},  // UF
	{3, 37},  // UL
	{1, 46},  // UB
	{32, 16}, // DR
	{28, 25}, // DF
	{30, 43}, // DL
	{34, 52}, // DB
	{23, 12}, // FR
	{21, 41}, // FL
	{50, 39}, // BL
	{48, 14}, // BR
}

// edgeColor[e] lists the face of each edge sticker when solved.
var edgeColor = [12][2]int{
	{0, 1}, {0, 2}, {0, 4}, {0, 5},
	{3, 1}, {3, 2}, {3, 4}, {3, 5},
	{2, 1}, {2, 4}, {5, 4}, {5, 1},
}

var centerIndex = [6]int{4, 13, 22, 31, 40, 49}

// Parse builds a cubie state from a 54-sticker string. The sticker
// alphabet is arbitrary: the six center stickers define the
// color-to-face mapping, which is returned as the Scheme. Errors:
// ErrMalformedInput for bad length or color counts, ErrInvalidCenters
// for ambiguous centers, ErrUnsolvable when the stickers form no
// legal arrangement of cubies.
func Parse(facelets string) (Cube, Scheme, error) {
	var c Cube
	var scheme Scheme
	if len(facelets) != 54 {
		return c, scheme, ErrMalformedInput
	}

	for i, idx := range centerIndex {
		scheme[i] = facelets[idx]
		for j := 0; j < i; j++ {
			if scheme[j] == scheme[i] {
				return c, scheme, ErrInvalidCenters
			}
		}
	}

	// Map stickers onto faces via the centers and check counts.
	var faces [54]int
	var count [6]int
	for i := 0; i < 54; i++ {
		f := -1
		for j := 0; j < 6; j++ {
			if facelets[i] == scheme[j] {
				f = j
				break
			}
		}
		if f < 0 {
			return c, scheme, ErrMalformedInput
		}
		faces[i] = f
		count[f]++
	}
	for _, n := range count {
		if n != 9 {
			return c, scheme, ErrMalformedInput
		}
	}

	var cornerSeen [8]bool
	for i := 0; i < 8; i++ {
		found := false
		for j := 0; j < 8 && !found; j++ {
			for ori := 0; ori < 3; ori++ {
				if faces[cornerFacelet[i][ori]] == cornerColor[j][0] &&
					faces[cornerFacelet[i][(1+ori)%3]] == cornerColor[j][1] &&
					faces[cornerFacelet[i][(2+ori)%3]] == cornerColor[j][2] {
					c.Cp[i] = Corner(j)
					c.Co[i] = uint8(ori)
					found = true
					break
				}
			}
		}
		if !found || cornerSeen[c.Cp[i]] {
			return c, scheme, ErrUnsolvable
		}
		cornerSeen[c.Cp[i]] = true
	}

	var edgeSeen [12]bool
	for i := 0; i < 12; i++ {
		found := false
		for j := 0; j < 12 && !found; j++ {
			for ori := 0; ori < 2; ori++ {
				if faces[edgeFacelet[i][ori]] == edgeColor[j][0] &&
					faces[edgeFacelet[i][1-ori]] == edgeColor[j][1] {
					c.Ep[i] = Edge(j)
					c.Eo[i] = uint8(ori)
					found = true
					break
				}
			}
		}
		if !found || edgeSeen[c.Ep[i]] {
			return c, scheme, ErrUnsolvable
		}
		edgeSeen[c.Ep[i]] = true
	}

	return c, scheme, nil
}

// Facelets serializes the cubie state back into a 54-sticker string
// using the given scheme. It is the exact inverse of Parse.
func (c *Cube) Facelets(scheme Scheme) string {
	var out [54]byte
	for i, idx := range centerIndex {
		out[idx] = scheme[i]
	}
	for i := 0; i < 8; i++ {
		j, ori := c.Cp[i], int(c.Co[i])
		for n := 0; n < 3; n++ {
			out[cornerFacelet[i][(n+ori)%3]] = scheme[cornerColor[j][n]]
		}
	}
	for i := 0; i < 12; i++ {
		j, ori := c.Ep[i], int(c.Eo[i])
		for n := 0; n < 2; n++ {
			out[edgeFacelet[i][(n+ori)%2]] = scheme[edgeColor[j][n]]
		}
	}
	return string(out[:])
}
