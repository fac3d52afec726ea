package cube

// Coordinate ranges.
const (
	NumTwist      = 2187  // 3^7 corner orientations
	NumFlip       = 2048  // 2^11 edge orientations
	NumSlice      = 495   // C(12,4) UD-slice edge locations
	NumCornerPerm = 40320 // 8! corner permutations
	NumUDEdgePerm = 40320 // 8! permutations of the U/D-layer edges
	NumSlicePerm  = 24    // 4! permutations within the slice
)

var factorial = [13]int{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800, 39916800, 479001600}

// cnk is the binomial coefficient C(n, k).
func cnk(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	s := 1
	for i := 0; i < k; i++ {
		s = s * (n - i) / (i + 1)
	}
	return s
}

// Twist encodes the corner orientations in [0, 3^7). The eighth
// corner is determined by the orientation-sum invariant.
func (c *Cube) Twist() int {
	t := 0
	for i := 0; i < 7; i++ {
		t = t*3 + int(c.Co[i])
	}
	return t
}

// SetTwist is the inverse of Twist.
func (c *Cube) SetTwist(twist int) {
	sum := 0
	for i := 6; i >= 0; i-- {
		c.Co[i] = uint8(twist % 3)
		sum += twist % 3
		twist /= 3
	}
	c.Co[7] = uint8((3 - sum%3) % 3)
}

// Flip encodes the edge orientations in [0, 2^11).
func (c *Cube) Flip() int {
	f := 0
	for i := 0; i < 11; i++ {
		f = f*2 + int(c.Eo[i])
	}
	return f
}

// SetFlip is the inverse of Flip.
func (c *Cube) SetFlip(flip int) {
	sum := 0
	for i := 10; i >= 0; i-- {
		c.Eo[i] = uint8(flip & 1)
		sum += flip & 1
		flip >>= 1
	}
	c.Eo[11] = uint8(sum & 1)
}

// Slice ranks the locations of the four UD-slice edges via the
// combinatorial number system; 0 means all four sit in the slice.
func (c *Cube) Slice() int {
	s, k := 0, 3
	for i := 11; i >= 0 && k >= 0; i-- {
		if c.Ep[i] >= SliceEdge {
			k--
		} else {
			s += cnk(i, k)
		}
	}
	return s
}

// SetSlice places the four slice edges at the locations encoded by
// s, filling the remaining positions with the non-slice edges in
// order. Orientations are untouched.
func (c *Cube) SetSlice(s int) {
	k := 3
	slice := SliceEdge
	var other Edge
	pos := make([]bool, 12)
	for i := 11; i >= 0; i-- {
		if k >= 0 && s >= cnk(i, k) {
			s -= cnk(i, k)
		} else if k >= 0 {
			pos[i] = true
			k--
		}
	}
	for i := 0; i < 12; i++ {
		if pos[i] {
			c.Ep[i] = slice
			slice++
		} else {
			c.Ep[i] = other
			other++
		}
	}
}

// permRank returns the Lehmer-code rank of p over its own element
// set; the identity ranks 0.
func permRank(p []uint8) int {
	n := len(p)
	r := 0
	for i := 0; i < n-1; i++ {
		smaller := 0
		for j := i + 1; j < n; j++ {
			if p[j] < p[i] {
				smaller++
			}
		}
		r += smaller * factorial[n-1-i]
	}
	return r
}

// permUnrank writes the rank-r permutation of {0..n-1} into p.
func permUnrank(r int, p []uint8) {
	n := len(p)
	elems := make([]uint8, n)
	for i := range elems {
		elems[i] = uint8(i)
	}
	for i := 0; i < n; i++ {
		f := factorial[n-1-i]
		d := r / f
		r %= f
		p[i] = elems[d]
		elems = append(elems[:d], elems[d+1:]...)
	}
}

// CornerPerm ranks the corner permutation in [0, 8!).
func (c *Cube) CornerPerm() int {
	var p [8]uint8
	for i, v := range c.Cp {
		p[i] = uint8(v)
	}
	return permRank(p[:])
}

// SetCornerPerm is the inverse of CornerPerm.
func (c *Cube) SetCornerPerm(r int) {
	var p [8]uint8
	permUnrank(r, p[:])
	for i, v := range p {
		c.Cp[i] = Corner(v)
	}
}

// UDEdgePerm ranks the permutation of the eight U/D-layer edges
// across positions 0..7. Meaningful only inside G1, where the slice
// edges cannot leave the slice.
func (c *Cube) UDEdgePerm() int {
	var p [8]uint8
	for i := 0; i < 8; i++ {
		p[i] = uint8(c.Ep[i])
	}
	return permRank(p[:])
}

// SetUDEdgePerm is the inverse of UDEdgePerm; slice positions are
// filled with the identity.
func (c *Cube) SetUDEdgePerm(r int) {
	var p [8]uint8
	permUnrank(r, p[:])
	for i := 0; i < 8; i++ {
		c.Ep[i] = Edge(p[i])
	}
	for i := 8; i < 12; i++ {
		c.Ep[i] = Edge(i)
	}
}

// SlicePerm ranks the arrangement of the four slice edges within
// positions 8..11. Meaningful only inside G1.
func (c *Cube) SlicePerm() int {
	var p [4]uint8
	for i := 0; i < 4; i++ {
		p[i] = uint8(c.Ep[8+i] - SliceEdge)
	}
	return permRank(p[:])
}

// SetSlicePerm is the inverse of SlicePerm; U/D positions are filled
// with the identity.
func (c *Cube) SetSlicePerm(r int) {
	var p [4]uint8
	permUnrank(r, p[:])
	for i := 0; i < 8; i++ {
		c.Ep[i] = Edge(i)
	}
	for i := 0; i < 4; i++ {
		c.Ep[8+i] = Edge(p[i]) + SliceEdge
	}
}
