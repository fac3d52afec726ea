package cube

import "fmt"

// Verify checks the three group-theoretic reachability invariants:
// corner twist sum divisible by 3, edge flip sum divisible by 2, and
// matching corner/edge permutation parity. Parse guarantees the
// permutations themselves are bijections. Returns nil when the state
// is reachable; all failures wrap ErrUnsolvable.
func (c *Cube) Verify() error {
	twist := 0
	for _, o := range c.Co {
		twist += int(o)
	}
	if twist%3 != 0 {
		return fmt.Errorf("%w: corner twist sum %d not divisible by 3", ErrUnsolvable, twist)
	}

	flip := 0
	for _, o := range c.Eo {
		flip += int(o)
	}
	if flip%2 != 0 {
		return fmt.Errorf("%w: edge flip sum %d is odd", ErrUnsolvable, flip)
	}

	if cornerParity(c.Cp[:]) != edgeParity(c.Ep[:]) {
		return fmt.Errorf("%w: corner and edge permutation parity differ", ErrUnsolvable)
	}
	return nil
}

// Solvable reports whether the state is reachable from solved.
func (c *Cube) Solvable() bool {
	return c.Verify() == nil
}

func cornerParity(p []Corner) int {
	inv := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				inv++
			}
		}
	}
	return inv % 2
}

func edgeParity(p []Edge) int {
	inv := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				inv++
			}
		}
	}
	return inv % 2
}
