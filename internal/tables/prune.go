package tables

import "github.com/SeamusWaldron/kociemba/internal/cube"

// prunePhase1 runs a breadth-first traversal of the combined
// (orientation coordinate x slice location) space under all 18
// generators, starting from the solved pair. Every coordinate space
// is finite and every generator invertible, so the sweep reaches a
// fixed point with all entries assigned.
func prunePhase1(oriMove, sliceMove [][cube.NumMoves]uint16) []int8 {
	n := len(oriMove) * cube.NumSlice
	dist := make([]int8, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[0] = 0

	for depth, filled := int8(0), 1; filled < n; depth++ {
		for i := 0; i < n; i++ {
			if dist[i] != depth {
				continue
			}
			ori, sl := i/cube.NumSlice, i%cube.NumSlice
			for m := 0; m < cube.NumMoves; m++ {
				j := int(oriMove[ori][m])*cube.NumSlice + int(sliceMove[sl][m])
				if dist[j] < 0 {
					dist[j] = depth + 1
					filled++
				}
			}
		}
	}
	return dist
}

// prunePhase2 does the same for (corner permutation x slice
// permutation) under the G1-preserving move set.
func prunePhase2(cornerMove [][cube.NumMoves]uint16, slicePermMove [][10]uint8) []int8 {
	n := cube.NumCornerPerm * cube.NumSlicePerm
	dist := make([]int8, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[0] = 0

	for depth, filled := int8(0), 1; filled < n; depth++ {
		for i := 0; i < n; i++ {
			if dist[i] != depth {
				continue
			}
			cp, sp := i/cube.NumSlicePerm, i%cube.NumSlicePerm
			for k, m := range cube.Phase2Moves {
				j := int(cornerMove[cp][m])*cube.NumSlicePerm + int(slicePermMove[sp][k])
				if dist[j] < 0 {
					dist[j] = depth + 1
					filled++
				}
			}
		}
	}
	return dist
}

// prunePhase2Edges covers (U/D edge permutation x slice permutation);
// both tables here are indexed by phase-2 move position.
func prunePhase2Edges(udEdgeMove [][10]uint16, slicePermMove [][10]uint8) []int8 {
	n := cube.NumUDEdgePerm * cube.NumSlicePerm
	dist := make([]int8, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[0] = 0

	for depth, filled := int8(0), 1; filled < n; depth++ {
		for i := 0; i < n; i++ {
			if dist[i] != depth {
				continue
			}
			ep, sp := i/cube.NumSlicePerm, i%cube.NumSlicePerm
			for k := range cube.Phase2Moves {
				j := int(udEdgeMove[ep][k])*cube.NumSlicePerm + int(slicePermMove[sp][k])
				if dist[j] < 0 {
					dist[j] = depth + 1
					filled++
				}
			}
		}
	}
	return dist
}
