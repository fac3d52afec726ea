// Package tables holds the coordinate move tables and the BFS pruning
// tables for the two-phase solver. Everything here is built exactly
// once per process, behind a sync.Once barrier, and is read-only
// afterwards; concurrent solves share the tables without locking.
package tables

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/SeamusWaldron/kociemba/internal/cube"
)

// Tables bundles every precomputed lookup the search consults.
//
// Move tables map (coordinate, move) -> coordinate. Phase-2 tables
// for the edge coordinates are indexed by position in
// cube.Phase2Moves, since those coordinates are only well defined
// inside G1. Pruning tables store exact BFS distances to the solved
// coordinate pair; values fit comfortably in an int8.
type Tables struct {
	TwistMove  [][cube.NumMoves]uint16 // NumTwist rows
	FlipMove   [][cube.NumMoves]uint16 // NumFlip rows
	SliceMove  [][cube.NumMoves]uint16 // NumSlice rows
	CornerMove [][cube.NumMoves]uint16 // NumCornerPerm rows

	UDEdgeMove    [][10]uint16 // NumUDEdgePerm rows, phase-2 moves only
	SlicePermMove [][10]uint8  // NumSlicePerm rows, phase-2 moves only

	// Phase 1: distance to flip==0/twist==0 jointly with slice==0.
	FlipSlicePrune  []int8 // flip*NumSlice + slice
	TwistSlicePrune []int8 // twist*NumSlice + slice

	// Phase 2: distance to solved permutations under G1 moves.
	CornerSlicePrune []int8 // cornerPerm*NumSlicePerm + slicePerm
	UDEdgeSlicePrune []int8 // udEdgePerm*NumSlicePerm + slicePerm
}

var (
	buildOnce sync.Once
	shared    *Tables
)

// Get returns the process-wide tables, building them on first use.
// The build is internally parallel but no caller observes a partial
// table: Get does not return until construction is complete.
func Get() *Tables {
	buildOnce.Do(func() {
		start := time.Now()
		shared = build()
		log.Debug().
			Dur("elapsed", time.Since(start)).
			Msg("pruning tables built")
	})
	return shared
}

func build() *Tables {
	t := &Tables{}

	// Move tables are independent of one another.
	var g errgroup.Group
	g.Go(func() error { t.buildTwistMove(); return nil })
	g.Go(func() error { t.buildFlipMove(); return nil })
	g.Go(func() error { t.buildSliceMove(); return nil })
	g.Go(func() error { t.buildCornerMove(); return nil })
	g.Go(func() error { t.buildUDEdgeMove(); return nil })
	g.Go(func() error { t.buildSlicePermMove(); return nil })
	g.Wait()

	// Pruning tables depend on the move tables, but not on each other.
	g = errgroup.Group{}
	g.Go(func() error {
		t.FlipSlicePrune = prunePhase1(t.FlipMove, t.SliceMove)
		return nil
	})
	g.Go(func() error {
		t.TwistSlicePrune = prunePhase1(t.TwistMove, t.SliceMove)
		return nil
	})
	g.Go(func() error {
		t.CornerSlicePrune = prunePhase2(t.CornerMove, t.SlicePermMove)
		return nil
	})
	g.Go(func() error {
		t.UDEdgeSlicePrune = prunePhase2Edges(t.UDEdgeMove, t.SlicePermMove)
		return nil
	})
	g.Wait()

	return t
}

func (t *Tables) buildTwistMove() {
	t.TwistMove = make([][cube.NumMoves]uint16, cube.NumTwist)
	for i := 0; i < cube.NumTwist; i++ {
		c := cube.Solved()
		c.SetTwist(i)
		for m := cube.Move(0); m < cube.NumMoves; m++ {
			d := c
			d.Apply(m)
			t.TwistMove[i][m] = uint16(d.Twist())
		}
	}
}

func (t *Tables) buildFlipMove() {
	t.FlipMove = make([][cube.NumMoves]uint16, cube.NumFlip)
	for i := 0; i < cube.NumFlip; i++ {
		c := cube.Solved()
		c.SetFlip(i)
		for m := cube.Move(0); m < cube.NumMoves; m++ {
			d := c
			d.Apply(m)
			t.FlipMove[i][m] = uint16(d.Flip())
		}
	}
}

func (t *Tables) buildSliceMove() {
	t.SliceMove = make([][cube.NumMoves]uint16, cube.NumSlice)
	for i := 0; i < cube.NumSlice; i++ {
		c := cube.Solved()
		c.SetSlice(i)
		for m := cube.Move(0); m < cube.NumMoves; m++ {
			d := c
			d.Apply(m)
			t.SliceMove[i][m] = uint16(d.Slice())
		}
	}
}

func (t *Tables) buildCornerMove() {
	t.CornerMove = make([][cube.NumMoves]uint16, cube.NumCornerPerm)
	for i := 0; i < cube.NumCornerPerm; i++ {
		c := cube.Solved()
		c.SetCornerPerm(i)
		for m := cube.Move(0); m < cube.NumMoves; m++ {
			d := c
			d.Apply(m)
			t.CornerMove[i][m] = uint16(d.CornerPerm())
		}
	}
}

func (t *Tables) buildUDEdgeMove() {
	t.UDEdgeMove = make([][10]uint16, cube.NumUDEdgePerm)
	for i := 0; i < cube.NumUDEdgePerm; i++ {
		c := cube.Solved()
		c.SetUDEdgePerm(i)
		for k, m := range cube.Phase2Moves {
			d := c
			d.Apply(m)
			t.UDEdgeMove[i][k] = uint16(d.UDEdgePerm())
		}
	}
}

func (t *Tables) buildSlicePermMove() {
	t.SlicePermMove = make([][10]uint8, cube.NumSlicePerm)
	for i := 0; i < cube.NumSlicePerm; i++ {
		c := cube.Solved()
		c.SetSlicePerm(i)
		for k, m := range cube.Phase2Moves {
			d := c
			d.Apply(m)
			t.SlicePermMove[i][k] = uint8(d.SlicePerm())
		}
	}
}
