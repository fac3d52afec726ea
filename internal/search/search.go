// Package search implements the two-phase (Kociemba) IDA* driver.
//
// The outer loop raises a bound N on the total move count. For each N
// it looks for a phase-1 prefix of length n1 <= N taking the cube
// into the G1 subgroup (orientations and slice placement solved),
// then a phase-2 suffix of length at most N-n1 using only
// G1-preserving generators. The first solution found at the smallest
// feasible N is returned; within one N the search is first-found, the
// documented optimality trade-off of the two-phase method.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/SeamusWaldron/kociemba/internal/cube"
	"github.com/SeamusWaldron/kociemba/internal/tables"
)

var (
	// ErrExhausted means no solution was found within the move
	// ceiling. Unreachable for any state that passes Verify; treated
	// as an internal defect by the caller.
	ErrExhausted = errors.New("kociemba: no solution within the move ceiling")

	// ErrAborted means the context expired before any solution was
	// found.
	ErrAborted = errors.New("kociemba: search aborted before a solution was found")
)

const (
	// maxPhase1 is the diameter of the phase-1 coordinate space.
	maxPhase1 = 12

	// MaxMoves is the largest supported total-move ceiling.
	MaxMoves = 30

	// ctxCheckMask throttles context polling to every 4096 nodes so a
	// deadline is honored promptly even mid-phase.
	ctxCheckMask = 0xfff
)

// Result is a completed search.
type Result struct {
	Moves  []cube.Move
	Phase1 int // length of the G1-reducing prefix
	Nodes  uint64
}

// Solve finds a move sequence returning c to the solved state, at
// most maxMoves long. The caller must have verified solvability; the
// coordinate encoders assume a reachable state.
func Solve(ctx context.Context, t *tables.Tables, c cube.Cube, maxMoves int) (Result, error) {
	if maxMoves > MaxMoves {
		maxMoves = MaxMoves
	}
	r := &run{ctx: ctx, t: t, start: c}

	flip, twist, slice := c.Flip(), c.Twist(), c.Slice()
	for n := 0; n <= maxMoves; n++ {
		limit := n
		if limit > maxPhase1 {
			limit = maxPhase1
		}
		for n1 := 0; n1 <= limit; n1++ {
			if err := ctx.Err(); err != nil {
				return Result{Nodes: r.nodes}, fmt.Errorf("%w: %v", ErrAborted, err)
			}
			found, err := r.phase1(flip, twist, slice, 0, n1, n-n1)
			if err != nil {
				return Result{Nodes: r.nodes}, fmt.Errorf("%w: %v", ErrAborted, err)
			}
			if found {
				moves := append([]cube.Move(nil), r.moves[:r.total]...)
				return Result{Moves: moves, Phase1: r.phase1Len, Nodes: r.nodes}, nil
			}
		}
	}
	return Result{Nodes: r.nodes}, ErrExhausted
}

type run struct {
	ctx   context.Context
	t     *tables.Tables
	start cube.Cube

	moves     [MaxMoves]cube.Move
	total     int
	phase1Len int
	nodes     uint64
}

// phase1 searches for a prefix of exactly togo1 further moves ending
// in G1, then hands off to phase 2 with budget2 moves remaining.
func (r *run) phase1(flip, twist, slice, depth, togo1, budget2 int) (bool, error) {
	r.nodes++
	if r.nodes&ctxCheckMask == 0 {
		if err := r.ctx.Err(); err != nil {
			return false, err
		}
	}

	if togo1 == 0 {
		if flip != 0 || twist != 0 || slice != 0 {
			return false, nil
		}
		// A prefix ending in a G1-preserving move means the previous
		// state was already in G1; that decomposition was tried at a
		// shorter n1.
		if depth > 0 && r.moves[depth-1].IsPhase2() {
			return false, nil
		}
		return r.enterPhase2(depth, budget2)
	}

	h := r.t.FlipSlicePrune[flip*cube.NumSlice+slice]
	if h2 := r.t.TwistSlicePrune[twist*cube.NumSlice+slice]; h2 > h {
		h = h2
	}
	if int(h) > togo1 {
		return false, nil
	}

	prev := cube.Move(0xff)
	if depth > 0 {
		prev = r.moves[depth-1]
	}
	for m := cube.Move(0); m < cube.NumMoves; m++ {
		if !allowedAfter(prev, m) {
			continue
		}
		nf := int(r.t.FlipMove[flip][m])
		nt := int(r.t.TwistMove[twist][m])
		ns := int(r.t.SliceMove[slice][m])
		r.moves[depth] = m
		found, err := r.phase1(nf, nt, ns, depth+1, togo1-1, budget2)
		if found || err != nil {
			return found, err
		}
	}
	return false, nil
}

// enterPhase2 projects the state after the phase-1 prefix onto the
// phase-2 coordinates and searches the G1 subgroup.
func (r *run) enterPhase2(depth, budget int) (bool, error) {
	c := r.start
	for i := 0; i < depth; i++ {
		c.Apply(r.moves[i])
	}
	prev := cube.Move(0xff)
	if depth > 0 {
		prev = r.moves[depth-1]
	}
	found, err := r.phase2(c.CornerPerm(), c.UDEdgePerm(), c.SlicePerm(), depth, budget, prev)
	if found {
		r.phase1Len = depth
	}
	return found, err
}

func (r *run) phase2(cperm, eperm, sperm, depth, togo int, prev cube.Move) (bool, error) {
	r.nodes++
	if r.nodes&ctxCheckMask == 0 {
		if err := r.ctx.Err(); err != nil {
			return false, err
		}
	}

	if cperm == 0 && eperm == 0 && sperm == 0 {
		r.total = depth
		return true, nil
	}
	if togo == 0 {
		return false, nil
	}

	h := r.t.CornerSlicePrune[cperm*cube.NumSlicePerm+sperm]
	if h2 := r.t.UDEdgeSlicePrune[eperm*cube.NumSlicePerm+sperm]; h2 > h {
		h = h2
	}
	if int(h) > togo {
		return false, nil
	}

	for k, m := range cube.Phase2Moves {
		if !allowedAfter(prev, m) {
			continue
		}
		nc := int(r.t.CornerMove[cperm][m])
		ne := int(r.t.UDEdgeMove[eperm][k])
		ns := int(r.t.SlicePermMove[sperm][k])
		r.moves[depth] = m
		found, err := r.phase2(nc, ne, ns, depth+1, togo-1, m)
		if found || err != nil {
			return found, err
		}
	}
	return false, nil
}

// allowedAfter enforces canonical move order: never two turns of the
// same face in a row, and turns of opposite faces (which commute)
// only in a fixed face order, so U D is explored but D U never is.
func allowedAfter(prev, m cube.Move) bool {
	if prev == 0xff {
		return true
	}
	if prev.Face() == m.Face() {
		return false
	}
	if prev.Axis() == m.Axis() && prev.Face() > m.Face() {
		return false
	}
	return true
}
