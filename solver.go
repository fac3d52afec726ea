// Package kociemba solves the 3x3 Rubik's cube with the two-phase
// algorithm: reduce the cube into the G1 subgroup (orientations and
// equatorial-slice placement solved), then finish it with the
// G1-preserving generators, both phases driven by IDA* over
// precomputed coordinate pruning tables.
//
// The pruning tables are built once per process on first use (or
// eagerly via Prepare) and shared read-only by any number of
// concurrent Solve calls.
package kociemba

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/SeamusWaldron/kociemba/internal/cube"
	"github.com/SeamusWaldron/kociemba/internal/search"
	"github.com/SeamusWaldron/kociemba/internal/tables"
)

// DefaultMaxMoves is the default ceiling on solution length. Any
// reachable state has a 20-move solution; the two-phase search trades
// a few extra moves for speed.
const DefaultMaxMoves = 24

// SolvedFacelets is the facelet string of the solved cube.
const SolvedFacelets = cube.SolvedFacelets

// Solution is the result of a successful solve.
type Solution struct {
	Moves    []Move        // face turns returning the input to solved
	Phase1   int           // length of the G1-reducing prefix
	Nodes    uint64        // search nodes expanded
	Duration time.Duration // wall-clock search time
}

// Prepare eagerly builds the pruning tables. Calling it is optional:
// the first Solve triggers the same one-time construction.
func Prepare() {
	tables.Get()
}

// Validate checks that a facelet string describes a reachable cube
// state. It returns nil for solvable input and one of
// ErrMalformedInput, ErrInvalidCenters, or ErrUnsolvableCube
// otherwise.
func Validate(facelets string) error {
	c, _, err := cube.Parse(facelets)
	if err != nil {
		return err
	}
	return c.Verify()
}

// Solve finds a move sequence bringing the given facelet state to
// solved. The input must use 6 distinct sticker symbols, 9 of each;
// the centers define the color-to-face mapping.
func Solve(facelets string, opts ...Option) (Solution, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}

	c, _, err := cube.Parse(facelets)
	if err != nil {
		return Solution{}, err
	}
	if err := c.Verify(); err != nil {
		return Solution{}, err
	}

	ctx := cfg.ctx
	if cfg.timeout > 0 {
		var cancel func()
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := search.Solve(ctx, tables.Get(), c, cfg.maxMoves)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, search.ErrExhausted) {
			// A verified state always has a solution within the
			// ceiling; hitting this is an internal defect.
			log.Error().
				Str("facelets", facelets).
				Int("max_moves", cfg.maxMoves).
				Uint64("nodes", res.Nodes).
				Msg("search exhausted on a verified cube")
		}
		return Solution{Nodes: res.Nodes, Duration: elapsed}, err
	}

	moves := make([]Move, len(res.Moves))
	for i, m := range res.Moves {
		moves[i] = fromCubieMove(m)
	}
	return Solution{
		Moves:    moves,
		Phase1:   res.Phase1,
		Nodes:    res.Nodes,
		Duration: elapsed,
	}, nil
}

// ApplyMoves applies a move sequence to a facelet state by real move
// simulation and returns the resulting facelet string in the same
// sticker alphabet as the input.
func ApplyMoves(facelets string, moves []Move) (string, error) {
	c, scheme, err := cube.Parse(facelets)
	if err != nil {
		return "", err
	}
	for _, m := range moves {
		c.Apply(toCubieMove(m))
	}
	return c.Facelets(scheme), nil
}

// Scramble generates a random move sequence of the given length (no
// two consecutive turns of the same face, commuting pairs in one
// order only) and returns it together with the facelet string it
// produces from the solved cube.
func Scramble(length int) ([]Move, string, error) {
	if length < 0 {
		length = 0
	}
	seq := make([]Move, 0, length)
	prev := -1
	for len(seq) < length {
		m := frand.Intn(18)
		if prev >= 0 {
			if m/3 == prev/3 {
				continue
			}
			if m/3%3 == prev/3%3 && m/3 < prev/3 {
				continue
			}
		}
		seq = append(seq, fromCubieMove(cube.Move(m)))
		prev = m
	}
	state, err := ApplyMoves(SolvedFacelets, seq)
	if err != nil {
		return nil, "", err
	}
	return seq, state, nil
}
