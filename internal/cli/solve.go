package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba"
	"github.com/SeamusWaldron/kociemba/internal/render"
	"github.com/SeamusWaldron/kociemba/internal/storage"
)

var (
	solveMaxMoves int
	solveTimeout  time.Duration
	solveScramble string
	solveNoSave   bool
	solveQuiet    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [facelets]",
	Short: "Solve a cube position",
	Long: `Solve a cube position given as a 54-sticker facelet string, or as a
scramble sequence applied to the solved cube via --scramble.

The solution is printed in standard face-turn notation and recorded in
the solve history unless --no-save is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&solveMaxMoves, "max-moves", kociemba.DefaultMaxMoves, "Ceiling on solution length")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Abort the search after this long (0 = no limit)")
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Solve the state reached by this move sequence instead of a facelet string")
	solveCmd.Flags().BoolVar(&solveNoSave, "no-save", false, "Do not record the solve in the history database")
	solveCmd.Flags().BoolVarP(&solveQuiet, "quiet", "q", false, "Print only the solution")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	facelets, err := resolveState(args)
	if err != nil {
		return err
	}

	opts := []kociemba.Option{kociemba.WithMaxMoves(solveMaxMoves)}
	if solveTimeout > 0 {
		opts = append(opts, kociemba.WithTimeout(solveTimeout))
	}

	sol, err := kociemba.Solve(facelets, opts...)
	if err != nil {
		return solveError(err)
	}

	solution := kociemba.FormatMoves(sol.Moves)
	if solveQuiet {
		fmt.Println(solution)
	} else {
		fmt.Print(render.Net(facelets))
		fmt.Println()
		if len(sol.Moves) == 0 {
			fmt.Println("Already solved.")
		} else {
			fmt.Printf("Solution: %s\n", solution)
		}
		fmt.Printf("Moves: %d (phase 1: %d)  Nodes: %d  Time: %s\n",
			len(sol.Moves), sol.Phase1, sol.Nodes, sol.Duration.Round(time.Microsecond))
	}

	if !solveNoSave {
		if err := recordSolve(facelets, solveScramble, sol); err != nil {
			log.Warn().Err(err).Msg("could not record solve")
		}
	}
	return nil
}

// resolveState turns the positional facelet argument or the --scramble
// flag into a facelet string.
func resolveState(args []string) (string, error) {
	switch {
	case solveScramble != "" && len(args) > 0:
		return "", errors.New("give either a facelet string or --scramble, not both")
	case solveScramble != "":
		moves, err := kociemba.ParseMoves(solveScramble)
		if err != nil {
			return "", err
		}
		return kociemba.ApplyMoves(kociemba.SolvedFacelets, moves)
	case len(args) > 0:
		return strings.TrimSpace(args[0]), nil
	default:
		return "", errors.New("no cube state given; pass a facelet string or --scramble")
	}
}

// solveError maps library errors to user-facing messages.
func solveError(err error) error {
	switch {
	case errors.Is(err, kociemba.ErrMalformedInput):
		return fmt.Errorf("%w (expected 54 stickers, 9 of each of 6 symbols, faces in U R F D L B order)", err)
	case errors.Is(err, kociemba.ErrUnsolvableCube):
		return fmt.Errorf("%w (was the cube taken apart and reassembled wrong?)", err)
	case errors.Is(err, kociemba.ErrTimeout):
		return fmt.Errorf("%w; raise --timeout", err)
	case errors.Is(err, kociemba.ErrSearchExhausted):
		return fmt.Errorf("%w; raise --max-moves", err)
	}
	return err
}

func recordSolve(facelets, scramble string, sol kociemba.Solution) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	id, err := repo.Create(storage.Solve{
		Facelets:   facelets,
		Scramble:   scramble,
		Solution:   kociemba.FormatMoves(sol.Moves),
		MoveCount:  len(sol.Moves),
		Phase1Len:  sol.Phase1,
		Nodes:      int64(sol.Nodes),
		DurationMs: sol.Duration.Milliseconds(),
	})
	if err != nil {
		return err
	}
	log.Debug().Str("solve_id", id).Msg("solve recorded")
	return nil
}
