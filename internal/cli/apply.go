package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba"
	"github.com/SeamusWaldron/kociemba/internal/render"
)

var (
	applyFrom  string
	applyQuiet bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves...>",
	Short: "Apply a move sequence to a cube state",
	Long: `Apply a move sequence to a facelet state and print the result. The
starting state defaults to the solved cube; pass --from to start from
another facelet string.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moves, err := kociemba.ParseMoves(strings.Join(args, " "))
		if err != nil {
			return err
		}

		start := applyFrom
		if start == "" {
			start = kociemba.SolvedFacelets
		}
		state, err := kociemba.ApplyMoves(start, moves)
		if err != nil {
			return err
		}

		fmt.Println(state)
		if !applyQuiet {
			fmt.Println()
			fmt.Print(render.Net(state))
		}
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVar(&applyFrom, "from", "", "Starting facelet string (default: solved)")
	applyCmd.Flags().BoolVarP(&applyQuiet, "quiet", "q", false, "Print only the resulting facelet string")
	rootCmd.AddCommand(applyCmd)
}
