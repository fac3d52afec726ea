package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba"
	"github.com/SeamusWaldron/kociemba/internal/render"
)

var (
	scrambleLength int
	scrambleQuiet  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence and print it together with the
facelet string of the scrambled state.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		moves, state, err := kociemba.Scramble(scrambleLength)
		if err != nil {
			return err
		}
		fmt.Println(kociemba.FormatMoves(moves))
		if !scrambleQuiet {
			fmt.Println()
			fmt.Print(render.Net(state))
			fmt.Println()
			fmt.Println(state)
		}
		return nil
	},
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 25, "Number of moves in the scramble")
	scrambleCmd.Flags().BoolVarP(&scrambleQuiet, "quiet", "q", false, "Print only the move sequence")
	rootCmd.AddCommand(scrambleCmd)
}
