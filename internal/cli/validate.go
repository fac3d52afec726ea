package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba"
)

var validateCmd = &cobra.Command{
	Use:   "validate <facelets>",
	Short: "Check whether a facelet string is a reachable cube state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := kociemba.Validate(args[0])
		switch {
		case err == nil:
			fmt.Println("OK: state is solvable")
			return nil
		case errors.Is(err, kociemba.ErrMalformedInput):
			return fmt.Errorf("%w: need 54 stickers, 9 of each of 6 symbols", err)
		case errors.Is(err, kociemba.ErrInvalidCenters):
			return fmt.Errorf("%w: the 6 center stickers must be distinct", err)
		case errors.Is(err, kociemba.ErrUnsolvableCube):
			return err
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
