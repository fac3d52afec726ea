package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba/internal/render"
	"github.com/SeamusWaldron/kociemba/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [solve-id]",
	Short: "Show recorded solves",
	Long: `List recent solves from the history database, or show one solve in
full when given its ID.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		repo := storage.NewSolveRepository(db)

		if len(args) == 1 {
			return showSolve(repo, args[0])
		}

		solves, err := repo.List(historyLimit)
		if err != nil {
			return err
		}
		if len(solves) == 0 {
			fmt.Println("No solves recorded yet.")
			return nil
		}
		for _, s := range solves {
			fmt.Printf("%s  %s  %2d moves  %6dms  %s\n",
				s.SolveID[:8], s.CreatedAt.Local().Format("2006-01-02 15:04"),
				s.MoveCount, s.DurationMs, s.Solution)
		}
		return nil
	},
}

func showSolve(repo *storage.SolveRepository, id string) error {
	s, err := repo.Get(id)
	if err != nil {
		return err
	}
	fmt.Printf("Solve:    %s\n", s.SolveID)
	fmt.Printf("Date:     %s\n", s.CreatedAt.Local().Format(time.RFC1123))
	if s.Scramble != "" {
		fmt.Printf("Scramble: %s\n", s.Scramble)
	}
	fmt.Printf("Solution: %s\n", s.Solution)
	fmt.Printf("Moves:    %d (phase 1: %d)  Nodes: %d  Time: %dms\n",
		s.MoveCount, s.Phase1Len, s.Nodes, s.DurationMs)
	fmt.Println()
	fmt.Print(render.Net(s.Facelets))
	return nil
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of solves to list")
	rootCmd.AddCommand(historyCmd)
}
