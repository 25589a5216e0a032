package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chintanlad10/cubesolver/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	Long:  `Display recent solves recorded with "solve --save".`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet. Record one with: cubesolver solve --save <scramble>")
		return nil
	}

	total, _ := repo.Count()
	fmt.Printf("Showing %d of %d solves\n\n", len(solves), total)

	for _, s := range solves {
		fmt.Printf("%s  %-8s  %3d moves (%3d optimized)  %8s\n",
			s.CreatedAt.Local().Format(time.DateTime), s.Method,
			s.MoveCount, s.OptimizedCount, s.Duration.Round(time.Microsecond))
		if verbose {
			fmt.Printf("    scramble: %s\n", s.Scramble)
			fmt.Printf("    solution: %s\n", s.Optimized)
		}
	}
	return nil
}
