package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chintanlad10/cubesolver"
	"github.com/chintanlad10/cubesolver/internal/storage"
)

var (
	solveState     string
	solveOptimized bool
	solveMethod    string
	solveShowCube  bool
	solveSave      bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve a cube given either a scramble in standard notation or a
54-character sticker state (--state).

The staged solution is printed with one line per solving stage. Use
--optimized to also print the shorter merged form.

Examples:
  cubesolver solve "R U R' U' F2 D L"
  cubesolver solve --state WWOWWOGGY... --optimized
  cubesolver solve --method beginner "F2 U L R' F2 L' R U F2"`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveState, "state", "", "54-character sticker state (UP DOWN FRONT BACK RIGHT LEFT)")
	solveCmd.Flags().BoolVarP(&solveOptimized, "optimized", "o", false, "Also print the optimized solution")
	solveCmd.Flags().StringVarP(&solveMethod, "method", "m", "", "Solving method: cfop or beginner")
	solveCmd.Flags().BoolVar(&solveShowCube, "show", false, "Show the scrambled cube before solving")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Record the solve in the history database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	scramble := strings.Join(args, " ")
	if scramble == "" && solveState == "" {
		return fmt.Errorf("provide a scramble argument or --state")
	}

	cube := cubesolver.NewCube()
	if solveState != "" {
		if len(solveState) != 54 {
			return fmt.Errorf("%w: want 54 characters, got %d", cubesolver.ErrInvalidState, len(solveState))
		}
		cube.CopyState(solveState)
	} else if len(cube.ReadMoves(scramble)) == 0 {
		return cubesolver.ErrInvalidNotation
	}

	if solveShowCube {
		fmt.Println(renderCube(cube))
	}

	method := solveMethod
	if method == "" {
		method = cfg.Method
	}

	start := time.Now()
	var solution []cubesolver.Move
	switch method {
	case "beginner":
		solution = cubesolver.SolveBeginner(cube)
	case "cfop", "":
		solution = cubesolver.Solve(cube)
	default:
		return fmt.Errorf("unknown method %q (want cfop or beginner)", method)
	}
	elapsed := time.Since(start)

	if !cube.IsSolved() {
		return cubesolver.ErrUnsolvable
	}

	fmt.Println("Solution:")
	fmt.Println()
	fmt.Print(cubesolver.FormatSolution(solution))

	optimized := cubesolver.CleanSolution(solution, true)
	if solveOptimized || cfg.Optimized {
		fmt.Println("\nOptimized:")
		fmt.Println()
		fmt.Println(cubesolver.SolutionToString(optimized))
	}

	if verbose {
		fmt.Printf("\n%d moves (%d optimized) in %s\n",
			countMoves(solution), len(optimized), elapsed.Round(time.Microsecond))
	}

	if solveSave {
		return saveSolve(method, scramble, solution, optimized, elapsed)
	}
	return nil
}

// countMoves counts the real moves in a solution, markers aside.
func countMoves(solution []cubesolver.Move) int {
	n := 0
	for _, m := range solution {
		if m.Type != cubesolver.NoMove {
			n++
		}
	}
	return n
}

// saveSolve records a completed solve in the history database.
func saveSolve(method, scramble string, solution, optimized []cubesolver.Move, elapsed time.Duration) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	id, err := repo.Create(storage.Solve{
		Method:         method,
		Scramble:       scramble,
		Solution:       cubesolver.SolutionToString(solution),
		Optimized:      cubesolver.SolutionToString(optimized),
		MoveCount:      countMoves(solution),
		OptimizedCount: len(optimized),
		Duration:       elapsed,
	})
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Saved solve %s\n", id)
	}
	return nil
}
