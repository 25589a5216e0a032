package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chintanlad10/cubesolver"
)

var (
	benchCount  int
	benchMethod string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the solver on random scrambles",
	Long: `Solve a batch of random scrambles, verify every solution by
replaying it against a freshly scrambled cube, and report the average
optimized solution length.`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVarP(&benchCount, "count", "n", 10000, "Number of scrambles to solve")
	benchCmd.Flags().StringVarP(&benchMethod, "method", "m", "cfop", "Solving method: cfop or beginner")
}

func runBench(cmd *cobra.Command, args []string) error {
	solve := cubesolver.Solve
	if benchMethod == "beginner" {
		solve = cubesolver.SolveBeginner
	} else if benchMethod != "cfop" {
		return fmt.Errorf("unknown method %q (want cfop or beginner)", benchMethod)
	}

	cube := cubesolver.NewCube()
	totalLength := 0
	start := time.Now()

	for i := 0; i < benchCount; i++ {
		scramble := cubesolver.NewScramble(cubesolver.DefaultScrambleLength)

		cube.Reset()
		cube.ReadMoves(scramble)
		solution := solve(cube)
		if !cube.IsSolved() {
			return fmt.Errorf("failed to solve: %s", scramble)
		}

		// verify by replaying the optimized solution
		optimized := cubesolver.CleanSolution(solution, true)
		cube.Reset()
		cube.ReadMoves(scramble)
		cube.ExecuteMoves(optimized)
		if !cube.IsSolved() {
			return fmt.Errorf("failed to replicate solve: %s", scramble)
		}

		totalLength += len(optimized)

		if verbose && (i+1)%1000 == 0 {
			fmt.Printf("%d/%d solved\n", i+1, benchCount)
		}
	}

	elapsed := time.Since(start)
	fmt.Printf("Solved %d random scrambles in %s\n", benchCount, elapsed.Round(time.Millisecond))
	fmt.Printf("Average solution length: %.2f moves\n", float64(totalLength)/float64(benchCount))
	fmt.Printf("Average solve time: %s\n", (elapsed / time.Duration(benchCount)).Round(time.Microsecond))
	return nil
}
