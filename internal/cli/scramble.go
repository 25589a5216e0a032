package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chintanlad10/cubesolver"
)

var scrambleLength int

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long:  `Generate a random scramble drawn from the 18-move outer-turn set.`,
	RunE:  runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 0, "Number of moves (default from config, normally 25)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	length := scrambleLength
	if length <= 0 {
		length = cfg.ScrambleLength
	}

	scramble := cubesolver.NewScramble(length)
	fmt.Println(scramble)

	if verbose {
		cube := cubesolver.NewCube()
		cube.ReadMoves(scramble)
		fmt.Println()
		fmt.Println(renderCube(cube))
	}
	return nil
}
