// Package cubesolver solves 3x3 Rubik's cubes with the CFOP method.
//
// # Features
//
//   - Bit-packed cube state with the full move palette: outer turns,
//     wide turns, slice moves, and whole-cube rotations
//   - Staged solving pipeline (Cross, F2L, OLL, PLL) plus a simpler
//     layer-by-layer beginner pipeline
//   - Move-sequence simplifier that merges adjacent turns
//   - Standard notation parsing and 54-character state strings
//
// # Quick Start
//
// Scramble a cube and solve it:
//
//	cube := cubesolver.NewCube()
//	cube.ReadMoves("R U R' F2 D' L")
//
//	solution := cubesolver.Solve(cube)
//	fmt.Println(cubesolver.SolutionToString(solution))
//
// Or start from a sticker state:
//
//	cube := cubesolver.NewCube()
//	cube.CopyState("WWWWWWWWW...")
//	solution := cubesolver.Solve(cube)
//
// # Solutions
//
// Solve returns the recorded move list after one merging pass, with
// stage markers preserved so FormatSolution can print one line per
// stage. Pass the list through CleanSolution with optimized set to
// drop the markers and let turns cancel across stage boundaries.
package cubesolver

// SolveScramble applies the scramble to a fresh cube and returns the
// optimized solution in standard notation.
func SolveScramble(scramble string) (string, error) {
	c := NewCube()
	if len(c.ReadMoves(scramble)) == 0 && scramble != "" {
		return "", ErrInvalidNotation
	}

	solution := Solve(c)
	if !c.IsSolved() {
		return "", ErrUnsolvable
	}

	return SolutionToString(CleanSolution(solution, true)), nil
}

// SolveState loads a 54-character state string into a fresh cube and
// returns the optimized solution in standard notation.
func SolveState(state string) (string, error) {
	if len(state) != 54 {
		return "", ErrInvalidState
	}

	c := NewCube()
	c.CopyState(state)

	solution := Solve(c)
	if !c.IsSolved() {
		return "", ErrUnsolvable
	}

	return SolutionToString(CleanSolution(solution, true)), nil
}
