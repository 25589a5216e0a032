package cubesolver

import (
	"math/rand"
	"testing"
)

func TestCleanSolution_MergesAdjacentTurns(t *testing.T) {
	solution := []Move{
		{PieceRight, Normal},
		{PieceRight, Normal},
		{PieceUp, Normal},
		{PieceUp, Prime},
		{PieceFront, Double},
	}
	cleaned := CleanSolution(solution, false)
	want := []Move{
		{PieceRight, Double},
		{PieceFront, Double},
	}
	if len(cleaned) != len(want) {
		t.Fatalf("CleanSolution returned %d moves, want %d: %v", len(cleaned), len(want), cleaned)
	}
	for i := range want {
		if cleaned[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, cleaned[i], want[i])
		}
	}
}

func TestCleanSolution_MergesIntoNewTail(t *testing.T) {
	// after U U' cancels, the two R moves become adjacent and merge
	solution := []Move{
		{PieceRight, Normal},
		{PieceUp, Normal},
		{PieceUp, Prime},
		{PieceRight, Normal},
	}
	cleaned := CleanSolution(solution, false)
	if len(cleaned) != 1 || cleaned[0] != (Move{PieceRight, Double}) {
		t.Errorf("CleanSolution = %v, want [R2]", cleaned)
	}
}

func TestCleanSolution_MarkersBlockMerges(t *testing.T) {
	solution := []Move{
		{PieceRight, Normal},
		StageMarker,
		{PieceRight, Prime},
	}

	kept := CleanSolution(solution, false)
	if len(kept) != 3 {
		t.Errorf("non-optimized clean should keep the marker, got %v", kept)
	}

	optimized := CleanSolution(solution, true)
	if len(optimized) != 0 {
		t.Errorf("optimized clean should cancel across the marker, got %v", optimized)
	}
}

func TestSolutionToString_SkipsMarkers(t *testing.T) {
	solution := []Move{
		{PieceRight, Normal},
		StageMarker,
		{PieceUp, Prime},
	}
	if got := SolutionToString(solution); got != "R U' " {
		t.Errorf("SolutionToString = %q, want %q", got, "R U' ")
	}
}

func TestFormatSolution_BreaksAtMarkers(t *testing.T) {
	solution := []Move{
		{PieceRight, Normal},
		StageMarker,
		{PieceUp, Prime},
	}
	if got := FormatSolution(solution); got != "R \nU' \n" {
		t.Errorf("FormatSolution = %q, want %q", got, "R \nU' \n")
	}
}

func TestSolve_SolvedCube(t *testing.T) {
	c := NewCube()
	solution := Solve(c)
	if !c.IsSolved() {
		t.Error("Cube should stay solved")
	}
	optimized := CleanSolution(solution, true)
	if s := SolutionToString(optimized); s != "" {
		t.Errorf("Solved cube should yield an empty solution string, got %q", s)
	}
}

func TestSolve_SingleMoveScramble(t *testing.T) {
	c := NewCube()
	c.ReadMoves("R")

	solution := Solve(c)
	if !c.IsSolved() {
		t.Fatal("Solver failed on a single-move scramble")
	}

	// the optimized solution must also solve a freshly scrambled cube
	optimized := CleanSolution(solution, true)
	replay := NewCube()
	replay.ReadMoves("R")
	replay.ExecuteMoves(optimized)
	if !replay.IsSolved() {
		t.Error("Optimized solution did not replay to solved")
	}
}

func TestSolve_SexyMoveIdentityScramble(t *testing.T) {
	scramble := "R U R' U' R U R' U' R U R' U' R U R' U' R U R' U' R U R' U'"
	c := NewCube()
	c.ReadMoves(scramble)

	Solve(c)
	if !c.IsSolved() {
		t.Error("Solver failed on the sexy move identity scramble")
	}
}

func TestSolve_ThreeCycleScramble(t *testing.T) {
	scramble := "F2 U L R' F2 L' R U F2"
	c := NewCube()
	c.ReadMoves(scramble)

	solution := Solve(c)
	if !c.IsSolved() {
		t.Fatal("Solver failed on the three-cycle scramble")
	}

	optimized := CleanSolution(solution, true)
	replay := NewCube()
	replay.ReadMoves(scramble)
	replay.ExecuteMoves(optimized)
	if !replay.IsSolved() {
		t.Error("Optimized solution did not replay to solved")
	}
}

func TestSolve_RandomScrambles(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := NewCube()
	for i := 0; i < 300; i++ {
		scramble := newScramble(DefaultScrambleLength, rng.Intn)

		c.Reset()
		c.ReadMoves(scramble)
		solution := Solve(c)
		if !c.IsSolved() {
			t.Fatalf("Failed to solve: %s", scramble)
		}

		// replay the optimized solution against a fresh cube
		c.Reset()
		c.ReadMoves(scramble)
		optimized := CleanSolution(solution, true)
		c.ExecuteMoves(optimized)
		if !c.IsSolved() {
			t.Fatalf("Failed to replicate solve: %s", scramble)
		}
	}
}

func TestSolveBeginner_RandomScrambles(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	c := NewCube()
	for i := 0; i < 100; i++ {
		scramble := newScramble(DefaultScrambleLength, rng.Intn)

		c.Reset()
		c.ReadMoves(scramble)
		solution := SolveBeginner(c)
		if !c.IsSolved() {
			t.Fatalf("Beginner method failed to solve: %s", scramble)
		}

		c.Reset()
		c.ReadMoves(scramble)
		c.ExecuteMoves(CleanSolution(solution, true))
		if !c.IsSolved() {
			t.Fatalf("Beginner method failed to replicate solve: %s", scramble)
		}
	}
}

func TestSolveScramble(t *testing.T) {
	solution, err := SolveScramble("R U R' F2 D' L")
	if err != nil {
		t.Fatalf("SolveScramble returned error: %v", err)
	}

	c := NewCube()
	c.ReadMoves("R U R' F2 D' L")
	c.ReadMoves(solution)
	if !c.IsSolved() {
		t.Error("SolveScramble solution did not solve the cube")
	}
}

func TestSolveScramble_InvalidNotation(t *testing.T) {
	if _, err := SolveScramble("?? !!"); err != ErrInvalidNotation {
		t.Errorf("err = %v, want ErrInvalidNotation", err)
	}
}

func TestSolveState(t *testing.T) {
	scrambled := NewCube()
	scrambled.ReadMoves("F2 U L R' F2 L' R U F2")
	state := scrambled.StateString()

	solution, err := SolveState(state)
	if err != nil {
		t.Fatalf("SolveState returned error: %v", err)
	}

	c := NewCube()
	c.CopyState(state)
	c.ReadMoves(solution)
	if !c.IsSolved() {
		t.Error("SolveState solution did not solve the cube")
	}
}

func TestSolveState_WrongLength(t *testing.T) {
	if _, err := SolveState("WWW"); err != ErrInvalidState {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func TestScramble_OnlyLegalTokens(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	scramble := newScramble(DefaultScrambleLength, rng.Intn)

	c := NewCube()
	moves := c.ReadMoves(scramble)
	if len(moves) != DefaultScrambleLength {
		t.Errorf("scramble of length %d parsed to %d moves", DefaultScrambleLength, len(moves))
	}
	for _, m := range moves {
		if m.Pieces > PieceLeft || m.Type == NoMove {
			t.Errorf("scramble produced a non outer-turn move: %v", m)
		}
	}
}
