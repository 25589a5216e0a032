package cubesolver

import "testing"

func TestReadMoves_Tokenises(t *testing.T) {
	c := NewCube()
	moves := c.ReadMoves("R U2 R' u d' M2 x")
	want := []Move{
		{PieceRight, Normal},
		{PieceUp, Double},
		{PieceRight, Prime},
		{PieceUpWide, Normal},
		{PieceDownWide, Prime},
		{PieceM, Double},
		{PieceX, Normal},
	}
	if len(moves) != len(want) {
		t.Fatalf("ReadMoves returned %d moves, want %d", len(moves), len(want))
	}
	for i, m := range moves {
		if m != want[i] {
			t.Errorf("move %d = %v, want %v", i, m, want[i])
		}
	}
}

func TestReadMoves_SkipsUnknownTokens(t *testing.T) {
	c := NewCube()
	moves := c.ReadMoves("(R U R' U')")
	if len(moves) != 4 {
		t.Errorf("parenthesised sequence should yield 4 moves, got %d", len(moves))
	}

	c.Reset()
	moves = c.ReadMoves("R ? U Q9 D")
	if len(moves) != 3 {
		t.Errorf("junk tokens should be skipped, got %d moves", len(moves))
	}
}

func TestReadMoves_UppercaseRotations(t *testing.T) {
	c := NewCube()
	moves := c.ReadMoves("X Y' Z2")
	want := []Move{
		{PieceX, Normal},
		{PieceY, Prime},
		{PieceZ, Double},
	}
	if len(moves) != len(want) {
		t.Fatalf("ReadMoves returned %d moves, want %d", len(moves), len(want))
	}
	for i, m := range moves {
		if m != want[i] {
			t.Errorf("move %d = %v, want %v", i, m, want[i])
		}
	}
	// rotations render lowercase
	if s := SolutionToString(moves); s != "x y' z2 " {
		t.Errorf("SolutionToString = %q, want %q", s, "x y' z2 ")
	}
}

func TestReadMoves_StringRoundTrip(t *testing.T) {
	input := "R U2 R' u d' M2 x y' F B2 l"
	c := NewCube()
	moves := c.ReadMoves(input)

	rendered := SolutionToString(moves)
	c2 := NewCube()
	replayed := c2.ReadMoves(rendered)

	if len(replayed) != len(moves) {
		t.Fatalf("round trip changed move count: %d vs %d", len(replayed), len(moves))
	}
	for i := range moves {
		if replayed[i] != moves[i] {
			t.Errorf("round trip changed move %d: %v vs %v", i, replayed[i], moves[i])
		}
	}
	if c.StateString() != c2.StateString() {
		t.Error("round trip produced a different cube state")
	}
}

func TestExecuteMoves_MatchesReadMoves(t *testing.T) {
	scramble := "F2 U L R' F2 L' R U F2"

	a := NewCube()
	moves := a.ReadMoves(scramble)

	b := NewCube()
	b.ExecuteMoves(moves)

	if a.StateString() != b.StateString() {
		t.Error("ExecuteMoves should reproduce the ReadMoves state")
	}
}

func TestParseMove_InvalidSuffix(t *testing.T) {
	c := NewCube()
	if m := c.ParseMove("U3"); m.Type != NoMove {
		t.Errorf("ParseMove(U3) = %v, want NoMove", m)
	}
	if m := c.ParseMove(""); m.Type != NoMove {
		t.Errorf("ParseMove of empty string = %v, want NoMove", m)
	}
	if !c.IsSolved() {
		t.Error("invalid tokens must leave the cube untouched")
	}
}
