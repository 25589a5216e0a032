package cubesolver

import "testing"

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, token := range []string{"U", "D", "F", "B", "R", "L", "u", "d", "f", "b", "r", "l", "M", "E", "S"} {
		c := NewCube()
		c.ParseMove(token)
		if c.IsSolved() {
			t.Errorf("Cube should not be solved after %s", token)
		}
	}
}

func TestFourQuarterTurns_ReturnsToSolved(t *testing.T) {
	// every quarter-turn mover applied four times is the identity
	movers := []string{
		"U", "D", "F", "B", "R", "L",
		"u", "d", "f", "b", "r", "l",
		"M", "E", "S",
		"x", "y", "z",
	}
	for _, token := range movers {
		c := NewCube()
		for i := 0; i < 4; i++ {
			c.ParseMove(token)
		}
		if !c.IsSolved() {
			t.Errorf("%s x 4 should return to solved", token)
			t.Log(c.String())
		}
	}
}

func TestMoveThenInverse_ReturnsToSolved(t *testing.T) {
	movers := []string{
		"U", "D", "F", "B", "R", "L",
		"u", "d", "f", "b", "r", "l",
		"M", "E", "S",
		"x", "y", "z",
	}
	for _, token := range movers {
		c := NewCube()
		c.ParseMove(token)
		c.ParseMove(token + "'")
		if !c.IsSolved() {
			t.Errorf("%s %s' should return to solved", token, token)
			t.Log(c.String())
		}
	}
}

func TestTwoDoubleTurns_ReturnsToSolved(t *testing.T) {
	movers := []string{
		"U", "D", "F", "B", "R", "L",
		"u", "d", "f", "b", "r", "l",
		"M", "E", "S",
		"x", "y", "z",
	}
	for _, token := range movers {
		c := NewCube()
		c.ParseMove(token + "2")
		c.ParseMove(token + "2")
		if !c.IsSolved() {
			t.Errorf("%s2 %s2 should return to solved", token, token)
			t.Log(c.String())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.ReadMoves("R U R' U'")
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestRLPrime_EqualsXM(t *testing.T) {
	// R L' and x M reach the same state
	a := NewCube()
	a.ReadMoves("R L'")
	b := NewCube()
	b.ReadMoves("x M")
	if a.StateString() != b.StateString() {
		t.Error("R L' should equal x M")
		t.Log(a.String())
		t.Log(b.String())
	}
}

func TestCentersMoveUnderSliceTurns(t *testing.T) {
	c := NewCube()
	up := c.Center(Up)
	front := c.Center(Front)
	c.ParseMove("M")
	if c.Center(Down) != front {
		t.Error("M should carry the front center to the down face")
	}
	if c.Center(Front) != up {
		t.Error("M should carry the up center to the front face")
	}
}

func TestIsPieceSolved(t *testing.T) {
	c := NewCube()
	if !c.IsPieceSolved(Location{Front, 1}) {
		t.Error("Edge should be solved on a fresh cube")
	}
	if !c.IsPieceSolved(Location{Front, 0}) {
		t.Error("Corner should be solved on a fresh cube")
	}

	c.ParseMove("R")
	if c.IsPieceSolved(Location{Front, 3}) {
		t.Error("Front right edge should be unsolved after R")
	}
	if !c.IsPieceSolved(Location{Front, 7}) {
		t.Error("Front left edge should survive an R move")
	}
}

func TestAdjacentEdgeIsInvolution(t *testing.T) {
	c := NewCube()
	for face := Up; face <= Left; face++ {
		for idx := uint8(1); idx < 8; idx += 2 {
			loc := Location{face, idx}
			back := c.AdjacentEdge(c.AdjacentEdge(loc))
			if back != loc {
				t.Errorf("AdjacentEdge round trip failed for %v: got %v", loc, back)
			}
		}
	}
}

func TestAdjacentCornerIsConsistent(t *testing.T) {
	c := NewCube()
	for face := Up; face <= Left; face++ {
		for idx := uint8(0); idx < 8; idx += 2 {
			loc := Location{face, idx}
			adj0, adj1 := c.AdjacentCorner(loc)

			// the three stickers must name the same physical corner
			// from every starting point
			want := map[Location]bool{loc: true, adj0: true, adj1: true}
			for _, start := range []Location{adj0, adj1} {
				other0, other1 := c.AdjacentCorner(start)
				if !want[other0] || !want[other1] {
					t.Errorf("AdjacentCorner inconsistent at %v: %v %v", start, other0, other1)
				}
			}
		}
	}
}

func TestLayerOf(t *testing.T) {
	tests := []struct {
		loc   Location
		layer Layer
	}{
		{Location{Up, 3}, LayerTop},
		{Location{Down, 1}, LayerBottom},
		{Location{Front, 1}, LayerTop},
		{Location{Front, 3}, LayerMiddle},
		{Location{Front, 5}, LayerBottom},
		{Location{Front, 7}, LayerMiddle},
		{Location{Right, 0}, LayerTop},
		{Location{Right, 4}, LayerBottom},
	}
	for _, tt := range tests {
		if got := layerOf(tt.loc); got != tt.layer {
			t.Errorf("layerOf(%v) = %v, want %v", tt.loc, got, tt.layer)
		}
	}
}
