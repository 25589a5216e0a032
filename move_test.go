package cubesolver

import "testing"

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{PieceUp, Normal}, "U"},
		{Move{PieceUp, Prime}, "U'"},
		{Move{PieceUp, Double}, "U2"},
		{Move{PieceRightWide, Normal}, "r"},
		{Move{PieceRightWide, Prime}, "r'"},
		{Move{PieceM, Double}, "M2"},
		{Move{PieceX, Normal}, "x"},
		{Move{PieceY, Prime}, "y'"},
		{Move{PieceZ, Double}, "z2"},
	}
	for _, tt := range tests {
		if got := tt.move.Notation(); got != tt.want {
			t.Errorf("Notation(%v/%v) = %q, want %q", tt.move.Pieces, tt.move.Type, got, tt.want)
		}
	}
}

func TestMoveNotation_RoundTripsThroughParse(t *testing.T) {
	c := NewCube()
	for pieces := PieceUp; pieces <= PieceZ; pieces++ {
		for _, mt := range []MoveType{Normal, Prime, Double} {
			move := Move{pieces, mt}
			parsed := c.ParseMove(move.Notation())
			if parsed != move {
				t.Errorf("ParseMove(%q) = %v/%v, want %v/%v",
					move.Notation(), parsed.Pieces, parsed.Type, pieces, mt)
			}
		}
	}
}

func TestCanMergeWith(t *testing.T) {
	r := Move{PieceRight, Normal}
	rPrime := Move{PieceRight, Prime}
	u := Move{PieceUp, Normal}
	marker := Move{PieceY, NoMove}

	if !r.CanMergeWith(rPrime) {
		t.Error("R should merge with R'")
	}
	if r.CanMergeWith(u) {
		t.Error("R should not merge with U")
	}
	if r.CanMergeWith(marker) {
		t.Error("R should not merge with a stage marker")
	}
	if marker.CanMergeWith(r) {
		t.Error("A stage marker should not merge with R")
	}
}

func TestMerge_AllTypeCombinations(t *testing.T) {
	tests := []struct {
		a, b MoveType
		want MoveType
	}{
		{Normal, Normal, Double},
		{Normal, Prime, NoMove},
		{Normal, Double, Prime},
		{Prime, Normal, NoMove},
		{Prime, Prime, Double},
		{Prime, Double, Normal},
		{Double, Normal, Prime},
		{Double, Prime, Normal},
		{Double, Double, NoMove},
	}
	for _, tt := range tests {
		merged := Move{PieceRight, tt.a}.Merge(Move{PieceRight, tt.b})
		if merged.Type != tt.want {
			t.Errorf("Merge(%v, %v) = %v, want %v", tt.a, tt.b, merged.Type, tt.want)
		}
		if merged.Pieces != PieceRight {
			t.Errorf("Merge(%v, %v) changed pieces to %v", tt.a, tt.b, merged.Pieces)
		}
	}
}
