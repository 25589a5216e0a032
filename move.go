package cubesolver

// Piece identifies which layers a move rotates: a single outer face,
// an outer face together with its slice (wide), one of the three
// middle slices, or the whole cube.
type Piece uint8

const (
	PieceUp Piece = iota
	PieceDown
	PieceFront
	PieceBack
	PieceRight
	PieceLeft
	PieceFrontWide
	PieceBackWide
	PieceUpWide
	PieceDownWide
	PieceRightWide
	PieceLeftWide
	PieceM
	PieceE
	PieceS
	PieceX
	PieceY
	PieceZ
)

// MoveType represents the direction and magnitude of a turn.
type MoveType uint8

const (
	Normal MoveType = iota // 90 degrees clockwise
	Prime                  // 90 degrees counter-clockwise
	Double                 // 180 degrees
	NoMove                 // identity; also used as a stage marker
)

// Move is a single turn of some set of pieces.
//
// A move with Type NoMove does nothing. The pipeline uses the special
// value {PieceY, NoMove} to mark the boundary between solving stages.
type Move struct {
	Pieces Piece
	Type   MoveType
}

// quarterTurns maps a move type to its number of clockwise quarter turns.
func quarterTurns(t MoveType) uint8 {
	switch t {
	case Normal:
		return 1
	case Prime:
		return 3
	case Double:
		return 2
	default:
		return 0
	}
}

// CanMergeWith reports whether this move can merge with the next one.
// Moves merge only when both are real moves of the same pieces.
func (m Move) CanMergeWith(next Move) bool {
	if m.Type == NoMove || next.Type == NoMove {
		return false
	}
	return m.Pieces == next.Pieces
}

// Merge combines this move with the next one on the same pieces.
// The merged type follows quarter-turn addition mod 4; a sum of zero
// means the turns cancel and the result has type NoMove.
func (m Move) Merge(next Move) Move {
	switch (quarterTurns(m.Type) + quarterTurns(next.Type)) % 4 {
	case 1:
		return Move{m.Pieces, Normal}
	case 2:
		return Move{m.Pieces, Double}
	case 3:
		return Move{m.Pieces, Prime}
	default:
		return Move{m.Pieces, NoMove}
	}
}

// pieceLetters holds the canonical letter for each Piece value.
var pieceLetters = [...]string{
	PieceUp:        "U",
	PieceDown:      "D",
	PieceFront:     "F",
	PieceBack:      "B",
	PieceRight:     "R",
	PieceLeft:      "L",
	PieceFrontWide: "f",
	PieceBackWide:  "b",
	PieceUpWide:    "u",
	PieceDownWide:  "d",
	PieceRightWide: "r",
	PieceLeftWide:  "l",
	PieceM:         "M",
	PieceE:         "E",
	PieceS:         "S",
	PieceX:         "x",
	PieceY:         "y",
	PieceZ:         "z",
}

// Notation returns the standard cube notation for this move.
// Examples: R, R', R2, u2, M', y.
func (m Move) Notation() string {
	value := ""
	if int(m.Pieces) < len(pieceLetters) {
		value = pieceLetters[m.Pieces]
	}
	switch m.Type {
	case Prime:
		value += "'"
	case Double:
		value += "2"
	}
	return value
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}
