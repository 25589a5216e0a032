package cubesolver

// ParseMove executes the single move written in standard notation and
// returns the corresponding Move. Face letters are case-sensitive
// (uppercase outer, lowercase wide); whole-cube rotations accept
// either case. Anything unrecognised leaves the cube untouched and
// returns a move of type NoMove.
func (c *Cube) ParseMove(token string) Move {
	if len(token) == 0 || len(token) > 2 {
		return Move{PieceUp, NoMove}
	}

	t := Normal
	if len(token) == 2 {
		switch token[1] {
		case '\'':
			t = Prime
		case '2':
			t = Double
		default:
			return Move{PieceUp, NoMove}
		}
	}

	var pieces Piece
	var cw, ccw func()
	switch token[0] {
	case 'U':
		pieces, cw, ccw = PieceUp, c.u, c.uPrime
	case 'D':
		pieces, cw, ccw = PieceDown, c.d, c.dPrime
	case 'F':
		pieces, cw, ccw = PieceFront, c.f, c.fPrime
	case 'B':
		pieces, cw, ccw = PieceBack, c.b, c.bPrime
	case 'R':
		pieces, cw, ccw = PieceRight, c.r, c.rPrime
	case 'L':
		pieces, cw, ccw = PieceLeft, c.l, c.lPrime
	case 'u':
		pieces, cw, ccw = PieceUpWide, c.uWide, c.uPrimeWide
	case 'd':
		pieces, cw, ccw = PieceDownWide, c.dWide, c.dPrimeWide
	case 'f':
		pieces, cw, ccw = PieceFrontWide, c.fWide, c.fPrimeWide
	case 'b':
		pieces, cw, ccw = PieceBackWide, c.bWide, c.bPrimeWide
	case 'r':
		pieces, cw, ccw = PieceRightWide, c.rWide, c.rPrimeWide
	case 'l':
		pieces, cw, ccw = PieceLeftWide, c.lWide, c.lPrimeWide
	case 'M':
		pieces, cw, ccw = PieceM, c.m, c.mPrime
	case 'E':
		pieces, cw, ccw = PieceE, c.e, c.ePrime
	case 'S':
		pieces, cw, ccw = PieceS, c.s, c.sPrime
	case 'X', 'x':
		pieces, cw, ccw = PieceX, c.x, c.xPrime
	case 'Y', 'y':
		pieces, cw, ccw = PieceY, c.y, c.yPrime
	case 'Z', 'z':
		pieces, cw, ccw = PieceZ, c.z, c.zPrime
	default:
		return Move{PieceUp, NoMove}
	}

	switch t {
	case Normal:
		cw()
	case Prime:
		ccw()
	case Double:
		cw()
		cw()
	}
	return Move{pieces, t}
}

// ReadMoves tokenises the string left to right and executes every
// recognised move on the cube. A token is two characters when the
// second is ' or 2, otherwise one. Unrecognised tokens (including
// whitespace and parentheses) are skipped silently.
func (c *Cube) ReadMoves(moves string) []Move {
	var parsed []Move
	idx := 0
	for idx < len(moves) {
		var move Move
		if idx < len(moves)-1 && (moves[idx+1] == '\'' || moves[idx+1] == '2') {
			move = c.ParseMove(moves[idx : idx+2])
			idx += 2
		} else {
			move = c.ParseMove(moves[idx : idx+1])
			idx++
		}
		if move.Type != NoMove {
			parsed = append(parsed, move)
		}
	}
	return parsed
}

// ExecuteMoves replays the given moves on the cube by re-parsing each
// move's notation.
func (c *Cube) ExecuteMoves(moves []Move) {
	for _, m := range moves {
		c.ParseMove(m.Notation())
	}
}
