package cubesolver

// findUnsolvedCrossEdge returns the location of an unsolved edge
// sticker of the cross color, scanning faces in order. The second
// return is false once every cross edge is solved.
func findUnsolvedCrossEdge(c *Cube, color Color) (Location, bool) {
	for face := Up; face <= Left; face++ {
		for idx := uint8(1); idx < 8; idx += 2 {
			loc := Location{face, idx}
			if c.Sticker(loc) == color && !c.IsPieceSolved(loc) {
				return loc, true
			}
		}
	}
	return Location{}, false
}

// bringEdgeToTopLayer lifts the cross edge at piece into the top layer
// without disturbing any cross edge that is already in place. The
// given location always points at the cross-color sticker, and the
// cross center is assumed to face down. The cross color is not
// necessarily facing up afterwards.
//
// Returns the piece's new location.
func bringEdgeToTopLayer(c *Cube, piece Location, solution *[]Move) Location {
	switch layerOf(piece) {
	case LayerTop:
		return piece

	case LayerBottom:
		if piece.Face != Down {
			// facing sideways in the bottom layer: twist its face twice
			appendTurn(c, solution, piece.Face, Double)
			return Location{piece.Face, 1}
		}
		// facing the bottom: twist the adjacent face twice
		appendTurn(c, solution, c.AdjacentEdge(piece).Face, Double)
		newIdx := piece.Idx
		if piece.Idx != 3 && piece.Idx != 7 {
			newIdx = 6 - piece.Idx
		}
		return Location{Up, newIdx}

	default:
		adj := c.AdjacentEdge(piece)
		if !c.IsPieceSolved(Location{adj.Face, 5}) {
			// one-move lift, cross color ends facing up
			if adj.Idx == 3 {
				appendTurn(c, solution, adj.Face, Prime)
			} else if adj.Idx == 7 {
				appendTurn(c, solution, adj.Face, Normal)
			}
			switch adj.Face {
			case Front:
				return Location{Up, 5}
			case Back:
				return Location{Up, 1}
			case Right:
				return Location{Up, 3}
			case Left:
				return Location{Up, 7}
			default:
				return Location{Up, 0}
			}
		}
		if !c.IsPieceSolved(Location{piece.Face, 5}) {
			// one-move lift, cross color ends facing sideways
			if piece.Idx == 3 {
				appendTurn(c, solution, piece.Face, Prime)
			} else if piece.Idx == 7 {
				appendTurn(c, solution, piece.Face, Normal)
			}
			return Location{piece.Face, 1}
		}

		// solved cross edges sit below on both sides; lift in three
		// moves that restore them, leaving the cross color facing up
		if adj.Idx == 3 {
			appendTurn(c, solution, adj.Face, Prime)
			appendTurn(c, solution, Up, Normal)
			appendTurn(c, solution, adj.Face, Normal)
		} else if adj.Idx == 7 {
			appendTurn(c, solution, adj.Face, Normal)
			appendTurn(c, solution, Up, Normal)
			appendTurn(c, solution, adj.Face, Prime)
		}
		var newIdx uint8
		switch adj.Face {
		case Front:
			newIdx = 7
		case Back:
			newIdx = 3
		case Right:
			newIdx = 5
		case Left:
			newIdx = 1
		}
		return Location{Up, newIdx}
	}
}

// moveEdgeOverCenter turns the up face until the edge's non-cross
// sticker sits over its matching center. The piece must already be in
// the top layer. Returns the piece's new location.
func moveEdgeOverCenter(c *Cube, piece Location, solution *[]Move) Location {
	turns := uint8(0)
	if piece.Face == Up {
		adj := c.AdjacentEdge(piece)
		for c.Sticker(adj) != c.Center(adj.Face) {
			c.u()
			piece.Idx = (piece.Idx + 2) % 8
			adj = c.AdjacentEdge(piece)
			turns++
		}
	} else {
		targetColor := c.Sticker(c.AdjacentEdge(piece))
		for targetColor != c.Center(piece.Face) {
			c.u()
			piece.Face = AdjacentFace(piece.Face, DirY)
			turns++
		}
	}
	recordUTurns(solution, turns)
	return piece
}

// insertCrossEdge drops the edge into the cross. The piece must be in
// the top layer directly over its slot; the insertion differs by
// whether the cross color faces up or sideways.
func insertCrossEdge(c *Cube, piece Location, solution *[]Move) {
	if piece.Face == Up {
		appendTurn(c, solution, c.AdjacentEdge(piece).Face, Double)
		return
	}
	// cross color faces sideways: insert while flipping orientation
	appendTurn(c, solution, Up, Prime)
	adjFace := c.AdjacentEdge(Location{piece.Face, 3}).Face
	appendTurn(c, solution, adjFace, Prime)
	appendTurn(c, solution, piece.Face, Normal)
	appendTurn(c, solution, adjFace, Normal)
}

// solveCrossPiece solves a single cross edge. The location points at
// the cross-color sticker and the cross center already faces down.
func solveCrossPiece(c *Cube, piece Location, solution *[]Move) {
	if c.IsPieceSolved(piece) {
		return
	}

	piece = bringEdgeToTopLayer(c, piece, solution)
	piece = moveEdgeOverCenter(c, piece, solution)
	insertCrossEdge(c, piece, solution)
}

// orientDown rotates the whole cube so the given color faces down.
func orientDown(c *Cube, color Color, solution *[]Move) {
	switch color {
	case c.Center(Down):
		return
	case c.Center(Up):
		*solution = append(*solution, c.ParseMove("z2"))
	case c.Center(Front):
		*solution = append(*solution, c.ParseMove("x'"))
	case c.Center(Back):
		*solution = append(*solution, c.ParseMove("x"))
	case c.Center(Right):
		*solution = append(*solution, c.ParseMove("z"))
	case c.Center(Left):
		*solution = append(*solution, c.ParseMove("z'"))
	}
}

// solveCross solves the four cross edges of whichever color currently
// faces down. Nothing about the cube is assumed.
func solveCross(c *Cube, solution *[]Move) {
	color := c.Center(Down)
	orientDown(c, color, solution)

	for {
		loc, ok := findUnsolvedCrossEdge(c, color)
		if !ok {
			return
		}
		solveCrossPiece(c, loc, solution)
		markStage(solution)
	}
}
