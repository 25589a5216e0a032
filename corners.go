package cubesolver

// findUnsolvedCorner returns the location of an unsolved corner
// sticker of the given color. The second return is false once every
// first-layer corner is solved.
func findUnsolvedCorner(c *Cube, color Color) (Location, bool) {
	for face := Up; face <= Left; face++ {
		for idx := uint8(0); idx < 7; idx += 2 {
			loc := Location{face, idx}
			if c.Sticker(loc) == color && !c.IsPieceSolved(loc) {
				return loc, true
			}
		}
	}
	return Location{}, false
}

// bringCornerToTop lifts the corner at piece into the top layer
// without disturbing the cross or other solved corners. Returns the
// piece's new location.
func bringCornerToTop(c *Cube, piece Location, solution *[]Move) Location {
	switch layerOf(piece) {
	case LayerTop:
		return piece

	case LayerBottom:
		if piece.Face == Down {
			// cross color faces down but sits in the wrong slot
			adj0, adj1 := c.AdjacentCorner(piece)
			adj := adj1
			if adj0.Idx == 6 {
				adj = adj0
			}

			appendTurn(c, solution, adj.Face, Normal)
			appendTurn(c, solution, Up, Prime)
			appendTurn(c, solution, adj.Face, Prime)
			return Location{adj.Face, 0}
		}
		// cross color faces sideways in the bottom layer
		if piece.Idx == 4 {
			appendTurn(c, solution, piece.Face, Prime)
			appendTurn(c, solution, Up, Prime)
			appendTurn(c, solution, piece.Face, Normal)
			_, adj1 := c.AdjacentCorner(piece)
			return Location{adj1.Face, 2}
		} else if piece.Idx == 6 {
			appendTurn(c, solution, piece.Face, Normal)
			appendTurn(c, solution, Up, Normal)
			appendTurn(c, solution, piece.Face, Prime)
			_, adj1 := c.AdjacentCorner(piece)
			return Location{adj1.Face, 0}
		}
		return piece

	default:
		// corners never sit in the middle layer
		return piece
	}
}

// isCornerOverSlot reports whether the corner at piece sits directly
// over the slot it belongs in.
func isCornerOverSlot(c *Cube, piece Location) bool {
	adj0, adj1 := c.AdjacentCorner(piece)
	if piece.Face == Up {
		// cross color up: the opposite centers must match the side stickers
		return c.Center(adj0.Face) == c.Sticker(adj1) &&
			c.Center(adj1.Face) == c.Sticker(adj0)
	}
	// otherwise the up-facing sticker is always the first adjacent
	return c.Center(piece.Face) == c.Sticker(adj0) &&
		c.Center(adj1.Face) == c.Sticker(adj1)
}

// moveCornerOverSlot turns the up face until the corner sits over its
// slot. The piece must be a corner in the top layer. Returns the
// piece's new location.
func moveCornerOverSlot(c *Cube, piece Location, solution *[]Move) Location {
	turns := uint8(0)
	for !isCornerOverSlot(c, piece) {
		c.u()
		switch piece.Face {
		case Front:
			piece.Face = Left
		case Left:
			piece.Face = Back
		case Back:
			piece.Face = Right
		case Right:
			piece.Face = Front
		case Up:
			piece.Idx = (piece.Idx + 2) % 8
		}
		turns++
	}
	recordUTurns(solution, turns)
	return piece
}

// insertCorner drops the corner into the slot below it. The three
// orientations each get their own insertion; a cross color facing up
// is first re-oriented and then inserted recursively.
func insertCorner(c *Cube, piece Location, solution *[]Move) {
	if piece.Face == Up {
		adj0, adj1 := c.AdjacentCorner(piece)
		adj := adj1
		if adj0.Idx == 0 {
			adj = adj0
		}
		appendTurn(c, solution, adj.Face, Normal)
		*solution = append(*solution, c.ParseMove("U2"))
		appendTurn(c, solution, adj.Face, Prime)
		appendTurn(c, solution, Up, Prime)
		insertCorner(c, Location{adj.Face, 0}, solution)
	} else if piece.Idx == 0 {
		appendTurn(c, solution, piece.Face, Normal)
		appendTurn(c, solution, Up, Normal)
		appendTurn(c, solution, piece.Face, Prime)
	} else if piece.Idx == 2 {
		appendTurn(c, solution, piece.Face, Prime)
		appendTurn(c, solution, Up, Prime)
		appendTurn(c, solution, piece.Face, Normal)
	}
}

// solveCorner solves a single first-layer corner.
func solveCorner(c *Cube, piece Location, solution *[]Move) {
	if c.IsPieceSolved(piece) {
		return
	}

	piece = bringCornerToTop(c, piece, solution)
	piece = moveCornerOverSlot(c, piece, solution)
	insertCorner(c, piece, solution)
}

// solveCorners solves the four first-layer corners. The cross must be
// solved and facing down.
func solveCorners(c *Cube, solution *[]Move) {
	color := c.Center(Down)

	for {
		loc, ok := findUnsolvedCorner(c, color)
		if !ok {
			return
		}
		solveCorner(c, loc, solution)
		markStage(solution)
	}
}
