package cubesolver

// findUnsolved2LEdge returns the location of an unsolved second-layer
// edge. The given color is the one to avoid: any edge carrying the up
// color belongs to the last layer, not the second. The second return
// is false once the middle layer is done.
func findUnsolved2LEdge(c *Cube, color Color) (Location, bool) {
	// the scan must start at the Up face so top-layer copies of a
	// middle edge are preferred over their slotted twins
	for face := Up; face <= Left; face++ {
		for idx := uint8(1); idx < 8; idx += 2 {
			loc := Location{face, idx}
			if c.Sticker(loc) != color &&
				c.Sticker(c.AdjacentEdge(loc)) != color &&
				!c.IsPieceSolved(loc) {
				return loc, true
			}
		}
	}
	return Location{}, false
}

// bring2LEdgeToTopLayer lifts the edge at piece into the top layer
// without disturbing the first layer or solved second-layer edges.
// Returns the piece's new location.
func bring2LEdgeToTopLayer(c *Cube, piece Location, solution *[]Move) Location {
	switch layerOf(piece) {
	case LayerTop:
		return piece

	case LayerMiddle:
		leftFace := c.AdjacentEdge(piece).Face
		if piece.Idx == 3 {
			leftFace = piece.Face
		}
		rightFace := c.AdjacentEdge(piece).Face
		if piece.Idx == 7 {
			rightFace = piece.Face
		}

		// right sexy move
		appendTurn(c, solution, rightFace, Normal)
		appendTurn(c, solution, Up, Normal)
		appendTurn(c, solution, rightFace, Prime)
		appendTurn(c, solution, Up, Prime)
		// left sexy move (mostly)
		appendTurn(c, solution, leftFace, Prime)
		appendTurn(c, solution, Up, Prime)
		appendTurn(c, solution, leftFace, Normal)

		// the piece ends up at index 1 of the face opposite leftFace
		return Location{OppositeFace(leftFace), 1}

	default:
		// the first layer is solved, so nothing lives in the bottom
		return piece
	}
}

// align2LEdge turns the up face until the edge's outward sticker sits
// over its matching center. Returns the piece's new location.
func align2LEdge(c *Cube, piece Location, solution *[]Move) Location {
	toMatch := c.Sticker(c.AdjacentEdge(piece))
	currFace := c.AdjacentEdge(piece).Face
	if piece.Face != Up {
		toMatch = c.Sticker(piece)
		currFace = piece.Face
	}

	turns := uint8(0)
	for toMatch != c.Center(currFace) {
		c.u()
		currFace = AdjacentFace(currFace, DirY)
		turns++
	}
	recordUTurns(solution, turns)

	return Location{currFace, 1}
}

// insert2LEdge drops the aligned edge into its slot, to the left or
// right depending on the top sticker's color.
func insert2LEdge(c *Cube, piece Location, solution *[]Move) {
	topPiece := piece
	if piece.Face != Up {
		topPiece = c.AdjacentEdge(piece)
	}
	sidePiece := piece
	if piece.Face == Up {
		sidePiece = c.AdjacentEdge(piece)
	}

	leftFace := AdjacentFace(sidePiece.Face, DirY)
	rightFace := AdjacentFace(sidePiece.Face, DirYPrime)

	if c.Center(rightFace) == c.Sticker(topPiece) {
		// insert to the right
		appendTurn(c, solution, Up, Normal)
		appendTurn(c, solution, rightFace, Normal)
		appendTurn(c, solution, Up, Prime)
		appendTurn(c, solution, rightFace, Prime)
		appendTurn(c, solution, Up, Prime)
		appendTurn(c, solution, sidePiece.Face, Prime)
		appendTurn(c, solution, Up, Normal)
		appendTurn(c, solution, sidePiece.Face, Normal)
	} else if c.Center(leftFace) == c.Sticker(topPiece) {
		// insert to the left
		appendTurn(c, solution, Up, Prime)
		appendTurn(c, solution, leftFace, Prime)
		appendTurn(c, solution, Up, Normal)
		appendTurn(c, solution, leftFace, Normal)
		appendTurn(c, solution, Up, Normal)
		appendTurn(c, solution, sidePiece.Face, Normal)
		appendTurn(c, solution, Up, Prime)
		appendTurn(c, solution, sidePiece.Face, Prime)
	}
}

// solveSecondLayerEdge solves a single second-layer edge.
func solveSecondLayerEdge(c *Cube, piece Location, solution *[]Move) {
	if c.IsPieceSolved(piece) {
		return
	}

	piece = bring2LEdgeToTopLayer(c, piece, solution)
	piece = align2LEdge(c, piece, solution)
	insert2LEdge(c, piece, solution)
}

// solveSecondLayer solves the middle-layer edges. The cross must face
// down and the whole first layer must be solved.
func solveSecondLayer(c *Cube, solution *[]Move) {
	// edges carrying the up color belong to the last layer
	color := c.Center(Up)

	for {
		loc, ok := findUnsolved2LEdge(c, color)
		if !ok {
			return
		}
		solveSecondLayerEdge(c, loc, solution)
		markStage(solution)
	}
}
