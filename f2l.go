package cubesolver

// findMatchingEdge returns the edge piece whose two sticker colors
// equal the colors of the two stickers adjacent to the given corner.
func findMatchingEdge(c *Cube, cornerLoc Location) Location {
	adj0, adj1 := c.AdjacentCorner(cornerLoc)
	cornerColor0 := c.Sticker(adj0)
	cornerColor1 := c.Sticker(adj1)

	for face := Up; face <= Left; face++ {
		// skip faces whose edges are all covered elsewhere
		if face == Down || face == Front || face == Back {
			continue
		}
		for idx := uint8(1); idx < 8; idx += 2 {
			// skip locations already covered from another face
			if face == Up && (idx == 3 || idx == 7) {
				continue
			}
			if (face == Right || face == Left) && idx == 5 {
				continue
			}

			edgeLoc := Location{face, idx}
			edgeColor0 := c.Sticker(edgeLoc)
			edgeColor1 := c.Sticker(c.AdjacentEdge(edgeLoc))

			if (cornerColor0 == edgeColor0 && cornerColor1 == edgeColor1) ||
				(cornerColor0 == edgeColor1 && cornerColor1 == edgeColor0) {
				return edgeLoc
			}
		}
	}
	// unreachable on a well-formed cube
	return Location{}
}

// findUnsolvedF2LPair locates an unsolved corner/edge pair. The first
// location is the corner's cross-color sticker, the second any sticker
// of the matching edge. The bool is false once all four pairs are
// solved. The cross color is assumed to face down.
func findUnsolvedF2LPair(c *Cube, crossColor Color) (Location, Location, bool) {
	for face := Up; face <= Left; face++ {
		for idx := uint8(0); idx < 8; idx += 2 {
			cornerLoc := Location{face, idx}
			if c.Sticker(cornerLoc) != crossColor {
				continue
			}
			edgeLoc := findMatchingEdge(c, cornerLoc)
			if !c.IsPieceSolved(cornerLoc) || !c.IsPieceSolved(edgeLoc) {
				return cornerLoc, edgeLoc, true
			}
		}
	}
	return Location{}, Location{}, false
}

// isSlotSolved reports whether the F2L slot under the given up-face
// corner index is solved.
func isSlotSolved(c *Cube, idx uint8) bool {
	switch idx {
	case 0:
		return c.IsPieceSolved(Location{Left, 6}) && c.IsPieceSolved(Location{Left, 7})
	case 2:
		return c.IsPieceSolved(Location{Right, 3}) && c.IsPieceSolved(Location{Right, 4})
	case 4:
		return c.IsPieceSolved(Location{Right, 6}) && c.IsPieceSolved(Location{Right, 7})
	case 6:
		return c.IsPieceSolved(Location{Left, 3}) && c.IsPieceSolved(Location{Left, 4})
	}
	return false
}

// isF2LPairPaired reports whether corner and edge are adjacent with
// their colors aligned.
func isF2LPairPaired(c *Cube, cornerLoc, edgeLoc Location) bool {
	cornerAdj0, cornerAdj1 := c.AdjacentCorner(cornerLoc)
	edgeAdjLoc := c.AdjacentEdge(edgeLoc)

	if cornerAdj0.Face == edgeLoc.Face && cornerAdj1.Face == edgeAdjLoc.Face {
		return c.Sticker(cornerAdj0) == c.Sticker(edgeLoc) &&
			c.Sticker(cornerAdj1) == c.Sticker(edgeAdjLoc)
	}
	if cornerAdj1.Face == edgeLoc.Face && cornerAdj0.Face == edgeAdjLoc.Face {
		return c.Sticker(cornerAdj1) == c.Sticker(edgeLoc) &&
			c.Sticker(cornerAdj0) == c.Sticker(edgeAdjLoc)
	}
	return false
}

// locateF2LPair re-finds the pair with the given edge colors after any
// move sequence. The first location is the corner's cross-color
// sticker, the second any sticker of the edge.
func locateF2LPair(c *Cube, pairColor0, pairColor1 Color) (Location, Location) {
	crossColor := c.Center(Down)
	var corner Location
	// the corner is always on the Up or Down face ring
	for face := Up; face <= Down; face++ {
		for idx := uint8(0); idx < 8; idx += 2 {
			loc := Location{face, idx}
			adj0, adj1 := c.AdjacentCorner(loc)
			color0 := c.Sticker(adj0)
			color1 := c.Sticker(adj1)

			switch {
			case c.Sticker(loc) == crossColor:
				if (pairColor0 == color0 && pairColor1 == color1) ||
					(pairColor1 == color0 && pairColor0 == color1) {
					corner = loc
				}
			case color0 == crossColor:
				if (pairColor0 == c.Sticker(loc) && pairColor1 == color1) ||
					(pairColor1 == c.Sticker(loc) && pairColor0 == color1) {
					corner = adj0
				}
			case color1 == crossColor:
				if (pairColor0 == color0 && pairColor1 == c.Sticker(loc)) ||
					(pairColor1 == color0 && pairColor0 == c.Sticker(loc)) {
					corner = adj1
				}
			}
		}
	}
	return corner, findMatchingEdge(c, corner)
}

// aboveUpIdxEdge returns the up-face index directly above a
// middle-layer edge location.
func aboveUpIdxEdge(loc Location) uint8 {
	switch loc.Face {
	case Front:
		if loc.Idx == 3 {
			return 4
		} else if loc.Idx == 7 {
			return 6
		}
	case Back:
		if loc.Idx == 3 {
			return 0
		} else if loc.Idx == 7 {
			return 2
		}
	case Right:
		if loc.Idx == 3 {
			return 2
		} else if loc.Idx == 7 {
			return 4
		}
	case Left:
		if loc.Idx == 3 {
			return 6
		} else if loc.Idx == 7 {
			return 0
		}
	}
	return 8
}

// upIdxCorner returns the up-face index of the corner position that
// holds the piece at the given location.
func upIdxCorner(loc Location) uint8 {
	switch loc.Face {
	case Up:
		return loc.Idx
	case Down:
		switch loc.Idx {
		case 0:
			return 6
		case 2:
			return 4
		case 4:
			return 2
		case 6:
			return 0
		}
	case Front:
		if loc.Idx == 0 || loc.Idx == 6 {
			return 6
		} else if loc.Idx == 2 || loc.Idx == 4 {
			return 4
		}
	case Back:
		if loc.Idx == 0 || loc.Idx == 6 {
			return 2
		} else if loc.Idx == 2 || loc.Idx == 4 {
			return 0
		}
	case Right:
		if loc.Idx == 0 || loc.Idx == 6 {
			return 4
		} else if loc.Idx == 2 || loc.Idx == 4 {
			return 2
		}
	case Left:
		if loc.Idx == 0 || loc.Idx == 6 {
			return 0
		} else if loc.Idx == 2 || loc.Idx == 4 {
			return 6
		}
	}
	return 8
}

// alignUpIdx turns the up face so a piece at fromIdx reaches
// targetIdx, recording the turn.
func alignUpIdx(c *Cube, solution *[]Move, fromIdx, targetIdx uint8) {
	if (fromIdx+2)%8 == targetIdx {
		appendTurn(c, solution, Up, Normal)
	} else if (fromIdx+4)%8 == targetIdx {
		appendTurn(c, solution, Up, Double)
	} else if (fromIdx+6)%8 == targetIdx {
		appendTurn(c, solution, Up, Prime)
	}
}

// bringF2LToTop moves both pieces of the pair into the top layer,
// setting up a three-move insert when possible.
func bringF2LToTop(c *Cube, cornerLoc, edgeLoc Location, solution *[]Move) {
	cornerLayer := layerOf(cornerLoc)
	edgeLayer := layerOf(edgeLoc)
	edgeAdjLoc := c.AdjacentEdge(edgeLoc)

	switch {
	case cornerLayer == LayerTop && edgeLayer == LayerTop:
		return

	case cornerLayer == LayerTop:
		// corner in top, edge in the middle
		if cornerLoc.Face == Up {
			// cross color faces up: check if aligning corner with edge pairs them
			cornerAdj0, cornerAdj1 := c.AdjacentCorner(cornerLoc)
			leftCornerSticker := c.Sticker(cornerAdj1)
			if cornerAdj0.Idx == 2 {
				leftCornerSticker = c.Sticker(cornerAdj0)
			}
			leftEdgeSticker := c.Sticker(edgeAdjLoc)
			if edgeLoc.Idx == 3 {
				leftEdgeSticker = c.Sticker(edgeLoc)
			}

			if leftCornerSticker == leftEdgeSticker {
				// align over the slot, then take the pair out together
				alignUpIdx(c, solution, cornerLoc.Idx, aboveUpIdxEdge(edgeLoc))

				rightFace := edgeAdjLoc.Face
				if edgeLoc.Idx == 7 {
					rightFace = edgeLoc.Face
				}
				appendTurn(c, solution, rightFace, Normal)
				appendTurn(c, solution, Up, Prime)
				appendTurn(c, solution, rightFace, Prime)
			} else {
				// keep the corner away from the slot, then extract the edge
				if cornerLoc.Idx == aboveUpIdxEdge(edgeLoc) || cornerLoc.Idx == (aboveUpIdxEdge(edgeLoc)+4)%8 {
					appendTurn(c, solution, Up, Normal)
				}

				rightFace := edgeAdjLoc.Face
				if edgeLoc.Idx == 7 {
					rightFace = edgeLoc.Face
				}
				appendTurn(c, solution, rightFace, Normal)
				appendTurn(c, solution, Up, Normal)
				appendTurn(c, solution, rightFace, Prime)
			}
		} else {
			// cross color faces sideways: put it on the edge's face but
			// not directly over it
			turns := uint8(0)
			for {
				if aboveUpIdxEdge(edgeLoc) != upIdxCorner(cornerLoc) &&
					(cornerLoc.Face == edgeLoc.Face || cornerLoc.Face == edgeAdjLoc.Face) {
					break
				}
				c.u()
				turns++
				cornerLoc.Face = AdjacentFace(cornerLoc.Face, DirY)
			}
			recordUTurns(solution, turns)

			cornerUpColor := c.Sticker(Location{Up, upIdxCorner(cornerLoc)})

			if cornerLoc.Idx == 0 {
				// cross color on the right side
				appendTurn(c, solution, cornerLoc.Face, Prime)

				if cornerUpColor == c.Sticker(c.AdjacentEdge(Location{cornerLoc.Face, 1})) {
					appendTurn(c, solution, Up, Normal)
				} else {
					appendTurn(c, solution, Up, Prime)
				}

				appendTurn(c, solution, cornerLoc.Face, Normal)
			} else if cornerLoc.Idx == 2 {
				// cross color on the left side
				appendTurn(c, solution, cornerLoc.Face, Normal)

				if cornerUpColor == c.Sticker(c.AdjacentEdge(Location{cornerLoc.Face, 1})) {
					appendTurn(c, solution, Up, Prime)
				} else {
					appendTurn(c, solution, Up, Normal)
				}

				appendTurn(c, solution, cornerLoc.Face, Prime)
			}
		}

	case edgeLayer == LayerTop:
		// edge in top, corner in the bottom
		edgeUpColor := c.Sticker(c.AdjacentEdge(edgeLoc))
		if edgeLoc.Face == Up {
			edgeUpColor = c.Sticker(edgeLoc)
		}

		if cornerLoc.Face == Down {
			cornerAdj0, cornerAdj1 := c.AdjacentCorner(cornerLoc)
			leftColor := c.Sticker(cornerAdj1)
			if cornerAdj0.Idx == 4 {
				leftColor = c.Sticker(cornerAdj0)
			}

			var targetIdx uint8
			if leftColor == edgeUpColor {
				// position the edge to the back right
				targetIdx = (upIdxCorner(cornerLoc) + 5) % 8
			} else {
				// position the edge to the back left
				targetIdx = (upIdxCorner(cornerLoc) + 3) % 8
			}

			edgeIdx := c.AdjacentEdge(edgeLoc).Idx
			if edgeLoc.Face == Up {
				edgeIdx = edgeLoc.Idx
			}
			alignUpIdx(c, solution, edgeIdx, targetIdx)

			// bring the corner up, pairing it with the edge
			if leftColor == edgeUpColor {
				leftFace := cornerAdj1.Face
				if cornerAdj0.Idx == 4 {
					leftFace = cornerAdj0.Face
				}
				appendTurn(c, solution, leftFace, Prime)
				appendTurn(c, solution, Up, Normal)
				appendTurn(c, solution, leftFace, Normal)
			} else {
				rightFace := cornerAdj1.Face
				if cornerAdj0.Idx == 6 {
					rightFace = cornerAdj0.Face
				}
				appendTurn(c, solution, rightFace, Normal)
				appendTurn(c, solution, Up, Prime)
				appendTurn(c, solution, rightFace, Prime)
			}
		} else if cornerLoc.Idx == 4 {
			// cross color facing left
			cornerAdjColor := c.Sticker(Location{AdjacentFace(cornerLoc.Face, DirYPrime), 6})

			var targetIdx uint8
			if cornerAdjColor == edgeUpColor {
				targetIdx = (upIdxCorner(cornerLoc) + 7) % 8
			} else {
				targetIdx = (upIdxCorner(cornerLoc) + 1) % 8
			}

			edgeIdx := c.AdjacentEdge(edgeLoc).Idx
			if edgeLoc.Face == Up {
				edgeIdx = edgeLoc.Idx
			}
			alignUpIdx(c, solution, edgeIdx, targetIdx)

			appendTurn(c, solution, cornerLoc.Face, Prime)
			appendTurn(c, solution, Up, Prime)
			appendTurn(c, solution, cornerLoc.Face, Normal)
		} else if cornerLoc.Idx == 6 {
			// cross color facing right
			cornerAdjColor := c.Sticker(Location{AdjacentFace(cornerLoc.Face, DirY), 4})

			var targetIdx uint8
			if cornerAdjColor == edgeUpColor {
				targetIdx = (upIdxCorner(cornerLoc) + 1) % 8
			} else {
				targetIdx = (upIdxCorner(cornerLoc) + 7) % 8
			}

			edgeIdx := c.AdjacentEdge(edgeLoc).Idx
			if edgeLoc.Face == Up {
				edgeIdx = edgeLoc.Idx
			}
			alignUpIdx(c, solution, edgeIdx, targetIdx)

			appendTurn(c, solution, cornerLoc.Face, Normal)
			appendTurn(c, solution, Up, Normal)
			appendTurn(c, solution, cornerLoc.Face, Prime)
		}

	default:
		// corner in bottom, edge in middle: extract the edge first.
		// If the corner shares the slot this splits them; either way
		// recurse on the pair's new position.
		color0 := c.Sticker(edgeLoc)
		color1 := c.Sticker(c.AdjacentEdge(edgeLoc))

		rightFace := edgeAdjLoc.Face
		if edgeLoc.Idx == 7 {
			rightFace = edgeLoc.Face
		}
		appendTurn(c, solution, rightFace, Normal)
		appendTurn(c, solution, Up, Prime)
		appendTurn(c, solution, rightFace, Prime)

		newCorner, newEdge := locateF2LPair(c, color0, color1)
		bringF2LToTop(c, newCorner, newEdge, solution)
	}
}

// moveToUnsolvedSlot turns the up face until the piece at idx sits
// over an unsolved slot, returning the number of clockwise turns made
// (4 when every slot is solved).
func moveToUnsolvedSlot(c *Cube, idx uint8, solution *[]Move) uint8 {
	if !isSlotSolved(c, idx) {
		return 0
	}
	if !isSlotSolved(c, (idx+2)%8) {
		appendTurn(c, solution, Up, Normal)
		return 1
	}
	if !isSlotSolved(c, (idx+4)%8) {
		appendTurn(c, solution, Up, Double)
		return 2
	}
	if !isSlotSolved(c, (idx+6)%8) {
		appendTurn(c, solution, Up, Prime)
		return 3
	}
	return 4
}

// findF2LSlot returns the up-face index directly above the slot whose
// side centers carry the two given colors, or 8 if there is none.
func findF2LSlot(c *Cube, color0, color1 Color) uint8 {
	for targetIdx := uint8(0); targetIdx < 8; targetIdx += 2 {
		adj0, adj1 := c.AdjacentCorner(Location{Up, targetIdx})
		cornerColor0 := c.Center(adj0.Face)
		cornerColor1 := c.Center(adj1.Face)

		if (cornerColor0 == color0 && cornerColor1 == color1) ||
			(cornerColor1 == color0 && cornerColor0 == color1) {
			return targetIdx
		}
	}
	return 8
}

// moveToSlot turns the up face until the piece at idx is over the F2L
// slot for the given colors, returning the slot's index.
func moveToSlot(c *Cube, idx uint8, color0, color1 Color, solution *[]Move) uint8 {
	targetIdx := findF2LSlot(c, color0, color1)
	alignUpIdx(c, solution, idx, targetIdx)
	return targetIdx
}

// splitF2LPair separates an adjacent but misaligned corner and edge
// without disturbing solved slots. When the cross color faces
// sideways with differing up colors, the split also sets up a
// three-move insert.
func splitF2LPair(c *Cube, cornerLoc, edgeLoc Location, solution *[]Move) {
	cornerUpIdx := upIdxCorner(cornerLoc)
	edgeUpIdx := c.AdjacentEdge(edgeLoc).Idx
	if edgeLoc.Face == Up {
		edgeUpIdx = edgeLoc.Idx
	}

	if (cornerUpIdx+1)%8 == edgeUpIdx {
		// edge to the left of the corner
		turnsNeeded := moveToUnsolvedSlot(c, (cornerUpIdx+6)%8, solution)
		cornerUpIdx = (cornerUpIdx + 2*turnsNeeded) % 8

		cornerAdj0, cornerAdj1 := c.AdjacentCorner(Location{Up, cornerUpIdx})
		rightFace := cornerAdj1.Face
		if cornerAdj0.Idx == 0 {
			rightFace = cornerAdj0.Face
		}

		appendTurn(c, solution, rightFace, Prime)
		if cornerLoc.Idx == 0 {
			appendTurn(c, solution, Up, Double)
		} else {
			appendTurn(c, solution, Up, Normal)
		}
		appendTurn(c, solution, rightFace, Normal)
	} else if (edgeUpIdx+1)%8 == cornerUpIdx {
		// edge to the right of the corner
		turnsNeeded := moveToUnsolvedSlot(c, (cornerUpIdx+2)%8, solution)
		cornerUpIdx = (cornerUpIdx + 2*turnsNeeded) % 8

		cornerAdj0, cornerAdj1 := c.AdjacentCorner(Location{Up, cornerUpIdx})
		leftFace := cornerAdj1.Face
		if cornerAdj0.Idx == 2 {
			leftFace = cornerAdj0.Face
		}

		appendTurn(c, solution, leftFace, Normal)
		if cornerLoc.Idx == 2 {
			appendTurn(c, solution, Up, Double)
		} else {
			appendTurn(c, solution, Up, Prime)
		}
		appendTurn(c, solution, leftFace, Prime)
	}
}

// prepF2LToInsert readies the pair for insertion: splits adjacent
// misaligned pieces, then, when the cross color faces sideways, sets
// up a three-move insert by aligning matching or opposite up colors.
func prepF2LToInsert(c *Cube, cornerLoc, edgeLoc Location, solution *[]Move) {
	if isF2LPairPaired(c, cornerLoc, edgeLoc) {
		return
	}

	color0 := c.Sticker(edgeLoc)
	color1 := c.Sticker(c.AdjacentEdge(edgeLoc))

	splitF2LPair(c, cornerLoc, edgeLoc, solution)

	cornerLoc, edgeLoc = locateF2LPair(c, color0, color1)

	// nothing more to do when the cross color faces up
	if cornerLoc.Face == Up {
		return
	}

	cornerUpColor := c.Sticker(Location{Up, upIdxCorner(cornerLoc)})
	edgeUpColor := c.Sticker(c.AdjacentEdge(edgeLoc))
	if edgeLoc.Face == Up {
		edgeUpColor = c.Sticker(edgeLoc)
	}

	if cornerUpColor == edgeUpColor {
		// matching up colors: pair the pieces directly
		if cornerLoc.Idx == 2 {
			moveToUnsolvedSlot(c, (upIdxCorner(cornerLoc)+2)%8, solution)

			cornerLoc, edgeLoc = locateF2LPair(c, color0, color1)

			targetIdx := (upIdxCorner(cornerLoc) + 7) % 8
			edgeUpIdx := c.AdjacentEdge(edgeLoc).Idx
			if edgeLoc.Face == Up {
				edgeUpIdx = edgeLoc.Idx
			}

			appendTurn(c, solution, cornerLoc.Face, Normal)

			// only a U or U2 is possible since the pieces are split
			if (edgeUpIdx+2)%8 == targetIdx {
				appendTurn(c, solution, Up, Normal)
			} else if (edgeUpIdx+4)%8 == targetIdx {
				appendTurn(c, solution, Up, Double)
			}

			appendTurn(c, solution, cornerLoc.Face, Prime)
		} else if cornerLoc.Idx == 0 {
			moveToUnsolvedSlot(c, (upIdxCorner(cornerLoc)+6)%8, solution)

			cornerLoc, edgeLoc = locateF2LPair(c, color0, color1)

			targetIdx := (upIdxCorner(cornerLoc) + 1) % 8
			edgeUpIdx := c.AdjacentEdge(edgeLoc).Idx
			if edgeLoc.Face == Up {
				edgeUpIdx = edgeLoc.Idx
			}

			appendTurn(c, solution, cornerLoc.Face, Prime)

			// only a U' or U2 is possible since the pieces are split
			if (edgeUpIdx+6)%8 == targetIdx {
				appendTurn(c, solution, Up, Prime)
			} else if (edgeUpIdx+4)%8 == targetIdx {
				appendTurn(c, solution, Up, Double)
			}

			appendTurn(c, solution, cornerLoc.Face, Normal)
		}
	} else {
		// differing up colors: set up unless already in position
		cornerUpIdx := upIdxCorner(cornerLoc)
		edgeUpIdx := c.AdjacentEdge(edgeLoc).Idx
		if edgeLoc.Face == Up {
			edgeUpIdx = edgeLoc.Idx
		}

		if cornerLoc.Idx == 2 && (cornerUpIdx+3)%8 != edgeUpIdx {
			moveToUnsolvedSlot(c, (upIdxCorner(cornerLoc)+2)%8, solution)

			cornerLoc, _ = locateF2LPair(c, color0, color1)

			appendTurn(c, solution, cornerLoc.Face, Normal)
			appendTurn(c, solution, Up, Prime)
			appendTurn(c, solution, cornerLoc.Face, Prime)
		} else if cornerLoc.Idx == 0 && (edgeUpIdx+3)%8 != cornerUpIdx {
			moveToUnsolvedSlot(c, (upIdxCorner(cornerLoc)+2)%8, solution)

			cornerLoc, _ = locateF2LPair(c, color0, color1)

			face := AdjacentFace(cornerLoc.Face, DirY)
			appendTurn(c, solution, face, Normal)
			appendTurn(c, solution, Up, Normal)
			appendTurn(c, solution, face, Prime)
		}
	}
}

// insertF2LPair drops the prepared pair into its slot.
func insertF2LPair(c *Cube, cornerLoc, edgeLoc Location, solution *[]Move) {
	color0 := c.Sticker(edgeLoc)
	color1 := c.Sticker(c.AdjacentEdge(edgeLoc))

	if isF2LPairPaired(c, cornerLoc, edgeLoc) {
		if cornerLoc.Idx == 2 {
			// cross color facing left
			moveToSlot(c, (upIdxCorner(cornerLoc)+6)%8, color0, color1, solution)

			newCorner, _ := locateF2LPair(c, color0, color1)

			face := OppositeFace(newCorner.Face)
			appendTurn(c, solution, face, Normal)
			appendTurn(c, solution, Up, Prime)
			appendTurn(c, solution, face, Prime)
		} else if cornerLoc.Idx == 0 {
			// cross color facing right
			moveToSlot(c, (upIdxCorner(cornerLoc)+2)%8, color0, color1, solution)

			newCorner, _ := locateF2LPair(c, color0, color1)

			face := OppositeFace(newCorner.Face)
			appendTurn(c, solution, face, Prime)
			appendTurn(c, solution, Up, Normal)
			appendTurn(c, solution, face, Normal)
		}
	} else if cornerLoc.Face == Up {
		// cross color facing up: align the edge with its center first
		toMatch := c.Sticker(c.AdjacentEdge(edgeLoc))
		currFace := c.AdjacentEdge(edgeLoc).Face
		if edgeLoc.Face != Up {
			toMatch = c.Sticker(edgeLoc)
			currFace = edgeLoc.Face
		}

		turns := uint8(0)
		for toMatch != c.Center(currFace) {
			c.u()
			currFace = AdjacentFace(currFace, DirY)
			turns++
		}

		edgeLoc = Location{currFace, 1}
		cornerLoc.Idx = (cornerLoc.Idx + turns*2) % 8
		recordUTurns(solution, turns)

		targetIdx := findF2LSlot(c, color0, color1)
		edgeUpIdx := c.AdjacentEdge(edgeLoc).Idx
		cornerUpIdx := upIdxCorner(cornerLoc)

		if (targetIdx+1)%8 == edgeUpIdx {
			// target slot to the right of the edge
			appendTurn(c, solution, edgeLoc.Face, Prime)

			if (cornerUpIdx+3)%8 == edgeUpIdx {
				appendTurn(c, solution, Up, Double)
			} else if (cornerUpIdx+5)%8 == edgeUpIdx {
				appendTurn(c, solution, Up, Prime)
			}

			appendTurn(c, solution, edgeLoc.Face, Normal)
			appendTurn(c, solution, Up, Prime)
			appendTurn(c, solution, edgeLoc.Face, Prime)
			appendTurn(c, solution, Up, Normal)
			appendTurn(c, solution, edgeLoc.Face, Normal)
		} else if (edgeUpIdx+1)%8 == targetIdx {
			// target slot to the left of the edge
			appendTurn(c, solution, edgeLoc.Face, Normal)

			if (cornerUpIdx+3)%8 == edgeUpIdx {
				appendTurn(c, solution, Up, Normal)
			} else if (cornerUpIdx+5)%8 == edgeUpIdx {
				appendTurn(c, solution, Up, Double)
			}

			appendTurn(c, solution, edgeLoc.Face, Prime)
			appendTurn(c, solution, Up, Normal)
			appendTurn(c, solution, edgeLoc.Face, Normal)
			appendTurn(c, solution, Up, Prime)
			appendTurn(c, solution, edgeLoc.Face, Prime)
		}
	} else {
		// cross color facing sideways: position over the slot and use
		// the three-move insert
		moveToSlot(c, upIdxCorner(cornerLoc), color0, color1, solution)

		cornerLoc, _ = locateF2LPair(c, color0, color1)

		if cornerLoc.Idx == 2 {
			appendTurn(c, solution, cornerLoc.Face, Prime)
			appendTurn(c, solution, Up, Prime)
			appendTurn(c, solution, cornerLoc.Face, Normal)
		} else if cornerLoc.Idx == 0 {
			appendTurn(c, solution, cornerLoc.Face, Normal)
			appendTurn(c, solution, Up, Normal)
			appendTurn(c, solution, cornerLoc.Face, Prime)
		}
	}
}

// solveF2LPair solves one corner/edge pair without disturbing solved
// slots.
func solveF2LPair(c *Cube, cornerLoc, edgeLoc Location, solution *[]Move) {
	// remember the pair's colors so it can be relocated between steps
	color0 := c.Sticker(edgeLoc)
	color1 := c.Sticker(c.AdjacentEdge(edgeLoc))

	bringF2LToTop(c, cornerLoc, edgeLoc, solution)
	cornerLoc, edgeLoc = locateF2LPair(c, color0, color1)

	prepF2LToInsert(c, cornerLoc, edgeLoc, solution)
	cornerLoc, edgeLoc = locateF2LPair(c, color0, color1)

	insertF2LPair(c, cornerLoc, edgeLoc, solution)
}

// solveF2L solves the four first-two-layers pairs. The cross must be
// solved and facing down.
func solveF2L(c *Cube, solution *[]Move) {
	color := c.Center(Down)

	for {
		cornerLoc, edgeLoc, ok := findUnsolvedF2LPair(c, color)
		if !ok {
			return
		}
		solveF2LPair(c, cornerLoc, edgeLoc, solution)
		markStage(solution)
	}
}
