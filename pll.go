package cubesolver

// numPLLs is the number of distinct last-layer permutations, the
// already-solved layer aside.
const numPLLs = 21

// pllPerms encodes every permutation case as a packed word in the
// same slot layout as a face: slot i holds the up-face index the
// piece currently at i must move to. A slot equal to its own index
// means the piece stays.
var pllPerms = [numPLLs]uint64{
	0x0001020704030605, // Ua: 0 1 2 7 4 3 6 5
	0x0001020504070603, // Ub: 0 1 2 5 4 7 6 3
	0x0007020504030601, // Z:  0 7 2 5 4 3 6 1
	0x0005020704010603, // H:  0 5 2 7 4 1 6 3
	0x0201040300050607, // Aa: 2 1 4 3 0 5 6 7
	0x0401000302050607, // Ab: 4 1 0 3 2 5 6 7
	0x0601040302050007, // E:  6 1 4 3 2 5 0 7
	0x0007040302050601, // Ra: 0 7 4 3 2 5 6 1
	0x0201000504030607, // Rb: 2 1 0 5 4 3 6 7
	0x0207000304050601, // Ja: 2 7 0 3 4 5 6 1
	0x0001040502030607, // Jb: 0 1 4 5 2 3 6 7
	0x0001040702050603, // T:  0 1 4 7 2 5 6 3
	0x0005040302010607, // F:  0 5 4 3 2 1 6 7
	0x0403020100050607, // V:  4 3 2 1 0 5 6 7
	0x0407020300050601, // Y:  4 7 2 3 0 5 6 1
	0x0001060704050203, // Na: 0 1 6 7 4 5 2 3
	0x0401020700050603, // Nb: 4 1 2 7 0 5 6 3
	0x0207060104050003, // Ga: 2 7 6 1 4 5 0 3
	0x0603000704050201, // Gb: 6 3 0 7 4 5 2 1
	0x0601020500070403, // Gc: 6 1 2 5 0 7 4 3
	0x0207060304010005, // Gd: 2 7 6 3 4 1 0 5
}

// pllAlgs holds the algorithm for each permutation, index-matched to
// pllPerms.
var pllAlgs = [numPLLs]string{
	"(R U' R U) R U (R U' R' U') R2",                                  // Ua
	"R2 U (R U R' U') R' U' (R' U R')",                                // Ub
	"(M2' U M2' U) (M' U2) (M2' U2 M')",                               // Z
	"(M2' U M2') U2 (M2' U M2')",                                      // H
	"x (R' U R') D2 (R U' R') D2 R2 x'",                               // Aa
	"x R2' D2 (R U R') D2 (R U' R) x'",                                // Ab
	"x' (R U' R' D) (R U R' D') (R U R' D) (R U' R' D') x",            // E
	"(R U' R' U') (R U R D) (R' U' R D') (R' U2 R')",                  // Ra
	"(R' U2 R U2') R' F (R U R' U') R' F' R2",                         // Rb
	"(R' U L' U2) (R U' R' U2 R) L",                                   // Ja
	"(R U R' F') (R U R' U') R' F R2 U' R'",                           // Jb
	"(R U R' U') (R' F R2 U') R' U' (R U R' F')",                      // T
	"(R' U' F') (R U R' U') (R' F R2 U') (R' U' R U) (R' U R)",        // F
	"(R' U R' U') y (R' F' R2 U') (R' U R' F) R F",                    // V
	"F (R U' R' U') (R U R' F') (R U R' U') (R' F R F')",              // Y
	"(R U R' U) (R U R' F') (R U R' U') (R' F R2 U') R' U2 (R U' R')", // Na
	"(R' U R U') (R' F' U' F) (R U R' F) R' F' (R U' R)",              // Nb
	"R2 U (R' U R' U') (R U' R2) D U' (R' U R D')",                    // Ga
	"(F' U' F) (R2 u R' U) (R U' R u') R2'",                           // Gb
	"R2 U' (R U' R U) (R' U R2 D') (U R U' R') D",                     // Gc
	"D' (R U R' U') D (R2 U' R U') (R' U R' U) R2",                    // Gd
}

// sideFaceIdx maps a side face to its slot in the target-color array
// used during matching. Only the four side faces are valid.
func sideFaceIdx(face Face) uint8 {
	switch face {
	case Front:
		return 0
	case Back:
		return 1
	case Right:
		return 2
	case Left:
		return 3
	default:
		return 4
	}
}

// checkTarget requires that the sticker at loc can land on the given
// side face: the first sticker seen for a face fixes that face's
// color, and every later one must agree.
func checkTarget(c *Cube, faces *[4]Color, face Face, loc Location) bool {
	idx := sideFaceIdx(face)
	if faces[idx] == Empty {
		faces[idx] = c.Sticker(loc)
	} else if faces[idx] != c.Sticker(loc) {
		return false
	}
	return true
}

// shouldMoveTo checks whether the top-layer piece at currIdx is
// consistent with moving to targetIdx under the side-face coloring
// accumulated in faces.
func shouldMoveTo(c *Cube, faces *[4]Color, currIdx, targetIdx uint8) bool {
	if currIdx%2 == 0 {
		// corner piece
		adj0, adj1 := c.AdjacentCorner(Location{Up, currIdx})

		if (currIdx+4)%8 == targetIdx {
			// move to the opposite corner: both stickers cross over
			if !checkTarget(c, faces, OppositeFace(adj0.Face), adj0) {
				return false
			}
			if !checkTarget(c, faces, OppositeFace(adj1.Face), adj1) {
				return false
			}
		} else if (currIdx+2)%8 == targetIdx {
			// clockwise move to the adjacent corner
			if currIdx == 0 || currIdx == 4 {
				if !checkTarget(c, faces, OppositeFace(adj1.Face), adj0) {
					return false
				}
				if !checkTarget(c, faces, adj0.Face, adj1) {
					return false
				}
			} else {
				if !checkTarget(c, faces, adj1.Face, adj0) {
					return false
				}
				if !checkTarget(c, faces, OppositeFace(adj0.Face), adj1) {
					return false
				}
			}
		} else if currIdx >= 2 && currIdx-2 == targetIdx {
			// counter-clockwise move to the adjacent corner
			if currIdx == 0 || currIdx == 4 {
				if !checkTarget(c, faces, adj1.Face, adj0) {
					return false
				}
				if !checkTarget(c, faces, OppositeFace(adj0.Face), adj1) {
					return false
				}
			} else {
				if !checkTarget(c, faces, OppositeFace(adj1.Face), adj0) {
					return false
				}
				if !checkTarget(c, faces, adj0.Face, adj1) {
					return false
				}
			}
		}
	} else {
		// edge piece: its side sticker must fit the target face
		targetFace := c.AdjacentEdge(Location{Up, targetIdx}).Face
		adj := c.AdjacentEdge(Location{Up, currIdx})
		if !checkTarget(c, faces, targetFace, adj) {
			return false
		}
	}
	return true
}

// canPieceStay checks whether the piece at idx is consistent with
// keeping its position.
func canPieceStay(c *Cube, faces *[4]Color, idx uint8) bool {
	if idx%2 == 0 {
		adj0, adj1 := c.AdjacentCorner(Location{Up, idx})
		if !checkTarget(c, faces, adj0.Face, adj0) {
			return false
		}
		return checkTarget(c, faces, adj1.Face, adj1)
	}
	adj := c.AdjacentEdge(Location{Up, idx})
	return checkTarget(c, faces, adj.Face, adj)
}

// pllCaseMatches checks the permutation against the cube with no
// rotation applied. Matching accumulates a single consistent
// relabelling of the four side faces; any disagreement rejects the
// case.
func pllCaseMatches(c *Cube, pll uint64) bool {
	faces := [4]Color{Empty, Empty, Empty, Empty}
	for currIdx := uint8(0); currIdx < 8; currIdx++ {
		targetIdx := uint8(pll >> ((7 - currIdx) * 8))
		if targetIdx == currIdx {
			if !canPieceStay(c, &faces, currIdx) {
				return false
			}
		} else if !shouldMoveTo(c, &faces, currIdx, targetIdx) {
			return false
		}
	}
	return true
}

// pllCaseFits checks the permutation against the cube in all four
// orientations, returning the number of clockwise rotations at which
// it first matches.
func pllCaseFits(c *Cube, pll uint64) (bool, uint8) {
	for shifts := uint8(0); shifts < 4; shifts++ {
		if pllCaseMatches(c, pll) {
			return true, shifts
		}
		pll = rotateRight(pll, 16)
	}
	return false, 0
}

// findPLLType classifies the top layer, returning the index of the
// matching permutation and the rotation at which it matched. An index
// of numPLLs means the cube is at most one up-face turn from solved.
func findPLLType(c *Cube) (uint8, uint8) {
	for idx := uint8(0); idx < numPLLs; idx++ {
		if ok, shifts := pllCaseFits(c, pllPerms[idx]); ok {
			return idx, shifts
		}
	}
	return numPLLs, 0
}

// solvePLL permutes the last layer. The first two layers must be
// solved and the last layer oriented.
func solvePLL(c *Cube, solution *[]Move) {
	pll, shifts := findPLLType(c)

	// pre-algorithm up-face adjustment
	if shifts == 1 {
		appendTurn(c, solution, Up, Prime)
	} else if shifts == 2 {
		appendTurn(c, solution, Up, Double)
	} else if shifts == 3 {
		appendTurn(c, solution, Up, Normal)
	}

	if pll != numPLLs {
		appendAlg(c, solution, pllAlgs[pll])
	}

	// final adjustment of the up face
	turns := uint8(0)
	for turns < 4 && !c.IsSolved() {
		c.u()
		turns++
	}
	recordUTurns(solution, turns%4)

	markStage(solution)
}
