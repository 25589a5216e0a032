package cubesolver

// numOLLShapes is the number of distinct up-face patterns possible
// when the first two layers are solved. Several of the 57 full OLL
// cases share a pattern and are told apart by their side stickers.
const numOLLShapes = 29

// ollShapes lists every up-face pattern, in decreasing order of the
// number of oriented stickers. Bit i is set when the sticker at up
// index i shows the top color. The matching case names follow the
// usual OLL nomenclature.
var ollShapes = [numOLLShapes]uint8{
	1<<0 | 1<<1 | 1<<2 | 1<<3 | 1<<5 | 1<<7, // OCLL3/4
	1<<0 | 1<<1 | 1<<3 | 1<<4 | 1<<5 | 1<<7, // OCLL5
	1<<0 | 1<<1 | 1<<2 | 1<<4 | 1<<6 | 1<<7, // E1
	1<<0 | 1<<2 | 1<<3 | 1<<4 | 1<<6 | 1<<7, // E2
	1<<0 | 1<<1 | 1<<3 | 1<<5 | 1<<7,        // OCLL6/7
	1<<1 | 1<<3 | 1<<5 | 1<<7,               // OCLL1/2
	1<<2 | 1<<3 | 1<<4 | 1<<7,               // T1/2
	1<<0 | 1<<2 | 1<<3 | 1<<7,               // C1/2
	1<<0 | 1<<4 | 1<<5 | 1<<7,               // W1/2
	1<<1 | 1<<2 | 1<<3 | 1<<4,               // P1/3
	1<<2 | 1<<3 | 1<<4 | 1<<5,               // P2/4
	1<<0 | 1<<1 | 1<<4 | 1<<7,               // F3/4
	1<<0 | 1<<2 | 1<<5 | 1<<7,               // A1/4
	1<<1 | 1<<4 | 1<<6 | 1<<7,               // A2/3
	1<<2 | 1<<3 | 1<<6 | 1<<7,               // B5
	1<<0 | 1<<3 | 1<<4 | 1<<7,               // B6
	1<<0 | 1<<2 | 1<<4 | 1<<6,               // O8
	1<<1 | 1<<2 | 1<<3,                      // S1/2
	1<<1 | 1<<4 | 1<<7,                      // F1/2
	1<<3 | 1<<6 | 1<<7,                      // K1/4
	1<<3 | 1<<4 | 1<<7,                      // K2/3
	1<<1 | 1<<6 | 1<<7,                      // B1/4
	1<<0 | 1<<5 | 1<<7,                      // B2/3
	1<<3 | 1<<7,                             // I1/2/3/4
	1<<1 | 1<<7,                             // L1/2/3/4/5/6
	1<<0 | 1<<2,                             // O6/7
	1<<0 | 1<<4,                             // O5
	1 << 0,                                  // O3/4
	0,                                       // O1/2
}

// ollMask expands an 8-bit shape into a face mask selecting the
// shape's slots, together with the same slots filled with color.
func ollMask(color Color, shape uint8) (mask, face uint64) {
	for i := uint8(0); i < 8; i++ {
		if shape&(1<<i) != 0 {
			mask |= uint64(0xff) << ((7 - i) * 8)
			face |= uint64(color) << ((7 - i) * 8)
		}
	}
	return mask, face
}

// rowMask builds a face mask selecting the left, middle and/or right
// sticker of a side face's top row, together with the same slots
// filled with color.
func rowMask(color Color, left, middle, right bool) (mask, row uint64) {
	if left {
		mask |= uint64(0xff) << 56
		row |= uint64(color) << 56
	}
	if middle {
		mask |= uint64(0xff) << 48
		row |= uint64(color) << 48
	}
	if right {
		mask |= uint64(0xff) << 40
		row |= uint64(color) << 40
	}
	return mask, row
}

// rowMatches reports whether the selected top-row stickers of the
// given face all show the given color.
func rowMatches(c *Cube, face Face, color Color, left, middle, right bool) bool {
	mask, row := rowMask(color, left, middle, right)
	return c.FaceWord(face)&mask == row
}

// shiftOLL rotates a shape one quarter turn clockwise by shifting its
// bits left two places with wrap-around.
func shiftOLL(shape uint8) uint8 {
	toSave := shape & (1<<6 | 1<<7)
	return (shape << 2) | (toSave >> 6)
}

// ollCaseFits checks the shape against the up face in all four
// orientations, returning the number of clockwise rotations at which
// it first matches.
func ollCaseFits(c *Cube, topColor Color, shape uint8) (bool, uint8) {
	for shifts := uint8(0); shifts < 4; shifts++ {
		mask, face := ollMask(topColor, shape)
		if c.FaceWord(Up)&mask == face {
			return true, shifts
		}
		shape = shiftOLL(shape)
	}
	return false, 0
}

// findOLLShape classifies the up face, returning the index of the
// matching shape and the rotation at which it matched.
func findOLLShape(c *Cube, topColor Color) (uint8, uint8) {
	for idx := uint8(0); idx < numOLLShapes; idx++ {
		if ok, shifts := ollCaseFits(c, topColor, ollShapes[idx]); ok {
			return idx, shifts
		}
	}
	// unreachable: the table covers every possible up face
	return numOLLShapes, 0
}

// solveOCLL34 handles the OCLL3 and OCLL4 cases.
func solveOCLL34(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	oppFace := RelativeFace(Back, DirY, 2+shifts)
	if rowMatches(c, oppFace, topColor, true, false, true) {
		// OCLL3
		if shifts == 1 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "R2 D R' U2 R D' R' U2 R'")
	} else {
		// OCLL4
		if shifts == 0 {
			appendTurn(c, solution, Up, Normal)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Double)
		}
		appendAlg(c, solution, "(r U R' U') (r' F R F')")
	}
}

// solveOCLL5 handles the OCLL5 case.
func solveOCLL5(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Front, DirY, shifts)
	if rowMatches(c, face, topColor, true, false, false) {
		if shifts == 1 {
			appendTurn(c, solution, Up, Prime)
		}
	} else {
		if shifts == 0 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 1 {
			appendTurn(c, solution, Up, Normal)
		}
	}
	appendAlg(c, solution, "y F' (r U R' U') r' F R")
}

// solveE1 handles the E1 case.
func solveE1(c *Cube, shifts uint8, solution *[]Move) {
	if shifts == 1 {
		appendTurn(c, solution, Up, Prime)
	} else if shifts == 2 {
		appendTurn(c, solution, Up, Double)
	} else if shifts == 3 {
		appendTurn(c, solution, Up, Normal)
	}
	appendAlg(c, solution, "(r U R' U') M (U R U' R')")
}

// solveE2 handles the E2 case.
func solveE2(c *Cube, shifts uint8, solution *[]Move) {
	if shifts == 1 {
		appendTurn(c, solution, Up, Normal)
	}
	appendAlg(c, solution, "(R U R' U') M' (U R U' r')")
}

// solveOCLL67 handles the OCLL6 and OCLL7 cases.
func solveOCLL67(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Back, DirY, shifts)
	if rowMatches(c, face, topColor, true, false, false) {
		// OCLL6
		if shifts == 0 {
			appendTurn(c, solution, Up, Normal)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Double)
		}
		appendAlg(c, solution, "R U2 R' U' R U' R'")
	} else {
		// OCLL7
		if shifts == 0 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 1 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "R U R' U R U2 R'")
	}
}

// solveOCLL12 handles the OCLL1 and OCLL2 cases.
func solveOCLL12(c *Cube, topColor Color, solution *[]Move) {
	// find the face with headlights
	face := Front
	for !rowMatches(c, face, topColor, true, false, true) {
		face = AdjacentFace(face, DirY)
	}
	if rowMatches(c, OppositeFace(face), topColor, true, false, true) {
		// OCLL1
		if face == Right || face == Left {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "(R U2 R') (U' R U R') (U' R U' R')")
	} else {
		// OCLL2
		if face == Back {
			appendTurn(c, solution, Up, Prime)
		} else if face == Right {
			appendTurn(c, solution, Up, Double)
		} else if face == Front {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "R U2 R2 U' R2 U' R2 U2 R")
	}
}

// solveT12 handles the T1 and T2 cases.
func solveT12(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	if shifts == 1 {
		appendTurn(c, solution, Up, Prime)
	} else if shifts == 2 {
		appendTurn(c, solution, Up, Double)
	} else if shifts == 3 {
		appendTurn(c, solution, Up, Normal)
	}

	if rowMatches(c, Front, topColor, true, true, false) {
		appendAlg(c, solution, "(R U R' U') (R' F R F')") // T1
	} else {
		appendAlg(c, solution, "F (R U R' U') F'") // T2
	}
}

// solveC12 handles the C1 and C2 cases.
func solveC12(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Front, DirY, shifts)
	if !rowMatches(c, face, topColor, true, true, true) {
		// C1
		if shifts == 0 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 1 {
			appendTurn(c, solution, Up, Normal)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Prime)
		}
		appendAlg(c, solution, "(R U R2' U') (R' F R U) R U' F'")
	} else {
		// C2
		if shifts == 0 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 1 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "R' U' (R' F R F') U R")
	}
}

// solveW12 handles the W1 and W2 cases.
func solveW12(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Right, DirY, shifts)
	if rowMatches(c, face, topColor, false, true, true) {
		// W1
		if shifts == 1 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "(R' U' R U') (R' U R U) l U' R' U x")
	} else {
		// W2
		if shifts == 0 {
			appendTurn(c, solution, Up, Normal)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Double)
		}
		appendAlg(c, solution, "(R U R' U) (R U' R' U') (R' F R F')")
	}
}

// solveP13 handles the P1 and P3 cases.
func solveP13(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Front, DirY, shifts)
	if rowMatches(c, face, topColor, true, true, false) {
		// P1
		if shifts == 1 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "(R' U' F) (U R U' R') F' R")
	} else {
		// P3
		if shifts == 0 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 1 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "R' U' F' U F R")
	}
}

// solveP24 handles the P2 and P4 cases.
func solveP24(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	if shifts == 1 {
		appendTurn(c, solution, Up, Prime)
	} else if shifts == 2 {
		appendTurn(c, solution, Up, Double)
	} else if shifts == 3 {
		appendTurn(c, solution, Up, Normal)
	}

	if rowMatches(c, Front, topColor, true, false, false) {
		appendAlg(c, solution, "R U B' (U' R' U) (R B R')") // P2
	} else {
		appendAlg(c, solution, "f (R U R' U') f'") // P4
	}
}

// solveF34 handles the F3 and F4 cases.
func solveF34(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Front, DirY, shifts)
	if !rowMatches(c, face, topColor, true, true, false) {
		// F3
		if shifts == 0 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 1 {
			appendTurn(c, solution, Up, Normal)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Prime)
		}
		appendAlg(c, solution, "(R U2') (R2' F R F') (R U2' R')")
	} else {
		// F4
		if shifts == 1 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "F (R U' R' U') (R U R' F')")
	}
}

// solveA14 handles the A1 and A4 cases.
func solveA14(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Front, DirY, shifts)
	if !rowMatches(c, face, topColor, true, false, true) {
		// A1
		if shifts == 0 {
			appendTurn(c, solution, Up, Normal)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Double)
		}
		appendAlg(c, solution, "(R U R' U') (R U' R') (F' U' F) (R U R')")
	} else {
		// A4
		if shifts == 1 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "(R' U' R U' R' U2R) F (R U R' U') F'")
	}
}

// solveA23 handles the A2 and A3 cases.
func solveA23(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	if shifts == 1 {
		appendTurn(c, solution, Up, Prime)
	} else if shifts == 2 {
		appendTurn(c, solution, Up, Double)
	} else if shifts == 3 {
		appendTurn(c, solution, Up, Normal)
	}

	if !rowMatches(c, Back, topColor, true, false, true) {
		appendAlg(c, solution, "F U (R U2 R' U') (R U2 R' U') F'") // A2
	} else {
		appendAlg(c, solution, "(R U R' U R U2' R') F (R U R' U') F'") // A3
	}
}

// solveB5 handles the B5 case.
func solveB5(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Back, DirY, shifts)
	if rowMatches(c, face, topColor, false, true, true) {
		if shifts == 1 {
			appendTurn(c, solution, Up, Prime)
		}
	} else {
		if shifts == 0 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 1 {
			appendTurn(c, solution, Up, Normal)
		}
	}
	appendAlg(c, solution, "(L F') (L' U' L U) F U' L'")
}

// solveB6 handles the B6 case.
func solveB6(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Back, DirY, shifts)
	if rowMatches(c, face, topColor, true, true, false) {
		if shifts == 1 {
			appendTurn(c, solution, Up, Prime)
		}
	} else {
		if shifts == 0 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 1 {
			appendTurn(c, solution, Up, Normal)
		}
	}
	appendAlg(c, solution, "(R' F) (R U R' U') F' U R")
}

// solveO8 handles the O8 case, which is rotationally symmetric.
func solveO8(c *Cube, solution *[]Move) {
	appendAlg(c, solution, "M U (R U R' U') M2' (U R U' r')")
}

// solveS12 handles the S1 and S2 cases.
func solveS12(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Back, DirY, shifts)
	if rowMatches(c, face, topColor, false, false, true) {
		// S1
		if shifts == 0 {
			appendTurn(c, solution, Up, Normal)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Double)
		}
		appendAlg(c, solution, "(r' U2' R U R' U r)")
	} else {
		// S2
		if shifts == 1 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "(r U2 R' U' R U' r')")
	}
}

// solveF12 handles the F1 and F2 cases.
func solveF12(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Front, DirY, shifts)
	if rowMatches(c, face, topColor, true, true, false) {
		// F1
		if shifts == 1 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "(R U R' U') R' F (R2 U R' U') F'")
	} else {
		// F2
		if shifts == 0 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 1 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "(R U R' U) (R' F R F') (R U2' R')")
	}
}

// solveK14 handles the K1 and K4 cases.
func solveK14(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Front, DirY, shifts)
	if rowMatches(c, face, topColor, false, true, true) {
		// K1
		if shifts == 1 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "(r U' r') (U' r U r') y' (R'U R)")
	} else {
		// K4
		if shifts == 0 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 1 {
			appendTurn(c, solution, Up, Normal)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Prime)
		}
		appendAlg(c, solution, "(r U r') (R U R' U') (r U' r')")
	}
}

// solveK23 handles the K2 and K3 cases.
func solveK23(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	if shifts == 1 {
		appendTurn(c, solution, Up, Prime)
	} else if shifts == 2 {
		appendTurn(c, solution, Up, Double)
	} else if shifts == 3 {
		appendTurn(c, solution, Up, Normal)
	}

	if rowMatches(c, Front, topColor, true, true, false) {
		appendAlg(c, solution, "(R' F R) (U R' F' R) (F U' F')") // K2
	} else {
		appendAlg(c, solution, "(r' U' r) (R' U' R U) (r' U r)") // K3
	}
}

// solveB14 handles the B1 and B4 cases.
func solveB14(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Front, DirY, shifts)
	if rowMatches(c, face, topColor, false, true, true) {
		// B1
		if shifts == 1 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "(r U R' U R U2' r')")
	} else {
		// B4
		if shifts == 0 {
			appendTurn(c, solution, Up, Normal)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Double)
		}
		appendAlg(c, solution, "M' (R' U' R U' R' U2 R) U' M")
	}
}

// solveB23 handles the B2 and B3 cases.
func solveB23(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Back, DirY, shifts)
	if rowMatches(c, face, topColor, true, true, false) {
		// B2
		if shifts == 1 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "(r' U' R U' R' U2 r)")
	} else {
		// B3
		if shifts == 0 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 1 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "r' (R2 U R' U R U2 R') U M'")
	}
}

// solveI1234 handles the I1, I2, I3 and I4 cases.
func solveI1234(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	// search for a continuous bar
	face := Front
	found := false
	for i := 0; i < 4; i++ {
		if rowMatches(c, face, topColor, true, true, true) {
			found = true
			break
		}
		face = AdjacentFace(face, DirY)
	}

	if found {
		if !rowMatches(c, OppositeFace(face), topColor, true, true, true) {
			// I2
			if face == Front {
				appendTurn(c, solution, Up, Prime)
			} else if face == Back {
				appendTurn(c, solution, Up, Normal)
			} else if face == Left {
				appendTurn(c, solution, Up, Double)
			}
			appendAlg(c, solution, "(R' U' R U' R' U) y' (R' U R) B")
		} else {
			// I3
			if shifts == 1 {
				appendTurn(c, solution, Up, Normal)
			}
			appendAlg(c, solution, "(R' F R U) (R U' R2' F') R2 U' R' (U R U R')")
		}
	} else {
		// search for headlights
		for !rowMatches(c, face, topColor, true, false, true) {
			face = AdjacentFace(face, DirY)
		}
		if !rowMatches(c, OppositeFace(face), topColor, true, false, true) {
			// I1
			if face == Front {
				appendTurn(c, solution, Up, Normal)
			} else if face == Back {
				appendTurn(c, solution, Up, Prime)
			} else if face == Right {
				appendTurn(c, solution, Up, Double)
			}
			appendAlg(c, solution, "f (R U R' U') (R U R' U') f'")
		} else {
			// I4
			if shifts == 1 {
				appendTurn(c, solution, Up, Normal)
			}
			appendAlg(c, solution, "r' U' r (U' R' U R) (U' R' U R) r' U r")
		}
	}
}

// solveL123456 handles the six L cases.
func solveL123456(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	// search for a continuous bar
	face := Front
	found := false
	for i := 0; i < 4; i++ {
		if rowMatches(c, face, topColor, true, true, true) {
			found = true
			break
		}
		face = AdjacentFace(face, DirY)
	}

	if !found {
		// L1 or L2: search for headlights
		for !rowMatches(c, face, topColor, true, false, true) {
			face = AdjacentFace(face, DirY)
		}
		if rowMatches(c, AdjacentFace(face, DirY), topColor, true, true, false) {
			// L1
			if shifts == 0 {
				appendTurn(c, solution, Up, Normal)
			} else if shifts == 2 {
				appendTurn(c, solution, Up, Prime)
			} else if shifts == 3 {
				appendTurn(c, solution, Up, Double)
			}
			appendAlg(c, solution, "F' (L' U' L U) (L' U' L U) F")
		} else {
			// L2
			if shifts == 1 {
				appendTurn(c, solution, Up, Prime)
			} else if shifts == 2 {
				appendTurn(c, solution, Up, Double)
			} else if shifts == 3 {
				appendTurn(c, solution, Up, Normal)
			}
			appendAlg(c, solution, "F (R U R' U') (R U R' U') F'")
		}
	} else if !rowMatches(c, OppositeFace(face), topColor, true, false, true) {
		// L3 or L4
		if rowMatches(c, AdjacentFace(face, DirYPrime), topColor, false, true, true) {
			// L3
			if shifts == 0 {
				appendTurn(c, solution, Up, Normal)
			} else if shifts == 2 {
				appendTurn(c, solution, Up, Prime)
			} else if shifts == 3 {
				appendTurn(c, solution, Up, Double)
			}
			appendAlg(c, solution, "r U' r2' U r2 U r2' U' r")
		} else {
			// L4
			if shifts == 0 {
				appendTurn(c, solution, Up, Double)
			} else if shifts == 1 {
				appendTurn(c, solution, Up, Normal)
			} else if shifts == 3 {
				appendTurn(c, solution, Up, Prime)
			}
			appendAlg(c, solution, "r' U r2 U' r2' U' r2 U r'")
		}
	} else {
		// L5 or L6
		if rowMatches(c, AdjacentFace(face, DirY), topColor, false, true, false) {
			// L5
			if shifts == 0 {
				appendTurn(c, solution, Up, Double)
			} else if shifts == 1 {
				appendTurn(c, solution, Up, Normal)
			} else if shifts == 3 {
				appendTurn(c, solution, Up, Prime)
			}
			appendAlg(c, solution, "(r' U' R U') (R' U R U') R' U2 r")
		} else {
			// L6
			if shifts == 0 {
				appendTurn(c, solution, Up, Normal)
			} else if shifts == 2 {
				appendTurn(c, solution, Up, Prime)
			} else if shifts == 3 {
				appendTurn(c, solution, Up, Double)
			}
			appendAlg(c, solution, "(r U R' U) (R U' R' U) R U2' r'")
		}
	}
}

// solveO67 handles the O6 and O7 cases.
func solveO67(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Front, DirY, shifts)
	if rowMatches(c, face, topColor, true, true, true) {
		// O6
		if shifts == 0 {
			appendTurn(c, solution, Up, Normal)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Double)
		}
		appendAlg(c, solution, "R U2' (R2' F R F') U2' M' (U R U' r') ")
	} else {
		// O7
		if shifts == 1 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "M U (R U R' U') M' (R' F R F')")
	}
}

// solveO5 handles the O5 case.
func solveO5(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Back, DirY, shifts)
	if rowMatches(c, face, topColor, true, true, false) {
		if shifts == 1 {
			appendTurn(c, solution, Up, Prime)
		}
	} else {
		if shifts == 0 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 1 {
			appendTurn(c, solution, Up, Normal)
		}
	}
	appendAlg(c, solution, "(R U R' U) (R' F R F') U2' (R' F R F')")
}

// solveO34 handles the O3 and O4 cases.
func solveO34(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	face := RelativeFace(Left, DirY, shifts)
	if rowMatches(c, face, topColor, false, true, true) {
		// O3
		if shifts == 0 {
			appendTurn(c, solution, Up, Double)
		} else if shifts == 1 {
			appendTurn(c, solution, Up, Normal)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Prime)
		}
		appendAlg(c, solution, "f (R U R' U') f' U' F (R U R' U') F'")
	} else {
		// O4
		if shifts == 0 {
			appendTurn(c, solution, Up, Normal)
		} else if shifts == 2 {
			appendTurn(c, solution, Up, Prime)
		} else if shifts == 3 {
			appendTurn(c, solution, Up, Double)
		}
		appendAlg(c, solution, "f (R U R' U') f' U F (R U R' U') F'")
	}
}

// solveO12 handles the O1 and O2 cases.
func solveO12(c *Cube, topColor Color, shifts uint8, solution *[]Move) {
	// find a side face whose whole top row shows the top color
	face := Front
	for !rowMatches(c, face, topColor, true, true, true) {
		face = AdjacentFace(face, DirY)
	}
	if rowMatches(c, OppositeFace(face), topColor, true, true, true) {
		// O1
		if face == Front || face == Back {
			appendTurn(c, solution, Up, Normal)
		}
		appendAlg(c, solution, "(R U2') (R2' F R F') U2' (R' F R F')")
	} else {
		// O2
		if face == Front {
			appendTurn(c, solution, Up, Normal)
		} else if face == Back {
			appendTurn(c, solution, Up, Prime)
		} else if face == Right {
			appendTurn(c, solution, Up, Double)
		}
		appendAlg(c, solution, "F (R U R' U') F' f (R U R' U') f'")
	}
}

// solveOLL orients the last layer. The first two layers must be
// solved with the cross color facing down.
func solveOLL(c *Cube, solution *[]Move) {
	topColor := c.Center(Up)

	// skip the stage entirely if the top is already oriented
	solved := true
	for i := uint8(0); i < 8; i++ {
		if c.Sticker(Location{Up, i}) != topColor {
			solved = false
			break
		}
	}
	if solved {
		return
	}

	shape, shifts := findOLLShape(c, topColor)

	switch shape {
	case 0:
		solveOCLL34(c, topColor, shifts, solution)
	case 1:
		solveOCLL5(c, topColor, shifts, solution)
	case 2:
		solveE1(c, shifts, solution)
	case 3:
		solveE2(c, shifts, solution)
	case 4:
		solveOCLL67(c, topColor, shifts, solution)
	case 5:
		solveOCLL12(c, topColor, solution)
	case 6:
		solveT12(c, topColor, shifts, solution)
	case 7:
		solveC12(c, topColor, shifts, solution)
	case 8:
		solveW12(c, topColor, shifts, solution)
	case 9:
		solveP13(c, topColor, shifts, solution)
	case 10:
		solveP24(c, topColor, shifts, solution)
	case 11:
		solveF34(c, topColor, shifts, solution)
	case 12:
		solveA14(c, topColor, shifts, solution)
	case 13:
		solveA23(c, topColor, shifts, solution)
	case 14:
		solveB5(c, topColor, shifts, solution)
	case 15:
		solveB6(c, topColor, shifts, solution)
	case 16:
		solveO8(c, solution)
	case 17:
		solveS12(c, topColor, shifts, solution)
	case 18:
		solveF12(c, topColor, shifts, solution)
	case 19:
		solveK14(c, topColor, shifts, solution)
	case 20:
		solveK23(c, topColor, shifts, solution)
	case 21:
		solveB14(c, topColor, shifts, solution)
	case 22:
		solveB23(c, topColor, shifts, solution)
	case 23:
		solveI1234(c, topColor, shifts, solution)
	case 24:
		solveL123456(c, topColor, shifts, solution)
	case 25:
		solveO67(c, topColor, shifts, solution)
	case 26:
		solveO5(c, topColor, shifts, solution)
	case 27:
		solveO34(c, topColor, shifts, solution)
	case 28:
		solveO12(c, topColor, shifts, solution)
	}

	markStage(solution)
}
