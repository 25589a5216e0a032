package cubesolver

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.ExecuteMoves([]cubesolver.Move{cubesolver.MoveR, cubesolver.MoveU, cubesolver.MoveRPrime, cubesolver.MoveUPrime})
var (
	// Right face moves
	MoveR      = Move{PieceRight, Normal}
	MoveRPrime = Move{PieceRight, Prime}
	MoveR2     = Move{PieceRight, Double}

	// Left face moves
	MoveL      = Move{PieceLeft, Normal}
	MoveLPrime = Move{PieceLeft, Prime}
	MoveL2     = Move{PieceLeft, Double}

	// Up face moves
	MoveU      = Move{PieceUp, Normal}
	MoveUPrime = Move{PieceUp, Prime}
	MoveU2     = Move{PieceUp, Double}

	// Down face moves
	MoveD      = Move{PieceDown, Normal}
	MoveDPrime = Move{PieceDown, Prime}
	MoveD2     = Move{PieceDown, Double}

	// Front face moves
	MoveF      = Move{PieceFront, Normal}
	MoveFPrime = Move{PieceFront, Prime}
	MoveF2     = Move{PieceFront, Double}

	// Back face moves
	MoveB      = Move{PieceBack, Normal}
	MoveBPrime = Move{PieceBack, Prime}
	MoveB2     = Move{PieceBack, Double}
)

// StageMarker separates solving stages in a raw solution.
// The simplifier drops it in optimized mode; the formatter renders it
// as a line break.
var StageMarker = Move{PieceY, NoMove}

// SexyMove: R U R' U' - one of the most common algorithm fragments.
var SexyMove = []Move{MoveR, MoveU, MoveRPrime, MoveUPrime}

// TPerm is the T permutation, used by the last-layer stage.
var TPerm = []Move{
	MoveR, MoveU, MoveRPrime, MoveUPrime,
	MoveRPrime, MoveF, MoveR2, MoveUPrime,
	MoveRPrime, MoveUPrime, MoveR, MoveU, MoveRPrime, MoveFPrime,
}
