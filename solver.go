package cubesolver

import "strings"

// Layer identifies a horizontal third of the cube.
type Layer uint8

const (
	LayerBottom Layer = iota
	LayerMiddle
	LayerTop
)

// layerOf returns the layer the given sticker location lies in.
func layerOf(l Location) Layer {
	switch {
	case l.Face == Down:
		return LayerBottom
	case l.Face == Up:
		return LayerTop
	case l.Idx < 3:
		return LayerTop
	case 3 < l.Idx && l.Idx < 7:
		return LayerBottom
	default:
		return LayerMiddle
	}
}

// CleanSolution merges adjacent mergeable moves in a single left to
// right pass, dropping turns that cancel out.
//
// With optimized set, stage markers (and any other NoMove entries) are
// dropped as well, which lets turns on either side of a stage boundary
// cancel. The pass is not iterated: a merge result that becomes
// mergeable with the new list tail is left as is, so callers wanting a
// fixpoint run CleanSolution again.
func CleanSolution(solution []Move, optimized bool) []Move {
	cleaned := make([]Move, 0, len(solution))
	for _, move := range solution {
		if len(cleaned) == 0 {
			cleaned = append(cleaned, move)
			continue
		}
		tail := cleaned[len(cleaned)-1]
		if tail.CanMergeWith(move) {
			cleaned = cleaned[:len(cleaned)-1]
			if merged := tail.Merge(move); merged.Type != NoMove {
				cleaned = append(cleaned, merged)
			}
		} else if !optimized || move.Type != NoMove {
			cleaned = append(cleaned, move)
		}
	}
	return cleaned
}

// SolutionToString renders the solution as space-separated notation,
// skipping identity moves.
func SolutionToString(solution []Move) string {
	var sb strings.Builder
	for _, move := range solution {
		if move.Type != NoMove {
			sb.WriteString(move.Notation())
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

// FormatSolution renders the solution with one line per solving stage:
// stage markers become line breaks and other identity moves are
// skipped.
func FormatSolution(solution []Move) string {
	var sb strings.Builder
	for _, move := range solution {
		if move.Type != NoMove {
			sb.WriteString(move.Notation())
			sb.WriteString(" ")
		} else if move.Pieces == PieceY {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// Solve solves the cube with the CFOP pipeline: cross, first two
// layers, orient last layer, permute last layer. The cube is mutated
// to the solved state and the recorded solution is returned after a
// single non-optimized cleaning pass, with stage markers preserved.
//
// The input must be a state reachable from solved by legal moves;
// behaviour on any other state is undefined.
func Solve(c *Cube) []Move {
	var solution []Move

	solveCross(c, &solution)
	solveF2L(c, &solution)
	solveOLL(c, &solution)
	solvePLL(c, &solution)

	return CleanSolution(solution, false)
}

// SolveBeginner solves the cube layer by layer: cross, first-layer
// corners, second-layer edges, then the same last-layer stages as
// Solve. Solutions are longer but each stage is simpler to follow.
func SolveBeginner(c *Cube) []Move {
	var solution []Move

	solveCross(c, &solution)
	solveCorners(c, &solution)
	solveSecondLayer(c, &solution)
	solveOLL(c, &solution)
	solvePLL(c, &solution)

	return CleanSolution(solution, false)
}

// appendTurn performs an outer face turn and records it.
func appendTurn(c *Cube, solution *[]Move, face Face, t MoveType) {
	*solution = append(*solution, c.Turn(face, t))
}

// appendAlg executes an algorithm string and records its moves.
func appendAlg(c *Cube, solution *[]Move, alg string) {
	*solution = append(*solution, c.ReadMoves(alg)...)
}

// recordUTurns records 1, 2 or 3 clockwise up-face turns that were
// already performed directly on the cube.
func recordUTurns(solution *[]Move, turns uint8) {
	switch turns {
	case 1:
		*solution = append(*solution, Move{PieceUp, Normal})
	case 2:
		*solution = append(*solution, Move{PieceUp, Double})
	case 3:
		*solution = append(*solution, Move{PieceUp, Prime})
	}
}

// markStage appends a stage boundary marker.
func markStage(solution *[]Move) {
	*solution = append(*solution, StageMarker)
}
