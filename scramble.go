package cubesolver

import (
	"math/rand"
	"strings"
)

// scrambleMoves is the 18-move outer-turn set scrambles are drawn from.
var scrambleMoves = [18]string{
	"U", "U'", "U2",
	"D", "D'", "D2",
	"F", "F'", "F2",
	"B", "B'", "B2",
	"R", "R'", "R2",
	"L", "L'", "L2",
}

// DefaultScrambleLength is the standard scramble length.
const DefaultScrambleLength = 25

// NewScramble returns a random scramble of the given length drawn from
// the outer-turn move set.
func NewScramble(length int) string {
	return newScramble(length, rand.Intn)
}

// newScramble builds a scramble using the given index picker.
func newScramble(length int, pick func(n int) int) string {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(scrambleMoves[pick(len(scrambleMoves))])
	}
	return sb.String()
}
