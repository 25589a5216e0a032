//go:build js && wasm

// cubesolver-wasm exposes the solver to JavaScript.
//
// It registers a getSolution(state) function on the global object:
// given a 54-character sticker state it returns the optimized solution
// as a move string, or an empty string for unusable states.
package main

import (
	"syscall/js"

	"github.com/chintanlad10/cubesolver"
)

// A process-lifetime cube, reused across calls.
var cube = cubesolver.NewCube()

// getSolution solves the given state string.
func getSolution(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return ""
	}
	state := args[0].String()
	if len(state) != 54 {
		return ""
	}

	cube.CopyState(state)
	solution := cubesolver.Solve(cube)
	if !cube.IsSolved() {
		return ""
	}

	solution = cubesolver.CleanSolution(solution, true)
	return cubesolver.SolutionToString(solution)
}

func main() {
	js.Global().Set("getSolution", js.FuncOf(getSolution))

	// keep the runtime alive for future calls
	select {}
}
