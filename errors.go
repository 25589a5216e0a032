package cubesolver

import "errors"

// Sentinel errors for the cubesolver package.
var (
	// ErrInvalidNotation reports a move string with no recognised tokens.
	ErrInvalidNotation = errors.New("cubesolver: invalid move notation")

	// ErrInvalidState reports a malformed 54-character state string.
	ErrInvalidState = errors.New("cubesolver: invalid state string")

	// ErrUnsolvable reports a cube the pipeline could not solve,
	// which only happens for states that are not reachable by legal
	// moves.
	ErrUnsolvable = errors.New("cubesolver: cube state is not solvable")
)
