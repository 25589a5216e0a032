package cubesolver

import "math/bits"

// rotateRight shifts source right by the given number of bits,
// wrapping the shifted-out bits around to the top.
func rotateRight(source uint64, n uint) uint64 {
	return bits.RotateLeft64(source, -int(n))
}

// rotateLeft shifts source left by the given number of bits,
// wrapping the shifted-out bits around to the bottom.
func rotateLeft(source uint64, n uint) uint64 {
	return bits.RotateLeft64(source, int(n))
}
