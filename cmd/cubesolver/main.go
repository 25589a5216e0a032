// cubesolver - CLI for the CFOP Rubik's Cube solver.
package main

import (
	"github.com/chintanlad10/cubesolver/internal/cli"
)

func main() {
	cli.Execute()
}
