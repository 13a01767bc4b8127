// Pocket Cube Solver - CLI application for solving the 2x2 Rubik's cube.
package main

import (
	"github.com/seamusw/pocketcube/internal/cli"
)

func main() {
	cli.Execute()
}
