// gocube - command-line simulator for the 3x3x3 Rubik's cube.
package main

import (
	"github.com/SeamusWaldron/gocube_model/internal/cli"
)

func main() {
	cli.Execute()
}
