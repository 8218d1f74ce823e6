// cubescan - scan the faces of a 3x3 cube from images and track its state.
package main

import (
	"github.com/SeamusWaldron/cubescan/internal/cli"
)

func main() {
	cli.Execute()
}
