// Command polylla builds a polygonal mesh from a triangular mesh.
package main

import "github.com/wkohlman/polylla-go/cmd/polylla/cmd"

func main() {
	cmd.Execute()
}
