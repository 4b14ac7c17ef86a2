package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/wkohlman/polylla-go/halfedge"
)

// WriteALE writes the polygon mesh in the ALE domain-description format:
// nodal coordinates, element connectivity, the Dirichlet boundary node
// loop, an empty Neumann boundary list, and the bounding box.
//
// input is the pristine triangulation (its border loop is walked via Prev
// to emit the Dirichlet boundary); output is the polygon mesh produced by
// the pipeline (its Next-cycles, starting at each of seeds, give the
// element connectivity).
func WriteALE(w io.Writer, input, output *halfedge.HalfEdgeMesh, seeds []int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# domain type")
	fmt.Fprintln(bw, "Custom")

	fmt.Fprintln(bw, "# nodal coordinates: number of nodes followed by the coordinates")
	fmt.Fprintln(bw, input.NumVertices())
	for v := 0; v < input.NumVertices(); v++ {
		fmt.Fprintf(bw, "%s %s\n",
			strconv.FormatFloat(input.GetPointX(v), 'g', 15, 64),
			strconv.FormatFloat(input.GetPointY(v), 'g', 15, 64))
	}

	fmt.Fprintln(bw, "# element connectivity: number of elements followed by the elements")
	fmt.Fprintln(bw, len(seeds))
	for _, seed := range seeds {
		vertices := []int{output.Origin(seed)}
		for e := output.Next(seed); e != seed; e = output.Next(e) {
			vertices = append(vertices, output.Origin(e))
		}
		fmt.Fprintf(bw, "%d ", len(vertices))
		for _, v := range vertices {
			fmt.Fprintf(bw, "%d ", v)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "# indices of nodes located on the Dirichlet boundary")
	bInit := -1
	for h := input.NumHalfEdges() - 1; h >= 0; h-- {
		if input.IsBorderFace(h) {
			bInit = h
			break
		}
	}
	if bInit >= 0 {
		fmt.Fprintf(bw, "%d ", input.Origin(bInit))
		for b := input.Prev(bInit); b != bInit; b = input.Prev(b) {
			fmt.Fprintf(bw, "%d ", input.Origin(b))
		}
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "# indices of nodes located on the Neumann boundary")
	fmt.Fprintln(bw, "0")

	fmt.Fprintln(bw, "# xmin, xmax, ymin, ymax of the bounding box")
	xmin, xmax := input.GetPointX(0), input.GetPointX(0)
	ymin, ymax := input.GetPointY(0), input.GetPointY(0)
	for v := 0; v < input.NumVertices(); v++ {
		x, y := input.GetPointX(v), input.GetPointY(v)
		if x > xmax {
			xmax = x
		}
		if x < xmin {
			xmin = x
		}
		if y > ymax {
			ymax = y
		}
		if y < ymin {
			ymin = y
		}
	}
	fmt.Fprintf(bw, "%v %v %v %v\n", xmin, xmax, ymin, ymax)

	return bw.Flush()
}
