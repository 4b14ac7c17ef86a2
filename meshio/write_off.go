package meshio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/wkohlman/polylla-go/halfedge"
)

// WriteOFF writes the polygon mesh in an extended OFF format:
//
//	OFF
//	<nV> <nP> <nE>
//	<nV lines of "x y 0">
//	<nP lines of "k v0 v1 .. vk-1" [+ "r g b 1.0" when useRegions]>
//
// nE is frontierEdgeCount (the undirected edge count, already halved).
// seeds holds one half-edge per output polygon; its polygon vertices are
// produced by walking the Next-cycle on mesh starting from the seed.
func WriteOFF(w io.Writer, mesh *halfedge.HalfEdgeMesh, seeds []int, useRegions bool, frontierEdgeCount int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "OFF")
	fmt.Fprintf(bw, "%d %d %d\n", mesh.NumVertices(), len(seeds), frontierEdgeCount)

	for v := 0; v < mesh.NumVertices(); v++ {
		fmt.Fprintf(bw, "%v %v 0\n", mesh.GetPointX(v), mesh.GetPointY(v))
	}

	for _, seed := range seeds {
		vertices := []int{mesh.Origin(seed)}
		for e := mesh.Next(seed); e != seed; e = mesh.Next(e) {
			vertices = append(vertices, mesh.Origin(e))
		}

		fmt.Fprintf(bw, "%d", len(vertices))
		for _, v := range vertices {
			fmt.Fprintf(bw, " %d", v)
		}

		if useRegions {
			region := mesh.RegionFace(mesh.IndexFace(seed))
			r := float64(region*73%256) / 255.0
			g := float64(region*149%256) / 255.0
			b := float64(region*233%256) / 255.0
			fmt.Fprintf(bw, " %v %v %v 1.0", r, g, b)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}
