package meshio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/aurelien-rainone/gobj"
	"github.com/wkohlman/polylla-go/halfedge"
)

// WriteOBJ writes a debug/visualization export of the polygon mesh in
// Wavefront OBJ format. gobj ships a decoder but no encoder, so this writer
// follows plain OBJ text conventions directly, representing each planar
// point as a gobj.NewVertex2D (Z fixed at 0, W unused).
//
// OBJ faces must be planar and are conventionally kept to triangles by most
// consumers; each output polygon with k > 3 vertices is fan-triangulated
// from its first vertex, which is lossy for non-convex polygons but
// sufficient for a debug viewer.
func WriteOBJ(w io.Writer, mesh *halfedge.HalfEdgeMesh, seeds []int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# polygon mesh, exported for visualization only")
	for v := 0; v < mesh.NumVertices(); v++ {
		vert := gobj.NewVertex2D(mesh.GetPointX(v), mesh.GetPointY(v))
		fmt.Fprintf(bw, "v %v %v %v\n", vert.X(), vert.Y(), vert.Z())
	}

	for _, seed := range seeds {
		vertices := []int{mesh.Origin(seed)}
		for e := mesh.Next(seed); e != seed; e = mesh.Next(e) {
			vertices = append(vertices, mesh.Origin(e))
		}
		for i := 1; i+1 < len(vertices); i++ {
			// OBJ indices are 1-based.
			fmt.Fprintf(bw, "f %d %d %d\n", vertices[0]+1, vertices[i]+1, vertices[i+1]+1)
		}
	}

	return bw.Flush()
}
