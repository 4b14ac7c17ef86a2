package smooth

import (
	"math"

	"github.com/wkohlman/polylla-go/halfedge"
)

// Laplacian relocates every interior, non-region-boundary vertex to the
// mean of its neighbors' offsets, for Iterations rounds or until the total
// movement in a round drops below 0.01% of the first non-zero single-vertex
// displacement of the run, whichever comes first.
type Laplacian struct {
	Iterations int
}

var _ interface {
	Smooth(mesh *halfedge.HalfEdgeMesh, useRegions bool) int
} = Laplacian{}

// Smooth runs Laplacian relaxation over mesh in place, returning the number
// of iterations actually performed.
func (l Laplacian) Smooth(mesh *halfedge.HalfEdgeMesh, useRegions bool) int {
	cache := RegionBoundaryCache(mesh, useRegions)
	firstMovement := -1.0
	ran := 0

	for i := 0; i < l.Iterations; i++ {
		ran++
		movement := 0.0

		for v := 0; v < mesh.NumVertices(); v++ {
			if mesh.IsBorderVertex(v) || mesh.EdgeOfVertex(v) < 0 {
				continue
			}
			if useRegions && cache[v] {
				continue
			}

			eInit := mesh.EdgeOfVertex(v)
			x, y := 0.0, 0.0
			n := 0
			for e := eInit; ; {
				vNext := mesh.Target(e)
				x += mesh.GetPointX(vNext) - mesh.GetPointX(v)
				y += mesh.GetPointY(vNext) - mesh.GetPointY(v)
				n++
				e = mesh.CCWEdgeToVertex(e)
				if e == eInit {
					break
				}
			}

			mesh.SetPointX(v, mesh.GetPointX(v)+x/float64(n))
			mesh.SetPointY(v, mesh.GetPointY(v)+y/float64(n))

			if firstMovement == -1 && (x != 0 || y != 0) {
				firstMovement = math.Abs(x/float64(n)) + math.Abs(y/float64(n))
			}
			movement += math.Abs(x/float64(n)) + math.Abs(y/float64(n))
		}

		if math.Abs(movement) < firstMovement*0.0001 {
			break
		}
	}
	return ran
}
