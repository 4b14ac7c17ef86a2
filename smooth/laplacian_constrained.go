package smooth

import "github.com/wkohlman/polylla-go/halfedge"

// LaplacianConstrained is Laplacian relocation gated by a quality Measure:
// a vertex move is reverted when the original average score of its incident
// polygons was strictly better, or when the move creates a self-intersecting
// polygon. A move that ties the original average is kept.
type LaplacianConstrained struct {
	Iterations int

	// Measure scores incident polygons. Defaults to EdgeRatio when nil.
	Measure Measure
}

// Smooth runs constrained Laplacian relaxation over mesh in place for
// Iterations rounds, returning the number of iterations performed.
func (l LaplacianConstrained) Smooth(mesh *halfedge.HalfEdgeMesh, useRegions bool) int {
	measure := l.Measure
	if measure == nil {
		measure = EdgeRatio{}
	}
	cache := RegionBoundaryCache(mesh, useRegions)

	for i := 0; i < l.Iterations; i++ {
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

			originalX, originalY := mesh.GetPointX(v), mesh.GetPointY(v)

			originalSum := 0.0
			adjacentFaces := 0
			for e := eInit; ; {
				originalSum += measure.EvalFace(mesh, e)
				adjacentFaces++
				e = mesh.CCWEdgeToVertex(e)
				if e == eInit {
					break
				}
			}
			originalAvg := originalSum / float64(adjacentFaces)

			mesh.SetPointX(v, mesh.GetPointX(v)+x/float64(n))
			mesh.SetPointY(v, mesh.GetPointY(v)+y/float64(n))

			newSum := 0.0
			for e := eInit; ; {
				newSum += measure.EvalFace(mesh, e)
				e = mesh.CCWEdgeToVertex(e)
				if e == eInit {
					break
				}
			}
			newAvg := newSum / float64(adjacentFaces)

			if measure.IsBetter(originalAvg, newAvg) || !IsValidMove(mesh, v) {
				mesh.SetPointX(v, originalX)
				mesh.SetPointY(v, originalY)
			}
		}
	}
	return l.Iterations
}
