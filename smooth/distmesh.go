package smooth

import (
	"math"

	"github.com/wkohlman/polylla-go/halfedge"
)

// DistMesh relaxes vertex positions with a spring-like force. Only edges at
// or beyond TargetLength contribute a term; shorter edges exert no
// repulsion. Moves that would make a polygon self-intersect are reverted.
type DistMesh struct {
	Iterations int

	// TargetLength is the rest length every edge is pulled toward. A value
	// <= 0 auto-calculates it as the mean half-edge length of mesh.
	TargetLength float64
}

// Smooth runs DistMesh relaxation over mesh in place for Iterations rounds
// (with early exit once a round's movement drops below 0.01% of the first
// non-zero single-vertex displacement of the run), returning the number of
// iterations performed.
func (d DistMesh) Smooth(mesh *halfedge.HalfEdgeMesh, useRegions bool) int {
	targetLength := d.TargetLength
	if targetLength <= 0 {
		sum := 0.0
		for e := 0; e < mesh.NumHalfEdges(); e++ {
			sum += mesh.Distance(e)
		}
		targetLength = sum / float64(mesh.NumHalfEdges())
	}

	cache := RegionBoundaryCache(mesh, useRegions)
	firstMovement := -1.0
	ran := 0

	for i := 0; i < d.Iterations; i++ {
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
			originX, originY := mesh.GetPointX(v), mesh.GetPointY(v)
			x, y := 0.0, 0.0

			for e := eInit; ; {
				vNext := mesh.Target(e)
				dx := mesh.GetPointX(vNext) - mesh.GetPointX(v)
				dy := mesh.GetPointY(vNext) - mesh.GetPointY(v)
				length := math.Sqrt(dx*dx + dy*dy)

				if targetLength <= length {
					force := targetLength - length
					targetX, targetY := mesh.GetPointX(vNext), mesh.GetPointY(vNext)
					directionX := (targetX - originX) / length
					directionY := (targetY - originY) / length
					x += directionX * -force
					y += directionY * -force
				}

				e = mesh.CCWEdgeToVertex(e)
				if e == eInit {
					break
				}
			}

			mesh.SetPointX(v, mesh.GetPointX(v)+x*0.5)
			mesh.SetPointY(v, mesh.GetPointY(v)+y*0.5)
			if !IsValidMove(mesh, v) {
				mesh.SetPointX(v, originX)
				mesh.SetPointY(v, originY)
			}

			if firstMovement == -1 && (x != 0 || y != 0) {
				firstMovement = math.Abs(x) + math.Abs(y)
			}
			movement += math.Abs(x) + math.Abs(y)
		}

		if math.Abs(movement) < firstMovement*0.0001 {
			break
		}
	}
	return ran
}
