package smooth

import (
	"github.com/wkohlman/polylla-go/geom"
	"github.com/wkohlman/polylla-go/halfedge"
)

func point(mesh *halfedge.HalfEdgeMesh, v int) geom.Point {
	return geom.Point{X: mesh.GetPointX(v), Y: mesh.GetPointY(v)}
}

// IsValidMove reports whether vertex v's current position keeps its incident
// polygons free of improper intersection or overlap: walking CCW around v's
// fan, for each incident polygon it checks the two edges touching v against
// every other edge of that same polygon.
func IsValidMove(mesh *halfedge.HalfEdgeMesh, v int) bool {
	eInit := mesh.EdgeOfVertex(v)
	if eInit < 0 {
		return true
	}

	eNext := eInit
	for {
		firstEdge := eNext
		lastEdge := mesh.Prev(firstEdge)
		currEdge := lastEdge
		for {
			eInit2 := mesh.Next(currEdge)
			eNext2 := eInit2
			for {
				v0 := mesh.Origin(currEdge)
				v1 := mesh.Target(currEdge)
				v2 := mesh.Origin(eNext2)
				v3 := mesh.Target(eNext2)

				if currEdge == eNext2 || v3 == v0 {
					eNext2 = mesh.Next(eNext2)
					if eInit2 == eNext2 {
						break
					}
					continue
				}

				p0, p1, p2, p3 := point(mesh, v0), point(mesh, v1), point(mesh, v2), point(mesh, v3)

				if geom.Parallel(p0, p1, p2, p3) {
					if geom.Collinear(p0, p1, p3) {
						if v1 == v2 {
							if geom.InRange(p3, p0, p1) || geom.InRange(p0, p2, p3) {
								return false
							}
						} else {
							if geom.InRange(p2, p0, p1) || geom.InRange(p3, p0, p1) ||
								geom.InRange(p0, p2, p3) || geom.InRange(p1, p2, p3) {
								return false
							}
						}
					}
				} else if v1 != v2 && geom.SegmentsIntersect(p0, p1, p2, p3) {
					return false
				}

				eNext2 = mesh.Next(eNext2)
				if eInit2 == eNext2 {
					break
				}
			}
			currEdge = mesh.Next(currEdge)
			if currEdge == mesh.Next(firstEdge) {
				break
			}
		}
		eNext = mesh.CCWEdgeToVertex(eNext)
		if eInit == eNext {
			break
		}
	}
	return true
}
