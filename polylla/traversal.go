package polylla

import (
	"github.com/wkohlman/polylla-go/halfedge"
	"github.com/wkohlman/polylla-go/internal/dbg"
)

// searchFrontierEdge walks clockwise around the origin vertex of e, in the
// input triangulation, until it finds a frontier edge.
func searchFrontierEdge(input *halfedge.HalfEdgeMesh, frontierEdges *BitSet, e int) int {
	nxt := e
	for !frontierEdges.Get(nxt) {
		nxt = input.CWEdgeToVertex(nxt)
	}
	return nxt
}

// hasBarrierEdgeTip reports whether the polygon boundary starting at e_init
// in output is not a simple polygon: a barrier-edge tip occurs where the
// twin of a boundary half-edge's successor is that same half-edge, i.e. the
// boundary runs out along an edge and straight back at its tip vertex. The
// walk checks every half-edge of the cycle except e_init itself.
func hasBarrierEdgeTip(output *halfedge.HalfEdgeMesh, eInit int) bool {
	eCurr := output.Next(eInit)
	for eCurr != eInit {
		if output.Twin(output.Next(eCurr)) == eCurr {
			return true
		}
		eCurr = output.Next(eCurr)
	}
	return false
}

// travelTriangles builds the output polygon boundary starting from seed edge
// e: it walks frontier edge to frontier edge through the input triangulation,
// overwriting output's Next/Prev links to stitch the polygon loop, and
// records each polygon vertex's incident half-edge on output. It returns the
// frontier edge the loop was closed on (the polygon's representative
// half-edge).
func travelTriangles(input, output *halfedge.HalfEdgeMesh, frontierEdges *BitSet, e int) int {
	eInit := searchFrontierEdge(input, frontierEdges, e)
	dbg.True(frontierEdges.Get(eInit), "travelTriangles: polygon must start on a frontier edge")
	eCurr := input.Next(eInit)
	eFE := eInit

	for {
		eCurr = searchFrontierEdge(input, frontierEdges, eCurr)
		output.SetNext(eFE, eCurr)
		output.SetPrev(eCurr, eFE)

		vCurr := input.Target(eFE)
		eIncident := input.Twin(eFE)
		output.SetIncidentHalfEdge(vCurr, eIncident)

		eFE = eCurr
		eCurr = input.Next(eCurr)

		if eFE == eInit {
			break
		}
	}
	return eInit
}
