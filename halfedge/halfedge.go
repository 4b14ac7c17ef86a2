// Package halfedge implements an indexed half-edge triangulation: the data
// structure the Polylla pipeline labels, traverses and repairs.
package halfedge

// Point is a planar coordinate pair.
type Point struct {
	X, Y float64
}

// HalfEdge is one directed side of a face. Every undirected mesh edge is
// represented by two half-edges (twins). All fields are indices into the
// owning HalfEdgeMesh's parallel arrays; -1 marks "no such half-edge".
type HalfEdge struct {
	Origin int
	Next   int
	Prev   int
	Twin   int
	Face   int
}

// Vertex carries a coordinate and one incident half-edge (origin == this
// vertex). IncidentHalfEdge is -1 if the vertex has no incident half-edge.
type Vertex struct {
	X, Y             float64
	IncidentHalfEdge int
}

// Face is either interior (three half-edges forming a triangle) or a border
// face (a single boundary loop). Region is -1 for border faces.
type Face struct {
	IncidentHalfEdge int
	Region           int
	Border           bool
}
