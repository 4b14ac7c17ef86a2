package polylla

import "github.com/wkohlman/polylla-go/halfedge"

// PolygonVertices returns the origin vertex of every half-edge on the
// polygon boundary starting at seed, in Next order.
func PolygonVertices(mesh *halfedge.HalfEdgeMesh, seed int) []int {
	vertices := []int{mesh.Origin(seed)}
	for e := mesh.Next(seed); e != seed; e = mesh.Next(e) {
		vertices = append(vertices, mesh.Origin(e))
	}
	return vertices
}

// PolygonHalfEdges returns every half-edge on the polygon boundary starting
// at seed, in Next order.
func PolygonHalfEdges(mesh *halfedge.HalfEdgeMesh, seed int) []int {
	edges := []int{seed}
	for e := mesh.Next(seed); e != seed; e = mesh.Next(e) {
		edges = append(edges, e)
	}
	return edges
}

// PolygonRegion returns the region id of the triangle that produced seed in
// the original triangulation: mesh's Face array is untouched by traversal
// and repair, which only rewrite Next/Prev, so the original region tag
// survives on the output mesh.
func PolygonRegion(mesh *halfedge.HalfEdgeMesh, seed int) int {
	return mesh.RegionFace(mesh.IndexFace(seed))
}
