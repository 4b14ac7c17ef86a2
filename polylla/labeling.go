package polylla

import "github.com/wkohlman/polylla-go/halfedge"

// LabelMaxEdges marks, for every triangle in mesh, the half-edge of its
// longest side. Ties break in the fixed order edge, next(edge), prev(edge) —
// the same order the underlying max() comparison chain resolves to when two
// or three sides are equal length.
func LabelMaxEdges(mesh *halfedge.HalfEdgeMesh) *BitSet {
	maxEdges := NewBitSet(mesh.NumHalfEdges())
	for f := 0; f < mesh.NumFaces(); f++ {
		e := mesh.IncidentHalfEdge(f)
		if mesh.IsBorderFace(e) {
			continue
		}
		maxEdges.Set(labelMaxEdge(mesh, e))
	}
	return maxEdges
}

func labelMaxEdge(mesh *halfedge.HalfEdgeMesh, e int) int {
	next := mesh.Next(e)
	prev := mesh.Prev(e)
	d0 := mesh.Distance(e)
	d1 := mesh.Distance(next)
	d2 := mesh.Distance(prev)

	longest := d0
	if d1 > longest {
		longest = d1
	}
	if d2 > longest {
		longest = d2
	}

	switch {
	case longest == d0:
		return e
	case longest == d1:
		return next
	default:
		return prev
	}
}

// LabelFrontierEdges marks every half-edge that bounds a polygon of the
// output mesh: border edges, edges that are not the longest side of either
// incident triangle, and — when useRegions is set — edges where the two
// incident triangles carry different region ids. It returns the bit set and
// the number of marked half-edges (both directions of an interior frontier
// edge are counted).
func LabelFrontierEdges(mesh *halfedge.HalfEdgeMesh, maxEdges *BitSet, useRegions bool) (*BitSet, int) {
	frontierEdges := NewBitSet(mesh.NumHalfEdges())
	n := 0
	for e := 0; e < mesh.NumHalfEdges(); e++ {
		if isFrontierEdge(mesh, maxEdges, e, useRegions) {
			frontierEdges.Set(e)
			n++
		}
	}
	return frontierEdges, n
}

func isFrontierEdge(mesh *halfedge.HalfEdgeMesh, maxEdges *BitSet, e int, useRegions bool) bool {
	twin := mesh.Twin(e)
	isBorderEdge := mesh.IsBorderFace(e) || mesh.IsBorderFace(twin)
	isNotMaxEdge := !(maxEdges.Get(e) || maxEdges.Get(twin))

	isRegionBoundary := false
	if useRegions {
		region1 := mesh.RegionFace(mesh.IndexFace(e))
		region2 := mesh.RegionFace(mesh.IndexFace(twin))
		isRegionBoundary = region1 != region2
	}

	return isBorderEdge || isNotMaxEdge || isRegionBoundary
}

// CollectSeedEdges returns one half-edge per interior triangle that starts a
// frontier-to-frontier polygon traversal: terminal edges (both e and its
// twin are max edges, reported only from the lower-indexed side), terminal
// border edges (e is a max edge and its twin belongs to a border face), and,
// with useRegions, terminal region edges (e is a max edge across a region
// boundary).
func CollectSeedEdges(mesh *halfedge.HalfEdgeMesh, maxEdges *BitSet, useRegions bool) []int {
	var seeds []int
	for e := 0; e < mesh.NumHalfEdges(); e++ {
		if mesh.IsInteriorFace(e) && isSeedEdge(mesh, maxEdges, e, useRegions) {
			seeds = append(seeds, e)
		}
	}
	return seeds
}

func isSeedEdge(mesh *halfedge.HalfEdgeMesh, maxEdges *BitSet, e int, useRegions bool) bool {
	twin := mesh.Twin(e)

	isTerminalEdge := mesh.IsInteriorFace(twin) && maxEdges.Get(e) && maxEdges.Get(twin)
	isTerminalBorderEdge := mesh.IsBorderFace(twin) && maxEdges.Get(e)

	isTerminalRegionEdge := false
	if useRegions {
		region1 := mesh.RegionFace(mesh.IndexFace(e))
		region2 := mesh.RegionFace(mesh.IndexFace(twin))
		isRegionBoundary := region1 != region2
		isTerminalRegionEdge = isRegionBoundary && maxEdges.Get(e)
	}

	return (isTerminalEdge && e < twin) || isTerminalBorderEdge || isTerminalRegionEdge
}
