package smooth

import "github.com/wkohlman/polylla-go/halfedge"

// IsRegionBoundaryVertex reports whether v sits on the border of the mesh or
// on the boundary between two differently-regioned faces. It is used to
// exclude region-boundary vertices from smoothing so region topology is
// preserved. Always returns false when useRegions is false.
func IsRegionBoundaryVertex(mesh *halfedge.HalfEdgeMesh, v int, useRegions bool) bool {
	if !useRegions {
		return false
	}

	eInit := mesh.EdgeOfVertex(v)
	if eInit < 0 {
		return false
	}
	if mesh.IsBorderVertex(v) {
		return true
	}

	for e := eInit; ; {
		twin := mesh.Twin(e)
		if mesh.RegionFace(mesh.IndexFace(e)) != mesh.RegionFace(mesh.IndexFace(twin)) {
			return true
		}
		e = mesh.CCWEdgeToVertex(e)
		if e == eInit {
			break
		}
	}
	return false
}

// RegionBoundaryCache precomputes IsRegionBoundaryVertex for every vertex in
// mesh, so smoothing loops can skip the per-iteration recomputation. Returns
// nil when useRegions is false.
func RegionBoundaryCache(mesh *halfedge.HalfEdgeMesh, useRegions bool) []bool {
	if !useRegions {
		return nil
	}
	cache := make([]bool, mesh.NumVertices())
	for v := range cache {
		cache[v] = IsRegionBoundaryVertex(mesh, v, useRegions)
	}
	return cache
}
