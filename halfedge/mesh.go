package halfedge

import (
	"errors"
	"math"

	"github.com/wkohlman/polylla-go/internal/dbg"
)

// ErrNonManifold is returned when an edge is shared by more than two
// half-edges, or a half-edge's twin assignment would be inconsistent.
var ErrNonManifold = errors.New("halfedge: non-manifold triangulation")

// ErrDanglingReference is returned when a face references a vertex or a
// neighbor triangle outside the valid index range.
var ErrDanglingReference = errors.New("halfedge: dangling reference")

// HalfEdgeMesh is an indexed half-edge triangulation. All navigation is by
// integer index into the parallel arrays below; there are no pointers.
type HalfEdgeMesh struct {
	vertices  []Vertex
	faces     []Face
	halfEdges []HalfEdge
}

// NewFromFaces builds a HalfEdgeMesh from a list of points and triangles,
// deriving twins by hashing ordered vertex pairs (used for Node+Element
// input with no neighbor table).
func NewFromFaces(points []Point, faces [][3]int, regions []int) (*HalfEdgeMesh, error) {
	m, err := newInteriorMesh(points, faces, regions)
	if err != nil {
		return nil, err
	}

	type edgeKey [2]int
	shared := make(map[edgeKey][]int, len(m.halfEdges))

	for h := range m.halfEdges {
		he := &m.halfEdges[h]
		target := m.halfEdges[he.Next].Origin
		p, q := he.Origin, target
		if p > q {
			p, q = q, p
		}
		key := edgeKey{p, q}
		shared[key] = append(shared[key], h)
	}

	for _, hs := range shared {
		switch len(hs) {
		case 1:
			// Left as a boundary edge; completeBorders synthesizes its twin.
		case 2:
			m.halfEdges[hs[0]].Twin = hs[1]
			m.halfEdges[hs[1]].Twin = hs[0]
		default:
			return nil, ErrNonManifold
		}
	}

	if err := completeBorders(m); err != nil {
		return nil, err
	}
	return m, nil
}

// NewFromNeighborTable builds a HalfEdgeMesh from points, triangles and an
// explicit per-triangle neighbor table (Triangle's .neigh convention:
// neighbors[i][j] is the triangle across the edge opposite vertex j of
// triangle i, or -1 on the boundary).
func NewFromNeighborTable(points []Point, faces [][3]int, neighbors [][3]int, regions []int) (*HalfEdgeMesh, error) {
	m, err := newInteriorMesh(points, faces, regions)
	if err != nil {
		return nil, err
	}
	if len(neighbors) != len(faces) {
		return nil, ErrDanglingReference
	}

	for i := range faces {
		for j := 0; j < 3; j++ {
			k := neighbors[i][j]
			if k < 0 {
				continue
			}
			if k >= len(faces) {
				return nil, ErrDanglingReference
			}

			localEdge := (j + 1) % 3
			h := i*3 + localEdge
			if m.halfEdges[h].Twin != -1 {
				continue
			}

			u := faces[i][localEdge]
			v := faces[i][(localEdge+1)%3]

			found := false
			for jk := 0; jk < 3; jk++ {
				t := k*3 + jk
				a := m.halfEdges[t].Origin
				b := m.halfEdges[m.halfEdges[t].Next].Origin
				if (a == u && b == v) || (a == v && b == u) {
					if m.halfEdges[t].Twin != -1 {
						return nil, ErrNonManifold
					}
					m.halfEdges[h].Twin = t
					m.halfEdges[t].Twin = h
					found = true
					break
				}
			}
			if !found {
				return nil, ErrDanglingReference
			}
		}
	}

	if err := completeBorders(m); err != nil {
		return nil, err
	}
	return m, nil
}

// newInteriorMesh allocates vertices and the three half-edges per triangle,
// leaving Twin unset (-1) and border faces absent.
func newInteriorMesh(points []Point, faces [][3]int, regions []int) (*HalfEdgeMesh, error) {
	m := &HalfEdgeMesh{
		vertices:  make([]Vertex, len(points)),
		faces:     make([]Face, len(faces)),
		halfEdges: make([]HalfEdge, 3*len(faces)),
	}

	for i, p := range points {
		m.vertices[i] = Vertex{X: p.X, Y: p.Y, IncidentHalfEdge: -1}
	}

	for i, f := range faces {
		region := 0
		if regions != nil {
			if i >= len(regions) {
				return nil, ErrDanglingReference
			}
			region = regions[i]
		}

		base := i * 3
		m.faces[i] = Face{IncidentHalfEdge: base, Region: region}

		for j := 0; j < 3; j++ {
			v := f[j]
			if v < 0 || v >= len(points) {
				return nil, ErrDanglingReference
			}

			next := base + (j+1)%3
			prev := base + (j+2)%3
			m.halfEdges[base+j] = HalfEdge{
				Origin: v,
				Next:   next,
				Prev:   prev,
				Twin:   -1,
				Face:   i,
			}
			m.vertices[v].IncidentHalfEdge = base + j
		}
	}

	return m, nil
}

// completeBorders synthesizes border half-edges for every interior
// half-edge left without a twin, linking them into boundary loops via the
// incoming/outgoing boundary maps of their shared vertices.
func completeBorders(m *HalfEdgeMesh) error {
	var boundary []int
	for h, he := range m.halfEdges {
		if he.Twin == -1 {
			boundary = append(boundary, h)
		}
	}
	if len(boundary) == 0 {
		return nil
	}

	incomingAt := make(map[int]int, len(boundary))
	outgoingAt := make(map[int]int, len(boundary))

	for _, h := range boundary {
		he := m.halfEdges[h]
		u := he.Origin
		v := m.halfEdges[he.Next].Origin

		if _, dup := outgoingAt[u]; dup {
			return ErrNonManifold
		}
		outgoingAt[u] = h
		incomingAt[v] = h
	}

	borderFace := Face{Border: true, Region: -1}
	borderFaceIndex := len(m.faces)

	base := len(m.halfEdges)
	m.halfEdges = append(m.halfEdges, make([]HalfEdge, len(boundary))...)

	borderOf := make(map[int]int, len(boundary))
	for i, h := range boundary {
		borderOf[h] = base + i
	}

	for i, h := range boundary {
		he := m.halfEdges[h]
		u, v := he.Origin, m.halfEdges[he.Next].Origin
		b := base + i

		m.halfEdges[b] = HalfEdge{
			Origin: v,
			Twin:   h,
			Face:   borderFaceIndex,
		}
		m.halfEdges[h].Twin = b

		hPrevInterior, ok := incomingAt[u]
		if !ok {
			return ErrNonManifold
		}
		m.halfEdges[b].Next = borderOf[hPrevInterior]

		hNextInterior, ok := outgoingAt[v]
		if !ok {
			return ErrNonManifold
		}
		m.halfEdges[b].Prev = borderOf[hNextInterior]
	}

	borderFace.IncidentHalfEdge = base
	m.faces = append(m.faces, borderFace)

	dbg.True(len(m.halfEdges) == base+len(boundary), "completeBorders: half-edge count mismatch")
	return nil
}

// Clone deep-copies the mesh. The returned mesh shares no storage with m;
// the Polylla pipeline uses Clone to produce the output mesh that traversal
// and repair mutate in place.
func (m *HalfEdgeMesh) Clone() *HalfEdgeMesh {
	n := &HalfEdgeMesh{
		vertices:  make([]Vertex, len(m.vertices)),
		faces:     make([]Face, len(m.faces)),
		halfEdges: make([]HalfEdge, len(m.halfEdges)),
	}
	copy(n.vertices, m.vertices)
	copy(n.faces, m.faces)
	copy(n.halfEdges, m.halfEdges)
	return n
}

// NumVertices returns the number of vertices.
func (m *HalfEdgeMesh) NumVertices() int { return len(m.vertices) }

// NumFaces returns the total number of faces, interior and border.
func (m *HalfEdgeMesh) NumFaces() int { return len(m.faces) }

// NumHalfEdges returns the total number of half-edges, interior and border.
func (m *HalfEdgeMesh) NumHalfEdges() int { return len(m.halfEdges) }

// Origin returns the origin vertex of half-edge h.
func (m *HalfEdgeMesh) Origin(h int) int { return m.halfEdges[h].Origin }

// Target returns the target vertex of half-edge h (the origin of Next(h)).
func (m *HalfEdgeMesh) Target(h int) int { return m.halfEdges[m.halfEdges[h].Next].Origin }

// Next returns the next half-edge around the same face.
func (m *HalfEdgeMesh) Next(h int) int { return m.halfEdges[h].Next }

// Prev returns the previous half-edge around the same face.
func (m *HalfEdgeMesh) Prev(h int) int { return m.halfEdges[h].Prev }

// Twin returns the opposite half-edge across the same undirected edge.
func (m *HalfEdgeMesh) Twin(h int) int { return m.halfEdges[h].Twin }

// SetNext mutates the next pointer of half-edge h.
func (m *HalfEdgeMesh) SetNext(h, k int) { m.halfEdges[h].Next = k }

// SetPrev mutates the prev pointer of half-edge h.
func (m *HalfEdgeMesh) SetPrev(h, k int) { m.halfEdges[h].Prev = k }

// IncidentHalfEdge returns some half-edge of face f.
func (m *HalfEdgeMesh) IncidentHalfEdge(f int) int { return m.faces[f].IncidentHalfEdge }

// SetIncidentHalfEdge sets the incident half-edge of vertex v.
func (m *HalfEdgeMesh) SetIncidentHalfEdge(v, h int) { m.vertices[v].IncidentHalfEdge = h }

// EdgeOfVertex returns a half-edge with origin v, or -1 if none is set.
func (m *HalfEdgeMesh) EdgeOfVertex(v int) int { return m.vertices[v].IncidentHalfEdge }

// IsBorderFace returns true if half-edge h belongs to a border face.
func (m *HalfEdgeMesh) IsBorderFace(h int) bool { return m.faces[m.halfEdges[h].Face].Border }

// IsInteriorFace returns true if half-edge h belongs to an interior face.
func (m *HalfEdgeMesh) IsInteriorFace(h int) bool { return !m.IsBorderFace(h) }

// IndexFace returns the face index of half-edge h.
func (m *HalfEdgeMesh) IndexFace(h int) int { return m.halfEdges[h].Face }

// RegionFace returns the region id of face f (-1 for border faces).
func (m *HalfEdgeMesh) RegionFace(f int) int { return m.faces[f].Region }

// IsBorderVertex returns true iff any edge incident to v is a border edge.
func (m *HalfEdgeMesh) IsBorderVertex(v int) bool {
	e0 := m.EdgeOfVertex(v)
	if e0 < 0 {
		return false
	}
	e := e0
	for {
		if m.IsBorderFace(e) || m.IsBorderFace(m.Twin(e)) {
			return true
		}
		e = m.CCWEdgeToVertex(e)
		if e == e0 {
			return false
		}
	}
}

// Degree returns the number of edges incident to v (interior + border).
func (m *HalfEdgeMesh) Degree(v int) int {
	e0 := m.EdgeOfVertex(v)
	if e0 < 0 {
		return 0
	}
	n := 0
	e := e0
	for {
		n++
		e = m.CCWEdgeToVertex(e)
		if e == e0 {
			break
		}
	}
	return n
}

// Distance returns the Euclidean length of half-edge h.
func (m *HalfEdgeMesh) Distance(h int) float64 {
	o := m.vertices[m.Origin(h)]
	t := m.vertices[m.Target(h)]
	dx := t.X - o.X
	dy := t.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// CWEdgeToVertex returns the next half-edge with the same origin vertex in
// clockwise order: next(twin(h)). It never leaves the fan around the
// origin vertex, including across border edges.
func (m *HalfEdgeMesh) CWEdgeToVertex(h int) int { return m.Next(m.Twin(h)) }

// CCWEdgeToVertex returns the next half-edge with the same origin vertex in
// counter-clockwise order: twin(prev(h)).
func (m *HalfEdgeMesh) CCWEdgeToVertex(h int) int { return m.Twin(m.Prev(h)) }

// GetPointX returns the x-coordinate of vertex v.
func (m *HalfEdgeMesh) GetPointX(v int) float64 { return m.vertices[v].X }

// GetPointY returns the y-coordinate of vertex v.
func (m *HalfEdgeMesh) GetPointY(v int) float64 { return m.vertices[v].Y }

// SetPointX sets the x-coordinate of vertex v.
func (m *HalfEdgeMesh) SetPointX(v int, x float64) { m.vertices[v].X = x }

// SetPointY sets the y-coordinate of vertex v.
func (m *HalfEdgeMesh) SetPointY(v int, y float64) { m.vertices[v].Y = y }

// SizeBytes estimates the memory footprint of the mesh's parallel arrays,
// for the stats report's coarse memory accounting.
func (m *HalfEdgeMesh) SizeBytes() int64 {
	const (
		vertexSize   = 8 + 8 + 8 // X, Y float64 + IncidentHalfEdge int
		faceSize     = 8 + 8 + 1 // IncidentHalfEdge int + Region int + Border bool
		halfEdgeSize = 8 * 5     // Origin, Next, Prev, Twin, Face
	)
	return int64(len(m.vertices))*vertexSize +
		int64(len(m.faces))*faceSize +
		int64(len(m.halfEdges))*halfEdgeSize
}
