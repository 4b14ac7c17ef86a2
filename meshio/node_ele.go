package meshio

import (
	"fmt"
	"os"

	"github.com/wkohlman/polylla-go/halfedge"
)

// readNodeFile reads a Triangle-format .node file:
//
//	<#points> <dim> <#attributes> <#boundary markers (0 or 1)>
//	<index> <x> <y> [attributes...] [boundary marker]
//
// Points are returned by Triangle's declared index, which this package
// assumes to be the dense range [0, n) (Triangle itself always numbers this
// way unless told otherwise).
func readNodeFile(path string) ([]halfedge.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: opening node file: %w", err)
	}
	defer f.Close()

	t := newTokenizer(f)
	n, err := t.nextInt()
	if err != nil {
		return nil, fmt.Errorf("meshio: reading node count: %w", err)
	}
	dim, err := t.nextInt()
	if err != nil {
		return nil, fmt.Errorf("meshio: reading node dimension: %w", err)
	}
	if dim != 2 {
		return nil, fmt.Errorf("meshio: node file has dimension %d, Polylla is strictly 2D", dim)
	}
	nAttr, err := t.nextInt()
	if err != nil {
		return nil, fmt.Errorf("meshio: reading node attribute count: %w", err)
	}
	nMarkers, err := t.nextInt()
	if err != nil {
		return nil, fmt.Errorf("meshio: reading node boundary-marker flag: %w", err)
	}
	t.skipRestOfLine()

	points := make([]halfedge.Point, n)
	for i := 0; i < n; i++ {
		if _, err := t.nextInt(); err != nil {
			return nil, fmt.Errorf("meshio: reading node %d index: %w", i, err)
		}
		x, err := t.nextFloat()
		if err != nil {
			return nil, fmt.Errorf("meshio: reading node %d: %w", i, err)
		}
		y, err := t.nextFloat()
		if err != nil {
			return nil, fmt.Errorf("meshio: reading node %d: %w", i, err)
		}
		for a := 0; a < nAttr; a++ {
			if _, err := t.nextFloat(); err != nil {
				return nil, fmt.Errorf("meshio: reading node %d attribute %d: %w", i, a, err)
			}
		}
		for m := 0; m < nMarkers; m++ {
			if _, err := t.nextInt(); err != nil {
				return nil, fmt.Errorf("meshio: reading node %d boundary marker: %w", i, err)
			}
		}
		points[i] = halfedge.Point{X: x, Y: y}
		t.skipRestOfLine()
	}
	return points, nil
}

// readEleFile reads a Triangle-format .ele file:
//
//	<#triangles> <nodes per triangle (3)> <#attributes>
//	<index> <v0> <v1> <v2> [attributes...]
//
// When the file carries at least one attribute column, the first attribute
// truncated to int is used as the face's region id (Triangle convention for
// carrying a region tag through to its output); otherwise every face gets
// region 0.
func readEleFile(path string) (faces [][3]int, regions []int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("meshio: opening ele file: %w", err)
	}
	defer f.Close()

	t := newTokenizer(f)
	n, err := t.nextInt()
	if err != nil {
		return nil, nil, fmt.Errorf("meshio: reading triangle count: %w", err)
	}
	nodesPerTri, err := t.nextInt()
	if err != nil {
		return nil, nil, fmt.Errorf("meshio: reading nodes-per-triangle: %w", err)
	}
	if nodesPerTri != 3 {
		return nil, nil, fmt.Errorf("meshio: ele file has %d nodes per triangle, Polylla requires 3", nodesPerTri)
	}
	nAttr, err := t.nextInt()
	if err != nil {
		return nil, nil, fmt.Errorf("meshio: reading ele attribute count: %w", err)
	}
	t.skipRestOfLine()

	faces = make([][3]int, n)
	if nAttr > 0 {
		regions = make([]int, n)
	}
	for i := 0; i < n; i++ {
		if _, err := t.nextInt(); err != nil {
			return nil, nil, fmt.Errorf("meshio: reading triangle %d index: %w", i, err)
		}
		var tri [3]int
		for j := 0; j < 3; j++ {
			v, err := t.nextInt()
			if err != nil {
				return nil, nil, fmt.Errorf("meshio: reading triangle %d vertex %d: %w", i, j, err)
			}
			tri[j] = v
		}
		faces[i] = tri
		for a := 0; a < nAttr; a++ {
			attr, err := t.nextFloat()
			if err != nil {
				return nil, nil, fmt.Errorf("meshio: reading triangle %d attribute %d: %w", i, a, err)
			}
			if a == 0 {
				regions[i] = int(attr)
			}
		}
		t.skipRestOfLine()
	}
	return faces, regions, nil
}

// readNeighFile reads a Triangle-format .neigh file:
//
//	<#triangles> <#neighbors per triangle (3)>
//	<index> <n0> <n1> <n2>
//
// neighs[i][j] is the index of the triangle sharing the edge opposite
// vertex j of triangle i, or -1 on the boundary.
func readNeighFile(path string) ([][3]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: opening neigh file: %w", err)
	}
	defer f.Close()

	t := newTokenizer(f)
	n, err := t.nextInt()
	if err != nil {
		return nil, fmt.Errorf("meshio: reading neigh triangle count: %w", err)
	}
	perTri, err := t.nextInt()
	if err != nil {
		return nil, fmt.Errorf("meshio: reading neighbors-per-triangle: %w", err)
	}
	if perTri != 3 {
		return nil, fmt.Errorf("meshio: neigh file has %d neighbors per triangle, Polylla requires 3", perTri)
	}
	t.skipRestOfLine()

	neighs := make([][3]int, n)
	for i := 0; i < n; i++ {
		if _, err := t.nextInt(); err != nil {
			return nil, fmt.Errorf("meshio: reading neigh %d index: %w", i, err)
		}
		var ns [3]int
		for j := 0; j < 3; j++ {
			v, err := t.nextInt()
			if err != nil {
				return nil, fmt.Errorf("meshio: reading neigh %d entry %d: %w", i, j, err)
			}
			ns[j] = v
		}
		neighs[i] = ns
		t.skipRestOfLine()
	}
	return neighs, nil
}

// ReadNodeEle builds a half-edge mesh from a Triangle-format .node/.ele pair
// with no neighbor table: twins are derived by hashing ordered vertex pairs
// (halfedge.NewFromFaces).
func ReadNodeEle(nodePath, elePath string) (*halfedge.HalfEdgeMesh, error) {
	points, err := readNodeFile(nodePath)
	if err != nil {
		return nil, err
	}
	faces, regions, err := readEleFile(elePath)
	if err != nil {
		return nil, err
	}
	return halfedge.NewFromFaces(points, faces, regions)
}

// ReadNodeEleNeigh builds a half-edge mesh from a Triangle-format
// .node/.ele/.neigh triple: twins come directly from the neighbor table
// (halfedge.NewFromNeighborTable).
func ReadNodeEleNeigh(nodePath, elePath, neighPath string) (*halfedge.HalfEdgeMesh, error) {
	points, err := readNodeFile(nodePath)
	if err != nil {
		return nil, err
	}
	faces, regions, err := readEleFile(elePath)
	if err != nil {
		return nil, err
	}
	neighs, err := readNeighFile(neighPath)
	if err != nil {
		return nil, err
	}
	return halfedge.NewFromNeighborTable(points, faces, neighs, regions)
}
