package meshio

import (
	"os"

	"github.com/wkohlman/polylla-go/halfedge"
)

// LoadOFF opens path and builds a half-edge mesh from it via ReadOFF,
// deriving twins by hashing ordered vertex pairs (OFF carries no explicit
// adjacency table).
func LoadOFF(path string) (*halfedge.HalfEdgeMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	points, faces, err := ReadOFF(f)
	if err != nil {
		return nil, err
	}
	return halfedge.NewFromFaces(points, faces, nil)
}
