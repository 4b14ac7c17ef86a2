// Package meshio holds the file-format collaborators the Polylla core never
// imports directly: loaders for the three interchangeable triangulation
// input formats, and the OFF/ALE/OBJ writers that turn a finished polygon
// mesh into bytes on disk.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wkohlman/polylla-go/halfedge"
)

// tokenizer pulls whitespace-delimited tokens out of a free-format text
// stream, skipping blank lines and '#' comments. OFF/node/ele/neigh files
// are all free-format: a record's fields may be split across lines, so a
// plain line-oriented scan isn't enough.
type tokenizer struct {
	sc      *bufio.Scanner
	pending []string
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, error) {
	for len(t.pending) == 0 {
		if !t.sc.Scan() {
			if err := t.sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		line := strings.TrimSpace(t.sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t.pending = strings.Fields(line)
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok, nil
}

func (t *tokenizer) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

func (t *tokenizer) nextFloat() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(tok, 64)
}

// skipRestOfLine discards any remaining tokens already buffered from the
// current line (trailing per-face color columns in extended OFF, trailing
// attribute columns in .node/.ele).
func (t *tokenizer) skipRestOfLine() {
	t.pending = nil
}

// ReadOFF reads a standard OFF triangle mesh: a header line "OFF", a counts
// line "nV nF nE", nV vertex lines "x y [z]" and nF face lines "k v0 .. vk-1"
// with k == 3 for every face (Polylla's input is always triangulated).
// Region ids are not part of the OFF format; the half-edge mesh built from
// the result always has region 0 on every face.
func ReadOFF(r io.Reader) (points []halfedge.Point, faces [][3]int, err error) {
	t := newTokenizer(r)

	header, err := t.next()
	if err != nil {
		return nil, nil, fmt.Errorf("meshio: reading OFF header: %w", err)
	}
	if header != "OFF" {
		return nil, nil, fmt.Errorf("meshio: not an OFF file (got %q)", header)
	}

	nv, err := t.nextInt()
	if err != nil {
		return nil, nil, fmt.Errorf("meshio: reading vertex count: %w", err)
	}
	nf, err := t.nextInt()
	if err != nil {
		return nil, nil, fmt.Errorf("meshio: reading face count: %w", err)
	}
	if _, err := t.nextInt(); err != nil {
		return nil, nil, fmt.Errorf("meshio: reading edge count: %w", err)
	}

	points = make([]halfedge.Point, nv)
	for i := 0; i < nv; i++ {
		x, err := t.nextFloat()
		if err != nil {
			return nil, nil, fmt.Errorf("meshio: reading vertex %d: %w", i, err)
		}
		y, err := t.nextFloat()
		if err != nil {
			return nil, nil, fmt.Errorf("meshio: reading vertex %d: %w", i, err)
		}
		points[i] = halfedge.Point{X: x, Y: y}
		t.skipRestOfLine()
	}

	faces = make([][3]int, nf)
	for i := 0; i < nf; i++ {
		k, err := t.nextInt()
		if err != nil {
			return nil, nil, fmt.Errorf("meshio: reading face %d: %w", i, err)
		}
		if k != 3 {
			return nil, nil, fmt.Errorf("meshio: face %d has %d vertices, Polylla requires triangulated input", i, k)
		}
		var f [3]int
		for j := 0; j < 3; j++ {
			v, err := t.nextInt()
			if err != nil {
				return nil, nil, fmt.Errorf("meshio: reading face %d vertex %d: %w", i, j, err)
			}
			f[j] = v
		}
		faces[i] = f
		t.skipRestOfLine()
	}

	return points, faces, nil
}
