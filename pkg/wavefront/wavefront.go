// Package wavefront parses the quad-mesh subset of the Wavefront OBJ
// text format used by the mezzanine scene files: comments, object names,
// vertices, vertex normals, and quad faces with vertex//normal pairs.
package wavefront

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lucarv/mezzanine/pkg/math"
)

// Importer errors.
var (
	ErrMalformedFace   = errors.New("malformed face: expected 4 vertex//normal pairs")
	ErrMalformedRecord = errors.New("malformed record: expected 3 coordinates")
	ErrIndexOutOfRange = errors.New("face index out of range")
	ErrUnsupportedLine = errors.New("unsupported line")
)

// Face is a quad referencing vertex and normal records by 1-based index.
type Face struct {
	Vertex [4]int
	Normal [4]int
}

// SkippedLine records an input line the parser could not use. Skipped
// lines do not abort the import; callers decide whether to report them.
type SkippedLine struct {
	Line int
	Text string
	Err  error
}

// Mesh is a named collection of vertices, normals, and quad faces.
// It is immutable once parsed.
type Mesh struct {
	Name     string
	Vertices []math.Vec3
	Normals  []math.Vec3
	Faces    []Face
	Skipped  []SkippedLine
}

// VertexAt resolves a 1-based vertex index.
func (m *Mesh) VertexAt(i int) math.Vec3 {
	return m.Vertices[i-1]
}

// NormalAt resolves a 1-based normal index.
func (m *Mesh) NormalAt(i int) math.Vec3 {
	return m.Normals[i-1]
}

// Parse reads a single mesh from a line-oriented geometry source.
// Unsupported and malformed lines are recorded on the mesh and skipped;
// a face index pointing outside the vertex or normal sequences fails the
// whole import, since the mesh could never be drawn.
func Parse(r io.Reader) (*Mesh, error) {
	m := &Mesh{}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		switch {
		case strings.HasPrefix(line, "#"):
			// comment

		case strings.HasPrefix(line, "o"):
			m.Name = strings.TrimSpace(line[1:])

		case strings.HasPrefix(line, "vn"):
			p, err := parsePoint(line[2:])
			if err != nil {
				m.skip(lineNo, line, err)
				continue
			}
			m.Normals = append(m.Normals, p)

		case strings.HasPrefix(line, "v"):
			p, err := parsePoint(line[1:])
			if err != nil {
				m.skip(lineNo, line, err)
				continue
			}
			m.Vertices = append(m.Vertices, p)

		case strings.HasPrefix(line, "f"):
			f, err := parseFace(line)
			if err != nil {
				m.skip(lineNo, line, err)
				continue
			}
			m.Faces = append(m.Faces, f)

		default:
			m.skip(lineNo, line, ErrUnsupportedLine)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading geometry: %w", err)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseBytes parses a mesh from raw bytes.
func ParseBytes(data []byte) (*Mesh, error) {
	return Parse(bytes.NewReader(data))
}

// ParseFile parses a mesh from disk. A missing or unreadable file is a
// distinct failure from a parse error.
func ParseFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening geometry file: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

func (m *Mesh) skip(line int, text string, err error) {
	m.Skipped = append(m.Skipped, SkippedLine{Line: line, Text: text, Err: err})
}

// validate checks every face index against the vertex and normal
// sequences. Indices are 1-based.
func (m *Mesh) validate() error {
	for i, f := range m.Faces {
		for j := 0; j < 4; j++ {
			if f.Vertex[j] < 1 || f.Vertex[j] > len(m.Vertices) {
				return fmt.Errorf("face %d: %w: vertex index %d of %d",
					i, ErrIndexOutOfRange, f.Vertex[j], len(m.Vertices))
			}
			if f.Normal[j] < 1 || f.Normal[j] > len(m.Normals) {
				return fmt.Errorf("face %d: %w: normal index %d of %d",
					i, ErrIndexOutOfRange, f.Normal[j], len(m.Normals))
			}
		}
	}
	return nil
}

// parsePoint parses exactly three whitespace-separated floats.
func parsePoint(s string) (math.Vec3, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return math.Vec3{}, ErrMalformedRecord
	}

	var coords [3]float32
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: %q", ErrMalformedRecord, field)
		}
		coords[i] = float32(v)
	}
	return math.Vec3{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// parseFace parses a quad face line: f v//n v//n v//n v//n.
// Triangles and larger polygons are rejected, never truncated.
func parseFace(line string) (Face, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 || fields[0] != "f" {
		return Face{}, ErrMalformedFace
	}

	var f Face
	for i, pair := range fields[1:] {
		v, n, ok := strings.Cut(pair, "//")
		if !ok {
			return Face{}, fmt.Errorf("%w: %q", ErrMalformedFace, pair)
		}
		vi, err := strconv.Atoi(v)
		if err != nil {
			return Face{}, fmt.Errorf("%w: %q", ErrMalformedFace, pair)
		}
		ni, err := strconv.Atoi(n)
		if err != nil {
			return Face{}, fmt.Errorf("%w: %q", ErrMalformedFace, pair)
		}
		f.Vertex[i] = vi
		f.Normal[i] = ni
	}
	return f, nil
}
