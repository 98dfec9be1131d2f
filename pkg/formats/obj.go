package formats

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// OBJ is a decoded Wavefront OBJ file.
// Each shape carries its own de-duplicated vertex arrays, so shapes can be
// uploaded and measured independently.
type OBJ struct {
	Shapes   []OBJShape
	Warnings []string
}

// OBJShape is one object or group of an OBJ file.
type OBJShape struct {
	Name      string
	Positions []float32 // x, y, z triples
	Normals   []float32 // x, y, z triples, empty if the file has none for this shape
	TexCoords []float32 // u, v pairs, empty if the file has none for this shape
	Indices   []uint32  // triangle list
}

// VertexCount returns the number of vertices in the shape.
func (s *OBJShape) VertexCount() int {
	return len(s.Positions) / 3
}

// vertexRef is a resolved face corner (0-based, -1 when absent).
type vertexRef struct {
	pos, tex, nor int
}

type objDecoder struct {
	positions []float32
	normals   []float32
	texCoords []float32

	obj     *OBJ
	current *OBJShape
	lookup  map[vertexRef]uint32
	hasNor  bool
	hasTex  bool
	line    int
}

// ParseOBJ parses Wavefront OBJ geometry. Faces with more than three corners
// are triangulated as fans. Materials, smoothing groups and free-form
// geometry are ignored with a warning.
func ParseOBJ(r io.Reader) (*OBJ, error) {
	dec := &objDecoder{obj: &OBJ{}}
	dec.startShape("")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		dec.line++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := dec.parseLine(line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}

	dec.finishShape()
	if len(dec.obj.Shapes) == 0 {
		return nil, fmt.Errorf("obj contains no faces")
	}
	return dec.obj, nil
}

func (dec *objDecoder) parseLine(line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "v":
		return dec.parseFloats(fields, 3, &dec.positions)
	case "vn":
		return dec.parseFloats(fields, 3, &dec.normals)
	case "vt":
		return dec.parseFloats(fields, 2, &dec.texCoords)
	case "f":
		return dec.parseFace(fields[1:])
	case "o", "g":
		name := ""
		if len(fields) > 1 {
			name = strings.Join(fields[1:], " ")
		}
		dec.finishShape()
		dec.startShape(name)
	case "mtllib", "usemtl", "s":
		// Materials come from the scene palette.
	default:
		dec.obj.Warnings = append(dec.obj.Warnings, fmt.Sprintf("line %d: unsupported keyword %q", dec.line, fields[0]))
	}
	return nil
}

// parseFloats appends the first n numeric fields after the keyword. Extra
// components (vertex w, texture w) are dropped.
func (dec *objDecoder) parseFloats(fields []string, n int, dst *[]float32) error {
	if len(fields) < n+1 {
		return dec.formatError(fmt.Sprintf("%s needs %d components", fields[0], n))
	}
	for i := 1; i <= n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return dec.formatError(fmt.Sprintf("invalid number %q", fields[i]))
		}
		*dst = append(*dst, float32(f))
	}
	return nil
}

func (dec *objDecoder) parseFace(corners []string) error {
	if len(corners) < 3 {
		return dec.formatError("face needs at least 3 vertices")
	}

	idx := make([]uint32, len(corners))
	for i, c := range corners {
		ref, err := dec.parseCorner(c)
		if err != nil {
			return err
		}
		idx[i] = dec.vertex(ref)
	}

	for i := 1; i+1 < len(idx); i++ {
		dec.current.Indices = append(dec.current.Indices, idx[0], idx[i], idx[i+1])
	}
	return nil
}

// parseCorner decodes "v", "v/vt", "v//vn" or "v/vt/vn". Negative indices are
// relative to the end of the arrays read so far.
func (dec *objDecoder) parseCorner(s string) (vertexRef, error) {
	ref := vertexRef{pos: -1, tex: -1, nor: -1}
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return ref, dec.formatError(fmt.Sprintf("invalid face corner %q", s))
	}

	counts := []int{len(dec.positions) / 3, len(dec.texCoords) / 2, len(dec.normals) / 3}
	targets := []*int{&ref.pos, &ref.tex, &ref.nor}
	for i, p := range parts {
		if p == "" {
			if i == 0 {
				return ref, dec.formatError(fmt.Sprintf("face corner %q has no position", s))
			}
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return ref, dec.formatError(fmt.Sprintf("invalid index %q", p))
		}
		if n < 0 {
			n = counts[i] + n
		} else {
			n--
		}
		if n < 0 || n >= counts[i] {
			return ref, dec.formatError(fmt.Sprintf("index %q out of range", p))
		}
		*targets[i] = n
	}
	return ref, nil
}

// vertex returns the shape-local index for ref, appending a new vertex on first use.
func (dec *objDecoder) vertex(ref vertexRef) uint32 {
	if i, ok := dec.lookup[ref]; ok {
		return i
	}

	s := dec.current
	i := uint32(s.VertexCount())
	s.Positions = append(s.Positions, dec.positions[ref.pos*3:ref.pos*3+3]...)
	if ref.nor >= 0 {
		dec.hasNor = true
		s.Normals = append(s.Normals, dec.normals[ref.nor*3:ref.nor*3+3]...)
	} else {
		s.Normals = append(s.Normals, 0, 0, 0)
	}
	if ref.tex >= 0 {
		dec.hasTex = true
		s.TexCoords = append(s.TexCoords, dec.texCoords[ref.tex*2:ref.tex*2+2]...)
	} else {
		s.TexCoords = append(s.TexCoords, 0, 0)
	}
	dec.lookup[ref] = i
	return i
}

func (dec *objDecoder) startShape(name string) {
	dec.current = &OBJShape{Name: name}
	dec.lookup = make(map[vertexRef]uint32)
	dec.hasNor = false
	dec.hasTex = false
}

func (dec *objDecoder) finishShape() {
	s := dec.current
	if s == nil || len(s.Indices) == 0 {
		return
	}
	if !dec.hasNor {
		s.Normals = nil
	}
	if !dec.hasTex {
		s.TexCoords = nil
	}
	dec.obj.Shapes = append(dec.obj.Shapes, *s)
	dec.current = nil
}

func (dec *objDecoder) formatError(msg string) error {
	return fmt.Errorf("obj line %d: %s", dec.line, msg)
}
