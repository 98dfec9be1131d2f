package model

import (
	"github.com/Faultbox/glade/pkg/formats"
	"github.com/Faultbox/glade/pkg/math"
)

// Measure returns the extent of a flat x, y, z position array.
// An empty array yields the zero extent.
func Measure(positions []float32) Extent {
	if len(positions) < 3 {
		return Extent{}
	}

	first := math.Vec3{X: positions[0], Y: positions[1], Z: positions[2]}
	e := Extent{Min: first, Max: first}
	for i := 3; i+2 < len(positions); i += 3 {
		p := math.Vec3{X: positions[i], Y: positions[i+1], Z: positions[i+2]}
		e.Min = e.Min.Min(p)
		e.Max = e.Max.Max(p)
	}
	return e
}

// BuildMesh converts an OBJ shape into an interleaved mesh. Missing normals
// are generated from the faces; missing texture coordinates are zero.
func BuildMesh(shape *formats.OBJShape, opts BuildOptions) *Mesh {
	n := shape.VertexCount()
	vertices := make([]Vertex, n)

	for i := range vertices {
		v := &vertices[i]
		copy(v.Position[:], shape.Positions[i*3:i*3+3])
		if len(shape.Normals) >= (i+1)*3 {
			copy(v.Normal[:], shape.Normals[i*3:i*3+3])
		}
		if len(shape.TexCoords) >= (i+1)*2 {
			copy(v.TexCoord[:], shape.TexCoords[i*2:i*2+2])
		}
	}

	if len(shape.Normals) == 0 {
		GenerateNormals(vertices, shape.Indices)
	}
	if opts.TexTile != 0 && opts.TexTile != 1 {
		TileTexCoords(vertices, opts.TexTile)
	}

	indices := make([]uint32, len(shape.Indices))
	copy(indices, shape.Indices)

	return &Mesh{
		Name:     shape.Name,
		Vertices: vertices,
		Indices:  indices,
		Extent:   Measure(shape.Positions),
	}
}

// GenerateNormals sets each vertex normal to the normalized sum of the
// (area weighted) normals of the triangles that use it.
func GenerateNormals(vertices []Vertex, indices []uint32) {
	acc := make([]math.Vec3, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if int(a) >= len(vertices) || int(b) >= len(vertices) || int(c) >= len(vertices) {
			continue
		}
		pa := vec(vertices[a].Position)
		e1 := vec(vertices[b].Position).Sub(pa)
		e2 := vec(vertices[c].Position).Sub(pa)
		fn := e1.Cross(e2)
		acc[a] = acc[a].Add(fn)
		acc[b] = acc[b].Add(fn)
		acc[c] = acc[c].Add(fn)
	}

	for i := range vertices {
		n := acc[i].Normalize()
		if n == (math.Vec3{}) {
			n = math.Vec3{Y: 1}
		}
		vertices[i].Normal = n.Array()
	}
}

// TileTexCoords scales texture coordinates so a texture repeats factor times
// across the original 0..1 range.
func TileTexCoords(vertices []Vertex, factor float32) {
	for i := range vertices {
		vertices[i].TexCoord[0] *= factor
		vertices[i].TexCoord[1] *= factor
	}
}

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
