// Package model turns parsed geometry into render-ready mesh data and
// computes the bounding extents used to normalize multi-part models.
package model

import "github.com/Faultbox/glade/pkg/math"

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds the complete mesh data ready for GPU upload.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Extent   Extent
}

// Extent is the axis-aligned bounding box of a mesh.
type Extent struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (e Extent) Center() math.Vec3 {
	return e.Min.Add(e.Max).Scale(0.5)
}

// Size returns the edge lengths of the box.
func (e Extent) Size() math.Vec3 {
	return e.Max.Sub(e.Min)
}

// BuildOptions contains options for mesh building.
type BuildOptions struct {
	// TexTile multiplies every texture coordinate (0 or 1 leaves them as is).
	TexTile float32
}
