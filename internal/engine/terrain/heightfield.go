// Package terrain provides the ground height lookup used to place instances
// on the terrain surface.
package terrain

import "github.com/chewxy/math32"

// DefaultHeight is returned by Sample for cells that were never built.
const DefaultHeight float32 = 0

// Cell is a discretized ground cell: world X and Z truncated toward zero.
type Cell struct {
	X, Z int32
}

// CellAt truncates a ground position to its cell. ok is false when a
// coordinate is NaN or outside the int32 range.
func CellAt(x, z float32) (c Cell, ok bool) {
	cx, okX := truncate(x)
	cz, okZ := truncate(z)
	return Cell{X: cx, Z: cz}, okX && okZ
}

func truncate(v float32) (int32, bool) {
	t := math32.Trunc(v)
	if t != t || t < -(1<<31) || t >= 1<<31 {
		return 0, false
	}
	return int32(t), true
}

// Pack interleaves the bits of X and Z into a single key. The mapping is a
// bijection, so distinct cells never share a key.
func (c Cell) Pack() uint64 {
	return spread(uint32(c.X)) | spread(uint32(c.Z))<<1
}

// spread moves bit i of v to bit 2i.
func spread(v uint32) uint64 {
	x := uint64(v)
	x = (x | x<<16) & 0x0000FFFF0000FFFF
	x = (x | x<<8) & 0x00FF00FF00FF00FF
	x = (x | x<<4) & 0x0F0F0F0F0F0F0F0F
	x = (x | x<<2) & 0x3333333333333333
	x = (x | x<<1) & 0x5555555555555555
	return x
}

// HeightField maps ground cells to a sampled terrain height.
// It is built once from mesh data and read-only afterwards.
type HeightField struct {
	heights map[uint64]float32
}

// NewHeightField returns an empty height field.
func NewHeightField() *HeightField {
	return &HeightField{heights: make(map[uint64]float32)}
}

// Build records the height of every (x, y, z) triple in positions under the
// cell of its x and z. A later vertex in the same cell overwrites an earlier
// one. A trailing partial triple is ignored.
func (h *HeightField) Build(positions []float32) {
	for i := 0; i+2 < len(positions); i += 3 {
		c, ok := CellAt(positions[i], positions[i+2])
		if !ok {
			continue
		}
		h.heights[c.Pack()] = positions[i+1]
	}
}

// Sample returns the height stored for the cell containing (x, z), or
// DefaultHeight when that cell was never built.
func (h *HeightField) Sample(x, z float32) float32 {
	c, ok := CellAt(x, z)
	if !ok {
		return DefaultHeight
	}
	if y, found := h.Lookup(c); found {
		return y
	}
	return DefaultHeight
}

// Lookup returns the height stored for cell c and whether it exists.
func (h *HeightField) Lookup(c Cell) (float32, bool) {
	y, ok := h.heights[c.Pack()]
	return y, ok
}

// Len returns the number of distinct cells.
func (h *HeightField) Len() int {
	return len(h.heights)
}
