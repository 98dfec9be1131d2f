package model

import (
	"testing"

	"github.com/Faultbox/glade/pkg/math"
)

func TestDominantAxis(t *testing.T) {
	tests := []struct {
		name string
		max  math.Vec3
		want int
	}{
		{"x", math.Vec3{X: 3, Y: 1, Z: 2}, 0},
		{"y", math.Vec3{X: 1, Y: 3, Z: 2}, 1},
		{"z", math.Vec3{X: 1, Y: 2, Z: 3}, 2},
		{"tie xy", math.Vec3{X: 3, Y: 3, Z: 1}, 0},
		{"tie yz", math.Vec3{X: 1, Y: 3, Z: 3}, 1},
		{"all equal", math.Splat(2), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DominantAxis(Extent{Max: tt.max}); got != tt.want {
				t.Errorf("DominantAxis(%v) = %d, want %d", tt.max, got, tt.want)
			}
		})
	}
}

func TestNormalizeSingleShape(t *testing.T) {
	e := Extent{
		Min: math.Vec3{X: -1, Y: 0, Z: -1},
		Max: math.Vec3{X: 1, Y: 4, Z: 1},
	}

	n := Normalize([]Extent{e})
	if n.Scale != 0.5 {
		t.Errorf("Scale = %v, want 0.5", n.Scale)
	}
	if n.Translate != (math.Vec3{X: 0, Y: 2, Z: 0}) {
		t.Errorf("Translate = %v, want shape center", n.Translate)
	}
}

func TestNormalizeDominantShapeSetsRange(t *testing.T) {
	small := Extent{
		Min: math.Vec3{X: -0.5, Y: -0.5, Z: -0.5},
		Max: math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
	}
	tall := Extent{
		Min: math.Vec3{X: 0, Y: -10, Z: 0},
		Max: math.Vec3{X: 1, Y: 10, Z: 1},
	}

	n := Normalize([]Extent{small, tall})
	if n.Scale != float32(2)/20 {
		t.Errorf("Scale = %v, want %v", n.Scale, float32(2)/20)
	}
	if want := tall.Center(); n.Translate != want {
		t.Errorf("Translate = %v, want %v", n.Translate, want)
	}

	// Normalized range along the dominant axis spans exactly two units.
	m := n.Matrix()
	lo := m.TransformVec3(math.Vec3{Y: tall.Min.Y})
	hi := m.TransformVec3(math.Vec3{Y: tall.Max.Y})
	if d := hi.Y - lo.Y; d < 1.9999 || d > 2.0001 {
		t.Errorf("normalized span = %v, want 2", d)
	}
}

func TestNormalizeThreeShapes(t *testing.T) {
	extents := []Extent{
		// Dominant x: max 2, min -1.
		{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 2, Y: 1, Z: 1}},
		// Dominant y: sets both the global max 5 and min -6.
		{Min: math.Vec3{X: -3, Y: -6, Z: -2}, Max: math.Vec3{X: 1, Y: 5, Z: 1}},
		// Dominant z: max 3 and min -4 stay inside the range.
		{Min: math.Vec3{X: -1, Y: -1, Z: -4}, Max: math.Vec3{X: 1, Y: 1, Z: 3}},
	}

	n := Normalize(extents)
	if want := float32(2) / 11; n.Scale != want {
		t.Errorf("Scale = %v, want %v", n.Scale, want)
	}
	if want := (math.Vec3{X: -1, Y: -0.5, Z: -0.5}); n.Translate != want {
		t.Errorf("Translate = %v, want %v", n.Translate, want)
	}
}

func TestNormalizeTieUsesLowerAxis(t *testing.T) {
	extents := []Extent{
		// x and y tie at 3; x wins, so the min is -4 rather than -1.
		{Min: math.Vec3{X: -4, Y: -1, Z: 0}, Max: math.Vec3{X: 3, Y: 3, Z: 1}},
		// x and y tie at 2; x wins, so the min is -5 rather than -6.
		{Min: math.Vec3{X: -5, Y: -6, Z: 0}, Max: math.Vec3{X: 2, Y: 2, Z: 0}},
	}

	n := Normalize(extents)
	if n.Scale != 0.25 {
		t.Errorf("Scale = %v, want 0.25", n.Scale)
	}
	if want := (math.Vec3{X: -1, Y: -1.5, Z: 0.5}); n.Translate != want {
		t.Errorf("Translate = %v, want %v", n.Translate, want)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	extents := []Extent{
		{Min: math.Vec3{X: -2, Y: -1, Z: 0}, Max: math.Vec3{X: 2, Y: 2, Z: 2}},
		{Min: math.Vec3{X: -2, Y: -3, Z: 0}, Max: math.Vec3{X: 2, Y: 2, Z: 2}},
		{Min: math.Vec3{X: 0, Y: 0, Z: -3}, Max: math.Vec3{X: 1, Y: 1, Z: 2}},
	}

	first := Normalize(extents)
	for i := 0; i < 10; i++ {
		if got := Normalize(extents); got != first {
			t.Fatalf("run %d: %v != %v", i, got, first)
		}
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	if n := Normalize(nil); n.Scale != 1 || n.Translate != (math.Vec3{}) {
		t.Errorf("Normalize(nil) = %v, want identity", n)
	}

	point := Extent{Min: math.Splat(3), Max: math.Splat(3)}
	n := Normalize([]Extent{point})
	if n.Scale != 1 {
		t.Errorf("Scale = %v, want 1 for zero span", n.Scale)
	}
	if n.Translate != math.Splat(3) {
		t.Errorf("Translate = %v", n.Translate)
	}
}
