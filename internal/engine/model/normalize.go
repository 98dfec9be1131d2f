package model

import "github.com/Faultbox/glade/pkg/math"

// Normalization maps a multi-part model into a shared unit frame: translate by
// -Translate, then scale uniformly by Scale. Computed once per model.
type Normalization struct {
	Scale     float32
	Translate math.Vec3
}

// Matrix returns Scale(s) * Translate(-t).
func (n Normalization) Matrix() math.Mat4 {
	return math.Scale(n.Scale, n.Scale, n.Scale).Mul(math.TranslateVec(n.Translate.Neg()))
}

// DominantAxis returns the axis (0 X, 1 Y, 2 Z) with the largest max corner
// component. Ties resolve to the lower axis index.
func DominantAxis(e Extent) int {
	axis := 0
	for i := 1; i < 3; i++ {
		if e.Max.Axis(i) > e.Max.Axis(axis) {
			axis = i
		}
	}
	return axis
}

// Normalize derives the shared normalization of a shape collection.
//
// Each shape contributes its dominant axis: the largest max and the smallest
// min seen along the respective dominant axes define the global range, and
// the shapes that set them provide the corners whose midpoint becomes the
// translation. Scale is 2 / (globalMax - globalMin). Shapes are visited in
// order and only a strictly larger/smaller value replaces the current one, so
// identical input always yields the same result.
func Normalize(extents []Extent) Normalization {
	if len(extents) == 0 {
		return Normalization{Scale: 1}
	}

	first := DominantAxis(extents[0])
	gMax := extents[0].Max.Axis(first)
	gMin := extents[0].Min.Axis(first)
	cornerMax := extents[0].Max
	cornerMin := extents[0].Min

	for _, e := range extents {
		axis := DominantAxis(e)
		if v := e.Max.Axis(axis); v > gMax {
			gMax = v
			cornerMax = e.Max
		}
		if v := e.Min.Axis(axis); v < gMin {
			gMin = v
			cornerMin = e.Min
		}
	}

	n := Normalization{
		Scale:     1,
		Translate: cornerMin.Add(cornerMax).Scale(0.5),
	}
	if span := gMax - gMin; span > 0 {
		n.Scale = 2 / span
	}
	return n
}
