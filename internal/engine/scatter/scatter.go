// Package scatter distributes instance positions over a rectangular area
// while keeping a central exclusion rectangle clear.
package scatter

import (
	"math/rand/v2"
	"time"

	"github.com/chewxy/math32"

	"github.com/Faultbox/glade/pkg/math"
)

// RegionCount is the number of rectangles surrounding the exclusion zone.
const RegionCount = 8

// NewRand returns a generator for Scatter. A zero seed picks a time-based one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Regions splits the area between exclusion and outer into the eight
// rectangles obtained by extending the exclusion edges to the outer bounds.
// Order: bottom row left to right, middle left, middle right, top row left to
// right. The exclusion is clipped to outer first, so a zone touching an outer
// edge yields zero-area regions on that side.
func Regions(exclusion, outer math.Rect) [RegionCount]math.Rect {
	ex := clip(exclusion, outer)

	bx, by := outer.Min.X, outer.Min.Y
	tx, ty := outer.Max.X, outer.Max.Y
	x1, y1 := ex.Min.X, ex.Min.Y
	x2, y2 := ex.Max.X, ex.Max.Y

	box := func(minX, minY, maxX, maxY float32) math.Rect {
		return math.Rect{Min: math.Vec2{X: minX, Y: minY}, Max: math.Vec2{X: maxX, Y: maxY}}
	}

	return [RegionCount]math.Rect{
		box(bx, by, x1, y1),
		box(x1, by, x2, y1),
		box(x2, by, tx, y1),
		box(bx, y1, x1, y2),
		box(x2, y1, tx, y2),
		box(bx, y2, x1, ty),
		box(x1, y2, x2, ty),
		box(x2, y2, tx, ty),
	}
}

// Scatter draws count independent ground positions. For each sample one of the
// eight regions around the exclusion is chosen uniformly, then a position is
// chosen uniformly inside it. Both rectangles are relative to center.
//
// The result is not blue noise: points cluster freely and the per-region
// density differs with region size. No point lies strictly inside the
// exclusion rectangle.
func Scatter(rng *rand.Rand, center math.Vec2, exclusion, outer math.Rect, count int) []math.Vec2 {
	if count <= 0 {
		return nil
	}

	regions := Regions(exclusion.Offset(center), outer.Offset(center))
	points := make([]math.Vec2, count)
	for i := range points {
		r := regions[rng.IntN(RegionCount)]
		points[i] = math.Vec2{
			X: sample(rng, r.Min.X, r.Max.X),
			Y: sample(rng, r.Min.Y, r.Max.Y),
		}
	}
	return points
}

// sample returns a uniform value in [lo, hi], clamped against rounding.
func sample(rng *rand.Rand, lo, hi float32) float32 {
	v := lo + rng.Float32()*(hi-lo)
	return math32.Min(math32.Max(v, lo), hi)
}

func clip(r, bounds math.Rect) math.Rect {
	clamp := func(v, lo, hi float32) float32 {
		return math32.Min(math32.Max(v, lo), hi)
	}
	return math.Rect{
		Min: math.Vec2{X: clamp(r.Min.X, bounds.Min.X, bounds.Max.X), Y: clamp(r.Min.Y, bounds.Min.Y, bounds.Max.Y)},
		Max: math.Vec2{X: clamp(r.Max.X, bounds.Min.X, bounds.Max.X), Y: clamp(r.Max.Y, bounds.Min.Y, bounds.Max.Y)},
	}
}
