package math

// Rect is an axis-aligned rectangle on the ground plane.
// Min is the lower-left corner, Max the upper-right one.
type Rect struct {
	Min, Max Vec2
}

// RectFromCorners returns the rectangle spanned by two corners in any order.
func RectFromCorners(a, b Vec2) Rect {
	r := Rect{Min: a, Max: b}
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Width returns the extent along X.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the extent along the second axis.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Area returns the rectangle area. Inverted rectangles report zero.
func (r Rect) Area() float32 {
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Offset returns the rectangle translated by d.
func (r Rect) Offset(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Contains reports whether p lies inside r or on its border.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsStrict reports whether p lies in the open interior of r.
func (r Rect) ContainsStrict(p Vec2) bool {
	return p.X > r.Min.X && p.X < r.Max.X && p.Y > r.Min.Y && p.Y < r.Max.Y
}
