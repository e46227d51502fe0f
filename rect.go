package markplot

import "iter"

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns a rectangle with the given size, extending to the right and
// down (for positive sizes) from the origin. Width and height are ensured to be
// non-negative.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return NewRectFromPoints(origin, origin.Translate(size.AsVec2()))
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Origin returns the origin of the rectangle.
//
// This is the top left corner in a y-down space and with
// non-negative width and height.
func (r Rect) Origin() Point {
	return Point{
		X: r.X0,
		Y: r.Y0,
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Size {
	return Size{
		Width:  r.Width(),
		Height: r.Height(),
	}
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inset shrinks the rectangle by the given insets. Insets larger than the
// rectangle collapse it to zero width or height instead of inverting it.
func (r Rect) Inset(in Insets) Rect {
	r = r.Abs()
	x0 := r.X0 + in.Left
	y0 := r.Y0 + in.Top
	return Rect{
		X0: x0,
		Y0: y0,
		X1: max(x0, r.X1-in.Right),
		Y1: max(y0, r.Y1-in.Bottom),
	}
}

func (r Rect) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(r.X0, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y1))) &&
			yield(LineTo(Pt(r.X0, r.Y1))) &&
			yield(ClosePath())
	}
}

// Insets are distances reserved on each side of a rectangle, for example for
// labels drawn around a plot.
type Insets struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}
