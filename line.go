package markplot

import (
	"iter"
	"math"
)

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// IsVertical reports whether both end points share the same x coordinate.
// Coincident end points count as vertical.
func (l Line) IsVertical() bool {
	return l.P0.X == l.P1.X
}

// SolveForX returns the parameter t at which the line reaches x. A vertical
// line has no unique solution; it resolves to 0, the line's start.
func (l Line) SolveForX(x float64) float64 {
	dx := l.P1.X - l.P0.X
	if dx == 0 {
		return 0
	}
	return (x - l.P0.X) / dx
}

// Normal returns the unit vector perpendicular to the line, obtained by
// rotating the direction angle atan(dy/dx) by 90°.
//
// Because the slope form is used rather than atan2, the normal of a line
// pointing to the left is the same as that of the line reversed. A vertical
// line takes ±90° depending on the sign of dy, and a zero-length line is
// treated as horizontal.
func (l Line) Normal() Vec2 {
	d := l.P1.Sub(l.P0)
	var th float64
	switch {
	case d.X != 0:
		th = math.Atan(d.Y / d.X)
	case d.Y > 0:
		th = math.Pi / 2
	case d.Y < 0:
		th = -math.Pi / 2
	}
	return VecFromAngle(th + math.Pi/2)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

// Lines returns an iterator over the segments joining consecutive points.
func Lines(pts []Point) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(pts); i++ {
			if !yield(Line{pts[i-1], pts[i]}) {
				return
			}
		}
	}
}
