package markplot

import (
	"cmp"
	"slices"
)

// SortByX returns a copy of pts ordered by ascending x. Points with equal x
// keep their relative order, so duplicates from the host stay where they were
// supplied. pts itself is not modified.
func SortByX(pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := slices.Clone(pts)
	slices.SortStableFunc(out, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})
	return out
}

// IsSortedByX reports whether pts is non-decreasing in x.
func IsSortedByX(pts []Point) bool {
	return slices.IsSortedFunc(pts, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})
}

// PathLength returns the length of the polyline through pts: the sum of the
// distances between consecutive points. It is 0 for fewer than two points.
func PathLength(pts []Point) float64 {
	var length float64
	for l := range Lines(pts) {
		length += l.Length()
	}
	return length
}

// LinearPath builds a path of straight segments through pts. An empty input
// yields an empty path.
func LinearPath(pts []Point) BezPath {
	if len(pts) == 0 {
		return nil
	}
	p := make(BezPath, 0, len(pts))
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	return p
}

// Reversed returns a reversed copy of pts.
func Reversed(pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := slices.Clone(pts)
	slices.Reverse(out)
	return out
}

// Highest returns the point with the smallest y, which is the top-most point
// in a y-down space. Ties resolve to the earliest point. It returns false for
// an empty input.
func Highest(pts []Point) (Point, bool) {
	if len(pts) == 0 {
		return Point{}, false
	}
	top := pts[0]
	for _, pt := range pts[1:] {
		if pt.Y < top.Y {
			top = pt
		}
	}
	return top, true
}

// ShadowOutline returns the closed outline of a band below the polyline: the
// polyline itself, then the same points moved down by drop and walked
// backwards.
func ShadowOutline(pts []Point, drop float64) BezPath {
	if len(pts) == 0 {
		return nil
	}
	p := LinearPath(pts)
	for _, pt := range TransformPoints(Reversed(pts), Translate(Vec(0, drop))) {
		p.LineTo(pt)
	}
	p.ClosePath()
	return p
}
