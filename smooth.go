package markplot

// DefaultAccuracy is the number of samples [Approximate] takes per segment
// when the caller has no preference.
const DefaultAccuracy = 30

// ControlPoints returns the two inner control points of the cubic joining p1
// and p2. Both sit at the x midpoint, one at the larger and one at the
// smaller of the two y values; the one matching p1's side comes first. The
// resulting S-curve is horizontal at both knots and never leaves the y range
// of its end points.
func ControlPoints(p1, p2 Point) (Point, Point) {
	mid := p1.Midpoint(p2)
	top := Pt(mid.X, max(p1.Y, p2.Y))
	bottom := Pt(mid.X, min(p1.Y, p2.Y))
	if p1.Y > p2.Y {
		return top, bottom
	}
	return bottom, top
}

// Spline returns the smoothing cubic between p1 and p2.
func Spline(p1, p2 Point) CubicBez {
	c1, c2 := ControlPoints(p1, p2)
	return CubicBez{p1, c1, c2, p2}
}

// Approximate replaces the polyline through pts with a denser one that
// follows the smoothing splines between consecutive points. Each segment
// contributes accuracy samples, the first of which is the segment's start, and
// the last input point closes the result, for 1 + accuracy*(len(pts)-1)
// points in total. accuracy values below 1 are treated as 1.
//
// Inputs with fewer than two points are returned as a copy, unchanged.
func Approximate(pts []Point, accuracy int) []Point {
	switch len(pts) {
	case 0:
		return nil
	case 1:
		return []Point{pts[0]}
	}
	accuracy = max(accuracy, 1)

	out := make([]Point, 0, 1+accuracy*(len(pts)-1))
	for i := 1; i < len(pts); i++ {
		for pt := range Spline(pts[i-1], pts[i]).Samples(accuracy) {
			out = append(out, pt)
		}
	}
	return append(out, pts[len(pts)-1])
}

// SmoothPath builds a path through pts made of the smoothing splines
// themselves rather than of sampled points.
func SmoothPath(pts []Point) BezPath {
	if len(pts) == 0 {
		return nil
	}
	p := make(BezPath, 0, len(pts))
	p.MoveTo(pts[0])
	for i := 1; i < len(pts); i++ {
		c1, c2 := ControlPoints(pts[i-1], pts[i])
		p.CubicTo(c1, c2, pts[i])
	}
	return p
}
