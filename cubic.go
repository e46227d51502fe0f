package markplot

import "iter"

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the curve at t using de Casteljau's algorithm: the four
// control points are collapsed to one by three rounds of linear
// interpolation.
func (c CubicBez) Eval(t float64) Point {
	q1 := c.P0.Lerp(c.P1, t)
	q2 := c.P1.Lerp(c.P2, t)
	q3 := c.P2.Lerp(c.P3, t)

	r1 := q1.Lerp(q2, t)
	r2 := q2.Lerp(q3, t)

	return r1.Lerp(r2, t)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Samples returns an iterator over n points of the curve, evaluated at
// t = i/n for i in [0, n). The end point is not included; consecutive
// segments of a spline share it as the next segment's first sample.
func (c CubicBez) Samples(n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := range n {
			if !yield(c.Eval(float64(i) / float64(n))) {
				return
			}
		}
	}
}

// SampledArclen approximates the arc length of the curve by the length of
// the polyline through n+1 evenly spaced samples, end point included. n < 1
// is treated as 1, which yields the chord length.
func (c CubicBez) SampledArclen(n int) float64 {
	n = max(n, 1)
	var length float64
	prev := c.P0
	for i := 1; i <= n; i++ {
		cur := c.Eval(float64(i) / float64(n))
		length += prev.Distance(cur)
		prev = cur
	}
	return length
}

