package markplot

// Projection maps data space to the pixel space of a plot's content area.
//
// A data point (x, y) lands at
//
//	x' = x · LengthPerX
//	y' = (v − TrackingOffset) · LengthPerY
//
// where v is TotalHeight − y when InvertVertical is set and y otherwise. With
// InvertVertical unset, larger values therefore render lower in a y-down view.
type Projection struct {
	// Pixels per data unit along x.
	LengthPerX float64
	// Pixels per data unit along y.
	LengthPerY float64
	// The data-space height of the plot, used when inverting.
	TotalHeight float64
	// Flips y around TotalHeight before scaling.
	InvertVertical bool
	// A data-space margin subtracted from every y before scaling, reserved for
	// mark-tracking visuals.
	TrackingOffset float64
	// The pixel height of the view; sentinels are placed just below it.
	ViewHeight float64
}

// ScaleFactors derives the per-axis pixel lengths for a content area of the
// given size showing visibleLength data units horizontally and totalHeight
// minus trackingOffset data units vertically. A zero or negative window
// yields a zero factor rather than an infinite one.
func ScaleFactors(area Size, visibleLength, totalHeight, trackingOffset float64) (perX, perY float64) {
	if visibleLength > 0 {
		perX = area.Width / visibleLength
	}
	if h := totalHeight - trackingOffset; h > 0 {
		perY = area.Height / h
	}
	return perX, perY
}

// Affine returns the transform from data space to pixel space.
func (pr Projection) Affine() Affine {
	aff := Identity
	if pr.InvertVertical {
		aff = Affine{1, 0, 0, -1, 0, pr.TotalHeight}
	}
	return aff.
		ThenTranslate(Vec(0, -pr.TrackingOffset)).
		ThenScale(pr.LengthPerX, pr.LengthPerY)
}

// Point maps a single data point to pixel space.
func (pr Projection) Point(pt Point) Point {
	return pt.Transform(pr.Affine())
}

// Unproject maps a pixel-space point back to data space. It reports false if
// either scale factor is zero, in which case no inverse exists.
func (pr Projection) Unproject(pt Point) (Point, bool) {
	aff := pr.Affine()
	if !aff.Invertible() {
		return Point{}, false
	}
	return pt.Transform(aff.Invert()), true
}

// Project maps pts to pixel space and surrounds the result with two
// sentinels: one a pixel left of the first point and one a pixel right of the
// last, both a pixel below the view. The sentinels let a fill or shadow close
// underneath the visible area; they are not data. Use [Inner] to drop them.
//
// The result has len(pts)+2 points, or none for an empty input. pts is not
// modified.
func (pr Projection) Project(pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	aff := pr.Affine()
	out := make([]Point, len(pts)+2)
	for i, pt := range pts {
		out[i+1] = pt.Transform(aff)
	}
	below := pr.ViewHeight + 1
	out[0] = Pt(out[1].X-1, below)
	out[len(out)-1] = Pt(out[len(out)-2].X+1, below)
	return out
}

// Inner returns the part of a projected series between its sentinels. The
// returned slice shares storage with projected.
func Inner(projected []Point) []Point {
	if len(projected) < 2 {
		return nil
	}
	return projected[1 : len(projected)-1]
}
