package markplot

// OffsetCurve returns the outline of a band of the given width running along
// the polyline prefix.
//
// Every segment of prefix contributes its start point displaced by offset
// along the segment's normal (see [Line.Normal]). The prefix points follow
// in reverse order, walking the band back to its start. Finally, points whose
// x exceeds cutoffX+offset are dropped, which keeps the band from reaching
// past the mark.
//
// A prefix with fewer than two points has no segments; only the reversed
// points remain.
func OffsetCurve(prefix []Point, offset, cutoffX float64) []Point {
	if len(prefix) == 0 {
		return nil
	}
	out := make([]Point, 0, 2*len(prefix)-1)
	for l := range Lines(prefix) {
		out = append(out, l.P0.Translate(l.Normal().Mul(offset)))
	}
	for i := len(prefix) - 1; i >= 0; i-- {
		out = append(out, prefix[i])
	}

	limit := cutoffX + offset
	n := 0
	for _, pt := range out {
		if pt.X > limit {
			continue
		}
		out[n] = pt
		n++
	}
	return out[:n]
}

// Ribbon returns [OffsetCurve] as a closed path, suitable as a mask.
func Ribbon(prefix []Point, offset, cutoffX float64) BezPath {
	pts := OffsetCurve(prefix, offset, cutoffX)
	if len(pts) == 0 {
		return nil
	}
	p := LinearPath(pts)
	p.ClosePath()
	return p
}
