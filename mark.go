package markplot

import "math"

// Clamp records whether a mark was snapped to one end of the curve.
type Clamp int

const (
	ClampNone Clamp = iota
	// The target lay left of the first real point.
	ClampStart
	// The target lay right of the last real point.
	ClampEnd
)

func (c Clamp) String() string {
	switch c {
	case ClampNone:
		return "none"
	case ClampStart:
		return "start"
	case ClampEnd:
		return "end"
	default:
		return "invalid"
	}
}

// Mark is the result of placing the mark on a projected series.
type Mark struct {
	// The mark's position on the polyline.
	Pos Point
	// The polyline from the first point up to and including Pos. Drawing it
	// reveals the curve up to the mark.
	Prefix []Point
	// The arc length of Prefix divided by the arc length of the whole
	// polyline, in [0, 1].
	Fraction float64
	// Index of the last point whose x does not exceed the target, or -1 if
	// the target lies left of every point.
	Index int
	Clamp Clamp
	// Degenerate is set when the bracketing segment had zero width and the
	// interpolation fell back to its start point.
	Degenerate bool
}

// IsNaN reports whether the position or the fraction is NaN.
func (m Mark) IsNaN() bool {
	return m.Pos.IsNaN() || math.IsNaN(m.Fraction)
}

// LocateMark places the mark at targetX on a projected series, sentinels
// included (see [Projection.Project]).
//
// The mark lies on the segment whose x range brackets targetX, at the
// linearly interpolated y. Targets left of the first real point (index 1) or
// right of the last real point (index len-2) snap to that point, so the mark
// never rests on a sentinel. Inputs of fewer than three points cannot carry
// sentinels and clamp to their own first and last points instead.
// LocateMark reports false only for an empty series.
func LocateMark(pixels []Point, targetX float64) (Mark, bool) {
	n := len(pixels)
	if n == 0 {
		return Mark{}, false
	}

	m := Mark{Index: -1}
	if !math.IsNaN(targetX) {
		for i, pt := range pixels {
			if pt.X > targetX || i == n-1 {
				break
			}
			m.Index = i
		}
	}

	// Without room for two sentinels the ends of the input are the bounds.
	startBound, endBound := pixels[0], pixels[n-1]
	if n >= 3 {
		startBound, endBound = pixels[1], pixels[n-2]
	}

	var prefix []Point
	switch {
	case math.IsNaN(targetX) || targetX < startBound.X:
		m.Clamp = ClampStart
		m.Pos = startBound
		prefix = pixels[:1]
		if m.Index >= 0 {
			prefix = pixels[:m.Index+1]
		}
	case targetX > endBound.X:
		m.Clamp = ClampEnd
		m.Pos = endBound
		prefix = pixels[:m.Index+1]
	default:
		m.Index = max(m.Index, 0)
		last := pixels[m.Index]
		next := pixels[min(m.Index+1, n-1)]
		seg := Line{last, next}
		if seg.IsVertical() {
			m.Degenerate = true
			m.Pos = last
		} else {
			m.Pos = seg.Eval(seg.SolveForX(targetX))
		}
		prefix = pixels[:m.Index+1]
	}

	m.Prefix = make([]Point, 0, len(prefix)+1)
	m.Prefix = append(m.Prefix, prefix...)
	m.Prefix = append(m.Prefix, m.Pos)
	m.Fraction = Progress(m.Prefix, pixels)
	return m, true
}

// Progress returns the arc length of part relative to the arc length of
// whole, clamped to [0, 1]. A whole of zero length yields 0.
func Progress(part, whole []Point) float64 {
	total := PathLength(whole)
	if total == 0 {
		return 0
	}
	return min(max(PathLength(part)/total, 0), 1)
}

// StrokeStart returns the fraction of a projected series taken up by the
// segment from the leading sentinel to the first real point. Starting the
// stroke there keeps the sentinel segment invisible.
func StrokeStart(pixels []Point) float64 {
	if len(pixels) < 2 {
		return 0
	}
	return Progress(pixels[:2], pixels)
}
