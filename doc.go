// Package markplot provides the geometry behind a line chart with a draggable
// mark: a cursor that can be placed anywhere along the plotted curve, reveals
// the curve up to its position and drags a ribbon behind it.
//
// # Pipeline
//
// Data arrives as unordered points. [SortByX] orders them and [Approximate]
// optionally smooths the polyline by sampling a cubic Bézier between every pair
// of neighbours (see [ControlPoints] for the shape of those curves). A
// [Projection] then maps the series from data space to the pixel space of the
// plot, adding a sentinel below the view at either end so that fills and
// shadows close outside the visible area.
//
// [LocateMark] places the mark on the projected series at a pixel x and
// reports how far along the curve it sits, as a fraction of arc length.
// [OffsetCurve] and [Ribbon] build the band that trails the mark.
//
// # Primitives
//
// The package works with [Point] and [Vec2] values, which are distinct types
// for positions and displacements, [Size], [Rect] and [Affine]. Paths are
// represented as [BezPath], a slice of [PathElement] drawing commands, which
// can be serialized with [BezPath.SVG].
//
// # Coordinate systems
//
// Pixel space is y-down, as is common in graphics. In data space, y is the
// series value; whether larger values render higher or lower is decided by
// [Projection.InvertVertical].
//
// # Degenerate input
//
// Every function is total. Empty series produce empty results, a single point
// passes through smoothing unchanged, and zero-width segments resolve to their
// start point instead of producing NaN.
package markplot
