package markplot

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one drawing command of a [BezPath].
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a path made of lines and cubic Béziers, stored as a slice of
// drawing commands. It is what the plot hands to whatever paints it: the
// curve itself, its shadow, the stroke up to the mark and the ribbon mask.
type BezPath []PathElement

// Transform returns a new path with an affine transformation applied to the
// path.
func (p BezPath) Transform(aff Affine) BezPath {
	if p == nil {
		return nil
	}
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Pop removes and returns the last element in the path. If the path contains no more
// elements, false is returned.
func (p *BezPath) Pop() (PathElement, bool) {
	if len(*p) == 0 {
		return PathElement{}, false
	}
	el := (*p)[len(*p)-1]
	*p = (*p)[:len(*p)-1]
	return el, true
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Truncate truncates the path, keeping the first n elements.
func (p *BezPath) Truncate(n int) {
	if n >= len(*p) {
		return
	}
	*p = (*p)[:n]
}

// Points returns the end point of every element, in order. Close path
// elements contribute nothing.
func (p BezPath) Points() []Point {
	var out []Point
	for _, el := range p {
		if pt, ok := el.EndPoint(); ok {
			out = append(out, pt)
		}
	}
	return out
}

// ControlBox returns a rectangle that conservatively encloses the path, using
// control points directly rather than computing tight bounds for curves.
func (p BezPath) ControlBox() Rect {
	first := true
	var cbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for i := range p {
		el := p[i]
		switch el.Kind {
		case MoveToKind, LineToKind:
			addPt(el.P0)
		case CubicToKind:
			addPt(el.P0)
			addPt(el.P1)
			addPt(el.P2)
		case ClosePathKind:
		}
	}
	return cbox
}

// SVG converts the path to an SVG path string.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}
