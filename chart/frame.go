package chart

import (
	"image/color"
	"slices"

	"github.com/markplot/markplot"
)

// Frame is a snapshot of everything a renderer needs. Pixel coordinates are
// relative to the scrollable content, whose top-left corner sits at
// PlotOrigin in the view; subtract ContentOffset to get visible positions.
type Frame struct {
	// Size of the whole plot at the current zoom, and how far it is
	// scrolled.
	ContentSize   markplot.Size
	ContentOffset markplot.Vec2
	PlotOrigin    markplot.Point

	// Projected series, sentinels included.
	Points []markplot.Point
	Path   markplot.BezPath
	Shadow markplot.BezPath
	// Portion of Path to stroke, as fractions of its length. The stroke
	// starts past the leading sentinel and ends at the mark.
	StrokeStart float64
	StrokeEnd   float64

	HasMark   bool
	Mark      markplot.Point
	MarkValue markplot.Point
	MarkClamp markplot.Clamp
	// Path up to the mark, and the band trailing it.
	Stroke markplot.BezPath
	Ribbon markplot.BezPath

	// Fill colours for the area under the curve, chosen by the mark's
	// height.
	Tint     color.RGBA
	TintDark color.RGBA
	// Centre of the highlight near the curve's highest point.
	Vertex markplot.Point

	Dragging bool
	Guide    bool
	Labels   Labels
}

// Labels are the axis texts. An empty string means the label is hidden.
type Labels struct {
	Min string
	Max string
	// The mark's x, shown only while the mark rests on a data point other
	// than the first or last.
	Now   string
	Value string
}

// Frame returns the chart's current state.
func (c *Chart) Frame() Frame {
	perX := c.proj.LengthPerX
	f := Frame{
		ContentSize:   markplot.Sz(perX*c.cfg.TotalLength, c.content.Height()),
		ContentOffset: markplot.Vec(c.startX*perX, 0),
		PlotOrigin:    c.content.Origin(),
		Points:        slices.Clone(c.pixels),
		Dragging:      c.dragging,
		Guide:         c.guide.Load(),
	}
	if len(c.pixels) == 0 {
		return f
	}

	f.Path = markplot.LinearPath(c.pixels)
	f.Shadow = markplot.ShadowOutline(c.pixels, c.cfg.ShadowDrop)
	f.StrokeStart = markplot.StrokeStart(c.pixels)
	f.Vertex = c.vertex(f.ContentSize)

	if c.hasMark {
		m := c.mark
		f.HasMark = true
		f.Mark = m.Pos
		f.MarkValue = c.markValue()
		f.MarkClamp = m.Clamp
		f.StrokeEnd = m.Fraction
		f.Stroke = markplot.LinearPath(m.Prefix)
		f.Ribbon = markplot.Ribbon(m.Prefix, c.cfg.RibbonWidth, m.Pos.X)
		f.Tint = c.tint(m.Pos)
		f.TintDark = Darken(f.Tint)
	}
	f.Labels = c.labels(f.MarkValue)
	return f
}

// tint picks the fill colour for a mark at pixel position pos: Low at the
// bottom of the data range, High at the top.
func (c *Chart) tint(pos markplot.Point) color.RGBA {
	perY := c.proj.LengthPerY
	if perY == 0 {
		return c.cfg.Colors.Low
	}
	f := 1 - pos.Y/perY/c.cfg.TotalHeight
	return LerpColor(c.cfg.Colors.Low, c.cfg.Colors.High, f)
}

// vertex places the highlight slightly inside the content from the highest
// projected point, by 8% of the width and 5% of the height.
func (c *Chart) vertex(content markplot.Size) markplot.Point {
	top, ok := markplot.Highest(markplot.Inner(c.pixels))
	if !ok {
		return markplot.Point{}
	}
	d := markplot.Vec(content.Width*0.08, content.Height*0.05)
	if top.X < content.Width/2 {
		return top.Translate(d)
	}
	return top.Translate(d.Negate())
}

func (c *Chart) labels(value markplot.Point) Labels {
	var l Labels
	if len(c.raw) == 0 {
		return l
	}
	first, last := c.raw[0], c.raw[len(c.raw)-1]
	if s, ok := c.labeler.HorizontalLabel(first.X); ok {
		l.Min = s
	}
	if s, ok := c.labeler.HorizontalLabel(last.X); ok {
		l.Max = s
	}
	if !c.hasMark {
		return l
	}
	if s, ok := c.labeler.VerticalLabel(value.Y); ok {
		l.Value = s
	}
	if c.dragging {
		return l
	}
	i := slices.IndexFunc(c.raw, func(pt markplot.Point) bool {
		return sameFloat(pt.X, c.markX)
	})
	if i <= 0 || i == len(c.raw)-1 || sameFloat(c.raw[i].X, last.X) {
		return l
	}
	if s, ok := c.labeler.HorizontalLabel(c.raw[i].X); ok {
		l.Now = s
	}
	return l
}

func sameFloat(a, b float64) bool {
	return a-b <= sameX && b-a <= sameX
}
