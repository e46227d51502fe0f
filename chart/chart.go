// Package chart is a headless model of a line chart with a draggable mark.
//
// A [Chart] pulls points from a [DataSource], keeps the zoom window and the
// mark's position, and turns them into a [Frame]: every path, fraction and
// colour a renderer needs to paint the current state. It does no drawing and
// handles no input events itself; the host translates gestures into calls such
// as [Chart.Drag] or [Chart.Zoom].
//
// A Chart is not safe for concurrent use.
package chart

import (
	"io"
	"math"
	"slices"
	"strconv"
	"sync/atomic"

	"github.com/markplot/markplot"
	"github.com/sirupsen/logrus"
)

// DataSource supplies the points to plot in data space, in any order.
type DataSource interface {
	PointCount() int
	PointAt(i int) markplot.Point
}

// Points is a DataSource backed by a slice.
type Points []markplot.Point

func (p Points) PointCount() int              { return len(p) }
func (p Points) PointAt(i int) markplot.Point { return p[i] }

// Labeler formats axis values. Returning false hides the label.
type Labeler interface {
	HorizontalLabel(v float64) (string, bool)
	VerticalLabel(v float64) (string, bool)
}

type plainLabeler struct{}

func (plainLabeler) HorizontalLabel(v float64) (string, bool) {
	return strconv.FormatFloat(v, 'g', -1, 64), true
}

func (plainLabeler) VerticalLabel(v float64) (string, bool) {
	return strconv.FormatFloat(v, 'g', -1, 64), true
}

type Option func(*Chart)

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Chart) { c.log = l }
}

// WithLabeler replaces the default labels, which print values with %g.
func WithLabeler(l Labeler) Option {
	return func(c *Chart) { c.labeler = l }
}

// WithScheduler sets the scheduler for the guide line's delayed show and
// hide. It defaults to [TimerScheduler].
func WithScheduler(s Scheduler) Option {
	return func(c *Chart) { c.sched = s }
}

// OnMarkMoved registers f to be called with the mark's data-space position
// whenever a drag or a step to a neighbouring point moves it.
func OnMarkMoved(f func(markplot.Point)) Option {
	return func(c *Chart) { c.onMove = f }
}

// sameX is the tolerance for treating two data x values as equal.
const sameX = 1e-9

type Chart struct {
	cfg     Config
	src     DataSource
	log     logrus.FieldLogger
	labeler Labeler
	sched   Scheduler
	onMove  func(markplot.Point)

	bounds markplot.Rect
	// sorted input
	raw []markplot.Point
	// raw, smoothed if configured
	points []markplot.Point

	visibleLength float64
	startX        float64
	markX         float64
	dragging      bool

	// pixel offset of the dragged mark from markX
	dragDX float64

	content markplot.Rect
	proj    markplot.Projection
	pixels  []markplot.Point
	mark    markplot.Mark
	hasMark bool

	// set from the scheduler's goroutine
	guide atomic.Bool
}

// New validates cfg and returns a chart that has loaded src. src may be nil,
// in which case points are supplied with [Chart.SetPoints]. The chart has
// empty bounds until [Chart.SetBounds] is called.
func New(cfg Config, src DataSource, opts ...Option) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Chart{
		cfg:     cfg,
		src:     src,
		log:     discard,
		labeler: plainLabeler{},
		sched:   TimerScheduler{},
		markX:   cfg.MarkX,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.visibleLength = c.clampVisible(cfg.VisibleLength)
	c.startX = c.clampStart(cfg.StartX)
	c.log.WithFields(logrus.Fields{
		"axis":    cfg.Axis.String(),
		"smooth":  cfg.Smooth,
		"visible": c.visibleLength,
	}).Debug("created chart")
	c.ReloadData()
	return c, nil
}

func (c *Chart) Config() Config { return c.cfg }

// SetBounds sets the chart's frame in view pixels. The plot area is the
// bounds minus the configured insets.
func (c *Chart) SetBounds(r markplot.Rect) {
	c.bounds = r.Abs()
	c.recompute()
}

func (c *Chart) Bounds() markplot.Rect { return c.bounds }

// ReloadData pulls every point from the data source and replaces the plotted
// series. Points with NaN or infinite coordinates are dropped.
func (c *Chart) ReloadData() {
	if c.src == nil {
		c.recompute()
		return
	}
	n := c.src.PointCount()
	pts := make([]markplot.Point, 0, max(n, 0))
	for i := range n {
		pts = append(pts, c.src.PointAt(i))
	}
	c.SetPoints(pts)
	c.log.WithField("points", len(c.raw)).Debug("reloaded data")
}

// SetPoints replaces the plotted series with pts, which need not be sorted.
// Points with NaN or infinite coordinates are dropped.
func (c *Chart) SetPoints(pts []markplot.Point) {
	finite := make([]markplot.Point, 0, len(pts))
	for i, pt := range pts {
		if !pt.IsFinite() {
			c.log.WithFields(logrus.Fields{
				"index": i,
				"point": pt.String(),
			}).Warn("dropping non-finite point")
			continue
		}
		finite = append(finite, pt)
	}
	c.setPoints(finite)
}

func (c *Chart) setPoints(pts []markplot.Point) {
	c.raw = markplot.SortByX(pts)
	c.points = c.raw
	if c.cfg.Smooth {
		c.points = markplot.Approximate(c.raw, c.cfg.Accuracy)
	}
	c.recompute()
}

// Points returns the plotted data points, sorted by x, before smoothing.
func (c *Chart) Points() []markplot.Point {
	return slices.Clone(c.raw)
}

func (c *Chart) minVisible() float64 {
	return c.cfg.TotalLength / c.cfg.MaxZoomScale
}

func (c *Chart) clampVisible(l float64) float64 {
	return min(max(l, c.minVisible()), c.cfg.TotalLength)
}

func (c *Chart) clampStart(x float64) float64 {
	return min(max(x, 0), max(c.cfg.TotalLength-c.visibleLength, 0))
}

// clampMark limits x to the data's x range.
func (c *Chart) clampMark(x float64) float64 {
	if len(c.raw) == 0 {
		return x
	}
	return min(max(x, c.raw[0].X), c.raw[len(c.raw)-1].X)
}

func (c *Chart) VisibleLength() float64 { return c.visibleLength }

// SetVisibleLength sets the width of the visible window in data units,
// clamped to [TotalLength/MaxZoomScale, TotalLength].
func (c *Chart) SetVisibleLength(l float64) {
	if math.IsNaN(l) {
		return
	}
	c.visibleLength = c.clampVisible(l)
	c.startX = c.clampStart(c.startX)
	c.recompute()
}

// Zoom divides the visible length by scale, so that scales above 1 zoom in.
// The data x under the view pixel around stays in place, as far as the
// window's limits allow.
func (c *Chart) Zoom(scale float64, around markplot.Point) {
	if !positive(scale) {
		c.log.WithField("scale", scale).Debug("ignoring zoom")
		return
	}
	offset := around.X - c.content.X0
	focus := c.startX
	if perX := c.proj.LengthPerX; perX > 0 {
		focus += offset / perX
	}

	c.visibleLength = c.clampVisible(c.visibleLength / scale)
	start := focus
	if w := c.content.Width(); w > 0 {
		start -= offset * c.visibleLength / w
	}
	c.startX = c.clampStart(start)
	c.recompute()
	c.log.WithFields(logrus.Fields{
		"scale":   scale,
		"visible": c.visibleLength,
		"start":   c.startX,
	}).Debug("zoomed")
}

func (c *Chart) StartX() float64 { return c.startX }

// SetStartX moves the visible window's left edge to data x, clamped so the
// window stays within the plot.
func (c *Chart) SetStartX(x float64) {
	if !finite(x) {
		return
	}
	c.startX = c.clampStart(x)
	c.recompute()
}

// Scroll pans the visible window by dx view pixels.
func (c *Chart) Scroll(dx float64) {
	if perX := c.proj.LengthPerX; perX > 0 {
		c.SetStartX(c.startX + dx/perX)
	}
}

// MarkPosition returns the mark's committed data-space x.
func (c *Chart) MarkPosition() float64 { return c.markX }

// SetMarkPosition moves the mark to data x without notifying.
func (c *Chart) SetMarkPosition(x float64) {
	if !finite(x) {
		return
	}
	c.markX = x
	c.recompute()
}

// MarkValue returns the mark's current position in data space, and false if
// there is no data.
func (c *Chart) MarkValue() (markplot.Point, bool) {
	if !c.hasMark {
		return markplot.Point{}, false
	}
	return c.markValue(), true
}

// BeginDrag starts a drag of the mark. The guide line appears after the
// configured delay.
func (c *Chart) BeginDrag() {
	c.dragging = true
	c.dragDX = 0
	c.scheduleGuide(true)
	c.log.WithField("mark", c.markX).Debug("drag started")
}

// Drag shows the mark dx view pixels away from its committed position. The
// committed position does not change until EndDrag; the offset survives
// resizing, zooming and scrolling in the meantime.
func (c *Chart) Drag(dx float64) {
	if !finite(dx) {
		return
	}
	c.dragDX = dx
	c.placeMark(c.markPixelX() + dx)
	c.notify()
}

// EndDrag commits the mark dx view pixels away from where the drag started,
// clamped to the data's x range. The guide line disappears after the
// configured delay.
func (c *Chart) EndDrag(dx float64) {
	if perX := c.proj.LengthPerX; perX > 0 && finite(dx) {
		c.markX = c.clampMark((c.markPixelX() + dx) / perX)
	}
	c.dragging = false
	c.dragDX = 0
	c.recompute()
	c.notify()
	c.scheduleGuide(false)
	c.log.WithField("mark", c.markX).Debug("drag ended")
}

// Dragging reports whether a drag is in progress.
func (c *Chart) Dragging() bool { return c.dragging }

// GuideVisible reports whether the horizontal guide through the mark is
// shown.
func (c *Chart) GuideVisible() bool { return c.guide.Load() }

func (c *Chart) scheduleGuide(show bool) {
	c.sched.AfterFunc(c.cfg.GuideDelay, func() {
		c.guide.Store(show)
	})
}

// MoveMarkToNextPoint moves the mark to the first data point right of it. It
// returns the pixel positions the mark passes on the way, ending with its new
// position, or nil if there is no such point.
func (c *Chart) MoveMarkToNextPoint() []markplot.Point {
	i := slices.IndexFunc(c.raw, func(pt markplot.Point) bool {
		return pt.X > c.markX+sameX
	})
	if i < 0 {
		return nil
	}
	return c.sweepTo(c.raw[i].X)
}

// MoveMarkToPreviousPoint moves the mark to the last data point left of it.
// See [Chart.MoveMarkToNextPoint].
func (c *Chart) MoveMarkToPreviousPoint() []markplot.Point {
	for i := len(c.raw) - 1; i >= 0; i-- {
		if c.raw[i].X < c.markX-sameX {
			return c.sweepTo(c.raw[i].X)
		}
	}
	return nil
}

func (c *Chart) sweepTo(x float64) []markplot.Point {
	from, to := c.markPixelX(), x*c.proj.LengthPerX
	lo, hi := min(from, to), max(from, to)

	var sweep []markplot.Point
	for _, pt := range markplot.Inner(c.pixels) {
		if pt.X > lo && pt.X < hi {
			sweep = append(sweep, pt)
		}
	}
	if to < from {
		slices.Reverse(sweep)
	}

	c.markX = x
	c.recompute()
	if c.hasMark {
		sweep = append(sweep, c.mark.Pos)
	}
	c.notify()
	c.log.WithFields(logrus.Fields{
		"mark":  c.markX,
		"steps": len(sweep),
	}).Debug("moved mark")
	return sweep
}

// SetCurrentValue sets the value at the mark. The first data point within
// one unit of the mark's x takes value y; if there is none, a point is added
// at the mark.
func (c *Chart) SetCurrentValue(y float64) {
	if !finite(y) {
		return
	}
	pts := slices.Clone(c.raw)
	i := slices.IndexFunc(pts, func(pt markplot.Point) bool {
		return math.Abs(pt.X-c.markX) <= 1
	})
	if i >= 0 {
		pts[i].Y = y
	} else {
		pts = append(pts, markplot.Pt(c.markX, y))
	}
	c.setPoints(pts)
	c.log.WithFields(logrus.Fields{
		"x":      c.markX,
		"y":      y,
		"merged": i >= 0,
	}).Debug("set current value")
}

func (c *Chart) recompute() {
	c.content = c.bounds.Inset(c.cfg.Insets)
	perX, perY := markplot.ScaleFactors(c.content.Size(), c.visibleLength, c.cfg.TotalHeight, c.cfg.TrackingOffset)
	c.proj = markplot.Projection{
		LengthPerX:     perX,
		LengthPerY:     perY,
		TotalHeight:    c.cfg.TotalHeight,
		InvertVertical: c.cfg.Axis == AxisUp,
		TrackingOffset: c.cfg.TrackingOffset,
		ViewHeight:     c.bounds.Height(),
	}
	c.pixels = c.proj.Project(c.points)
	x := c.markPixelX()
	if c.dragging {
		x += c.dragDX
	}
	c.placeMark(x)
}

func (c *Chart) markPixelX() float64 {
	return c.markX * c.proj.LengthPerX
}

func (c *Chart) placeMark(x float64) {
	m, ok := markplot.LocateMark(c.pixels, x)
	if ok {
		c.mark = m
	}
	c.hasMark = ok
}

func (c *Chart) markValue() markplot.Point {
	pt, ok := c.proj.Unproject(c.mark.Pos)
	if !ok {
		return markplot.Pt(c.markX, 0)
	}
	return pt
}

func (c *Chart) notify() {
	if c.onMove != nil && c.hasMark {
		c.onMove(c.markValue())
	}
}
