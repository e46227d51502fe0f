package chart

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/markplot/markplot"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type manualScheduler struct {
	delays []time.Duration
	funcs  []func()
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) {
	s.delays = append(s.delays, d)
	s.funcs = append(s.funcs, f)
}

func (s *manualScheduler) run() {
	for _, f := range s.funcs {
		f()
	}
	s.funcs = nil
}

var spikes = Points{
	markplot.Pt(5, 5),
	markplot.Pt(0, 5),
	markplot.Pt(12, 8),
	markplot.Pt(3, 2),
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Axis = AxisDown
	cfg.Smooth = false
	cfg.Insets = markplot.Insets{}
	cfg.MarkX = 4
	return cfg
}

// newChart returns a chart over spikes in a 240×100 view, so that one data
// unit is ten pixels on both axes.
func newChart(t *testing.T, cfg Config, opts ...Option) *Chart {
	t.Helper()
	c, err := New(cfg, spikes, opts...)
	require.NoError(t, err)
	c.SetBounds(markplot.Rect{X0: 0, Y0: 0, X1: 240, Y1: 100})
	return c
}

func requireNear(t *testing.T, want, got markplot.Point) {
	t.Helper()
	require.InDelta(t, want.X, got.X, 1e-9, "x of %v", got)
	require.InDelta(t, want.Y, got.Y, 1e-9, "y of %v", got)
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Axis = AxisUnset
	_, err := New(cfg, spikes)
	require.ErrorIs(t, err, ErrAxisUnset)

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, "Axis", cerr.Field)
}

func TestReloadDataSortsAndDrops(t *testing.T) {
	logger, hook := test.NewNullLogger()
	src := Points{
		markplot.Pt(5, 5),
		markplot.Pt(math.NaN(), 1),
		markplot.Pt(0, 5),
		markplot.Pt(3, math.Inf(1)),
	}
	c, err := New(testConfig(), src, WithLogger(logger))
	require.NoError(t, err)
	require.Equal(t, []markplot.Point{markplot.Pt(0, 5), markplot.Pt(5, 5)}, c.Points())

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.Equal(t, logrus.WarnLevel, e.Level)
		require.Equal(t, "dropping non-finite point", e.Message)
	}
	require.Equal(t, 3, hook.LastEntry().Data["index"])
}

func TestFrameProjection(t *testing.T) {
	c := newChart(t, testConfig())
	f := c.Frame()

	require.Equal(t, markplot.Sz(240, 100), f.ContentSize)
	require.Equal(t, []markplot.Point{
		markplot.Pt(-1, 101),
		markplot.Pt(0, 50),
		markplot.Pt(30, 20),
		markplot.Pt(50, 50),
		markplot.Pt(120, 80),
		markplot.Pt(121, 101),
	}, f.Points)

	require.True(t, f.HasMark)
	requireNear(t, markplot.Pt(40, 35), f.Mark)
	requireNear(t, markplot.Pt(4, 3.5), f.MarkValue)
	require.Equal(t, markplot.ClampNone, f.MarkClamp)
	require.Equal(t, markplot.StrokeStart(f.Points), f.StrokeStart)
	require.Greater(t, f.StrokeEnd, f.StrokeStart)
	require.Less(t, f.StrokeEnd, 1.0)

	prefix := f.Stroke.Points()
	requireNear(t, f.Mark, prefix[len(prefix)-1])
	require.NotEmpty(t, f.Ribbon)
	require.NotEmpty(t, f.Shadow)
}

func TestFrameAxisUp(t *testing.T) {
	cfg := testConfig()
	cfg.Axis = AxisUp
	c := newChart(t, cfg)
	f := c.Frame()
	require.Equal(t, markplot.Pt(30, 80), f.Points[2])
	require.Equal(t, markplot.Pt(120, 20), f.Points[4])
	requireNear(t, markplot.Pt(4, 3.5), f.MarkValue)
}

func TestFrameInsets(t *testing.T) {
	cfg := testConfig()
	cfg.Insets = markplot.Insets{Top: 22}
	c, err := New(cfg, spikes)
	require.NoError(t, err)
	c.SetBounds(markplot.Rect{X0: 0, Y0: 0, X1: 240, Y1: 122})

	f := c.Frame()
	require.Equal(t, markplot.Pt(0, 22), f.PlotOrigin)
	require.Equal(t, markplot.Sz(240, 100), f.ContentSize)
	require.Equal(t, markplot.Pt(-1, 123), f.Points[0])
	require.Equal(t, markplot.Pt(0, 50), f.Points[1])
}

func TestSmoothing(t *testing.T) {
	cfg := testConfig()
	cfg.Smooth = true
	cfg.Accuracy = 5
	c := newChart(t, cfg)
	f := c.Frame()
	require.Len(t, f.Points, 1+5*3+2)
	require.Len(t, c.Points(), 4)
}

func TestZoom(t *testing.T) {
	c := newChart(t, testConfig())

	c.Zoom(2, markplot.Pt(120, 0))
	require.Equal(t, 12.0, c.VisibleLength())
	require.Equal(t, 6.0, c.StartX())
	f := c.Frame()
	require.Equal(t, markplot.Sz(480, 100), f.ContentSize)
	require.Equal(t, markplot.Vec(120, 0), f.ContentOffset)

	c.Zoom(0.5, markplot.Pt(120, 0))
	require.Equal(t, 24.0, c.VisibleLength())
	require.Equal(t, 0.0, c.StartX())

	c.Zoom(1000, markplot.Pt(0, 0))
	require.InDelta(t, 2.4, c.VisibleLength(), 1e-12)
	require.Equal(t, 0.0, c.StartX())

	c.Zoom(0, markplot.Pt(0, 0))
	c.Zoom(math.NaN(), markplot.Pt(0, 0))
	require.InDelta(t, 2.4, c.VisibleLength(), 1e-12)
}

func TestScroll(t *testing.T) {
	c := newChart(t, testConfig())
	c.Scroll(100)
	require.Equal(t, 0.0, c.StartX(), "fully zoomed out window cannot scroll")

	c.SetVisibleLength(12)
	c.Scroll(20)
	require.Equal(t, 1.0, c.StartX())
	c.Scroll(1e6)
	require.Equal(t, 12.0, c.StartX())
	c.Scroll(-1e6)
	require.Equal(t, 0.0, c.StartX())

	c.SetVisibleLength(1e9)
	require.Equal(t, 24.0, c.VisibleLength())
}

func TestDrag(t *testing.T) {
	sched := &manualScheduler{}
	var moved []markplot.Point
	c := newChart(t, testConfig(),
		WithScheduler(sched),
		OnMarkMoved(func(pt markplot.Point) { moved = append(moved, pt) }),
	)

	c.BeginDrag()
	require.True(t, c.Dragging())
	require.False(t, c.GuideVisible())
	require.Equal(t, []time.Duration{300 * time.Millisecond}, sched.delays)
	sched.run()
	require.True(t, c.GuideVisible())

	c.Drag(10)
	require.Equal(t, 4.0, c.MarkPosition())
	requireNear(t, markplot.Pt(50, 50), c.Frame().Mark)
	require.Len(t, moved, 1)
	requireNear(t, markplot.Pt(5, 5), moved[0])

	c.EndDrag(10)
	require.False(t, c.Dragging())
	require.InDelta(t, 5.0, c.MarkPosition(), 1e-12)
	require.Len(t, moved, 2)
	require.True(t, c.GuideVisible())
	sched.run()
	require.False(t, c.GuideVisible())

	c.BeginDrag()
	c.EndDrag(1e5)
	require.Equal(t, 12.0, c.MarkPosition())
	c.BeginDrag()
	c.EndDrag(-1e5)
	require.Equal(t, 0.0, c.MarkPosition())
}

func TestDragSurvivesRecompute(t *testing.T) {
	c := newChart(t, testConfig(), WithScheduler(&manualScheduler{}))
	c.BeginDrag()
	c.Drag(10)
	requireNear(t, markplot.Pt(50, 50), c.Frame().Mark)

	c.SetBounds(markplot.Rect{X0: 0, Y0: 0, X1: 240, Y1: 100})
	requireNear(t, markplot.Pt(50, 50), c.Frame().Mark)

	// Twenty pixels per unit: the committed x 4 sits at 80, the drag adds 10.
	c.SetBounds(markplot.Rect{X0: 0, Y0: 0, X1: 480, Y1: 100})
	requireNear(t, markplot.Pt(90, 42.5), c.Frame().Mark)
	c.Scroll(30)
	requireNear(t, markplot.Pt(90, 42.5), c.Frame().Mark)
	require.Equal(t, 4.0, c.MarkPosition())

	c.EndDrag(10)
	require.InDelta(t, 4.5, c.MarkPosition(), 1e-12)
	requireNear(t, markplot.Pt(90, 42.5), c.Frame().Mark)

	c.SetBounds(markplot.Rect{X0: 0, Y0: 0, X1: 240, Y1: 100})
	requireNear(t, markplot.Pt(45, 42.5), c.Frame().Mark)
}

func TestRibbonFollowsMark(t *testing.T) {
	c := newChart(t, testConfig(), WithScheduler(&manualScheduler{}))
	width := c.Config().RibbonWidth

	check := func(want markplot.Point) {
		t.Helper()
		f := c.Frame()
		requireNear(t, want, f.Mark)
		pts := f.Ribbon.Points()
		require.Contains(t, pts, f.Mark)
		maxX := math.Inf(-1)
		for _, pt := range pts {
			maxX = max(maxX, pt.X)
		}
		require.LessOrEqual(t, maxX, f.Mark.X+width)
		require.GreaterOrEqual(t, maxX, f.Mark.X)
		require.Equal(t, markplot.ClosePathKind, f.Ribbon[len(f.Ribbon)-1].Kind)
	}

	check(markplot.Pt(40, 35))
	c.BeginDrag()
	c.Drag(10)
	check(markplot.Pt(50, 50))
	c.EndDrag(-20)
	check(markplot.Pt(20, 30))
}

func TestMoveMarkToNextPoint(t *testing.T) {
	var moved []markplot.Point
	c := newChart(t, testConfig(), OnMarkMoved(func(pt markplot.Point) { moved = append(moved, pt) }))

	sweep := c.MoveMarkToNextPoint()
	require.Len(t, sweep, 1)
	requireNear(t, markplot.Pt(50, 50), sweep[0])
	require.Equal(t, 5.0, c.MarkPosition())

	sweep = c.MoveMarkToNextPoint()
	require.Len(t, sweep, 1)
	require.Equal(t, 12.0, c.MarkPosition())

	require.Nil(t, c.MoveMarkToNextPoint())
	require.Equal(t, 12.0, c.MarkPosition())
	require.Len(t, moved, 2)
	requireNear(t, markplot.Pt(12, 8), moved[1])

	sweep = c.MoveMarkToPreviousPoint()
	require.Len(t, sweep, 1)
	requireNear(t, markplot.Pt(50, 50), sweep[0])
	require.Equal(t, 5.0, c.MarkPosition())

	c.SetMarkPosition(0)
	require.Nil(t, c.MoveMarkToPreviousPoint())
}

func TestMoveMarkSweepsSmoothedPoints(t *testing.T) {
	cfg := testConfig()
	cfg.Smooth = true
	cfg.Accuracy = 4
	cfg.MarkX = 5
	c := newChart(t, cfg)

	sweep := c.MoveMarkToNextPoint()
	require.Len(t, sweep, 4)
	for i := 1; i < len(sweep); i++ {
		require.Greater(t, sweep[i].X, sweep[i-1].X)
	}
	requireNear(t, markplot.Pt(120, 80), sweep[3])

	sweep = c.MoveMarkToPreviousPoint()
	require.Len(t, sweep, 4)
	for i := 1; i < len(sweep); i++ {
		require.Less(t, sweep[i].X, sweep[i-1].X)
	}
	requireNear(t, markplot.Pt(50, 50), sweep[3])
}

func TestSetCurrentValue(t *testing.T) {
	c := newChart(t, testConfig())

	c.SetCurrentValue(7)
	require.Equal(t, []markplot.Point{
		markplot.Pt(0, 5),
		markplot.Pt(3, 7),
		markplot.Pt(5, 5),
		markplot.Pt(12, 8),
	}, c.Points())

	c.SetMarkPosition(8)
	c.SetCurrentValue(1)
	require.Equal(t, []markplot.Point{
		markplot.Pt(0, 5),
		markplot.Pt(3, 7),
		markplot.Pt(5, 5),
		markplot.Pt(8, 1),
		markplot.Pt(12, 8),
	}, c.Points())
	requireNear(t, markplot.Pt(8, 1), c.Frame().MarkValue)

	c.SetCurrentValue(math.NaN())
	require.Len(t, c.Points(), 5)
}

func TestLabels(t *testing.T) {
	cfg := testConfig()
	cfg.MarkX = 5
	c := newChart(t, cfg)
	require.Equal(t, Labels{Min: "0", Max: "12", Now: "5", Value: "5"}, c.Frame().Labels)

	c.SetMarkPosition(12)
	require.Equal(t, Labels{Min: "0", Max: "12", Value: "8"}, c.Frame().Labels)

	c.SetMarkPosition(4)
	require.Equal(t, Labels{Min: "0", Max: "12", Value: "3.5"}, c.Frame().Labels)

	c.SetMarkPosition(5)
	c.BeginDrag()
	require.Empty(t, c.Frame().Labels.Now)
}

type hiddenLabeler struct{}

func (hiddenLabeler) HorizontalLabel(float64) (string, bool) { return "", false }
func (hiddenLabeler) VerticalLabel(v float64) (string, bool) { return "≈", true }

func TestCustomLabeler(t *testing.T) {
	c := newChart(t, testConfig(), WithLabeler(hiddenLabeler{}))
	require.Equal(t, Labels{Value: "≈"}, c.Frame().Labels)
}

func TestTint(t *testing.T) {
	cfg := testConfig()
	cfg.MarkX = 5
	cfg.Colors = Colors{
		Low:  color.RGBA{A: 255},
		High: color.RGBA{R: 200, G: 100, B: 50, A: 255},
	}
	c := newChart(t, cfg)
	f := c.Frame()
	require.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 255}, f.Tint)
	require.Equal(t, color.RGBA{R: 49, A: 255}, f.TintDark)
}

func TestVertex(t *testing.T) {
	c := newChart(t, testConfig())
	requireNear(t, markplot.Pt(30+240*0.08, 20+100*0.05), c.Frame().Vertex)
}

func TestEmptyChart(t *testing.T) {
	c, err := New(testConfig(), nil)
	require.NoError(t, err)
	c.SetBounds(markplot.Rect{X0: 0, Y0: 0, X1: 240, Y1: 100})

	f := c.Frame()
	require.False(t, f.HasMark)
	require.Nil(t, f.Path)
	require.Nil(t, f.Points)
	require.Equal(t, Labels{}, f.Labels)
	require.Nil(t, c.MoveMarkToNextPoint())
	require.Nil(t, c.MoveMarkToPreviousPoint())
	_, ok := c.MarkValue()
	require.False(t, ok)

	c.SetCurrentValue(3)
	require.Equal(t, []markplot.Point{markplot.Pt(4, 3)}, c.Points())
	require.True(t, c.Frame().HasMark)
}
