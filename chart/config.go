package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/markplot/markplot"
)

var (
	// ErrAxisUnset indicates that Config.Axis was left at its zero value.
	ErrAxisUnset = errors.New("vertical axis direction not set")
	// ErrNonPositive indicates a value that must be positive and finite.
	ErrNonPositive = errors.New("must be positive and finite")
	// ErrNegative indicates a value that must not be negative.
	ErrNegative = errors.New("must not be negative")
	// ErrZoomScale indicates a maximum zoom scale below 1.
	ErrZoomScale = errors.New("maximum zoom scale must be at least 1")
	// ErrColorUnset indicates a missing tint colour.
	ErrColorUnset = errors.New("color not set")
	// ErrOutOfRange indicates a value outside the plot's data range.
	ErrOutOfRange = errors.New("out of range")
)

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid chart config: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// VerticalAxis selects which way data values grow on screen. It has no usable
// default; a Config must pick one.
type VerticalAxis int

const (
	AxisUnset VerticalAxis = iota
	// AxisDown plots raw values in the y-down pixel space: larger values
	// render lower.
	AxisDown
	// AxisUp flips values against the total height: larger values render
	// higher.
	AxisUp
)

func (a VerticalAxis) String() string {
	switch a {
	case AxisUnset:
		return "unset"
	case AxisDown:
		return "down"
	case AxisUp:
		return "up"
	default:
		return fmt.Sprintf("VerticalAxis(%d)", int(a))
	}
}

// ParseVerticalAxis parses "up" or "down", ignoring case.
func ParseVerticalAxis(s string) (VerticalAxis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "down":
		return AxisDown, nil
	case "up":
		return AxisUp, nil
	default:
		return AxisUnset, fmt.Errorf("unknown vertical axis %q, want \"up\" or \"down\"", s)
	}
}

// Colors are the two ends of the tint applied under the curve. The tint moves
// from Low towards High as the mark rises.
type Colors struct {
	Low  color.RGBA
	High color.RGBA
}

// Config holds the plot's fixed parameters. Lengths and heights are in data
// units unless noted otherwise.
type Config struct {
	// Data-space extent of the whole plot.
	TotalLength float64
	TotalHeight float64
	// Width of the initially visible window and its left edge.
	VisibleLength float64
	StartX        float64
	// VisibleLength never drops below TotalLength/MaxZoomScale.
	MaxZoomScale float64

	Axis VerticalAxis
	// Subtracted from every value before scaling, leaving room for the mark.
	TrackingOffset float64

	// Smooth replaces the polyline with sampled Bézier splines, Accuracy
	// samples per segment.
	Smooth   bool
	Accuracy int

	// Pixels reserved around the plot area.
	Insets markplot.Insets
	Colors Colors
	// Pixel width of the ribbon trailing the mark.
	RibbonWidth float64
	// Pixel drop of the shadow under the curve.
	ShadowDrop float64
	// Delay before the horizontal guide appears or disappears around a drag.
	GuideDelay time.Duration
	// Initial data-space x of the mark.
	MarkX float64
}

// DefaultConfig returns the configuration of a 24×10 plot with smoothing
// enabled. The vertical axis is left unset.
func DefaultConfig() Config {
	return Config{
		TotalLength:   24,
		TotalHeight:   10,
		VisibleLength: 24,
		MaxZoomScale:  10,
		Smooth:        true,
		Accuracy:      markplot.DefaultAccuracy,
		Insets:        markplot.Insets{Top: 22},
		Colors: Colors{
			Low:  color.RGBA{R: 255, G: 23, B: 92, A: 255},
			High: color.RGBA{R: 115, G: 214, B: 69, A: 255},
		},
		RibbonWidth: 8,
		ShadowDrop:  4,
		GuideDelay:  300 * time.Millisecond,
		MarkX:       12,
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Validate reports the first invalid field as a *ConfigError.
func (cfg Config) Validate() error {
	fail := func(field string, err error) error {
		return &ConfigError{Field: field, Err: err}
	}
	switch {
	case !positive(cfg.TotalLength):
		return fail("TotalLength", ErrNonPositive)
	case !positive(cfg.TotalHeight):
		return fail("TotalHeight", ErrNonPositive)
	case !positive(cfg.VisibleLength):
		return fail("VisibleLength", ErrNonPositive)
	case !finite(cfg.StartX):
		return fail("StartX", ErrOutOfRange)
	case math.IsNaN(cfg.MaxZoomScale) || cfg.MaxZoomScale < 1:
		return fail("MaxZoomScale", ErrZoomScale)
	case cfg.Axis != AxisDown && cfg.Axis != AxisUp:
		return fail("Axis", ErrAxisUnset)
	case !finite(cfg.TrackingOffset) || cfg.TrackingOffset < 0:
		return fail("TrackingOffset", ErrNegative)
	case cfg.TrackingOffset >= cfg.TotalHeight:
		return fail("TrackingOffset", ErrOutOfRange)
	case cfg.Smooth && cfg.Accuracy < 1:
		return fail("Accuracy", ErrNonPositive)
	case cfg.Colors.Low == (color.RGBA{}):
		return fail("Colors.Low", ErrColorUnset)
	case cfg.Colors.High == (color.RGBA{}):
		return fail("Colors.High", ErrColorUnset)
	case !finite(cfg.RibbonWidth) || cfg.RibbonWidth < 0:
		return fail("RibbonWidth", ErrNegative)
	case !finite(cfg.ShadowDrop) || cfg.ShadowDrop < 0:
		return fail("ShadowDrop", ErrNegative)
	case cfg.GuideDelay < 0:
		return fail("GuideDelay", ErrNegative)
	case !finite(cfg.MarkX):
		return fail("MarkX", ErrOutOfRange)
	}
	in := cfg.Insets
	for _, v := range []float64{in.Top, in.Left, in.Bottom, in.Right} {
		if !finite(v) || v < 0 {
			return fail("Insets", ErrNegative)
		}
	}
	return nil
}
