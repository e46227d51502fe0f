// Package config loads the YAML configuration of the markplot command.
package config

import (
	"encoding/hex"
	"image/color"
	"io"
	"os"
	"strings"
	"time"

	"github.com/markplot/markplot"
	"github.com/markplot/markplot/chart"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// File mirrors the configuration document. Keys missing from the document
// keep the values of [Defaults].
type File struct {
	LogLevel string `yaml:"log_level"`

	TotalLength    float64       `yaml:"total_length"`
	TotalHeight    float64       `yaml:"total_height"`
	VisibleLength  float64       `yaml:"visible_length"`
	StartX         float64       `yaml:"start_x"`
	MaxZoomScale   float64       `yaml:"max_zoom_scale"`
	Axis           string        `yaml:"axis"`
	TrackingOffset float64       `yaml:"tracking_offset"`
	Smooth         bool          `yaml:"smooth"`
	Accuracy       int           `yaml:"accuracy"`
	Insets         Insets        `yaml:"insets"`
	Colors         Colors        `yaml:"colors"`
	RibbonWidth    float64       `yaml:"ribbon_width"`
	ShadowDrop     float64       `yaml:"shadow_drop"`
	GuideDelay     time.Duration `yaml:"guide_delay"`
	MarkX          float64       `yaml:"mark_x"`

	View View `yaml:"view"`
}

type Insets struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Right  float64 `yaml:"right"`
}

// Colors are written as #rrggbb or #rrggbbaa.
type Colors struct {
	Low  string `yaml:"low"`
	High string `yaml:"high"`
}

// View is the pixel size of the rendered chart.
type View struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Defaults returns the configuration used when no file is given: the chart
// defaults, a y-up axis and a 320×222 view.
func Defaults() *File {
	d := chart.DefaultConfig()
	return &File{
		LogLevel:       "info",
		TotalLength:    d.TotalLength,
		TotalHeight:    d.TotalHeight,
		VisibleLength:  d.VisibleLength,
		StartX:         d.StartX,
		MaxZoomScale:   d.MaxZoomScale,
		Axis:           chart.AxisUp.String(),
		TrackingOffset: d.TrackingOffset,
		Smooth:         d.Smooth,
		Accuracy:       d.Accuracy,
		Insets: Insets{
			Top:    d.Insets.Top,
			Left:   d.Insets.Left,
			Bottom: d.Insets.Bottom,
			Right:  d.Insets.Right,
		},
		Colors: Colors{
			Low:  FormatHex(d.Colors.Low),
			High: FormatHex(d.Colors.High),
		},
		RibbonWidth: d.RibbonWidth,
		ShadowDrop:  d.ShadowDrop,
		GuideDelay:  d.GuideDelay,
		MarkX:       d.MarkX,
		View:        View{Width: 320, Height: 222},
	}
}

// Load reads the configuration at path. An empty path yields [Defaults].
func Load(path string) (*File, error) {
	if path == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return f, nil
}

// Parse decodes a configuration document over [Defaults]. Unknown keys are an
// error.
func Parse(data []byte) (*File, error) {
	f := Defaults()
	if err := yaml.UnmarshalStrict(data, f); err != nil {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	return f, nil
}

// Chart converts the file into a validated chart configuration.
func (f *File) Chart() (chart.Config, error) {
	axis, err := chart.ParseVerticalAxis(f.Axis)
	if err != nil {
		return chart.Config{}, errors.Wrap(err, "axis")
	}
	low, err := ParseHex(f.Colors.Low)
	if err != nil {
		return chart.Config{}, errors.Wrap(err, "colors.low")
	}
	high, err := ParseHex(f.Colors.High)
	if err != nil {
		return chart.Config{}, errors.Wrap(err, "colors.high")
	}
	cfg := chart.Config{
		TotalLength:    f.TotalLength,
		TotalHeight:    f.TotalHeight,
		VisibleLength:  f.VisibleLength,
		StartX:         f.StartX,
		MaxZoomScale:   f.MaxZoomScale,
		Axis:           axis,
		TrackingOffset: f.TrackingOffset,
		Smooth:         f.Smooth,
		Accuracy:       f.Accuracy,
		Insets: markplot.Insets{
			Top:    f.Insets.Top,
			Left:   f.Insets.Left,
			Bottom: f.Insets.Bottom,
			Right:  f.Insets.Right,
		},
		Colors:      chart.Colors{Low: low, High: high},
		RibbonWidth: f.RibbonWidth,
		ShadowDrop:  f.ShadowDrop,
		GuideDelay:  f.GuideDelay,
		MarkX:       f.MarkX,
	}
	if err := cfg.Validate(); err != nil {
		return chart.Config{}, err
	}
	return cfg, nil
}

// Bounds returns the view as a rectangle at the origin.
func (f *File) Bounds() markplot.Rect {
	return markplot.NewRectFromOrigin(markplot.Pt(0, 0), markplot.Sz(f.View.Width, f.View.Height))
}

// ParseHex parses a colour written as #rrggbb or #rrggbbaa. The leading #
// is optional; a missing alpha means opaque.
func ParseHex(s string) (color.RGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 && len(raw) != 8 {
		return color.RGBA{}, errors.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "color %q", s)
	}
	c := color.RGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

// FormatHex is the inverse of [ParseHex]. The alpha digits are omitted for
// opaque colours.
func FormatHex(c color.RGBA) string {
	b := []byte{c.R, c.G, c.B}
	if c.A != 0xff {
		b = append(b, c.A)
	}
	return "#" + hex.EncodeToString(b)
}

// Logger returns a text logger writing to w at the named level.
func Logger(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l, nil
}
