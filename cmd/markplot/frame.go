package main

import (
	"context"
	"math"

	"github.com/markplot/markplot"
	"github.com/markplot/markplot/chart"
	"github.com/markplot/markplot/internal/config"
	"github.com/markplot/markplot/internal/dataset"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"
)

func frameCommand() *cli.Command {
	return &cli.Command{
		Name:      "frame",
		Usage:     "print the chart state for a data file after a scripted interaction",
		ArgsUsage: "DATA",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "zoom",
				Usage: "zoom by this scale around the centre of the plot",
			},
			&cli.FloatFlag{
				Name:  "scroll",
				Usage: "pan the visible window by this many pixels",
			},
			&cli.FloatFlag{
				Name:  "mark",
				Usage: "place the mark at this data x",
			},
			&cli.FloatFlag{
				Name:  "drag",
				Usage: "drag the mark by this many pixels",
			},
			&cli.IntFlag{
				Name:  "next",
				Usage: "step the mark this many data points to the right",
			},
			&cli.IntFlag{
				Name:  "prev",
				Usage: "step the mark this many data points to the left",
			},
			&cli.FloatFlag{
				Name:  "value",
				Usage: "set the value at the mark",
			},
			&cli.IntFlag{
				Name:  "precision",
				Usage: "decimal places in the output",
				Value: 2,
			},
		},
		Action: runFrame,
	}
}

func runFrame(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("frame: expected exactly one data file")
	}
	path := cmd.Args().First()
	f, l, err := setup(cmd)
	if err != nil {
		return err
	}
	c, err := openChart(f, path, l.WithField("file", path))
	if err != nil {
		return err
	}

	if cmd.IsSet("zoom") {
		c.Zoom(cmd.Float("zoom"), c.Bounds().Center())
	}
	if cmd.IsSet("scroll") {
		c.Scroll(cmd.Float("scroll"))
	}
	if cmd.IsSet("mark") {
		c.SetMarkPosition(cmd.Float("mark"))
	}
	if cmd.IsSet("drag") {
		c.BeginDrag()
		c.EndDrag(cmd.Float("drag"))
	}
	for range cmd.Int("next") {
		c.MoveMarkToNextPoint()
	}
	for range cmd.Int("prev") {
		c.MoveMarkToPreviousPoint()
	}
	if cmd.IsSet("value") {
		c.SetCurrentValue(cmd.Float("value"))
	}

	doc := newFrameDoc(c.Frame(), cmd.Int("precision"))
	out, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encoding frame")
	}
	_, err = writer(cmd).Write(out)
	return err
}

// openChart builds a chart over the series at path, sized to the configured
// view.
func openChart(f *config.File, path string, log logrus.FieldLogger) (*chart.Chart, error) {
	cfg, err := f.Chart()
	if err != nil {
		return nil, err
	}
	pts, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	c, err := chart.New(cfg, pts, chart.WithLogger(log))
	if err != nil {
		return nil, err
	}
	c.SetBounds(f.Bounds())
	return c, nil
}

type pointDoc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type markDoc struct {
	Pixel    pointDoc `yaml:"pixel"`
	Value    pointDoc `yaml:"value"`
	Clamp    string   `yaml:"clamp"`
	Stroke   string   `yaml:"stroke"`
	Ribbon   string   `yaml:"ribbon"`
	Tint     string   `yaml:"tint"`
	TintDark string   `yaml:"tint_dark"`
}

type labelsDoc struct {
	Min   string `yaml:"min,omitempty"`
	Max   string `yaml:"max,omitempty"`
	Now   string `yaml:"now,omitempty"`
	Value string `yaml:"value,omitempty"`
}

type frameDoc struct {
	ContentWidth  float64    `yaml:"content_width"`
	ContentHeight float64    `yaml:"content_height"`
	ContentOffset float64    `yaml:"content_offset"`
	Points        []pointDoc `yaml:"points,flow"`
	Length        float64    `yaml:"length"`
	Path          string     `yaml:"path"`
	Shadow        string     `yaml:"shadow"`
	StrokeStart   float64    `yaml:"stroke_start"`
	StrokeEnd     float64    `yaml:"stroke_end"`
	Vertex        pointDoc   `yaml:"vertex"`
	Mark          *markDoc   `yaml:"mark,omitempty"`
	Labels        labelsDoc  `yaml:"labels"`
}

func newFrameDoc(fr chart.Frame, precision int) frameDoc {
	round := func(v float64) float64 {
		p := math.Pow10(precision)
		return math.Round(v*p) / p
	}
	pt := func(p markplot.Point) pointDoc {
		return pointDoc{X: round(p.X), Y: round(p.Y)}
	}
	svg := func(p markplot.BezPath) string {
		return p.SVG(markplot.SVGOptions{MaxPrecision: precision})
	}

	doc := frameDoc{
		ContentWidth:  round(fr.ContentSize.Width),
		ContentHeight: round(fr.ContentSize.Height),
		ContentOffset: round(fr.ContentOffset.X),
		Length:        round(markplot.PathLength(fr.Points)),
		Path:          svg(fr.Path),
		Shadow:        svg(fr.Shadow),
		StrokeStart:   round(fr.StrokeStart),
		StrokeEnd:     round(fr.StrokeEnd),
		Vertex:        pt(fr.Vertex),
		Labels: labelsDoc{
			Min:   fr.Labels.Min,
			Max:   fr.Labels.Max,
			Now:   fr.Labels.Now,
			Value: fr.Labels.Value,
		},
	}
	for _, p := range fr.Points {
		doc.Points = append(doc.Points, pt(p))
	}
	if fr.HasMark {
		doc.Mark = &markDoc{
			Pixel:    pt(fr.Mark),
			Value:    pt(fr.MarkValue),
			Clamp:    fr.MarkClamp.String(),
			Stroke:   svg(fr.Stroke),
			Ribbon:   svg(fr.Ribbon),
			Tint:     config.FormatHex(fr.Tint),
			TintDark: config.FormatHex(fr.TintDark),
		}
	}
	return doc
}
