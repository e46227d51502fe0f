// Package dataset reads point series from CSV and YAML files.
//
// CSV files hold one x,y pair per record; a first record that does not parse
// as numbers is taken as a header. YAML files hold a sequence of {x, y}
// mappings.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/markplot/markplot"
	"github.com/markplot/markplot/chart"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Format int

const (
	CSV Format = iota + 1
	YAML
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatOf picks the format from a file name's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, errors.Errorf("%s: unsupported extension", path)
	}
}

// Load reads the series stored at path.
func Load(path string) (chart.Points, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening dataset")
	}
	defer f.Close()

	pts, err := Read(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s", path)
	}
	return pts, nil
}

// Read decodes a series from r. Points are returned in file order.
func Read(r io.Reader, format Format) (chart.Points, error) {
	switch format {
	case CSV:
		return readCSV(r)
	case YAML:
		return readYAML(r)
	default:
		return nil, errors.Errorf("unknown format %d", int(format))
	}
}

func readCSV(r io.Reader) (chart.Points, error) {
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = 2
	rs.TrimLeadingSpace = true
	rs.Comment = '#'

	var list chart.Points
	for line := 1; ; line++ {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errors.Wrap(err, "reading csv")
		}
		pt, err := parseRow(row)
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, errors.Wrapf(err, "record %d", line)
		}
		list = append(list, pt)
	}
	return list, nil
}

func parseRow(row []string) (markplot.Point, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
	if err != nil {
		return markplot.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return markplot.Point{}, errors.Wrap(err, "y")
	}
	return markplot.Pt(x, y), nil
}

type record struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
}

func readYAML(r io.Reader) (chart.Points, error) {
	var records []record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decoding yaml")
	}
	list := make(chart.Points, 0, len(records))
	for i, rec := range records {
		if rec.X == nil || rec.Y == nil {
			return nil, errors.Errorf("point %d: x and y are required", i)
		}
		list = append(list, markplot.Pt(*rec.X, *rec.Y))
	}
	return list, nil
}

// Write stores pts as CSV with an x,y header.
func Write(w io.Writer, pts []markplot.Point) error {
	ws := csv.NewWriter(w)
	if err := ws.Write([]string{"x", "y"}); err != nil {
		return errors.Wrap(err, "writing csv")
	}
	for _, pt := range pts {
		rec := []string{
			strconv.FormatFloat(pt.X, 'g', -1, 64),
			strconv.FormatFloat(pt.Y, 'g', -1, 64),
		}
		if err := ws.Write(rec); err != nil {
			return errors.Wrap(err, "writing csv")
		}
	}
	ws.Flush()
	return errors.Wrap(ws.Error(), "writing csv")
}
