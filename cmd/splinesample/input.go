package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"honnef.co/go/spline"
)

// document is the input file format. In TOML:
//
//	kind = "nurbs"
//	degree = 3
//	resolution = 200.0
//	points = [[0.0, 0.0], [100.0, 200.0], [200.0, 0.0], [300.0, 200.0]]
//	weights = [1.0, 5.0, 1.0, 1.0]
type document struct {
	Kind       spline.Kind  `toml:"kind" json:"kind"`
	Degree     int          `toml:"degree" json:"degree"`
	Resolution float64      `toml:"resolution" json:"resolution"`
	Tension    float64      `toml:"tension" json:"tension"`
	Points     [][2]float64 `toml:"points" json:"points"`
	Weights    []float64    `toml:"weights" json:"weights"`
}

var (
	errNoPoints  = errors.New("no control points")
	errNonFinite = errors.New("coordinates must be finite")
)

func (doc *document) points() []spline.Point {
	pts := make([]spline.Point, len(doc.Points))
	for i, p := range doc.Points {
		pts[i] = spline.Pt(p[0], p[1])
	}
	return pts
}

func (doc *document) config() spline.Config {
	return spline.Config{
		Resolution: doc.Resolution,
		Degree:     doc.Degree,
		Weights:    doc.Weights,
		Tension:    doc.Tension,
	}
}

// decodeDocument parses r as TOML or JSON, depending on format.
func decodeDocument(r io.Reader, format string) (*document, error) {
	var doc document
	switch format {
	case "toml":
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding TOML: %w", err)
		}
	case "json":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
	if len(doc.Points) == 0 {
		return nil, errNoPoints
	}
	for i, pt := range doc.points() {
		if pt.IsNaN() || pt.IsInf() {
			return nil, fmt.Errorf("point %d: %w: %v", i+1, errNonFinite, pt)
		}
	}
	return &doc, nil
}

// loadDocument reads the document at path. The format is taken from the file
// extension unless format is non-empty. A path of "-" reads standard input.
func loadDocument(path, format string) (*document, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			format = "json"
		default:
			format = "toml"
		}
	}

	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	doc, err := decodeDocument(r, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// parseWeights parses a comma-separated list of weights.
func parseWeights(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	ws := make([]float64, len(fields))
	for i, f := range fields {
		w, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("weight %d: %w", i+1, err)
		}
		ws[i] = w
	}
	return ws, nil
}

// closeLoop returns pts with its first point appended, unless it is already
// closed.
func closeLoop(pts []spline.Point) []spline.Point {
	if len(pts) < 2 || spline.Polyline(pts).IsClosed() {
		return pts
	}
	return append(pts[:len(pts):len(pts)], pts[0])
}
