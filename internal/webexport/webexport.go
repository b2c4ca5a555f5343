// Package webexport builds the web-ready JSON records consumed by the
// visualization frontend: per-curve records carrying SVG path data and
// measured length, and array records sharing one bounding box so all
// member curves render on a consistent scale.
package webexport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/floorcomposer/floorcomposer/internal/geometry"
	"github.com/floorcomposer/floorcomposer/internal/material"
	"github.com/floorcomposer/floorcomposer/internal/render"
)

// Default canvas size and margin for generated SVG paths. The margin
// matches the SVG document writer so record paths and rendered drawings
// share coordinates for a given canvas.
const (
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600
	CanvasMargin        = 50
)

// Canvas is the pixel size the SVG paths were generated for.
type Canvas struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GeometryRecord carries a curve's elements alongside its rendered path
// and measured length.
type GeometryRecord struct {
	Elements []geometry.Segment `json:"elements"`
	SVGPath  string             `json:"svg_path"`
	Length   float64            `json:"length"`
}

// CurveRecord is the boundary output for a single curve.
type CurveRecord struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	CurveType geometry.CurveType `json:"curve_type"`
	Material  *material.Material `json:"material"`
	Geometry  GeometryRecord     `json:"geometry"`
}

// ArrayRecord is the boundary output for a curve array. Canvas is omitted
// for the degenerate empty array.
type ArrayRecord struct {
	Name        string        `json:"name"`
	Curves      []CurveRecord `json:"curves"`
	Bounds      render.Bounds `json:"bounds"`
	TotalLength float64       `json:"total_length"`
	Canvas      *Canvas       `json:"canvas,omitempty"`
}

// Curve builds the record for a single curve. When bounds is nil the
// curve's own bounds are used; passing shared bounds keeps several curves
// on one scale.
func Curve(c geometry.Curve, bounds *render.Bounds, canvasWidth, canvasHeight int) (CurveRecord, error) {
	if bounds == nil {
		b := render.CalculateBounds([]geometry.Curve{c})
		bounds = &b
	}
	t := render.NewTransform(*bounds, canvasWidth, canvasHeight, CanvasMargin)

	path, err := render.CurvePath(c, t)
	if err != nil {
		return CurveRecord{}, fmt.Errorf("curve %q: %w", c.Name, err)
	}
	length, err := c.Length()
	if err != nil {
		return CurveRecord{}, fmt.Errorf("curve %q: %w", c.Name, err)
	}

	name := c.Name
	if name == "" {
		name = "Unnamed"
	}
	return CurveRecord{
		ID:        curveID(c.Name),
		Name:      name,
		CurveType: c.Type,
		Material:  c.Material,
		Geometry: GeometryRecord{
			Elements: c.Elements,
			SVGPath:  path,
			Length:   length,
		},
	}, nil
}

// CurveArray builds the record for a curve array with shared bounds. An
// empty array yields the degenerate record: no curves, unit bounds, zero
// total length, no canvas.
func CurveArray(array *geometry.CurveArray, canvasWidth, canvasHeight int) (ArrayRecord, error) {
	name := array.Name
	if len(array.Curves) == 0 {
		if name == "" {
			name = "Empty Array"
		}
		return ArrayRecord{
			Name:   name,
			Curves: []CurveRecord{},
			Bounds: render.CalculateBounds(nil),
		}, nil
	}
	if name == "" {
		name = "Curve Array"
	}

	bounds := render.CalculateBounds(array.Curves)

	records := make([]CurveRecord, 0, len(array.Curves))
	for _, c := range array.Curves {
		rec, err := Curve(c, &bounds, canvasWidth, canvasHeight)
		if err != nil {
			return ArrayRecord{}, err
		}
		records = append(records, rec)
	}

	total, err := array.TotalLength()
	if err != nil {
		return ArrayRecord{}, err
	}

	return ArrayRecord{
		Name:        name,
		Curves:      records,
		Bounds:      bounds,
		TotalLength: total,
		Canvas:      &Canvas{Width: canvasWidth, Height: canvasHeight},
	}, nil
}

// WriteJSON writes any record as indented JSON, creating parent
// directories as needed.
func WriteJSON(path string, record any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// WritePalette writes the frontend material palette.
func WritePalette(path string) error {
	return WriteJSON(path, material.Palette())
}

// curveID slugs the curve name for use as a stable record id; unnamed
// curves get a short random id instead.
func curveID(name string) string {
	if name == "" {
		return uuid.New().String()[:8]
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}
