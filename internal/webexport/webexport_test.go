package webexport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorcomposer/floorcomposer/internal/geometry"
	"github.com/floorcomposer/floorcomposer/internal/material"
	"github.com/floorcomposer/floorcomposer/internal/render"
)

func TestCurveRecord(t *testing.T) {
	c, err := geometry.NewRectangle(2, 1, geometry.Pt(0, 0), "Edge Beam")
	require.NoError(t, err)

	rec, err := Curve(c, nil, DefaultCanvasWidth, DefaultCanvasHeight)
	require.NoError(t, err)

	assert.Equal(t, "edge_beam", rec.ID)
	assert.Equal(t, "Edge Beam", rec.Name)
	assert.Equal(t, geometry.Closed, rec.CurveType)
	assert.Len(t, rec.Geometry.Elements, 4)
	assert.InDelta(t, 6.0, rec.Geometry.Length, 1e-9)
	assert.Contains(t, rec.Geometry.SVGPath, "M ")
	assert.Contains(t, rec.Geometry.SVGPath, "Z")
}

func TestCurveRecordUsesCanvasMargin(t *testing.T) {
	c, err := geometry.NewRectangle(2, 1, geometry.Pt(0, 0), "Edge Beam")
	require.NoError(t, err)

	// Record paths share the document writer's 50px margin, not a
	// margin-less fit.
	bounds := render.CalculateBounds([]geometry.Curve{c})
	want, err := render.CurvePath(c, render.NewTransform(bounds, 800, 600, 50))
	require.NoError(t, err)

	rec, err := Curve(c, nil, 800, 600)
	require.NoError(t, err)
	assert.Equal(t, want, rec.Geometry.SVGPath)
}

func TestCurveRecordUnnamed(t *testing.T) {
	c, err := geometry.NewLineCurve(geometry.Pt(0, 0), geometry.Pt(1, 0), "")
	require.NoError(t, err)

	rec, err := Curve(c, nil, 800, 600)
	require.NoError(t, err)

	assert.Equal(t, "Unnamed", rec.Name)
	assert.Len(t, rec.ID, 8)
}

func TestCurveRecordJSONShape(t *testing.T) {
	c, err := geometry.NewMaterialCurve(
		[]geometry.Segment{geometry.Line{Start: geometry.Pt(0, 0), End: geometry.Pt(1, 0)}},
		geometry.Open, "Deck", "steel")
	require.NoError(t, err)

	rec, err := Curve(c, nil, 800, 600)
	require.NoError(t, err)

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "open", decoded["curve_type"])

	mat, ok := decoded["material"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, material.Steel.Name, mat["name"])

	geo, ok := decoded["geometry"].(map[string]any)
	require.True(t, ok)
	elements, ok := geo["elements"].([]any)
	require.True(t, ok)
	require.Len(t, elements, 1)
	assert.Equal(t, "line", elements[0].(map[string]any)["type"])
}

func TestCurveArrayRecord(t *testing.T) {
	array := geometry.NewCurveArray("Floor Build-Up")
	for _, name := range []string{"Deck", "Slab"} {
		c, err := geometry.NewRectangle(1, 0.1, geometry.Pt(0, 0), name)
		require.NoError(t, err)
		array.Append(c)
	}

	rec, err := CurveArray(array, 800, 600)
	require.NoError(t, err)

	assert.Equal(t, "Floor Build-Up", rec.Name)
	require.Len(t, rec.Curves, 2)
	assert.InDelta(t, 4.4, rec.TotalLength, 1e-9)
	require.NotNil(t, rec.Canvas)
	assert.Equal(t, 800, rec.Canvas.Width)

	// Members share the array bounds, not their own.
	assert.Equal(t, render.CalculateBounds(array.Curves), rec.Bounds)
}

func TestCurveArrayRecordEmpty(t *testing.T) {
	rec, err := CurveArray(geometry.NewCurveArray(""), 800, 600)
	require.NoError(t, err)

	assert.Equal(t, "Empty Array", rec.Name)
	assert.Empty(t, rec.Curves)
	assert.Zero(t, rec.TotalLength)
	assert.Equal(t, render.Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}, rec.Bounds)
	assert.Nil(t, rec.Canvas)

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "canvas")
	assert.Contains(t, string(data), `"curves":[]`)
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "record.json")

	c, err := geometry.NewRectangle(1, 1, geometry.Pt(0, 0), "Box")
	require.NoError(t, err)
	rec, err := Curve(c, nil, 800, 600)
	require.NoError(t, err)

	require.NoError(t, WriteJSON(path, rec))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "box", decoded["id"])
}

func TestWritePalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.json")
	require.NoError(t, WritePalette(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var palette map[string]material.PaletteEntry
	require.NoError(t, json.Unmarshal(data, &palette))
	assert.Contains(t, palette, "concrete")
}
