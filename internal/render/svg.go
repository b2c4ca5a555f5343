package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/floorcomposer/floorcomposer/internal/geometry"
)

// DefaultColors is the stroke color cycle for curve arrays.
var DefaultColors = []string{"#2563eb", "#dc2626", "#16a34a", "#ca8a04", "#9333ea", "#c2410c"}

// Document writes complete SVG documents for curves and curve arrays,
// with a background grid, title, and legend.
type Document struct {
	Width      int
	Height     int
	Margin     int
	ShowPoints bool // mark segment endpoints and arc centers
}

// NewDocument returns a document of the given pixel size with the default
// margin.
func NewDocument(width, height int) *Document {
	return &Document{Width: width, Height: height, Margin: 50}
}

// WriteCurve renders a single curve as an SVG document.
func (d *Document) WriteCurve(w io.Writer, c geometry.Curve) error {
	bounds := CalculateBounds([]geometry.Curve{c})
	t := NewTransform(bounds, d.Width, d.Height, d.Margin)

	path, err := CurvePath(c, t)
	if err != nil {
		return err
	}
	length, err := c.Length()
	if err != nil {
		return err
	}

	canvas := svg.New(w)
	canvas.Start(d.Width, d.Height)

	canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:2;fill:none", DefaultColors[0]))
	canvas.Path(path)
	canvas.Gend()

	if d.ShowPoints {
		d.drawControlPoints(canvas, c, t)
	}

	d.drawGrid(canvas, bounds, t)

	name := c.Name
	if name == "" {
		name = "Curve"
	}
	d.drawTitle(canvas, fmt.Sprintf("%s (%s) - %.3fm", name, c.Type, length))

	canvas.End()
	return nil
}

// WriteCurveArray renders every member curve on a shared scale, cycling
// through the color palette, with a legend naming each curve.
func (d *Document) WriteCurveArray(w io.Writer, array *geometry.CurveArray) error {
	bounds := CalculateBounds(array.Curves)
	t := NewTransform(bounds, d.Width, d.Height, d.Margin)

	total, err := array.TotalLength()
	if err != nil {
		return err
	}

	canvas := svg.New(w)
	canvas.Start(d.Width, d.Height)

	for i, c := range array.Curves {
		path, err := CurvePath(c, t)
		if err != nil {
			return err
		}
		canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:2;fill:none", DefaultColors[i%len(DefaultColors)]))
		canvas.Path(path)
		canvas.Gend()
	}

	d.drawGrid(canvas, bounds, t)
	d.drawLegend(canvas, array.Curves)

	name := array.Name
	if name == "" {
		name = "Curve Array"
	}
	d.drawTitle(canvas, fmt.Sprintf("%s - Total: %.3fm", name, total))

	canvas.End()
	return nil
}

// drawGrid draws light grid lines at nice-number intervals across the
// data extent.
func (d *Document) drawGrid(canvas *svg.SVG, b Bounds, t Transform) {
	step := math.Max(b.Width(), b.Height()) / 10
	if step <= 0 {
		return
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(step)))
	niceStep := magnitude * math.Ceil(step/magnitude)

	canvas.Gstyle("stroke:#e5e7eb;stroke-width:0.5;opacity:0.5")

	for x := math.Floor(b.MinX/niceStep) * niceStep; x <= b.MaxX; x += niceStep {
		x1, y1 := t.Apply(geometry.Pt(x, b.MinY))
		x2, y2 := t.Apply(geometry.Pt(x, b.MaxY))
		canvas.Line(int(x1), int(y1), int(x2), int(y2))
	}
	for y := math.Floor(b.MinY/niceStep) * niceStep; y <= b.MaxY; y += niceStep {
		x1, y1 := t.Apply(geometry.Pt(b.MinX, y))
		x2, y2 := t.Apply(geometry.Pt(b.MaxX, y))
		canvas.Line(int(x1), int(y1), int(x2), int(y2))
	}

	canvas.Gend()
}

// drawControlPoints marks segment endpoints, and arc centers in a
// contrasting color.
func (d *Document) drawControlPoints(canvas *svg.SVG, c geometry.Curve, t Transform) {
	canvas.Gstyle("fill:#ef4444")

	seen := map[geometry.Point]bool{}
	for _, el := range c.Elements {
		start, end := el.Endpoints()
		for _, p := range []geometry.Point{start, end} {
			if seen[p] {
				continue
			}
			seen[p] = true
			x, y := t.Apply(p)
			canvas.Circle(int(x), int(y), 3)
		}
		if arc, ok := el.(geometry.Arc); ok && !seen[arc.Center] {
			seen[arc.Center] = true
			x, y := t.Apply(arc.Center)
			canvas.Circle(int(x), int(y), 2, "fill:#fbbf24")
		}
	}

	canvas.Gend()
}

// drawLegend lists up to six curves with their color swatches.
func (d *Document) drawLegend(canvas *svg.SVG, curves []geometry.Curve) {
	const legendX, legendY = 20, 30

	for i, c := range curves {
		if i >= 6 {
			break
		}
		color := DefaultColors[i%len(DefaultColors)]
		yPos := legendY + i*20

		canvas.Rect(legendX, yPos-8, 15, 3, "fill:"+color)

		label := c.Name
		if label == "" {
			label = fmt.Sprintf("Curve %d", i+1)
		}
		canvas.Text(legendX+25, yPos, label, "font-family:Arial, sans-serif;font-size:12px;fill:#374151")
	}
}

func (d *Document) drawTitle(canvas *svg.SVG, title string) {
	canvas.Text(d.Width/2, 25, title,
		"font-family:Arial, sans-serif;font-size:16px;font-weight:bold;text-anchor:middle;fill:#111827")
}
