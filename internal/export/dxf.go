package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/yofu/dxf"

	"github.com/floorcomposer/floorcomposer/internal/geometry"
)

// arcChordSegments is the tessellation density for arc segments written
// to DXF. CAD packages re-fit polylines, so chords are good enough for
// construction drawings.
const arcChordSegments = 32

// ExportDXF writes every curve of the array as an LWPOLYLINE on its own
// layer. Coordinates are written in meters, matching the model space.
func ExportDXF(path string, array *geometry.CurveArray) error {
	if len(array.Curves) == 0 {
		return fmt.Errorf("no curves to export")
	}

	drawing := dxf.NewDrawing()

	seen := map[string]int{}
	for i, c := range array.Curves {
		layer := layerName(c.Name, i, seen)
		if _, err := drawing.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("layer %q: %w", layer, err)
		}

		vertices, err := curveVertices(c)
		if err != nil {
			return fmt.Errorf("curve %q: %w", c.Name, err)
		}
		if len(vertices) < 2 {
			continue
		}
		if _, err := drawing.LwPolyline(c.Type == geometry.Closed, vertices...); err != nil {
			return fmt.Errorf("curve %q: %w", c.Name, err)
		}
	}

	return drawing.SaveAs(path)
}

// curveVertices flattens a curve into polyline vertices. Lines contribute
// their endpoints; arcs are tessellated into chords.
func curveVertices(c geometry.Curve) ([][]float64, error) {
	var vertices [][]float64
	push := func(p geometry.Point) {
		if n := len(vertices); n > 0 {
			last := vertices[n-1]
			if last[0] == p.X && last[1] == p.Y {
				return
			}
		}
		vertices = append(vertices, []float64{p.X, p.Y})
	}

	for _, el := range c.Elements {
		switch seg := el.(type) {
		case geometry.Line:
			push(seg.Start)
			push(seg.End)
		case geometry.Arc:
			for _, p := range arcChordPoints(seg, arcChordSegments) {
				push(p)
			}
		default:
			return nil, &geometry.UnknownElementError{Segment: el}
		}
	}
	return vertices, nil
}

// arcChordPoints samples points along an arc, honoring its sweep
// direction.
func arcChordPoints(a geometry.Arc, segments int) []geometry.Point {
	radius := a.Radius()
	startAngle := math.Atan2(a.Start.Y-a.Center.Y, a.Start.X-a.Center.X)
	endAngle := math.Atan2(a.End.Y-a.Center.Y, a.End.X-a.Center.X)

	if a.Clockwise {
		if endAngle >= startAngle {
			endAngle -= 2 * math.Pi
		}
	} else {
		if endAngle <= startAngle {
			endAngle += 2 * math.Pi
		}
	}

	pts := make([]geometry.Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		angle := startAngle + t*(endAngle-startAngle)
		pts = append(pts, geometry.Pt(
			a.Center.X+radius*math.Cos(angle),
			a.Center.Y+radius*math.Sin(angle),
		))
	}
	return pts
}

// layerName sanitizes a curve name into a DXF layer name, uniquified
// across the drawing.
func layerName(name string, index int, seen map[string]int) string {
	if name == "" {
		name = fmt.Sprintf("CURVE_%d", index+1)
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	base := b.String()
	seen[base]++
	if seen[base] > 1 {
		return fmt.Sprintf("%s_%d", base, seen[base])
	}
	return base
}
