// Package render turns model-space curves into canvas-space output:
// axis-aligned bounds, the model-to-canvas coordinate transform, SVG path
// data, and complete SVG documents.
package render

import "github.com/floorcomposer/floorcomposer/internal/geometry"

// Bounds is an axis-aligned bounding box in model units.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the box.
func (b Bounds) Center() geometry.Point {
	return geometry.Pt((b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2)
}

// CalculateBounds computes the bounding box over all segments of all
// curves. Arc segments additionally contribute their four cardinal extrema,
// since an arc can bulge past its endpoints. Empty input falls back to the
// unit box {0,1,0,1}.
func CalculateBounds(curves []geometry.Curve) Bounds {
	var points []geometry.Point

	for _, c := range curves {
		for _, el := range c.Elements {
			start, end := el.Endpoints()
			points = append(points, start, end)

			if arc, ok := el.(geometry.Arc); ok {
				r := arc.Radius()
				points = append(points,
					geometry.Pt(arc.Center.X-r, arc.Center.Y),
					geometry.Pt(arc.Center.X+r, arc.Center.Y),
					geometry.Pt(arc.Center.X, arc.Center.Y-r),
					geometry.Pt(arc.Center.X, arc.Center.Y+r),
				)
			}
		}
	}

	if len(points) == 0 {
		return Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	}

	b := Bounds{MinX: points[0].X, MaxX: points[0].X, MinY: points[0].Y, MaxY: points[0].Y}
	for _, p := range points[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}
