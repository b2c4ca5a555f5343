package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/floorcomposer/floorcomposer/internal/geometry"
)

// CurvePath converts a curve into an SVG path data string under the given
// transform. Lines become L commands, arcs become A commands with radius
// scaled into canvas space, and closed curves are terminated with Z.
func CurvePath(c geometry.Curve, t Transform) (string, error) {
	var b strings.Builder

	for i, el := range c.Elements {
		switch seg := el.(type) {
		case geometry.Line:
			startX, startY := t.Apply(seg.Start)
			endX, endY := t.Apply(seg.End)

			if i == 0 {
				fmt.Fprintf(&b, "M %.2f %.2f", startX, startY)
			}
			fmt.Fprintf(&b, " L %.2f %.2f", endX, endY)

		case geometry.Arc:
			startX, startY := t.Apply(seg.Start)
			endX, endY := t.Apply(seg.End)

			if i == 0 {
				fmt.Fprintf(&b, "M %.2f %.2f", startX, startY)
			}
			radius := seg.Radius() * t.Scale
			largeArc, sweep := arcFlags(seg)
			fmt.Fprintf(&b, " A %.2f %.2f 0 %d %d %.2f %.2f", radius, radius, largeArc, sweep, endX, endY)

		default:
			return "", &geometry.UnknownElementError{Segment: el}
		}
	}

	if c.Type == geometry.Closed {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("Z")
	}
	return strings.TrimSpace(b.String()), nil
}

// arcFlags derives the SVG large-arc and sweep flags for an arc. The
// canvas Y axis is inverted relative to model space, so a model-space
// clockwise arc rotates counter-clockwise on screen: sweep is 0 for
// clockwise arcs and 1 otherwise. This sign inversion lives only here.
func arcFlags(a geometry.Arc) (largeArc, sweep int) {
	if a.Angle() > math.Pi {
		largeArc = 1
	}
	if !a.Clockwise {
		sweep = 1
	}
	return largeArc, sweep
}
