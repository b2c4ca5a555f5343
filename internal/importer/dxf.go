// Package importer reads construction profiles from DXF files. LINE and
// ARC entities are chained into curves by endpoint proximity; LWPOLYLINE
// and CIRCLE entities become curves directly. Arc geometry is preserved
// exactly rather than tessellated.
package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/floorcomposer/floorcomposer/internal/geometry"
)

// chainTolerance is the maximum endpoint distance, in drawing units, at
// which two loose entities are considered connected.
const chainTolerance = 0.01

// ImportResult holds the results of a DXF import operation.
type ImportResult struct {
	Curves   []geometry.Curve
	Errors   []string
	Warnings []string
}

// ImportDXF reads every supported entity from a DXF file and returns the
// assembled curves. Unsupported entity types are skipped with a warning.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var loose []geometry.Segment
	curveNum := 0
	name := func() string {
		curveNum++
		return fmt.Sprintf("DXF Curve %d", curveNum)
	}

	skipped := map[string]int{}
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.Line:
			loose = append(loose, geometry.Line{
				Start: geometry.Pt(e.Start[0], e.Start[1]),
				End:   geometry.Pt(e.End[0], e.End[1]),
			})

		case *entity.Arc:
			loose = append(loose, arcSegment(e))

		case *entity.LwPolyline:
			c, err := polylineCurve(e, name())
			if err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped LWPOLYLINE: %v", err))
				curveNum--
				continue
			}
			result.Curves = append(result.Curves, c)

		case *entity.Circle:
			c, err := circleCurve(e, name())
			if err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped CIRCLE: %v", err))
				curveNum--
				continue
			}
			result.Curves = append(result.Curves, c)

		default:
			skipped[fmt.Sprintf("%T", ent)]++
		}
	}

	for kind, count := range skipped {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped %d unsupported %s entities", count, kind))
	}

	for _, chain := range chainSegments(loose, chainTolerance) {
		c, err := chainCurve(chain, name())
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped entity chain: %v", err))
			curveNum--
			continue
		}
		result.Curves = append(result.Curves, c)
	}

	if len(result.Curves) == 0 {
		result.Errors = append(result.Errors, "No usable shapes found in DXF file")
	}
	return result
}

// arcSegment converts a DXF ARC entity. DXF arcs always sweep
// counter-clockwise from the start angle to the end angle.
func arcSegment(a *entity.Arc) geometry.Arc {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius
	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180

	return geometry.Arc{
		Start:     geometry.Pt(cx+r*math.Cos(startRad), cy+r*math.Sin(startRad)),
		End:       geometry.Pt(cx+r*math.Cos(endRad), cy+r*math.Sin(endRad)),
		Center:    geometry.Pt(cx, cy),
		Clockwise: false,
	}
}

// polylineCurve converts an LWPOLYLINE entity. Vertices with a bulge
// produce arc segments; the bulge is the tangent of a quarter of the
// included angle, negative for clockwise sweeps. The polyline is closed
// when its endpoints coincide.
func polylineCurve(lw *entity.LwPolyline, name string) (geometry.Curve, error) {
	n := len(lw.Vertices)
	if n < 2 {
		return geometry.Curve{}, fmt.Errorf("fewer than 2 vertices")
	}

	first := geometry.Pt(lw.Vertices[0][0], lw.Vertices[0][1])
	last := geometry.Pt(lw.Vertices[n-1][0], lw.Vertices[n-1][1])
	closed := geometry.Distance(first, last) <= chainTolerance

	limit := n - 1
	if closed {
		limit = n // wrap the final segment back to the first vertex
	}

	var elements []geometry.Segment
	prev := first
	for i := 0; i < limit; i++ {
		nextIdx := (i + 1) % n
		next := geometry.Pt(lw.Vertices[nextIdx][0], lw.Vertices[nextIdx][1])
		if nextIdx == 0 {
			next = first
		}
		if prev == next {
			continue
		}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}

		if math.Abs(bulge) > 1e-9 {
			elements = append(elements, bulgeArc(prev, next, bulge))
		} else {
			elements = append(elements, geometry.Line{Start: prev, End: next})
		}
		prev = next
	}

	curveType := geometry.Open
	if closed {
		curveType = geometry.Closed
	}
	return geometry.NewCurve(elements, curveType, name)
}

// bulgeArc builds the arc between two polyline vertices from a DXF bulge
// factor.
func bulgeArc(p1, p2 geometry.Point, bulge float64) geometry.Arc {
	chord := geometry.Distance(p1, p2)
	sagitta := math.Abs(bulge) * chord / 2
	radius := (chord*chord/(4*sagitta) + sagitta) / 2

	// Unit normal on the left of the chord. A counter-clockwise arc keeps
	// its center on the left; clockwise mirrors it. For included angles
	// beyond a half circle the signed distance flips the side again.
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	perpX := -(p2.Y - p1.Y) / chord
	perpY := (p2.X - p1.X) / chord
	if bulge < 0 {
		perpX, perpY = -perpX, -perpY
	}
	dist := radius - sagitta

	return geometry.Arc{
		Start:     p1,
		End:       p2,
		Center:    geometry.Pt(mx+perpX*dist, my+perpY*dist),
		Clockwise: bulge < 0,
	}
}

// circleCurve converts a CIRCLE entity into a closed curve of two half
// arcs.
func circleCurve(c *entity.Circle, name string) (geometry.Curve, error) {
	cx, cy, r := c.Center[0], c.Center[1], c.Radius
	center := geometry.Pt(cx, cy)
	east := geometry.Pt(cx+r, cy)
	west := geometry.Pt(cx-r, cy)

	return geometry.NewCurve([]geometry.Segment{
		geometry.Arc{Start: east, End: west, Center: center},
		geometry.Arc{Start: west, End: east, Center: center},
	}, geometry.Closed, name)
}

// chainSegments connects loose segments into ordered chains by endpoint
// proximity. A segment whose end matches the chain tail is reversed
// before being appended.
func chainSegments(segs []geometry.Segment, tolerance float64) [][]geometry.Segment {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var chains [][]geometry.Segment

	for start := range segs {
		if used[start] {
			continue
		}
		used[start] = true
		chain := []geometry.Segment{segs[start]}

		changed := true
		for changed {
			changed = false
			_, tail := chain[len(chain)-1].Endpoints()

			for i, seg := range segs {
				if used[i] {
					continue
				}
				segStart, segEnd := seg.Endpoints()
				if geometry.Distance(tail, segStart) <= tolerance {
					chain = append(chain, snapStart(seg, tail))
				} else if geometry.Distance(tail, segEnd) <= tolerance {
					chain = append(chain, snapStart(reverseSegment(seg), tail))
				} else {
					continue
				}
				used[i] = true
				changed = true
				break
			}
		}

		chains = append(chains, chain)
	}

	return chains
}

// chainCurve assembles a chained segment sequence into a curve, closing
// it when the chain ends meet.
func chainCurve(chain []geometry.Segment, name string) (geometry.Curve, error) {
	first, _ := chain[0].Endpoints()
	_, last := chain[len(chain)-1].Endpoints()

	curveType := geometry.Open
	if len(chain) > 1 && geometry.Distance(first, last) <= chainTolerance {
		curveType = geometry.Closed
		chain[len(chain)-1] = snapEnd(chain[len(chain)-1], first)
	}
	return geometry.NewCurve(chain, curveType, name)
}

// reverseSegment flips a segment's direction. Reversing an arc swaps its
// endpoints and sweep direction.
func reverseSegment(s geometry.Segment) geometry.Segment {
	switch seg := s.(type) {
	case geometry.Line:
		return geometry.Line{Start: seg.End, End: seg.Start}
	case geometry.Arc:
		return geometry.Arc{Start: seg.End, End: seg.Start, Center: seg.Center, Clockwise: !seg.Clockwise}
	default:
		return s
	}
}

// snapStart rewrites a segment's start point to coincide exactly with
// the chain tail, absorbing small drawing gaps.
func snapStart(s geometry.Segment, p geometry.Point) geometry.Segment {
	switch seg := s.(type) {
	case geometry.Line:
		seg.Start = p
		return seg
	case geometry.Arc:
		seg.Start = p
		return seg
	default:
		return s
	}
}

// snapEnd rewrites a segment's end point.
func snapEnd(s geometry.Segment, p geometry.Point) geometry.Segment {
	switch seg := s.(type) {
	case geometry.Line:
		seg.End = p
		return seg
	case geometry.Arc:
		seg.End = p
		return seg
	default:
		return s
	}
}
