package geometry

import (
	"encoding/json"
	"math"
)

// Segment is an atomic drawable piece of a curve. The two concrete
// implementations are Line and Arc; code that measures or renders segments
// type-switches over them and reports UnknownElementError for anything else.
type Segment interface {
	// Endpoints returns the segment's start and end points.
	Endpoints() (start, end Point)
}

// Line is a straight segment between two points.
type Line struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Endpoints implements Segment.
func (l Line) Endpoints() (Point, Point) { return l.Start, l.End }

// Length returns the line's length.
func (l Line) Length() float64 {
	return Distance(l.Start, l.End)
}

// MarshalJSON tags the segment so consumers can distinguish lines from arcs.
func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Start Point  `json:"start"`
		End   Point  `json:"end"`
	}{"line", l.Start, l.End})
}

// Arc is a circular arc between two points around a center.
type Arc struct {
	Start     Point `json:"start"`
	End       Point `json:"end"`
	Center    Point `json:"center"`
	Clockwise bool  `json:"clockwise"`
}

// Endpoints implements Segment.
func (a Arc) Endpoints() (Point, Point) { return a.Start, a.End }

// Radius returns the arc radius, measured from the start point only.
// If End is not equidistant from Center the arc is geometrically
// inconsistent, but no error is raised; the end point's distance to the
// center is never checked.
func (a Arc) Radius() float64 {
	return Distance(a.Start, a.Center)
}

// Angle returns the swept angle in radians, always in [0, 2π].
func (a Arc) Angle() float64 {
	startAngle := math.Atan2(a.Start.Y-a.Center.Y, a.Start.X-a.Center.X)
	endAngle := math.Atan2(a.End.Y-a.Center.Y, a.End.X-a.Center.X)

	angle := endAngle - startAngle
	if a.Clockwise && angle > 0 {
		angle -= 2 * math.Pi
	} else if !a.Clockwise && angle < 0 {
		angle += 2 * math.Pi
	}
	return math.Abs(angle)
}

// Length returns the arc length (radius times swept angle).
func (a Arc) Length() float64 {
	return a.Radius() * a.Angle()
}

// MarshalJSON tags the segment so consumers can distinguish arcs from lines.
func (a Arc) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string `json:"type"`
		Start     Point  `json:"start"`
		End       Point  `json:"end"`
		Center    Point  `json:"center"`
		Clockwise bool   `json:"clockwise"`
	}{"arc", a.Start, a.End, a.Center, a.Clockwise})
}

// SegmentLength returns the length of any segment. Segments other than
// Line and Arc yield an UnknownElementError.
func SegmentLength(s Segment) (float64, error) {
	switch seg := s.(type) {
	case Line:
		return seg.Length(), nil
	case Arc:
		return seg.Length(), nil
	default:
		return 0, &UnknownElementError{Segment: s}
	}
}
