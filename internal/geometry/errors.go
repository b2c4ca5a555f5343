package geometry

import "fmt"

// DiscontinuityError reports a gap between two adjacent curve elements
// larger than the validation tolerance. Index is the position of the first
// element of the offending pair.
type DiscontinuityError struct {
	Index int
	Gap   float64
}

func (e *DiscontinuityError) Error() string {
	return fmt.Sprintf("curve discontinuity between element %d and %d (gap %g)", e.Index, e.Index+1, e.Gap)
}

// ClosureError reports that a closed curve's last end point does not meet
// its first start point within tolerance.
type ClosureError struct {
	Gap float64
}

func (e *ClosureError) Error() string {
	return fmt.Sprintf("closed curve is not properly closed (gap %g)", e.Gap)
}

// UnknownElementError reports a segment implementation outside Line and Arc.
type UnknownElementError struct {
	Segment Segment
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("unknown element type %T", e.Segment)
}

// InsufficientPointsError reports a polyline with fewer than two points.
type InsufficientPointsError struct {
	Count int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("need at least 2 points for a polyline, got %d", e.Count)
}
