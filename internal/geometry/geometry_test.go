package geometry

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestPointDistance(t *testing.T) {
	if d := Distance(Pt(0, 0), Pt(3, 4)); d != 5.0 {
		t.Errorf("expected distance 5.0, got %g", d)
	}
}

func TestLineLengthSymmetric(t *testing.T) {
	a := Line{Start: Pt(0, 0), End: Pt(3, 4)}
	b := Line{Start: Pt(3, 4), End: Pt(0, 0)}
	if a.Length() != 5.0 {
		t.Errorf("expected length 5.0, got %g", a.Length())
	}
	if a.Length() != b.Length() {
		t.Errorf("length not symmetric: %g vs %g", a.Length(), b.Length())
	}
}

func TestArcRadiusFromStartPoint(t *testing.T) {
	// End point deliberately not equidistant from center; only the start
	// point determines the radius.
	arc := Arc{Start: Pt(1, 0), End: Pt(0, 2), Center: Pt(0, 0)}
	if r := arc.Radius(); r != 1.0 {
		t.Errorf("expected radius 1.0, got %g", r)
	}
}

func TestArcAngleQuarterCircle(t *testing.T) {
	arc := Arc{Start: Pt(1, 0), End: Pt(0, 1), Center: Pt(0, 0), Clockwise: false}
	if angle := arc.Angle(); math.Abs(angle-math.Pi/2) > 1e-10 {
		t.Errorf("expected angle pi/2, got %g", angle)
	}
}

func TestArcAngleAlwaysInRange(t *testing.T) {
	arcs := []Arc{
		{Start: Pt(1, 0), End: Pt(0, 1), Center: Pt(0, 0), Clockwise: false},
		{Start: Pt(1, 0), End: Pt(0, 1), Center: Pt(0, 0), Clockwise: true},
		{Start: Pt(0, 1), End: Pt(1, 0), Center: Pt(0, 0), Clockwise: false},
		{Start: Pt(-1, 0), End: Pt(-1, 0), Center: Pt(0, 0), Clockwise: true},
		{Start: Pt(1, 0), End: Pt(-1, 0), Center: Pt(0, 0), Clockwise: false},
	}
	for i, arc := range arcs {
		angle := arc.Angle()
		if angle < 0 || angle > 2*math.Pi {
			t.Errorf("arc %d: angle %g outside [0, 2pi]", i, angle)
		}
	}
}

func TestArcAngleClockwiseQuarter(t *testing.T) {
	// Going clockwise from (1,0) to (0,1) sweeps three quarters.
	arc := Arc{Start: Pt(1, 0), End: Pt(0, 1), Center: Pt(0, 0), Clockwise: true}
	if angle := arc.Angle(); math.Abs(angle-3*math.Pi/2) > 1e-10 {
		t.Errorf("expected angle 3pi/2, got %g", angle)
	}
}

func TestArcLengthQuarterCircle(t *testing.T) {
	arc := Arc{Start: Pt(1, 0), End: Pt(0, 1), Center: Pt(0, 0), Clockwise: false}
	if l := arc.Length(); math.Abs(l-math.Pi/2) > 1e-10 {
		t.Errorf("expected length pi/2, got %g", l)
	}
}

// fakeSegment is a Segment implementation outside Line and Arc.
type fakeSegment struct{}

func (fakeSegment) Endpoints() (Point, Point) { return Point{}, Point{} }

func TestSegmentLengthUnknownType(t *testing.T) {
	_, err := SegmentLength(fakeSegment{})
	var unknownErr *UnknownElementError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownElementError, got %v", err)
	}
}

func TestNewCurveContinuous(t *testing.T) {
	elements := []Segment{
		Line{Start: Pt(0, 0), End: Pt(1, 0)},
		Line{Start: Pt(1, 0), End: Pt(1, 1)},
	}
	c, err := NewCurve(elements, Open, "L-Shape")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "L-Shape" || c.Type != Open || len(c.Elements) != 2 {
		t.Errorf("unexpected curve: %+v", c)
	}
}

func TestNewCurveDiscontinuous(t *testing.T) {
	elements := []Segment{
		Line{Start: Pt(0, 0), End: Pt(1, 0)},
		Line{Start: Pt(2, 0), End: Pt(2, 1)}, // gap
	}
	_, err := NewCurve(elements, Open, "Invalid")
	var discErr *DiscontinuityError
	if !errors.As(err, &discErr) {
		t.Fatalf("expected DiscontinuityError, got %v", err)
	}
	if discErr.Index != 0 {
		t.Errorf("expected offending index 0, got %d", discErr.Index)
	}
}

func TestNewCurveClosedSquare(t *testing.T) {
	elements := []Segment{
		Line{Start: Pt(0, 0), End: Pt(1, 0)},
		Line{Start: Pt(1, 0), End: Pt(1, 1)},
		Line{Start: Pt(1, 1), End: Pt(0, 1)},
		Line{Start: Pt(0, 1), End: Pt(0, 0)},
	}
	c, err := NewCurve(elements, Closed, "Square")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstStart, _ := c.Elements[0].Endpoints()
	_, lastEnd := c.Elements[len(c.Elements)-1].Endpoints()
	if Distance(firstStart, lastEnd) > DefaultTolerance {
		t.Error("closed curve endpoints do not meet")
	}
}

func TestNewCurveUnclosedRaisesClosureError(t *testing.T) {
	// Three sides of a square tagged closed.
	elements := []Segment{
		Line{Start: Pt(0, 0), End: Pt(1, 0)},
		Line{Start: Pt(1, 0), End: Pt(1, 1)},
		Line{Start: Pt(1, 1), End: Pt(0, 1)},
	}
	_, err := NewCurve(elements, Closed, "Invalid")
	var closureErr *ClosureError
	if !errors.As(err, &closureErr) {
		t.Fatalf("expected ClosureError, got %v", err)
	}
}

func TestNewCurveEmptyIsValid(t *testing.T) {
	if _, err := NewCurve(nil, Open, ""); err != nil {
		t.Errorf("empty open curve should be valid, got %v", err)
	}
	if _, err := NewCurve(nil, Closed, ""); err != nil {
		t.Errorf("empty closed curve should be valid, got %v", err)
	}
}

func TestCurveLength(t *testing.T) {
	elements := []Segment{
		Line{Start: Pt(0, 0), End: Pt(3, 0)},
		Line{Start: Pt(3, 0), End: Pt(3, 4)},
	}
	c, err := NewCurve(elements, Open, "L-Shape")
	if err != nil {
		t.Fatal(err)
	}
	l, err := c.Length()
	if err != nil {
		t.Fatal(err)
	}
	if l != 7.0 {
		t.Errorf("expected length 7.0, got %g", l)
	}
}

func TestCurveLengthMixedElements(t *testing.T) {
	elements := []Segment{
		Line{Start: Pt(0, 0), End: Pt(1, 0)},
		Arc{Start: Pt(1, 0), End: Pt(1, 2), Center: Pt(1, 1), Clockwise: false},
	}
	c, err := NewCurve(elements, Open, "line+arc")
	if err != nil {
		t.Fatal(err)
	}
	l, err := c.Length()
	if err != nil {
		t.Fatal(err)
	}
	expected := 1.0 + math.Pi // half circle of radius 1
	if math.Abs(l-expected) > 1e-10 {
		t.Errorf("expected length %g, got %g", expected, l)
	}
}

func TestNewMaterialCurve(t *testing.T) {
	c, err := NewMaterialCurve([]Segment{Line{Start: Pt(0, 0), End: Pt(1, 0)}}, Open, "edge", "steel")
	if err != nil {
		t.Fatal(err)
	}
	if c.Material == nil || c.Material.Name != "steel" {
		t.Errorf("expected steel material, got %+v", c.Material)
	}

	// Unknown material names resolve to the default.
	c, err = NewMaterialCurve([]Segment{Line{Start: Pt(0, 0), End: Pt(1, 0)}}, Open, "edge", "unobtainium")
	if err != nil {
		t.Fatal(err)
	}
	if c.Material == nil || c.Material.Name != "concrete" {
		t.Errorf("expected concrete fallback, got %+v", c.Material)
	}
}

func TestCurvePoints(t *testing.T) {
	c, err := NewPolyline([]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}, false, "")
	if err != nil {
		t.Fatal(err)
	}
	points := c.Points()
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[0] != Pt(0, 0) || points[2] != Pt(1, 1) {
		t.Errorf("unexpected points: %v", points)
	}
}

func TestCurveTypeJSON(t *testing.T) {
	open, err := json.Marshal(Open)
	if err != nil {
		t.Fatal(err)
	}
	closed, err := json.Marshal(Closed)
	if err != nil {
		t.Fatal(err)
	}
	if string(open) != `"open"` || string(closed) != `"closed"` {
		t.Errorf("unexpected encodings: %s %s", open, closed)
	}
}

func TestSegmentJSONTags(t *testing.T) {
	data, err := json.Marshal(Line{Start: Pt(0, 0), End: Pt(1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["type"] != "line" {
		t.Errorf("expected line tag, got %v", decoded["type"])
	}

	data, err = json.Marshal(Arc{Start: Pt(1, 0), End: Pt(0, 1), Center: Pt(0, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["type"] != "arc" {
		t.Errorf("expected arc tag, got %v", decoded["type"])
	}
}

func TestCurveArray(t *testing.T) {
	open, err := NewPolyline([]Point{Pt(0, 0), Pt(1, 0)}, false, "open")
	if err != nil {
		t.Fatal(err)
	}
	closed, err := NewRectangle(2, 1, Pt(0, 0), "rect")
	if err != nil {
		t.Fatal(err)
	}

	array := NewCurveArray("Composition", open)
	array.Append(closed)

	if len(array.Curves) != 2 {
		t.Fatalf("expected 2 curves, got %d", len(array.Curves))
	}
	if n := len(array.OpenCurves()); n != 1 {
		t.Errorf("expected 1 open curve, got %d", n)
	}
	if n := len(array.ClosedCurves()); n != 1 {
		t.Errorf("expected 1 closed curve, got %d", n)
	}

	total, err := array.TotalLength()
	if err != nil {
		t.Fatal(err)
	}
	if total != 1.0+6.0 {
		t.Errorf("expected total length 7.0, got %g", total)
	}
}
