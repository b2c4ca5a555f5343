package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/floorcomposer/floorcomposer/internal/geometry"
)

// identity is a transform with unit scale and no offset, so path
// coordinates equal model coordinates with Y negated.
var identity = Transform{Scale: 1}

func TestCurvePathLines(t *testing.T) {
	c, err := geometry.NewPolyline([]geometry.Point{
		geometry.Pt(0, 0), geometry.Pt(1, 0), geometry.Pt(1, 1),
	}, false, "poly")
	if err != nil {
		t.Fatal(err)
	}

	path, err := CurvePath(c, identity)
	if err != nil {
		t.Fatal(err)
	}
	if path != "M 0.00 0.00 L 1.00 0.00 L 1.00 -1.00" {
		t.Errorf("unexpected path: %q", path)
	}
}

func TestCurvePathClosedEndsWithZ(t *testing.T) {
	c, err := geometry.NewRectangle(1, 1, geometry.Pt(0, 0), "rect")
	if err != nil {
		t.Fatal(err)
	}
	path, err := CurvePath(c, identity)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "Z") {
		t.Errorf("closed curve path should end with Z: %q", path)
	}
	if strings.Count(path, "M") != 1 {
		t.Errorf("expected a single move command: %q", path)
	}
}

func TestCurvePathArcCommand(t *testing.T) {
	arc := geometry.Arc{Start: geometry.Pt(1, 0), End: geometry.Pt(0, 1), Center: geometry.Pt(0, 0), Clockwise: false}
	c, err := geometry.NewCurve([]geometry.Segment{arc}, geometry.Open, "quarter")
	if err != nil {
		t.Fatal(err)
	}

	tf := Transform{Scale: 2}
	path, err := CurvePath(c, tf)
	if err != nil {
		t.Fatal(err)
	}
	// Radius 1 scaled by 2; quarter sweep is not a large arc; counter-
	// clockwise in model space means sweep flag 1.
	if path != "M 2.00 0.00 A 2.00 2.00 0 0 1 0.00 -2.00" {
		t.Errorf("unexpected path: %q", path)
	}
}

func TestArcFlagsSweepMirrorsClockwise(t *testing.T) {
	ccw := geometry.Arc{Start: geometry.Pt(1, 0), End: geometry.Pt(0, 1), Center: geometry.Pt(0, 0), Clockwise: false}
	cw := geometry.Arc{Start: geometry.Pt(0, 1), End: geometry.Pt(1, 0), Center: geometry.Pt(0, 0), Clockwise: true}

	largeArc, sweep := arcFlags(ccw)
	if largeArc != 0 || sweep != 1 {
		t.Errorf("ccw quarter: largeArc=%d sweep=%d, want 0 1", largeArc, sweep)
	}
	largeArc, sweep = arcFlags(cw)
	if largeArc != 0 || sweep != 0 {
		t.Errorf("cw quarter: largeArc=%d sweep=%d, want 0 0", largeArc, sweep)
	}
}

func TestArcFlagsLargeArc(t *testing.T) {
	// Clockwise from (1,0) to (0,1) sweeps three quarters of the circle.
	arc := geometry.Arc{Start: geometry.Pt(1, 0), End: geometry.Pt(0, 1), Center: geometry.Pt(0, 0), Clockwise: true}
	largeArc, _ := arcFlags(arc)
	if largeArc != 1 {
		t.Error("three-quarter sweep should set the large-arc flag")
	}
}

func TestCurvePathUnknownElement(t *testing.T) {
	c := geometry.Curve{Elements: []geometry.Segment{fakeSegment{}}}
	_, err := CurvePath(c, identity)
	var unknownErr *geometry.UnknownElementError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownElementError, got %v", err)
	}
}

type fakeSegment struct{}

func (fakeSegment) Endpoints() (geometry.Point, geometry.Point) {
	return geometry.Point{}, geometry.Point{}
}

func TestDocumentWriteCurve(t *testing.T) {
	c, err := geometry.NewRectangle(2, 1, geometry.Pt(0, 0), "Slab")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	doc := NewDocument(800, 600)
	doc.ShowPoints = true
	if err := doc.WriteCurve(&buf, c); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"<svg", "</svg>", "<path", "Slab (closed)", "<circle"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}

func TestDocumentWriteCurveArray(t *testing.T) {
	array := geometry.NewCurveArray("Floor")
	for _, layer := range []string{"deck", "slab"} {
		c, err := geometry.NewRectangle(1, 0.1, geometry.Pt(0, 0), layer)
		if err != nil {
			t.Fatal(err)
		}
		array.Append(c)
	}

	var buf bytes.Buffer
	if err := NewDocument(800, 600).WriteCurveArray(&buf, array); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"<svg", "deck", "slab", "Floor - Total:"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}
