package geometry

import (
	"errors"
	"testing"
)

func TestNewRectangle(t *testing.T) {
	rect, err := NewRectangle(3, 2, Pt(1, 1), "rect")
	if err != nil {
		t.Fatal(err)
	}
	if rect.Type != Closed {
		t.Error("rectangle should be closed")
	}
	if len(rect.Elements) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(rect.Elements))
	}
	l, err := rect.Length()
	if err != nil {
		t.Fatal(err)
	}
	if l != 10.0 {
		t.Errorf("expected perimeter 10.0, got %g", l)
	}
}

func TestNewTrapezoidCentersTop(t *testing.T) {
	trap, err := NewTrapezoid(4, 2, 1, Pt(0, 0), "trap")
	if err != nil {
		t.Fatal(err)
	}
	if trap.Type != Closed {
		t.Error("trapezoid should be closed")
	}
	// Top-left corner sits at (offset, height) with offset = (4-2)/2.
	start, _ := trap.Elements[3].Endpoints()
	if start != Pt(1, 1) {
		t.Errorf("expected top-left corner (1,1), got %v", start)
	}
}

func TestNewPolylineOpen(t *testing.T) {
	c, err := NewPolyline([]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}, false, "poly")
	if err != nil {
		t.Fatal(err)
	}
	if c.Type != Open || len(c.Elements) != 2 {
		t.Errorf("expected open curve with 2 elements, got %s with %d", c.Type, len(c.Elements))
	}
}

func TestNewPolylineClosedAppendsClosingSegment(t *testing.T) {
	c, err := NewPolyline([]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}, true, "tri")
	if err != nil {
		t.Fatal(err)
	}
	if c.Type != Closed || len(c.Elements) != 3 {
		t.Errorf("expected closed curve with 3 elements, got %s with %d", c.Type, len(c.Elements))
	}
	_, lastEnd := c.Elements[2].Endpoints()
	if lastEnd != Pt(0, 0) {
		t.Errorf("closing segment should return to first point, ends at %v", lastEnd)
	}
}

func TestNewPolylineTooFewPoints(t *testing.T) {
	for _, points := range [][]Point{nil, {Pt(1, 1)}} {
		_, err := NewPolyline(points, false, "")
		var insufficientErr *InsufficientPointsError
		if !errors.As(err, &insufficientErr) {
			t.Errorf("expected InsufficientPointsError for %d points, got %v", len(points), err)
		}
	}
}

func TestNewLineCurve(t *testing.T) {
	c, err := NewLineCurve(Pt(0, 0), Pt(3, 4), "diag")
	if err != nil {
		t.Fatal(err)
	}
	if c.Type != Open || len(c.Elements) != 1 {
		t.Errorf("expected open single-segment curve, got %s with %d", c.Type, len(c.Elements))
	}
}

func TestNewFloorLayersStacks(t *testing.T) {
	layers := []Layer{
		{Material: "concrete", Thickness: 0.15},
		{Material: "insulation", Thickness: 0.05},
		{Material: "screed", Thickness: 0.06},
	}
	array, err := NewFloorLayers(layers, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if len(array.Curves) != 3 {
		t.Fatalf("expected 3 layer curves, got %d", len(array.Curves))
	}

	// Second layer starts where the first ends.
	start, _ := array.Curves[1].Elements[0].Endpoints()
	if start != Pt(0, 0.15) {
		t.Errorf("expected second layer origin (0, 0.15), got %v", start)
	}

	for i, c := range array.Curves {
		if c.Material == nil {
			t.Errorf("layer %d missing material", i)
		}
	}
	if array.Curves[1].Material.Name != "insulation" {
		t.Errorf("expected insulation, got %s", array.Curves[1].Material.Name)
	}
}

func TestNewTrapezoidArraySpacing(t *testing.T) {
	specs := []TrapezoidSpec{
		{BottomWidth: 0.2, TopWidth: 0.1, Height: 0.05},
		{BottomWidth: 0.2, TopWidth: 0.1, Height: 0.05},
	}
	array, err := NewTrapezoidArray(specs, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(array.Curves) != 2 {
		t.Fatalf("expected 2 trapezoids, got %d", len(array.Curves))
	}

	// Second trapezoid starts after bottom width plus spacing.
	start, _ := array.Curves[1].Elements[0].Endpoints()
	if start.X != 0.2+0.1 {
		t.Errorf("expected second trapezoid at x=0.3, got %g", start.X)
	}
}
