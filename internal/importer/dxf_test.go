package importer

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/yofu/dxf"

	"github.com/floorcomposer/floorcomposer/internal/geometry"
)

// writeTestDXF builds a drawing with a closed triangle of loose lines, an
// open two-line chain, a closed polyline, and a circle.
func writeTestDXF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.dxf")

	d := dxf.NewDrawing()

	// Triangle as disconnected LINE entities, deliberately out of order.
	if _, err := d.Line(0, 0, 0, 4, 0, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Line(0, 3, 0, 0, 0, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Line(4, 0, 0, 0, 3, 0); err != nil {
		t.Fatal(err)
	}

	// Open chain far away from the triangle.
	if _, err := d.Line(100, 0, 0, 101, 0, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Line(101, 0, 0, 101, 1, 0); err != nil {
		t.Fatal(err)
	}

	// Closed rectangle as an LWPOLYLINE.
	if _, err := d.LwPolyline(true, []float64{10, 10}, []float64{12, 10}, []float64{12, 11}, []float64{10, 11}); err != nil {
		t.Fatal(err)
	}

	// Circle.
	if _, err := d.Circle(50, 50, 0, 2); err != nil {
		t.Fatal(err)
	}

	if err := d.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportDXF(t *testing.T) {
	result := ImportDXF(writeTestDXF(t))
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Curves) != 4 {
		t.Fatalf("expected 4 curves, got %d", len(result.Curves))
	}

	var open, closed int
	for _, c := range result.Curves {
		if err := geometry.Validate(c, geometry.DefaultTolerance); err != nil {
			t.Errorf("curve %q fails validation: %v", c.Name, err)
		}
		if c.Type == geometry.Closed {
			closed++
		} else {
			open++
		}
	}
	// Triangle, rectangle, and circle close; the two-line chain stays
	// open.
	if closed != 3 || open != 1 {
		t.Errorf("expected 3 closed and 1 open curve, got %d closed, %d open", closed, open)
	}
}

func TestImportDXFCircleBecomesHalfArcs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circle.dxf")
	d := dxf.NewDrawing()
	if _, err := d.Circle(1, 2, 0, 0.5); err != nil {
		t.Fatal(err)
	}
	if err := d.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	result := ImportDXF(path)
	if len(result.Curves) != 1 {
		t.Fatalf("expected 1 curve, got %d (errors: %v)", len(result.Curves), result.Errors)
	}

	c := result.Curves[0]
	if c.Type != geometry.Closed || len(c.Elements) != 2 {
		t.Fatalf("expected a closed two-arc curve, got %+v", c)
	}
	length, err := c.Length()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(length-math.Pi) > 1e-9 {
		t.Errorf("circumference %g, want %g", length, math.Pi)
	}
}

func TestImportDXFMissingFile(t *testing.T) {
	result := ImportDXF(filepath.Join(t.TempDir(), "absent.dxf"))
	if len(result.Errors) == 0 {
		t.Fatal("expected an error for a missing file")
	}
}

func TestBulgeArcSemicircle(t *testing.T) {
	// A bulge of 1 is a half circle bulging to the left of the chord.
	arc := bulgeArc(geometry.Pt(0, 0), geometry.Pt(2, 0), 1)

	if arc.Clockwise {
		t.Error("positive bulge should sweep counter-clockwise")
	}
	if math.Abs(arc.Center.X-1) > 1e-9 || math.Abs(arc.Center.Y) > 1e-9 {
		t.Errorf("unexpected center: %v", arc.Center)
	}
	if math.Abs(arc.Radius()-1) > 1e-9 {
		t.Errorf("unexpected radius: %g", arc.Radius())
	}
	if math.Abs(arc.Angle()-math.Pi) > 1e-9 {
		t.Errorf("unexpected angle: %g", arc.Angle())
	}
}

func TestBulgeArcQuarter(t *testing.T) {
	// A bulge of tan(pi/8) spans a quarter circle.
	bulge := math.Tan(math.Pi / 8)
	arc := bulgeArc(geometry.Pt(1, 0), geometry.Pt(0, 1), bulge)

	if math.Abs(arc.Center.X) > 1e-9 || math.Abs(arc.Center.Y) > 1e-9 {
		t.Errorf("unexpected center: %v", arc.Center)
	}
	if math.Abs(arc.Angle()-math.Pi/2) > 1e-9 {
		t.Errorf("unexpected angle: %g", arc.Angle())
	}

	// Negative bulge mirrors the sweep.
	cw := bulgeArc(geometry.Pt(1, 0), geometry.Pt(0, 1), -bulge)
	if !cw.Clockwise {
		t.Error("negative bulge should sweep clockwise")
	}
}

func TestReverseSegment(t *testing.T) {
	line := geometry.Line{Start: geometry.Pt(0, 0), End: geometry.Pt(1, 0)}
	rev := reverseSegment(line).(geometry.Line)
	if rev.Start != line.End || rev.End != line.Start {
		t.Errorf("unexpected reversed line: %+v", rev)
	}

	arc := geometry.Arc{Start: geometry.Pt(1, 0), End: geometry.Pt(0, 1), Center: geometry.Pt(0, 0)}
	revArc := reverseSegment(arc).(geometry.Arc)
	if revArc.Start != arc.End || revArc.End != arc.Start || !revArc.Clockwise {
		t.Errorf("unexpected reversed arc: %+v", revArc)
	}
}

func TestChainSegmentsReversesToFit(t *testing.T) {
	// Second segment points the wrong way; chaining must flip it.
	segs := []geometry.Segment{
		geometry.Line{Start: geometry.Pt(0, 0), End: geometry.Pt(1, 0)},
		geometry.Line{Start: geometry.Pt(2, 0), End: geometry.Pt(1, 0)},
	}
	chains := chainSegments(segs, chainTolerance)
	if len(chains) != 1 {
		t.Fatalf("expected 1 chain, got %d", len(chains))
	}
	if len(chains[0]) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(chains[0]))
	}
	_, tail := chains[0][1].Endpoints()
	if tail != geometry.Pt(2, 0) {
		t.Errorf("unexpected chain tail: %v", tail)
	}
}
