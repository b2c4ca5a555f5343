package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/floorcomposer/floorcomposer/internal/geometry"
)

// testArray builds a small profile set with a material curve, an arc
// curve, and an open polyline.
func testArray(t *testing.T) *geometry.CurveArray {
	t.Helper()

	slab, err := geometry.NewMaterialCurve(
		rectElements(), geometry.Closed, "Slab", "concrete")
	if err != nil {
		t.Fatal(err)
	}

	arc := geometry.Arc{Start: geometry.Pt(1, 0), End: geometry.Pt(0, 1), Center: geometry.Pt(0, 0)}
	quarter, err := geometry.NewCurve([]geometry.Segment{arc}, geometry.Open, "Quarter Arc")
	if err != nil {
		t.Fatal(err)
	}

	deck, err := geometry.NewPolyline([]geometry.Point{
		geometry.Pt(0, 0), geometry.Pt(0.5, 0.05), geometry.Pt(1, 0),
	}, false, "Deck")
	if err != nil {
		t.Fatal(err)
	}

	array := geometry.NewCurveArray("Floor Profiles")
	array.Append(slab)
	array.Append(quarter)
	array.Append(deck)
	return array
}

func rectElements() []geometry.Segment {
	pts := []geometry.Point{
		geometry.Pt(0, 0), geometry.Pt(2, 0), geometry.Pt(2, 0.2), geometry.Pt(0, 0.2),
	}
	segs := make([]geometry.Segment, 4)
	for i := range pts {
		segs[i] = geometry.Line{Start: pts[i], End: pts[(i+1)%4]}
	}
	return segs
}

func TestExportDXFRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.dxf")
	if err := ExportDXF(path, testArray(t)); err != nil {
		t.Fatal(err)
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		t.Fatal(err)
	}

	polylines := 0
	for _, ent := range drawing.Entities() {
		if _, ok := ent.(*entity.LwPolyline); ok {
			polylines++
		}
	}
	if polylines != 3 {
		t.Errorf("expected 3 polylines, got %d", polylines)
	}
}

func TestExportDXFEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dxf")
	if err := ExportDXF(path, geometry.NewCurveArray("")); err == nil {
		t.Fatal("expected an error for an empty array")
	}
}

func TestCurveVerticesArcTessellation(t *testing.T) {
	arc := geometry.Arc{Start: geometry.Pt(1, 0), End: geometry.Pt(0, 1), Center: geometry.Pt(0, 0)}
	c, err := geometry.NewCurve([]geometry.Segment{arc}, geometry.Open, "quarter")
	if err != nil {
		t.Fatal(err)
	}

	vertices, err := curveVertices(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(vertices) != arcChordSegments+1 {
		t.Fatalf("expected %d vertices, got %d", arcChordSegments+1, len(vertices))
	}
	last := vertices[len(vertices)-1]
	if abs(last[0]) > 1e-9 || abs(last[1]-1) > 1e-9 {
		t.Errorf("arc should end at (0,1), got (%g, %g)", last[0], last[1])
	}
	// Every sample stays on the circle.
	for _, v := range vertices {
		r := v[0]*v[0] + v[1]*v[1]
		if abs(r-1) > 1e-9 {
			t.Fatalf("vertex (%g, %g) not on the unit circle", v[0], v[1])
		}
	}
}

func TestLayerNameSanitizesAndUniquifies(t *testing.T) {
	seen := map[string]int{}
	if got := layerName("Edge Beam #1", 0, seen); got != "EDGE_BEAM__1" {
		t.Errorf("unexpected layer name %q", got)
	}
	if got := layerName("Edge Beam #1", 1, seen); got != "EDGE_BEAM__1_2" {
		t.Errorf("duplicate should be uniquified, got %q", got)
	}
	if got := layerName("", 2, seen); got != "CURVE_3" {
		t.Errorf("unexpected fallback name %q", got)
	}
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.pdf")
	if err := ExportPDF(path, testArray(t)); err != nil {
		t.Fatal(err)
	}
	assertPDF(t, path)
}

func TestExportPDFEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := ExportPDF(path, geometry.NewCurveArray("")); err == nil {
		t.Fatal("expected an error for an empty array")
	}
}

func TestExportLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	if err := ExportLabels(path, testArray(t)); err != nil {
		t.Fatal(err)
	}
	assertPDF(t, path)
}

func TestCollectLabelInfos(t *testing.T) {
	labels, err := CollectLabelInfos(testArray(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(labels))
	}

	slab := labels[0]
	if slab.Name != "Slab" || slab.CurveType != "closed" || slab.Material != "concrete" {
		t.Errorf("unexpected label: %+v", slab)
	}
	if abs(slab.Length-4.4) > 1e-9 {
		t.Errorf("unexpected length %g", slab.Length)
	}
	if slab.Width != 2 || slab.Height != 0.2 {
		t.Errorf("unexpected extent %g x %g", slab.Width, slab.Height)
	}
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measurements.xlsx")
	if err := ExportXLSX(path, testArray(t)); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(measurementSheet)
	if err != nil {
		t.Fatal(err)
	}
	// Header, three curves, blank spacer, total.
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
	if rows[0][0] != "Name" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "Slab" || rows[1][2] != "concrete" {
		t.Errorf("unexpected first data row: %v", rows[1])
	}
	if rows[5][0] != "Total" {
		t.Errorf("unexpected total row: %v", rows[5])
	}
}

func assertPDF(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Error("output is not a PDF document")
	}
	if len(data) < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", len(data))
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
