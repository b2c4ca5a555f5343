// Package export writes construction-profile curves to exchange formats:
// DXF drawings, PDF profile sheets, QR-coded labels, and XLSX measurement
// tables.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/floorcomposer/floorcomposer/internal/geometry"
	"github.com/floorcomposer/floorcomposer/internal/render"
)

// profileColor represents an RGB stroke color for a drawn curve.
type profileColor struct {
	R, G, B int
}

// profileColors mirrors the SVG color cycle.
var profileColors = []profileColor{
	{R: 37, G: 99, B: 235},  // blue
	{R: 220, G: 38, B: 38},  // red
	{R: 22, G: 163, B: 74},  // green
	{R: 202, G: 138, B: 4},  // yellow
	{R: 147, G: 51, B: 234}, // purple
	{R: 194, G: 65, B: 12},  // orange
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document of profile sheets. Each curve is
// rendered on its own page with dimension annotations, followed by a
// summary page listing all curves.
func ExportPDF(path string, array *geometry.CurveArray) error {
	if len(array.Curves) == 0 {
		return fmt.Errorf("no curves to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, c := range array.Curves {
		pdf.AddPage()
		if err := renderProfilePage(pdf, c, i+1); err != nil {
			return err
		}
	}

	pdf.AddPage()
	if err := renderSummaryPage(pdf, array); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

// renderProfilePage draws a single curve on the current PDF page.
func renderProfilePage(pdf *fpdf.Fpdf, c geometry.Curve, pageNum int) error {
	bounds := render.CalculateBounds([]geometry.Curve{c})
	length, err := c.Length()
	if err != nil {
		return fmt.Errorf("curve %q: %w", c.Name, err)
	}

	name := c.Name
	if name == "" {
		name = fmt.Sprintf("Curve %d", pageNum)
	}

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Profile %d: %s (%.0f x %.0f mm)", pageNum, name, bounds.Width()*1000, bounds.Height()*1000)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Type: %s | Elements: %d | Developed length: %.3f m", c.Type, len(c.Elements), length)
	if c.Material != nil {
		stats += fmt.Sprintf(" | Material: %s (%.0f kg/m3)", c.Material.Name, c.Material.Density)
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the curve to fit the drawing area.
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	extentW := bounds.Width()
	extentH := bounds.Height()
	if extentW <= 0 {
		extentW = 1
	}
	if extentH <= 0 {
		extentH = 1
	}
	scale := math.Min(drawWidth/extentW, drawHeight/extentH)

	canvasW := extentW * scale
	canvasH := extentH * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop + (drawHeight-canvasH)/2

	if err := drawCurve(pdf, c, bounds, scale, offsetX, offsetY, profileColors[(pageNum-1)%len(profileColors)]); err != nil {
		return err
	}

	drawDimensionAnnotations(pdf, bounds, offsetX, offsetY, canvasW, canvasH)
	return nil
}

// drawCurve strokes the curve's tessellated outline. The PDF Y axis
// grows downward, so model Y is flipped against the bounds top.
func drawCurve(pdf *fpdf.Fpdf, c geometry.Curve, bounds render.Bounds, scale, offsetX, offsetY float64, col profileColor) error {
	vertices, err := curveVertices(c)
	if err != nil {
		return fmt.Errorf("curve %q: %w", c.Name, err)
	}
	if len(vertices) < 2 {
		return nil
	}

	toPage := func(v []float64) (float64, float64) {
		return offsetX + (v[0]-bounds.MinX)*scale, offsetY + (bounds.MaxY-v[1])*scale
	}

	pdf.SetDrawColor(col.R, col.G, col.B)
	pdf.SetLineWidth(0.4)

	x1, y1 := toPage(vertices[0])
	for _, v := range vertices[1:] {
		x2, y2 := toPage(v)
		pdf.Line(x1, y1, x2, y2)
		x1, y1 = x2, y2
	}
	if c.Type == geometry.Closed {
		x0, y0 := toPage(vertices[0])
		pdf.Line(x1, y1, x0, y0)
	}
	return nil
}

// drawDimensionAnnotations adds overall width and height labels outside
// the drawn extent.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, bounds render.Bounds, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Width annotation (below the profile)
	widthLabel := fmt.Sprintf("%.0f mm", bounds.Width()*1000)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height annotation (to the left, rotated)
	heightLabel := fmt.Sprintf("%.0f mm", bounds.Height()*1000)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws the final page with a table of all curves.
func renderSummaryPage(pdf *fpdf.Fpdf, array *geometry.CurveArray) error {
	total, err := array.TotalLength()
	if err != nil {
		return err
	}

	name := array.Name
	if name == "" {
		name = "Profile Set"
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, name+" - Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	colWidths := []float64{15, 70, 25, 45, 25, 35, 45}
	headers := []string{"#", "Name", "Type", "Material", "Elements", "Length", "Extent"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, c := range array.Curves {
		length, err := c.Length()
		if err != nil {
			return fmt.Errorf("curve %q: %w", c.Name, err)
		}
		bounds := render.CalculateBounds([]geometry.Curve{c})

		materialName := "-"
		if c.Material != nil {
			materialName = c.Material.Name
		}
		curveName := c.Name
		if curveName == "" {
			curveName = fmt.Sprintf("Curve %d", i+1)
		}

		rowData := []string{
			fmt.Sprintf("%d", i+1),
			curveName,
			c.Type.String(),
			materialName,
			fmt.Sprintf("%d", len(c.Elements)),
			fmt.Sprintf("%.3f m", length),
			fmt.Sprintf("%.0f x %.0f mm", bounds.Width()*1000, bounds.Height()*1000),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	y += 6
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 6, fmt.Sprintf("Total developed length: %.3f m", total), "", 0, "L", false, 0, "")

	return nil
}
