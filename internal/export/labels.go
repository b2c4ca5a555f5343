package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/floorcomposer/floorcomposer/internal/geometry"
	"github.com/floorcomposer/floorcomposer/internal/render"
)

// LabelInfo holds the data encoded into each profile label's QR code.
type LabelInfo struct {
	Name      string  `json:"name"`
	CurveType string  `json:"curve_type"`
	Material  string  `json:"material,omitempty"`
	Width     float64 `json:"width_m"`
	Height    float64 `json:"height_m"`
	Length    float64 `json:"length_m"`
	Elements  int     `json:"elements"`
	Index     int     `json:"index"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page). Each label cell is approximately 66.7mm x 25.4mm on US
// Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per curve. Each
// label shows the curve name and extent, plus a QR code encoding the
// curve metadata as JSON for site identification of cut pieces.
func ExportLabels(path string, array *geometry.CurveArray) error {
	labels, err := CollectLabelInfos(array)
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		return fmt.Errorf("no curves to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.Name, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d_%s", info.Index, info.Name)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	name := info.Name
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.0f x %.0f mm", info.Width*1000, info.Height*1000)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	detail := fmt.Sprintf("%s, %.3f m developed", info.CurveType, info.Length)
	pdf.CellFormat(textW, 3, detail, "", 1, "L", false, 0, "")

	if info.Material != "" {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.CellFormat(textW, 3, info.Material, "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from a curve array for
// use in testing or alternative export formats.
func CollectLabelInfos(array *geometry.CurveArray) ([]LabelInfo, error) {
	labels := make([]LabelInfo, 0, len(array.Curves))
	for i, c := range array.Curves {
		length, err := c.Length()
		if err != nil {
			return nil, fmt.Errorf("curve %q: %w", c.Name, err)
		}
		bounds := render.CalculateBounds([]geometry.Curve{c})

		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Curve %d", i+1)
		}
		materialName := ""
		if c.Material != nil {
			materialName = c.Material.Name
		}

		labels = append(labels, LabelInfo{
			Name:      name,
			CurveType: c.Type.String(),
			Material:  materialName,
			Width:     bounds.Width(),
			Height:    bounds.Height(),
			Length:    length,
			Elements:  len(c.Elements),
			Index:     i + 1,
		})
	}
	return labels, nil
}
