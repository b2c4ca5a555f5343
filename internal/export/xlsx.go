package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/floorcomposer/floorcomposer/internal/geometry"
	"github.com/floorcomposer/floorcomposer/internal/render"
)

// measurementSheet is the sheet name of the exported table.
const measurementSheet = "Measurements"

// ExportXLSX writes a measurement table with one row per curve: name,
// type, material, element count, developed length, and extent. Lengths
// are in meters.
func ExportXLSX(path string, array *geometry.CurveArray) error {
	if len(array.Curves) == 0 {
		return fmt.Errorf("no curves to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(measurementSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	header := []any{"Name", "Type", "Material", "Elements", "Length (m)", "Width (m)", "Height (m)"}
	if err := setRow(f, 1, &header); err != nil {
		return err
	}

	for i, c := range array.Curves {
		length, err := c.Length()
		if err != nil {
			return fmt.Errorf("curve %q: %w", c.Name, err)
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

		row := []any{name, c.Type.String(), materialName, len(c.Elements), length, bounds.Width(), bounds.Height()}
		if err := setRow(f, i+2, &row); err != nil {
			return err
		}
	}

	total, err := array.TotalLength()
	if err != nil {
		return err
	}
	totalRow := []any{"Total", "", "", "", total, "", ""}
	if err := setRow(f, len(array.Curves)+3, &totalRow); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, rowNum int, values *[]any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(measurementSheet, cell, values)
}
