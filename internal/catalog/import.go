package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Profiles []DeckProfile
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Reference    int
	Manufacturer int
	ProfileWidth int
	WaveWidth    int
	BottomWidth  int
	TopWidth     int
	Height       int
}

// headerAliases maps canonical column names to their accepted aliases
// (all lowercase). Manufacturer sheets use mixed vocabulary for the same
// dimensions.
var headerAliases = map[string][]string{
	"reference":    {"reference", "ref", "name", "product", "profile", "designation"},
	"manufacturer": {"manufacturer", "maker", "brand", "supplier"},
	"profilewidth": {"profile width", "total width", "covering width", "sheet width", "width"},
	"wavewidth":    {"wave width", "rib spacing", "pitch", "period", "module"},
	"bottomwidth":  {"bottom width", "rib bottom", "trough width", "valley width"},
	"topwidth":     {"top width", "rib top", "crest width"},
	"height":       {"height", "rib height", "depth", "profile height"},
}

// DetectCSVDelimiter determines the most likely CSV delimiter by trying
// comma, semicolon, tab, and pipe. The delimiter producing the most
// consistent multi-column split wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping from
// case-insensitive alias matching. Returns a default positional mapping
// and false when no header was recognized.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Reference:    -1,
		Manufacturer: -1,
		ProfileWidth: -1,
		WaveWidth:    -1,
		BottomWidth:  -1,
		TopWidth:     -1,
		Height:       -1,
	}

	assign := func(role string, i int) {
		switch role {
		case "reference":
			if mapping.Reference == -1 {
				mapping.Reference = i
			}
		case "manufacturer":
			if mapping.Manufacturer == -1 {
				mapping.Manufacturer = i
			}
		case "profilewidth":
			if mapping.ProfileWidth == -1 {
				mapping.ProfileWidth = i
			}
		case "wavewidth":
			if mapping.WaveWidth == -1 {
				mapping.WaveWidth = i
			}
		case "bottomwidth":
			if mapping.BottomWidth == -1 {
				mapping.BottomWidth = i
			}
		case "topwidth":
			if mapping.TopWidth == -1 {
				mapping.TopWidth = i
			}
		case "height":
			if mapping.Height == -1 {
				mapping.Height = i
			}
		}
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					assign(role, i)
				}
			}
		}
	}

	if !isHeader {
		// Positional fallback matches the Arcelor sheet layout:
		// reference, total width, wave width, bottom width, top width,
		// height.
		return ColumnMapping{
			Reference:    0,
			Manufacturer: -1,
			ProfileWidth: 1,
			WaveWidth:    2,
			BottomWidth:  3,
			TopWidth:     4,
			Height:       5,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a trimmed cell value by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseDimension parses a required millimeter dimension cell.
func parseDimension(row []string, idx int, field, rowLabel string) (float64, string) {
	s := getCell(row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, field)
	}
	// European sheets commonly use a decimal comma.
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, field, s)
	}
	if v <= 0 {
		return 0, fmt.Sprintf("%s: %s must be positive", rowLabel, field)
	}
	return v / 1000, "" // mm to meters
}

// parseRow extracts a DeckProfile from a row using the given column
// mapping. Dimension cells are in millimeters, matching manufacturer
// data sheets.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (DeckProfile, string) {
	reference := getCell(row, mapping.Reference)
	if reference == "" {
		return DeckProfile{}, fmt.Sprintf("%s: Missing profile reference", rowLabel)
	}

	p := DeckProfile{
		Reference:    reference,
		Manufacturer: getCell(row, mapping.Manufacturer),
	}

	dims := []struct {
		idx   int
		field string
		dst   *float64
	}{
		{mapping.ProfileWidth, "profile width", &p.ProfileWidth},
		{mapping.WaveWidth, "wave width", &p.WaveWidth},
		{mapping.BottomWidth, "bottom width", &p.BottomWidth},
		{mapping.TopWidth, "top width", &p.TopWidth},
		{mapping.Height, "height", &p.Height},
	}
	for _, d := range dims {
		v, errMsg := parseDimension(row, d.idx, d.field, rowLabel)
		if errMsg != "" {
			return DeckProfile{}, errMsg
		}
		*d.dst = v
	}

	if err := p.WaveParams().Check(); err != nil {
		return DeckProfile{}, fmt.Sprintf("%s: %v", rowLabel, err)
	}
	return p, ""
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports deck profiles from a CSV file, auto-detecting the
// delimiter and mapping columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", warnings)
}

// ImportCSVFromReader imports deck profiles from a CSV reader with a
// known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports deck profiles from the first sheet of an xlsx
// file.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		for _, req := range []struct {
			idx  int
			name string
		}{
			{mapping.Reference, "Reference"},
			{mapping.ProfileWidth, "Profile width"},
			{mapping.WaveWidth, "Wave width"},
			{mapping.BottomWidth, "Bottom width"},
			{mapping.TopWidth, "Top width"},
			{mapping.Height, "Height"},
		} {
			if req.idx == -1 {
				missing = append(missing, req.name)
			}
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		// First data cell after the reference not numeric: an
		// unrecognized header. Skip it and keep the positional mapping.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		profile, errMsg := parseRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Profiles = append(result.Profiles, profile)
	}

	return result
}
