package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// loadRows reads a tabular file (.xlsx or .csv) into rows, first sheet
// only for Excel workbooks
func loadRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open excel file: %w", err)
		}
		defer func() { _ = f.Close() }()

		rows, err := f.GetRows(f.GetSheetName(0))
		if err != nil {
			return nil, fmt.Errorf("read excel rows: %w", err)
		}
		return rows, nil

	case ".csv":
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open csv file: %w", err)
		}
		defer func() { _ = file.Close() }()

		reader := csv.NewReader(file)
		reader.FieldsPerRecord = -1 // Marketplace exports have ragged rows
		rows, err := reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		return rows, nil

	default:
		return nil, fmt.Errorf("unsupported file format %q (want .xlsx or .csv)", filepath.Ext(path))
	}
}

// findColumn locates a column index by any of its known header names,
// case-insensitive; returns -1 when absent
func findColumn(header []string, names ...string) int {
	for i, cell := range header {
		cell = strings.ToLower(strings.TrimSpace(cell))
		for _, name := range names {
			if cell == strings.ToLower(name) {
				return i
			}
		}
	}
	return -1
}

// cell safely reads a column from a possibly short row
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
