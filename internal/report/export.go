package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// WriteCSV writes header and rows as UTF-8 CSV
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}
	return nil
}

// WriteXLSX writes header and rows into a single-sheet workbook
func WriteXLSX(w io.Writer, sheet string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = "Reporte"
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	numeric := numericColumns(rows)

	if err := f.SetSheetRow(sheet, "A1", textCells(header)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, toCells(row, numeric)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// canonicalNumber excludes codes such as "007" that only look numeric
var canonicalNumber = regexp.MustCompile(`^-?(0|[1-9]\d*)(\.\d+)?$`)

// numericColumns marks the columns whose every non-empty value is a plain
// number. The first column holds the row key and is always text.
func numericColumns(rows [][]string) map[int]bool {
	numeric := make(map[int]bool)
	invalid := make(map[int]bool)
	for _, row := range rows {
		for i, v := range row {
			if i == 0 || v == "" || invalid[i] {
				continue
			}
			if canonicalNumber.MatchString(v) {
				numeric[i] = true
			} else {
				invalid[i] = true
				delete(numeric, i)
			}
		}
	}
	return numeric
}

func textCells(values []string) *[]interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return &cells
}

func toCells(values []string, numeric map[int]bool) *[]interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		if numeric[i] {
			if n, err := strconv.ParseFloat(v, 64); err == nil {
				cells[i] = n
				continue
			}
		}
		cells[i] = v
	}
	return &cells
}
