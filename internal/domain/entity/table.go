package entity

import "github.com/diegoclair/absence-report/internal/domain"

// Table is a dataset loaded from a published spreadsheet
type Table struct {
	Columns []string
	Rows    [][]string
}

// Column returns the position of the first header matching any of names.
// Headers are compared with accents folded and case ignored.
func (t *Table) Column(names ...string) (int, bool) {
	for _, name := range names {
		want := domain.NormalizeHeader(name)
		for i, col := range t.Columns {
			if domain.NormalizeHeader(col) == want {
				return i, true
			}
		}
	}
	return -1, false
}

// Value returns the cell at row/col, or an empty string when the row is short
func (t *Table) Value(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
