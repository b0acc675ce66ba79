package entity

import "strings"

// Table is a raw worksheet: one header row plus data rows, every cell as text.
// It is what the spreadsheet boundary hands to the conversion pipeline.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Index returns the position of a column by exact name, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed value of the named column in a data row.
// Missing columns and short rows read as the empty string.
func (t *Table) Cell(row []string, name string) string {
	i := t.Index(name)
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Empty reports whether a data row contains only blank cells.
func (t *Table) Empty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
