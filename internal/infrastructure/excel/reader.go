package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/tallyflow/tallyflow/internal/domain"
	"github.com/tallyflow/tallyflow/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// ReadTable parses an uploaded workbook into a raw table: the first sheet's
// first row is the header, everything below is data. Fully blank rows are
// skipped. Cell values arrive as the text excelize renders for the cell's
// number format.
func ReadTable(r io.Reader) (*entity.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: not a readable workbook", domain.ErrInvalidInput)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, domain.ErrEmptyDataset
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	columns := make([]string, len(rows[0]))
	for i, c := range rows[0] {
		columns[i] = strings.TrimSpace(c)
	}

	table := &entity.Table{Columns: columns}
	for _, row := range rows[1:] {
		if table.Empty(row) {
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
