package convert

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tallyflow/tallyflow/internal/domain"
	"github.com/tallyflow/tallyflow/internal/domain/entity"
)

// Normalize coerces a raw worksheet into rows the rest of the pipeline can
// trust: required columns must exist, numeric cells parse or default to zero,
// text cells are trimmed with blanks as "". Fully blank rows are dropped.
func Normalize(t *entity.Table) ([]entity.Row, error) {
	if t == nil || len(t.Columns) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	for _, col := range entity.RequiredColumns() {
		if t.Index(col) < 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, col)
		}
	}

	rows := make([]entity.Row, 0, len(t.Rows))
	for _, rec := range t.Rows {
		if t.Empty(rec) {
			continue
		}
		rows = append(rows, entity.Row{
			InvoiceNumber: t.Cell(rec, entity.ColInvoiceNumber),
			Date:          t.Cell(rec, entity.ColDate),
			VoucherType:   t.Cell(rec, entity.ColVoucherType),
			PartyName:     t.Cell(rec, entity.ColPartyName),
			Narration:     t.Cell(rec, entity.ColNarration),
			StockItemName: t.Cell(rec, entity.ColStockItemName),
			LedgerName:    t.Cell(rec, entity.ColLedgerName),
			Quantity:      numericCell(t, rec, entity.ColQuantity),
			RatePerPiece:  numericCell(t, rec, entity.ColRatePerPiece),
			FinalAmount:   numericCell(t, rec, entity.ColFinalAmount),
			CGSTAmount:    numericCell(t, rec, entity.ColCGSTAmount),
			SGSTAmount:    numericCell(t, rec, entity.ColSGSTAmount),
			IGSTAmount:    numericCell(t, rec, entity.ColIGSTAmount),
			CGSTLedger:    t.Cell(rec, entity.ColCGSTLedger),
			SGSTLedger:    t.Cell(rec, entity.ColSGSTLedger),
			IGSTLedger:    t.Cell(rec, entity.ColIGSTLedger),
			CompanyName:   t.Cell(rec, entity.ColCompanyName),
		})
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	return rows, nil
}

// numericCell parses a cell as a decimal; anything unparseable (blank, text,
// a missing column) becomes zero rather than an error.
func numericCell(t *entity.Table, rec []string, col string) decimal.Decimal {
	d, err := decimal.NewFromString(t.Cell(rec, col))
	if err != nil {
		return decimal.Zero
	}
	return d
}
