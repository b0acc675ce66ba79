package convert_test

import (
	"github.com/shopspring/decimal"
	"github.com/tallyflow/tallyflow/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

// tableFrom builds a raw table with the full template header and one data row
// per map. Unlisted columns read as blank cells.
func tableFrom(rows ...map[string]string) *entity.Table {
	cols := entity.TemplateColumns()
	t := &entity.Table{Columns: cols}
	for _, vals := range rows {
		rec := make([]string, len(cols))
		for i, c := range cols {
			rec[i] = vals[c]
		}
		t.Rows = append(t.Rows, rec)
	}
	return t
}

// salesRowCells is the §"one invoice, Sales" fixture: quantity 2 at rate 100,
// no explicit final amount, 18 of CGST against a configured ledger.
func salesRowCells() map[string]string {
	return map[string]string{
		entity.ColInvoiceNumber: "INV-1",
		entity.ColDate:          "2025-04-01",
		entity.ColVoucherType:   "Sales",
		entity.ColPartyName:     "Acme Traders",
		entity.ColStockItemName: "Widget 10mm",
		entity.ColLedgerName:    "Sales Ledger",
		entity.ColQuantity:      "2",
		entity.ColRatePerPiece:  "100",
		entity.ColFinalAmount:   "0",
		entity.ColCGSTAmount:    "18",
		entity.ColCGSTLedger:    "Output CGST",
	}
}

// salesRow is the same fixture as a normalized entity row.
func salesRow() entity.Row {
	return entity.Row{
		InvoiceNumber: "INV-1",
		Date:          "2025-04-01",
		VoucherType:   "Sales",
		PartyName:     "Acme Traders",
		StockItemName: "Widget 10mm",
		LedgerName:    "Sales Ledger",
		Quantity:      decimal.NewFromInt(2),
		RatePerPiece:  decimal.NewFromInt(100),
		CGSTAmount:    decimal.NewFromInt(18),
		CGSTLedger:    "Output CGST",
	}
}

func groupOf(rows ...entity.Row) entity.InvoiceGroup {
	first := rows[0]
	return entity.InvoiceGroup{
		InvoiceNumber: first.InvoiceNumber,
		Date:          first.Date,
		VoucherType:   first.VoucherType,
		PartyName:     first.PartyName,
		Narration:     first.Narration,
		Rows:          rows,
	}
}
