package entity

// Spreadsheet column contract. Names are case-sensitive and match the headers
// of the downloadable import template.
const (
	ColInvoiceNumber = "Invoice Number"
	ColDate          = "Date"
	ColVoucherType   = "Voucher Type"
	ColPartyName     = "Party Name"
	ColNarration     = "Narration"
	ColStockItemName = "Stock Item Name"
	ColLedgerName    = "Ledger Name"
	ColQuantity      = "Quantity"
	ColRatePerPiece  = "Rate per Piece"
	ColFinalAmount   = "Final Amount"
	ColCGSTAmount    = "CGST Amount"
	ColSGSTAmount    = "SGST Amount"
	ColIGSTAmount    = "IGST Amount"
	ColCGSTLedger    = "CGST LEDGER NAME"
	ColSGSTLedger    = "SGST LEDGER NAME"
	ColIGSTLedger    = "IGST LEDGER NAME"
	ColCompanyName   = "Company Name"
)

// RequiredColumns are structural prerequisites: a dataset missing any of them
// is rejected. The remaining columns are optional and default to blank/zero.
func RequiredColumns() []string {
	return []string{
		ColInvoiceNumber,
		ColDate,
		ColVoucherType,
		ColPartyName,
		ColStockItemName,
		ColLedgerName,
		ColQuantity,
		ColRatePerPiece,
	}
}

// TemplateColumns is the full ordered header row of the import template.
func TemplateColumns() []string {
	return []string{
		ColInvoiceNumber,
		ColDate,
		ColVoucherType,
		ColPartyName,
		ColNarration,
		ColStockItemName,
		ColLedgerName,
		ColQuantity,
		ColRatePerPiece,
		ColFinalAmount,
		ColCGSTAmount,
		ColSGSTAmount,
		ColIGSTAmount,
		ColCGSTLedger,
		ColSGSTLedger,
		ColIGSTLedger,
		ColCompanyName,
	}
}
