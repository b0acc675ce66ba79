package entity

import "github.com/shopspring/decimal"

// Row is one normalized spreadsheet record. After normalization every numeric
// field is well-defined (unparseable cells become zero) and every text field
// is trimmed, with blanks as the empty string.
type Row struct {
	InvoiceNumber string
	Date          string // raw cell; parsed into a calendar date at build time
	VoucherType   string
	PartyName     string
	Narration     string
	StockItemName string
	LedgerName    string
	Quantity      decimal.Decimal
	RatePerPiece  decimal.Decimal
	FinalAmount   decimal.Decimal
	CGSTAmount    decimal.Decimal
	SGSTAmount    decimal.Decimal
	IGSTAmount    decimal.Decimal
	CGSTLedger    string
	SGSTLedger    string
	IGSTLedger    string
	CompanyName   string
}

// ItemAmount is the line value: the explicit final amount when positive,
// otherwise quantity times rate.
func (r Row) ItemAmount() decimal.Decimal {
	if r.FinalAmount.IsPositive() {
		return r.FinalAmount
	}
	return r.Quantity.Mul(r.RatePerPiece)
}
