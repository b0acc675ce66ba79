package entity

import "github.com/shopspring/decimal"

// InvoiceGroup holds all rows sharing one invoice number, in their original
// order. Date, voucher type, party and narration come from the first row;
// the group is read-only after construction.
type InvoiceGroup struct {
	InvoiceNumber string
	Date          string
	VoucherType   string
	PartyName     string
	Narration     string
	Rows          []Row
}

// InvoiceTotals are the aggregates of one invoice group. Sums stay exact;
// rounding to two decimals happens only at serialization.
type InvoiceTotals struct {
	ItemTotal  decimal.Decimal
	CGSTTotal  decimal.Decimal
	SGSTTotal  decimal.Decimal
	IGSTTotal  decimal.Decimal
	GrandTotal decimal.Decimal
}
