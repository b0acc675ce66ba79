package entity

import "github.com/shopspring/decimal"

// LedgerPosting is one accounting entry: a signed amount against a named
// ledger. DeemedPositive is the target system's debit flag (Yes = debit,
// No = credit); IsParty marks the party ledger entry.
type LedgerPosting struct {
	Ledger         string
	Amount         decimal.Decimal
	DeemedPositive bool
	IsParty        bool
}

// InventoryEntry is one stock line of a voucher together with its accounting
// allocation. The quantity is used as both billed and actual quantity, and the
// entry itself is always a credit-side record (deemed-positive No).
type InventoryEntry struct {
	StockItem  string
	Rate       decimal.Decimal
	Amount     decimal.Decimal
	Quantity   decimal.Decimal
	Allocation LedgerPosting
}

// VoucherPostings are the resolved entries of one voucher: the party posting,
// the qualifying tax postings in CGST/SGST/IGST order, and one inventory entry
// per source row in row order.
type VoucherPostings struct {
	Party     LedgerPosting
	Taxes     []LedgerPosting
	Inventory []InventoryEntry
}
