package tally

import (
	"github.com/tallyflow/tallyflow/internal/domain/entity"
)

// Envelope is the build context for one import document: the target company
// plus the vouchers in grouping order.
type Envelope struct {
	Company  string
	Vouchers []VoucherRecord
}

// VoucherRecord is one invoice ready for XML assembly: header fields from the
// group's first row plus the resolved ledger and inventory postings.
type VoucherRecord struct {
	Number      string
	Date        string // raw spreadsheet cell; parsed during Build
	VoucherType string
	PartyName   string
	Narration   string
	Postings    entity.VoucherPostings
}
